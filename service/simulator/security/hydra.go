package security

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
)

const (
	hydraBanner = "Hydra v9.5 (c) 2023 by van Hauser/THC & David Maciejak - Please do not use in military or secret service organizations, or for illegal purposes (this is non-binding, these *** ignore laws and ethics anyway)."
	hydraSyntax = "Syntax: hydra [[[-l LOGIN|-L FILE] [-p PASS|-P FILE]] | [-C FILE]] [-e nsr] [-o FILE] [-t TASKS] [-s PORT] [service://server[:PORT][/OPT]]"
	hydraSite   = "Hydra (https://github.com/vanhauser-thc/thc-hydra)"
	hydraTries  = 14344399
)

var (
	hydraValued  = []string{"-l", "-L", "-p", "-P", "-C", "-s", "-t", "-o", "-e", "-m"}
	hydraBoolean = []string{"-V", "-v", "-d", "-f", "-F", "-I", "-u", "-S", "-4", "-6"}
)

func (s *Service) hydra(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, hydraValued...)
	if unknown := args.Unknown(append(hydraValued, hydraBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("hydra: invalid option -- '%s'\n%s", strings.TrimLeft(unknown, "-"), hydraSyntax))
	}
	hasLogin := args.Has("-l", "-L", "-C")
	hasPassword := args.Has("-p", "-P", "-C", "-e")
	if !hasLogin || !hasPassword || len(args.Positional) == 0 {
		return model.NewUsage(hydraSyntax)
	}
	service, host, port := s.hydraTarget(args)
	if service == "" {
		return model.NewUsage("[ERROR] Unknown service\n" + hydraSyntax)
	}
	now := clock.Now()
	tries := hydraTries
	if args.Has("-p") {
		tries = 1
	}
	endpoint := fmt.Sprintf("%s://%s/", service, host)
	if port != "" {
		endpoint = fmt.Sprintf("%s://%s:%s/", service, host, port)
	}
	lines := []string{
		hydraBanner,
		"",
		fmt.Sprintf("%s starting at %s", hydraSite, now.Format(dateLayout)),
		fmt.Sprintf("[DATA] max 16 tasks per 1 server, overall 16 tasks, %d login tries (l:1/p:%d), ~%d tries per task", tries, tries, tries/16+1),
		"[DATA] attacking " + endpoint,
	}
	found := s.crack(args)
	for _, credential := range found {
		label := port
		if label == "" {
			label = service
		}
		lines = append(lines, fmt.Sprintf("[%s][%s] host: %s   login: %s   password: %s", label, service, host, credential.Login, credential.Password))
	}
	plural := "s"
	if len(found) == 1 {
		plural = ""
	}
	lines = append(lines,
		fmt.Sprintf("1 of 1 target successfully completed, %d valid password%s found", len(found), plural),
		fmt.Sprintf("%s finished at %s", hydraSite, now.Format(dateLayout)),
	)
	return model.NewOutput(strings.Join(lines, "\n"))
}

// hydraTarget accepts service://host[:port] or host service.
func (s *Service) hydraTarget(args *argv.Args) (service, host, port string) {
	first := args.Positional[0]
	if scheme, rest, ok := strings.Cut(first, "://"); ok {
		service = scheme
		host, port, _ = strings.Cut(strings.TrimSuffix(rest, "/"), ":")
	} else {
		host = first
		if len(args.Positional) > 1 {
			service = args.Positional[1]
		}
	}
	if value := args.Value("-s"); value != "" {
		port = value
	}
	if port == "" {
		port = s.servicePort(service)
	}
	return service, host, port
}

// servicePort resolves the port of a service from the scan table; http form
// modules share the http port.
func (s *Service) servicePort(service string) string {
	base := service
	if strings.HasPrefix(base, "http") {
		base, _, _ = strings.Cut(base, "-")
	}
	for _, port := range s.fixtures.Security.Ports {
		if port.Service == base {
			return strconv.Itoa(port.Port)
		}
	}
	return ""
}

// crack returns fixture credentials matching the supplied login and password options.
func (s *Service) crack(args *argv.Args) []fixture.Credential {
	var ret []fixture.Credential
	for _, credential := range s.fixtures.Security.Credentials {
		if login := args.Value("-l"); args.Has("-l") && login != credential.Login {
			continue
		}
		if password := args.Value("-p"); args.Has("-p") && password != credential.Password {
			continue
		}
		ret = append(ret, credential)
	}
	return ret
}
