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

const nmapUsage = "Usage: nmap [Scan Type(s)] [Options] {target specification}"

var (
	nmapValued  = []string{"-p", "-oN", "-oX", "-oG", "-oA", "-iL", "--top-ports"}
	nmapBoolean = []string{"-sV", "-sS", "-sT", "-sU", "-sC", "-sn", "-Pn", "-A", "-O", "-F", "-n", "-v", "-6", "-T0", "-T1", "-T2", "-T3", "-T4", "-T5", "--open"}
)

func (s *Service) nmap(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, nmapValued...)
	if unknown := args.Unknown(append(nmapValued, nmapBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("nmap: unrecognized option '%s'\n%s", unknown, nmapUsage))
	}
	host := args.First()
	if host == "" {
		return model.NewUsage("WARNING: No targets were specified, so 0 hosts scanned.\n" + nmapUsage)
	}
	ports := s.fixtures.Security.Ports
	if args.Has("-p") {
		selected, err := selectPorts(ports, args.Value("-p"))
		if err != nil {
			return model.NewUsage(fmt.Sprintf("Error #487: Your port specifications are illegal. %v\n%s", err, nmapUsage))
		}
		ports = selected
	}
	versions := args.Has("-sV", "-A")
	addr := s.fixtures.Network.Address(host)
	lines := []string{
		fmt.Sprintf("Starting Nmap 7.94SVN ( https://nmap.org ) at %s", clock.Now().Format(nmapLayout)),
	}
	if host == addr {
		lines = append(lines, fmt.Sprintf("Nmap scan report for %s", host))
	} else {
		lines = append(lines, fmt.Sprintf("Nmap scan report for %s (%s)", host, addr))
	}
	lines = append(lines, fmt.Sprintf("Host is up (0.%05ds latency).", 100+int(seed(addr)%900)))
	if len(ports) == 0 {
		lines = append(lines, fmt.Sprintf("All scanned ports on %s are in ignored states.", host))
	} else {
		lines = append(lines, portTable(ports, versions)...)
	}
	if args.Has("-O", "-A") {
		lines = append(lines, fmt.Sprintf("OS details: %s %s", s.fixtures.Host.Kernel, s.fixtures.Network.RemoteKernel))
	}
	if versions {
		lines = append(lines, "", "Service detection performed. Please report any incorrect results at https://nmap.org/submit/ .")
	}
	lines = append(lines, fmt.Sprintf("Nmap done: 1 IP address (1 host up) scanned in %d.%02d seconds", 1+len(ports), int(seed(host)%100)))
	return model.NewOutput(strings.Join(lines, "\n"))
}

func portTable(ports []*fixture.Port, versions bool) []string {
	portWidth, stateWidth, serviceWidth := len("PORT"), len("STATE"), len("SERVICE")
	for _, port := range ports {
		portWidth = max(portWidth, len(portLabel(port)))
		stateWidth = max(stateWidth, len(port.State))
		serviceWidth = max(serviceWidth, len(port.Service))
	}
	row := func(port, state, service, version string) string {
		line := fmt.Sprintf("%-*s %-*s %-*s", portWidth, port, stateWidth, state, serviceWidth, service)
		if versions {
			line += " " + version
		}
		return strings.TrimRight(line, " ")
	}
	ret := []string{row("PORT", "STATE", "SERVICE", "VERSION")}
	for _, port := range ports {
		ret = append(ret, row(portLabel(port), port.State, port.Service, port.Version))
	}
	return ret
}

func portLabel(port *fixture.Port) string {
	return fmt.Sprintf("%d/%s", port.Port, port.Protocol)
}

// selectPorts filters ports by an nmap -p expression: "22,80", "1-1024" or "-".
func selectPorts(ports []*fixture.Port, spec string) ([]*fixture.Port, error) {
	if spec == "-" {
		return ports, nil
	}
	type span struct{ from, to int }
	var spans []span
	for _, item := range strings.Split(spec, ",") {
		from, to, isRange := strings.Cut(item, "-")
		start, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q", item)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(to); err != nil || end < start {
				return nil, fmt.Errorf("invalid range %q", item)
			}
		}
		spans = append(spans, span{start, end})
	}
	var ret []*fixture.Port
	for _, port := range ports {
		for _, candidate := range spans {
			if port.Port >= candidate.from && port.Port <= candidate.to {
				ret = append(ret, port)
				break
			}
		}
	}
	return ret, nil
}
