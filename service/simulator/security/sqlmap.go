package security

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
)

const (
	sqlmapRequired     = "sqlmap: error: missing a mandatory option (-d, -u, -l, -m, -r, -g, -c, --wizard, --shell, --update, --purge, --list-tampers or --dependencies). Use -h for basic and -hh for advanced help"
	sqlmapDefaultParam = "id"
	sqlmapUsage        = "Usage: sqlmap [options]"
)

var (
	sqlmapValued  = []string{"-u", "--url", "-p", "--data", "--level", "--risk", "-D", "-T", "-v", "--cookie", "--threads"}
	sqlmapBoolean = []string{"--dbs", "--tables", "--dump", "--current-db", "--batch", "--random-agent", "--forms", "--crawl"}
)

func (s *Service) sqlmap(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, sqlmapValued...)
	if unknown := args.Unknown(append(sqlmapValued, sqlmapBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("%s\n\nsqlmap: error: no such option: %s", sqlmapUsage, unknown))
	}
	address := args.Value("-u", "--url")
	if address == "" {
		return model.NewUsage(sqlmapRequired)
	}
	param := args.Value("-p")
	if param == "" {
		param = firstParameter(address)
	}
	now := clock.Now()
	lines := []string{
		"        ___",
		"       __H__",
		" ___ ___[']_____ ___ ___  {1.7.2#stable}",
		"|_ -| . [\"]     | .'| . |",
		"|___|_  [(]_|_|_|__,|  _|",
		"      |_|V...       |_|   https://sqlmap.org",
		"",
		fmt.Sprintf("[*] starting @ %s /%s/", now.Format(clockLayout), now.Format("2006-01-02")),
		"",
		fmt.Sprintf("[%s] [INFO] testing connection to the target URL", now.Format(clockLayout)),
		fmt.Sprintf("[%s] [INFO] testing if GET parameter '%s' is dynamic", now.Format(clockLayout), param),
		fmt.Sprintf("[%s] [INFO] GET parameter '%s' appears to be 'AND boolean-based blind - WHERE or HAVING clause' injectable", now.Format(clockLayout), param),
		fmt.Sprintf("GET parameter '%s' is vulnerable. Do you want to keep testing the others (if any)? [y/N] N", param),
		"sqlmap identified the following injection point(s) with a total of 46 HTTP(s) requests:",
		"---",
		fmt.Sprintf("Parameter: %s (GET)", param),
		"    Type: boolean-based blind",
		"    Title: AND boolean-based blind - WHERE or HAVING clause",
		fmt.Sprintf("    Payload: %s=1 AND 4721=4721", param),
		"---",
		fmt.Sprintf("[%s] [INFO] the back-end DBMS is MySQL", now.Format(clockLayout)),
		"back-end DBMS: MySQL >= 5.0.12",
	}
	if args.Has("--dbs") {
		databases := s.fixtures.Security.Databases
		lines = append(lines, fmt.Sprintf("available databases [%d]:", len(databases)))
		for _, database := range databases {
			lines = append(lines, "[*] "+database)
		}
	}
	lines = append(lines, "", fmt.Sprintf("[*] ending @ %s /%s/", now.Format(clockLayout), now.Format("2006-01-02")))
	return model.NewOutput(strings.Join(lines, "\n"))
}

// firstParameter returns the alphabetically first query parameter of address.
func firstParameter(address string) string {
	parsed, err := url.Parse(address)
	if err != nil {
		return sqlmapDefaultParam
	}
	var names []string
	for name := range parsed.Query() {
		names = append(names, name)
	}
	if len(names) == 0 {
		return sqlmapDefaultParam
	}
	sort.Strings(names)
	return names[0]
}
