package security

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
)

const (
	gobusterUsage    = "Usage: gobuster dir -u <url> -w <wordlist>"
	gobusterWordlist = "/usr/share/wordlists/dirb/common.txt"
	niktoRule        = "---------------------------------------------------------------------------"
	wpscanRequired   = "Scan Aborted: One of the following options is required: url, help, hh, version"
	niktoUsage       = "   Usage: nikto -h <host> [-p port]"
)

var (
	gobusterValued  = []string{"-u", "--url", "-w", "--wordlist", "-t", "--threads", "-x", "--extensions", "-o", "--output", "-s", "--status-codes"}
	gobusterBoolean = []string{"-q", "--quiet", "-k", "--no-tls-validation", "-r", "--follow-redirect", "-e", "--expanded", "-z", "--no-progress"}
	niktoValued     = []string{"-h", "-host", "-p", "-port", "-o", "-output", "-Tuning", "-Format", "-useragent"}
	niktoBoolean    = []string{"-ssl", "-nossl", "-nointeractive", "-ask"}
	wpscanValued    = []string{"--url", "-e", "--enumerate", "--api-token", "-P", "--passwords", "-U", "--usernames"}
	wpscanBoolean   = []string{"--random-user-agent", "--disable-tls-checks", "--no-banner", "-f", "--force", "--stealthy", "-v", "--verbose"}
)

// gobusterUnknownFlag renders the flag error of gobuster's command line parser.
func gobusterUnknownFlag(flag string) string {
	if strings.HasPrefix(flag, "--") {
		return "Error: unknown flag: " + flag
	}
	return fmt.Sprintf("Error: unknown shorthand flag: '%s' in %s", strings.TrimLeft(flag, "-")[:1], flag)
}

func (s *Service) gobuster(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, gobusterValued...)
	if unknown := args.Unknown(append(gobusterValued, gobusterBoolean...)...); unknown != "" {
		return model.NewUsage(gobusterUnknownFlag(unknown) + "\n" + gobusterUsage)
	}
	mode := args.First()
	switch mode {
	case "", "dir":
		mode = "dir"
	default:
		return model.NewUsage(fmt.Sprintf("Error: unknown command %q for \"gobuster\"\n%s", mode, gobusterUsage))
	}
	address := args.Value("-u", "--url")
	if address == "" {
		return model.NewUsage("Error: required flag(s) \"url\" not set\n" + gobusterUsage)
	}
	wordlist := args.Value("-w", "--wordlist")
	if wordlist == "" {
		wordlist = gobusterWordlist
	}
	threads := args.Value("-t", "--threads")
	if threads == "" {
		threads = "10"
	}
	lines := []string{
		rule,
		"Gobuster v3.6",
		"by OJ Reeves (@TheColonial) & Christian Mehlmauer (@firefart)",
		rule,
		"[+] Url:                     " + address,
		"[+] Method:                  GET",
		"[+] Threads:                 " + threads,
		"[+] Wordlist:                " + wordlist,
		"[+] Negative Status codes:   404",
		"[+] User Agent:              gobuster/3.6",
		"[+] Timeout:                 10s",
		rule,
		"Starting gobuster in directory enumeration mode",
		rule,
	}
	base := strings.TrimRight(address, "/")
	for _, path := range s.fixtures.Security.Paths {
		line := fmt.Sprintf("%-20s (Status: %d) [Size: %d]", path.Path, path.Status, path.Size)
		if path.Status == 301 || path.Status == 302 {
			line += fmt.Sprintf(" [--> %s%s/]", base, path.Path)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "Progress: 4614 / 4615 (99.98%)", rule, "Finished", rule)
	return model.NewOutput(strings.Join(lines, "\n"))
}

func (s *Service) nikto(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, niktoValued...)
	if unknown := args.Unknown(append(niktoValued, niktoBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("+ ERROR: Unknown option: %s\n%s", strings.TrimLeft(unknown, "-"), niktoUsage))
	}
	raw := args.Value("-h", "-host")
	if raw == "" {
		return model.NewUsage("+ ERROR: No host (-host) specified\n" + niktoUsage)
	}
	host, port := target(raw, defaultWeb)
	if value := args.Value("-p", "-port"); value != "" {
		port = value
	}
	addr := s.fixtures.Network.Address(host)
	now := clock.Now()
	lines := []string{
		"- Nikto v2.5.0",
		niktoRule,
		"+ Target IP:          " + addr,
		"+ Target Hostname:    " + host,
		"+ Target Port:        " + port,
		"+ Start Time:         " + now.Format(dateLayout) + " (GMT0)",
		niktoRule,
	}
	lines = append(lines, s.fixtures.Security.Findings...)
	lines = append(lines,
		fmt.Sprintf("+ 8102 requests: 0 error(s) and %d item(s) reported on remote host", len(s.fixtures.Security.Findings)),
		"+ End Time:           "+now.Format(dateLayout)+" (GMT0) (0 seconds)",
		niktoRule,
		"+ 1 host(s) tested",
	)
	return model.NewOutput(strings.Join(lines, "\n"))
}

func (s *Service) wpscan(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, wpscanValued...)
	if unknown := args.Unknown(append(wpscanValued, wpscanBoolean...)...); unknown != "" {
		return model.NewUsage("Scan Aborted: invalid option: " + unknown)
	}
	address := args.Value("--url")
	if address == "" {
		return model.NewUsage(wpscanRequired)
	}
	host, _ := target(address, defaultWeb)
	wp := s.fixtures.Security.WordPress
	lines := []string{
		"_______________________________________________________________",
		"         __          _______   _____",
		"         \\ \\        / /  __ \\ / ____|",
		"          \\ \\  /\\  / /| |__) | (___   ___  __ _ _ __ ®",
		"           \\ \\/  \\/ / |  ___/ \\___ \\ / __|/ _` | '_ \\",
		"            \\  /\\  /  | |     ____) | (__| (_| | | | |",
		"             \\/  \\/   |_|    |_____/ \\___|\\__,_|_| |_|",
		"",
		"         WordPress Security Scanner by the WPScan Team",
		"                         Version 3.8.25",
		"_______________________________________________________________",
		"",
		fmt.Sprintf("[+] URL: %s [%s]", address, s.fixtures.Network.Address(host)),
		"[+] Started: " + clock.Now().Format("Mon Jan _2 15:04:05 2006"),
		"",
		"Interesting Finding(s):",
		"",
		"[+] Headers",
		" | Interesting Entry: Server: " + s.fixtures.Network.Server,
		"",
		fmt.Sprintf("[+] WordPress version %s identified (Insecure).", wp.Version),
		"",
		"[+] WordPress theme in use: " + wp.Theme,
		"",
		fmt.Sprintf("[+] Enumerating plugins: %d found", len(wp.Plugins)),
	}
	for _, plugin := range wp.Plugins {
		lines = append(lines, " | "+plugin)
	}
	enumerate := args.Value("-e", "--enumerate")
	if strings.Contains(enumerate, "u") {
		lines = append(lines, "", "[i] User(s) Identified:")
		for _, user := range wp.Users {
			lines = append(lines, "", "[+] "+user, " | Found By: Author Id Brute Forcing - Author Pattern (Aggressive Detection)")
		}
	}
	lines = append(lines, "", "[+] Finished: "+clock.Now().Format("Mon Jan _2 15:04:05 2006"), "[+] Requests Done: 172")
	return model.NewOutput(strings.Join(lines, "\n"))
}
