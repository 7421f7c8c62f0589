package security

import (
	"hash/fnv"
	"net/url"
	"strings"

	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
)

const (
	name          = "security"
	rule          = "==============================================================="
	dateLayout    = "2006-01-02 15:04:05"
	clockLayout   = "15:04:05"
	nmapLayout    = "2006-01-02 15:04 MST"
	defaultWeb    = "80"
	defaultSecure = "443"
)

// Service simulates offensive security tooling. Every report is rendered
// from the injected scan tables and parameterized by the requested target.
type Service struct {
	fixtures *fixture.Set
}

// New creates a security tooling simulator
func New(fixtures *fixture.Set) *Service {
	return &Service{fixtures: fixtures}
}

// Name returns the simulator name
func (s *Service) Name() string {
	return name
}

// Category returns the security category
func (s *Service) Category() types.Category {
	return types.CategorySecurity
}

// Commands returns owned commands
func (s *Service) Commands() types.Signatures {
	return []types.Signature{
		{Name: "nmap", Description: "network port scanner", Usage: nmapUsage},
		{Name: "gobuster", Description: "directory brute forcer", Usage: gobusterUsage},
		{Name: "sqlmap", Description: "SQL injection scanner", Usage: "sqlmap -u <url> [--dbs] [--batch]"},
		{Name: "metasploit", Description: "exploitation framework console", Usage: "metasploit [-q]"},
		{Name: "msfconsole", Description: "exploitation framework console", Usage: "msfconsole [-q]"},
		{Name: "hydra", Description: "network login cracker", Usage: "hydra -l <login> -P <wordlist> <service://host>"},
		{Name: "wpscan", Description: "WordPress vulnerability scanner", Usage: "wpscan --url <url> [--enumerate u]"},
		{Name: "nikto", Description: "web server scanner", Usage: "nikto -h <host> [-p port]"},
	}
}

// Command returns the executable for a command name
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "nmap":
		return s.nmap, nil
	case "gobuster":
		return s.gobuster, nil
	case "sqlmap":
		return s.sqlmap, nil
	case "metasploit", "msfconsole":
		return s.msfconsole, nil
	case "hydra":
		return s.hydra, nil
	case "wpscan":
		return s.wpscan, nil
	case "nikto":
		return s.nikto, nil
	}
	return nil, types.NewCommandNotFoundError(s.Name(), name)
}

// target splits a host or URL into host and port.
func target(raw, defaultPort string) (host, port string) {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw, defaultPort
	}
	port = parsed.Port()
	if port == "" {
		port = defaultPort
		if parsed.Scheme == "https" {
			port = defaultSecure
		}
	}
	return parsed.Hostname(), port
}

// seed derives a stable number from text so that canned figures vary by target.
func seed(text string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return h.Sum32()
}
