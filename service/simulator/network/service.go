package network

import (
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"

	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
)

const name = "network"

// Service simulates network clients. No socket is ever opened; peers,
// banners and pages come from the injected fixture set.
type Service struct {
	fixtures *fixture.Set
}

// New creates a network simulator
func New(fixtures *fixture.Set) *Service {
	return &Service{fixtures: fixtures}
}

// Name returns the simulator name
func (s *Service) Name() string {
	return name
}

// Category returns the network category
func (s *Service) Category() types.Category {
	return types.CategoryNetwork
}

// Commands returns owned commands
func (s *Service) Commands() types.Signatures {
	return []types.Signature{
		{Name: "ssh", Description: "open a remote shell", Usage: sshUsage},
		{Name: "nc", Description: "read and write network connections", Usage: ncUsage},
		{Name: "netcat", Description: "alias of nc", Usage: ncUsage},
		{Name: "telnet", Description: "connect to a remote host", Usage: telnetUsage},
		{Name: "curl", Description: "transfer a URL", Usage: "curl [-I] [-i] [-s] [-v] [-o file] <url>"},
		{Name: "wget", Description: "download a URL", Usage: "wget [-q] [-O file] <url>"},
		{Name: "ping", Description: "send ICMP echo requests", Usage: "ping [-c count] <host>"},
	}
}

// Command returns the executable for a command name
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "ssh":
		return s.ssh, nil
	case "nc", "netcat":
		return s.nc, nil
	case "telnet":
		return s.telnet, nil
	case "curl":
		return s.curl, nil
	case "wget":
		return s.wget, nil
	case "ping":
		return s.ping, nil
	}
	return nil, types.NewCommandNotFoundError(s.Name(), name)
}

// service returns the well known service name for a port.
func (s *Service) service(port string) string {
	for _, candidate := range s.fixtures.Security.Ports {
		if strconv.Itoa(candidate.Port) == port {
			return candidate.Service
		}
	}
	return "*"
}

// validPort reports whether port is a number in the TCP port range.
func validPort(port string) bool {
	value, err := strconv.Atoi(port)
	return err == nil && value > 0 && value <= 65535
}

// endpoint splits a URL into host, port and path, defaulting to http.
func endpoint(raw string) (host, port, path string) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return strings.TrimPrefix(raw, "http://"), "80", "/"
	}
	host, port, path = parsed.Hostname(), parsed.Port(), parsed.EscapedPath()
	if port == "" {
		port = "80"
		if parsed.Scheme == "https" {
			port = "443"
		}
	}
	if path == "" {
		path = "/"
	}
	return host, port, path
}

// seed derives a stable number from text so that canned figures vary by target.
func seed(text string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return h.Sum32()
}
