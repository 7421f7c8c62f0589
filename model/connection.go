package model

import "fmt"

// Connection types produced by the network simulator.
const (
	ConnectionSSH    = "ssh"
	ConnectionNetcat = "nc"
	ConnectionTelnet = "telnet"
)

// Connection describes a simulated network session for the caller to record.
type Connection struct {
	Type         string `json:"type" yaml:"type"`
	Host         string `json:"host" yaml:"host"`
	Port         string `json:"port" yaml:"port"`
	User         string `json:"user" yaml:"user"`
	IdentityFile string `json:"identityFile" yaml:"identityFile"`
}

// String returns a compact descriptor, e.g. ssh://admin@10.0.0.5:2222
func (c *Connection) String() string {
	if c == nil {
		return ""
	}
	if c.User == "" {
		return fmt.Sprintf("%s://%s:%s", c.Type, c.Host, c.Port)
	}
	return fmt.Sprintf("%s://%s@%s:%s", c.Type, c.User, c.Host, c.Port)
}
