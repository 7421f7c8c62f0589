package model

import "strings"

// RootDirectory is the root of the simulated filesystem.
const RootDirectory = "/"

// Identity holds display strings used by whoami, hostname and templated output.
type Identity struct {
	Username string `json:"username" yaml:"username"`
	Hostname string `json:"hostname" yaml:"hostname"`
}

// Session is the caller owned context threaded through every call.
// The engine reads it and never mutates it.
type Session struct {
	ID                string                 `json:"id,omitempty" yaml:"id,omitempty"`
	WorkingDirectory  string                 `json:"workingDirectory" yaml:"workingDirectory"`
	Identity          Identity               `json:"identity" yaml:"identity"`
	NetworkEnabled    bool                   `json:"networkEnabled" yaml:"networkEnabled"`
	ActiveConnections []*Connection          `json:"activeConnections,omitempty" yaml:"activeConnections,omitempty"`
	ContextData       map[string]interface{} `json:"contextData,omitempty" yaml:"contextData,omitempty"`
}

// Cwd returns the working directory, falling back to root when unset.
func (s *Session) Cwd() string {
	if s == nil || s.WorkingDirectory == "" {
		return RootDirectory
	}
	return s.WorkingDirectory
}

// Username returns the session username.
func (s *Session) Username() string {
	if s == nil {
		return ""
	}
	return s.Identity.Username
}

// Hostname returns the session hostname.
func (s *Session) Hostname() string {
	if s == nil {
		return ""
	}
	return s.Identity.Hostname
}

// Clone returns a copy that can be modified without affecting the receiver.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	ret := *s
	ret.ActiveConnections = append([]*Connection(nil), s.ActiveConnections...)
	if s.ContextData != nil {
		ret.ContextData = make(map[string]interface{}, len(s.ContextData))
		for k, v := range s.ContextData {
			ret.ContextData[k] = v
		}
	}
	return &ret
}

// Apply folds the deltas described by result into the session. This is the
// caller side of the contract: the engine only describes effects. Results of
// failed commands leave the session untouched.
func (s *Session) Apply(result *Result) {
	if s == nil || !result.Succeeded() {
		return
	}
	if result.NewWorkingDirectory != "" {
		s.WorkingDirectory = result.NewWorkingDirectory
	}
	if conn := result.Connection(); conn != nil {
		s.ActiveConnections = append(s.ActiveConnections, conn)
	}
}

// NewSession creates a session for the supplied identity rooted at its home directory.
func NewSession(username, hostname string) *Session {
	return &Session{
		WorkingDirectory: HomeDirectory(username),
		Identity:         Identity{Username: username, Hostname: hostname},
		NetworkEnabled:   true,
	}
}

// HomeDirectory returns the home directory for the supplied user.
func HomeDirectory(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultUsername
	}
	if username == "root" {
		return "/root"
	}
	return "/home/" + username
}

// DefaultUsername is used when a session carries no identity.
const DefaultUsername = "operator"
