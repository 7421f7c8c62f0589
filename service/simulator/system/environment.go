package system

import (
	"log"

	"github.com/viant/shellsim/model/types"
)

// Environment carries host facts rendered by system commands. A session may
// override any of them through ContextData, keyed by field name.
type Environment struct {
	Username      string
	Hostname      string
	Kernel        string
	KernelRelease string
	Uptime        string
	Users         int
	Load          string
	UID           *int
	GID           *int
}

// environment merges fixture defaults, the session identity and ContextData.
func (s *Service) environment(call *types.Call) *Environment {
	host := s.fixtures.Host
	uid, gid := host.UID, host.GID
	username := call.Session.Username()
	if username == "root" {
		uid, gid = 0, 0
	}
	ret := &Environment{
		Username:      username,
		Hostname:      call.Session.Hostname(),
		Kernel:        host.Kernel,
		KernelRelease: host.KernelRelease,
		Uptime:        host.Uptime,
		Users:         host.Users,
		Load:          host.Load,
		UID:           &uid,
		GID:           &gid,
	}
	if call.Session == nil || len(call.Session.ContextData) == 0 {
		return ret
	}
	overlay := &Environment{}
	if err := s.converter.Convert(call.Session.ContextData, overlay); err != nil {
		log.Printf("system: ignoring context data: %v", err)
		return ret
	}
	merge(ret, overlay)
	return ret
}

func merge(dest, overlay *Environment) {
	if overlay.Username != "" {
		dest.Username = overlay.Username
	}
	if overlay.Hostname != "" {
		dest.Hostname = overlay.Hostname
	}
	if overlay.Kernel != "" {
		dest.Kernel = overlay.Kernel
	}
	if overlay.KernelRelease != "" {
		dest.KernelRelease = overlay.KernelRelease
	}
	if overlay.Uptime != "" {
		dest.Uptime = overlay.Uptime
	}
	if overlay.Users != 0 {
		dest.Users = overlay.Users
	}
	if overlay.Load != "" {
		dest.Load = overlay.Load
	}
	if overlay.UID != nil {
		dest.UID = overlay.UID
	}
	if overlay.GID != nil {
		dest.GID = overlay.GID
	}
}
