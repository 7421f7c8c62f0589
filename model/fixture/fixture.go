// Package fixture defines the static data tables rendered by the category
// simulators. Tables are injected into each simulator so that tests can
// substitute their own fixtures.
package fixture

import "strings"

// HomeAlias denotes the session home directory in fixture paths.
const HomeAlias = "~"

// Set groups all tables used by the simulators.
type Set struct {
	Host        Host         `json:"host" yaml:"host"`
	Directories []*Directory `json:"directories,omitempty" yaml:"directories,omitempty"`
	Files       []*File      `json:"files,omitempty" yaml:"files,omitempty"`
	Processes   []*Process   `json:"processes,omitempty" yaml:"processes,omitempty"`
	Interfaces  []*Interface `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Routes      []string     `json:"routes,omitempty" yaml:"routes,omitempty"`
	Mounts      []*Mount     `json:"mounts,omitempty" yaml:"mounts,omitempty"`
	Memory      Memory       `json:"memory" yaml:"memory"`
	Network     Network      `json:"network" yaml:"network"`
	Security    Security     `json:"security" yaml:"security"`
}

// Host describes the simulated machine.
type Host struct {
	Kernel        string  `json:"kernel" yaml:"kernel"`
	KernelRelease string  `json:"kernelRelease" yaml:"kernelRelease"`
	KernelVersion string  `json:"kernelVersion" yaml:"kernelVersion"`
	Machine       string  `json:"machine" yaml:"machine"`
	Processor     string  `json:"processor" yaml:"processor"`
	OS            string  `json:"os" yaml:"os"`
	Uptime        string  `json:"uptime" yaml:"uptime"`
	Users         int     `json:"users" yaml:"users"`
	Load          string  `json:"load" yaml:"load"`
	UID           int     `json:"uid" yaml:"uid"`
	GID           int     `json:"gid" yaml:"gid"`
	Groups        []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
	Tasks         string  `json:"tasks" yaml:"tasks"`
	CPU           string  `json:"cpu" yaml:"cpu"`
}

// Group is a unix group membership rendered by id.
type Group struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Entry is a single directory entry.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Dir      bool   `json:"dir,omitempty" yaml:"dir,omitempty"`
	Mode     string `json:"mode" yaml:"mode"`
	Links    int    `json:"links" yaml:"links"`
	Owner    string `json:"owner" yaml:"owner"`
	Group    string `json:"group" yaml:"group"`
	Size     int64  `json:"size" yaml:"size"`
	Modified string `json:"modified" yaml:"modified"`
}

// Hidden reports whether the entry is a dot entry.
func (e *Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Directory is a fixed listing for a path.
type Directory struct {
	Path    string   `json:"path" yaml:"path"`
	Entries []*Entry `json:"entries" yaml:"entries"`
}

// File holds canned content for a path.
type File struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// Process is a process table row.
type Process struct {
	User    string  `json:"user" yaml:"user"`
	PID     int     `json:"pid" yaml:"pid"`
	PPID    int     `json:"ppid" yaml:"ppid"`
	CPU     float64 `json:"cpu" yaml:"cpu"`
	Mem     float64 `json:"mem" yaml:"mem"`
	VSZ     int64   `json:"vsz" yaml:"vsz"`
	RSS     int64   `json:"rss" yaml:"rss"`
	TTY     string  `json:"tty" yaml:"tty"`
	Stat    string  `json:"stat" yaml:"stat"`
	Start   string  `json:"start" yaml:"start"`
	Time    string  `json:"time" yaml:"time"`
	Command string  `json:"command" yaml:"command"`
}

// Interface is a network interface.
type Interface struct {
	Index     int    `json:"index" yaml:"index"`
	Name      string `json:"name" yaml:"name"`
	Flags     string `json:"flags" yaml:"flags"`
	MTU       int    `json:"mtu" yaml:"mtu"`
	Inet      string `json:"inet" yaml:"inet"`
	Prefix    int    `json:"prefix" yaml:"prefix"`
	Netmask   string `json:"netmask" yaml:"netmask"`
	Broadcast string `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
	Inet6     string `json:"inet6,omitempty" yaml:"inet6,omitempty"`
	MAC       string `json:"mac,omitempty" yaml:"mac,omitempty"`
	RXPackets int64  `json:"rxPackets" yaml:"rxPackets"`
	RXBytes   int64  `json:"rxBytes" yaml:"rxBytes"`
	TXPackets int64  `json:"txPackets" yaml:"txPackets"`
	TXBytes   int64  `json:"txBytes" yaml:"txBytes"`
}

// Loopback reports whether the interface is the loopback device.
func (i *Interface) Loopback() bool {
	return strings.Contains(i.Flags, "LOOPBACK")
}

// Mount is a mounted filesystem; sizes are 1K blocks.
type Mount struct {
	Filesystem string `json:"filesystem" yaml:"filesystem"`
	Blocks     int64  `json:"blocks" yaml:"blocks"`
	Used       int64  `json:"used" yaml:"used"`
	Available  int64  `json:"available" yaml:"available"`
	MountedOn  string `json:"mountedOn" yaml:"mountedOn"`
}

// UsePercent returns used/blocks rounded up like df does.
func (m *Mount) UsePercent() int {
	if m.Blocks == 0 {
		return 0
	}
	total := m.Used + m.Available
	if total == 0 {
		return 0
	}
	pct := m.Used * 100 / total
	if m.Used*100%total != 0 {
		pct++
	}
	return int(pct)
}

// Memory is expressed in KiB.
type Memory struct {
	Total     int64 `json:"total" yaml:"total"`
	Used      int64 `json:"used" yaml:"used"`
	Free      int64 `json:"free" yaml:"free"`
	Shared    int64 `json:"shared" yaml:"shared"`
	Cache     int64 `json:"cache" yaml:"cache"`
	Available int64 `json:"available" yaml:"available"`
	SwapTotal int64 `json:"swapTotal" yaml:"swapTotal"`
	SwapUsed  int64 `json:"swapUsed" yaml:"swapUsed"`
	SwapFree  int64 `json:"swapFree" yaml:"swapFree"`
}

// Network holds canned remote peers.
type Network struct {
	Resolve      map[string]string `json:"resolve,omitempty" yaml:"resolve,omitempty"`
	DefaultPeer  string            `json:"defaultPeer" yaml:"defaultPeer"`
	Server       string            `json:"server" yaml:"server"`
	Page         string            `json:"page" yaml:"page"`
	RemoteKernel string            `json:"remoteKernel" yaml:"remoteKernel"`
}

// Address returns the canned address for host, host itself when it already is one.
func (n *Network) Address(host string) string {
	if addr, ok := n.Resolve[host]; ok {
		return addr
	}
	if isAddress(host) {
		return host
	}
	if n.DefaultPeer != "" {
		return n.DefaultPeer
	}
	return "93.184.216.34"
}

func isAddress(host string) bool {
	if host == "" {
		return false
	}
	for _, c := range host {
		if (c < '0' || c > '9') && c != '.' && c != ':' {
			return false
		}
	}
	return true
}

// Security holds canned findings for the security tooling simulator.
type Security struct {
	Ports       []*Port      `json:"ports,omitempty" yaml:"ports,omitempty"`
	Paths       []*WebPath   `json:"paths,omitempty" yaml:"paths,omitempty"`
	Databases   []string     `json:"databases,omitempty" yaml:"databases,omitempty"`
	Findings    []string     `json:"findings,omitempty" yaml:"findings,omitempty"`
	WordPress   WordPress    `json:"wordpress" yaml:"wordpress"`
	Credentials []Credential `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// Port is an open port reported by a scan.
type Port struct {
	Port     int    `json:"port" yaml:"port"`
	Protocol string `json:"protocol" yaml:"protocol"`
	State    string `json:"state" yaml:"state"`
	Service  string `json:"service" yaml:"service"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
}

// WebPath is a discovered web resource.
type WebPath struct {
	Path   string `json:"path" yaml:"path"`
	Status int    `json:"status" yaml:"status"`
	Size   int    `json:"size" yaml:"size"`
}

// WordPress describes a canned WordPress install.
type WordPress struct {
	Version string   `json:"version" yaml:"version"`
	Theme   string   `json:"theme" yaml:"theme"`
	Plugins []string `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Users   []string `json:"users,omitempty" yaml:"users,omitempty"`
}

// Credential is a login/password pair a brute force run "finds".
type Credential struct {
	Login    string `json:"login" yaml:"login"`
	Password string `json:"password" yaml:"password"`
}
