package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
)

const ipUsage = "Usage: ip [ OPTIONS ] OBJECT { COMMAND | help }\nwhere  OBJECT := { address | link | route }"

func (s *Service) ip(ctx context.Context, call *types.Call) *model.Result {
	if len(call.Args) == 0 {
		return model.NewUsage(ipUsage)
	}
	object := call.Args[0]
	switch {
	case len(object) > 1 && object[0] == '-':
		return model.NewUsage(fmt.Sprintf("Option \"%s\" is unknown, try \"ip -help\".", object))
	case object == "help":
		return model.NewInfo(ipUsage)
	case strings.HasPrefix("address", object):
		return model.NewOutput(s.addresses(true))
	case strings.HasPrefix("link", object):
		return model.NewOutput(s.addresses(false))
	case strings.HasPrefix("route", object):
		return model.NewOutput(strings.Join(s.fixtures.Routes, "\n"))
	}
	return model.NewUsage(fmt.Sprintf("Object \"%s\" is unknown, try \"ip help\".", object))
}

func (s *Service) addresses(withInet bool) string {
	var lines []string
	for _, iface := range s.fixtures.Interfaces {
		qdisc, state, link := "fq_codel", "UP", "ether "+iface.MAC+" brd ff:ff:ff:ff:ff:ff"
		if iface.Loopback() {
			qdisc, state, link = "noqueue", "UNKNOWN", "loopback 00:00:00:00:00:00 brd 00:00:00:00:00:00"
		}
		lines = append(lines,
			fmt.Sprintf("%d: %s: <%s> mtu %d qdisc %s state %s group default qlen 1000", iface.Index, iface.Name, iface.Flags, iface.MTU, qdisc, state),
			"    link/"+link,
		)
		if !withInet {
			continue
		}
		if iface.Inet != "" {
			if iface.Loopback() {
				lines = append(lines, fmt.Sprintf("    inet %s/%d scope host %s", iface.Inet, iface.Prefix, iface.Name))
			} else {
				lines = append(lines, fmt.Sprintf("    inet %s/%d brd %s scope global dynamic %s", iface.Inet, iface.Prefix, iface.Broadcast, iface.Name))
			}
			lines = append(lines, "       valid_lft forever preferred_lft forever")
		}
		if iface.Inet6 != "" {
			if iface.Loopback() {
				lines = append(lines, fmt.Sprintf("    inet6 %s/128 scope host", iface.Inet6))
			} else {
				lines = append(lines, fmt.Sprintf("    inet6 %s/64 scope link", iface.Inet6))
			}
			lines = append(lines, "       valid_lft forever preferred_lft forever")
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Service) ifconfig(ctx context.Context, call *types.Call) *model.Result {
	interfaces := s.fixtures.Interfaces
	if len(call.Args) > 0 && call.Args[0] != "-a" {
		if arg := call.Args[0]; len(arg) > 1 && arg[0] == '-' {
			return model.NewUsage(fmt.Sprintf("ifconfig: option `%s' not recognised.\nUsage:\n  ifconfig [-a] [-v] [-s] <interface> [[<AF>] <address>]", arg))
		}
		iface := s.fixtures.Interface(call.Args[0])
		if iface == nil {
			return model.NewError(fmt.Sprintf("%s: error fetching interface information: Device not found", call.Args[0]))
		}
		interfaces = []*fixture.Interface{iface}
	}
	var blocks []string
	for _, iface := range interfaces {
		blocks = append(blocks, ifconfigBlock(iface))
	}
	return model.NewOutput(strings.Join(blocks, "\n\n"))
}

func ifconfigBlock(iface *fixture.Interface) string {
	var lines []string
	if iface.Loopback() {
		lines = append(lines,
			fmt.Sprintf("%s: flags=73<UP,LOOPBACK,RUNNING>  mtu %d", iface.Name, iface.MTU),
			fmt.Sprintf("        inet %s  netmask %s", iface.Inet, iface.Netmask),
		)
		if iface.Inet6 != "" {
			lines = append(lines, fmt.Sprintf("        inet6 %s  prefixlen 128  scopeid 0x10<host>", iface.Inet6))
		}
		lines = append(lines, "        loop  txqueuelen 1000  (Local Loopback)")
	} else {
		lines = append(lines,
			fmt.Sprintf("%s: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu %d", iface.Name, iface.MTU),
			fmt.Sprintf("        inet %s  netmask %s  broadcast %s", iface.Inet, iface.Netmask, iface.Broadcast),
		)
		if iface.Inet6 != "" {
			lines = append(lines, fmt.Sprintf("        inet6 %s  prefixlen 64  scopeid 0x20<link>", iface.Inet6))
		}
		lines = append(lines, fmt.Sprintf("        ether %s  txqueuelen 1000  (Ethernet)", iface.MAC))
	}
	lines = append(lines,
		fmt.Sprintf("        RX packets %d  bytes %d (%s)", iface.RXPackets, iface.RXBytes, decimalBytes(iface.RXBytes)),
		"        RX errors 0  dropped 0  overruns 0  frame 0",
		fmt.Sprintf("        TX packets %d  bytes %d (%s)", iface.TXPackets, iface.TXBytes, decimalBytes(iface.TXBytes)),
		"        TX errors 0  dropped 0 overruns 0  carrier 0  collisions 0",
	)
	return strings.Join(lines, "\n")
}

// decimalBytes renders bytes with SI units as net-tools does.
func decimalBytes(value int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(value)
	unit := 0
	for size >= 1000 && unit < len(units)-1 {
		size /= 1000
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d.0 B", value)
	}
	return fmt.Sprintf("%.1f %s", size, units[unit])
}
