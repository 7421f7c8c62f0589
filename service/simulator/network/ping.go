package network

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
)

const (
	pingDefaultCount = 4
	pingMaxCount     = 1000
	pingUsage        = "ping: usage error: Destination address required"
	pingSyntax       = "Usage: ping [-c count] [-i interval] [-W timeout] [-s packetsize] <destination>"
)

var (
	pingValued  = []string{"-c", "-i", "-W", "-s"}
	pingBoolean = []string{"-4", "-6", "-n", "-q", "-v", "-D"}
)

func (s *Service) ping(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, pingValued...)
	if unknown := args.Unknown(append(pingValued, pingBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("ping: invalid option -- '%s'\n%s", strings.TrimLeft(unknown, "-"), pingSyntax))
	}
	host := args.First()
	if host == "" {
		return model.NewUsage(pingUsage)
	}
	count := pingDefaultCount
	if args.Has("-c") {
		value, err := strconv.Atoi(args.Value("-c"))
		if err != nil || value < 1 || value > pingMaxCount {
			return model.NewUsage(fmt.Sprintf("ping: invalid argument: '%s': out of range: 1 <= value <= %d", args.Value("-c"), pingMaxCount))
		}
		count = value
	}
	quiet := args.Has("-q")
	addr := s.fixtures.Network.Address(host)
	ttl := 56
	if strings.HasPrefix(addr, "10.") || strings.HasPrefix(addr, "127.") || strings.HasPrefix(addr, "192.168.") {
		ttl = 64
	}
	base := 0.3 + float64(seed(addr)%2000)/100
	lines := []string{fmt.Sprintf("PING %s (%s) 56(84) bytes of data.", host, addr)}
	var sum, sumSq float64
	minRTT, maxRTT := math.MaxFloat64, 0.0
	for i := 1; i <= count; i++ {
		rtt := base + float64((i*7)%5)*0.013
		sum += rtt
		sumSq += rtt * rtt
		minRTT, maxRTT = math.Min(minRTT, rtt), math.Max(maxRTT, rtt)
		if quiet {
			continue
		}
		lines = append(lines, fmt.Sprintf("64 bytes from %s: icmp_seq=%d ttl=%d time=%.3f ms", addr, i, ttl, rtt))
	}
	avg := sum / float64(count)
	mdev := math.Sqrt(math.Max(sumSq/float64(count)-avg*avg, 0))
	lines = append(lines,
		"",
		fmt.Sprintf("--- %s ping statistics ---", host),
		fmt.Sprintf("%d packets transmitted, %d received, 0%% packet loss, time %dms", count, count, (count-1)*1001+int(base)),
		fmt.Sprintf("rtt min/avg/max/mdev = %.3f/%.3f/%.3f/%.3f ms", minRTT, avg, maxRTT, mdev),
	)
	return model.NewOutput(strings.Join(lines, "\n"))
}
