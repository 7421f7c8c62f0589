package system

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
)

const psUsage = "\n\nUsage:\n ps [aux|-ef]"

func (s *Service) ps(ctx context.Context, call *types.Call) *model.Result {
	processes := s.withSelf(call, "ps "+strings.Join(call.Args, " "))
	switch strings.Join(call.Args, " ") {
	case "":
		return model.NewOutput(psShort(processes))
	case "aux", "-aux", "ax", "-ax", "-e u", "auxf":
		return model.NewOutput(psUser(processes))
	case "-ef", "-e -f", "-fe", "-eF", "-A -f":
		return model.NewOutput(psFull(processes))
	case "-e", "-A", "ax -o pid,comm":
		return model.NewOutput(psShort(processes))
	}
	return model.NewUsage(fmt.Sprintf("error: unsupported option '%s'%s", strings.Join(call.Args, " "), psUsage))
}

// withSelf appends the inspecting command as the newest process of the session user.
func (s *Service) withSelf(call *types.Call, command string) []*fixture.Process {
	ret := append([]*fixture.Process(nil), s.fixtures.Processes...)
	var last *fixture.Process
	for _, process := range ret {
		if last == nil || process.PID > last.PID {
			last = process
		}
	}
	self := &fixture.Process{User: call.Session.Username(), PID: 1, TTY: "pts/0", Stat: "R+", Time: "0:00", Command: strings.TrimSpace(command)}
	if last != nil {
		self.PID, self.PPID, self.TTY, self.Start = last.PID+1, last.PID, last.TTY, last.Start
	}
	if self.User == "" {
		self.User = model.DefaultUsername
	}
	return append(ret, self)
}

func psShort(processes []*fixture.Process) string {
	lines := []string{"    PID TTY          TIME CMD"}
	for _, process := range processes {
		if process.TTY == "?" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%7d %-8s %s %s", process.PID, process.TTY, clockTime(process.Time), command(process)))
	}
	return strings.Join(lines, "\n")
}

func psUser(processes []*fixture.Process) string {
	lines := []string{"USER         PID %CPU %MEM    VSZ   RSS TTY      STAT START   TIME COMMAND"}
	for _, process := range processes {
		lines = append(lines, fmt.Sprintf("%-8s %7d %4.1f %4.1f %6d %5d %-8s %-4s %5s %6s %s",
			truncate(process.User, 8), process.PID, process.CPU, process.Mem, process.VSZ, process.RSS,
			process.TTY, process.Stat, process.Start, process.Time, process.Command))
	}
	return strings.Join(lines, "\n")
}

func psFull(processes []*fixture.Process) string {
	lines := []string{"UID          PID    PPID  C STIME TTY          TIME CMD"}
	for _, process := range processes {
		lines = append(lines, fmt.Sprintf("%-8s %7d %7d %2d %-5s %-8s %s %s",
			truncate(process.User, 8), process.PID, process.PPID, int(process.CPU), process.Start,
			process.TTY, clockTime(process.Time), process.Command))
	}
	return strings.Join(lines, "\n")
}

func (s *Service) top(ctx context.Context, call *types.Call) *model.Result {
	for i := 0; i < len(call.Args); i++ {
		switch call.Args[i] {
		case "-b", "-c":
		case "-n", "-d", "-u", "-p":
			i++
		default:
			return model.NewUsage(fmt.Sprintf("top: unknown option '%s'\nUsage:\n  top -hv | -bcEeHiOSs1 -d secs -n max -u|U user -p pid(s)", strings.TrimLeft(call.Args[i], "-")))
		}
	}
	processes := s.withSelf(call, "top")
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].CPU != processes[j].CPU {
			return processes[i].CPU > processes[j].CPU
		}
		return processes[i].PID < processes[j].PID
	})
	env := s.environment(call)
	memory := s.fixtures.Memory
	users := "users"
	if env.Users == 1 {
		users = "user"
	}
	lines := []string{
		fmt.Sprintf("top - %s up %s,  %d %s,  load average: %s", clock.Now().Format(uptimeLayout), env.Uptime, env.Users, users, env.Load),
		"Tasks: " + s.fixtures.Host.Tasks,
		"%Cpu(s):" + s.fixtures.Host.CPU,
		fmt.Sprintf("MiB Mem : %8.1f total, %8.1f free, %8.1f used, %8.1f buff/cache", mib(memory.Total), mib(memory.Free), mib(memory.Used), mib(memory.Cache)),
		fmt.Sprintf("MiB Swap: %8.1f total, %8.1f free, %8.1f used. %8.1f avail Mem", mib(memory.SwapTotal), mib(memory.SwapFree), mib(memory.SwapUsed), mib(memory.Available)),
		"",
		"    PID USER      PR  NI    VIRT    RES    SHR S  %CPU  %MEM     TIME+ COMMAND",
	}
	for _, process := range processes {
		lines = append(lines, fmt.Sprintf("%7d %-8s  20   0 %7d %6d %6d %c %5.1f %5.1f %9s %s",
			process.PID, truncate(process.User, 8), process.VSZ, process.RSS, process.RSS*2/3,
			state(process), process.CPU, process.Mem, process.Time+".00", command(process)))
	}
	return model.NewOutput(strings.Join(lines, "\n"))
}

func mib(kib int64) float64 {
	return float64(kib) / 1024
}

func state(process *fixture.Process) byte {
	if process.Stat == "" {
		return 'S'
	}
	return process.Stat[0]
}

// command returns the executable name, e.g. bash for -bash.
func command(process *fixture.Process) string {
	fields := strings.Fields(strings.TrimPrefix(process.Command, "-"))
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(path.Base(fields[0]), ":")
}

// clockTime renders cumulative m:ss cpu time as hh:mm:ss.
func clockTime(value string) string {
	minutes, seconds, ok := strings.Cut(value, ":")
	if !ok {
		return "00:00:00"
	}
	var m, sec int
	_, _ = fmt.Sscanf(minutes, "%d", &m)
	_, _ = fmt.Sscanf(seconds, "%d", &sec)
	return fmt.Sprintf("%02d:%02d:%02d", m/60, m%60, sec)
}

func truncate(value string, width int) string {
	if len(value) <= width {
		return value
	}
	return value[:width-1] + "+"
}
