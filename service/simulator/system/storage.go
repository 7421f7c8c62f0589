package system

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

func (s *Service) df(ctx context.Context, call *types.Call) *model.Result {
	human := false
	for _, arg := range call.Args {
		switch arg {
		case "-h", "--human-readable":
			human = true
		case "-k":
		default:
			return model.NewUsage(fmt.Sprintf("df: invalid option -- '%s'\nTry 'df --help' for more information.", strings.TrimLeft(arg, "-")))
		}
	}
	var lines []string
	if human {
		lines = append(lines, "Filesystem      Size  Used Avail Use% Mounted on")
		for _, mount := range s.fixtures.Mounts {
			lines = append(lines, fmt.Sprintf("%-14s %5s %5s %5s %3d%% %s", mount.Filesystem,
				humanKiB(mount.Blocks, ""), humanKiB(mount.Used, ""), humanKiB(mount.Available, ""), mount.UsePercent(), mount.MountedOn))
		}
		return model.NewOutput(strings.Join(lines, "\n"))
	}
	lines = append(lines, "Filesystem     1K-blocks     Used Available Use% Mounted on")
	for _, mount := range s.fixtures.Mounts {
		lines = append(lines, fmt.Sprintf("%-14s %9d %8d %9d %3d%% %s", mount.Filesystem,
			mount.Blocks, mount.Used, mount.Available, mount.UsePercent(), mount.MountedOn))
	}
	return model.NewOutput(strings.Join(lines, "\n"))
}

func (s *Service) free(ctx context.Context, call *types.Call) *model.Result {
	render := func(kib int64) string { return fmt.Sprint(kib) }
	for _, arg := range call.Args {
		switch arg {
		case "-h", "--human":
			render = func(kib int64) string { return humanKiB(kib, "i") }
		case "-m", "--mebi":
			render = func(kib int64) string { return fmt.Sprint(kib / 1024) }
		case "-k", "--kibi":
			render = func(kib int64) string { return fmt.Sprint(kib) }
		default:
			return model.NewUsage(fmt.Sprintf("free: invalid option -- '%s'\nUsage:\n free [options]", strings.TrimLeft(arg, "-")))
		}
	}
	memory := s.fixtures.Memory
	lines := []string{
		"               total        used        free      shared  buff/cache   available",
		fmt.Sprintf("Mem:     %11s %11s %11s %11s %11s %11s", render(memory.Total), render(memory.Used), render(memory.Free),
			render(memory.Shared), render(memory.Cache), render(memory.Available)),
		fmt.Sprintf("Swap:    %11s %11s %11s", render(memory.SwapTotal), render(memory.SwapUsed), render(memory.SwapFree)),
	}
	return model.NewOutput(strings.Join(lines, "\n"))
}

// humanKiB renders a KiB amount in powers of 1024 rounding up like coreutils;
// infix "i" yields free style units (Gi), "" df style units (G).
func humanKiB(kib int64, infix string) string {
	if kib == 0 {
		if infix == "" {
			return "0"
		}
		return "0B"
	}
	units := "KMGTP"
	size := float64(kib)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	if size < 10 {
		return fmt.Sprintf("%.1f%c%s", math.Ceil(size*10)/10, units[unit], infix)
	}
	return fmt.Sprintf("%.0f%c%s", math.Ceil(size), units[unit], infix)
}
