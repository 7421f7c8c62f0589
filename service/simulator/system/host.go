package system

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

const (
	dateLayout   = "Mon Jan _2 15:04:05 MST 2006"
	uptimeLayout = "15:04:05"
	unameFlags   = "asnrvmpio"
	uptimeUsage  = "Usage:\n uptime [options]"
)

func (s *Service) uname(ctx context.Context, call *types.Call) *model.Result {
	selected := map[rune]bool{}
	for _, arg := range call.Args {
		switch arg {
		case "--all":
			selected['a'] = true
			continue
		case "--kernel-name":
			selected['s'] = true
			continue
		case "--nodename":
			selected['n'] = true
			continue
		case "--kernel-release":
			selected['r'] = true
			continue
		}
		if len(arg) < 2 || arg[0] != '-' {
			return model.NewUsage(fmt.Sprintf("uname: extra operand '%s'\nTry 'uname --help' for more information.", arg))
		}
		for _, flag := range arg[1:] {
			if !strings.ContainsRune(unameFlags, flag) {
				return model.NewUsage(fmt.Sprintf("uname: invalid option -- '%c'\nTry 'uname --help' for more information.", flag))
			}
			selected[flag] = true
		}
	}
	env := s.environment(call)
	host := s.fixtures.Host
	fragments := []struct {
		flag  rune
		value string
	}{
		{'s', env.Kernel},
		{'n', env.Hostname},
		{'r', env.KernelRelease},
		{'v', host.KernelVersion},
		{'m', host.Machine},
		{'p', host.Processor},
		{'i', host.Machine},
		{'o', host.OS},
	}
	if len(selected) == 0 {
		selected['s'] = true
	}
	var parts []string
	for _, fragment := range fragments {
		if selected['a'] || selected[fragment.flag] {
			parts = append(parts, fragment.value)
		}
	}
	return model.NewOutput(strings.Join(parts, " "))
}

func (s *Service) date(ctx context.Context, call *types.Call) *model.Result {
	now := clock.Now()
	format := ""
	iso := false
	for _, arg := range call.Args {
		switch {
		case arg == "-u" || arg == "--utc":
			now = now.UTC()
		case arg == "-I" || arg == "--iso-8601":
			iso = true
		case strings.HasPrefix(arg, "+"):
			format = arg[1:]
		case len(arg) > 1 && arg[0] == '-':
			return model.NewUsage(fmt.Sprintf("date: invalid option -- '%s'\nTry 'date --help' for more information.", strings.TrimLeft(arg, "-")))
		default:
			return model.NewUsage(fmt.Sprintf("date: invalid date '%s'", arg))
		}
	}
	switch {
	case format != "":
		return model.NewOutput(strftime(now, format))
	case iso:
		return model.NewOutput(now.Format("2006-01-02"))
	}
	return model.NewOutput(now.Format(dateLayout))
}

// strftime supports the directives commonly used with date +FORMAT;
// unknown directives are kept verbatim.
func strftime(t time.Time, format string) string {
	layouts := map[byte]string{
		'Y': "2006", 'y': "06", 'm': "01", 'd': "02", 'e': "_2",
		'H': "15", 'I': "03", 'M': "04", 'S': "05", 'p': "PM",
		'a': "Mon", 'A': "Monday", 'b': "Jan", 'B': "January", 'h': "Jan",
		'Z': "MST", 'z': "-0700", 'F': "2006-01-02", 'T': "15:04:05", 'D': "01/02/06", 'R': "15:04",
	}
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		directive := format[i]
		switch directive {
		case '%':
			b.WriteByte('%')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 's':
			b.WriteString(strconv.FormatInt(t.Unix(), 10))
		case 'j':
			b.WriteString(fmt.Sprintf("%03d", t.YearDay()))
		default:
			if layout, ok := layouts[directive]; ok {
				b.WriteString(t.Format(layout))
				continue
			}
			b.WriteByte('%')
			b.WriteByte(directive)
		}
	}
	return b.String()
}

func (s *Service) uptime(ctx context.Context, call *types.Call) *model.Result {
	pretty := false
	for _, arg := range call.Args {
		switch {
		case arg == "-p" || arg == "--pretty":
			pretty = true
		case len(arg) < 2 || arg[0] != '-':
			return model.NewUsage(fmt.Sprintf("uptime: extra operand '%s'\n%s", arg, uptimeUsage))
		default:
			return model.NewUsage(fmt.Sprintf("uptime: invalid option -- '%s'\n%s", strings.TrimLeft(arg, "-"), uptimeUsage))
		}
	}
	if pretty {
		return model.NewOutput("up " + s.environment(call).Uptime)
	}
	return model.NewOutput(s.uptimeLine(call))
}

func (s *Service) uptimeLine(call *types.Call) string {
	env := s.environment(call)
	users := "users"
	if env.Users == 1 {
		users = "user"
	}
	return fmt.Sprintf(" %s up %s,  %d %s,  load average: %s", clock.Now().Format(uptimeLayout), env.Uptime, env.Users, users, env.Load)
}

func (s *Service) id(ctx context.Context, call *types.Call) *model.Result {
	env := s.environment(call)
	username := env.Username
	if username == "" {
		username = model.DefaultUsername
	}
	uid, gid := *env.UID, *env.GID
	groups := []string{fmt.Sprintf("%d(%s)", gid, username)}
	if uid != 0 {
		for _, group := range s.fixtures.Host.Groups {
			if group.ID == gid {
				continue
			}
			groups = append(groups, fmt.Sprintf("%d(%s)", group.ID, group.Name))
		}
	}
	if len(call.Args) > 0 {
		switch call.Args[0] {
		case "-u":
			return model.NewOutput(strconv.Itoa(uid))
		case "-g":
			return model.NewOutput(strconv.Itoa(gid))
		case "-un", "-nu":
			return model.NewOutput(username)
		case "-n":
			return model.NewUsage("id: cannot print only names or real IDs in default format")
		default:
			if !strings.HasPrefix(call.Args[0], "-") {
				if call.Args[0] != username {
					return model.NewError(fmt.Sprintf("id: '%s': no such user", call.Args[0]))
				}
				break
			}
			return model.NewUsage(fmt.Sprintf("id: invalid option -- '%s'\nTry 'id --help' for more information.", strings.TrimLeft(call.Args[0], "-")))
		}
	}
	return model.NewOutput(fmt.Sprintf("uid=%d(%s) gid=%d(%s) groups=%s", uid, username, gid, username, strings.Join(groups, ",")))
}
