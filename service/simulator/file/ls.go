package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
)

func (s *Service) ls(ctx context.Context, call *types.Call) *model.Result {
	var all, long bool
	var paths []string
	for _, arg := range call.Args {
		if len(arg) < 2 || arg[0] != '-' {
			paths = append(paths, arg)
			continue
		}
		for _, flag := range arg[1:] {
			switch flag {
			case 'a':
				all = true
			case 'l':
				long = true
			default:
				return model.NewUsage(fmt.Sprintf("ls: invalid option -- '%c'\nusage: ls [-al] [path]", flag))
			}
		}
	}
	var entries []*fixture.Entry
	if len(paths) == 0 {
		dir := s.fixtures.Directory(call.Cwd(), call.Home)
		if dir == nil {
			dir = s.fixtures.HomeDirectory()
		}
		entries = dir.Entries
	} else {
		path := s.abs(call, paths[0])
		if dir := s.fixtures.Directory(path, call.Home); dir != nil {
			entries = dir.Entries
		} else if entry := s.fixtures.Entry(path, call.Home); entry != nil {
			single := *entry
			single.Name = paths[0]
			entries = []*fixture.Entry{&single}
		} else {
			return model.NewError(fmt.Sprintf("ls: cannot access '%s': No such file or directory", paths[0]))
		}
	}
	var visible []*fixture.Entry
	for _, entry := range entries {
		if entry.Hidden() && !all {
			continue
		}
		visible = append(visible, entry)
	}
	if long {
		return model.NewOutput(longFormat(visible))
	}
	names := make([]string, 0, len(visible))
	for _, entry := range visible {
		names = append(names, entry.Name)
	}
	return model.NewOutput(strings.Join(names, "  "))
}

// longFormat renders "ls -l" rows preceded by the 1K block total.
func longFormat(entries []*fixture.Entry) string {
	var total int64
	var linksWidth, ownerWidth, groupWidth, sizeWidth int
	for _, entry := range entries {
		total += blocks(entry.Size)
		linksWidth = max(linksWidth, len(fmt.Sprint(entry.Links)))
		ownerWidth = max(ownerWidth, len(entry.Owner))
		groupWidth = max(groupWidth, len(entry.Group))
		sizeWidth = max(sizeWidth, len(fmt.Sprint(entry.Size)))
	}
	lines := []string{fmt.Sprintf("total %d", total)}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %*d %-*s %-*s %*d %s %s",
			entry.Mode, linksWidth, entry.Links, ownerWidth, entry.Owner, groupWidth, entry.Group,
			sizeWidth, entry.Size, entry.Modified, entry.Name))
	}
	return strings.Join(lines, "\n")
}

// blocks returns 1K blocks allocated in 4K units.
func blocks(size int64) int64 {
	return (size + 4095) / 4096 * 4
}
