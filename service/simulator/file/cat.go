package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
)

func (s *Service) cat(ctx context.Context, call *types.Call) *model.Result {
	_, names, failure := operands(call, "")
	if failure != nil {
		return failure
	}
	if len(names) == 0 {
		return model.NewUsage("usage: cat <file>...")
	}
	var lines []string
	failed := false
	for _, arg := range names {
		path := s.abs(call, arg)
		if file := s.fixtures.File(path, call.Home); file != nil {
			lines = append(lines, file.Content)
			continue
		}
		if entry := s.fixtures.Entry(path, call.Home); entry != nil && !entry.Dir && readable(entry, call.Session.Username()) {
			continue // listed but content not modelled
		}
		failed = true
		switch {
		case s.isDir(path, call.Home):
			lines = append(lines, fmt.Sprintf("cat: %s: Is a directory", arg))
		case s.fixtures.Entry(path, call.Home) != nil:
			lines = append(lines, fmt.Sprintf("cat: %s: Permission denied", arg))
		default:
			lines = append(lines, fmt.Sprintf("cat: %s: No such file or directory", arg))
		}
	}
	output := strings.Join(lines, "\n")
	if failed {
		return model.NewError(output)
	}
	return model.NewOutput(output)
}

// readable checks the owner or other read bit of a mode string such as -rw-r-----.
func readable(entry *fixture.Entry, username string) bool {
	if len(entry.Mode) < 10 {
		return true
	}
	if entry.Owner == username || username == "root" {
		return entry.Mode[1] == 'r'
	}
	return entry.Mode[7] == 'r'
}
