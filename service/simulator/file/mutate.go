package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

// operands splits call arguments, rejecting flags outside allowed letters.
func operands(call *types.Call, allowed string) (flags string, operands []string, result *model.Result) {
	for _, arg := range call.Args {
		if len(arg) < 2 || arg[0] != '-' {
			operands = append(operands, arg)
			continue
		}
		for _, flag := range arg[1:] {
			if !strings.ContainsRune(allowed, flag) {
				return "", nil, model.NewUsage(fmt.Sprintf("%s: invalid option -- '%c'", call.Name, flag))
			}
			flags += string(flag)
		}
	}
	return flags, operands, nil
}

func missingOperand(name string) *model.Result {
	return model.NewUsage(fmt.Sprintf("%s: missing file operand\nTry '%s --help' for more information.", name, name))
}

func done() *model.Result {
	return model.NewSuccess("")
}

func (s *Service) touch(ctx context.Context, call *types.Call) *model.Result {
	_, names, failure := operands(call, "acm")
	if failure != nil {
		return failure
	}
	if len(names) == 0 {
		return missingOperand(call.Name)
	}
	return done()
}

func (s *Service) mkdir(ctx context.Context, call *types.Call) *model.Result {
	flags, names, failure := operands(call, "pv")
	if failure != nil {
		return failure
	}
	if len(names) == 0 {
		return missingOperand(call.Name)
	}
	parents := strings.Contains(flags, "p")
	for _, name := range names {
		if !parents && s.exists(s.abs(call, name), call.Home) {
			return model.NewError(fmt.Sprintf("mkdir: cannot create directory '%s': File exists", name))
		}
	}
	return done()
}

func (s *Service) rm(ctx context.Context, call *types.Call) *model.Result {
	flags, names, failure := operands(call, "rRfiv")
	if failure != nil {
		return failure
	}
	if len(names) == 0 {
		return missingOperand(call.Name)
	}
	recursive := strings.ContainsAny(flags, "rR")
	for _, name := range names {
		if !recursive && s.isDir(s.abs(call, name), call.Home) {
			return model.NewError(fmt.Sprintf("rm: cannot remove '%s': Is a directory", name))
		}
	}
	return done()
}

func (s *Service) cp(ctx context.Context, call *types.Call) *model.Result {
	flags, names, failure := operands(call, "rRaiv")
	if failure != nil {
		return failure
	}
	if result := transfer(call.Name, names); result != nil {
		return result
	}
	recursive := strings.ContainsAny(flags, "rRa")
	for _, name := range names[:len(names)-1] {
		if !recursive && s.isDir(s.abs(call, name), call.Home) {
			return model.NewError(fmt.Sprintf("cp: -r not specified; omitting directory '%s'", name))
		}
	}
	return done()
}

func (s *Service) mv(ctx context.Context, call *types.Call) *model.Result {
	_, names, failure := operands(call, "fiv")
	if failure != nil {
		return failure
	}
	if result := transfer(call.Name, names); result != nil {
		return result
	}
	return done()
}

// transfer validates source/destination operands of cp and mv.
func transfer(name string, operands []string) *model.Result {
	switch len(operands) {
	case 0:
		return missingOperand(name)
	case 1:
		return model.NewUsage(fmt.Sprintf("%s: missing destination file operand after '%s'", name, operands[0]))
	}
	return nil
}
