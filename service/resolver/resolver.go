// Package resolver implements working directory arithmetic for cd. It is
// purely string based: no path is ever checked for existence.
package resolver

import (
	"strings"

	"github.com/viant/shellsim/model"
)

const (
	homeAlias  = "~"
	parentDir  = ".."
	currentDir = "."
)

// Resolve returns the working directory cd would move to.
func Resolve(args []string, cwd, home string) string {
	if cwd == "" {
		cwd = model.RootDirectory
	}
	if len(args) == 0 || args[0] == homeAlias {
		return home
	}
	target := args[0]
	switch {
	case strings.HasPrefix(target, homeAlias+"/"):
		return join(home, target[2:])
	case strings.HasPrefix(target, "/"):
		return trim(target)
	case target == parentDir:
		return parent(cwd)
	case target == currentDir:
		return cwd
	default:
		return join(cwd, target)
	}
}

// Cd resolves args into a result; cd cannot fail.
func Cd(args []string, cwd, home string) *model.Result {
	ret := model.NewOutput("")
	ret.NewWorkingDirectory = Resolve(args, cwd, home)
	return ret
}

func parent(cwd string) string {
	segments := segments(cwd)
	if len(segments) <= 1 {
		return model.RootDirectory
	}
	return "/" + strings.Join(segments[:len(segments)-1], "/")
}

func segments(path string) []string {
	var ret []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			ret = append(ret, segment)
		}
	}
	return ret
}

func join(base, name string) string {
	name = strings.TrimRight(name, "/")
	if name == "" {
		return trim(base)
	}
	if base == model.RootDirectory {
		return "/" + name
	}
	return trim(base) + "/" + name
}

// trim removes trailing slashes while keeping the root intact.
func trim(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return model.RootDirectory
	}
	return trimmed
}
