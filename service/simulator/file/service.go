package file

import (
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/resolver"
)

const name = "file"

// Service simulates file operations over a fixed directory table. Mutating
// commands succeed silently; nothing is persisted.
type Service struct {
	fixtures *fixture.Set
}

// New creates a file operations simulator
func New(fixtures *fixture.Set) *Service {
	return &Service{fixtures: fixtures}
}

// Name returns the simulator name
func (s *Service) Name() string {
	return name
}

// Category returns the file category
func (s *Service) Category() types.Category {
	return types.CategoryFile
}

// Commands returns owned commands
func (s *Service) Commands() types.Signatures {
	return []types.Signature{
		{Name: "ls", Description: "list directory contents", Usage: "ls [-al] [path]"},
		{Name: "cat", Description: "print file contents", Usage: "cat <file>..."},
		{Name: "touch", Description: "create an empty file", Usage: "touch <file>..."},
		{Name: "mkdir", Description: "create a directory", Usage: "mkdir [-p] <dir>..."},
		{Name: "rm", Description: "remove files or directories", Usage: "rm [-rf] <path>..."},
		{Name: "cp", Description: "copy files", Usage: "cp [-r] <source> <dest>"},
		{Name: "mv", Description: "move or rename files", Usage: "mv <source> <dest>"},
	}
}

// Command returns the executable for a command name
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "ls":
		return s.ls, nil
	case "cat":
		return s.cat, nil
	case "touch":
		return s.touch, nil
	case "mkdir":
		return s.mkdir, nil
	case "rm":
		return s.rm, nil
	case "cp":
		return s.cp, nil
	case "mv":
		return s.mv, nil
	}
	return nil, types.NewCommandNotFoundError(s.Name(), name)
}

func (s *Service) abs(call *types.Call, path string) string {
	return resolver.Resolve([]string{path}, call.Cwd(), call.Home)
}

// isDir reports whether path is a listed directory or a directory entry.
func (s *Service) isDir(path, home string) bool {
	if s.fixtures.Directory(path, home) != nil {
		return true
	}
	entry := s.fixtures.Entry(path, home)
	return entry != nil && entry.Dir
}

func (s *Service) exists(path, home string) bool {
	return s.isDir(path, home) || s.fixtures.File(path, home) != nil || s.fixtures.Entry(path, home) != nil
}
