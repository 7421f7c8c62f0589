package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/fixture"
)

const home = "/home/operator"

func run(t *testing.T, srv *Service, cwd, name string, args ...string) *model.Result {
	method, err := srv.Command(name)
	if !assert.NoError(t, err) {
		return nil
	}
	session := model.NewSession("operator", "workstation")
	session.WorkingDirectory = cwd
	return method(context.Background(), &types.Call{Name: name, Args: args, Home: home, Session: session})
}

func TestService_Ls(t *testing.T) {
	srv := New(fixture.Default())
	testCases := []struct {
		name           string
		cwd            string
		args           []string
		expectKind     model.Kind
		expectExit     int
		expectOutput   string
		expectContains []string
		expectMissing  []string
	}{
		{
			name:         "plain listing hides dot entries",
			cwd:          home,
			expectKind:   model.KindOutput,
			expectOutput: "notes.txt  reports  scan_results.xml  tools",
		},
		{
			name:           "all entries",
			cwd:            home,
			args:           []string{"-a"},
			expectKind:     model.KindOutput,
			expectContains: []string{".  ..  .bash_history  .bashrc  .ssh  notes.txt"},
		},
		{
			name:       "long format with hidden entries",
			cwd:        home,
			args:       []string{"-la"},
			expectKind: model.KindOutput,
			expectContains: []string{
				"total 52",
				"-rw-r--r-- 1 operator operator   214 Mar 12 18:44 notes.txt",
				"drwx------ 2 operator operator  4096 Feb  2 16:05 .ssh",
			},
		},
		{
			name:           "al is the same as la",
			cwd:            home,
			args:           []string{"-al"},
			expectKind:     model.KindOutput,
			expectContains: []string{"total 52", ".bash_history"},
		},
		{
			name:           "long format without hidden entries",
			cwd:            home,
			args:           []string{"-l"},
			expectKind:     model.KindOutput,
			expectContains: []string{"tools"},
			expectMissing:  []string{".bashrc"},
		},
		{
			name:         "relative path",
			cwd:          home,
			args:         []string{"reports"},
			expectKind:   model.KindOutput,
			expectOutput: "q1-summary.md",
		},
		{
			name:         "absolute path",
			cwd:          home,
			args:         []string{"/tmp", "-a"},
			expectKind:   model.KindOutput,
			expectOutput: ".  ..  .X11-unix",
		},
		{
			name:         "unlisted cwd falls back to home listing",
			cwd:          "/var/log",
			expectKind:   model.KindOutput,
			expectOutput: "notes.txt  reports  scan_results.xml  tools",
		},
		{
			name:         "single file",
			cwd:          "/etc",
			args:         []string{"hosts"},
			expectKind:   model.KindOutput,
			expectOutput: "hosts",
		},
		{
			name:         "missing path",
			cwd:          home,
			args:         []string{"nope"},
			expectKind:   model.KindError,
			expectExit:   1,
			expectOutput: "ls: cannot access 'nope': No such file or directory",
		},
		{
			name:           "unknown flag",
			cwd:            home,
			args:           []string{"-Z"},
			expectKind:     model.KindError,
			expectExit:     1,
			expectContains: []string{"invalid option -- 'Z'", "usage: ls"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, tc.cwd, "ls", tc.args...)
			assert.Equal(t, tc.expectKind, actual.Kind)
			assert.Equal(t, tc.expectExit, actual.ExitCode)
			if tc.expectOutput != "" {
				assert.Equal(t, tc.expectOutput, actual.Output)
			}
			for _, fragment := range tc.expectContains {
				assert.Contains(t, actual.Output, fragment)
			}
			for _, fragment := range tc.expectMissing {
				assert.NotContains(t, actual.Output, fragment)
			}
		})
	}
}

func TestService_Ls_Deterministic(t *testing.T) {
	srv := New(fixture.Default())
	first := run(t, srv, home, "ls", "-la")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run(t, srv, home, "ls", "-la"))
	}
}

func TestService_Cat(t *testing.T) {
	srv := New(fixture.Default())
	testCases := []struct {
		name           string
		cwd            string
		args           []string
		expectKind     model.Kind
		expectExit     int
		expectContains []string
	}{
		{name: "no operand", cwd: home, expectKind: model.KindError, expectExit: 1, expectContains: []string{"usage: cat"}},
		{name: "relative file", cwd: home, args: []string{"notes.txt"}, expectKind: model.KindOutput, expectContains: []string{"rotate ssh keys"}},
		{name: "tilde file", cwd: "/", args: []string{"~/.bashrc"}, expectKind: model.KindOutput, expectContains: []string{"alias ll="}},
		{name: "absolute file", cwd: home, args: []string{"/etc/hostname"}, expectKind: model.KindOutput, expectContains: []string{"workstation"}},
		{name: "several files", cwd: "/etc", args: []string{"hostname", "os-release"}, expectKind: model.KindOutput, expectContains: []string{"workstation\nPRETTY_NAME"}},
		{name: "missing file", cwd: home, args: []string{"secret.txt"}, expectKind: model.KindError, expectExit: 1, expectContains: []string{"cat: secret.txt: No such file or directory"}},
		{name: "directory", cwd: home, args: []string{"reports"}, expectKind: model.KindError, expectExit: 1, expectContains: []string{"cat: reports: Is a directory"}},
		{name: "unreadable", cwd: "/etc", args: []string{"shadow"}, expectKind: model.KindError, expectExit: 1, expectContains: []string{"cat: shadow: Permission denied"}},
		{name: "unknown option", cwd: home, args: []string{"-Z", "notes.txt"}, expectKind: model.KindError, expectExit: 1, expectContains: []string{"cat: invalid option -- 'Z'"}},
		{name: "partial failure keeps content", cwd: home, args: []string{"notes.txt", "x"}, expectKind: model.KindError, expectExit: 1, expectContains: []string{"rotate ssh keys", "cat: x: No such file"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, tc.cwd, "cat", tc.args...)
			assert.Equal(t, tc.expectKind, actual.Kind)
			assert.Equal(t, tc.expectExit, actual.ExitCode)
			for _, fragment := range tc.expectContains {
				assert.Contains(t, actual.Output, fragment)
			}
		})
	}
}

func TestService_Mutations(t *testing.T) {
	srv := New(fixture.Default())
	testCases := []struct {
		name         string
		command      string
		args         []string
		expectKind   model.Kind
		expectExit   int
		expectOutput string
	}{
		{name: "touch", command: "touch", args: []string{"new.txt"}, expectKind: model.KindSuccess},
		{name: "touch missing operand", command: "touch", expectKind: model.KindError, expectExit: 1, expectOutput: "touch: missing file operand\nTry 'touch --help' for more information."},
		{name: "mkdir", command: "mkdir", args: []string{"loot"}, expectKind: model.KindSuccess},
		{name: "mkdir existing", command: "mkdir", args: []string{"reports"}, expectKind: model.KindError, expectExit: 1, expectOutput: "mkdir: cannot create directory 'reports': File exists"},
		{name: "mkdir parents existing", command: "mkdir", args: []string{"-p", "reports"}, expectKind: model.KindSuccess},
		{name: "mkdir bad flag", command: "mkdir", args: []string{"-x", "a"}, expectKind: model.KindError, expectExit: 1, expectOutput: "mkdir: invalid option -- 'x'"},
		{name: "rm file", command: "rm", args: []string{"notes.txt"}, expectKind: model.KindSuccess},
		{name: "rm directory", command: "rm", args: []string{"reports"}, expectKind: model.KindError, expectExit: 1, expectOutput: "rm: cannot remove 'reports': Is a directory"},
		{name: "rm recursive", command: "rm", args: []string{"-rf", "reports"}, expectKind: model.KindSuccess},
		{name: "rm missing operand", command: "rm", args: []string{"-f"}, expectKind: model.KindError, expectExit: 1, expectOutput: "rm: missing file operand\nTry 'rm --help' for more information."},
		{name: "cp", command: "cp", args: []string{"notes.txt", "/tmp/notes.txt"}, expectKind: model.KindSuccess},
		{name: "cp directory", command: "cp", args: []string{"tools", "/tmp"}, expectKind: model.KindError, expectExit: 1, expectOutput: "cp: -r not specified; omitting directory 'tools'"},
		{name: "cp recursive", command: "cp", args: []string{"-r", "tools", "/tmp"}, expectKind: model.KindSuccess},
		{name: "cp destination missing", command: "cp", args: []string{"notes.txt"}, expectKind: model.KindError, expectExit: 1, expectOutput: "cp: missing destination file operand after 'notes.txt'"},
		{name: "mv", command: "mv", args: []string{"notes.txt", "todo.txt"}, expectKind: model.KindSuccess},
		{name: "mv missing operand", command: "mv", expectKind: model.KindError, expectExit: 1, expectOutput: "mv: missing file operand\nTry 'mv --help' for more information."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, home, tc.command, tc.args...)
			assert.Equal(t, tc.expectKind, actual.Kind)
			assert.Equal(t, tc.expectExit, actual.ExitCode)
			assert.Equal(t, tc.expectOutput, actual.Output)
			assert.Empty(t, actual.NewWorkingDirectory)
			assert.Nil(t, actual.Metadata)
		})
	}
}

func TestService_Command(t *testing.T) {
	srv := New(fixture.Default())
	for _, name := range srv.Commands().Names() {
		method, err := srv.Command(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, method, name)
	}
	_, err := srv.Command("ps")
	assert.ErrorIs(t, err, types.ErrCommandNotFound)
}
