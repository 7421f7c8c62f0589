package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/model"
)

func TestResolve(t *testing.T) {
	const home = "/home/operator"
	testCases := []struct {
		name   string
		args   []string
		cwd    string
		expect string
	}{
		{name: "no argument", args: nil, cwd: "/any/dir", expect: home},
		{name: "tilde", args: []string{"~"}, cwd: "/var/log", expect: home},
		{name: "tilde relative", args: []string{"~/reports"}, cwd: "/", expect: "/home/operator/reports"},
		{name: "absolute", args: []string{"/etc/ssh"}, cwd: "/home", expect: "/etc/ssh"},
		{name: "absolute trailing slash", args: []string{"/tmp/"}, cwd: "/home", expect: "/tmp"},
		{name: "absolute root", args: []string{"/"}, cwd: "/home", expect: "/"},
		{name: "parent", args: []string{".."}, cwd: "/a/b/c", expect: "/a/b"},
		{name: "parent of single segment", args: []string{".."}, cwd: "/a", expect: "/"},
		{name: "parent of root", args: []string{".."}, cwd: "/", expect: "/"},
		{name: "current", args: []string{"."}, cwd: "/srv/www", expect: "/srv/www"},
		{name: "current at root", args: []string{"."}, cwd: "/", expect: "/"},
		{name: "relative from root", args: []string{"etc"}, cwd: "/", expect: "/etc"},
		{name: "relative", args: []string{"reports"}, cwd: "/home/operator", expect: "/home/operator/reports"},
		{name: "relative trailing slash", args: []string{"reports/"}, cwd: "/home/operator", expect: "/home/operator/reports"},
		{name: "relative nested is not validated", args: []string{"no/such/dir"}, cwd: "/x", expect: "/x/no/such/dir"},
		{name: "extra args ignored", args: []string{"/opt", "/tmp"}, cwd: "/", expect: "/opt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Resolve(tc.args, tc.cwd, home))
		})
	}
}

func TestCd(t *testing.T) {
	actual := Cd([]string{".."}, "/a/b", "/home/operator")
	assert.Equal(t, &model.Result{Kind: model.KindOutput, ExitCode: 0, NewWorkingDirectory: "/a"}, actual)
}
