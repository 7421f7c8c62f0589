package network

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/fixture"
)

func run(t *testing.T, srv *Service, name string, args ...string) *model.Result {
	method, err := srv.Command(name)
	if !assert.NoError(t, err) {
		return nil
	}
	session := model.NewSession("operator", "workstation")
	return method(context.Background(), &types.Call{Name: name, Args: args, Home: "/home/operator", Session: session})
}

func TestService_Ssh(t *testing.T) {
	defer clock.Freeze(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))()
	srv := New(fixture.Default())
	testCases := []struct {
		name           string
		args           []string
		expectKind     model.Kind
		expectExit     int
		expectContains []string
		expectConn     *model.Connection
	}{
		{
			name:           "user host and port",
			args:           []string{"admin@10.0.0.5", "-p", "2222"},
			expectKind:     model.KindSuccess,
			expectContains: []string{"Connecting to 10.0.0.5 on port 2222 as admin", "Using password authentication", "ED25519 key fingerprint is SHA256:", "Last login: Fri Mar 13 19:19:00 2026 from 10.0.0.23"},
			expectConn:     &model.Connection{Type: "ssh", Host: "10.0.0.5", Port: "2222", User: "admin", IdentityFile: ""},
		},
		{
			name:           "bare host uses session user and default port",
			args:           []string{"staging-bastion"},
			expectKind:     model.KindSuccess,
			expectContains: []string{"Connecting to staging-bastion on port 22 as operator"},
			expectConn:     &model.Connection{Type: "ssh", Host: "staging-bastion", Port: "22", User: "operator"},
		},
		{
			name:           "identity file",
			args:           []string{"-i", "~/.ssh/id_ed25519", "root@10.0.0.12"},
			expectKind:     model.KindSuccess,
			expectContains: []string{"Using identity file ~/.ssh/id_ed25519", "as root"},
			expectConn:     &model.Connection{Type: "ssh", Host: "10.0.0.12", Port: "22", User: "root", IdentityFile: "~/.ssh/id_ed25519"},
		},
		{
			name:           "login flag",
			args:           []string{"-l", "deploy", "10.0.0.5"},
			expectKind:     model.KindSuccess,
			expectContains: []string{"as deploy"},
			expectConn:     &model.Connection{Type: "ssh", Host: "10.0.0.5", Port: "22", User: "deploy"},
		},
		{
			name:           "no arguments",
			expectKind:     model.KindError,
			expectExit:     1,
			expectContains: []string{"usage: ssh [-i identity_file] [-p port] [user@]hostname"},
		},
		{
			name:           "flags without host",
			args:           []string{"-p", "22"},
			expectKind:     model.KindError,
			expectExit:     1,
			expectContains: []string{"usage: ssh"},
		},
		{
			name:           "bad port",
			args:           []string{"host", "-p", "ssh"},
			expectKind:     model.KindError,
			expectExit:     1,
			expectContains: []string{"Bad port 'ssh'"},
		},
		{
			name:           "unknown option",
			args:           []string{"-Z", "host"},
			expectKind:     model.KindError,
			expectExit:     1,
			expectContains: []string{"ssh: unknown option -- Z", "usage: ssh"},
		},
		{
			name:           "known boolean option",
			args:           []string{"-v", "-4", "host"},
			expectKind:     model.KindSuccess,
			expectContains: []string{"Connecting to host on port 22 as operator"},
			expectConn:     &model.Connection{Type: "ssh", Host: "host", Port: "22", User: "operator"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, "ssh", tc.args...)
			assert.Equal(t, tc.expectKind, actual.Kind)
			assert.Equal(t, tc.expectExit, actual.ExitCode)
			for _, fragment := range tc.expectContains {
				assert.Contains(t, actual.Output, fragment)
			}
			assert.Equal(t, tc.expectConn, actual.Connection())
		})
	}
}

func TestHostKeyFingerprint(t *testing.T) {
	first, err := hostKeyFingerprint("10.0.0.5")
	assert.NoError(t, err)
	second, _ := hostKeyFingerprint("10.0.0.5")
	other, _ := hostKeyFingerprint("10.0.0.12")
	assert.True(t, strings.HasPrefix(first, "SHA256:"))
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestService_Nc(t *testing.T) {
	srv := New(fixture.Default())
	testCases := []struct {
		name           string
		command        string
		args           []string
		expectKind     model.Kind
		expectExit     int
		expectPrefix   string
		expectContains []string
		expectConn     *model.Connection
	}{
		{
			name:         "listen positional port",
			command:      "nc",
			args:         []string{"-l", "4444"},
			expectKind:   model.KindSuccess,
			expectPrefix: "Listening on 4444...",
			expectConn:   &model.Connection{Type: "nc", Host: "0.0.0.0", Port: "4444", User: "operator"},
		},
		{
			name:           "listen clustered flags",
			command:        "netcat",
			args:           []string{"-lvnp", "9001"},
			expectKind:     model.KindSuccess,
			expectPrefix:   "Listening on 9001...",
			expectContains: []string{"Connection received on 93.184.216.34"},
			expectConn:     &model.Connection{Type: "nc", Host: "0.0.0.0", Port: "9001", User: "operator"},
		},
		{
			name:         "listen default port",
			command:      "nc",
			args:         []string{"-L"},
			expectKind:   model.KindSuccess,
			expectPrefix: "Listening on 4444...",
			expectConn:   &model.Connection{Type: "nc", Host: "0.0.0.0", Port: "4444", User: "operator"},
		},
		{
			name:           "connect",
			command:        "nc",
			args:           []string{"10.0.0.5", "80"},
			expectKind:     model.KindSuccess,
			expectPrefix:   "Connection to 10.0.0.5 (10.0.0.5) 80 port [tcp/http] succeeded!",
			expectContains: []string{"HTTP/1.1 200 OK", "Server: nginx/1.18.0 (Ubuntu)"},
			expectConn:     &model.Connection{Type: "nc", Host: "10.0.0.5", Port: "80", User: "operator"},
		},
		{
			name:         "connect without port",
			command:      "nc",
			args:         []string{"10.0.0.5"},
			expectKind:   model.KindError,
			expectExit:   1,
			expectPrefix: "nc: missing hostname and port",
		},
		{
			name:         "connect without anything",
			command:      "nc",
			expectKind:   model.KindError,
			expectExit:   1,
			expectPrefix: "nc: missing hostname and port",
		},
		{
			name:         "invalid option",
			command:      "nc",
			args:         []string{"-X", "host", "80"},
			expectKind:   model.KindError,
			expectExit:   1,
			expectPrefix: "nc: invalid option -- 'X'",
		},
		{
			name:         "telnet default port",
			command:      "telnet",
			args:         []string{"intranet.local"},
			expectKind:   model.KindSuccess,
			expectPrefix: "Trying 10.0.0.12...\nConnected to intranet.local.\nEscape character is '^]'.",
			expectConn:   &model.Connection{Type: "telnet", Host: "intranet.local", Port: "23"},
		},
		{
			name:       "telnet explicit port",
			command:    "telnet",
			args:       []string{"10.0.0.5", "25"},
			expectKind: model.KindSuccess,
			expectConn: &model.Connection{Type: "telnet", Host: "10.0.0.5", Port: "25"},
		},
		{
			name:         "telnet without host",
			command:      "telnet",
			expectKind:   model.KindError,
			expectExit:   1,
			expectPrefix: "usage: telnet",
		},
		{
			name:           "telnet invalid option",
			command:        "telnet",
			args:           []string{"-Z", "10.0.0.5"},
			expectKind:     model.KindError,
			expectExit:     1,
			expectPrefix:   "telnet: invalid option -- 'Z'",
			expectContains: []string{"usage: telnet"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, tc.command, tc.args...)
			assert.Equal(t, tc.expectKind, actual.Kind)
			assert.Equal(t, tc.expectExit, actual.ExitCode)
			assert.True(t, strings.HasPrefix(actual.Output, tc.expectPrefix), actual.Output)
			for _, fragment := range tc.expectContains {
				assert.Contains(t, actual.Output, fragment)
			}
			assert.Equal(t, tc.expectConn, actual.Connection())
		})
	}
}

func TestService_Http(t *testing.T) {
	defer clock.Freeze(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))()
	srv := New(fixture.Default())
	testCases := []struct {
		name           string
		command        string
		args           []string
		expectKind     model.Kind
		expectExit     int
		expectOutput   string
		expectContains []string
		expectMissing  []string
	}{
		{name: "curl body", command: "curl", args: []string{"http://example.com"}, expectKind: model.KindOutput, expectContains: []string{"<h1>Example Domain</h1>"}, expectMissing: []string{"HTTP/1.1"}},
		{name: "curl head", command: "curl", args: []string{"-I", "https://example.com"}, expectKind: model.KindOutput, expectContains: []string{"HTTP/1.1 200 OK", "Date: Sat, 14 Mar 2026 09:30:00 GMT"}, expectMissing: []string{"<html>"}},
		{name: "curl include", command: "curl", args: []string{"-i", "example.com"}, expectKind: model.KindOutput, expectContains: []string{"Connection: keep-alive\n\n<!doctype html>"}},
		{name: "curl verbose", command: "curl", args: []string{"-v", "http://intranet.local:8080/login"}, expectKind: model.KindOutput, expectContains: []string{"*   Trying 10.0.0.12:8080...", "> GET /login HTTP/1.1"}},
		{name: "curl silent output file", command: "curl", args: []string{"-s", "-o", "page.html", "http://x"}, expectKind: model.KindSuccess},
		{name: "curl output file", command: "curl", args: []string{"-o", "page.html", "http://x"}, expectKind: model.KindSuccess, expectContains: []string{"% Total"}},
		{name: "curl no url", command: "curl", expectKind: model.KindError, expectExit: 1, expectOutput: "curl: try 'curl --help' for more information"},
		{name: "curl unknown option", command: "curl", args: []string{"--frobnicate", "http://x"}, expectKind: model.KindError, expectExit: 1, expectContains: []string{"option --frobnicate: is unknown"}},
		{name: "wget", command: "wget", args: []string{"http://10.0.0.5/shell.sh"}, expectKind: model.KindSuccess, expectContains: []string{"--2026-03-14 09:30:00--  http://10.0.0.5/shell.sh", "Saving to: 'shell.sh'", "Connecting to 10.0.0.5 (10.0.0.5)|10.0.0.5|:80... connected."}},
		{name: "wget index", command: "wget", args: []string{"https://example.com"}, expectKind: model.KindSuccess, expectContains: []string{"Saving to: 'index.html'", "|:443..."}},
		{name: "wget output document", command: "wget", args: []string{"-O", "out.html", "example.com/a/b"}, expectKind: model.KindSuccess, expectContains: []string{"'out.html' saved"}},
		{name: "wget quiet", command: "wget", args: []string{"-q", "example.com"}, expectKind: model.KindSuccess},
		{name: "wget missing url", command: "wget", expectKind: model.KindError, expectExit: 1, expectContains: []string{"wget: missing URL"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, tc.command, tc.args...)
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
			assert.Nil(t, actual.Metadata)
		})
	}
}

func TestService_Ping(t *testing.T) {
	srv := New(fixture.Default())
	testCases := []struct {
		name         string
		args         []string
		expectKind   model.Kind
		expectExit   int
		expectLines  int
		expectPrefix string
	}{
		{name: "default count", args: []string{"staging-bastion"}, expectKind: model.KindOutput, expectLines: 9, expectPrefix: "PING staging-bastion (10.0.0.5) 56(84) bytes of data."},
		{name: "explicit count", args: []string{"-c", "2", "10.0.0.12"}, expectKind: model.KindOutput, expectLines: 7, expectPrefix: "PING 10.0.0.12 (10.0.0.12)"},
		{name: "no host", expectKind: model.KindError, expectExit: 1, expectLines: 1, expectPrefix: "ping: usage error: Destination address required"},
		{name: "bad count", args: []string{"-c", "zero", "host"}, expectKind: model.KindError, expectExit: 1, expectLines: 1, expectPrefix: "ping: invalid argument: 'zero'"},
		{name: "unknown option", args: []string{"-Z", "host"}, expectKind: model.KindError, expectExit: 1, expectLines: 2, expectPrefix: "ping: invalid option -- 'Z'\nUsage: ping"},
		{name: "quiet numeric", args: []string{"-q", "-n", "-c", "1", "10.0.0.12"}, expectKind: model.KindOutput, expectLines: 5, expectPrefix: "PING 10.0.0.12 (10.0.0.12)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := run(t, srv, "ping", tc.args...)
			assert.Equal(t, tc.expectKind, actual.Kind)
			assert.Equal(t, tc.expectExit, actual.ExitCode)
			assert.Len(t, strings.Split(actual.Output, "\n"), tc.expectLines)
			assert.True(t, strings.HasPrefix(actual.Output, tc.expectPrefix), actual.Output)
		})
	}
	assert.Equal(t, run(t, srv, "ping", "example.com"), run(t, srv, "ping", "example.com"))
}
