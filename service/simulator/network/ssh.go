package network

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
	"golang.org/x/crypto/ssh"
)

const (
	sshUsage        = "usage: ssh [-i identity_file] [-p port] [user@]hostname"
	sshDefaultPort  = "22"
	lastLoginOffset = 14*time.Hour + 11*time.Minute
	loginLayout     = "Mon Jan _2 15:04:05 2006"
)

var (
	sshValued  = []string{"-p", "-i", "-l", "-o", "-F"}
	sshBoolean = []string{"-4", "-6", "-A", "-C", "-N", "-T", "-t", "-q", "-v", "-vv", "-vvv", "-X", "-Y"}
)

func (s *Service) ssh(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, sshValued...)
	if unknown := args.Unknown(append(sshValued, sshBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("ssh: unknown option -- %s\n%s", strings.TrimLeft(unknown, "-"), sshUsage))
	}
	target := args.First()
	if target == "" {
		return model.NewUsage(sshUsage)
	}
	user := args.Value("-l")
	host := target
	if idx := strings.LastIndex(target, "@"); idx != -1 {
		user, host = target[:idx], target[idx+1:]
	}
	if user == "" {
		user = call.Session.Username()
	}
	if user == "" {
		user = model.DefaultUsername
	}
	if host == "" {
		return model.NewUsage(sshUsage)
	}
	port := sshDefaultPort
	if args.Has("-p") {
		port = args.Value("-p")
		if !validPort(port) {
			return model.NewError(fmt.Sprintf("Bad port '%s'", port))
		}
	}
	identity := args.Value("-i")

	fingerprint, err := hostKeyFingerprint(host)
	if err != nil {
		return model.NewError(fmt.Sprintf("ssh: host key for %s unavailable: %v", host, err))
	}
	lines := []string{fmt.Sprintf("Connecting to %s on port %s as %s...", host, port, user)}
	if identity != "" {
		lines = append(lines, fmt.Sprintf("Using identity file %s", identity))
	} else {
		lines = append(lines, "Using password authentication")
	}
	lines = append(lines,
		fmt.Sprintf("Warning: Permanently added '%s' (ED25519) to the list of known hosts.", host),
		fmt.Sprintf("ED25519 key fingerprint is %s.", fingerprint),
	)
	if identity == "" {
		lines = append(lines, fmt.Sprintf("%s@%s's password: ", user, host))
	}
	lines = append(lines,
		fmt.Sprintf("Welcome to %s %s", s.fixtures.Host.OS, s.fixtures.Network.RemoteKernel),
		"",
		fmt.Sprintf("Last login: %s from %s", clock.Now().Add(-lastLoginOffset).Format(loginLayout), s.fixtures.PrimaryInterface().Inet),
		fmt.Sprintf("Connection to %s established. Type 'exit' to close.", host),
	)
	ret := model.NewSuccess(strings.Join(lines, "\n"))
	return ret.WithConnection(&model.Connection{
		Type:         model.ConnectionSSH,
		Host:         host,
		Port:         port,
		User:         user,
		IdentityFile: identity,
	})
}

// hostKeyFingerprint derives a stable ED25519 host key for host and returns
// its OpenSSH SHA256 fingerprint.
func hostKeyFingerprint(host string) (string, error) {
	seed := sha256.Sum256([]byte(host))
	private := ed25519.NewKeyFromSeed(seed[:])
	public, err := ssh.NewPublicKey(private.Public())
	if err != nil {
		return "", err
	}
	return ssh.FingerprintSHA256(public), nil
}
