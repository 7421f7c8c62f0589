package network

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

const (
	ncUsage           = "usage: nc [-46lLnuvz] [-p port] [-w timeout] [hostname] [port]"
	ncDefaultPort     = "4444"
	telnetUsage       = "usage: telnet [host [port]]"
	telnetDefaultPort = "23"
	ncBoolFlags       = "46lLnuvzkN"
	ncValueFlags      = "pwq"
)

type ncArgs struct {
	listen     bool
	port       string
	positional []string
}

// parseNc accepts clustered short flags such as -lvnp 4444.
func parseNc(args []string) (*ncArgs, *model.Result) {
	ret := &ncArgs{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) < 2 || arg[0] != '-' {
			ret.positional = append(ret.positional, arg)
			continue
		}
		flags := arg[1:]
		for j, flag := range flags {
			switch {
			case flag == 'l' || flag == 'L':
				ret.listen = true
			case strings.ContainsRune(ncBoolFlags, flag):
			case strings.ContainsRune(ncValueFlags, flag):
				value := flags[j+1:]
				if value == "" && i+1 < len(args) {
					i++
					value = args[i]
				}
				if flag == 'p' {
					ret.port = value
				}
			default:
				return nil, model.NewUsage(fmt.Sprintf("nc: invalid option -- '%c'\n%s", flag, ncUsage))
			}
			if strings.ContainsRune(ncValueFlags, flag) {
				break
			}
		}
	}
	return ret, nil
}

func (s *Service) nc(ctx context.Context, call *types.Call) *model.Result {
	args, failure := parseNc(call.Args)
	if failure != nil {
		return failure
	}
	if args.listen {
		return s.listen(call, args)
	}
	if len(args.positional) < 2 {
		return model.NewUsage("nc: missing hostname and port\n" + ncUsage)
	}
	host, port := args.positional[0], args.positional[1]
	if !validPort(port) {
		return model.NewError(fmt.Sprintf("nc: port number invalid: %s", port))
	}
	page := s.fixtures.Network.Page
	lines := []string{
		fmt.Sprintf("Connection to %s (%s) %s port [tcp/%s] succeeded!", host, s.fixtures.Network.Address(host), port, s.service(port)),
		"HTTP/1.1 200 OK",
		"Server: " + s.fixtures.Network.Server,
		"Content-Type: text/html",
		"Content-Length: " + strconv.Itoa(len(page)),
		"Connection: close",
	}
	ret := model.NewSuccess(strings.Join(lines, "\n"))
	return ret.WithConnection(&model.Connection{Type: model.ConnectionNetcat, Host: host, Port: port, User: call.Session.Username()})
}

func (s *Service) listen(call *types.Call, args *ncArgs) *model.Result {
	port := args.port
	if port == "" && len(args.positional) > 0 {
		port = args.positional[len(args.positional)-1]
	}
	if port == "" {
		port = ncDefaultPort
	}
	if !validPort(port) {
		return model.NewError(fmt.Sprintf("nc: port number invalid: %s", port))
	}
	peer := s.fixtures.Network.DefaultPeer
	source := 49152 + seed(port+peer)%16383
	lines := []string{
		fmt.Sprintf("Listening on %s...", port),
		fmt.Sprintf("Connection received on %s %d", peer, source),
	}
	ret := model.NewSuccess(strings.Join(lines, "\n"))
	return ret.WithConnection(&model.Connection{Type: model.ConnectionNetcat, Host: "0.0.0.0", Port: port, User: call.Session.Username()})
}

func (s *Service) telnet(ctx context.Context, call *types.Call) *model.Result {
	if len(call.Args) == 0 {
		return model.NewUsage(telnetUsage)
	}
	if arg := call.Args[0]; strings.HasPrefix(arg, "-") {
		return model.NewUsage(fmt.Sprintf("telnet: invalid option -- '%s'\n%s", strings.TrimLeft(arg, "-"), telnetUsage))
	}
	host, port := call.Args[0], telnetDefaultPort
	if len(call.Args) > 1 {
		port = call.Args[1]
	}
	if !validPort(port) {
		return model.NewError(fmt.Sprintf("telnet: could not resolve %s/%s: Servname not supported for ai_socktype", host, port))
	}
	lines := []string{
		fmt.Sprintf("Trying %s...", s.fixtures.Network.Address(host)),
		fmt.Sprintf("Connected to %s.", host),
		"Escape character is '^]'.",
		fmt.Sprintf("%s %s", s.fixtures.Host.OS, s.fixtures.Network.RemoteKernel),
		"",
		fmt.Sprintf("%s login: ", host),
	}
	ret := model.NewSuccess(strings.Join(lines, "\n"))
	return ret.WithConnection(&model.Connection{Type: model.ConnectionTelnet, Host: host, Port: port})
}
