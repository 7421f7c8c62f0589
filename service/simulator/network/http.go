package network

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/simulator/argv"
)

const (
	curlHint        = "curl: try 'curl --help' for more information"
	wgetUsage       = "wget: missing URL\nUsage: wget [OPTION]... [URL]...\n\nTry `wget --help' for more options."
	httpDateLayout  = "Mon, 02 Jan 2006 15:04:05 GMT"
	wgetStampLayout = "2006-01-02 15:04:05"
	defaultDocument = "index.html"
)

var (
	curlValued  = []string{"-o", "--output", "-X", "--request", "-H", "--header", "-A", "--user-agent", "-d", "--data", "-u", "--user"}
	curlBoolean = []string{"-I", "--head", "-i", "--include", "-s", "--silent", "-L", "--location", "-v", "--verbose", "-k", "--insecure", "-f", "--fail"}
	wgetValued  = []string{"-O", "--output-document", "-o", "--output-file", "-t", "--tries", "-T", "--timeout", "-U", "--user-agent"}
	wgetBoolean = []string{"-q", "--quiet", "-c", "--continue", "--no-check-certificate", "-nv", "--no-verbose"}
)

func (s *Service) headers() []string {
	return []string{
		"HTTP/1.1 200 OK",
		"Server: " + s.fixtures.Network.Server,
		"Date: " + clock.Now().UTC().Format(httpDateLayout),
		"Content-Type: text/html; charset=UTF-8",
		"Content-Length: " + strconv.Itoa(len(s.fixtures.Network.Page)),
		"Connection: keep-alive",
	}
}

func (s *Service) curl(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, curlValued...)
	if unknown := args.Unknown(append(curlValued, curlBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("curl: option %s: is unknown\n%s", unknown, curlHint))
	}
	target := args.First()
	if target == "" {
		return model.NewUsage(curlHint)
	}
	host, port, resource := endpoint(target)
	method := args.Value("-X", "--request")
	if method == "" {
		method = "GET"
		if args.Has("-I", "--head") {
			method = "HEAD"
		}
	}
	var lines []string
	if args.Has("-v", "--verbose") {
		addr := s.fixtures.Network.Address(host)
		lines = append(lines,
			fmt.Sprintf("*   Trying %s:%s...", addr, port),
			fmt.Sprintf("* Connected to %s (%s) port %s", host, addr, port),
			fmt.Sprintf("> %s %s HTTP/1.1", method, resource),
			"> Host: "+host,
			"> User-Agent: curl/7.81.0",
			"> Accept: */*",
			">",
		)
	}
	page := s.fixtures.Network.Page
	switch {
	case args.Has("-I", "--head"):
		lines = append(lines, s.headers()...)
	case args.Has("-o", "--output"):
		if args.Has("-s", "--silent") {
			return model.NewSuccess("")
		}
		size := len(page)
		lines = append(lines,
			"  % Total    % Received % Xferd  Average Speed   Time    Time     Time  Current",
			"                                 Dload  Upload   Total   Spent    Left  Speed",
			fmt.Sprintf("100 %5d  100 %5d    0     0  %5d      0 --:--:-- --:--:-- --:--:-- %5d", size, size, size*8, size*8),
		)
		return model.NewSuccess(strings.Join(lines, "\n"))
	case args.Has("-i", "--include"):
		lines = append(lines, s.headers()...)
		lines = append(lines, "", page)
	default:
		lines = append(lines, page)
	}
	return model.NewOutput(strings.Join(lines, "\n"))
}

func (s *Service) wget(ctx context.Context, call *types.Call) *model.Result {
	args := argv.Parse(call.Args, wgetValued...)
	if unknown := args.Unknown(append(wgetValued, wgetBoolean...)...); unknown != "" {
		return model.NewUsage(fmt.Sprintf("wget: unrecognized option '%s'\nUsage: wget [OPTION]... [URL]...", unknown))
	}
	target := args.First()
	if target == "" {
		return model.NewUsage(wgetUsage)
	}
	if args.Has("-q", "--quiet") {
		return model.NewSuccess("")
	}
	host, port, resource := endpoint(target)
	document := args.Value("-O", "--output-document")
	if document == "" {
		document = path.Base(resource)
		if document == "/" || document == "." {
			document = defaultDocument
		}
	}
	addr := s.fixtures.Network.Address(host)
	size := len(s.fixtures.Network.Page)
	stamp := clock.Now().Format(wgetStampLayout)
	lines := []string{
		fmt.Sprintf("--%s--  %s", stamp, target),
		fmt.Sprintf("Resolving %s (%s)... %s", host, host, addr),
		fmt.Sprintf("Connecting to %s (%s)|%s|:%s... connected.", host, host, addr, port),
		"HTTP request sent, awaiting response... 200 OK",
		fmt.Sprintf("Length: %d (%s) [text/html]", size, humanSize(size)),
		fmt.Sprintf("Saving to: '%s'", document),
		"",
		fmt.Sprintf("%-20s100%%[===================>] %6d  --.-KB/s    in 0s", document, size),
		"",
		fmt.Sprintf("%s (%s/s) - '%s' saved [%d/%d]", stamp, humanSize(size*64), document, size, size),
	}
	return model.NewSuccess(strings.Join(lines, "\n"))
}

func humanSize(size int) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1fM", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1fK", float64(size)/(1<<10))
	}
	return strconv.Itoa(size)
}
