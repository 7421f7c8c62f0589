package executor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/viant/shellsim/extension"
	"github.com/viant/shellsim/internal/idgen"
	"github.com/viant/shellsim/metrics"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/policy"
	"github.com/viant/shellsim/tracing"
)

// Listener is invoked once a command line has produced its result. It runs on
// the caller goroutine and must not modify the call or the result.
type Listener func(ctx context.Context, call *types.Call, result *model.Result)

// LogListener logs every executed command with its invocation id.
func LogListener(ctx context.Context, call *types.Call, result *model.Result) {
	if call == nil || result == nil {
		return
	}
	log.Printf("[%v] %v %v -> %v(%d)", types.InvocationValue(ctx, types.InvocationIDKey),
		call.Name, strings.Join(call.Args, " "), result.Kind, result.ExitCode)
}

// Listeners combines listeners into one invoking each in order; nil entries are skipped.
func Listeners(listeners ...Listener) Listener {
	return func(ctx context.Context, call *types.Call, result *model.Result) {
		for _, l := range listeners {
			if l != nil {
				l(ctx, call, result)
			}
		}
	}
}

// Option is used to customise the dispatcher.
type Option func(*Service)

// WithListener sets the listener invoked after every command. Passing nil disables it.
func WithListener(l Listener) Option {
	return func(s *Service) {
		s.listener = l
	}
}

// WithPolicy sets the base policy applied to simulator commands.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithHome overrides the home directory derived from the session user name.
func WithHome(home string) Option {
	return func(s *Service) {
		s.home = home
	}
}

// NetworkDisabledMessage is returned for network commands when the session has networking off.
func NetworkDisabledMessage(command string) string {
	return fmt.Sprintf("Network is disabled. Enable networking to use %s.", command)
}

// PolicyRejectedMessage is returned when a policy blocks a command.
func PolicyRejectedMessage(command string) string {
	return fmt.Sprintf("%s: operation not permitted by policy", command)
}

// Service dispatches command lines.
type Service struct {
	registry *extension.Registry
	policy   *policy.Policy
	home     string
	listener Listener
}

// Execute runs a command line against a session snapshot. It never returns nil
// and never modifies the session.
func (s *Service) Execute(ctx context.Context, line string, session *model.Session) *model.Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.NewOutput("")
	}
	if session == nil {
		session = model.NewSession(model.DefaultUsername, "")
	}
	tokens := Tokenize(line)
	call := &types.Call{Name: tokens[0], Args: tokens[1:], Home: s.homeOf(session), Session: session}
	invocationID := idgen.New()
	ctx = types.EnsureInvocationContext(ctx, types.InvocationIDKey, invocationID, types.InvocationLineKey, line)
	category := s.registry.Category(call.Name)

	ctx, span := tracing.StartSpan(ctx, "shellsim.execute")
	span.WithAttributes(map[string]string{
		"command.name":     call.Name,
		"command.category": category.String(),
		"invocation.id":    invocationID,
		"session.id":       session.ID,
		"network.enabled":  strconv.FormatBool(session.NetworkEnabled),
	})
	result := s.dispatch(ctx, category, call)
	span.SetStatusFromExitCode(result.ExitCode)
	tracing.EndSpan(span)

	metrics.Observe(category, result)
	if s.listener != nil {
		s.listener(ctx, call, result)
	}
	return result
}

func (s *Service) dispatch(ctx context.Context, category types.Category, call *types.Call) *model.Result {
	if category == types.CategoryBuiltin {
		if result := builtin(call); result != nil {
			return result
		}
	}
	entry, ok := s.registry.Lookup(call.Name)
	if !ok || entry.Simulator == nil {
		return s.run(ctx, call, s.registry.Fallback().Unknown(call.Name))
	}
	effective := s.effectivePolicy(ctx, call.Session)
	if err := effective.Check(policy.WithPolicy(ctx, effective), category, call); err != nil {
		metrics.Rejected(category, call.Name)
		if errors.Is(err, policy.ErrCategoryDenied) && category == types.CategoryNetwork && !call.Session.NetworkEnabled {
			return model.NewError(NetworkDisabledMessage(call.Name))
		}
		log.Printf("executor: rejected %v: %v", call.Name, err)
		return model.NewError(PolicyRejectedMessage(call.Name))
	}
	method, err := entry.Simulator.Command(call.Name)
	if err != nil {
		log.Printf("executor: %v", err)
		return s.run(ctx, call, s.registry.Fallback().Unknown(call.Name))
	}
	return s.run(ctx, call, method)
}

// effectivePolicy returns the context policy, or the configured one, narrowed
// by the session network switch.
func (s *Service) effectivePolicy(ctx context.Context, session *model.Session) *policy.Policy {
	ret := s.policy
	if p := policy.FromContext(ctx); p != nil {
		ret = p
	}
	if !session.NetworkEnabled {
		ret = ret.DenyCategory(types.CategoryNetwork)
	}
	return ret
}

func (s *Service) run(ctx context.Context, call *types.Call, method types.Executable) (result *model.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("executor: recovered %v panic: %v", call.Name, r)
			metrics.Recovered()
			result = model.NewError(fmt.Sprintf("%s: internal error", call.Name))
		}
	}()
	if result = method(ctx, call); result == nil {
		result = model.NewOutput("")
	}
	return result
}

func (s *Service) homeOf(session *model.Session) string {
	if s.home != "" {
		return s.home
	}
	return model.HomeDirectory(session.Username())
}

// New creates a dispatcher over registry. Built-in names are reserved in the
// registry so that no simulator can claim them.
func New(registry *extension.Registry, options ...Option) (*Service, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	ret := &Service{registry: registry}
	for _, opt := range options {
		opt(ret)
	}
	if err := registry.Reserve(types.CategoryBuiltin, Builtins()...); err != nil {
		return nil, fmt.Errorf("failed to reserve built-ins: %w", err)
	}
	if registry.Fallback() == nil {
		return nil, ErrFallbackRequired
	}
	return ret, nil
}
