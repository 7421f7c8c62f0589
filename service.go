package shellsim

import (
	"context"
	"fmt"

	"github.com/viant/shellsim/extension"
	"github.com/viant/shellsim/model"
	mfixture "github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/policy"
	"github.com/viant/shellsim/service/executor"
	"github.com/viant/shellsim/service/fixture"
	"github.com/viant/shellsim/service/simulator/file"
	"github.com/viant/shellsim/service/simulator/network"
	"github.com/viant/shellsim/service/simulator/security"
	"github.com/viant/shellsim/service/simulator/system"
)

// Version is reported in traces.
const Version = "0.1.0"

// Service represents the simulated shell engine. It holds no mutable state
// after New and is safe for concurrent use.
type Service struct {
	fixtures            *mfixture.Set
	fixturesURL         string
	home                string
	policy              *policy.Policy
	listener            executor.Listener
	suggestions         bool
	extensionSimulators []types.Simulator
	tracingInit         func() error

	registry   *extension.Registry
	dispatcher *executor.Service
}

// Execute runs a command line against a session snapshot and returns its result.
// The session is never modified; see model.Session.Apply.
func (s *Service) Execute(ctx context.Context, line string, session *model.Session) *model.Result {
	return s.dispatcher.Execute(ctx, line, session)
}

// Registry returns the command partition
func (s *Service) Registry() *extension.Registry {
	return s.registry
}

// Fixtures returns the data tables rendered by simulators
func (s *Service) Fixtures() *mfixture.Set {
	return s.fixtures
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.tracingInit != nil {
		if err := s.tracingInit(); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	if err := s.ensureFixtures(); err != nil {
		return err
	}
	s.registry = extension.NewRegistry()
	simulators := []types.Simulator{
		file.New(s.fixtures),
		network.New(s.fixtures),
		security.New(s.fixtures),
		system.New(s.fixtures, system.WithCatalog(s.registry), system.WithSuggestions(s.suggestions)),
	}
	for _, simulator := range append(simulators, s.extensionSimulators...) {
		if err := s.registry.Register(simulator); err != nil {
			return err
		}
	}
	var err error
	if s.dispatcher, err = executor.New(s.registry,
		executor.WithPolicy(s.policy),
		executor.WithHome(s.home),
		executor.WithListener(s.listener)); err != nil {
		return err
	}
	return s.registry.Validate(extension.Vocabulary)
}

func (s *Service) ensureFixtures() error {
	if s.fixtures != nil {
		return nil
	}
	if s.fixturesURL == "" {
		s.fixtures = fixture.Default()
		return nil
	}
	var err error
	s.fixtures, err = fixture.New().Load(context.Background(), s.fixturesURL)
	return err
}

// New creates the engine. It fails when the command partition is incomplete
// or when two simulators claim the same name.
func New(options ...Option) (*Service, error) {
	ret := &Service{suggestions: true}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
