package shellsim

import (
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/policy"
	"github.com/viant/shellsim/service/executor"
	"github.com/viant/shellsim/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the engine
type Option func(s *Service)

// WithFixtures sets the data tables rendered by simulators
func WithFixtures(fixtures *fixture.Set) Option {
	return func(s *Service) {
		s.fixtures = fixtures
	}
}

// WithFixturesURL loads fixtures from any afs supported URL
func WithFixturesURL(URL string) Option {
	return func(s *Service) {
		s.fixturesURL = URL
	}
}

// WithHome overrides the home directory used by cd
func WithHome(home string) Option {
	return func(s *Service) {
		s.home = home
	}
}

// WithPolicy sets the policy gating simulator commands
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithListener sets a listener invoked after every command
func WithListener(listener executor.Listener) Option {
	return func(s *Service) {
		s.listener = listener
	}
}

// WithSuggestions toggles "Did you mean" hints for unknown commands
func WithSuggestions(enabled bool) Option {
	return func(s *Service) {
		s.suggestions = enabled
	}
}

// WithExtensionSimulators registers additional simulators; their command
// names must not collide with existing ones.
func WithExtensionSimulators(simulators ...types.Simulator) Option {
	return func(s *Service) {
		s.extensionSimulators = append(s.extensionSimulators, simulators...)
	}
}

// WithTracing configures OpenTelemetry tracing for the engine. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingInit = func() error {
			return tracing.Init(serviceName, serviceVersion, outputFile)
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingInit = func() error {
			return tracing.InitWithExporter(serviceName, serviceVersion, exporter)
		}
	}
}
