package shellsim

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/shellsim/policy"
	"github.com/viant/shellsim/service/fixture"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the engine configuration. The
// zero-value is useful: nested fields inherit their package defaults.
type Config struct {
	Home        string         `json:"home,omitempty" yaml:"home,omitempty"`
	FixturesURL string         `json:"fixturesURL,omitempty" yaml:"fixturesURL,omitempty"`
	Policy      *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Suggestions bool           `json:"suggestions" yaml:"suggestions"`
	Tracing     TracingConfig  `json:"tracing" yaml:"tracing"`
}

// TracingConfig controls the OpenTelemetry exporter
type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Output is a file path; empty writes spans to stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns a Config populated with the values New uses when no
// option is supplied.
func DefaultConfig() *Config {
	return &Config{
		Suggestions: true,
		Tracing:     TracingConfig{Service: "shellsim", Version: Version},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Home != "" && !strings.HasPrefix(c.Home, "/") {
		errs = append(errs, fmt.Errorf("home must be absolute: %v", c.Home))
	}
	if err := c.Policy.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("invalid policy: %w", err))
	}
	if c.Tracing.Enabled && c.Tracing.Service == "" {
		errs = append(errs, errors.New("tracing.service is required when tracing is enabled"))
	}
	return errors.Join(errs...)
}

// Options converts the configuration into engine options.
func (c *Config) Options(ctx context.Context) ([]Option, error) {
	var ret []Option
	if c.Home != "" {
		ret = append(ret, WithHome(c.Home))
	}
	if c.Policy != nil {
		ret = append(ret, WithPolicy(policy.FromConfig(c.Policy)))
	}
	ret = append(ret, WithSuggestions(c.Suggestions))
	if c.FixturesURL != "" {
		fixtures, err := fixture.New().Load(ctx, c.FixturesURL)
		if err != nil {
			return nil, err
		}
		ret = append(ret, WithFixtures(fixtures))
	}
	if c.Tracing.Enabled {
		ret = append(ret, WithTracing(c.Tracing.Service, c.Tracing.Version, c.Tracing.Output))
	}
	return ret, nil
}

// LoadConfig reads a YAML configuration from any afs supported URL. Settings
// absent from the document keep their DefaultConfig values.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfig creates the engine from a configuration; options are applied
// after the configured ones.
func NewFromConfig(ctx context.Context, cfg *Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	configured, err := cfg.Options(ctx)
	if err != nil {
		return nil, err
	}
	return New(append(configured, options...)...)
}
