package system

import (
	"github.com/viant/shellsim/extension"
	"github.com/viant/shellsim/model/fixture"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/structology/conv"
)

const name = "system"

// Catalog exposes registered commands for help and suggestions.
type Catalog interface {
	Catalog() []*extension.Section
	Names() []string
}

// Service simulates host introspection commands and handles every name no
// other category owns.
type Service struct {
	fixtures    *fixture.Set
	catalog     Catalog
	suggestions bool
	converter   *conv.Converter
}

// Option customises the system simulator
type Option func(*Service)

// WithCatalog sets the catalog rendered by help and searched for suggestions
func WithCatalog(catalog Catalog) Option {
	return func(s *Service) {
		s.catalog = catalog
	}
}

// WithSuggestions toggles "Did you mean" hints for unknown commands
func WithSuggestions(enabled bool) Option {
	return func(s *Service) {
		s.suggestions = enabled
	}
}

// New creates a system simulator
func New(fixtures *fixture.Set, options ...Option) *Service {
	convOptions := conv.DefaultOptions()
	convOptions.IgnoreUnmapped = true
	ret := &Service{
		fixtures:    fixtures,
		suggestions: true,
		converter:   conv.NewConverter(convOptions),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Name returns the simulator name
func (s *Service) Name() string {
	return name
}

// Category returns the system category
func (s *Service) Category() types.Category {
	return types.CategorySystem
}

// Commands returns owned commands
func (s *Service) Commands() types.Signatures {
	return []types.Signature{
		{Name: "ps", Description: "report running processes", Usage: "ps [aux|-ef]"},
		{Name: "top", Description: "display a snapshot of processes", Usage: "top [-b] [-n 1]"},
		{Name: "uname", Description: "print system information", Usage: "uname [-asnrvmpio]"},
		{Name: "date", Description: "print the current date and time", Usage: "date [-u] [-I] [+FORMAT]"},
		{Name: "uptime", Description: "show how long the system has been running", Usage: "uptime"},
		{Name: "id", Description: "print user and group ids", Usage: "id [-u|-g|-n]"},
		{Name: "df", Description: "report filesystem disk space usage", Usage: "df [-h]"},
		{Name: "free", Description: "display memory usage", Usage: "free [-h|-k|-m]"},
		{Name: "ip", Description: "show interfaces and routes", Usage: "ip [addr|route|link]"},
		{Name: "ifconfig", Description: "show network interfaces", Usage: "ifconfig [interface]"},
		{Name: "help", Description: "list available commands", Usage: "help [command]"},
	}
}

// Command returns the executable for a command name
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "ps":
		return s.ps, nil
	case "top":
		return s.top, nil
	case "uname":
		return s.uname, nil
	case "date":
		return s.date, nil
	case "uptime":
		return s.uptime, nil
	case "id":
		return s.id, nil
	case "df":
		return s.df, nil
	case "free":
		return s.free, nil
	case "ip":
		return s.ip, nil
	case "ifconfig":
		return s.ifconfig, nil
	case "help":
		return s.help, nil
	}
	return nil, types.NewCommandNotFoundError(s.Name(), name)
}
