// Package policy provides a simple, optional per-command approval layer that
// is evaluated by the dispatcher before a simulator runs. A nil *Policy
// allows everything.

package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/shellsim/model/types"
)

// Execution modes recognised by the dispatcher.
const (
	ModeAsk  = "ask"  // ask before every command
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block every simulated command
)

var (
	// ErrCategoryDenied is returned when the command category is disabled.
	ErrCategoryDenied = errors.New("category denied")
	// ErrCommandBlocked is returned when the command itself is not permitted.
	ErrCommandBlocked = errors.New("command blocked")
)

// AskFunc is invoked when Mode==ask. Returning true approves the command.
type AskFunc func(ctx context.Context, command string, args []string, p *Policy) bool

// Policy represents gating settings for a session.
//
//   - Mode controls the high-level behaviour (ask / auto / deny).
//   - AllowList, BlockList filter command names regardless of Mode.
//   - DenyCategories disables whole categories, e.g. network.
//   - Ask is only used when Mode==ask.
type Policy struct {
	Mode           string
	AllowList      []string
	BlockList      []string
	DenyCategories []types.Category
	Ask            AskFunc
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode           string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList      []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList      []string `json:"block,omitempty" yaml:"block,omitempty"`
	DenyCategories []string `json:"denyCategories,omitempty" yaml:"denyCategories,omitempty"`
}

// Validate checks mode and category names.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Mode {
	case "", ModeAuto, ModeAsk, ModeDeny:
	default:
		return fmt.Errorf("unsupported policy mode: %v", c.Mode)
	}
	for _, name := range c.DenyCategories {
		if _, err := types.ParseCategory(name); err != nil {
			return err
		}
	}
	return nil
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	ret := &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
	for _, category := range p.DenyCategories {
		ret.DenyCategories = append(ret.DenyCategories, category.String())
	}
	return ret
}

// FromConfig converts a stored Config back to a runtime Policy (without
// AskFunc). Unknown category names are skipped; use Config.Validate first.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	ret := &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
	for _, name := range c.DenyCategories {
		if category, err := types.ParseCategory(name); err == nil {
			ret.DenyCategories = append(ret.DenyCategories, category)
		}
	}
	return ret
}

// Clone returns a copy that can be extended without affecting the receiver.
func (p *Policy) Clone() *Policy {
	if p == nil {
		return &Policy{}
	}
	return &Policy{
		Mode:           p.Mode,
		AllowList:      append([]string(nil), p.AllowList...),
		BlockList:      append([]string(nil), p.BlockList...),
		DenyCategories: append([]types.Category(nil), p.DenyCategories...),
		Ask:            p.Ask,
	}
}

// DenyCategory returns a copy of the policy with category disabled.
func (p *Policy) DenyCategory(category types.Category) *Policy {
	ret := p.Clone()
	if !ret.IsDenied(category) {
		ret.DenyCategories = append(ret.DenyCategories, category)
	}
	return ret
}

// IsDenied reports whether the whole category is disabled.
func (p *Policy) IsDenied(category types.Category) bool {
	if p == nil {
		return false
	}
	for _, candidate := range p.DenyCategories {
		if candidate == category {
			return true
		}
	}
	return false
}

// IsAllowed evaluates AllowList / BlockList. Both lists match command names
// case-insensitively.
func (p *Policy) IsAllowed(command string) bool {
	if p == nil {
		return true
	}
	normalized := strings.ToLower(command)
	// BlockList has priority.
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// Check returns nil when call may run, otherwise an error wrapping
// ErrCategoryDenied or ErrCommandBlocked.
func (p *Policy) Check(ctx context.Context, category types.Category, call *types.Call) error {
	if p == nil {
		return nil
	}
	if p.IsDenied(category) {
		return fmt.Errorf("%w: %v (%v)", ErrCategoryDenied, call.Name, category)
	}
	if !p.IsAllowed(call.Name) {
		return fmt.Errorf("%w: %v", ErrCommandBlocked, call.Name)
	}
	switch p.Mode {
	case ModeDeny:
		return fmt.Errorf("%w: %v (mode %v)", ErrCommandBlocked, call.Name, p.Mode)
	case ModeAsk:
		if p.Ask == nil || !p.Ask(ctx, call.Name, call.Args, p) {
			return fmt.Errorf("%w: %v (not approved)", ErrCommandBlocked, call.Name)
		}
	}
	return nil
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy stored with WithPolicy.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
