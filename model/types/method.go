package types

import (
	"context"

	"github.com/viant/shellsim/model"
)

// Signatures lists the commands a simulator owns
type Signatures []Signature

func (s Signatures) Lookup(name string) *Signature {
	for i := range s {
		sig := &s[i]
		if sig.Name == name {
			return sig
		}
	}
	return nil
}

// Names returns command names in declaration order.
func (s Signatures) Names() []string {
	ret := make([]string, 0, len(s))
	for _, sig := range s {
		ret = append(ret, sig.Name)
	}
	return ret
}

// Signature describes a command owned by a simulator
type Signature struct {
	Name        string
	Description string
	Usage       string
}

// Call is a tokenized command line with the session snapshot it runs against
type Call struct {
	Name    string
	Args    []string
	Home    string
	Session *model.Session
}

// Cwd returns the session working directory.
func (c *Call) Cwd() string {
	return c.Session.Cwd()
}

// Executable renders the result of a call; it never returns nil
type Executable func(ctx context.Context, call *Call) *model.Result
