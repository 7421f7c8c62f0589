// Package argv splits simulated command arguments into flags and operands.
// Only what the simulated tools need is supported: "-x", "-x value",
// "--name", "--name value", "--name=value" and "--" as end of flags.
// Short flag clustering is left to the commands that accept it.
package argv

import "strings"

// Args holds parsed arguments
type Args struct {
	Flags      map[string]string
	Names      []string // flag names in order of appearance
	Positional []string
}

// Has reports whether any of names was supplied
func (a *Args) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := a.Flags[name]; ok {
			return true
		}
	}
	return false
}

// Value returns the value of the first supplied name
func (a *Args) Value(names ...string) string {
	for _, name := range names {
		if value, ok := a.Flags[name]; ok {
			return value
		}
	}
	return ""
}

// First returns the first operand or empty string
func (a *Args) First() string {
	if len(a.Positional) == 0 {
		return ""
	}
	return a.Positional[0]
}

// Unknown returns the first flag not in allowed, empty when all are known
func (a *Args) Unknown(allowed ...string) string {
	for _, name := range a.Names {
		known := false
		for _, candidate := range allowed {
			if candidate == name {
				known = true
				break
			}
		}
		if !known {
			return name
		}
	}
	return ""
}

// Parse parses args; valued lists flags that consume the following argument.
func Parse(args []string, valued ...string) *Args {
	ret := &Args{Flags: map[string]string{}}
	takesValue := func(name string) bool {
		for _, candidate := range valued {
			if candidate == name {
				return true
			}
		}
		return false
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			ret.Positional = append(ret.Positional, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			ret.Positional = append(ret.Positional, arg)
			continue
		}
		name, value := arg, ""
		if strings.HasPrefix(arg, "--") {
			if idx := strings.Index(arg, "="); idx != -1 {
				name, value = arg[:idx], arg[idx+1:]
				ret.add(name, value)
				continue
			}
		}
		if takesValue(name) && i+1 < len(args) {
			i++
			value = args[i]
		}
		ret.add(name, value)
	}
	return ret
}

func (a *Args) add(name, value string) {
	if _, ok := a.Flags[name]; !ok {
		a.Names = append(a.Names, name)
	}
	a.Flags[name] = value
}
