package types

import "fmt"

// Category identifies which part of the engine owns a command name.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBuiltin
	CategoryFile
	CategoryNetwork
	CategorySecurity
	CategorySystem
)

// Categories lists routable categories in dispatch order.
var Categories = []Category{CategoryBuiltin, CategoryFile, CategoryNetwork, CategorySecurity, CategorySystem}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryBuiltin:
		return "builtin"
	case CategoryFile:
		return "file"
	case CategoryNetwork:
		return "network"
	case CategorySecurity:
		return "security"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Title returns a human readable category heading.
func (c Category) Title() string {
	switch c {
	case CategoryBuiltin:
		return "Shell built-ins"
	case CategoryFile:
		return "File operations"
	case CategoryNetwork:
		return "Network"
	case CategorySecurity:
		return "Security tooling"
	case CategorySystem:
		return "System information"
	default:
		return "Other"
	}
}

// ParseCategory converts a category name.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if c.String() == name {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category: %v", name)
}
