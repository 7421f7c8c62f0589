package criteria

import (
	"github.com/viant/shellsim/service/dao"
)

// Match reports whether value satisfies every parameter called name.
// Parameters with other names, or with values that are not strings, are ignored.
func Match(name, value string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != name {
			continue
		}
		accepted := parameter.Values()
		if accepted == nil {
			continue
		}
		if !contains(accepted, value) {
			return false
		}
	}
	return true
}

func contains(candidates []string, value string) bool {
	for _, candidate := range candidates {
		if candidate == value {
			return true
		}
	}
	return false
}
