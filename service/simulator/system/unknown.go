package system

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

const maxSuggestions = 3

// Unknown returns the executable rendering a name no simulator owns
func (s *Service) Unknown(name string) types.Executable {
	return func(ctx context.Context, call *types.Call) *model.Result {
		output := fmt.Sprintf("%s: Command not found", name)
		if s.suggestions {
			if candidates := s.suggest(name); len(candidates) > 0 {
				output += "\nDid you mean: " + strings.Join(candidates, ", ") + "?"
			}
		}
		return model.NewNotFound(output)
	}
}

func (s *Service) suggest(name string) []string {
	if name == "" {
		return nil
	}
	var names []string
	if s.catalog != nil {
		names = s.catalog.Names()
	} else {
		names = s.Commands().Names()
	}
	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	for _, candidateName := range names {
		if candidateName == name {
			continue
		}
		distance := fuzzy.LevenshteinDistance(name, candidateName)
		if fuzzy.MatchFold(name, candidateName) || (distance <= 2 && distance <= len(name)/2) {
			candidates = append(candidates, candidate{name: candidateName, distance: distance})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	ret := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ret = append(ret, c.name)
	}
	return ret
}
