package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/shellsim/extension"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

func (s *Service) help(ctx context.Context, call *types.Call) *model.Result {
	sections := s.sections()
	if len(call.Args) > 0 {
		topic := call.Args[0]
		if len(topic) > 1 && topic[0] == '-' {
			return model.NewUsage(fmt.Sprintf("help: %s: invalid option\nhelp: usage: help [command]", topic))
		}
		for _, section := range sections {
			if signature := section.Signatures.Lookup(topic); signature != nil {
				return model.NewInfo(fmt.Sprintf("%s: %s\n    %s", signature.Name, signature.Usage, signature.Description))
			}
		}
		return model.NewError(fmt.Sprintf("help: no help topics match '%s'", topic))
	}
	lines := []string{"Available commands:"}
	for _, section := range sections {
		lines = append(lines, "", section.Category.Title()+":")
		for _, signature := range section.Signatures {
			lines = append(lines, fmt.Sprintf("  %-10s %s", signature.Name, signature.Description))
		}
	}
	lines = append(lines, "", "Type 'help <command>' for usage.")
	return model.NewInfo(strings.Join(lines, "\n"))
}

func (s *Service) sections() []*extension.Section {
	if s.catalog != nil {
		return s.catalog.Catalog()
	}
	return []*extension.Section{{Category: s.Category(), Signatures: s.Commands()}}
}
