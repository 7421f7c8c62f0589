package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/viant/shellsim/model"
	"github.com/viant/toolbox"
	"golang.org/x/term"
)

var colors = map[model.Kind]string{
	model.KindError:   "\033[31m",
	model.KindWarning: "\033[33m",
	model.KindInfo:    "\033[36m",
	model.KindSuccess: "\033[32m",
	model.KindSystem:  "\033[35m",
}

const colorReset = "\033[0m"

type printer struct {
	w     io.Writer
	color bool
}

// Print writes result output colored by kind when attached to a terminal.
func (p *printer) Print(result *model.Result) {
	if result == nil || result.Output == "" {
		return
	}
	if code, ok := colors[result.Kind]; ok && p.color {
		fmt.Fprintln(p.w, code+result.Output+colorReset)
		return
	}
	fmt.Fprintln(p.w, result.Output)
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, color: term.IsTerminal(int(os.Stdout.Fd()))}
}

// renderJSON renders a result without empty fields.
func renderJSON(result *model.Result) (string, error) {
	encoded, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	aMap := map[string]interface{}{}
	if err = json.Unmarshal(encoded, &aMap); err != nil {
		return "", fmt.Errorf("failed to convert result: %w", err)
	}
	aMap = toolbox.DeleteEmptyKeys(aMap)
	aMap["exitCode"] = result.ExitCode
	data, err := json.MarshalIndent(aMap, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
