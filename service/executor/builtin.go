package executor

import (
	"strings"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/resolver"
)

// ExitMessage is returned by exit and logout; the engine has no process to end.
const ExitMessage = "exit: this session cannot be closed from the shell. Close the terminal window instead."

// Builtins lists commands the dispatcher handles itself, in precedence order.
func Builtins() types.Signatures {
	return []types.Signature{
		{Name: "cd", Description: "change the working directory", Usage: "cd [dir]"},
		{Name: "echo", Description: "display a line of text", Usage: "echo [text...]"},
		{Name: "pwd", Description: "print the working directory", Usage: "pwd"},
		{Name: "whoami", Description: "print the session user name", Usage: "whoami"},
		{Name: "hostname", Description: "print the session host name", Usage: "hostname"},
		{Name: "exit", Description: "leave the session", Usage: "exit"},
		{Name: "logout", Description: "leave the session", Usage: "logout"},
	}
}

func builtin(call *types.Call) *model.Result {
	switch call.Name {
	case "cd":
		return resolver.Cd(call.Args, call.Cwd(), call.Home)
	case "echo":
		return model.NewOutput(strings.Join(call.Args, " "))
	case "pwd":
		return model.NewOutput(call.Cwd())
	case "whoami":
		return model.NewOutput(call.Session.Username())
	case "hostname":
		return model.NewOutput(call.Session.Hostname())
	case "exit", "logout":
		return model.NewWarning(ExitMessage)
	}
	return nil
}
