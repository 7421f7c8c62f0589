package event

import (
	"context"
	"time"

	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

// Command records one executed command line.
type Command struct {
	ID                  string     `json:"id"`
	SessionID           string     `json:"sessionId,omitempty"`
	User                string     `json:"user"`
	Host                string     `json:"host"`
	WorkingDirectory    string     `json:"cwd"`
	Line                string     `json:"line"`
	Kind                model.Kind `json:"kind"`
	ExitCode            int        `json:"exitCode"`
	NewWorkingDirectory string     `json:"newWorkingDirectory,omitempty"`
	Connection          string     `json:"connection,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// NewCommand builds a command event from an executed call.
func NewCommand(ctx context.Context, call *types.Call, result *model.Result) *Command {
	ret := &Command{
		ID:        types.InvocationValue(ctx, types.InvocationIDKey),
		Line:      types.InvocationValue(ctx, types.InvocationLineKey),
		CreatedAt: clock.Now(),
	}
	if call != nil {
		ret.SessionID = sessionID(call.Session)
		ret.User = call.Session.Username()
		ret.Host = call.Session.Hostname()
		ret.WorkingDirectory = call.Cwd()
	}
	if result != nil {
		ret.Kind = result.Kind
		ret.ExitCode = result.ExitCode
		ret.NewWorkingDirectory = result.NewWorkingDirectory
		ret.Connection = result.Connection().String()
	}
	return ret
}

func sessionID(session *model.Session) string {
	if session == nil {
		return ""
	}
	return session.ID
}
