package model

// Kind classifies a command result so that the caller can style it.
type Kind string

const (
	KindOutput  Kind = "output"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindSystem  Kind = "system"
)

// Exit codes used by the engine.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 127
)

// MetadataConnection is the metadata key holding a *Connection produced by a command.
const MetadataConnection = "connection"

// Result is the only value the engine ever returns for a command line.
type Result struct {
	Output   string `json:"output" yaml:"output"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	ExitCode int    `json:"exitCode" yaml:"exitCode"`
	// NewWorkingDirectory is set only when the command moves the session cursor.
	NewWorkingDirectory string `json:"newWorkingDirectory,omitempty" yaml:"newWorkingDirectory,omitempty"`
	// Metadata is set only for commands with session-visible side effects.
	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Succeeded reports whether the command exited with 0.
func (r *Result) Succeeded() bool {
	return r != nil && r.ExitCode == ExitOK
}

// Connection returns the connection descriptor carried in metadata, if any.
func (r *Result) Connection() *Connection {
	if r == nil || r.Metadata == nil {
		return nil
	}
	conn, _ := r.Metadata[MetadataConnection].(*Connection)
	return conn
}

// WithConnection attaches a connection descriptor to the result metadata.
func (r *Result) WithConnection(conn *Connection) *Result {
	if r.Metadata == nil {
		r.Metadata = map[string]interface{}{}
	}
	r.Metadata[MetadataConnection] = conn
	return r
}

// NewResult creates a result of the supplied kind.
func NewResult(kind Kind, exitCode int, output string) *Result {
	return &Result{Output: output, Kind: kind, ExitCode: exitCode}
}

// NewOutput creates a plain successful result.
func NewOutput(output string) *Result {
	return NewResult(KindOutput, ExitOK, output)
}

// NewSuccess creates a successful result rendered as a success message.
func NewSuccess(output string) *Result {
	return NewResult(KindSuccess, ExitOK, output)
}

// NewInfo creates an informational result.
func NewInfo(output string) *Result {
	return NewResult(KindInfo, ExitOK, output)
}

// NewSystem creates a successful result rendered as system text (banners, prompts).
func NewSystem(output string) *Result {
	return NewResult(KindSystem, ExitOK, output)
}

// NewError creates a generic failure.
func NewError(output string) *Result {
	return NewResult(KindError, ExitFailure, output)
}

// NewUsage creates a usage failure for a recognised command.
func NewUsage(usage string) *Result {
	return NewResult(KindError, ExitFailure, usage)
}

// NewWarning creates a warning with a failing exit code.
func NewWarning(output string) *Result {
	return NewResult(KindWarning, ExitFailure, output)
}

// NewNotFound creates an unknown command result.
func NewNotFound(output string) *Result {
	return NewResult(KindError, ExitNotFound, output)
}
