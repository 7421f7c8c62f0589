// Package executor implements the dispatcher: it tokenizes a command line,
// answers shell built-ins directly, applies the session policy and routes the
// remaining names to the simulator owning them. Every call yields exactly one
// model.Result; simulator panics are recovered in-band.
package executor
