// Package shellsim provides a simulated shell execution engine.
//
// The engine interprets command lines typed into a training or game terminal
// and answers them with deterministic, fixture driven text. Nothing is ever
// executed on the host: there is no filesystem, process table or network
// behind any command. Every call returns a single model.Result describing the
// output, its kind and exit code, and the session deltas (working directory,
// opened connections) the caller may apply.
//
//	srv, _ := shellsim.New()
//	session := model.NewSession("operator", "workstation")
//	result := srv.Execute(ctx, "cd /etc", session)
//	session.Apply(result)
//
// Commands are partitioned into categories (built-ins, file operations,
// network, security tooling, system information) by a registry that is
// validated once at construction.
package shellsim
