// Package model contains the values exchanged between the shell simulator and
// its caller: the per-call Session snapshot, the Result every command line
// produces and the Connection descriptors surfaced through result metadata.
//
// The engine never mutates a Session. Effects such as a new working directory
// or an opened connection are described by the Result and applied by the
// caller, typically through Session.Apply.
package model
