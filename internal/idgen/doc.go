// Package idgen wraps the UUID generator used for invocation and session
// identifiers so that it can be stubbed in tests. Identifiers are opaque.
package idgen
