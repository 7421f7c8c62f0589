// Package extension provides the run-time command registry: a static
// partition mapping every recognised command name to exactly one category
// and the simulator that renders it.
//
// The registry is populated once while the engine is constructed. Duplicate
// names are rejected at registration time and Validate reports names from
// Vocabulary that nobody claimed, so a misconfigured engine fails fast
// instead of misrouting commands at run time.
package extension
