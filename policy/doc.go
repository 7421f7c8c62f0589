// Package policy provides optional declarative rules that gate which
// simulated commands a session may run, for example to disable the network
// category or to block selected tools outright.
package policy
