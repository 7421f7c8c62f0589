// Package event publishes executed commands to a queue so that hosts can
// record session transcripts without slowing down command execution.
package event
