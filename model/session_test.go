package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Succeeded(t *testing.T) {
	var missing *Result
	assert.False(t, missing.Succeeded())
	assert.True(t, NewOutput("").Succeeded())
	assert.True(t, NewSuccess("").Succeeded())
	assert.False(t, NewError("boom").Succeeded())
	assert.False(t, NewNotFound("x: Command not found").Succeeded())
}

func TestSession_Apply(t *testing.T) {
	conn := &Connection{Type: ConnectionSSH, Host: "10.0.0.5", Port: "22", User: "root"}
	moved := NewOutput("")
	moved.NewWorkingDirectory = "/etc"
	failedMove := NewError("cd: failed")
	failedMove.NewWorkingDirectory = "/nowhere"

	testCases := []struct {
		name        string
		result      *Result
		expectCwd   string
		expectConns int
	}{
		{name: "nil result", result: nil, expectCwd: "/home/operator"},
		{name: "plain output", result: NewOutput("hello"), expectCwd: "/home/operator"},
		{name: "working directory", result: moved, expectCwd: "/etc"},
		{name: "connection", result: NewSuccess("").WithConnection(conn), expectCwd: "/home/operator", expectConns: 1},
		{name: "failed move ignored", result: failedMove, expectCwd: "/home/operator"},
		{name: "failed connection ignored", result: NewError("refused").WithConnection(conn), expectCwd: "/home/operator"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := NewSession("operator", "workstation")
			session.Apply(tc.result)
			assert.Equal(t, tc.expectCwd, session.WorkingDirectory)
			assert.Len(t, session.ActiveConnections, tc.expectConns)
		})
	}
}

func TestSession_Clone(t *testing.T) {
	session := NewSession("operator", "workstation")
	session.ContextData = map[string]interface{}{"uid": 1001}
	clone := session.Clone()
	clone.ContextData["uid"] = 0
	clone.Apply(NewSuccess("").WithConnection(&Connection{Type: ConnectionSSH, Host: "h"}))
	assert.Equal(t, 1001, session.ContextData["uid"])
	assert.Empty(t, session.ActiveConnections)
	assert.Len(t, clone.ActiveConnections, 1)
}
