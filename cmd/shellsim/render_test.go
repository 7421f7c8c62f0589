package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/model"
)

func TestPrompt(t *testing.T) {
	testCases := []struct {
		name   string
		user   string
		cwd    string
		expect string
	}{
		{name: "home", user: "operator", cwd: "/home/operator", expect: "operator@workstation:~$ "},
		{name: "below home", user: "operator", cwd: "/home/operator/reports", expect: "operator@workstation:~/reports$ "},
		{name: "elsewhere", user: "operator", cwd: "/etc", expect: "operator@workstation:/etc$ "},
		{name: "root home", user: "root", cwd: "/root", expect: "root@workstation:~$ "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := model.NewSession(tc.user, "workstation")
			s.WorkingDirectory = tc.cwd
			assert.Equal(t, tc.expect, prompt(s))
		})
	}
}

func TestRenderJSON(t *testing.T) {
	result := model.NewSuccess("connected").WithConnection(&model.Connection{Type: "ssh", Host: "10.0.0.5", Port: "22", User: "root"})
	text, err := renderJSON(result)
	if !assert.NoError(t, err) {
		return
	}
	actual := map[string]interface{}{}
	assert.NoError(t, json.Unmarshal([]byte(text), &actual))
	assert.Equal(t, "connected", actual["output"])
	assert.Equal(t, "success", actual["kind"])
	assert.EqualValues(t, 0, actual["exitCode"])
	assert.NotContains(t, actual, "newWorkingDirectory")
	metadata, ok := actual["metadata"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "10.0.0.5", metadata["connection"].(map[string]interface{})["host"])
	}
}

func TestPrinter(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &printer{w: buf}
	p.Print(model.NewOutput(""))
	p.Print(model.NewError("boom"))
	assert.Equal(t, "boom\n", buf.String())

	buf.Reset()
	p.color = true
	p.Print(model.NewError("boom"))
	p.Print(model.NewOutput("plain"))
	assert.Equal(t, "\033[31mboom\033[0m\nplain\n", buf.String())
}
