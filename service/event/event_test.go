package event

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/internal/clock"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/messaging/memory"
)

func TestNewCommand(t *testing.T) {
	defer clock.Freeze(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))()
	session := model.NewSession("operator", "workstation")
	session.ID = "s1"
	ctx := types.EnsureInvocationContext(context.Background(), types.InvocationIDKey, "inv-1", types.InvocationLineKey, "ssh root@10.0.0.5")
	call := &types.Call{Name: "ssh", Args: []string{"root@10.0.0.5"}, Session: session}
	result := model.NewSuccess("ok").WithConnection(&model.Connection{Type: "ssh", Host: "10.0.0.5", Port: "22", User: "root"})

	expect := &Command{
		ID:               "inv-1",
		SessionID:        "s1",
		User:             "operator",
		Host:             "workstation",
		WorkingDirectory: "/home/operator",
		Line:             "ssh root@10.0.0.5",
		Kind:             model.KindSuccess,
		Connection:       "ssh://root@10.0.0.5:22",
		CreatedAt:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	assert.Equal(t, expect, NewCommand(ctx, call, result))
}

func TestPublisher(t *testing.T) {
	queue := memory.NewQueue[Command](memory.Config{Buffer: 1})
	publisher := NewPublisher(queue)
	session := model.NewSession("operator", "workstation")
	ctx := types.EnsureInvocationContext(context.Background(), types.InvocationLineKey, "pwd")

	publisher.Listen(ctx, &types.Call{Name: "pwd", Session: session}, model.NewOutput("/home/operator"))
	publisher.Listen(ctx, &types.Call{Name: "pwd", Session: session}, model.NewOutput("/home/operator"))
	assert.Equal(t, 1, queue.Size())

	consumeCtx, cancel := context.WithCancel(context.Background())
	var lines []string
	err := publisher.Consume(consumeCtx, func(event *Command) {
		lines = append(lines, event.Line)
		cancel()
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"pwd"}, lines)
}

func TestTranscript(t *testing.T) {
	location := filepath.Join(t.TempDir(), "transcript.jsonl")
	transcript := NewTranscript(location)
	transcript.Append(&Command{ID: "1", Line: "pwd", Kind: model.KindOutput})
	transcript.Append(&Command{ID: "2", Line: "boguscmd", Kind: model.KindError, ExitCode: 127})
	assert.Equal(t, 2, transcript.Len())
	if !assert.NoError(t, transcript.Flush(context.Background())) {
		return
	}
	data, err := os.ReadFile(location)
	if !assert.NoError(t, err) {
		return
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], `"line":"pwd"`)
		assert.Contains(t, lines[1], `"exitCode":127`)
	}
}
