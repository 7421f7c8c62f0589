package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/service/dao/session"
	"github.com/viant/shellsim/service/event"
	"github.com/viant/shellsim/service/executor"
	"github.com/viant/shellsim/service/messaging/memory"
)

func prompt(s *model.Session) string {
	cwd := s.Cwd()
	home := model.HomeDirectory(s.Username())
	if cwd == home {
		cwd = "~"
	} else if strings.HasPrefix(cwd, home+"/") {
		cwd = "~" + cwd[len(home):]
	}
	return fmt.Sprintf("%s@%s:%s$ ", s.Username(), s.Hostname(), cwd)
}

func runRepl(ctx context.Context, opts *options) error {
	var listeners []executor.Listener
	if opts.transcript != "" {
		transcript := event.NewTranscript(opts.transcript)
		queue := memory.NewQueue[event.Command](memory.DefaultConfig())
		publisher := event.NewPublisher(queue)
		consumeCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = publisher.Consume(consumeCtx, transcript.Append)
		}()
		defer func() {
			cancel()
			<-done
			for queue.Size() > 0 {
				if msg, err := queue.Consume(ctx); err == nil {
					transcript.Append(msg.T())
				}
			}
			if err := transcript.Flush(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}()
		listeners = append(listeners, publisher.Listen)
	}
	srv, err := newService(ctx, opts, listeners...)
	if err != nil {
		return err
	}
	sessions := session.New()
	current := newSession(opts)
	current.ID = uuid.New().String()
	if err = sessions.Save(ctx, current); err != nil {
		return err
	}

	completer := readline.NewPrefixCompleter(readline.PcItemDynamic(func(string) []string {
		return srv.Registry().Names()
	}))
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(current),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to init readline: %w", err)
	}
	defer rl.Close()
	log.SetOutput(rl.Stderr())

	out := newPrinter(rl.Stdout())
	fmt.Fprintln(rl.Stdout(), "Simulated shell. Nothing typed here runs on this machine. Press Ctrl+D to leave.")
	for {
		rl.SetPrompt(prompt(current))
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		result := srv.Execute(ctx, line, current)
		out.Print(result)
		if current, err = sessions.Apply(ctx, current.ID, result); err != nil {
			fmt.Fprintf(os.Stderr, "failed to update session: %v\n", err)
			return err
		}
	}
}
