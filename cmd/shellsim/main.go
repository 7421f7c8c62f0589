package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/shellsim"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/service/executor"
)

type options struct {
	config     string
	user       string
	host       string
	cwd        string
	noNetwork  bool
	json       bool
	verbose    bool
	transcript string
}

func main() {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "shellsim",
		Short:         "Simulated shell: answers commands with canned, deterministic output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "configuration URL (yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.user, "user", "u", model.DefaultUsername, "session user name")
	rootCmd.PersistentFlags().StringVar(&opts.host, "host", "workstation", "session host name")
	rootCmd.PersistentFlags().BoolVar(&opts.noNetwork, "no-network", false, "disable network commands")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every executed command")

	execCmd := &cobra.Command{
		Use:   "exec <command line...>",
		Short: "Execute a single command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, err := runExec(cmd.Context(), opts, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}
	execCmd.Flags().StringVar(&opts.cwd, "cwd", "", "working directory (defaults to the user home)")
	execCmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.Context(), opts)
		},
	}
	replCmd.Flags().StringVar(&opts.transcript, "transcript", "", "record executed commands as JSON lines to this URL")
	rootCmd.AddCommand(execCmd, replCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newService(ctx context.Context, opts *options, listeners ...executor.Listener) (*shellsim.Service, error) {
	cfg := shellsim.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = shellsim.LoadConfig(ctx, opts.config); err != nil {
			return nil, err
		}
	}
	if opts.verbose {
		listeners = append(listeners, executor.LogListener)
	}
	return shellsim.NewFromConfig(ctx, cfg, shellsim.WithListener(executor.Listeners(listeners...)))
}

func newSession(opts *options) *model.Session {
	ret := model.NewSession(opts.user, opts.host)
	ret.NetworkEnabled = !opts.noNetwork
	if opts.cwd != "" {
		ret.WorkingDirectory = opts.cwd
	}
	return ret
}

func runExec(ctx context.Context, opts *options, line string) (int, error) {
	srv, err := newService(ctx, opts)
	if err != nil {
		return 0, err
	}
	result := srv.Execute(ctx, line, newSession(opts))
	if opts.json {
		text, err := renderJSON(result)
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(os.Stdout, text)
		return result.ExitCode, nil
	}
	newPrinter(os.Stdout).Print(result)
	return result.ExitCode, nil
}
