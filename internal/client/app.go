// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

// BuildInfo is printed by the version subcommand.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// App runs one vault subcommand per call to Run.
type App struct {
	credentials Credentials
	ownerID     string

	prompt    *tui.Prompter
	out       io.Writer
	clipboard func(string) error
	build     BuildInfo

	logger *logger.Logger
}

// Option customizes an App.
type Option func(*App)

// WithClipboard replaces the function used by "show -copy".
func WithClipboard(copyFn func(string) error) Option {
	return func(a *App) {
		a.clipboard = copyFn
	}
}

// WithBuildInfo sets what "version" prints.
func WithBuildInfo(info BuildInfo) Option {
	return func(a *App) {
		a.build = info
	}
}

// NewApp returns an App acting for ownerID that prompts on in and renders to
// out.
func NewApp(credentials Credentials, ownerID string, in io.Reader, out io.Writer, logger *logger.Logger, opts ...Option) (*App, error) {
	if ownerID == "" {
		return nil, ErrNoOwnerID
	}

	a := &App{
		credentials: credentials,
		ownerID:     ownerID,
		prompt:      tui.NewPrompter(in, out),
		out:         out,
		clipboard:   writeClipboard,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"add":      {usage: "add [-platform p] [-username u] [-url url] [-generate]", run: (*App).add},
	"list":     {usage: "list [-search term]", run: (*App).list},
	"show":     {usage: "show [-copy | -copy-username] [-reveal] <id>", run: (*App).show},
	"edit":     {usage: "edit [-generate] <id>", run: (*App).edit},
	"delete":   {usage: "delete [-yes] <id>", run: (*App).delete},
	"strength": {usage: "strength", run: (*App).summary},
	"version":  {usage: "version", run: (*App).version},
}

var commandOrder = []string{"add", "list", "show", "edit", "delete", "strength", "version"}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	a.logger.Debug().Str("func", "App.Run").Str("command", args[0]).Msg("running command")

	if err := cmd.run(a, ctx, args[1:]); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Str("command", args[0]).Msg("command failed")
		return err
	}

	return nil
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "usage: vault <command> [flags]")
	fmt.Fprintln(a.out)
	for _, name := range commandOrder {
		fmt.Fprintf(a.out, "  vault %s\n", commands[name].usage)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// singleID parses fs and returns its only positional argument.
func singleID(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s expects exactly one id", ErrUsage, fs.Name())
	}
	return fs.Arg(0), nil
}
