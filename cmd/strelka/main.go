// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/strelka/main.go
// Summary: Terminal editor entry point.
// Usage: strelka [--workdir DIR] [--themes DIR] [--log-file FILE] [PATH...]

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/framegrace/strelka/action"
	"github.com/framegrace/strelka/config"
	"github.com/framegrace/strelka/fileio"
	"github.com/framegrace/strelka/internal/logging"
	"github.com/framegrace/strelka/internal/runtime"
	"github.com/framegrace/strelka/session"
)

// Options are the command line flags. Every flag can also come from the
// environment or a .env file in the current directory.
type Options struct {
	Workdir string `long:"workdir" short:"w" env:"STRELKA_WORKDIR" description:"Working directory (default: ~/strelka)"`
	Themes  string `long:"themes" env:"STRELKA_THEMES" default:"./themes" description:"Directory searched for theme files"`
	LogFile string `long:"log-file" env:"STRELKA_LOG_FILE" description:"Append logs to this file"`
	Verbose bool   `long:"verbose" short:"v" description:"Log debug messages"`
	Workers int    `long:"workers" env:"STRELKA_WORKERS" default:"4" description:"Concurrent file tasks"`

	Args struct {
		Paths []string `positional-arg-name:"PATH" description:"Files to open or a directory to use as workdir"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("strelka must run in a terminal")
	}

	closeLog, err := setupLogging(opts.LogFile, opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Bootstrap(opts.Workdir)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ui := newFrontend(screen)
	s, startup := session.New(cfg,
		session.WithFiles(fileio.NewLocal(ui)),
		session.WithThemeDir(opts.Themes),
	)
	startup = session.Batch(startup, openArgs(opts.Args.Paths))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := make(chan *tcell.EventKey)
	go ui.poll(ctx, keys)

	rt := runtime.New(s, opts.Workers, ui.render)
	err = rt.Run(ctx, startup, session.Subscription(ctx, keys))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openArgs(paths []string) session.Task {
	var tasks []session.Task
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			tasks = append(tasks, session.Done(session.OpenDirectory{Path: p}))
			continue
		}
		tasks = append(tasks, session.Done(session.Act(action.OpenFileCurrentTab{Path: p})))
	}
	return session.Batch(tasks...)
}

func setupLogging(path string, verbose bool) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logging.SetOutput(f, level)
	logging.Info("Strelka: starting", "pid", os.Getpid())
	return func() { _ = f.Close() }, nil
}
