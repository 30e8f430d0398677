package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"notetree/internal/adapters/tui"
	"notetree/internal/config"
	"notetree/internal/logger"
	"notetree/internal/service"
)

func main() {
	cfgFlag := flag.String("config", "", "config file (default is $XDG_CONFIG_HOME/notetree/config.toml)")
	dbFlag := flag.String("db", "", "path to the note database (overrides db_path)")
	logFlag := flag.String("log-file", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(*cfgFlag, *dbFlag, *logFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile, dbPath, logFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	// the terminal belongs to the TUI
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.SetOutput(logOut)
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	ctx := context.Background()
	svc, err := service.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()
	svc.Start(ctx)

	// Create and run TUI app
	app := tui.NewApp(svc)

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
