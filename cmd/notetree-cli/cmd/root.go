package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notetree/internal/config"
	"notetree/internal/logger"
	"notetree/internal/service"
)

var (
	cfgFile  string
	dbPath   string
	logLevel string
	svc      *service.Service
)

var rootCmd = &cobra.Command{
	Use:   "notetree-cli",
	Short: "Inspect and manage a hierarchical note tree",
	Long: `notetree-cli reads a note database and prints the display tree a
tree widget would render: titles, icons, classes and lazy folders.

It can also seed a database from a YAML fixture and change the hoisted note.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := logger.Init(cfg.LogLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		svc, err = service.New(ctx, cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/notetree/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the note database (overrides db_path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides log_level)")
}

// GetService returns the initialized service with its cache loaded
func GetService(ctx context.Context) (*service.Service, error) {
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
