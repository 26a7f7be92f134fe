// Command habitplan runs the habitplan REST API and its maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/habitplan-backend/internal/app"
	"github.com/heartmarshall/habitplan-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "habitplan",
	Short:         "Personal productivity tracker API",
	Long:          `habitplan serves items, goals, milestones, logs, pomodoro sessions and settings over REST, backed by PostgreSQL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server until SIGINT or SIGTERM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.Serve(ctx, cfg, logger)
	},
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := app.MigrateUp
		if len(args) == 1 {
			command = args[0]
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		return app.Migrate(cmd.Context(), cfg, logger, command, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
