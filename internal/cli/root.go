// Package cli implements the command-line interface for qsolog.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/kilupskalvis/qsolog/internal/adif"
	"github.com/kilupskalvis/qsolog/internal/config"
	"github.com/kilupskalvis/qsolog/internal/store"
	"github.com/spf13/cobra"
)

// version is reported by --version and matches the ADIF export header
const version = adif.ProgramVersion

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Store  *store.Store
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}

// initContext loads config and opens the store, upgrading its schema if needed
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	if err := st.Initialize(); err != nil {
		st.Close()
		exitError("failed to initialize store: %v", err)
	}

	return &cmdContext{Config: cfg, Store: st}
}

var rootCmd = &cobra.Command{
	Use:   "qsolog",
	Short: "Amateur radio contact logger",
	Long: `qsolog records amateur radio contacts (QSOs) against operator profiles
and exports them as ADIF for import into other logging tools.`,
	Version:          version,
	PersistentPreRun: setupLogging,
}

var (
	logLevel  string
	logFormat string
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(profileCmd)
}

// setupLogging installs the default slog logger. Flags win over the config file.
func setupLogging(cmd *cobra.Command, args []string) {
	level, format := config.Default().LogLevel, config.Default().LogFormat
	if cfg, err := config.Load(); err == nil {
		level, format = cfg.LogLevel, cfg.LogFormat
	}
	if logLevel != "" {
		level = logLevel
	}
	if logFormat != "" {
		format = logFormat
	}

	slog.SetDefault(newLogger(level, format, os.Stderr))
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// parseProfileID parses a profile id argument
func parseProfileID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		exitError("invalid profile id %q", s)
	}
	return id
}

// profileHint adds guidance to profile lookup failures
func profileHint(err error) string {
	if errors.Is(err, store.ErrProfileNotFound) {
		return fmt.Sprintf("%v\nhint: list profiles with 'qsolog profile', create one with 'qsolog profile add'", err)
	}
	return err.Error()
}
