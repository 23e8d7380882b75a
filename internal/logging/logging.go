// Package logging provides structured logging handler construction for the
// toon command-line front end, built on [log/slog].
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level string
}

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewHandler] to create a [slog.Handler].
type Config struct {
	Level string
	Flags Flags
}

// NewConfig returns a new [Config] with the default flag name and an empty
// level.
func NewConfig() *Config {
	return &Config{Flags: Flags{Level: "log-level"}}
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "warn",
		fmt.Sprintf("log level, one of: %s", strings.Join(allLevelStrings, ", ")))
}

// RegisterCompletions registers shell completions for the log-level flag.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(allLevelStrings, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}
	return nil
}

// NewHandler creates a [slog.Handler] writing to w at the configured level.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	lvl, err := Level(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}), nil
}

var allLevelStrings = []string{"debug", "info", "warn", "error"}

// Level parses a log level string into a [slog.Level].
func Level(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, ErrUnknownLogLevel
}
