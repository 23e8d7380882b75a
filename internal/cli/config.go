// Package cli holds the flag and configuration wiring shared by the toon
// command-line front end. It is an external collaborator to the core
// codec: it only calls toon's public entry points.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sstraus/toon_go/toon"
)

// Flags holds CLI flag names for toon configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Output       string
	Encode       string
	Decode       string
	Delimiter    string
	Indent       string
	KeyFolding   string
	FlattenDepth string
	ExpandPaths  string
	NoStrict     string
	Stats        string
}

// Config holds CLI flag values for toon configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.EncodeOptions] / [Config.DecodeOptions]
// to obtain the codec option sets matching the flag values.
type Config struct {
	Flags Flags

	Output       string
	Encode       bool
	Decode       bool
	Delimiter    string
	Indent       int
	KeyFolding   bool
	FlattenDepth int
	ExpandPaths  bool
	NoStrict     bool
	Stats        bool
}

// NewConfig returns a new [Config] with default flag names and the same
// default values that [Config.RegisterFlags] installs.
func NewConfig() *Config {
	return &Config{Flags: Flags{
		Output:       "output",
		Encode:       "encode",
		Decode:       "decode",
		Delimiter:    "delimiter",
		Indent:       "indent",
		KeyFolding:   "keyFolding",
		FlattenDepth: "flattenDepth",
		ExpandPaths:  "expandPaths",
		NoStrict:     "no-strict",
		Stats:        "stats",
	},
		Output:    "-",
		Delimiter: ",",
		Indent:    2,
	}
}

// RegisterFlags adds toon flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.BoolVarP(&c.Encode, c.Flags.Encode, "e", false,
		"force encode direction (JSON/value to TOON)")
	flags.BoolVarP(&c.Decode, c.Flags.Decode, "d", false,
		"force decode direction (TOON to JSON)")
	flags.StringVar(&c.Delimiter, c.Flags.Delimiter, ",",
		"active delimiter: ',' , '\\t' or '|'")
	flags.IntVar(&c.Indent, c.Flags.Indent, 2,
		"indentation width in spaces")
	flags.BoolVar(&c.KeyFolding, c.Flags.KeyFolding, false,
		"collapse single-key object chains into dotted keys on encode")
	flags.IntVar(&c.FlattenDepth, c.Flags.FlattenDepth, 0,
		"maximum segments folded when key folding is enabled (0 = unbounded)")
	flags.BoolVar(&c.ExpandPaths, c.Flags.ExpandPaths, false,
		"expand dotted keys into nested objects on decode")
	flags.BoolVar(&c.NoStrict, c.Flags.NoStrict, false,
		"disable strict-mode rejection rules on decode")
	flags.BoolVar(&c.Stats, c.Flags.Stats, false,
		"print size/timing statistics to stderr")
}

// RegisterCompletions registers shell completions for toon flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Delimiter,
		cobra.FixedCompletions([]string{",", "\\t", "|"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Delimiter, err)
	}
	return nil
}

// delimiterByte resolves the configured delimiter flag value to its byte
// form, accepting the literal two-character escape "\t" in addition to a
// real tab.
func (c *Config) delimiterByte() (byte, error) {
	switch c.Delimiter {
	case ",":
		return ',', nil
	case "|":
		return '|', nil
	case "\t", `\t`:
		return '\t', nil
	default:
		return 0, fmt.Errorf("invalid delimiter %q: must be ',', '\\t', or '|'", c.Delimiter)
	}
}

// EncodeOptions builds the toon.EncodeOption set matching the flag values.
func (c *Config) EncodeOptions() ([]toon.EncodeOption, error) {
	delim, err := c.delimiterByte()
	if err != nil {
		return nil, err
	}
	opts := []toon.EncodeOption{
		toon.WithIndent(c.Indent),
		toon.WithDelimiter(delim),
	}
	if c.KeyFolding {
		opts = append(opts, toon.WithKeyFolding(toon.KeyFoldingSafe, c.FlattenDepth))
	}
	return opts, nil
}

// DecodeOptions builds the toon.DecodeOption set matching the flag values.
func (c *Config) DecodeOptions() ([]toon.DecodeOption, error) {
	delim, err := c.delimiterByte()
	if err != nil {
		return nil, err
	}
	opts := []toon.DecodeOption{
		toon.WithDecoderIndent(c.Indent),
		toon.WithDecoderDelimiter(delim),
		toon.WithStrict(!c.NoStrict),
	}
	if c.ExpandPaths {
		opts = append(opts, toon.WithExpandPaths(toon.ExpandPathsSafe))
	}
	return opts, nil
}
