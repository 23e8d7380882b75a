// Command toon converts between JSON and TOON (Token-Oriented Object
// Notation), auto-detecting direction from the input unless -e/-d forces
// one.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sstraus/toon_go/internal/cli"
	"github.com/sstraus/toon_go/internal/logging"
)

func main() {
	cfg := cli.NewConfig()
	logCfg := logging.NewConfig()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "toon [flags] <file|->",
		Short: "Convert between JSON and TOON",
		Long: `toon converts JSON to TOON and TOON back to JSON.

With no -e/-d flag, the input is auto-detected: valid JSON is encoded to
TOON, anything else is decoded from TOON to JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(handler))

			if configPath != "" {
				fc, err := cli.LoadFileConfig(configPath)
				if err != nil {
					return err
				}
				cfg.ApplyFile(fc, rootCmd.Flags().Changed)
			}

			input := "-"
			if len(args) > 0 {
				input = args[0]
			}
			return cli.Run(cfg, input, os.Stdin, os.Stdout, os.Stderr)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
