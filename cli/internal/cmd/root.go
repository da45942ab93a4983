package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/edgelesssys/go-dcap-quote/cli/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var globalUsage = `The dcapquote CLI decodes Intel SGX and TDX DCAP quotes
(versions 3, 4 and 5) and prints their fields.

To decode a hex encoded quote stored in a file, run:

    $ dcapquote decode @quote.hex
`

// NewRootCmd returns the root command. Flag defaults are taken from cfg.
func NewRootCmd(cfg config.Config, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dcapquote",
		Short:         "Decode Intel SGX and TDX DCAP quotes",
		Long:          globalUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("format", cfg.Format, "output format (text, json, yaml, cbor, protojson)")

	cmd.AddCommand(NewDecodeCmd(fs))
	cmd.AddCommand(NewVersionCmd())
	return cmd
}

// Execute starts the CLI.
func Execute() error {
	cfg, err := config.Load(nil)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rootCmd := NewRootCmd(cfg, afero.NewOsFs())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	cmd.PrintErrln(color.New(color.FgRed).Sprintf("Error: %s", err))
}
