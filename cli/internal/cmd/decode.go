package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/edgelesssys/go-dcap-quote/cli/internal/file"
	"github.com/edgelesssys/go-dcap-quote/quote"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxInputSize bounds how much is read from a file or stdin.
// It fits the hex encoding of the largest accepted quote plus surrounding whitespace.
const maxInputSize = 2*quote.MaxQuoteSize + 1024

// NewDecodeCmd returns the decode command.
func NewDecodeCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [QUOTE]",
		Short: "Decode an SGX or TDX DCAP quote",
		Long: `Decode an SGX or TDX DCAP quote.

QUOTE is either a hex encoded quote, "@" followed by the path of a file holding the quote,
or "-" to read the quote from stdin. If QUOTE is omitted, stdin is used.
Input read from a file or stdin is hex encoded unless --raw is set.`,
		Example: "dcapquote decode @quote.hex --format json",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, fs)
		},
	}

	cmd.Flags().Bool("raw", false, "treat file or stdin input as a binary quote")
	cmd.Flags().StringP("output", "o", "", "write the decoded quote to a file instead of stdout")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string, fs afero.Fs) error {
	flags, err := parseDecodeFlags(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := newLogger(flags.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	return cliDecode(cmd.InOrStdin(), cmd.OutOrStdout(), fs, log, source, flags)
}

func cliDecode(in io.Reader, out io.Writer, fs afero.Fs, log *zap.Logger, source string, flags decodeFlags) error {
	q, err := readQuote(in, fs, log, source, flags.raw)
	if err != nil {
		return err
	}
	log.Debug("Decoded quote",
		zap.Uint16("version", q.Header.Version),
		zap.String("tee", q.TEE()),
		zap.Stringer("reportType", q.Report.ReportType()),
	)

	rendered, err := render(q, flags.format)
	if err != nil {
		return err
	}

	if w := file.New(flags.output, fs); w != nil {
		if err := w.Write(rendered); err != nil {
			return fmt.Errorf("writing decoded quote: %w", err)
		}
		log.Info("Decoded quote written", zap.String("file", w.Path()), zap.String("format", flags.format))
		return nil
	}

	_, err = out.Write(rendered)
	return err
}

// readQuote reads and decodes the quote named by source.
func readQuote(in io.Reader, fs afero.Fs, log *zap.Logger, source string, raw bool) (*quote.Quote, error) {
	var data []byte
	switch {
	case source == "-":
		log.Debug("Reading quote from stdin")
		var err error
		data, err = io.ReadAll(io.LimitReader(in, maxInputSize+1))
		if err != nil {
			return nil, fmt.Errorf("reading quote from stdin: %w", err)
		}
	case strings.HasPrefix(source, "@"):
		path := strings.TrimPrefix(source, "@")
		log.Debug("Reading quote from file", zap.String("file", path))
		var err error
		data, err = afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("reading quote: %w", err)
		}
	default:
		if raw {
			return nil, errors.New("--raw requires the quote to be read from a file or stdin")
		}
		return quote.Decode(source)
	}

	if len(data) > maxInputSize {
		return nil, fmt.Errorf("input exceeds %d bytes", maxInputSize)
	}
	if raw {
		return quote.DecodeBytes(data)
	}
	return quote.Decode(strings.TrimSpace(string(data)))
}
