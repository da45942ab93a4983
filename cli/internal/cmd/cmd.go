// Package cmd implements the dcapquote CLI commands.
package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	formatText      = "text"
	formatJSON      = "json"
	formatYAML      = "yaml"
	formatCBOR      = "cbor"
	formatProtoJSON = "protojson"
)

var supportedFormats = []string{formatText, formatJSON, formatYAML, formatCBOR, formatProtoJSON}

type decodeFlags struct {
	logLevel string
	format   string
	output   string
	raw      bool
}

// parseDecodeFlags parses the command line flags of the decode command.
func parseDecodeFlags(flags *pflag.FlagSet) (decodeFlags, error) {
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return decodeFlags{}, err
	}
	format, err := flags.GetString("format")
	if err != nil {
		return decodeFlags{}, err
	}
	if !slices.Contains(supportedFormats, format) {
		return decodeFlags{}, fmt.Errorf("unsupported output format %q (supported: %v)", format, supportedFormats)
	}
	output, err := flags.GetString("output")
	if err != nil {
		return decodeFlags{}, err
	}
	raw, err := flags.GetBool("raw")
	if err != nil {
		return decodeFlags{}, err
	}

	return decodeFlags{
		logLevel: logLevel,
		format:   format,
		output:   output,
		raw:      raw,
	}, nil
}

// newLogger creates a development logger writing to stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atomicLevel
	cfg.DisableStacktrace = true
	return cfg.Build()
}
