package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/edgelesssys/go-dcap-quote/blobs"
	"github.com/edgelesssys/go-dcap-quote/cli/internal/config"
	"github.com/edgelesssys/go-dcap-quote/quote"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReadQuote(t *testing.T) {
	rawQuote := blobs.TDXQuoteV4()
	hexQuote := hex.EncodeToString(rawQuote)

	testCases := map[string]struct {
		files   map[string][]byte
		stdin   string
		source  string
		raw     bool
		wantErr bool
	}{
		"hex argument": {
			source: hexQuote,
		},
		"uppercase hex argument": {
			source: strings.ToUpper(hexQuote),
		},
		"hex file": {
			files:  map[string][]byte{"quote.hex": []byte(hexQuote + "\n")},
			source: "@quote.hex",
		},
		"raw file": {
			files:  map[string][]byte{"quote.bin": rawQuote},
			source: "@quote.bin",
			raw:    true,
		},
		"hex stdin": {
			stdin:  "  " + hexQuote + "\n",
			source: "-",
		},
		"raw stdin": {
			stdin:  string(rawQuote),
			source: "-",
			raw:    true,
		},
		"raw argument": {
			source:  hexQuote,
			raw:     true,
			wantErr: true,
		},
		"missing file": {
			source:  "@quote.hex",
			wantErr: true,
		},
		"raw file read as hex": {
			files:   map[string][]byte{"quote.bin": rawQuote},
			source:  "@quote.bin",
			wantErr: true,
		},
		"empty stdin": {
			source:  "-",
			wantErr: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			fs := afero.NewMemMapFs()
			for name, data := range tc.files {
				require.NoError(afero.WriteFile(fs, name, data, 0o644))
			}

			q, err := readQuote(strings.NewReader(tc.stdin), fs, zaptest.NewLogger(t), tc.source, tc.raw)
			if tc.wantErr {
				assert.Error(err)
				return
			}
			require.NoError(err)
			assert.EqualValues(4, q.Header.Version)
			assert.Equal("TDX", q.TEE())
		})
	}
}

func TestReadQuoteErrorTypes(t *testing.T) {
	assert := assert.New(t)
	log := zaptest.NewLogger(t)

	_, err := readQuote(strings.NewReader(""), afero.NewMemMapFs(), log, "-", false)
	var emptyErr *quote.EmptyInputError
	assert.True(errors.As(err, &emptyErr))

	_, err = readQuote(strings.NewReader(""), afero.NewMemMapFs(), log, "05zz", false)
	var hexErr *quote.MalformedHexError
	assert.True(errors.As(err, &hexErr))

	_, err = readQuote(strings.NewReader(""), afero.NewMemMapFs(), log, "0500", false)
	var truncErr *quote.TruncatedInputError
	assert.True(errors.As(err, &truncErr))
}

func TestCliDecode(t *testing.T) {
	testCases := map[string]struct {
		flags    decodeFlags
		wantFile bool
		wantErr  bool
	}{
		"text to stdout": {
			flags: decodeFlags{format: formatText},
		},
		"json to file": {
			flags:    decodeFlags{format: formatJSON, output: "quote.json"},
			wantFile: true,
		},
		"protojson of SGX quote": {
			flags:   decodeFlags{format: formatProtoJSON},
			wantErr: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			source := hex.EncodeToString(blobs.TDXQuoteV4())
			if tc.wantErr {
				source = hex.EncodeToString(blobs.SGXQuoteV3())
			}

			fs := afero.NewMemMapFs()
			var out bytes.Buffer
			err := cliDecode(strings.NewReader(""), &out, fs, zaptest.NewLogger(t), source, tc.flags)
			if tc.wantErr {
				assert.Error(err)
				return
			}
			require.NoError(err)

			if tc.wantFile {
				assert.Empty(out.String())
				data, err := afero.ReadFile(fs, tc.flags.output)
				require.NoError(err)
				var view quote.QuoteView
				require.NoError(json.Unmarshal(data, &view))
				assert.Equal("0400", view.Header.Version)
				return
			}
			assert.Contains(out.String(), "MRTD:")
		})
	}
}

func TestRootCmd(t *testing.T) {
	testCases := map[string]struct {
		cfg     config.Config
		args    []string
		want    string
		wantErr bool
	}{
		"decode json from environment default": {
			cfg:  config.Config{LogLevel: "info", Format: "json"},
			args: []string{"decode", "@quote.hex"},
			want: `"mrTd": "` + hex.EncodeToString(blobs.Pattern(48, blobs.SeedMRTD)) + `"`,
		},
		"format flag overrides environment": {
			cfg:  config.Config{LogLevel: "info", Format: "json"},
			args: []string{"decode", "--format", "yaml", "@quote.hex"},
			want: "mrTd: " + hex.EncodeToString(blobs.Pattern(48, blobs.SeedMRTD)),
		},
		"text": {
			cfg:  config.Config{LogLevel: "debug", Format: "text"},
			args: []string{"decode", "@quote.hex"},
			want: "TD report 1.0",
		},
		"unsupported format": {
			cfg:     config.Config{LogLevel: "info", Format: "xml"},
			args:    []string{"decode", "@quote.hex"},
			wantErr: true,
		},
		"invalid log level": {
			cfg:     config.Config{LogLevel: "loud", Format: "text"},
			args:    []string{"decode", "@quote.hex"},
			wantErr: true,
		},
		"too many arguments": {
			cfg:     config.Config{LogLevel: "info", Format: "text"},
			args:    []string{"decode", "@quote.hex", "@quote.hex"},
			wantErr: true,
		},
		"version": {
			cfg:  config.Config{LogLevel: "info", Format: "text"},
			args: []string{"version"},
			want: "dcapquote v" + Version,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			fs := afero.NewMemMapFs()
			require.NoError(afero.WriteFile(fs, "quote.hex", []byte(blobs.TDXQuoteV5Hex()), 0o644))

			cmd := NewRootCmd(tc.cfg, fs)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if tc.wantErr {
				assert.Error(err)
				return
			}
			require.NoError(err)
			assert.Contains(out.String(), tc.want)
		})
	}
}
