package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	testCases := map[string]struct {
		environ map[string]string
		want    Config
	}{
		"defaults": {
			environ: map[string]string{},
			want:    Config{LogLevel: "info", Format: "text"},
		},
		"overrides": {
			environ: map[string]string{
				"DCAPQUOTE_LOG_LEVEL": "debug",
				"DCAPQUOTE_FORMAT":    "json",
			},
			want: Config{LogLevel: "debug", Format: "json"},
		},
		"unrelated variables": {
			environ: map[string]string{"FORMAT": "yaml"},
			want:    Config{LogLevel: "info", Format: "text"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			cfg, err := Load(tc.environ)
			require.NoError(err)
			assert.Equal(tc.want, cfg)
		})
	}
}
