package file

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(New("", afero.NewMemMapFs()))
	assert.Equal("quote.json", New("quote.json", afero.NewMemMapFs()).Path())
}

func TestWriterWrite(t *testing.T) {
	testCases := map[string]struct {
		path     string
		existing []byte
		readOnly bool
		wantErr  bool
	}{
		"new file": {
			path: "quote.json",
		},
		"nested directory": {
			path: "out/quotes/quote.json",
		},
		"existing file is replaced": {
			path:     "quote.json",
			existing: []byte(`{"header":{}, "report":{}}`),
		},
		"read-only filesystem": {
			path:     "quote.json",
			readOnly: true,
			wantErr:  true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			fs := afero.NewMemMapFs()
			if tc.existing != nil {
				require.NoError(afero.WriteFile(fs, tc.path, tc.existing, 0o644))
			}
			if tc.readOnly {
				fs = afero.NewReadOnlyFs(fs)
			}

			err := New(tc.path, fs).Write([]byte("{}"))
			if tc.wantErr {
				assert.Error(err)
				return
			}
			require.NoError(err)

			got, err := afero.ReadFile(fs, tc.path)
			require.NoError(err)
			assert.Equal([]byte("{}"), got)
		})
	}
}
