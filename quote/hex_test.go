package quote

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBytes(t *testing.T) {
	testCases := map[string]struct {
		input      string
		want       []byte
		wantErr    bool
		wantOffset int
	}{
		"empty": {
			input: "",
			want:  []byte{},
		},
		"lowercase": {
			input: "0500ff",
			want:  []byte{0x05, 0x00, 0xff},
		},
		"uppercase": {
			input: "DEADBEEF",
			want:  []byte{0xde, 0xad, 0xbe, 0xef},
		},
		"odd length": {
			input:      "050",
			wantErr:    true,
			wantOffset: 3,
		},
		"invalid character": {
			input:      "zz",
			wantErr:    true,
			wantOffset: 0,
		},
		"invalid character in second byte": {
			input:      "05g0",
			wantErr:    true,
			wantOffset: 2,
		},
		"0x prefix is not stripped": {
			input:      "0x0500",
			wantErr:    true,
			wantOffset: 1,
		},
		"whitespace": {
			input:      "05 00",
			wantErr:    true,
			wantOffset: 2,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			got, err := ToBytes(tc.input)
			if tc.wantErr {
				var hexErr *MalformedHexError
				require.True(errors.As(err, &hexErr))
				assert.Equal(tc.wantOffset, hexErr.Offset)
				return
			}
			require.NoError(err)
			assert.Equal(tc.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	got, err := ToBytes(ToHex(all))
	require.NoError(err)
	assert.Equal(all, got)

	upper := strings.ToUpper(ToHex(all))
	got, err = ToBytes(upper)
	require.NoError(err)
	assert.Equal(strings.ToLower(upper), ToHex(got))
}

func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{0x05, 0x00})
	f.Fuzz(func(t *testing.T, a []byte) {
		assert := assert.New(t)
		require := require.New(t)

		got, err := ToBytes(ToHex(a))
		require.NoError(err)
		assert.Equal(len(a), len(got))
		assert.Equal(ToHex(a), ToHex(got))
	})
}

func FuzzToBytes(f *testing.F) {
	f.Add("0500")
	f.Fuzz(func(t *testing.T, s string) {
		assert := assert.New(t)
		assert.NotPanics(func() { _, _ = ToBytes(s) })
	})
}
