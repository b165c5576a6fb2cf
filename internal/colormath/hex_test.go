package colormath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"long hex", "#37474F", "#37474f"},
		{"short hex", "#fff", "#ffffff"},
		{"system name", "White", "#ffffff"},
		{"ansi index", "196", "#ff0000"},
		{"ansi base", "0", "#000000"},
		{"padded", "  #000000 ", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Unknown(t *testing.T) {
	for _, in := range []string{"", "nope", "#12345", "256", "-1"} {
		_, err := ParseColor(in)
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "input %q", in)
		assert.False(t, IsColor(in))
	}
}

func TestHex_RoundsAndClamps(t *testing.T) {
	assert.Equal(t, "#808080", Hex(RGB{0.5, 0.5, 0.5}))
	assert.Equal(t, "#ff0000", Hex(RGB{1.7, -0.1, 0}))
}
