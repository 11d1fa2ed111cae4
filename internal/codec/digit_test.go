package codec

import (
	"testing"

	"github.com/catspeak-dev/catspeak/internal/alphabet"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeBase(t *testing.T, base int) alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.Default().Active(base)
	require.NoError(t, err)
	return a
}

func TestEncodeDigit(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		base  int
		width uint32
		want  []string
	}{
		{name: "nine in base 4", value: 9, base: 4, width: 3, want: []string{"meow", "mreow", "mrrp"}},
		{name: "zero pads", value: 0, base: 4, width: 3, want: []string{"meow", "meow", "meow"}},
		{name: "largest 3-digit base 4", value: 63, base: 4, width: 3, want: []string{"mrow", "mrow", "mrow"}},
		{name: "nine in base 10", value: 9, base: 10, width: 2, want: []string{"meow", "mewo"}},
		{name: "255 in base 16", value: 255, base: 16, width: 2, want: []string{"mrow~", "mrow~"}},
		{name: "binary", value: 5, base: 2, width: 4, want: []string{"meow", "mrrp", "meow", "mrrp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeDigit(tt.value, activeBase(t, tt.base), tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDigitRejectsOverflow(t *testing.T) {
	// 64 needs four base-4 digits; a width of 3 would silently drop one.
	_, err := EncodeDigit(64, activeBase(t, 4), 3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrValueOutOfRange))

	_, err = EncodeDigit(256, activeBase(t, 16), 2)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrValueOutOfRange))
}

func TestEncodeDigitZeroWidth(t *testing.T) {
	_, err := EncodeDigit(0, activeBase(t, 4), 0)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrMalformedGroupLength))
}

func TestEncodeDigitZeroAlphabet(t *testing.T) {
	_, err := EncodeDigit(1, alphabet.Alphabet{}, 3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrBaseOutOfRange))
}

func TestDecodeDigit(t *testing.T) {
	got, err := DecodeDigit([]string{"meow", "mrrp", "mrow", "meow"}, activeBase(t, 4), 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(28), got)

	got, err = DecodeDigit([]string{"mrow~", "mrow~"}, activeBase(t, 16), 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(255), got)
}

func TestDecodeDigitWrongLength(t *testing.T) {
	_, err := DecodeDigit([]string{"meow", "mrrp"}, activeBase(t, 4), 3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrMalformedGroupLength))
}

func TestDecodeDigitUnknownToken(t *testing.T) {
	// "mewo" is digit 9, which base 4 does not have.
	_, err := DecodeDigit([]string{"meow", "mewo"}, activeBase(t, 4), 2)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrUnknownToken))
	assert.Contains(t, err.Error(), "mewo")
}

func TestDecodeDigitOverflowsUint32(t *testing.T) {
	tokens := make([]string, 9)
	for i := range tokens {
		tokens[i] = "mrow~"
	}
	// 16^9 - 1 does not fit in 32 bits.
	_, err := DecodeDigit(tokens, activeBase(t, 16), 9)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrValueOutOfRange))
}

func TestDigitRoundTrip(t *testing.T) {
	for base := alphabet.MinBase; base <= alphabet.Default().MaxBase(); base++ {
		active := activeBase(t, base)
		for _, width := range []uint32{1, 2, 3} {
			limit := capacity(uint32(base), width)
			for v := uint64(0); v < limit; v++ {
				tokens, err := EncodeDigit(uint32(v), active, width)
				require.NoError(t, err)
				require.Len(t, tokens, int(width))

				got, err := DecodeDigit(tokens, active, width)
				require.NoError(t, err)
				require.Equal(t, uint32(v), got, "base %d width %d", base, width)
			}
		}
	}
}
