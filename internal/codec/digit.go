package codec

import (
	"math"

	"github.com/catspeak-dev/catspeak/internal/alphabet"
	"github.com/catspeak-dev/catspeak/internal/errors"
)

// EncodeDigit writes value as exactly width tokens of the active alphabet,
// most significant first. Values that need more than width digits are
// rejected rather than truncated.
func EncodeDigit(value uint32, active alphabet.Alphabet, width uint32) ([]string, error) {
	base := uint32(active.Len())
	if base < alphabet.MinBase {
		return nil, errors.BaseOutOfRange(int(base), active.MaxBase())
	}
	if width == 0 {
		return nil, errors.InvalidWidth(0)
	}

	limit := capacity(base, width)
	if uint64(value) >= limit {
		return nil, errors.ValueOutOfRange(uint64(value), 0, limit-1)
	}

	tokens := make([]string, width)
	for i := int(width) - 1; i >= 0; i-- {
		tokens[i] = active.Token(int(value % base))
		value /= base
	}
	return tokens, nil
}

// DecodeDigit evaluates a group of exactly width tokens as a base-N numeral.
func DecodeDigit(tokens []string, active alphabet.Alphabet, width uint32) (uint32, error) {
	base := uint64(active.Len())
	if base < alphabet.MinBase {
		return 0, errors.BaseOutOfRange(int(base), active.MaxBase())
	}
	if uint64(len(tokens)) != uint64(width) {
		return 0, errors.MalformedGroupLength(len(tokens), int(width))
	}

	var sum uint64
	for _, tok := range tokens {
		digit, ok := active.Index(tok)
		if !ok {
			return 0, errors.UnknownToken(tok, int(base))
		}
		sum = sum*base + uint64(digit)
		if sum > math.MaxUint32 {
			return 0, errors.ValueOutOfRange(sum, 0, math.MaxUint32)
		}
	}
	return uint32(sum), nil
}
