package codec

import (
	"math"

	"github.com/catspeak-dev/catspeak/internal/errors"
)

const (
	// LetterMax is the largest value a letter maps to ('z' -> 26).
	LetterMax uint32 = 26
	// ByteMax is the largest value a byte maps to.
	ByteMax uint32 = 255

	// MaxWidth bounds the width search. Any base >= 2 exceeds a uint32
	// within 32 digits.
	MaxWidth uint32 = 32

	// InfiniteWidth is returned alongside WIDTH_OVERFLOW when no width fits.
	InfiniteWidth uint32 = math.MaxUint32
)

// CharLength returns the smallest width w >= 1 with base^w > maxValue.
func CharLength(base, maxValue uint32) (uint32, error) {
	if base >= 2 {
		p := uint64(1)
		for w := uint32(1); w <= MaxWidth; w++ {
			p *= uint64(base)
			if p > uint64(maxValue) {
				return w, nil
			}
		}
	}
	return InfiniteWidth, errors.WidthOverflow(base, maxValue)
}

// TextWidth returns the minimum width for encoding letters in base.
func TextWidth(base uint32) (uint32, error) {
	return CharLength(base, LetterMax)
}

// ByteWidth returns the minimum width for encoding bytes in base.
func ByteWidth(base uint32) (uint32, error) {
	return CharLength(base, ByteMax)
}

// capacity returns base^width, saturating at math.MaxUint64 once the result
// no longer matters for uint32 values.
func capacity(base, width uint32) uint64 {
	p := uint64(1)
	for range width {
		p *= uint64(base)
		if p > math.MaxUint32 {
			return math.MaxUint64
		}
	}
	return p
}
