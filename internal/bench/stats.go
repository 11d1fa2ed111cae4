// Package bench times encode and decode round trips.
package bench

import (
	"strings"
	"unicode/utf8"
)

// CountTokens returns the number of space-separated tokens in a stream.
func CountTokens(stream string) int {
	if stream == "" {
		return 0
	}
	return strings.Count(stream, " ") + 1
}

// SizeStats holds input and encoded sizes.
type SizeStats struct {
	InputRunes    int `json:"input_runes"`
	InputBytes    int `json:"input_bytes"`
	EncodedBytes  int `json:"encoded_bytes"`
	EncodedTokens int `json:"encoded_tokens"`
}

// NewSizeStats measures input against its encoding.
func NewSizeStats(input, encoded string) SizeStats {
	return SizeStats{
		InputRunes:    utf8.RuneCountInString(input),
		InputBytes:    len(input),
		EncodedBytes:  len(encoded),
		EncodedTokens: CountTokens(encoded),
	}
}

// Growth returns the number of bytes the encoding adds.
func (s SizeStats) Growth() int {
	return s.EncodedBytes - s.InputBytes
}

// Expansion returns encoded bytes per input byte.
func (s SizeStats) Expansion() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.EncodedBytes) / float64(s.InputBytes)
}
