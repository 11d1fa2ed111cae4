package codec

import (
	"iter"
	"slices"
	"strings"

	"github.com/catspeak-dev/catspeak/internal/errors"
)

const (
	// TokenSep separates tokens, and the groups of one word.
	TokenSep = " "
	// WordSep separates words in a text-mode stream.
	WordSep = "; "
)

// Tokenize splits a flat stream on single spaces. An empty stream has no
// tokens; doubled spaces produce empty tokens that fail to decode.
func Tokenize(stream string) []string {
	if stream == "" {
		return nil
	}
	return strings.Split(stream, TokenSep)
}

// SplitEvery returns a sequence of consecutive groups of exactly size tokens.
// A token count that is not a multiple of size is rejected up front, so the
// sequence never yields a short final group.
func SplitEvery(tokens []string, size int) (iter.Seq[[]string], error) {
	if size < 1 {
		return nil, errors.InvalidWidth(size)
	}
	if len(tokens)%size != 0 {
		return nil, errors.MalformedStreamLength(len(tokens), size)
	}
	return slices.Chunk(tokens, size), nil
}
