// Package codec converts letters and bytes to and from fixed-width groups of
// alphabet tokens in any base the alphabet supports.
//
// Text streams join the groups of one word with single spaces and words with
// "; ". Byte streams are one flat run of groups. The width is never written
// to the stream, so both ends must agree on base and width.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/catspeak-dev/catspeak/internal/alphabet"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects between letter and byte encoding.
type Mode string

const (
	ModeText  Mode = "text"
	ModeBytes Mode = "bytes"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeText, ModeBytes:
		return Mode(s), nil
	default:
		return "", errors.InvalidMode(s)
	}
}

// Codec encodes and decodes streams for one base. It holds no mutable state
// and is safe for concurrent use.
type Codec struct {
	active    alphabet.Alphabet
	base      int
	textWidth uint32
	byteWidth uint32
}

// Option configures a Codec.
type Option func(*Codec)

// WithTextWidth overrides the letter group width. Zero keeps the minimum.
func WithTextWidth(w uint32) Option {
	return func(c *Codec) {
		if w > 0 {
			c.textWidth = w
		}
	}
}

// WithByteWidth overrides the byte group width. Zero keeps the minimum.
func WithByteWidth(w uint32) Option {
	return func(c *Codec) {
		if w > 0 {
			c.byteWidth = w
		}
	}
}

// New creates a Codec for base using the first base tokens of alpha.
func New(alpha alphabet.Alphabet, base int, opts ...Option) (*Codec, error) {
	active, err := alpha.Active(base)
	if err != nil {
		return nil, err
	}

	textWidth, err := TextWidth(uint32(base))
	if err != nil {
		return nil, err
	}
	byteWidth, err := ByteWidth(uint32(base))
	if err != nil {
		return nil, err
	}

	c := &Codec{
		active:    active,
		base:      base,
		textWidth: textWidth,
		byteWidth: byteWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Original returns the base-4 preset matching the first catspeak translator:
// text groups of 3 tokens and byte groups of 4.
func Original() *Codec {
	c, err := New(alphabet.Default(), 4, WithTextWidth(3), WithByteWidth(4))
	if err != nil {
		panic(err)
	}
	return c
}

// Base returns the numeral radix.
func (c *Codec) Base() int { return c.base }

// TextWidth returns the number of tokens per letter.
func (c *Codec) TextWidth() uint32 { return c.textWidth }

// ByteWidth returns the number of tokens per byte.
func (c *Codec) ByteWidth() uint32 { return c.byteWidth }

// Alphabet returns the active tokens.
func (c *Codec) Alphabet() alphabet.Alphabet { return c.active }

// EncodeText lowercases text and encodes each letter as one group.
func (c *Codec) EncodeText(text string) (string, error) {
	lower := cases.Lower(language.Und).String(text)
	for pos, r := range lower {
		if r != ' ' && (r < 'a' || r > 'z') {
			return "", errors.InvalidCharacter(r, pos)
		}
	}

	words := strings.Split(lower, TokenSep)
	encoded := make([]string, 0, len(words))
	for _, word := range words {
		groups := make([]string, 0, len(word))
		for i := 0; i < len(word); i++ {
			tokens, err := EncodeDigit(uint32(word[i]-'a'+1), c.active, c.textWidth)
			if err != nil {
				return "", err
			}
			groups = append(groups, strings.Join(tokens, TokenSep))
		}
		encoded = append(encoded, strings.Join(groups, TokenSep))
	}
	return strings.Join(encoded, WordSep), nil
}

// DecodeText reverses EncodeText.
func (c *Codec) DecodeText(stream string) (string, error) {
	words := strings.Split(stream, WordSep)
	decoded := make([]string, 0, len(words))
	for i, word := range words {
		groups, err := SplitEvery(Tokenize(word), int(c.textWidth))
		if err != nil {
			return "", fmt.Errorf("word %d: %w", i+1, err)
		}

		var sb strings.Builder
		for group := range groups {
			v, err := DecodeDigit(group, c.active, c.textWidth)
			if err != nil {
				return "", fmt.Errorf("word %d: %w", i+1, err)
			}
			if v < 1 || v > LetterMax {
				return "", fmt.Errorf("word %d: %w", i+1, errors.ValueOutOfRange(uint64(v), 1, uint64(LetterMax)))
			}
			sb.WriteByte(byte(v) + 'a' - 1)
		}
		decoded = append(decoded, sb.String())
	}
	return strings.TrimRight(strings.Join(decoded, TokenSep), " "), nil
}

// EncodeBytes encodes each byte as one group.
func (c *Codec) EncodeBytes(data []byte) (string, error) {
	groups := make([]string, 0, len(data))
	for _, b := range data {
		tokens, err := EncodeDigit(uint32(b), c.active, c.byteWidth)
		if err != nil {
			return "", err
		}
		groups = append(groups, strings.Join(tokens, TokenSep))
	}
	return strings.Join(groups, TokenSep), nil
}

// DecodeBytes reverses EncodeBytes.
func (c *Codec) DecodeBytes(stream string) ([]byte, error) {
	tokens := Tokenize(stream)
	groups, err := SplitEvery(tokens, int(c.byteWidth))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(tokens)/int(c.byteWidth))
	for group := range groups {
		v, err := DecodeDigit(group, c.active, c.byteWidth)
		if err != nil {
			return nil, err
		}
		if v > ByteMax {
			return nil, errors.ValueOutOfRange(uint64(v), 0, uint64(ByteMax))
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Encode encodes input in the given mode. Byte mode encodes the raw bytes
// of input.
func (c *Codec) Encode(mode Mode, input string) (string, error) {
	switch mode {
	case ModeText:
		return c.EncodeText(input)
	case ModeBytes:
		return c.EncodeBytes([]byte(input))
	default:
		return "", errors.InvalidMode(string(mode))
	}
}

// Decode decodes stream in the given mode. Byte mode renders the decoded
// bytes as space-separated decimal values.
func (c *Codec) Decode(mode Mode, stream string) (string, error) {
	switch mode {
	case ModeText:
		return c.DecodeText(stream)
	case ModeBytes:
		data, err := c.DecodeBytes(stream)
		if err != nil {
			return "", err
		}
		return FormatBytes(data), nil
	default:
		return "", errors.InvalidMode(string(mode))
	}
}

// FormatBytes renders data as space-separated decimal values.
func FormatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, " ")
}
