// Package alphabet provides the ordered token vocabulary used as digits.
package alphabet

import (
	"fmt"
	"strings"

	"github.com/catspeak-dev/catspeak/internal/errors"
)

// MinBase is the smallest usable base.
const MinBase = 2

// defaultTokens is the built-in cat-sound vocabulary. Position is digit value.
var defaultTokens = []string{
	"meow", "mrrp", "mreow", "mrow", "nya~", "nyaaaa~", "mraow", "mew",
	"prrp", "mewo", "purrrr", "nya", "miao", "miau", "miauw", "mrow~",
}

// Alphabet is an immutable ordered list of unique tokens.
type Alphabet struct {
	tokens []string
	index  map[string]int
}

// Default returns the built-in 16-token alphabet.
func Default() Alphabet {
	a, err := New(defaultTokens)
	if err != nil {
		panic(err)
	}
	return a
}

// New validates tokens and builds an Alphabet from them.
// Tokens must be non-empty, distinct, and free of the stream delimiters.
func New(tokens []string) (Alphabet, error) {
	if len(tokens) < MinBase {
		return Alphabet{}, errors.AlphabetInvalid(fmt.Sprintf("need at least %d tokens, got %d", MinBase, len(tokens)))
	}

	index := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			return Alphabet{}, errors.AlphabetInvalid(fmt.Sprintf("token %d is empty", i))
		}
		if strings.ContainsAny(tok, " ;") {
			return Alphabet{}, errors.AlphabetInvalid(fmt.Sprintf("token %q contains a delimiter", tok))
		}
		if prev, ok := index[tok]; ok {
			return Alphabet{}, errors.AlphabetInvalid(fmt.Sprintf("token %q appears at %d and %d", tok, prev, i))
		}
		index[tok] = i
	}

	owned := make([]string, len(tokens))
	copy(owned, tokens)
	return Alphabet{tokens: owned, index: index}, nil
}

// Len returns the number of tokens.
func (a Alphabet) Len() int {
	return len(a.tokens)
}

// MaxBase returns the largest base this alphabet supports.
func (a Alphabet) MaxBase() int {
	return len(a.tokens)
}

// Tokens returns a copy of the token list.
func (a Alphabet) Tokens() []string {
	out := make([]string, len(a.tokens))
	copy(out, a.tokens)
	return out
}

// Token returns the token for digit value i.
func (a Alphabet) Token(i int) string {
	return a.tokens[i]
}

// Index returns the digit value of token.
func (a Alphabet) Index(token string) (int, bool) {
	i, ok := a.index[token]
	return i, ok
}

// Active returns the first base tokens as their own Alphabet.
// Every lower base is therefore a prefix of every higher one.
func (a Alphabet) Active(base int) (Alphabet, error) {
	if base < MinBase || base > len(a.tokens) {
		return Alphabet{}, errors.BaseOutOfRange(base, len(a.tokens))
	}
	if base == len(a.tokens) {
		return a, nil
	}

	index := make(map[string]int, base)
	for i, tok := range a.tokens[:base] {
		index[tok] = i
	}
	return Alphabet{tokens: a.tokens[:base:base], index: index}, nil
}

// String renders the tokens separated by spaces.
func (a Alphabet) String() string {
	return strings.Join(a.tokens, " ")
}
