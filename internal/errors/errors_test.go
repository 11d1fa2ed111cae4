package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseOutOfRange(t *testing.T) {
	err := BaseOutOfRange(17, 16)

	assert.Equal(t, ErrBaseOutOfRange, err.Code)
	assert.Contains(t, err.Error(), "base 17 is out of range")
	assert.Contains(t, err.Hint, "between 2 and 16")
}

func TestInvalidCharacter(t *testing.T) {
	err := InvalidCharacter('!', 5)

	assert.Equal(t, ErrInvalidCharacter, err.Code)
	assert.Contains(t, err.Error(), `'!'`)
	assert.Contains(t, err.Error(), "position 5")
	assert.Contains(t, err.Hint, "--bytes")
}

func TestUnknownToken(t *testing.T) {
	err := UnknownToken("purrrr", 4)

	assert.Equal(t, ErrUnknownToken, err.Code)
	assert.Contains(t, err.Error(), `"purrrr"`)
	assert.Contains(t, err.Error(), "base 4")
}

func TestMalformedGroupLength(t *testing.T) {
	err := MalformedGroupLength(2, 3)

	assert.Equal(t, ErrMalformedGroupLength, err.Code)
	assert.Equal(t, "token group has 2 tokens, want 3", err.Error())
}

func TestMalformedStreamLength(t *testing.T) {
	err := MalformedStreamLength(5, 3)

	assert.Equal(t, ErrMalformedGroupLength, err.Code)
	assert.Equal(t, "got 5 tokens, want a multiple of 3", err.Error())
}

func TestValueOutOfRange(t *testing.T) {
	err := ValueOutOfRange(300, 0, 255)

	assert.Equal(t, ErrValueOutOfRange, err.Code)
	assert.Equal(t, "value 300 is outside 0-255", err.Error())
}

func TestWidthOverflow(t *testing.T) {
	err := WidthOverflow(1, 26)

	assert.Equal(t, ErrWidthOverflow, err.Code)
	assert.Contains(t, err.Error(), "base 1")
}

func TestCatspeakError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &CatspeakError{
			Code:    ErrConfigInvalid,
			Message: "test message",
		}
		assert.Equal(t, "test message", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &CatspeakError{
			Code:    ErrConfigInvalid,
			Message: "test message",
			Cause:   cause,
		}
		assert.Equal(t, "test message: root cause", err.Error())
	})
}

func TestCatspeakError_Is(t *testing.T) {
	err := fmt.Errorf("decoding word 2: %w", UnknownToken("mew", 4))

	assert.True(t, errors.Is(err, &CatspeakError{Code: ErrUnknownToken}))
	assert.False(t, errors.Is(err, &CatspeakError{Code: ErrInvalidCharacter}))
	assert.False(t, errors.Is(err, errors.New("unknown token")))
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ValueOutOfRange(300, 0, 255))

	assert.Equal(t, ErrValueOutOfRange, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, ErrValueOutOfRange))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestHintOf(t *testing.T) {
	assert.Contains(t, HintOf(ConfigNotFound("/tmp/x.yaml")), "catspeak config init")
	assert.Empty(t, HintOf(errors.New("plain")))
}

func TestNew(t *testing.T) {
	err := New(ErrInvalidMode, "test message", "test hint")

	assert.Equal(t, ErrInvalidMode, err.Code)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test hint", err.Hint)
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrConfigInvalid, "wrapper message", "wrapper hint", cause)

	assert.Equal(t, ErrConfigInvalid, err.Code)
	assert.Equal(t, "wrapper message", err.Message)
	assert.Equal(t, "wrapper hint", err.Hint)

	unwrapped := err.Unwrap()
	require.NotNil(t, unwrapped)
	assert.Equal(t, cause, unwrapped)
}
