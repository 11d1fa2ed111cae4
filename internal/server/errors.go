package server

import (
	"net/http"

	"github.com/catspeak-dev/catspeak/internal/errors"
)

// Codes for failures that happen before the codec runs.
const (
	codeInvalidJSON    = "INVALID_JSON"
	codeInvalidRequest = "INVALID_REQUEST"
	codeInputTooLarge  = "INPUT_TOO_LARGE"
	codeInternal       = "INTERNAL"
)

// errorBody is the JSON body of every non-2xx response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, body)
}

// writeCodecError maps a codec error to 400 when the client sent bad input
// and 500 otherwise.
func writeCodecError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	status := statusFor(code)

	body := errorBody{
		Code:    string(code),
		Message: err.Error(),
		Hint:    errors.HintOf(err),
	}
	if code == "" {
		body.Code = codeInternal
	}
	writeError(w, status, body)
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrBaseOutOfRange,
		errors.ErrInvalidCharacter,
		errors.ErrUnknownToken,
		errors.ErrMalformedGroupLength,
		errors.ErrWidthOverflow,
		errors.ErrValueOutOfRange,
		errors.ErrInvalidMode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
