package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/catspeak-dev/catspeak/internal/alphabet"
	"github.com/catspeak-dev/catspeak/internal/codec"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/go-chi/chi/v5/middleware"
)

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	alpha    alphabet.Alphabet
	defaults Defaults
	opts     options
	log      *slog.Logger
}

// CodecRequest is the body of POST /encode and POST /decode.
type CodecRequest struct {
	Text  string `json:"text"`
	Base  int    `json:"base,omitempty"`
	Mode  string `json:"mode,omitempty"`
	Width int    `json:"width,omitempty"`
}

// CodecResponse is returned by POST /encode and POST /decode.
type CodecResponse struct {
	Result string `json:"result"`
	Base   int    `json:"base"`
	Mode   string `json:"mode"`
	Width  uint32 `json:"width"`
}

// TokenInfo pairs a token with its digit value.
type TokenInfo struct {
	Token string `json:"token"`
	Value int    `json:"value"`
}

// AlphabetResponse is returned by GET /alphabet.
type AlphabetResponse struct {
	Base      int         `json:"base"`
	MaxBase   int         `json:"max_base"`
	TextWidth uint32      `json:"text_width"`
	ByteWidth uint32      `json:"byte_width"`
	Tokens    []TokenInfo `json:"tokens"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.opts.version,
	})
}

func (h *handler) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	base := h.defaults.Base
	if raw := r.URL.Query().Get("base"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, errorBody{
				Code:    codeInvalidRequest,
				Message: fmt.Sprintf("base must be an integer, got %q", raw),
			})
			return
		}
		base = n
	}

	c, err := codec.New(h.alpha, base)
	if err != nil {
		writeCodecError(w, err)
		return
	}

	tokens := c.Alphabet().Tokens()
	resp := AlphabetResponse{
		Base:      c.Base(),
		MaxBase:   h.alpha.MaxBase(),
		TextWidth: c.TextWidth(),
		ByteWidth: c.ByteWidth(),
		Tokens:    make([]TokenInfo, len(tokens)),
	}
	for i, tok := range tokens {
		resp.Tokens[i] = TokenInfo{Token: tok, Value: i}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	h.serveCodec(w, r, (*codec.Codec).Encode)
}

func (h *handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	h.serveCodec(w, r, (*codec.Codec).Decode)
}

func (h *handler) serveCodec(w http.ResponseWriter, r *http.Request, run func(*codec.Codec, codec.Mode, string) (string, error)) {
	var req CodecRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{
			Code:    codeInvalidJSON,
			Message: "invalid JSON: " + err.Error(),
			Hint:    `Send {"text": "...", "base": 4, "mode": "text"}`,
		})
		return
	}

	if len(req.Text) > h.opts.maxInputBytes {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody{
			Code:    codeInputTooLarge,
			Message: fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxInputBytes),
		})
		return
	}

	c, mode, err := h.codecFor(req)
	if err != nil {
		writeCodecError(w, err)
		return
	}

	result, err := run(c, mode, req.Text)
	if err != nil {
		h.log.Debug("codec request failed", "path", r.URL.Path, "error", err)
		writeCodecError(w, err)
		return
	}

	width := c.TextWidth()
	if mode == codec.ModeBytes {
		width = c.ByteWidth()
	}
	writeJSON(w, http.StatusOK, CodecResponse{
		Result: result,
		Base:   c.Base(),
		Mode:   string(mode),
		Width:  width,
	})
}

// codecFor builds a codec from the request, falling back to the handler
// defaults for an empty base or mode.
func (h *handler) codecFor(req CodecRequest) (*codec.Codec, codec.Mode, error) {
	base := req.Base
	if base == 0 {
		base = h.defaults.Base
	}

	mode := h.defaults.Mode
	if req.Mode != "" {
		m, err := codec.ParseMode(req.Mode)
		if err != nil {
			return nil, "", err
		}
		mode = m
	}

	if req.Width < 0 || req.Width > int(codec.MaxWidth) {
		return nil, "", errors.InvalidWidth(req.Width)
	}

	var opts []codec.Option
	if mode == codec.ModeBytes {
		opts = append(opts, codec.WithByteWidth(uint32(req.Width)))
	} else {
		opts = append(opts, codec.WithTextWidth(uint32(req.Width)))
	}

	c, err := codec.New(h.alpha, base, opts...)
	if err != nil {
		return nil, "", err
	}
	return c, mode, nil
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
