package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/catspeak-dev/catspeak/internal/codec"
)

// Result holds timings for one benchmark run.
type Result struct {
	Base       int           `json:"base"`
	Mode       codec.Mode    `json:"mode"`
	Iterations int           `json:"iterations"`
	Encode     time.Duration `json:"encode_ns"`
	Decode     time.Duration `json:"decode_ns"`
	Size       SizeStats     `json:"size"`
}

// EncodeMean returns the mean time of one encode.
func (r Result) EncodeMean() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Encode / time.Duration(r.Iterations)
}

// DecodeMean returns the mean time of one decode.
func (r Result) DecodeMean() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Decode / time.Duration(r.Iterations)
}

// Run encodes input iterations times, then decodes its encoding iterations
// times. The input is validated with one encode before timing starts.
func Run(ctx context.Context, c *codec.Codec, mode codec.Mode, input string, iterations int) (Result, error) {
	if iterations < 1 {
		return Result{}, fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}

	encoded, err := c.Encode(mode, input)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Base:       c.Base(),
		Mode:       mode,
		Iterations: iterations,
		Size:       NewSizeStats(input, encoded),
	}

	start := time.Now()
	for range iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := c.Encode(mode, input); err != nil {
			return Result{}, err
		}
	}
	res.Encode = time.Since(start)

	start = time.Now()
	for range iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := c.Decode(mode, encoded); err != nil {
			return Result{}, err
		}
	}
	res.Decode = time.Since(start)

	return res, nil
}

// FormatTable writes a human-readable summary.
func FormatTable(r Result, w io.Writer) {
	fmt.Fprintf(w, "Base:        %d (%s)\n", r.Base, r.Mode)
	fmt.Fprintf(w, "Iterations:  %d\n", r.Iterations)
	fmt.Fprintf(w, "Encode time: %d ms (%s/op)\n", r.Encode.Milliseconds(), r.EncodeMean())
	fmt.Fprintf(w, "Decode time: %d ms (%s/op)\n", r.Decode.Milliseconds(), r.DecodeMean())
	fmt.Fprintf(w, "Size:        %d bytes -> %d bytes, %d tokens (%.1fx)\n",
		r.Size.InputBytes, r.Size.EncodedBytes, r.Size.EncodedTokens, r.Size.Expansion())
}

// FormatJSON writes the result as indented JSON.
func FormatJSON(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
