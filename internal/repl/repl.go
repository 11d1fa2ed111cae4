// Package repl implements the interactive translation loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/catspeak-dev/catspeak/internal/codec"
	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/fatih/color"
)

// Prompt is printed before each line the user types after picking a
// direction.
const Prompt = "~> "

var (
	promptColor = color.New(color.FgCyan).SprintFunc()
	errorIcon   = color.New(color.FgRed).Sprint("✗")
	dim         = color.New(color.Faint).SprintFunc()
)

// Session reads menu choices and lines from in and writes results to out.
type Session struct {
	codec *codec.Codec
	mode  codec.Mode
	in    *bufio.Scanner
	out   io.Writer
	log   *slog.Logger
}

// New creates a session. Mode selects letter or byte translation.
func New(c *codec.Codec, mode codec.Mode, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		codec: c,
		mode:  mode,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   logger,
	}
}

// Run loops until the user picks anything other than 1 or 2, the input
// ends, or ctx is cancelled. Translation errors are reported and the loop
// continues.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, "Pick your translation:")
		fmt.Fprintln(s.out, "1) cat to text")
		fmt.Fprintln(s.out, "2) text to cat")

		choice, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		var translate func(string) (string, error)
		switch choice {
		case "1":
			translate = func(line string) (string, error) { return s.codec.Decode(s.mode, line) }
		case "2":
			translate = func(line string) (string, error) { return s.codec.Encode(s.mode, line) }
		default:
			fmt.Fprintln(s.out, "Invalid input, exiting...")
			return nil
		}

		fmt.Fprint(s.out, promptColor(Prompt))
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		result, err := translate(line)
		if err != nil {
			s.log.Debug("translation failed", "choice", choice, "error", err)
			fmt.Fprintf(s.out, "%s %s\n", errorIcon, err.Error())
			if hint := errors.HintOf(err); hint != "" {
				fmt.Fprintf(s.out, "  %s\n", dim(hint))
			}
		} else {
			fmt.Fprintln(s.out, result)
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
