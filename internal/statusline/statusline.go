package statusline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/himattm/ctxmon/internal/colors"
)

// maxErrorRunes bounds the error text shown in the fallback line.
const maxErrorRunes = 20

var (
	// ErrEmptyInput is returned when stdin holds no document at all.
	ErrEmptyInput = errors.New("empty input")
	// ErrNotObject is returned when the document is valid JSON but not an object.
	ErrNotObject = errors.New("input is not a JSON object")
)

// StatusLine handles rendering the status line
type StatusLine struct {
	input Input
}

// New creates a new StatusLine renderer
func New(input Input) *StatusLine {
	return &StatusLine{input: input}
}

// Parse decodes one status payload from r.
func Parse(r io.Reader) (Input, error) {
	var input Input

	data, err := io.ReadAll(r)
	if err != nil {
		return input, fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return input, ErrEmptyInput
	}
	if data[0] != '{' {
		if !json.Valid(data) {
			return input, fmt.Errorf("decode input: %w", json.Unmarshal(data, &input))
		}
		return input, ErrNotObject
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("decode input: %w", err)
	}
	return input, nil
}

// Render reads a payload from r and returns the status line. Panics are
// recovered and reported as errors so the caller can fall back.
func Render(r io.Reader) (line string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			line, err = "", fmt.Errorf("render panic: %v", rec)
		}
	}()

	input, err := Parse(r)
	if err != nil {
		return "", err
	}
	return New(input).Render(), nil
}

// Render generates the status line output
func (sl *StatusLine) Render() string {
	usage, ok := ResolveContextUsage(sl.input.Context)
	return ComposeLine(
		sl.input.Model.Label(),
		ResolveDirectory(sl.input.Workspace),
		RenderContext(usage, ok),
		ResolveCostLabel(sl.input.Cost),
	)
}

// ComposeLine joins the rendered parts into one line.
func ComposeLine(model, dir, usage, cost string) string {
	line := fmt.Sprintf("%s %s 🧠 %s",
		colors.Wrap(colors.BrightBlue, "["+model+"]"),
		colors.Wrap(colors.BrightYellow, "📁 "+dir),
		usage)
	if cost != "" {
		line += colors.Separator() + cost
	}
	return line
}

// Fallback is printed in place of the status line when rendering fails.
func Fallback(err error, dir string) string {
	msg := "unknown error"
	if err != nil {
		msg = truncateRunes(err.Error(), maxErrorRunes)
	}
	return fmt.Sprintf("%s %s 🧠 %s",
		colors.Wrap(colors.BrightBlue, "["+DefaultModelLabel+"]"),
		colors.Wrap(colors.BrightYellow, "📁 "+dir),
		colors.Wrap(colors.Red, "[Error: "+msg+"]"))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
