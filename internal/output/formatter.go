// Package output renders track results for terminals, scripts, and exports.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/parser"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCLI, FormatJSON, FormatPlain:
		return f, nil
	}
	return "", errors.NewUserErrorWithField(errors.ErrInvalidArgs, "format", s,
		"Invalid output format", "Use one of: cli, json, plain.")
}

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", errors.NewUserErrorWithField(errors.ErrInvalidArgs, "color", s,
		"Invalid color mode", "Use one of: auto, always, never.")
}

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode

	// Now is used for relative times. Tests replace it.
	Now func() time.Time
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
		Now:       time.Now,
	}
}

// IsColorEnabled returns true if color output is enabled. Plain output is
// never colored.
func (f *Formatter) IsColorEnabled() bool {
	if f.Format == FormatPlain {
		return false
	}
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Print outputs formatted text.
func (f *Formatter) Print(a ...any) {
	fmt.Fprint(f.Writer, a...)
}

// Println outputs formatted text with newline.
func (f *Formatter) Println(a ...any) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...any) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON outputs data as indented JSON.
func (f *Formatter) JSON(v any) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatTime formats a time in the local zone as "YYYY-MM-DD HH:MM:SS".
func FormatTime(t time.Time) string {
	return t.Local().Format(parser.DateTimeLayout)
}

// FormatStatusTime formats a time as "YYYY-MM-DD at HH:MM:SS".
func FormatStatusTime(t time.Time) string {
	return t.Local().Format("2006-01-02 at 15:04:05")
}

// FormatISO formats a time as RFC 3339 in the local zone.
func FormatISO(t time.Time) string {
	return t.Local().Format(time.RFC3339)
}

// FormatTotal renders a report duration, with seconds when exact.
func FormatTotal(d time.Duration, exact bool) string {
	if exact {
		return parser.FormatHMS(d)
	}
	return parser.FormatHM(d)
}
