package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"go.trai.ch/webls/internal/ui/output"
)

// ColorProfile returns the color profile for the browser. NO_COLOR
// disables color entirely; otherwise true color is forced so the
// palette renders the same on every terminal.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.TrueColor
}

// NewOutput creates a termenv.Output with the browser's profile logic.
func NewOutput(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return output.NewWithProfile(w, ColorProfile, opts...)
}
