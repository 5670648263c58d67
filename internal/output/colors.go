package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for the different elements of a
// rendered forecast.
type ColorScheme struct {
	Method      *color.Color
	URL         *color.Color
	StatusOK    *color.Color
	StatusError *color.Color
	HeaderKey   *color.Color
	Product     *color.Color
	Timepoint   *color.Color
	Value       *color.Color
	Warm        *color.Color
	Cold        *color.Color
	Error       *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Method:      color.New(color.FgBlue, color.Bold),
		URL:         color.New(color.FgCyan),
		StatusOK:    color.New(color.FgGreen, color.Bold),
		StatusError: color.New(color.FgRed, color.Bold),
		HeaderKey:   color.New(color.FgYellow),
		Product:     color.New(color.FgMagenta, color.Bold),
		Timepoint:   color.New(color.FgCyan),
		Value:       color.New(color.FgWhite),
		Warm:        color.New(color.FgRed),
		Cold:        color.New(color.FgBlue),
		Error:       color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	scheme.Method.DisableColor()
	scheme.URL.DisableColor()
	scheme.StatusOK.DisableColor()
	scheme.StatusError.DisableColor()
	scheme.HeaderKey.DisableColor()
	scheme.Product.DisableColor()
	scheme.Timepoint.DisableColor()
	scheme.Value.DisableColor()
	scheme.Warm.DisableColor()
	scheme.Cold.DisableColor()
	scheme.Error.DisableColor()
	return scheme
}

// ShouldColor reports whether colored output makes sense for stdout:
// colors are off when explicitly disabled or when stdout is not a
// terminal.
func ShouldColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
