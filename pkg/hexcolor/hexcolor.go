// Package hexcolor parses CSS-style hex color notation and picks readable
// overlay colors for a given fill.
package hexcolor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/pixhold/pkg/png"
)

// ErrInvalidColor is returned for text that is not 3- or 6-digit hex
// notation.
var ErrInvalidColor = errors.New("invalid hex color")

// Parse accepts 3- or 6-digit hex notation, with or without a leading '#'.
// The 3-digit form duplicates each digit, so "f00" parses as "ff0000".
func Parse(s string) (png.RGB, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) == 3 {
		t = string([]byte{t[0], t[0], t[1], t[1], t[2], t[2]})
	}
	if len(t) != 6 {
		return png.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var ch [3]uint8
	for i := range ch {
		hi, ok1 := nibble(t[i*2])
		lo, ok2 := nibble(t[i*2+1])
		if !ok1 || !ok2 {
			return png.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = hi<<4 | lo
	}
	return png.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Contrast labels the overlay shade that stays readable on a given fill.
type Contrast int

// Contrast labels.
const (
	Light Contrast = iota // dark fill, overlay in white
	Dark                  // light fill, overlay in black
)

// String returns "light" or "dark".
func (c Contrast) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

// RGB returns the concrete overlay color for the label: black for Dark,
// white for Light.
func (c Contrast) RGB() png.RGB {
	if c == Dark {
		return png.RGB{}
	}
	return png.RGB{R: 255, G: 255, B: 255}
}

// ContrastOf classifies a fill by perceived luminance
// (0.299R + 0.587G + 0.114B over 255): Dark above 0.5, Light otherwise.
func ContrastOf(c png.RGB) Contrast {
	lum := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	if lum > 0.5 {
		return Dark
	}
	return Light
}
