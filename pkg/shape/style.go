package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColour is returned by [ParseColour] when a colour spec does
	// not consist of exactly four integer channels in the range 0-255.
	ErrInvalidColour = errors.New("colour must be four comma-separated channels 0-255")

	// ErrInvalidCorner is returned by [ParseCorner] for anything other than
	// the single characters "s" or "r".
	ErrInvalidCorner = errors.New(`corner must be "s" or "r"`)
)

// Colour is a set of four independent channels, each 0-255, in the wire
// order k,r,g,b. The model assigns the channels no colour-model semantics;
// names like "red" are a presentation convention (see the palette package).
type Colour struct {
	K, R, G, B uint8
}

// String renders the colour in its wire form "k,r,g,b".
func (c Colour) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.K, c.R, c.G, c.B)
}

// ParseColour parses a "k,r,g,b" spec. Exactly four channels are required
// and each must be an integer in 0-255.
func ParseColour(s string) (Colour, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Colour{}, fmt.Errorf("%w: got %d channels in %q", ErrInvalidColour, len(parts), s)
	}
	var ch [4]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: channel %q", ErrInvalidColour, part)
		}
		ch[i] = uint8(v)
	}
	return Colour{K: ch[0], R: ch[1], G: ch[2], B: ch[3]}, nil
}

// Corner selects the corner style of a rectangle.
type Corner byte

const (
	// CornerSquare draws right-angled corners. It is the wire default.
	CornerSquare Corner = 's'

	// CornerRounded draws rounded corners.
	CornerRounded Corner = 'r'
)

// String returns the single-character wire form.
func (c Corner) String() string { return string(rune(c)) }

// Valid reports whether c is one of the defined corner styles.
func (c Corner) Valid() bool { return c == CornerSquare || c == CornerRounded }

// ParseCorner parses the single-character wire form.
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "s":
		return CornerSquare, nil
	case "r":
		return CornerRounded, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidCorner, s)
	}
}
