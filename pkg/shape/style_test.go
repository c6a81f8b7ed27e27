package shape

import (
	"errors"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Colour
		wantErr bool
	}{
		{"plain", "255,0,0,0", Colour{K: 255}, false},
		{"all channels", "1,2,3,4", Colour{K: 1, R: 2, G: 3, B: 4}, false},
		{"spaces tolerated", "0, 10, 20, 30", Colour{R: 10, G: 20, B: 30}, false},
		{"three channels", "1,2,3", Colour{}, true},
		{"five channels", "1,2,3,4,5", Colour{}, true},
		{"out of range", "256,0,0,0", Colour{}, true},
		{"negative", "-1,0,0,0", Colour{}, true},
		{"non-numeric", "a,0,0,0", Colour{}, true},
		{"empty", "", Colour{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColour) {
					t.Fatalf("err = %v, want ErrInvalidColour", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColourRoundTrip(t *testing.T) {
	c := Colour{K: 12, R: 34, G: 56, B: 78}

	got, err := ParseColour(c.String())
	if err != nil {
		t.Fatalf("ParseColour error: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestParseCorner(t *testing.T) {
	if c, err := ParseCorner("s"); err != nil || c != CornerSquare {
		t.Errorf("ParseCorner(s) = %v, %v", c, err)
	}
	if c, err := ParseCorner("r"); err != nil || c != CornerRounded {
		t.Errorf("ParseCorner(r) = %v, %v", c, err)
	}
	if _, err := ParseCorner("x"); !errors.Is(err, ErrInvalidCorner) {
		t.Errorf("ParseCorner(x) err = %v, want ErrInvalidCorner", err)
	}
	if _, err := ParseCorner("sr"); !errors.Is(err, ErrInvalidCorner) {
		t.Errorf("ParseCorner(sr) err = %v, want ErrInvalidCorner", err)
	}
}

func TestCornerString(t *testing.T) {
	if CornerSquare.String() != "s" || CornerRounded.String() != "r" {
		t.Errorf("corner strings = %q/%q", CornerSquare, CornerRounded)
	}
	if Corner('x').Valid() {
		t.Error("arbitrary corner byte should not be valid")
	}
}
