// Package palette maps human-readable colour names onto channel values.
//
// A document's colour channels are four opaque values; naming them is purely
// a presentation convention. The built-in palette treats k as the key (black)
// channel, so "white" is all channels zero. Users can add or override names
// with a TOML file:
//
//	[colours]
//	accent = "0,200,100,50"
package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/drawkit/drawkit/pkg/errors"
	"github.com/drawkit/drawkit/pkg/shape"
)

// Palette binds colour names to channel values.
type Palette struct {
	colours map[string]shape.Colour
}

// Default returns the built-in palette.
func Default() *Palette {
	return &Palette{colours: map[string]shape.Colour{
		"black": {K: 255},
		"red":   {R: 255},
		"green": {G: 255},
		"blue":  {B: 255},
		"white": {},
	}}
}

type paletteFile struct {
	Colours map[string]string `toml:"colours"`
}

// Load reads a TOML palette file and merges its entries over the built-in
// defaults. Entries must use valid colour names and "k,r,g,b" channel specs.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open palette %s: %w", path, err)
	}

	var file paletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "parse palette %s", path)
	}

	p := Default()
	for name, spec := range file.Colours {
		if err := apperrors.ValidateColourName(name); err != nil {
			return nil, err
		}
		c, err := shape.ParseColour(spec)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidColour, err, "palette entry %q", name)
		}
		p.colours[name] = c
	}
	return p, nil
}

// LoadOrDefault behaves like [Load] but falls back to the built-in palette
// when no file exists at path.
func LoadOrDefault(path string) (*Palette, error) {
	p, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return p, err
}

// Lookup returns the colour bound to name.
func (p *Palette) Lookup(name string) (shape.Colour, bool) {
	c, ok := p.colours[name]
	return c, ok
}

// Resolve turns a colour reference, either a palette name or a raw "k,r,g,b"
// channel spec, into a colour.
func (p *Palette) Resolve(spec string) (shape.Colour, error) {
	if strings.Contains(spec, ",") {
		c, err := shape.ParseColour(spec)
		if err != nil {
			return shape.Colour{}, apperrors.Wrap(apperrors.ErrCodeInvalidColour, err, "resolve %q", spec)
		}
		return c, nil
	}
	c, ok := p.colours[spec]
	if !ok {
		return shape.Colour{}, apperrors.New(apperrors.ErrCodeInvalidColour, "unknown colour name: %q", spec)
	}
	return c, nil
}

// Name returns a palette name bound to c. When several names share the same
// channels the lexically smallest wins.
func (p *Palette) Name(c shape.Colour) (string, bool) {
	for _, name := range p.Names() {
		if p.colours[name] == c {
			return name, true
		}
	}
	return "", false
}

// Names returns all palette names in lexical order.
func (p *Palette) Names() []string {
	return slices.Sorted(maps.Keys(p.colours))
}
