package palette

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	apperrors "github.com/drawkit/drawkit/pkg/errors"
	"github.com/drawkit/drawkit/pkg/shape"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write palette: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	p := Default()

	if c, ok := p.Lookup("black"); !ok || c != (shape.Colour{K: 255}) {
		t.Errorf("Lookup(black) = %v, %v; want {K:255}, true", c, ok)
	}
	if c, ok := p.Lookup("white"); !ok || c != (shape.Colour{}) {
		t.Errorf("Lookup(white) = %v, %v; want zero colour, true", c, ok)
	}

	want := []string{"black", "blue", "green", "red", "white"}
	if got := p.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	path := writePalette(t, `
[colours]
accent = "0,200,100,50"
red = "10,20,30,40"
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c, ok := p.Lookup("accent"); !ok || c != (shape.Colour{K: 0, R: 200, G: 100, B: 50}) {
		t.Errorf("Lookup(accent) = %v, %v; want {0 200 100 50}, true", c, ok)
	}
	// User entries override the built-ins.
	if c, _ := p.Lookup("red"); c != (shape.Colour{K: 10, R: 20, G: 30, B: 40}) {
		t.Errorf("Lookup(red) = %v, want overridden value", c)
	}
	// Untouched built-ins survive the merge.
	if _, ok := p.Lookup("black"); !ok {
		t.Error("Lookup(black) = false, want built-in to survive")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode apperrors.Code
	}{
		{
			name:     "malformed TOML",
			content:  "not [toml",
			wantCode: apperrors.ErrCodeInvalidInput,
		},
		{
			name:     "bad channel count",
			content:  "[colours]\naccent = \"1,2,3\"\n",
			wantCode: apperrors.ErrCodeInvalidColour,
		},
		{
			name:     "bad colour name",
			content:  "[colours]\nAccent = \"1,2,3,4\"\n",
			wantCode: apperrors.ErrCodeInvalidColour,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writePalette(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want failure")
			}
			if !apperrors.Is(err, tt.wantCode) {
				t.Errorf("Load() code = %v, want %v", apperrors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	if _, err := Load(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}

	p, err := LoadOrDefault(missing)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if _, ok := p.Lookup("black"); !ok {
		t.Error("LoadOrDefault() did not fall back to the built-in palette")
	}
}

func TestResolve(t *testing.T) {
	p := Default()

	tests := []struct {
		name    string
		spec    string
		want    shape.Colour
		wantErr bool
	}{
		{"palette name", "black", shape.Colour{K: 255}, false},
		{"channel spec", "1,2,3,4", shape.Colour{K: 1, R: 2, G: 3, B: 4}, false},
		{"unknown name", "mauve", shape.Colour{}, true},
		{"bad channel spec", "1,2", shape.Colour{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Resolve(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err != nil {
				if !apperrors.Is(err, apperrors.ErrCodeInvalidColour) {
					t.Errorf("Resolve(%q) code = %v, want %v", tt.spec, apperrors.GetCode(err), apperrors.ErrCodeInvalidColour)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	path := writePalette(t, `
[colours]
noir = "255,0,0,0"
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Aliased colours resolve to the lexically smallest name.
	if name, ok := p.Name(shape.Colour{K: 255}); !ok || name != "black" {
		t.Errorf("Name({K:255}) = %q, %v; want black, true", name, ok)
	}
	if _, ok := p.Name(shape.Colour{K: 1, R: 2, G: 3, B: 4}); ok {
		t.Error("Name(unnamed colour) = true, want false")
	}
}
