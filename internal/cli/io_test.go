package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		fallback string
		want     string
	}{
		{"drw extension", "house.drw", formatXML, formatDRW},
		{"txt extension", "house.txt", formatXML, formatDRW},
		{"xml extension", "house.xml", formatDRW, formatXML},
		{"uppercase extension", "HOUSE.XML", formatDRW, formatXML},
		{"unknown extension", "house.svg", formatDRW, formatDRW},
		{"no extension", "house", formatXML, formatXML},
		{"empty path uses fallback", "", formatDRW, formatDRW},
		{"nested path", filepath.Join("a", "b", "doc.xml"), formatDRW, formatXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.path, tt.fallback); got != tt.want {
				t.Errorf("detectFormat(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{formatDRW, false},
		{formatXML, false},
		{"svg", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOpenOutputStdout(t *testing.T) {
	out, err := openOutput("")
	if err != nil {
		t.Fatalf("openOutput(\"\") error: %v", err)
	}
	if out.Close() != nil {
		t.Error("stdout wrapper Close() should be a no-op")
	}
}

func TestOpenOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.drw")

	out, err := openOutput(path)
	if err != nil {
		t.Fatalf("openOutput(%q) error: %v", path, err)
	}
	if _, err := out.Write([]byte("line 0 0 1 1 0,0,0,255\n")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file not created: %v", err)
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	_, err := loadDocument(filepath.Join(t.TempDir(), "absent.drw"))
	if err == nil {
		t.Fatal("loadDocument() on a missing file should fail")
	}
}
