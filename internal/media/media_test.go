package media

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMIMETypeForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"/tmp/render.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"modern.webp", "image/webp"},
		{"phone.HEIC", "image/heic"},
		{"phone.heif", "image/heif"},
		{"unknown.xyz", "image/png"},
		{"no-extension", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result := MIMETypeForPath(tt.path)
			if result != tt.expected {
				t.Errorf("MIMETypeForPath(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		ext      string
		expected bool
	}{
		{".jpg", true},
		{".JPG", true},
		{".png", true},
		{".webp", true},
		{".heic", true},
		{".mp4", false},
		{".txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			result := IsSupported(tt.ext)
			if result != tt.expected {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.ext, result, tt.expected)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	payload := []byte("fake image bytes")
	path := filepath.Join(t.TempDir(), "input.png")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	file, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Path != path {
		t.Errorf("expected path %q, got %q", path, file.Path)
	}
	if file.MIMEType != "image/png" {
		t.Errorf("expected MIME image/png, got %q", file.MIMEType)
	}
	if file.Size != int64(len(payload)) {
		t.Errorf("expected size %d, got %d", len(payload), file.Size)
	}
	if !bytes.Equal(file.Data, payload) {
		t.Error("loaded data does not match file contents")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected error to name the missing path, got %q", err.Error())
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error when path is a directory")
	}
	if !strings.Contains(err.Error(), "directory") {
		t.Errorf("expected directory error, got %q", err.Error())
	}
}

func TestExtractMetadataUnreadable(t *testing.T) {
	_, err := ExtractMetadata([]byte("definitely not an image"))
	if err == nil {
		t.Error("expected error for bytes with no metadata")
	}
}
