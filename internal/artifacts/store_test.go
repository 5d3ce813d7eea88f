package artifacts

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveWritesDecodedBytes(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}
	encoded := base64.StdEncoding.EncodeToString(payload)

	path, err := store.Save(encoded, "image/png", "generated", "20250102_030405")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
	if base := filepath.Base(path); base != "generated_20250102_030405.png" {
		t.Errorf("unexpected filename %q", base)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if !bytes.Equal(written, payload) {
		t.Error("written bytes do not match the decoded payload")
	}
}

func TestSaveExtensionFollowsMIMEType(t *testing.T) {
	tests := []struct {
		mimeType string
		suffix   string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"", ".png"},
		{"application/octet-stream", ".png"},
	}

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte("img"))

	for i, tt := range tests {
		timestamp := time.Date(2025, 1, 2, 3, 4, i, 0, time.UTC).Format(TimestampFormat)
		path, err := store.Save(encoded, tt.mimeType, "edited", timestamp)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.mimeType, err)
		}
		if !strings.HasSuffix(path, tt.suffix) {
			t.Errorf("MIME %q: expected suffix %q, got %q", tt.mimeType, tt.suffix, path)
		}
	}
}

func TestSaveInvalidBase64(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Save("not-base64!!!", "image/png", "generated", "20250102_030405"); err == nil {
		t.Error("expected error for invalid base64 payload")
	}
}

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		mimeType string
		expected string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpg"},
		{"image/webp", "webp"},
		{"image/gif", "gif"},
		{"", "png"},
		{"text/plain", "png"},
	}

	for _, tt := range tests {
		if got := ExtensionForMIME(tt.mimeType); got != tt.expected {
			t.Errorf("ExtensionForMIME(%q) = %q, want %q", tt.mimeType, got, tt.expected)
		}
	}
}

func TestRecentOrderingAndLimit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		timestamp := base.Add(time.Duration(i) * time.Second).Format(TimestampFormat)
		name := filepath.Join(dir, "generated_"+timestamp+".png")
		if err := os.WriteFile(name, []byte("png"), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		mtime := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(name, mtime, mtime); err != nil {
			t.Fatalf("failed to set mtime: %v", err)
		}
	}

	// Non-PNG files are not part of the gallery.
	for _, name := range []string{"note.txt", "photo.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}

	artifacts, err := store.Recent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(artifacts) != RecentLimit {
		t.Fatalf("expected %d artifacts, got %d", RecentLimit, len(artifacts))
	}

	for i := 1; i < len(artifacts); i++ {
		if artifacts[i-1].Created < artifacts[i].Created {
			t.Errorf("artifacts out of order at %d: %q before %q", i, artifacts[i-1].Created, artifacts[i].Created)
		}
	}

	for _, a := range artifacts {
		if !strings.HasSuffix(a.Filename, ".png") {
			t.Errorf("non-PNG artifact %q in gallery listing", a.Filename)
		}
		if a.Size == 0 {
			t.Errorf("artifact %q has zero size", a.Filename)
		}
		if _, err := time.Parse(time.RFC3339, a.Created); err != nil {
			t.Errorf("artifact %q has unparseable created time %q", a.Filename, a.Created)
		}
	}
}

func TestRecentEmptyDirectory(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	artifacts, err := store.Recent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(artifacts))
	}
}
