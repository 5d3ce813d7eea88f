// Package artifacts persists generated images in the output directory
// and lists the most recent ones for the gallery resource.
package artifacts

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// TimestampFormat renders the second-resolution timestamp embedded in
// artifact filenames.
const TimestampFormat = "20060102_150405"

// RecentLimit caps how many artifacts the gallery listing returns.
const RecentLimit = 10

// extensionByMIME maps generated-image MIME types to filename extensions.
var extensionByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Store writes generated images beneath a single output directory.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed and returns a store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save decodes a base64 image payload and writes it as
// {kind}_{timestamp}.{ext}, with the extension derived from the MIME
// type. Returns the absolute path of the written file.
func (s *Store) Save(imageB64, mimeType, kind, timestamp string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.%s", kind, timestamp, ExtensionForMIME(mimeType))

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve written path: %w", err)
	}

	log.Debug().
		Str("path", abs).
		Str("mime_type", mimeType).
		Int("size_bytes", len(data)).
		Msg("Artifact written")

	return abs, nil
}

// ExtensionForMIME returns the filename extension for a generated-image
// MIME type, defaulting to png when the type is absent or unmapped.
func ExtensionForMIME(mimeType string) string {
	if ext, ok := extensionByMIME[mimeType]; ok {
		return ext
	}
	return "png"
}

// ArtifactInfo describes one stored artifact in the gallery listing.
type ArtifactInfo struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Created  string `json:"created"`
}

// Recent returns up to RecentLimit PNG artifacts in the output
// directory, newest first by modification time.
func (s *Store) Recent() ([]ArtifactInfo, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	type entry struct {
		path string
		info os.FileInfo
	}

	entries := make([]entry, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		entries = append(entries, entry{path: path, info: info})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].info.ModTime().After(entries[j].info.ModTime())
	})

	if len(entries) > RecentLimit {
		entries = entries[:RecentLimit]
	}

	artifacts := make([]ArtifactInfo, 0, len(entries))
	for _, e := range entries {
		artifacts = append(artifacts, ArtifactInfo{
			Filename: e.info.Name(),
			Path:     e.path,
			Size:     e.info.Size(),
			Created:  e.info.ModTime().Format(time.RFC3339),
		})
	}
	return artifacts, nil
}
