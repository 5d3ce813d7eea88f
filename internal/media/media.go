// Package media loads input image files for the edit and blend operations.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// SupportedImageExtensions maps the extensions accepted as model input
// to their MIME types.
var SupportedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
}

// File is an input image read fully into memory for an upstream call.
type File struct {
	Path     string
	MIMEType string
	Size     int64
	Data     []byte
}

// Load reads an image file from disk. The path must name an existing
// regular file; the MIME type is derived from the extension, defaulting
// to image/png when the extension is not recognized.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	file := &File{
		Path:     path,
		MIMEType: MIMETypeForPath(path),
		Size:     info.Size(),
		Data:     data,
	}

	logImageDetails(file)
	return file, nil
}

// MIMETypeForPath returns the MIME type for a file path based on its
// extension, defaulting to image/png.
func MIMETypeForPath(path string) string {
	if mimeType, ok := SupportedImageExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return mimeType
	}
	return "image/png"
}

// IsSupported reports whether ext is a recognized image extension.
func IsSupported(ext string) bool {
	_, ok := SupportedImageExtensions[strings.ToLower(ext)]
	return ok
}

// logImageDetails records what is known about an input image. Inputs are
// passed upstream unmodified, so EXIF problems are never fatal here.
func logImageDetails(file *File) {
	event := log.Debug().
		Str("path", file.Path).
		Str("mime_type", file.MIMEType).
		Int64("size_bytes", file.Size)

	meta, err := ExtractMetadata(file.Data)
	if err != nil {
		event.Msg("Input image loaded, no readable EXIF metadata")
		return
	}

	if meta.HasGPS {
		event = event.Float64("latitude", meta.Latitude).Float64("longitude", meta.Longitude)
	}
	if meta.HasDate {
		event = event.Time("date_taken", meta.DateTaken)
	}
	if camera := strings.TrimSpace(meta.CameraMake + " " + meta.CameraModel); camera != "" {
		event = event.Str("camera", camera)
	}
	event.Msg("Input image loaded")
}
