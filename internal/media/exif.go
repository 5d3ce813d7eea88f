package media

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"
)

// Metadata is the EXIF subset worth surfacing in logs.
type Metadata struct {
	Latitude  float64
	Longitude float64
	HasGPS    bool

	DateTaken time.Time
	HasDate   bool

	CameraMake  string
	CameraModel string
}

// ExtractMetadata decodes EXIF metadata from raw image bytes. Formats
// carrying no readable EXIF block return an error.
func ExtractMetadata(data []byte) (*Metadata, error) {
	exifData, err := imagemeta.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode EXIF metadata: %w", err)
	}

	meta := &Metadata{
		CameraMake:  strings.TrimSpace(exifData.Make),
		CameraModel: strings.TrimSpace(exifData.Model),
	}

	gps := exifData.GPS
	if gps.Latitude() != 0 || gps.Longitude() != 0 {
		meta.Latitude = gps.Latitude()
		meta.Longitude = gps.Longitude()
		meta.HasGPS = true
	}

	// Priority: DateTimeOriginal > CreateDate > ModifyDate
	if !exifData.DateTimeOriginal().IsZero() {
		meta.DateTaken = exifData.DateTimeOriginal()
		meta.HasDate = true
	} else if !exifData.CreateDate().IsZero() {
		meta.DateTaken = exifData.CreateDate()
		meta.HasDate = true
	} else if !exifData.ModifyDate().IsZero() {
		meta.DateTaken = exifData.ModifyDate()
		meta.HasDate = true
	}

	return meta, nil
}
