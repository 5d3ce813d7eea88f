// Package imagegen implements the image generation, editing, and
// blending operations on top of the Gemini image models.
package imagegen

// Quality levels accepted on generation requests.
const (
	QualityStandard = "standard"
	QualityHigh     = "high"
)

// Blend modes accepted on blend requests.
const (
	BlendModeNatural  = "natural"
	BlendModeArtistic = "artistic"
	BlendModeSeamless = "seamless"
)

// GenerationRequest describes a text-to-image call.
type GenerationRequest struct {
	Prompt      string
	Style       string
	AspectRatio string
	Quality     string
}

// Normalized returns a copy with defaults applied: aspect ratio "1:1"
// and standard quality. An empty style stays empty; styles are optional.
func (r GenerationRequest) Normalized() GenerationRequest {
	if r.AspectRatio == "" {
		r.AspectRatio = "1:1"
	}
	if r.Quality == "" {
		r.Quality = QualityStandard
	}
	return r
}

// EditRequest describes an instruction-based edit of an existing image.
// PreserveStyle is carried on the request but currently advisory; the
// composed instruction does not act on it.
type EditRequest struct {
	ImagePath     string
	Instructions  string
	PreserveStyle bool
}

// BlendRequest describes combining several images into one composition.
type BlendRequest struct {
	ImagePaths   []string
	Instructions string
	BlendMode    string
}

// Normalized returns a copy with an empty blend mode defaulted to
// natural. Unrecognized modes are kept as-is; composition falls back to
// the natural instruction while metadata echoes the caller's value.
func (r BlendRequest) Normalized() BlendRequest {
	if r.BlendMode == "" {
		r.BlendMode = BlendModeNatural
	}
	return r
}

// Result is the envelope returned by every operation. ImagePath is set
// only when image bytes were extracted and written; a successful call
// that produced no image leaves it empty.
type Result struct {
	Success   bool           `json:"success"`
	ImagePath string         `json:"image_path,omitempty"`
	ImageData string         `json:"image_data,omitempty"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
