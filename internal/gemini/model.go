package gemini

import (
	"os"
	"strings"
)

// Gemini image model IDs
//
// | Model Name                      | API Model ID                                   | Use Case                       |
// |---------------------------------|------------------------------------------------|--------------------------------|
// | Gemini 2.5 Flash Image (Preview)| models/gemini-2.5-flash-image-preview          | Generation, editing, blending  |
// | Gemini 2.5 Flash                | models/gemini-2.5-flash                        | Multimodal, image-capable      |
// | Gemini 2.0 Flash Image Gen      | models/gemini-2.0-flash-exp-image-generation   | Experimental image generation  |
const (
	// ModelGemini25FlashImagePreview is the "Nano Banana" image model for
	// generation, editing and blending.
	ModelGemini25FlashImagePreview = "models/gemini-2.5-flash-image-preview"

	// ModelGemini25Flash is the stable multimodal model.
	ModelGemini25Flash = "models/gemini-2.5-flash"

	// ModelGemini20FlashImageGeneration is the experimental 2.0 image model.
	ModelGemini20FlashImageGeneration = "models/gemini-2.0-flash-exp-image-generation"
)

// DefaultModelName is the default image model to use.
// Can be overridden via the GENAI_IMAGE_MODEL environment variable.
const DefaultModelName = ModelGemini25FlashImagePreview

// KnownImageModels lists the model IDs the configuration status surface
// advertises as known-good for image work.
var KnownImageModels = []string{
	ModelGemini25Flash,
	ModelGemini25FlashImagePreview,
	ModelGemini20FlashImageGeneration,
}

// GetModelName returns the image model to use, resolved from:
// 1. GENAI_IMAGE_MODEL environment variable (if set)
// 2. Default: models/gemini-2.5-flash-image-preview
func GetModelName() string {
	if env := os.Getenv("GENAI_IMAGE_MODEL"); env != "" {
		return env
	}
	return DefaultModelName
}

// IsImagenModel reports whether the model ID names an Imagen model. Imagen
// uses the dedicated image-synthesis endpoint and returns a direct image
// collection instead of chat candidates; it accepts text prompts only.
func IsImagenModel(name string) bool {
	return strings.HasPrefix(strings.TrimPrefix(name, "models/"), "imagen-")
}
