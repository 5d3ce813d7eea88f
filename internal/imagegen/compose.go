package imagegen

import "fmt"

// styleDescriptors maps known style names to the descriptor clause
// appended to the prompt. Unknown styles are silently ignored.
var styleDescriptors = map[string]string{
	"realistic":  "photorealistic, high detail, professional photography",
	"cartoon":    "cartoon style, animated, colorful, playful",
	"abstract":   "abstract art, creative, artistic interpretation",
	"minimalist": "minimalist design, simple, clean lines",
	"vintage":    "vintage style, retro, nostalgic aesthetics",
}

// blendInstructions maps blend modes to their lead-in instruction.
var blendInstructions = map[string]string{
	BlendModeNatural:  "Blend these images naturally, maintaining realistic proportions and lighting",
	BlendModeArtistic: "Create an artistic composition combining elements from all images creatively",
	BlendModeSeamless: "Merge these images seamlessly as if they were always one cohesive scene",
}

const highQualityClause = ", ultra high quality, 8K resolution, masterpiece"

// EnhancePrompt builds the upstream prompt for a generation request by
// appending style, aspect-ratio, and quality clauses to the base prompt.
func EnhancePrompt(req GenerationRequest) string {
	prompt := req.Prompt

	if descriptor, ok := styleDescriptors[req.Style]; ok {
		prompt += ", " + descriptor
	}

	if req.AspectRatio != "" && req.AspectRatio != "1:1" {
		prompt += fmt.Sprintf(", aspect ratio %s", req.AspectRatio)
	}

	if req.Quality == QualityHigh {
		prompt += highQualityClause
	}

	return prompt
}

// BlendPrompt prefixes the caller's instructions with the instruction
// for the requested blend mode, falling back to natural for unknown modes.
func BlendPrompt(req BlendRequest) string {
	instruction, ok := blendInstructions[req.BlendMode]
	if !ok {
		instruction = blendInstructions[BlendModeNatural]
	}
	return fmt.Sprintf("%s. %s", instruction, req.Instructions)
}

// EditPrompt wraps edit instructions in the fixed editing preamble.
func EditPrompt(instructions string) string {
	return fmt.Sprintf("Edit this image: %s", instructions)
}
