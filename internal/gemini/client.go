// Package gemini wraps the Google GenAI SDK for image generation, editing
// and blending calls against the Gemini and Imagen image models.
package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// ImageInput is one inline image payload sent with an edit or blend call.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// Client is a thin wrapper around the GenAI SDK bound to a single image
// model for the process lifetime.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a Gemini client for the given API key and image model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Debug().Str("model", model).Msg("Gemini client initialized")
	return &Client{genai: c, model: model}, nil
}

// Model returns the model ID this client is bound to.
func (c *Client) Model() string {
	return c.model
}

// GenerateFromText issues a single text-to-image call. Gemini models go
// through generateContent with image+text response modalities; Imagen model
// IDs are routed to the dedicated image-synthesis endpoint, which fills the
// direct image collection of the response.
func (c *Client) GenerateFromText(ctx context.Context, prompt string) (*Response, error) {
	if IsImagenModel(c.model) {
		return c.generateImages(ctx, prompt)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	return c.generateContent(ctx, contents, 0)
}

// GenerateFromImages issues a single call carrying the given images as
// inline data parts, in order, followed by one text part. Used for editing
// (one image) and blending (several).
func (c *Client) GenerateFromImages(ctx context.Context, images []ImageInput, prompt string) (*Response, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MIMEType,
				Data:     img.Data,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: prompt})

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	return c.generateContent(ctx, contents, len(images))
}

// generateContent performs the Gemini generateContent call requesting both
// image and text response modalities and wraps the candidates into the
// response union. A nil SDK response without an error is passed through as a
// nil response so the caller can report the no-response case distinctly.
func (c *Client) generateContent(ctx context.Context, contents []*genai.Content, imageParts int) (*Response, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	log.Debug().
		Str("model", c.model).
		Int("image_parts", imageParts).
		Msg("Starting Gemini image API call")

	start := time.Now()
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, config)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("duration", elapsed).Msg("Gemini image API call failed")
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		log.Warn().Dur("duration", elapsed).Msg("Received empty response from Gemini")
		return nil, nil
	}

	log.Debug().
		Int("candidates", len(resp.Candidates)).
		Dur("duration", elapsed).
		Msg("Gemini image API response received")

	return &Response{Candidates: resp.Candidates}, nil
}

// generateImages performs the Imagen synthesis call and maps the generated
// images into the direct image collection of the response union.
func (c *Client) generateImages(ctx context.Context, prompt string) (*Response, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	}

	log.Debug().Str("model", c.model).Msg("Starting Imagen synthesis call")

	start := time.Now()
	resp, err := c.genai.Models.GenerateImages(ctx, c.model, prompt, config)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("duration", elapsed).Msg("Imagen synthesis call failed")
		return nil, fmt.Errorf("failed to generate images: %w", err)
	}
	if resp == nil {
		log.Warn().Dur("duration", elapsed).Msg("Received empty response from Imagen")
		return nil, nil
	}

	out := &Response{}
	for _, gen := range resp.GeneratedImages {
		if gen == nil || gen.Image == nil {
			continue
		}
		out.Images = append(out.Images, GeneratedImage{
			Data:     gen.Image.ImageBytes,
			MIMEType: gen.Image.MIMEType,
		})
	}

	log.Debug().
		Int("images", len(out.Images)).
		Dur("duration", elapsed).
		Msg("Imagen synthesis response received")

	return out, nil
}
