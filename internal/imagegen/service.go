package imagegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fpang/nano-banana-mcp/internal/artifacts"
	"github.com/fpang/nano-banana-mcp/internal/gemini"
	"github.com/fpang/nano-banana-mcp/internal/media"
)

// Caller is the upstream surface the service depends on. *gemini.Client
// satisfies it; tests substitute their own implementations.
type Caller interface {
	GenerateFromText(ctx context.Context, prompt string) (*gemini.Response, error)
	GenerateFromImages(ctx context.Context, images []gemini.ImageInput, prompt string) (*gemini.Response, error)
}

// Service executes the generate, edit, and blend operations. A nil
// client means no credential was configured; operations then fail fast
// without attempting an upstream call. The service is safe for
// concurrent use: all fields are set at construction and never written
// afterwards.
type Service struct {
	client        Caller
	store         *artifacts.Store
	includeBase64 bool
}

// NewService builds a service around an upstream client and an artifact
// store. Pass a nil client to run unconfigured.
func NewService(client Caller, store *artifacts.Store, includeBase64 bool) *Service {
	return &Service{
		client:        client,
		store:         store,
		includeBase64: includeBase64,
	}
}

// Configured reports whether an upstream client is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Generate creates an image from a text prompt.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) Result {
	if s.client == nil {
		return Result{Success: false, Message: "API key not configured. See README 'Configure credentials' section."}
	}

	req = req.Normalized()
	logger := operationLogger("generate")
	logger.Info().Str("prompt", req.Prompt).Str("style", req.Style).Msg("Generating image")

	resp, err := s.client.GenerateFromText(ctx, EnhancePrompt(req))
	if err != nil {
		logger.Error().Err(err).Msg("Error generating image")
		return Result{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}
	if resp == nil {
		return Result{Success: false, Message: "Failed to generate image"}
	}

	timestamp := time.Now().Format(artifacts.TimestampFormat)
	metadata := map[string]any{
		"prompt":       req.Prompt,
		"style":        styleValue(req.Style),
		"aspect_ratio": req.AspectRatio,
		"timestamp":    timestamp,
	}

	return s.finish(logger, resp, "generated", timestamp, metadata, "Image generated successfully: %s")
}

// Edit rewrites an existing image following natural-language instructions.
func (s *Service) Edit(ctx context.Context, req EditRequest) Result {
	if s.client == nil {
		return Result{Success: false, Message: "API key not configured"}
	}

	if _, err := os.Stat(req.ImagePath); err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Image not found: %s", req.ImagePath)}
	}

	logger := operationLogger("edit")
	logger.Info().Str("path", req.ImagePath).Msg("Editing image")

	file, err := media.Load(req.ImagePath)
	if err != nil {
		logger.Error().Err(err).Msg("Error editing image")
		return Result{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}

	images := []gemini.ImageInput{{Data: file.Data, MIMEType: file.MIMEType}}
	resp, err := s.client.GenerateFromImages(ctx, images, EditPrompt(req.Instructions))
	if err != nil {
		logger.Error().Err(err).Msg("Error editing image")
		return Result{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}
	if resp == nil {
		return Result{Success: false, Message: "Failed to edit image"}
	}

	timestamp := time.Now().Format(artifacts.TimestampFormat)
	metadata := map[string]any{
		"original":     req.ImagePath,
		"instructions": req.Instructions,
		"timestamp":    timestamp,
	}

	return s.finish(logger, resp, "edited", timestamp, metadata, "Image edited successfully: %s")
}

// Blend combines several images into one composition.
func (s *Service) Blend(ctx context.Context, req BlendRequest) Result {
	if s.client == nil {
		return Result{Success: false, Message: "API key not configured"}
	}

	req = req.Normalized()

	for _, path := range req.ImagePaths {
		if _, err := os.Stat(path); err != nil {
			return Result{Success: false, Message: fmt.Sprintf("Image not found: %s", path)}
		}
	}

	logger := operationLogger("blend")
	logger.Info().Int("image_count", len(req.ImagePaths)).Str("blend_mode", req.BlendMode).Msg("Blending images")

	images := make([]gemini.ImageInput, 0, len(req.ImagePaths))
	for _, path := range req.ImagePaths {
		file, err := media.Load(path)
		if err != nil {
			logger.Error().Err(err).Msg("Error blending images")
			return Result{Success: false, Message: fmt.Sprintf("Error: %v", err)}
		}
		images = append(images, gemini.ImageInput{Data: file.Data, MIMEType: file.MIMEType})
	}

	resp, err := s.client.GenerateFromImages(ctx, images, BlendPrompt(req))
	if err != nil {
		logger.Error().Err(err).Msg("Error blending images")
		return Result{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}
	if resp == nil {
		return Result{Success: false, Message: "Failed to blend images"}
	}

	timestamp := time.Now().Format(artifacts.TimestampFormat)
	metadata := map[string]any{
		"source_images": req.ImagePaths,
		"instructions":  req.Instructions,
		"blend_mode":    req.BlendMode,
		"timestamp":     timestamp,
	}

	return s.finish(logger, resp, "blended", timestamp, metadata, "Images blended successfully: %s")
}

// finish runs the shared extraction/persistence tail of every operation
// and builds the outgoing envelope.
func (s *Service) finish(logger zerolog.Logger, resp *gemini.Response, kind, timestamp string, metadata map[string]any, successFormat string) Result {
	imageB64, mimeType := resp.FirstImage()
	if imageB64 == "" {
		logger.Warn().Msg("Upstream response contained no image data")
		return Result{
			Success:  true,
			Message:  "Generation completed but no image data was returned",
			Metadata: metadata,
		}
	}

	path, err := s.store.Save(imageB64, mimeType, kind, timestamp)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to persist image")
		return Result{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}

	result := Result{
		Success:   true,
		ImagePath: path,
		Message:   fmt.Sprintf(successFormat, filepath.Base(path)),
		Metadata:  metadata,
	}
	if s.includeBase64 {
		result.ImageData = imageB64
	}

	logger.Info().Str("path", path).Msg("Image operation complete")
	return result
}

// operationLogger tags all events of one invocation with a request id.
func operationLogger(operation string) zerolog.Logger {
	return log.With().
		Str("request_id", uuid.NewString()).
		Str("operation", operation).
		Logger()
}

// styleValue keeps an absent style distinguishable from an empty string
// in envelope metadata.
func styleValue(style string) any {
	if style == "" {
		return nil
	}
	return style
}
