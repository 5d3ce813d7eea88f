package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fpang/nano-banana-mcp/internal/artifacts"
	"github.com/fpang/nano-banana-mcp/internal/assets"
	"github.com/fpang/nano-banana-mcp/internal/config"
	"github.com/fpang/nano-banana-mcp/internal/gemini"
	"github.com/fpang/nano-banana-mcp/internal/imagegen"
)

// Resource URIs served by this server.
const (
	URIGalleryRecent       = "image://gallery/recent"
	URIAPIStatus           = "config://api/status"
	URIPromptingGuide      = "docs://prompting/guide"
	URIPromptingCheatsheet = "docs://prompting/cheatsheet"

	uriThumbnailTemplate = "image://gallery/thumbnail/{filename}"
	uriThumbnailPrefix   = "image://gallery/thumbnail/"
)

// apiStatus is the payload of config://api/status. No live upstream
// validation happens here; configured only means a credential is present.
type apiStatus struct {
	Configured        bool              `json:"configured"`
	Model             string            `json:"model"`
	OutputDirectory   string            `json:"output_directory"`
	DailyLimit        int               `json:"daily_limit"`
	PricePerImage     string            `json:"price_per_image"`
	Documentation     map[string]string `json:"documentation"`
	KnownModels       []string          `json:"known_models"`
	SetupInstructions string            `json:"setup_instructions,omitempty"`
}

func addResources(server *mcp.Server, svc *imagegen.Service, store *artifacts.Store, cfg *config.Config) {
	server.AddResource(&mcp.Resource{
		URI:         URIGalleryRecent,
		Name:        "recent_images",
		Description: "List of recently generated images, newest first",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		recent, err := store.Recent()
		if err != nil {
			return nil, err
		}
		return jsonResource(req.Params.URI, recent)
	})

	server.AddResource(&mcp.Resource{
		URI:         URIAPIStatus,
		Name:        "api_status",
		Description: "Nano Banana API configuration status",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		status := apiStatus{
			Configured:      svc.Configured(),
			Model:           cfg.Model,
			OutputDirectory: store.Dir(),
			DailyLimit:      500,
			PricePerImage:   "$0.039",
			Documentation: map[string]string{
				"prompting_guide": URIPromptingGuide,
				"cheatsheet":      URIPromptingCheatsheet,
				"gallery":         URIGalleryRecent,
			},
			KnownModels: gemini.KnownImageModels,
		}
		if !status.Configured {
			status.SetupInstructions = "Create ~/.nano_banana_config.json or set GEMINI_API_KEY"
		}
		return jsonResource(req.Params.URI, status)
	})

	server.AddResource(&mcp.Resource{
		URI:         URIPromptingGuide,
		Name:        "prompting_guide",
		Description: "Nano Banana prompting guide",
		MIMEType:    "text/markdown",
	}, staticResource("text/markdown", assets.PromptingGuide))

	server.AddResource(&mcp.Resource{
		URI:         URIPromptingCheatsheet,
		Name:        "prompting_cheatsheet",
		Description: "JSON cheatsheet of photo/cinema prompt fragments and templates",
		MIMEType:    "application/json",
	}, staticResource("application/json", assets.PromptingCheatsheet))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriThumbnailTemplate,
		Name:        "image_thumbnail",
		Description: "Downscaled PNG preview of a generated image",
		MIMEType:    "image/png",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		filename, ok := strings.CutPrefix(req.Params.URI, uriThumbnailPrefix)
		if !ok || filename == "" {
			return nil, fmt.Errorf("invalid thumbnail URI: %s", req.Params.URI)
		}
		data, err := store.Thumbnail(filename, artifacts.ThumbnailMaxDimension)
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "image/png",
				Blob:     data,
			}},
		}, nil
	})
}

// jsonResource renders v as an indented JSON resource, matching the
// formatting assistants see from comparable servers.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// staticResource serves embedded text verbatim.
func staticResource(mimeType, text string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: mimeType,
				Text:     text,
			}},
		}, nil
	}
}
