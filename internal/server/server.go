// Package server registers the image tools, gallery and documentation
// resources, and prompt templates on an MCP server speaking stdio.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fpang/nano-banana-mcp/internal/artifacts"
	"github.com/fpang/nano-banana-mcp/internal/config"
	"github.com/fpang/nano-banana-mcp/internal/imagegen"
)

// ServerName identifies this server to MCP clients.
const ServerName = "Nano Banana Image Generation"

// New assembles the MCP server around an image service, an artifact
// store, and the resolved configuration. The returned server is ready
// to run on any transport; serving is the caller's job.
func New(svc *imagegen.Service, store *artifacts.Store, cfg *config.Config, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)

	addTools(server, svc)
	addResources(server, svc, store, cfg)
	addPrompts(server)

	return server
}

// generateArgs is the argument object of the generate_image tool.
type generateArgs struct {
	Prompt      string `json:"prompt" jsonschema:"Detailed description of the desired image"`
	Style       string `json:"style,omitempty" jsonschema:"Optional style hint (realistic, cartoon, abstract, minimalist, vintage)"`
	AspectRatio string `json:"aspect_ratio,omitempty" jsonschema:"Target aspect ratio (1:1, 16:9, 4:3, 9:16); default 1:1"`
	Quality     string `json:"quality,omitempty" jsonschema:"Quality level (standard, high); default standard"`
}

// editArgs is the argument object of the edit_image tool.
type editArgs struct {
	ImagePath     string `json:"image_path" jsonschema:"Absolute path to the source image"`
	Instructions  string `json:"instructions" jsonschema:"Clear edit request describing what to change and what to keep"`
	PreserveStyle *bool  `json:"preserve_style,omitempty" jsonschema:"Maintain original style/lighting; default true"`
}

// blendArgs is the argument object of the blend_images tool.
type blendArgs struct {
	ImagePaths   []string `json:"image_paths" jsonschema:"Absolute paths to 2-3 source images"`
	Instructions string   `json:"instructions" jsonschema:"Composition goal and relationships between the images"`
	BlendMode    string   `json:"blend_mode,omitempty" jsonschema:"natural | artistic | seamless; default natural"`
}

const generateDescription = `Generate an image from a text description using Google's Gemini model.

Tips:
- Describe the scene, not just keywords: subject, environment, mood.
- Use photographic language: shot type (close-up, wide), lens (35mm/85mm),
  depth of field (shallow f/2.0), lighting (Rembrandt, golden hour),
  composition (rule of thirds, leading lines).
- Be explicit for logos/text: exact wording, layout, legibility.
- Iterate: keep what you like, specify small changes between runs.

See also: docs://prompting/guide and docs://prompting/cheatsheet`

const editDescription = `Edit an existing image using natural language instructions.

Tips:
- Semantic inpainting works best with targeted requests (what to change vs. what to keep).
- Mention critical details to preserve (faces, logos, colors) alongside the edit.
- Provide photographic context if needed (angle, lens feel, lighting continuity).

See also: docs://prompting/guide and docs://prompting/cheatsheet`

const blendDescription = `Blend multiple images into a single composition.

Tips:
- Describe spatial layout and scale between elements.
- Add lighting and lens cues to harmonize sources (e.g. 85mm portrait compression, soft rim light).
- Use iterative edits after blending for fine adjustments.

See also: docs://prompting/guide and docs://prompting/cheatsheet`

// addTools registers the three image operations. The handlers never
// return an error: every recoverable condition is carried inside the
// result envelope so clients reason about one shape only.
func addTools(server *mcp.Server, svc *imagegen.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_image",
		Description: generateDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, args generateArgs) (*mcp.CallToolResult, imagegen.Result, error) {
		res := svc.Generate(ctx, imagegen.GenerationRequest{
			Prompt:      args.Prompt,
			Style:       args.Style,
			AspectRatio: args.AspectRatio,
			Quality:     args.Quality,
		})
		return nil, res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "edit_image",
		Description: editDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, args editArgs) (*mcp.CallToolResult, imagegen.Result, error) {
		preserve := true
		if args.PreserveStyle != nil {
			preserve = *args.PreserveStyle
		}
		res := svc.Edit(ctx, imagegen.EditRequest{
			ImagePath:     args.ImagePath,
			Instructions:  args.Instructions,
			PreserveStyle: preserve,
		})
		return nil, res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "blend_images",
		Description: blendDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, args blendArgs) (*mcp.CallToolResult, imagegen.Result, error) {
		res := svc.Blend(ctx, imagegen.BlendRequest{
			ImagePaths:   args.ImagePaths,
			Instructions: args.Instructions,
			BlendMode:    args.BlendMode,
		})
		return nil, res, nil
	})
}
