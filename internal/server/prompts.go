package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fpang/nano-banana-mcp/internal/assets"
)

// Prompt argument defaults, applied when the client omits the argument.
const (
	defaultAppType    = "mobile"
	defaultFeatures   = "login, dashboard, profile"
	defaultMockStyle  = "modern"
	defaultLogoStyle  = "minimalist"
	defaultBackground = "white studio"
	defaultLighting   = "professional"
)

func addPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "create_app_mockup",
		Description: "Generate a prompt for creating app mockup images",
		Arguments: []*mcp.PromptArgument{
			{Name: "app_type", Description: "Kind of app (mobile, web, desktop)"},
			{Name: "features", Description: "Comma-separated feature list to show"},
			{Name: "style", Description: "Visual style of the mockup"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return promptResult(assets.RenderAppMockupPrompt(assets.AppMockupData{
			AppType:  argOrDefault(req, "app_type", defaultAppType),
			Features: argOrDefault(req, "features", defaultFeatures),
			Style:    argOrDefault(req, "style", defaultMockStyle),
		})), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "create_logo",
		Description: "Generate a prompt for creating a company logo",
		Arguments: []*mcp.PromptArgument{
			{Name: "company_name", Description: "Company name to letter into the logo", Required: true},
			{Name: "industry", Description: "Industry the company operates in", Required: true},
			{Name: "style", Description: "Visual style of the logo"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return promptResult(assets.RenderLogoPrompt(assets.LogoData{
			CompanyName: req.Params.Arguments["company_name"],
			Industry:    req.Params.Arguments["industry"],
			Style:       argOrDefault(req, "style", defaultLogoStyle),
		})), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "enhance_product_photo",
		Description: "Generate a prompt for product photography enhancement",
		Arguments: []*mcp.PromptArgument{
			{Name: "product_type", Description: "Product to photograph", Required: true},
			{Name: "background", Description: "Backdrop description"},
			{Name: "lighting", Description: "Lighting setup"},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return promptResult(assets.RenderProductPhotoPrompt(assets.ProductPhotoData{
			ProductType: req.Params.Arguments["product_type"],
			Background:  argOrDefault(req, "background", defaultBackground),
			Lighting:    argOrDefault(req, "lighting", defaultLighting),
		})), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "preset_product_shot",
		Description: "Preset: photorealistic product shot with classic studio cues",
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return promptResult(assets.PresetProductShot()), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "preset_logo_text_accuracy",
		Description: "Preset: text-forward logo with high legibility",
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return promptResult(assets.PresetLogoTextAccuracy()), nil
	})
}

func argOrDefault(req *mcp.GetPromptRequest, name, fallback string) string {
	if v := req.Params.Arguments[name]; v != "" {
		return v
	}
	return fallback
}

func promptResult(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}
}
