// Prompt templates are stored as text files under prompts/ and embedded
// at compile time.

package assets

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prompts/app-mockup.txt
var appMockupTemplate string

//go:embed prompts/logo.txt
var logoTemplate string

//go:embed prompts/product-photo.txt
var productPhotoTemplate string

//go:embed prompts/preset-product-shot.txt
var presetProductShot string

//go:embed prompts/preset-logo-text.txt
var presetLogoText string

// Pre-parsed templates. template.Must panics on malformed templates,
// catching errors at program startup rather than at call time.
var (
	appMockupTmpl    = template.Must(template.New("app-mockup").Parse(appMockupTemplate))
	logoTmpl         = template.Must(template.New("logo").Parse(logoTemplate))
	productPhotoTmpl = template.Must(template.New("product-photo").Parse(productPhotoTemplate))
)

// AppMockupData fills the app-mockup prompt template.
type AppMockupData struct {
	AppType  string
	Features string
	Style    string
}

// LogoData fills the logo prompt template.
type LogoData struct {
	CompanyName string
	Industry    string
	Style       string
}

// ProductPhotoData fills the product-photo prompt template.
type ProductPhotoData struct {
	ProductType string
	Background  string
	Lighting    string
}

// RenderAppMockupPrompt renders the app-mockup prompt.
func RenderAppMockupPrompt(data AppMockupData) string {
	return renderTemplate(appMockupTmpl, data)
}

// RenderLogoPrompt renders the company-logo prompt.
func RenderLogoPrompt(data LogoData) string {
	return renderTemplate(logoTmpl, data)
}

// RenderProductPhotoPrompt renders the product-photography prompt.
func RenderProductPhotoPrompt(data ProductPhotoData) string {
	return renderTemplate(productPhotoTmpl, data)
}

// PresetProductShot returns the fixed studio product-shot example prompt.
func PresetProductShot() string {
	return strings.TrimSpace(presetProductShot)
}

// PresetLogoTextAccuracy returns the fixed text-forward logo example prompt.
func PresetLogoTextAccuracy() string {
	return strings.TrimSpace(presetLogoText)
}

func renderTemplate(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return strings.TrimSpace(buf.String())
}
