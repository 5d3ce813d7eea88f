package gemini

import (
	"bytes"
	"encoding/base64"
	"os"
	"testing"

	"google.golang.org/genai"
)

func TestFirstImageFromCandidateParts(t *testing.T) {
	original := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01}

	resp := &Response{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "here is your image"},
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: original}},
				},
			},
		}},
	}

	b64, mime := resp.FirstImage()
	if b64 == "" {
		t.Fatal("expected image data, got none")
	}
	if mime != "image/png" {
		t.Errorf("expected MIME image/png, got %q", mime)
	}

	decoded, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("returned data is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded bytes do not round-trip to the original payload")
	}
}

func TestFirstImagePrefersDirectCollection(t *testing.T) {
	direct := []byte("direct-image-bytes")
	inline := []byte("inline-image-bytes")

	resp := &Response{
		Images: []GeneratedImage{{Data: direct, MIMEType: "image/jpeg"}},
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: inline}},
				},
			},
		}},
	}

	b64, mime := resp.FirstImage()
	if mime != "image/jpeg" {
		t.Errorf("expected the direct collection to win, got MIME %q", mime)
	}
	decoded, _ := base64.StdEncoding.DecodeString(b64)
	if !bytes.Equal(decoded, direct) {
		t.Errorf("expected direct collection bytes, got %q", decoded)
	}
}

func TestFirstImageSkipsNonImageParts(t *testing.T) {
	payload := []byte("real-image")

	resp := &Response{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "commentary"},
					nil,
					{InlineData: &genai.Blob{MIMEType: "image/webp"}}, // no data
					{InlineData: &genai.Blob{MIMEType: "image/webp", Data: payload}},
				},
			},
		}},
	}

	b64, mime := resp.FirstImage()
	if mime != "image/webp" {
		t.Errorf("expected MIME image/webp, got %q", mime)
	}
	decoded, _ := base64.StdEncoding.DecodeString(b64)
	if !bytes.Equal(decoded, payload) {
		t.Errorf("expected the first non-empty inline payload, got %q", decoded)
	}
}

func TestFirstImageAbsent(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
	}{
		{"nil response", nil},
		{"empty response", &Response{}},
		{"empty direct collection", &Response{Images: []GeneratedImage{}}},
		{"direct element without bytes", &Response{Images: []GeneratedImage{{MIMEType: "image/png"}}}},
		{"candidate without content", &Response{Candidates: []*genai.Candidate{{}}}},
		{"nil candidate", &Response{Candidates: []*genai.Candidate{nil}}},
		{"content without parts", &Response{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}},
		{"text-only parts", &Response{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "no image today"}}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b64, mime := tt.resp.FirstImage()
			if b64 != "" || mime != "" {
				t.Errorf("expected absent result, got (%q, %q)", b64, mime)
			}
		})
	}
}

func TestFirstImageMissingMIMEType(t *testing.T) {
	resp := &Response{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{InlineData: &genai.Blob{Data: []byte("mystery-bytes")}},
				},
			},
		}},
	}

	b64, mime := resp.FirstImage()
	if b64 == "" {
		t.Fatal("expected image data even without a declared MIME type")
	}
	if mime != "" {
		t.Errorf("expected absent MIME type, got %q", mime)
	}
}

func TestGetModelName(t *testing.T) {
	original := os.Getenv("GENAI_IMAGE_MODEL")
	defer os.Setenv("GENAI_IMAGE_MODEL", original)

	os.Unsetenv("GENAI_IMAGE_MODEL")
	if got := GetModelName(); got != DefaultModelName {
		t.Errorf("expected default model %q, got %q", DefaultModelName, got)
	}

	os.Setenv("GENAI_IMAGE_MODEL", "models/imagen-4.0-generate-001")
	if got := GetModelName(); got != "models/imagen-4.0-generate-001" {
		t.Errorf("expected override to win, got %q", got)
	}
}

func TestIsImagenModel(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"models/imagen-4.0-generate-001", true},
		{"imagen-3.0-generate-002", true},
		{"models/gemini-2.5-flash-image-preview", false},
		{"models/gemini-2.5-flash", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImagenModel(tt.model); got != tt.want {
			t.Errorf("IsImagenModel(%q) = %v, want %v", tt.model, got, tt.want)
		}
	}
}
