package gemini

import (
	"encoding/base64"

	"google.golang.org/genai"
)

// GeneratedImage is one element of the direct image collection returned by
// the Imagen-style synthesis endpoint.
type GeneratedImage struct {
	Data     []byte
	MIMEType string
}

// Response is the union of the two layouts the image endpoints return:
// a direct image collection (Imagen) or a chat-style candidate hierarchy
// whose parts may carry inline image bytes (Gemini). Exactly one of the two
// is populated by the client, but extraction treats both uniformly.
type Response struct {
	Images     []GeneratedImage
	Candidates []*genai.Candidate
}

// FirstImage locates the first inline image payload in the response and
// returns it base64-encoded along with its declared MIME type. The direct
// image collection is tried first, then the first candidate's content parts
// in order. Either value may be empty: no extractable image yields ("", "")
// and a payload with no declared MIME type yields a bare base64 string.
// Structural gaps (missing content, empty parts) are treated the same as
// "no image found" — this never fails.
func (r *Response) FirstImage() (imageB64, mimeType string) {
	if r == nil {
		return "", ""
	}

	if len(r.Images) > 0 {
		first := r.Images[0]
		if len(first.Data) > 0 {
			return base64.StdEncoding.EncodeToString(first.Data), first.MIMEType
		}
	}

	if len(r.Candidates) > 0 {
		candidate := r.Candidates[0]
		if candidate == nil || candidate.Content == nil {
			return "", ""
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil {
				continue
			}
			if len(part.InlineData.Data) == 0 {
				continue
			}
			return base64.StdEncoding.EncodeToString(part.InlineData.Data), part.InlineData.MIMEType
		}
	}

	return "", ""
}
