// Package assets provides embedded static assets for the server.
package assets

import (
	_ "embed"
)

// PromptingGuide is the Markdown prompting guide served at
// docs://prompting/guide.
//
//go:embed docs/prompting-guide.md
var PromptingGuide string

// PromptingCheatsheet is the JSON cheatsheet of photographic prompt
// fragments served at docs://prompting/cheatsheet.
//
//go:embed docs/cheatsheet.json
var PromptingCheatsheet string
