// Package bridge adapts the image service for programmatic callers,
// shaping prompts and envelopes for specific assistant integrations.
package bridge

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fpang/nano-banana-mcp/internal/imagegen"
)

// Reasoning effort levels accepted by GPT5Generate.
const (
	EffortMinimal = "minimal"
	EffortLow     = "low"
	EffortMedium  = "medium"
	EffortHigh    = "high"
)

// Bridge wraps the image service with assistant-specific prompt shaping
// and response formats. The context cache feeds has_* conditions in
// ProgrammaticGenerate.
type Bridge struct {
	svc *imagegen.Service

	mu    sync.RWMutex
	cache map[string]any
}

// New builds a bridge around an image service.
func New(svc *imagegen.Service) *Bridge {
	return &Bridge{
		svc:   svc,
		cache: make(map[string]any),
	}
}

// SetContext records a context value consulted by has_<key> conditions.
func (b *Bridge) SetContext(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache[key] = value
}

func (b *Bridge) hasContext(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.cache[key]
	return ok
}

// ClaudeContext carries the optional hints a Claude Code caller can
// attach to a generation.
type ClaudeContext struct {
	Style        string
	AspectRatio  string
	HighQuality  bool
	ProjectStyle string
	Requirements []string
}

// ClaudeResponse is the envelope shape Claude Code integrations expect.
type ClaudeResponse struct {
	Type    string          `json:"type"`
	Success bool            `json:"success"`
	Data    ClaudeImageData `json:"data"`
	Message string          `json:"message"`
}

// ClaudeImageData groups the artifact fields of a ClaudeResponse.
type ClaudeImageData struct {
	Path     string         `json:"path,omitempty"`
	Base64   string         `json:"base64,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ClaudeGenerate runs a generation with Claude-oriented prompt shaping:
// project style and requirement hints are folded into the prompt text.
func (b *Bridge) ClaudeGenerate(ctx context.Context, prompt string, cc *ClaudeContext) ClaudeResponse {
	req := imagegen.GenerationRequest{Prompt: prompt}

	if cc != nil {
		if cc.ProjectStyle != "" {
			req.Prompt += fmt.Sprintf(", matching the project's %s style", cc.ProjectStyle)
		}
		if len(cc.Requirements) > 0 {
			req.Prompt += ". Requirements: " + strings.Join(cc.Requirements, ", ")
		}
		req.Style = cc.Style
		req.AspectRatio = cc.AspectRatio
		if cc.HighQuality {
			req.Quality = imagegen.QualityHigh
		}
	}

	res := b.svc.Generate(ctx, req)
	return ClaudeResponse{
		Type:    "image_generation",
		Success: res.Success,
		Data: ClaudeImageData{
			Path:     res.ImagePath,
			Base64:   res.ImageData,
			Metadata: res.Metadata,
		},
		Message: res.Message,
	}
}

// GPT5Response is the concise envelope GPT-5 style integrations expect.
// Error is null on success and carries the failure message otherwise.
type GPT5Response struct {
	Success bool    `json:"success"`
	Path    string  `json:"path,omitempty"`
	Data    string  `json:"data,omitempty"`
	Error   *string `json:"error"`
}

// GPT5Generate runs a generation with the minimal-prompting strategy:
// low reasoning-effort tiers truncate the prompt to its first sentence,
// and quality is always high.
func (b *Bridge) GPT5Generate(ctx context.Context, prompt, reasoningEffort string) GPT5Response {
	res := b.svc.Generate(ctx, imagegen.GenerationRequest{
		Prompt:  optimizeForGPT5(prompt, reasoningEffort),
		Quality: imagegen.QualityHigh,
	})

	out := GPT5Response{
		Success: res.Success,
		Path:    res.ImagePath,
		Data:    res.ImageData,
	}
	if !res.Success {
		message := res.Message
		out.Error = &message
	}
	return out
}

func optimizeForGPT5(prompt, reasoningEffort string) string {
	switch reasoningEffort {
	case EffortMinimal, EffortLow:
		if i := strings.Index(prompt, "."); i >= 0 {
			return prompt[:i]
		}
	}
	return prompt
}

// BatchGenerate runs one generation per prompt and returns the results
// in input order. With parallel set, the generations run concurrently;
// each result lands at the index of its prompt either way.
func (b *Bridge) BatchGenerate(ctx context.Context, prompts []string, parallel bool) []imagegen.Result {
	results := make([]imagegen.Result, len(prompts))

	if !parallel {
		for i, prompt := range prompts {
			results[i] = b.svc.Generate(ctx, imagegen.GenerationRequest{Prompt: prompt})
		}
		return results
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, prompt := range prompts {
		g.Go(func() error {
			results[i] = b.svc.Generate(ctx, imagegen.GenerationRequest{Prompt: prompt})
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Config drives ProgrammaticGenerate. Variables substitute {name}
// placeholders in the prompt; components and conditions assemble and
// adjust the final text before the ordinary generation pipeline runs.
type Config struct {
	Prompt      string
	Variables   map[string]string
	Components  *Components
	Conditions  map[string]Condition
	Style       string
	AspectRatio string
	Quality     string
}

// Components assemble a prompt from labeled parts, joined with commas
// after the base prompt.
type Components struct {
	Subject string
	Style   string
	Mood    string
	Details []string
}

// Condition modifies the prompt when its key evaluates true.
type Condition struct {
	Append  string
	Prepend string
}

// ProgrammaticGenerate builds a prompt from a code-supplied configuration
// and runs the ordinary generation pipeline on the result.
func (b *Bridge) ProgrammaticGenerate(ctx context.Context, cfg Config) imagegen.Result {
	prompt := cfg.Prompt

	for key, value := range cfg.Variables {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", value)
	}

	if cfg.Components != nil {
		prompt = buildFromComponents(prompt, cfg.Components)
	}

	if len(cfg.Conditions) > 0 {
		prompt = b.applyConditions(prompt, cfg.Conditions)
	}

	return b.svc.Generate(ctx, imagegen.GenerationRequest{
		Prompt:      prompt,
		Style:       cfg.Style,
		AspectRatio: cfg.AspectRatio,
		Quality:     cfg.Quality,
	})
}

func buildFromComponents(basePrompt string, components *Components) string {
	parts := []string{basePrompt}

	if components.Subject != "" {
		parts = append(parts, "Subject: "+components.Subject)
	}
	if components.Style != "" {
		parts = append(parts, "Style: "+components.Style)
	}
	if components.Mood != "" {
		parts = append(parts, "Mood: "+components.Mood)
	}
	parts = append(parts, components.Details...)

	return strings.Join(parts, ", ")
}

// applyConditions walks the conditions in sorted key order so repeated
// runs shape the prompt identically.
func (b *Bridge) applyConditions(prompt string, conditions map[string]Condition) string {
	keys := make([]string, 0, len(conditions))
	for key := range conditions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !b.evaluateCondition(key) {
			continue
		}
		mod := conditions[key]
		if mod.Append != "" {
			prompt += ", " + mod.Append
		}
		if mod.Prepend != "" {
			prompt = mod.Prepend + ", " + prompt
		}
	}
	return prompt
}

// evaluateCondition supports the fixed high_detail and production
// switches plus has_<key> lookups against the context cache.
func (b *Bridge) evaluateCondition(condition string) bool {
	switch condition {
	case "high_detail", "production":
		return true
	}
	if key, ok := strings.CutPrefix(condition, "has_"); ok {
		return b.hasContext(key)
	}
	return false
}
