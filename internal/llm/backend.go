// Package llm provides generation backends for frontend code synthesis.
// A backend is an unreliable collaborator: absence or failure is a normal,
// handled condition, recovered by the caller's deterministic fallback.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerationRequest is the single call shape every backend consumes.
type GenerationRequest struct {
	Prompt         string         `json:"prompt"`
	Context        map[string]any `json:"context,omitempty"`
	Specialization string         `json:"specialization"`
}

// GenerationResult carries the generated source text.
type GenerationResult struct {
	Content string `json:"content"`
}

// Backend is the external code-synthesis collaborator.
type Backend interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

// systemPrompt builds the instruction shared by all backends.
func systemPrompt(specialization string) string {
	return fmt.Sprintf("You are a %s frontend code generation agent. "+
		"Respond with ONLY the source code for the requested artifact. "+
		"Do not include explanations.", specialization)
}

// userPrompt renders the prompt plus its context map into one user message.
func userPrompt(req GenerationRequest) string {
	if len(req.Context) == 0 {
		return req.Prompt
	}
	ctxJSON, err := json.Marshal(req.Context)
	if err != nil {
		return req.Prompt
	}
	return req.Prompt + "\n\nContext:\n" + string(ctxJSON)
}

// StripFences removes a surrounding markdown code fence from model output,
// including an optional language tag on the opening fence.
func StripFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		// Drop the language tag line.
		if tag := strings.TrimSpace(out[:i]); tag == "" || !strings.ContainsAny(tag, " \t") {
			out = out[i+1:]
		}
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
