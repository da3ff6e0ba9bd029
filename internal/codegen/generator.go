// Package codegen implements the two-tier code production policy: delegate
// to a generation backend when one is configured, degrade to deterministic
// placeholder synthesis on absence or failure. Generate has no failure mode
// visible to its caller.
package codegen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/genesis-engine/genesis-frontend/internal/llm"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
)

// TemplateEngine is the external template collaborator. Absence or render
// failure degrades to the generation path instead of failing.
type TemplateEngine interface {
	Render(name string, context map[string]any) (string, error)
}

// Generator produces source code text for a named artifact.
type Generator struct {
	spec      specialization.Specialization
	backend   llm.Backend
	templates TemplateEngine
	logger    *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithBackend wires a generation backend.
func WithBackend(b llm.Backend) Option {
	return func(g *Generator) { g.backend = b }
}

// WithTemplates wires a template engine.
func WithTemplates(t TemplateEngine) Option {
	return func(g *Generator) { g.templates = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator for the given specialization. Collaborators are
// fixed at construction; a Generator without a backend or template engine
// still always produces output.
func New(spec specialization.Specialization, opts ...Option) *Generator {
	g := &Generator{
		spec:   spec,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate produces source code for the given prompt and context. It always
// returns non-empty text: any backend failure is absorbed, logged as a
// warning, and downgraded to deterministic placeholder synthesis.
func (g *Generator) Generate(ctx context.Context, prompt string, vars map[string]any) string {
	if g.backend != nil {
		res, err := g.backend.Generate(ctx, llm.GenerationRequest{
			Prompt:         prompt,
			Context:        vars,
			Specialization: string(g.spec),
		})
		if err == nil && res != nil && strings.TrimSpace(res.Content) != "" {
			return res.Content
		}
		if err != nil {
			g.logger.Warn("generation backend failed, using placeholder",
				zap.String("specialization", string(g.spec)),
				zap.Error(err))
		} else {
			g.logger.Warn("generation backend returned empty content, using placeholder",
				zap.String("specialization", string(g.spec)))
		}
	}
	return g.Placeholder(vars)
}

// RenderTemplate renders a named template through the template engine. When
// the engine is unconfigured or fails, the call degrades to Generate with a
// synthesized prompt.
func (g *Generator) RenderTemplate(ctx context.Context, name string, vars map[string]any) string {
	if g.templates != nil {
		out, err := g.templates.Render(name, vars)
		if err == nil {
			return out
		}
		g.logger.Warn("template render failed, falling back to generation",
			zap.String("template", name),
			zap.Error(err))
	} else {
		g.logger.Warn("no template engine configured, falling back to generation",
			zap.String("template", name))
	}
	return g.Generate(ctx, fmt.Sprintf("Generate the %s artifact", name), vars)
}

// Specialization returns the specialization this generator serves.
func (g *Generator) Specialization() specialization.Specialization {
	return g.spec
}
