// Package ui provides the design-system specialized frontend agent. Unlike
// the framework agents it accepts framework-less requests and produces
// design artifacts (tokens, palettes, component libraries).
package ui

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/genesis-engine/genesis-frontend/internal/agent"
	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
	"github.com/genesis-engine/genesis-frontend/internal/validate"
)

var capabilities = []string{
	"design_system_creation",
	"color_palette_generation",
	"typography_system",
	"component_library_creation",
	"design_token_generation",
	"theme_system",
	"dark_mode_implementation",
	"accessibility_optimization",
	"responsive_design",
}

var knownDesignSystems = map[string]bool{
	"material_design": true,
	"apple_hig":       true,
	"fluent":          true,
	"carbon":          true,
	"custom":          true,
}

// Agent generates design systems, tokens, and component libraries.
type Agent struct {
	*agent.Base
}

// New creates a new UI Agent.
func New(opts ...agent.Option) *Agent {
	return &Agent{
		Base: agent.NewBase("ui_agent", "UIAgent", specialization.UI, opts...),
	}
}

// Initialize registers the agent's capabilities and action handlers.
func (a *Agent) Initialize(_ context.Context) error {
	for _, c := range capabilities {
		a.AddCapability(c)
	}

	a.SetMetadata("default_design_system", "custom")
	a.SetMetadata("dark_mode_support", true)
	a.SetMetadata("accessibility_support", true)

	a.RegisterHandler("generate_design_system", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateDesignSystem(ctx, req.Data)
	})
	a.RegisterHandler("generate_color_palette", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateColorPalette(ctx, req.Data)
	})
	a.RegisterHandler("generate_design_tokens", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateDesignTokens(ctx, req.Data)
	})
	a.RegisterHandler("generate_component_library", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateComponentLibrary(ctx, req.Data)
	})

	a.Logger().Info("ui agent initialized")
	return nil
}

// ExecuteTask is the direct task entry point. Failures are packaged, never
// raised.
func (a *Agent) ExecuteTask(ctx context.Context, task protocol.Task) protocol.TaskResult {
	name := strings.ToLower(task.Name)

	var (
		result any
		err    error
	)
	switch {
	case strings.Contains(name, "design_system"):
		result, err = a.generateDesignSystem(ctx, task.Params)
	case strings.Contains(name, "color_palette"):
		result, err = a.generateColorPalette(ctx, task.Params)
	case strings.Contains(name, "design_tokens"):
		result, err = a.generateDesignTokens(ctx, task.Params)
	case strings.Contains(name, "component_library"):
		result, err = a.generateComponentLibrary(ctx, task.Params)
	default:
		err = fmt.Errorf("unrecognized task: %s", task.Name)
	}

	if err != nil {
		a.Logger().Error("task failed", zap.String("task", task.Name), zap.Error(err))
		return protocol.TaskFail(task.ID, err.Error())
	}
	return protocol.TaskOK(task.ID, result)
}

func (a *Agent) generateDesignSystem(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	system := protocol.StringParam(params, "design_system", "custom")
	if !knownDesignSystems[system] {
		return nil, fmt.Errorf("design system %q not supported", system)
	}

	gen := a.Generator()
	vars := map[string]any{
		"design_system": system,
		"dark_mode":     protocol.BoolParam(params, "dark_mode", true),
	}

	artifacts := []protocol.CodeArtifact{
		{Path: "design/tokens.json", Language: "json",
			Content: gen.RenderTemplate(ctx, "ui/tokens.json", vars)},
		{Path: "design/theme.ts", Language: "typescript",
			Content: gen.Generate(ctx, fmt.Sprintf("Generate a %s theme definition", system), vars)},
	}

	return map[string]any{
		"design_system": system,
		"artifacts":     artifacts,
		"validation":    validate.Artifacts(artifacts),
	}, nil
}

func (a *Agent) generateColorPalette(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	primary := protocol.StringParam(params, "primary_color", "#3b82f6")
	vars := map[string]any{
		"primary_color": primary,
		"dark_mode":     protocol.BoolParam(params, "dark_mode", true),
	}

	content := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a color palette built around %s as CSS custom properties", primary), vars)

	artifact := protocol.CodeArtifact{Path: "design/palette.css", Content: content, Language: "css"}
	return map[string]any{
		"primary_color": primary,
		"artifact":      artifact,
		"validation":    validate.Code(content, "css"),
	}, nil
}

func (a *Agent) generateDesignTokens(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	vars := map[string]any{
		"design_system": protocol.StringParam(params, "design_system", "custom"),
	}
	content := a.Generator().RenderTemplate(ctx, "ui/tokens.json", vars)

	artifact := protocol.CodeArtifact{Path: "design/tokens.json", Content: content, Language: "json"}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(content, "json"),
	}, nil
}

func (a *Agent) generateComponentLibrary(ctx context.Context, params map[string]any) (any, error) {
	// The target framework steers which placeholder family backs the
	// library primitives. It is not part of the design specialization's
	// framework set, so it is stripped before request validation.
	structural := make(map[string]any, len(params))
	for k, v := range params {
		if k == "framework" {
			continue
		}
		structural[k] = v
	}
	if errs := a.ValidateRequest(structural); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	framework := strings.ToLower(protocol.StringParam(params, "framework", "react"))
	gen := a.Generator()

	var artifacts []protocol.CodeArtifact
	for _, name := range []string{"Button", "Card", "Input"} {
		vars := map[string]any{
			"framework":      framework,
			"component_name": name,
		}
		code := gen.Generate(ctx,
			fmt.Sprintf("Generate an accessible %s primitive for a component library", name), vars)
		lang := "tsx"
		if framework == "vue" || framework == "vue3" {
			lang = "vue"
		}
		artifacts = append(artifacts, protocol.CodeArtifact{
			Path:     "design/components/" + name + "." + lang,
			Content:  code,
			Language: lang,
		})
	}

	return map[string]any{
		"framework":  framework,
		"artifacts":  artifacts,
		"validation": validate.Artifacts(artifacts),
	}, nil
}
