// Package nextjs provides the Next.js specialized frontend agent.
package nextjs

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/genesis-engine/genesis-frontend/internal/agent"
	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
	"github.com/genesis-engine/genesis-frontend/internal/validate"
)

var capabilities = []string{
	"nextjs_app_generation",
	"app_router_setup",
	"pages_router_setup",
	"typescript_configuration",
	"tailwind_integration",
	"server_components",
	"static_generation",
	"api_routes_generation",
	"component_generation",
	"layout_generation",
	"page_generation",
}

// Agent generates Next.js applications, pages, layouts, and components.
type Agent struct {
	*agent.Base
}

// New creates a new Next.js Agent.
func New(opts ...agent.Option) *Agent {
	return &Agent{
		Base: agent.NewBase("nextjs_agent", "NextJSAgent", specialization.NextJS, opts...),
	}
}

// Initialize registers the agent's capabilities and action handlers.
func (a *Agent) Initialize(_ context.Context) error {
	for _, c := range capabilities {
		a.AddCapability(c)
	}

	a.SetMetadata("nextjs_version", "14.0.0")
	a.SetMetadata("react_version", "18.0.0")
	a.SetMetadata("typescript_support", true)
	a.SetMetadata("tailwind_support", true)
	a.SetMetadata("app_router_support", true)

	a.RegisterHandler("generate_nextjs_app", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateApp(ctx, req.Data)
	})
	a.RegisterHandler("generate_component", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateComponent(ctx, req.Data)
	})
	a.RegisterHandler("generate_page", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generatePage(ctx, req.Data)
	})
	a.RegisterHandler("generate_layout", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateLayout(ctx, req.Data)
	})
	a.RegisterHandler("generate_api_route", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateAPIRoute(ctx, req.Data)
	})
	a.RegisterHandler("configure_typescript", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.configureArtifact(ctx, req.Data, "tsconfig.json", "typescript")
	})
	a.RegisterHandler("integrate_tailwind", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.configureArtifact(ctx, req.Data, "tailwind.config.ts", "typescript")
	})

	a.Logger().Info("nextjs agent initialized")
	return nil
}

// ExecuteTask is the direct task entry point. Every failure is packaged into
// the result, never raised.
func (a *Agent) ExecuteTask(ctx context.Context, task protocol.Task) protocol.TaskResult {
	name := strings.ToLower(task.Name)

	var (
		result any
		err    error
	)
	switch {
	case strings.Contains(name, "generate_nextjs_app"):
		result, err = a.generateApp(ctx, task.Params)
	case strings.Contains(name, "generate_component"):
		result, err = a.generateComponent(ctx, task.Params)
	case strings.Contains(name, "generate_page"):
		result, err = a.generatePage(ctx, task.Params)
	case strings.Contains(name, "generate_layout"):
		result, err = a.generateLayout(ctx, task.Params)
	default:
		err = fmt.Errorf("unrecognized task: %s", task.Name)
	}

	if err != nil {
		a.Logger().Error("task failed", zap.String("task", task.Name), zap.Error(err))
		return protocol.TaskFail(task.ID, err.Error())
	}
	return protocol.TaskOK(task.ID, result)
}

// generateApp produces the scaffold artifacts for a full application.
func (a *Agent) generateApp(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	projectName := protocol.StringParam(params, "project_name", "nextjs-app")
	if errs := validate.ProjectName(projectName); len(errs) > 0 {
		return nil, fmt.Errorf("invalid project name: %s", strings.Join(errs, "; "))
	}

	gen := a.Generator()
	appRouter := protocol.BoolParam(params, "app_router", true)
	vars := map[string]any{
		"framework":    "nextjs",
		"project_name": projectName,
		"typescript":   protocol.BoolParam(params, "typescript", true),
		"app_router":   appRouter,
		"tailwind_css": protocol.BoolParam(params, "tailwind_css", true),
	}

	artifacts := []protocol.CodeArtifact{
		{Path: "package.json", Language: "json",
			Content: gen.RenderTemplate(ctx, "nextjs/package.json", vars)},
		{Path: "next.config.js", Language: "javascript",
			Content: gen.RenderTemplate(ctx, "nextjs/next.config.js", vars)},
	}

	layoutDir := "app"
	if !appRouter {
		layoutDir = "pages"
	}
	layout := gen.Generate(ctx, fmt.Sprintf("Generate the root layout for the Next.js app %s", projectName), vars)
	page := gen.Generate(ctx, fmt.Sprintf("Generate the landing page for the Next.js app %s", projectName), vars)
	artifacts = append(artifacts,
		protocol.CodeArtifact{Path: path.Join(layoutDir, "layout.tsx"), Content: layout, Language: "tsx"},
		protocol.CodeArtifact{Path: path.Join(layoutDir, "page.tsx"), Content: page, Language: "tsx"},
	)

	return map[string]any{
		"framework":  "nextjs",
		"app_router": appRouter,
		"artifacts":  artifacts,
		"validation": validate.Artifacts(artifacts),
		"next_steps": []string{"npm install", "npm run dev"},
	}, nil
}

func (a *Agent) generateComponent(ctx context.Context, params map[string]any) (any, error) {
	return a.generateTSXArtifact(ctx, params, "component", "components")
}

func (a *Agent) generatePage(ctx context.Context, params map[string]any) (any, error) {
	return a.generateTSXArtifact(ctx, params, "page", "app")
}

func (a *Agent) generateLayout(ctx context.Context, params map[string]any) (any, error) {
	return a.generateTSXArtifact(ctx, params, "layout", "app")
}

func (a *Agent) generateAPIRoute(ctx context.Context, params map[string]any) (any, error) {
	return a.generateTSXArtifact(ctx, params, "API route handler", "app/api")
}

// generateTSXArtifact is the shared one-file generation path: validate the
// request, run the generator, lint the output, package the artifact.
func (a *Agent) generateTSXArtifact(ctx context.Context, params map[string]any, kind, dir string) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	name := validate.ComponentName(protocol.StringParam(params, "component_name", "Component"))
	vars := map[string]any{
		"framework":      protocol.StringParam(params, "framework", "nextjs"),
		"component_name": name,
		"typescript":     protocol.BoolParam(params, "typescript", true),
	}

	code := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a Next.js %s named %s", kind, name), vars)

	artifact := protocol.CodeArtifact{
		Path:     path.Join(dir, name+".tsx"),
		Content:  code,
		Language: "tsx",
	}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(code, "tsx"),
	}, nil
}

// configureArtifact generates a single configuration file via the template
// path with generation fallback.
func (a *Agent) configureArtifact(ctx context.Context, params map[string]any, file, language string) (any, error) {
	vars := map[string]any{"framework": "nextjs"}
	for k, v := range params {
		vars[k] = v
	}
	content := a.Generator().RenderTemplate(ctx, "nextjs/"+file, vars)
	artifact := protocol.CodeArtifact{Path: file, Content: content, Language: language}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(content, language),
	}, nil
}
