// Package react provides the React SPA specialized frontend agent.
package react

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
	"react_app_generation",
	"vite_configuration",
	"react_router_setup",
	"redux_toolkit_setup",
	"zustand_setup",
	"context_api_setup",
	"component_generation",
	"hook_generation",
	"testing_setup",
}

// knownStores are the state management options this agent can scaffold.
var knownStores = map[string]bool{
	"redux_toolkit": true,
	"zustand":       true,
	"context_api":   true,
	"mobx":          true,
}

// Agent generates React single-page applications, components, and hooks.
type Agent struct {
	*agent.Base
}

// New creates a new React Agent.
func New(opts ...agent.Option) *Agent {
	return &Agent{
		Base: agent.NewBase("react_agent", "ReactAgent", specialization.React, opts...),
	}
}

// Initialize registers the agent's capabilities and action handlers.
func (a *Agent) Initialize(_ context.Context) error {
	for _, c := range capabilities {
		a.AddCapability(c)
	}

	a.SetMetadata("react_version", "18.0.0")
	a.SetMetadata("default_build_tool", "vite")
	a.SetMetadata("typescript_support", true)

	a.RegisterHandler("generate_react_app", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateApp(ctx, req.Data)
	})
	a.RegisterHandler("generate_component", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateComponent(ctx, req.Data)
	})
	a.RegisterHandler("generate_hook", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateHook(ctx, req.Data)
	})
	a.RegisterHandler("setup_routing", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.setupRouting(ctx, req.Data)
	})
	a.RegisterHandler("setup_state_management", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.setupStateManagement(ctx, req.Data)
	})

	a.Logger().Info("react agent initialized")
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
	case strings.Contains(name, "generate_react_app"):
		result, err = a.generateApp(ctx, task.Params)
	case strings.Contains(name, "generate_component"):
		result, err = a.generateComponent(ctx, task.Params)
	case strings.Contains(name, "generate_hook"):
		result, err = a.generateHook(ctx, task.Params)
	case strings.Contains(name, "state_management"):
		result, err = a.setupStateManagement(ctx, task.Params)
	default:
		err = fmt.Errorf("unrecognized task: %s", task.Name)
	}

	if err != nil {
		a.Logger().Error("task failed", zap.String("task", task.Name), zap.Error(err))
		return protocol.TaskFail(task.ID, err.Error())
	}
	return protocol.TaskOK(task.ID, result)
}

func (a *Agent) generateApp(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	projectName := protocol.StringParam(params, "project_name", "react-app")
	if errs := validate.ProjectName(projectName); len(errs) > 0 {
		return nil, fmt.Errorf("invalid project name: %s", strings.Join(errs, "; "))
	}

	gen := a.Generator()
	buildTool := protocol.StringParam(params, "build_tool", "vite")
	vars := map[string]any{
		"framework":    "react",
		"project_name": projectName,
		"build_tool":   buildTool,
		"typescript":   protocol.BoolParam(params, "typescript", true),
	}

	artifacts := []protocol.CodeArtifact{
		{Path: "package.json", Language: "json",
			Content: gen.RenderTemplate(ctx, "react/package.json", vars)},
		{Path: "index.html", Language: "html",
			Content: gen.RenderTemplate(ctx, "react/index.html", vars)},
		{Path: "src/App.tsx", Language: "tsx",
			Content: gen.Generate(ctx, fmt.Sprintf("Generate the App component for the React app %s", projectName), vars)},
		{Path: "src/main.tsx", Language: "tsx",
			Content: gen.Generate(ctx, fmt.Sprintf("Generate the entry point for the React app %s", projectName), vars)},
	}

	return map[string]any{
		"framework":  "react",
		"build_tool": buildTool,
		"artifacts":  artifacts,
		"validation": validate.Artifacts(artifacts),
		"next_steps": []string{"npm install", "npm run dev"},
	}, nil
}

func (a *Agent) generateComponent(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	name := validate.ComponentName(protocol.StringParam(params, "component_name", "Component"))
	vars := map[string]any{
		"framework":      protocol.StringParam(params, "framework", "react"),
		"component_name": name,
	}

	code := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a React functional component named %s", name), vars)

	artifact := protocol.CodeArtifact{
		Path:     path.Join("src/components", name+".tsx"),
		Content:  code,
		Language: "tsx",
	}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(code, "tsx"),
	}, nil
}

func (a *Agent) generateHook(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	// Hook names follow the useX convention.
	base := validate.ComponentName(protocol.StringParam(params, "hook_name", "State"))
	name := "use" + strings.TrimPrefix(base, "Use")
	vars := map[string]any{
		"framework": "react",
		"hook_name": name,
	}

	code := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a custom React hook named %s", name), vars)

	artifact := protocol.CodeArtifact{
		Path:     path.Join("src/hooks", name+".ts"),
		Content:  code,
		Language: "typescript",
	}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(code, "typescript"),
	}, nil
}

func (a *Agent) setupRouting(ctx context.Context, params map[string]any) (any, error) {
	vars := map[string]any{"framework": "react"}
	for k, v := range params {
		vars[k] = v
	}
	content := a.Generator().RenderTemplate(ctx, "react/router.tsx", vars)
	artifact := protocol.CodeArtifact{Path: "src/router.tsx", Content: content, Language: "tsx"}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(content, "tsx"),
	}, nil
}

func (a *Agent) setupStateManagement(ctx context.Context, params map[string]any) (any, error) {
	store := protocol.StringParam(params, "state_management", "zustand")
	if !knownStores[store] {
		return nil, fmt.Errorf("state management %q not supported for react", store)
	}

	vars := map[string]any{
		"framework":        "react",
		"state_management": store,
	}
	content := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a %s store setup for a React app", store), vars)

	artifact := protocol.CodeArtifact{Path: "src/store.ts", Content: content, Language: "typescript"}
	return map[string]any{
		"state_management": store,
		"artifact":         artifact,
		"validation":       validate.Code(content, "typescript"),
	}, nil
}
