// Package vue provides the Vue 3 specialized frontend agent.
package vue

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
	"vue3_app_generation",
	"composition_api_setup",
	"vue_router_setup",
	"pinia_setup",
	"vuex_setup",
	"vite_configuration",
	"vue_component_generation",
	"composable_generation",
	"testing_setup",
}

var knownStores = map[string]bool{
	"pinia":           true,
	"vuex":            true,
	"composition_api": true,
}

// Agent generates Vue 3 applications, single-file components, and
// composables.
type Agent struct {
	*agent.Base
}

// New creates a new Vue Agent.
func New(opts ...agent.Option) *Agent {
	return &Agent{
		Base: agent.NewBase("vue_agent", "VueAgent", specialization.Vue, opts...),
	}
}

// Initialize registers the agent's capabilities and action handlers.
func (a *Agent) Initialize(_ context.Context) error {
	for _, c := range capabilities {
		a.AddCapability(c)
	}

	a.SetMetadata("vue_version", "3.4.0")
	a.SetMetadata("default_state_management", "pinia")
	a.SetMetadata("composition_api", true)

	a.RegisterHandler("generate_vue_app", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateApp(ctx, req.Data)
	})
	a.RegisterHandler("generate_component", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateComponent(ctx, req.Data)
	})
	a.RegisterHandler("generate_composable", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.generateComposable(ctx, req.Data)
	})
	a.RegisterHandler("setup_router", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.setupRouter(ctx, req.Data)
	})
	a.RegisterHandler("setup_state_management", func(ctx context.Context, req protocol.Request) (any, error) {
		return a.setupStateManagement(ctx, req.Data)
	})

	a.Logger().Info("vue agent initialized")
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
	case strings.Contains(name, "generate_vue_app"):
		result, err = a.generateApp(ctx, task.Params)
	case strings.Contains(name, "generate_component"):
		result, err = a.generateComponent(ctx, task.Params)
	case strings.Contains(name, "generate_composable"):
		result, err = a.generateComposable(ctx, task.Params)
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

	projectName := protocol.StringParam(params, "project_name", "vue-app")
	if errs := validate.ProjectName(projectName); len(errs) > 0 {
		return nil, fmt.Errorf("invalid project name: %s", strings.Join(errs, "; "))
	}

	gen := a.Generator()
	vars := map[string]any{
		"framework":    "vue",
		"project_name": projectName,
		"typescript":   protocol.BoolParam(params, "typescript", true),
	}

	artifacts := []protocol.CodeArtifact{
		{Path: "package.json", Language: "json",
			Content: gen.RenderTemplate(ctx, "vue/package.json", vars)},
		{Path: "vite.config.ts", Language: "typescript",
			Content: gen.RenderTemplate(ctx, "vue/vite.config.ts", vars)},
		{Path: "src/App.vue", Language: "vue",
			Content: gen.Generate(ctx, fmt.Sprintf("Generate the App component for the Vue app %s", projectName), vars)},
		{Path: "src/main.ts", Language: "typescript",
			Content: gen.Generate(ctx, fmt.Sprintf("Generate the entry point for the Vue app %s", projectName), vars)},
	}

	return map[string]any{
		"framework":  "vue",
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
		"framework":      protocol.StringParam(params, "framework", "vue"),
		"component_name": name,
	}

	code := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a Vue 3 single-file component named %s using the Composition API", name), vars)

	artifact := protocol.CodeArtifact{
		Path:     path.Join("src/components", name+".vue"),
		Content:  code,
		Language: "vue",
	}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(code, "vue"),
	}, nil
}

func (a *Agent) generateComposable(ctx context.Context, params map[string]any) (any, error) {
	if errs := a.ValidateRequest(params); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	base := validate.ComponentName(protocol.StringParam(params, "composable_name", "State"))
	name := "use" + strings.TrimPrefix(base, "Use")
	vars := map[string]any{
		"framework":       "vue",
		"composable_name": name,
	}

	code := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a Vue 3 composable named %s", name), vars)

	artifact := protocol.CodeArtifact{
		Path:     path.Join("src/composables", name+".ts"),
		Content:  code,
		Language: "typescript",
	}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(code, "typescript"),
	}, nil
}

func (a *Agent) setupRouter(ctx context.Context, params map[string]any) (any, error) {
	vars := map[string]any{"framework": "vue"}
	for k, v := range params {
		vars[k] = v
	}
	content := a.Generator().RenderTemplate(ctx, "vue/router.ts", vars)
	artifact := protocol.CodeArtifact{Path: "src/router.ts", Content: content, Language: "typescript"}
	return map[string]any{
		"artifact":   artifact,
		"validation": validate.Code(content, "typescript"),
	}, nil
}

func (a *Agent) setupStateManagement(ctx context.Context, params map[string]any) (any, error) {
	store := protocol.StringParam(params, "state_management", "pinia")
	if !knownStores[store] {
		return nil, fmt.Errorf("state management %q not supported for vue", store)
	}

	vars := map[string]any{
		"framework":        "vue",
		"state_management": store,
	}
	content := a.Generator().Generate(ctx,
		fmt.Sprintf("Generate a %s store setup for a Vue 3 app", store), vars)

	artifact := protocol.CodeArtifact{Path: "src/stores/index.ts", Content: content, Language: "typescript"}
	return map[string]any{
		"state_management": store,
		"artifact":         artifact,
		"validation":       validate.Code(content, "typescript"),
	}, nil
}
