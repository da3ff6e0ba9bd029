// Command agent-host runs the frontend generation agents behind an MCP
// stdio transport, or dispatches a single request from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/genesis-engine/genesis-frontend/agents/nextjs"
	"github.com/genesis-engine/genesis-frontend/agents/react"
	"github.com/genesis-engine/genesis-frontend/agents/ui"
	"github.com/genesis-engine/genesis-frontend/agents/vue"
	"github.com/genesis-engine/genesis-frontend/internal/agent"
	"github.com/genesis-engine/genesis-frontend/internal/config"
	"github.com/genesis-engine/genesis-frontend/internal/host"
	"github.com/genesis-engine/genesis-frontend/internal/llm"
	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/transport/mcpstdio"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to optional YAML config file")
		transport  = flag.String("transport", "stdio", "transport to run (stdio)")
		agentID    = flag.String("agent", "", "one-shot mode: agent ID to dispatch to")
		action     = flag.String("action", "", "one-shot mode: action to invoke")
		dataJSON   = flag.String("data", "{}", "one-shot mode: JSON action data")
		listAgents = flag.Bool("list", false, "list registered agents and exit")
	)
	flag.Parse()

	cfg := config.Load()
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	backend, err := buildBackend(cfg)
	if err != nil {
		logger.Fatal("backend setup failed", zap.Error(err))
	}

	opts := []agent.Option{
		agent.WithVersion(cfg.AgentVersion),
		agent.WithLogger(logger),
	}
	if backend != nil {
		opts = append(opts, agent.WithBackend(backend))
	}

	registry := host.NewRegistry()
	registry.Register(nextjs.New(opts...))
	registry.Register(react.New(opts...))
	registry.Register(vue.New(opts...))
	registry.Register(ui.New(opts...))

	if err := registry.InitializeAll(ctx); err != nil {
		logger.Fatal("agent initialization failed", zap.Error(err))
	}

	dispatcher := host.NewDispatcher(registry)
	if cfg.DefaultAgent != "" {
		dispatcher.SetDefault(cfg.DefaultAgent)
	}

	if *listAgents {
		for _, info := range registry.List() {
			fmt.Printf("%s\t%s\t%s\n", info.AgentID, info.Specialization, info.Name)
		}
		return
	}

	if *action != "" {
		runOnce(ctx, dispatcher, *agentID, *action, *dataJSON, logger)
		return
	}

	switch *transport {
	case "stdio":
		logger.Info("starting MCP stdio transport",
			zap.Int("agents", len(registry.List())),
			zap.Bool("llm", backend != nil))
		adapter := mcpstdio.NewAdapter(registry, dispatcher, os.Stdin, os.Stdout, logger)
		if err := adapter.Run(ctx); err != nil {
			logger.Fatal("transport error", zap.Error(err))
		}
	default:
		logger.Fatal("unknown transport", zap.String("transport", *transport))
	}
}

// buildLogger constructs a production zap logger at the configured level,
// writing to stderr so stdout stays clean for the stdio transport.
func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// buildBackend constructs the generation backend named by the config, or
// nil when LLM generation is disabled.
func buildBackend(cfg *config.Config) (llm.Backend, error) {
	if !cfg.EnableLLM {
		return nil, nil
	}
	switch cfg.BackendProvider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIBackend(llm.OpenAIConfig{
			APIKey:    cfg.ModelAPIKey,
			Model:     cfg.ModelName,
			MaxTokens: cfg.ModelMaxTokens,
			BaseURL:   cfg.ModelEndpoint,
		})
	case config.ProviderHTTP:
		return llm.NewClient(cfg.ModelEndpoint, cfg.ModelName, cfg.ModelAPIKey, cfg.ModelMaxTokens, cfg.ModelTimeout), nil
	default:
		return nil, fmt.Errorf("unknown backend provider %q", cfg.BackendProvider)
	}
}

func runOnce(ctx context.Context, dispatcher *host.Dispatcher, agentID, action, dataJSON string, logger *zap.Logger) {
	var data map[string]any
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		logger.Fatal("invalid -data JSON", zap.Error(err))
	}
	resp := dispatcher.Dispatch(ctx, agentID, protocol.NewRequest(action, data))
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		logger.Fatal("marshal response", zap.Error(err))
	}
	fmt.Println(string(out))
	if !resp.Success {
		os.Exit(1)
	}
}
