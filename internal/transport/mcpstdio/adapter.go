// Package mcpstdio provides an MCP (Model Context Protocol) stdio transport
// that maps JSON-RPC messages on stdin/stdout to the agent-host dispatcher.
// It is a thin adapter over the request/response envelope and carries no
// generation or validation logic of its own.
package mcpstdio

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/genesis-engine/genesis-frontend/internal/host"
	"github.com/genesis-engine/genesis-frontend/internal/protocol"
)

// JSONRPCRequest represents an incoming JSON-RPC 2.0 request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents an outgoing JSON-RPC 2.0 response.
type JSONRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id,omitempty"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC error.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToolCallParams represents parameters for a tools/call request. The tool
// name selects the agent; arguments carry the action and its data.
type ToolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ToolInfo represents an MCP tool listing entry.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Adapter bridges MCP stdio to the agent-host dispatcher.
type Adapter struct {
	registry   *host.Registry
	dispatcher *host.Dispatcher
	reader     io.Reader
	writer     io.Writer
	logger     *zap.Logger
}

// NewAdapter creates a new MCP stdio Adapter.
func NewAdapter(registry *host.Registry, dispatcher *host.Dispatcher, r io.Reader, w io.Writer, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		registry:   registry,
		dispatcher: dispatcher,
		reader:     r,
		writer:     w,
		logger:     logger,
	}
}

// Run reads JSON-RPC requests from the reader and writes responses to the
// writer. It blocks until the reader is exhausted or the context is
// cancelled.
func (a *Adapter) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(a.reader)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req JSONRPCRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			a.writeError(nil, -32700, "Parse error")
			continue
		}

		a.handleRequest(ctx, &req)
	}
	return scanner.Err()
}

func (a *Adapter) handleRequest(ctx context.Context, req *JSONRPCRequest) {
	switch req.Method {
	case "initialize":
		a.handleInitialize(req)
	case "tools/list":
		a.handleToolsList(req)
	case "tools/call":
		a.handleToolsCall(ctx, req)
	default:
		a.writeError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (a *Adapter) handleInitialize(req *JSONRPCRequest) {
	a.writeResult(req.ID, map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "genesis-frontend",
			"version": "1.0.0",
		},
	})
}

func (a *Adapter) handleToolsList(req *JSONRPCRequest) {
	infos := a.registry.List()
	tools := make([]ToolInfo, 0, len(infos))
	for _, info := range infos {
		tools = append(tools, ToolInfo{
			Name:        info.AgentID,
			Description: fmt.Sprintf("%s (%s specialization)", info.Name, info.Specialization),
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"action": map[string]any{
						"type":        "string",
						"description": "The agent action to invoke",
					},
					"data": map[string]any{
						"type":        "object",
						"description": "Action parameters",
					},
				},
				"required": []string{"action"},
			},
		})
	}
	a.writeResult(req.ID, map[string]any{"tools": tools})
}

func (a *Adapter) handleToolsCall(ctx context.Context, req *JSONRPCRequest) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		a.writeError(req.ID, -32602, "Invalid params")
		return
	}

	action, _ := params.Arguments["action"].(string)
	data, _ := params.Arguments["data"].(map[string]any)

	agentReq := protocol.Request{
		ID:     uuid.NewString(),
		Action: action,
		Data:   data,
	}

	resp := a.dispatcher.Dispatch(ctx, params.Name, agentReq)
	if !resp.Success {
		a.writeError(req.ID, -32000, resp.Error)
		return
	}

	text, err := json.Marshal(resp.Result)
	if err != nil {
		a.writeError(req.ID, -32603, fmt.Sprintf("marshal result: %v", err))
		return
	}

	a.writeResult(req.ID, map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": string(text),
			},
		},
	})
}

func (a *Adapter) writeResult(id any, result any) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
	data, err := json.Marshal(resp)
	if err != nil {
		a.logger.Error("mcp marshal error for result", zap.Error(err))
		return
	}
	fmt.Fprintf(a.writer, "%s\n", data)
}

func (a *Adapter) writeError(id any, code int, message string) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		a.logger.Error("mcp marshal error for error response", zap.Error(err))
		return
	}
	fmt.Fprintf(a.writer, "%s\n", data)
}
