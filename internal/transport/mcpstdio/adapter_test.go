package mcpstdio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-engine/genesis-frontend/internal/host"
	"github.com/genesis-engine/genesis-frontend/internal/protocol"
)

type stubAgent struct {
	id      string
	spec    string
	lastReq protocol.Request
	fail    bool
}

func (s *stubAgent) ID() string             { return s.id }
func (s *stubAgent) Specialization() string { return s.spec }

func (s *stubAgent) Info() protocol.AgentInfo {
	return protocol.AgentInfo{AgentID: s.id, Name: s.id, Specialization: s.spec}
}

func (s *stubAgent) SpecializationInfo() protocol.SpecializationInfo {
	return protocol.SpecializationInfo{Specialization: s.spec}
}

func (s *stubAgent) Initialize(_ context.Context) error { return nil }

func (s *stubAgent) ExecuteTask(_ context.Context, task protocol.Task) protocol.TaskResult {
	return protocol.TaskOK(task.ID, nil)
}

func (s *stubAgent) Handle(_ context.Context, req protocol.Request) protocol.Response {
	s.lastReq = req
	if s.fail {
		return protocol.Fail(req.ID, "validation failed: output_path is required")
	}
	return protocol.OK(req.ID, map[string]any{"action": req.Action})
}

func runAdapter(t *testing.T, agent *stubAgent, input string) []JSONRPCResponse {
	t.Helper()
	registry := host.NewRegistry()
	registry.Register(agent)
	dispatcher := host.NewDispatcher(registry)

	var out bytes.Buffer
	a := NewAdapter(registry, dispatcher, strings.NewReader(input), &out, nil)
	require.NoError(t, a.Run(context.Background()))

	var responses []JSONRPCResponse
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp JSONRPCResponse
		require.NoError(t, json.Unmarshal([]byte(line), &resp), "line: %s", line)
		responses = append(responses, resp)
	}
	return responses
}

func TestAdapterInitialize(t *testing.T) {
	agent := &stubAgent{id: "react_agent", spec: "react"}
	resps := runAdapter(t, agent, `{"jsonrpc":"2.0","id":1,"method":"initialize"}`+"\n")

	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)
	result := resps[0].Result.(map[string]any)
	info := result["serverInfo"].(map[string]any)
	assert.Equal(t, "genesis-frontend", info["name"])
	assert.NotEmpty(t, result["protocolVersion"])
}

func TestAdapterToolsList(t *testing.T) {
	agent := &stubAgent{id: "vue_agent", spec: "vue"}
	resps := runAdapter(t, agent, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`+"\n")

	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)
	result := resps[0].Result.(map[string]any)
	tools := result["tools"].([]any)
	require.Len(t, tools, 1)
	tool := tools[0].(map[string]any)
	assert.Equal(t, "vue_agent", tool["name"])
	assert.Contains(t, tool["description"], "vue")
	schema := tool["inputSchema"].(map[string]any)
	assert.Equal(t, "object", schema["type"])
}

func TestAdapterToolsCall(t *testing.T) {
	agent := &stubAgent{id: "react_agent", spec: "react"}
	input := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"react_agent","arguments":{"action":"generate_component","data":{"component_name":"NavBar"}}}}` + "\n"
	resps := runAdapter(t, agent, input)

	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	assert.Equal(t, "generate_component", agent.lastReq.Action)
	assert.NotEmpty(t, agent.lastReq.ID)
	assert.Equal(t, "NavBar", agent.lastReq.Data["component_name"])

	result := resps[0].Result.(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	assert.Equal(t, "text", block["type"])
	assert.Contains(t, block["text"], "generate_component")
}

func TestAdapterToolsCallFailedResponse(t *testing.T) {
	agent := &stubAgent{id: "react_agent", spec: "react", fail: true}
	input := `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"react_agent","arguments":{"action":"generate_component"}}}` + "\n"
	resps := runAdapter(t, agent, input)

	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32000, resps[0].Error.Code)
	assert.Contains(t, resps[0].Error.Message, "output_path is required")
}

func TestAdapterToolsCallUnknownAgent(t *testing.T) {
	agent := &stubAgent{id: "react_agent", spec: "react"}
	input := `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"ghost","arguments":{"action":"x"}}}` + "\n"
	resps := runAdapter(t, agent, input)

	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32000, resps[0].Error.Code)
	assert.Contains(t, resps[0].Error.Message, "not found")
}

func TestAdapterUnknownMethod(t *testing.T) {
	agent := &stubAgent{id: "a", spec: "react"}
	resps := runAdapter(t, agent, `{"jsonrpc":"2.0","id":6,"method":"resources/list"}`+"\n")

	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32601, resps[0].Error.Code)
}

func TestAdapterParseError(t *testing.T) {
	agent := &stubAgent{id: "a", spec: "react"}
	resps := runAdapter(t, agent, "not json at all\n")

	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, -32700, resps[0].Error.Code)
}

func TestAdapterMultipleRequests(t *testing.T) {
	agent := &stubAgent{id: "a", spec: "react"}
	var input strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&input, `{"jsonrpc":"2.0","id":%d,"method":"tools/list"}`+"\n", i)
	}
	input.WriteString("\n") // blank lines are skipped

	resps := runAdapter(t, agent, input.String())
	assert.Len(t, resps, 3)
}
