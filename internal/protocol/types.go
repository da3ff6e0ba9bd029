// Package protocol defines shared types for the frontend agent-host
// architecture. It has no dependencies on other internal packages.
package protocol

import "time"

// Request is the uniform envelope for inbound protocol calls.
type Request struct {
	ID     string         `json:"id"`
	Action string         `json:"action"`
	Data   map[string]any `json:"data,omitempty"`
}

// Response is the correlated reply to a Request. Success is false iff an
// error occurred; Result and Error are mutually exclusive.
type Response struct {
	RequestID string `json:"request_id"`
	Success   bool   `json:"success"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Task is the direct programmatic invocation surface, used when no protocol
// transport is in play. Created per invocation and consumed once.
type Task struct {
	ID     string         `json:"task_id"`
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// TaskResult is the outcome of ExecuteTask, shaped like Response.
type TaskResult struct {
	TaskID  string `json:"task_id"`
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidationResult annotates a request or a generated artifact. Valid is
// true iff Errors is empty; warnings and suggestions never affect Valid.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// CodeArtifact describes one generated source file. The core never writes
// files itself; artifacts are returned to the caller.
type CodeArtifact struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// AgentInfo is a read-only snapshot of an agent's identity and state.
type AgentInfo struct {
	AgentID        string         `json:"agent_id"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Version        string         `json:"version"`
	Capabilities   []string       `json:"capabilities"`
	Metadata       map[string]any `json:"metadata"`
	CreatedAt      time.Time      `json:"created_at"`
}

// SpecializationInfo describes what an agent's specialization covers.
type SpecializationInfo struct {
	Specialization string   `json:"specialization"`
	Frameworks     []string `json:"frameworks_supported"`
	Capabilities   []string `json:"capabilities"`
	Features       []string `json:"features"`
	UseCases       []string `json:"use_cases"`
}
