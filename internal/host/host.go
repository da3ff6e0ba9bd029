// Package host provides the agent registry and request dispatcher used by
// an external orchestrator to route protocol requests to frontend agents.
package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
)

// Registry stores registered agents and provides lookup.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]protocol.Agent
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]protocol.Agent)}
}

// Register adds an agent to the registry. Re-registration overwrites.
func (r *Registry) Register(agent protocol.Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[agent.ID()] = agent
}

// Get returns an agent by ID.
func (r *Registry) Get(id string) (protocol.Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[id]
	return a, ok
}

// List returns info snapshots for all registered agents.
func (r *Registry) List() []protocol.AgentInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]protocol.AgentInfo, 0, len(r.agents))
	for _, a := range r.agents {
		infos = append(infos, a.Info())
	}
	return infos
}

// ForFramework resolves the registered agent whose specialization declares
// support for the named framework or alias.
func (r *Registry) ForFramework(framework string) (protocol.Agent, error) {
	spec, err := specialization.ForFramework(framework)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.agents {
		if a.Specialization() == string(spec) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no agent registered for framework %q", framework)
}

// Dispatcher routes protocol requests to agents via the registry. Every
// dispatch yields exactly one response correlated by request ID; an unknown
// agent is a failed response, not an escaping error.
type Dispatcher struct {
	registry  *Registry
	defaultID string
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// SetDefault sets the default agent ID used when no specific ID is provided.
func (d *Dispatcher) SetDefault(id string) {
	d.defaultID = id
}

// Dispatch looks up the agent by ID and hands it the request. If agentID is
// empty, the default agent is used.
func (d *Dispatcher) Dispatch(ctx context.Context, agentID string, req protocol.Request) protocol.Response {
	if agentID == "" {
		agentID = d.defaultID
	}
	if agentID == "" {
		return protocol.Fail(req.ID, "no agent ID specified and no default configured")
	}
	agent, ok := d.registry.Get(agentID)
	if !ok {
		return protocol.Fail(req.ID, fmt.Sprintf("agent %q not found", agentID))
	}
	return agent.Handle(ctx, req)
}

// InitializeAll runs Initialize on every registered agent.
func (r *Registry) InitializeAll(ctx context.Context) error {
	r.mu.RLock()
	agents := make([]protocol.Agent, 0, len(r.agents))
	for _, a := range r.agents {
		agents = append(agents, a)
	}
	r.mu.RUnlock()

	for _, a := range agents {
		if err := a.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize agent %s: %w", a.ID(), err)
		}
	}
	return nil
}
