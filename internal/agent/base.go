// Package agent provides the shared base that every specialized frontend
// agent composes: identity, capability set, metadata store, the action
// handler table, and the protocol dispatch loop. Concrete variants supply
// Initialize and ExecuteTask; Handle is reused unchanged.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/genesis-engine/genesis-frontend/internal/codegen"
	"github.com/genesis-engine/genesis-frontend/internal/llm"
	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
	"github.com/genesis-engine/genesis-frontend/internal/validate"
)

const defaultVersion = "1.0.0"

// Base carries the state and dispatch behavior shared by all frontend
// agents. Identity fields are immutable after construction; capabilities,
// metadata, and handlers are registered during initialization and guarded
// by a read-mostly lock so reads stay safe if a caller adds concurrency.
type Base struct {
	id        string
	name      string
	spec      specialization.Specialization
	version   string
	createdAt time.Time

	mu           sync.RWMutex
	capabilities []string
	capSet       map[string]bool
	metadata     map[string]any
	handlers     map[string]protocol.Handler

	gen    *codegen.Generator
	logger *zap.Logger
}

// Option configures a Base.
type Option func(*options)

type options struct {
	version   string
	backend   llm.Backend
	templates codegen.TemplateEngine
	logger    *zap.Logger
}

// WithVersion overrides the agent version string.
func WithVersion(v string) Option {
	return func(o *options) { o.version = v }
}

// WithBackend wires the generation backend collaborator.
func WithBackend(b llm.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithTemplates wires the template engine collaborator.
func WithTemplates(t codegen.TemplateEngine) Option {
	return func(o *options) { o.templates = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewBase creates the shared agent core for one specialization.
func NewBase(id, name string, spec specialization.Specialization, opts ...Option) *Base {
	o := options{
		version: defaultVersion,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	logger := o.logger.Named(string(spec))

	return &Base{
		id:        id,
		name:      name,
		spec:      spec,
		version:   o.version,
		createdAt: time.Now(),
		capSet:    make(map[string]bool),
		metadata:  make(map[string]any),
		handlers:  make(map[string]protocol.Handler),
		gen: codegen.New(spec,
			codegen.WithBackend(o.backend),
			codegen.WithTemplates(o.templates),
			codegen.WithLogger(logger)),
		logger: logger,
	}
}

// ID returns the agent identifier.
func (b *Base) ID() string { return b.id }

// Name returns the display name.
func (b *Base) Name() string { return b.name }

// Specialization returns the specialization tag.
func (b *Base) Specialization() string { return string(b.spec) }

// Spec returns the typed specialization.
func (b *Base) Spec() specialization.Specialization { return b.spec }

// Version returns the agent version string.
func (b *Base) Version() string { return b.version }

// Generator returns the composed code generator.
func (b *Base) Generator() *codegen.Generator { return b.gen }

// Logger returns the agent logger.
func (b *Base) Logger() *zap.Logger { return b.logger }

// AddCapability records a capability tag. Duplicates are silently ignored
// and registration order is preserved.
func (b *Base) AddCapability(capability string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.capSet[capability] {
		return
	}
	b.capSet[capability] = true
	b.capabilities = append(b.capabilities, capability)
}

// Capabilities returns a copy of the capability tags in registration order.
func (b *Base) Capabilities() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.capabilities))
	copy(out, b.capabilities)
	return out
}

// RegisterHandler binds a handler to an action name. The action must be
// non-empty; later registration for the same action wins.
func (b *Base) RegisterHandler(action string, handler protocol.Handler) {
	if action == "" || handler == nil {
		b.logger.Warn("ignoring invalid handler registration", zap.String("action", action))
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[action] = handler
	b.logger.Debug("registered handler", zap.String("action", action))
}

// SetMetadata stores a metadata value, last write wins.
func (b *Base) SetMetadata(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.metadata[key] = value
}

// Metadata reads a metadata value.
func (b *Base) Metadata(key string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.metadata[key]
	return v, ok
}

// Handle routes a protocol request to its registered handler and converts
// every outcome into a response envelope correlated by request ID. Unknown
// actions and handler failures become failed responses; nothing propagates
// to the caller as a fault.
func (b *Base) Handle(ctx context.Context, req protocol.Request) protocol.Response {
	b.mu.RLock()
	handler, ok := b.handlers[req.Action]
	b.mu.RUnlock()

	if !ok {
		b.logger.Warn("unsupported action",
			zap.String("action", req.Action),
			zap.String("request_id", req.ID))
		return protocol.Fail(req.ID, fmt.Sprintf("unsupported action: %s", req.Action))
	}

	result, err := b.invoke(ctx, handler, req)
	if err != nil {
		b.logger.Error("handler failed",
			zap.String("action", req.Action),
			zap.String("request_id", req.ID),
			zap.Error(err))
		return protocol.Fail(req.ID, err.Error())
	}

	b.logger.Info("request dispatched",
		zap.String("action", req.Action),
		zap.String("request_id", req.ID))
	return protocol.OK(req.ID, result)
}

// invoke runs a handler, converting panics into errors so a misbehaving
// handler cannot cross the dispatch boundary.
func (b *Base) invoke(ctx context.Context, handler protocol.Handler, req protocol.Request) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, req)
}

// SupportsFramework reports whether this agent handles the named framework.
// Exact membership lookup against the declared framework set.
func (b *Base) SupportsFramework(framework string) bool {
	return b.spec.Supports(framework)
}

// ValidateRequest applies the frontend request validation pass for this
// agent's specialization.
func (b *Base) ValidateRequest(params map[string]any) []string {
	return validate.Request(params, b.spec)
}

// Info returns a read-only snapshot of the agent's identity and state.
func (b *Base) Info() protocol.AgentInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()

	caps := make([]string, len(b.capabilities))
	copy(caps, b.capabilities)
	meta := make(map[string]any, len(b.metadata))
	for k, v := range b.metadata {
		meta[k] = v
	}

	return protocol.AgentInfo{
		AgentID:        b.id,
		Name:           b.name,
		Specialization: string(b.spec),
		Version:        b.version,
		Capabilities:   caps,
		Metadata:       meta,
		CreatedAt:      b.createdAt,
	}
}

// SpecializationInfo returns the static descriptor view of the agent's
// specialization plus its current capabilities.
func (b *Base) SpecializationInfo() protocol.SpecializationInfo {
	return protocol.SpecializationInfo{
		Specialization: string(b.spec),
		Frameworks:     b.spec.Frameworks(),
		Capabilities:   b.Capabilities(),
		Features:       b.spec.Features(),
		UseCases:       b.spec.UseCases(),
	}
}
