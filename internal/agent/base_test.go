package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/specialization"
)

func newTestBase(t *testing.T, opts ...Option) *Base {
	t.Helper()
	return NewBase("react_agent", "ReactAgent", specialization.React, opts...)
}

func TestHandleDispatchesToRegisteredHandler(t *testing.T) {
	b := newTestBase(t)
	b.RegisterHandler("generate_component", func(_ context.Context, req protocol.Request) (any, error) {
		return map[string]any{"code": "X"}, nil
	})

	resp := b.Handle(context.Background(), protocol.Request{
		ID:     "r1",
		Action: "generate_component",
	})
	assert.Equal(t, "r1", resp.RequestID)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	result, ok := resp.Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "X", result["code"])
}

func TestHandleUnsupportedAction(t *testing.T) {
	b := newTestBase(t)
	resp := b.Handle(context.Background(), protocol.Request{ID: "r2", Action: "ping"})
	assert.Equal(t, "r2", resp.RequestID)
	assert.False(t, resp.Success)
	assert.Equal(t, "unsupported action: ping", resp.Error)
	assert.Nil(t, resp.Result)
}

func TestHandleHandlerError(t *testing.T) {
	b := newTestBase(t)
	b.RegisterHandler("explode", func(_ context.Context, _ protocol.Request) (any, error) {
		return nil, fmt.Errorf("backend down")
	})

	resp := b.Handle(context.Background(), protocol.Request{ID: "r3", Action: "explode"})
	assert.Equal(t, "r3", resp.RequestID)
	assert.False(t, resp.Success)
	assert.Equal(t, "backend down", resp.Error)
	assert.Nil(t, resp.Result)
}

func TestHandleHandlerPanicContained(t *testing.T) {
	b := newTestBase(t)
	b.RegisterHandler("panic", func(_ context.Context, _ protocol.Request) (any, error) {
		panic("bad state")
	})

	resp := b.Handle(context.Background(), protocol.Request{ID: "r4", Action: "panic"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "handler panic")
	assert.Contains(t, resp.Error, "bad state")
}

func TestHandleCorrelationPreserved(t *testing.T) {
	b := newTestBase(t)
	b.RegisterHandler("noop", func(_ context.Context, _ protocol.Request) (any, error) {
		return nil, nil
	})
	for _, id := range []string{"a", "b", "c"} {
		resp := b.Handle(context.Background(), protocol.Request{ID: id, Action: "noop"})
		assert.Equal(t, id, resp.RequestID)
	}
}

func TestRegisterHandlerLastWins(t *testing.T) {
	b := newTestBase(t)
	b.RegisterHandler("act", func(_ context.Context, _ protocol.Request) (any, error) {
		return "first", nil
	})
	b.RegisterHandler("act", func(_ context.Context, _ protocol.Request) (any, error) {
		return "second", nil
	})

	resp := b.Handle(context.Background(), protocol.Request{ID: "r", Action: "act"})
	assert.Equal(t, "second", resp.Result)
}

func TestRegisterHandlerIgnoresInvalid(t *testing.T) {
	b := newTestBase(t)
	b.RegisterHandler("", func(_ context.Context, _ protocol.Request) (any, error) {
		return nil, nil
	})
	b.RegisterHandler("nil_handler", nil)

	resp := b.Handle(context.Background(), protocol.Request{ID: "r", Action: "nil_handler"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unsupported action")
}

func TestAddCapabilityDedupes(t *testing.T) {
	b := newTestBase(t)
	b.AddCapability("component_generation")
	b.AddCapability("hook_generation")
	b.AddCapability("component_generation")

	assert.Equal(t, []string{"component_generation", "hook_generation"}, b.Capabilities())
}

func TestMetadata(t *testing.T) {
	b := newTestBase(t)
	b.SetMetadata("react_version", "18.0.0")
	b.SetMetadata("react_version", "19.0.0")

	v, ok := b.Metadata("react_version")
	require.True(t, ok)
	assert.Equal(t, "19.0.0", v)

	_, ok = b.Metadata("missing")
	assert.False(t, ok)
}

func TestIdentity(t *testing.T) {
	b := NewBase("vue_agent", "VueAgent", specialization.Vue, WithVersion("2.1.0"))
	assert.Equal(t, "vue_agent", b.ID())
	assert.Equal(t, "VueAgent", b.Name())
	assert.Equal(t, "vue", b.Specialization())
	assert.Equal(t, specialization.Vue, b.Spec())
	assert.Equal(t, "2.1.0", b.Version())
	assert.NotNil(t, b.Generator())
	assert.NotNil(t, b.Logger())
}

func TestDefaultVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", newTestBase(t).Version())
}

func TestInfoSnapshotIsolation(t *testing.T) {
	b := newTestBase(t)
	b.AddCapability("a")
	b.SetMetadata("k", "v")

	info := b.Info()
	assert.Equal(t, "react_agent", info.AgentID)
	assert.Equal(t, "ReactAgent", info.Name)
	assert.Equal(t, "react", info.Specialization)
	assert.False(t, info.CreatedAt.IsZero())

	// Mutating the snapshot must not leak back into the agent.
	info.Capabilities[0] = "mutated"
	info.Metadata["k"] = "mutated"

	assert.Equal(t, []string{"a"}, b.Capabilities())
	v, _ := b.Metadata("k")
	assert.Equal(t, "v", v)
}

func TestSupportsFramework(t *testing.T) {
	b := newTestBase(t)
	assert.True(t, b.SupportsFramework("react"))
	assert.True(t, b.SupportsFramework("cra"))
	assert.False(t, b.SupportsFramework("vue"))
	assert.False(t, b.SupportsFramework("react18"))
}

func TestValidateRequest(t *testing.T) {
	b := newTestBase(t)
	errs := b.ValidateRequest(map[string]any{})
	assert.Equal(t, []string{"output_path is required", "framework is required"}, errs)

	errs = b.ValidateRequest(map[string]any{
		"output_path": "/tmp/app",
		"framework":   "react",
	})
	assert.Empty(t, errs)
}

func TestSpecializationInfo(t *testing.T) {
	b := newTestBase(t)
	b.AddCapability("component_generation")

	info := b.SpecializationInfo()
	assert.Equal(t, "react", info.Specialization)
	assert.Equal(t, []string{"react", "cra"}, info.Frameworks)
	assert.Equal(t, []string{"component_generation"}, info.Capabilities)
	assert.Contains(t, info.Features, "Code generation with LLMs")
	assert.NotEmpty(t, info.UseCases)
}
