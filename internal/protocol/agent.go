package protocol

import "context"

// Handler is a function bound to one action name, invoked by the dispatcher.
// A non-nil error is converted into a failed Response and never propagates.
type Handler func(ctx context.Context, req Request) (any, error)

// Agent is the interface that all frontend agents implement. Handle is
// provided by the shared base; Initialize and ExecuteTask are
// specialization-specific.
type Agent interface {
	ID() string
	Specialization() string
	Info() AgentInfo
	SpecializationInfo() SpecializationInfo
	Initialize(ctx context.Context) error
	ExecuteTask(ctx context.Context, task Task) TaskResult
	Handle(ctx context.Context, req Request) Response
}
