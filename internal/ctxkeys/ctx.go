package ctxkeys

import (
	"context"

	"github.com/clawguinness/clawboard/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	AgentKey contextKey = "agent"
)

// Agent returns the authenticated agent, or nil for anonymous requests
func Agent(ctx context.Context) *model.Agent {
	agent, _ := ctx.Value(AgentKey).(*model.Agent)
	return agent
}

func WithAgent(ctx context.Context, agent *model.Agent) context.Context {
	return context.WithValue(ctx, AgentKey, agent)
}
