package trigger

import (
	"context"

	"teamcity-notifier/internal/model"
)

// UseCase queues TeamCity builds on behalf of chat users.
type UseCase interface {
	// Trigger queues the build configuration behind input.Target.
	Trigger(ctx context.Context, sc model.Scope, input TriggerInput) (TriggerOutput, error)

	// Targets lists the targets users may choose from, in display order.
	Targets() []Target
}
