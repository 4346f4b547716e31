package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/internal/trigger"
	"teamcity-notifier/pkg/teamcity"
)

const paramTriggeredBy = "env.TRIGGERED_BY"

// Trigger resolves input.Target, applies the per-target cooldown and queues
// the build. A TeamCity timeout comes back as an error wrapping
// teamcity.ErrTimeout.
func (uc *implUseCase) Trigger(ctx context.Context, sc model.Scope, input trigger.TriggerInput) (trigger.TriggerOutput, error) {
	name := strings.TrimSpace(input.Target)
	if name == "" {
		return trigger.TriggerOutput{}, trigger.ErrEmptyTarget
	}

	target, ok := uc.byName[name]
	if !ok {
		return trigger.TriggerOutput{}, fmt.Errorf("%w: %s", trigger.ErrUnknownTarget, name)
	}

	if !uc.cooldown.Allow(target.Name) {
		uc.l.Warnf(ctx, "internal.trigger.usecase.Trigger: %s throttled (user=%s)", target.Name, sc.Username)
		return trigger.TriggerOutput{}, trigger.ErrTriggerThrottled
	}

	resp, err := uc.tc.TriggerBuild(ctx, teamcity.TriggerRequest{
		BuildTypeID: target.BuildTypeID,
		Params:      buildParams(target, sc),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.trigger.usecase.Trigger: %s (%s) failed: %v", target.Name, target.BuildTypeID, err)
		return trigger.TriggerOutput{}, fmt.Errorf("trigger %s: %w", target.Name, err)
	}

	uc.l.Infof(ctx, "internal.trigger.usecase.Trigger: queued %s (%s) for user=%s status=%d",
		target.Name, target.BuildTypeID, sc.Username, resp.StatusCode)

	return trigger.TriggerOutput{
		Target:      target,
		RequestedBy: sc.Username,
		StatusCode:  resp.StatusCode,
		TriggeredAt: time.Now(),
	}, nil
}

// Targets lists the configured targets that can actually be triggered.
func (uc *implUseCase) Targets() []trigger.Target {
	out := make([]trigger.Target, 0, len(uc.byName))
	for _, t := range uc.targets {
		if _, ok := uc.byName[t.Name]; ok {
			out = append(out, t)
		}
	}
	return out
}

func buildParams(target trigger.Target, sc model.Scope) map[string]string {
	params := make(map[string]string, len(target.Params)+1)
	for k, v := range target.Params {
		params[k] = v
	}
	if sc.Username != "" {
		params[paramTriggeredBy] = sc.Username
	}
	return params
}
