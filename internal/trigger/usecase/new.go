package usecase

import (
	"teamcity-notifier/internal/trigger"
	pkgLog "teamcity-notifier/pkg/log"
	"teamcity-notifier/pkg/teamcity"
)

var _ trigger.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l        pkgLog.Logger
	tc       teamcity.ITeamCity
	targets  []trigger.Target
	byName   map[string]trigger.Target
	cooldown *cooldown
}

// New creates a new trigger UseCase instance. Empty targets fall back to
// trigger.DefaultTargets and a non-positive cooldownPerMin to
// trigger.DefaultCooldownPerMin.
func New(
	l pkgLog.Logger,
	tc teamcity.ITeamCity,
	targets []trigger.Target,
	cooldownPerMin int,
) (*implUseCase, error) {
	if len(targets) == 0 {
		targets = trigger.DefaultTargets
	}
	if cooldownPerMin <= 0 {
		cooldownPerMin = trigger.DefaultCooldownPerMin
	}

	byName := make(map[string]trigger.Target, len(targets))
	for _, t := range targets {
		if t.Name == "" || t.BuildTypeID == "" {
			continue
		}
		byName[t.Name] = t
	}
	if len(byName) == 0 {
		return nil, trigger.ErrNoTargets
	}

	return &implUseCase{
		l:        l,
		tc:       tc,
		targets:  targets,
		byName:   byName,
		cooldown: newCooldown(cooldownPerMin),
	}, nil
}
