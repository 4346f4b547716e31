package trigger

import "time"

// Target is a build configuration users may trigger by name.
type Target struct {
	Name        string
	Label       string
	BuildTypeID string
	Params      map[string]string
}

// DisplayName returns the label, or the name when no label is set.
func (t Target) DisplayName() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Name
}

// DefaultTargets is used when no targets are configured.
var DefaultTargets = []Target{
	{Name: "backend", Label: "Backend", BuildTypeID: "Backend_Build"},
	{Name: "frontend", Label: "Frontend", BuildTypeID: "Frontend_Build"},
	{Name: "deploy-staging", Label: "Deploy to Staging", BuildTypeID: "Backend_DeployStaging"},
}

const DefaultCooldownPerMin = 6

type TriggerInput struct {
	Target string
}

type TriggerOutput struct {
	Target      Target
	RequestedBy string
	StatusCode  int
	TriggeredAt time.Time
}
