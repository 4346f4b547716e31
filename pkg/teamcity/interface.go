package teamcity

import "context"

// ITeamCity queues builds on a TeamCity server.
// Implementations are safe for concurrent use.
type ITeamCity interface {
	// TriggerBuild adds a build configuration to the queue
	TriggerBuild(ctx context.Context, req TriggerRequest) (TriggerResponse, error)

	// BaseURL returns the server the client talks to.
	BaseURL() string
}

// New creates a new TeamCity client with the given configuration
func New(cfg Config) (ITeamCity, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newTeamCityImpl(cfg), nil
}
