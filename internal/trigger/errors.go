package trigger

import "errors"

// Domain-specific errors for the trigger package.
var (
	ErrEmptyTarget      = errors.New("target is empty")
	ErrUnknownTarget    = errors.New("unknown build target")
	ErrTriggerThrottled = errors.New("target was triggered too recently")
	ErrNoTargets        = errors.New("no build targets configured")
)
