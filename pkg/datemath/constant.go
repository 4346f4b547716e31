package datemath

const (
	// HumanLayout is the display layout for build timestamps.
	HumanLayout = "Jan 2, 2006, 15:04:05 MST"

	// InvalidDate is shown in place of a timestamp that failed to parse.
	InvalidDate = "Invalid date"

	// Unknown is returned when a remaining time cannot be estimated.
	Unknown = "Unknown"

	// Completing is returned when a build ran past its estimate.
	Completing = "Completing..."
)
