package model

import "strings"

// EventKind is the TeamCity webhook event name. The three build-lifecycle
// kinds below are the ones with a dedicated card; any other string is a valid
// but unrecognized kind.
type EventKind string

const (
	EventBuildStarted     EventKind = "BUILD_STARTED"
	EventBuildFinished    EventKind = "BUILD_FINISHED"
	EventBuildInterrupted EventKind = "BUILD_INTERRUPTED"

	// EventUnknown replaces a missing or malformed kind.
	EventUnknown EventKind = "UNKNOWN"
)

// BuildEventPrefix is shared by every build-lifecycle event kind.
const BuildEventPrefix = "BUILD_"

// Known reports whether k is one of the three build-lifecycle kinds.
func (k EventKind) Known() bool {
	switch k {
	case EventBuildStarted, EventBuildFinished, EventBuildInterrupted:
		return true
	}
	return false
}

// IsBuildLifecycle reports whether k is known or carries the build prefix.
func (k EventKind) IsBuildLifecycle() bool {
	return k.Known() || strings.HasPrefix(string(k), BuildEventPrefix)
}

// BuildEvent is a sanitized TeamCity build webhook. Required fields are always
// populated; optional records are nil when the source did not carry them.
type BuildEvent struct {
	EventKind EventKind    `json:"eventKind"`
	Payload   BuildPayload `json:"payload"`
}

// BuildPayload mirrors the TeamCity REST build representation.
type BuildPayload struct {
	ID          int64     `json:"id"`
	BuildTypeID string    `json:"buildTypeId"`
	Number      string    `json:"number"`
	Status      string    `json:"status"`
	State       string    `json:"state"`
	Href        string    `json:"href"`
	WebURL      string    `json:"webUrl"`
	StatusText  string    `json:"statusText"`
	BuildType   BuildType `json:"buildType"`

	StartDate  string `json:"startDate,omitempty"`
	FinishDate string `json:"finishDate,omitempty"`
	QueuedDate string `json:"queuedDate,omitempty"`

	RunningInfo  *RunningInfo  `json:"runningInfo,omitempty"`
	CanceledInfo *CanceledInfo `json:"canceledInfo,omitempty"`
	Agent        *Agent        `json:"agent,omitempty"`
	LastChanges  *LastChanges  `json:"lastChanges,omitempty"`
}

type BuildType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectName string `json:"projectName"`
	ProjectID   string `json:"projectId"`
	Href        string `json:"href,omitempty"`
	WebURL      string `json:"webUrl,omitempty"`
}

// RunningInfo is present while a build is executing.
type RunningInfo struct {
	PercentageComplete    float64 `json:"percentageComplete"`
	ElapsedSeconds        float64 `json:"elapsedSeconds"`
	EstimatedTotalSeconds float64 `json:"estimatedTotalSeconds"`
	CurrentStageText      string  `json:"currentStageText,omitempty"`
	Outdated              bool    `json:"outdated"`
	ProbablyHanging       bool    `json:"probablyHanging"`
}

// CanceledInfo describes who stopped a build and why.
type CanceledInfo struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
	User      User   `json:"user"`
}

type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type Agent struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TypeID int64  `json:"typeId,omitempty"`
}

// LastChanges lists VCS changes. Count is authoritative; Changes may hold
// fewer entries than Count.
type LastChanges struct {
	Count   int      `json:"count"`
	Changes []Change `json:"change"`
}

type Change struct {
	ID       int64  `json:"id,omitempty"`
	Version  string `json:"version"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Href     string `json:"href,omitempty"`
	WebURL   string `json:"webUrl,omitempty"`
}

func (e BuildEvent) HasRunningInfo() bool  { return e.Payload.RunningInfo != nil }
func (e BuildEvent) HasCanceledInfo() bool { return e.Payload.CanceledInfo != nil }
func (e BuildEvent) HasAgent() bool        { return e.Payload.Agent != nil }

// HasLastChanges reports whether at least one change was recorded.
func (e BuildEvent) HasLastChanges() bool {
	return e.Payload.LastChanges != nil && e.Payload.LastChanges.Count > 0
}
