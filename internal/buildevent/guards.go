// Package buildevent recognizes, validates and sanitizes TeamCity build
// webhook bodies.
package buildevent

import (
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
)

// LooksLikeBuildEvent reports whether v is an object whose eventKind is a
// known build-lifecycle kind or carries the BUILD_ prefix. It does not look at
// the payload.
func LooksLikeBuildEvent(v jsontree.Value) bool {
	kind := v.Field(fieldEventKind)
	if !kind.IsString() {
		return false
	}
	return model.EventKind(kind.Str()).IsBuildLifecycle()
}

// IsFullyValidBuildEvent reports whether v carries every required payload
// field with the expected JSON type.
func IsFullyValidBuildEvent(v jsontree.Value) bool {
	if !LooksLikeBuildEvent(v) {
		return false
	}

	payload := v.Field(fieldPayload)
	if !payload.IsObject() || !payload.Field(fieldID).IsNumber() {
		return false
	}
	for _, key := range []string{fieldBuildTypeID, fieldNumber, fieldStatus, fieldState, fieldWebURL} {
		if !payload.Field(key).IsString() {
			return false
		}
	}

	buildType := payload.Field(fieldBuildType)
	return buildType.IsObject() &&
		buildType.Field(fieldName).IsString() &&
		buildType.Field(fieldProjectName).IsString()
}
