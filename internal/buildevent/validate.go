package buildevent

import (
	"fmt"
	"strings"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
)

// ValidateGeneric checks the envelope shared by every webhook: an object with
// a string eventKind and an object payload.
func ValidateGeneric(v jsontree.Value) model.ValidationResult {
	var r model.ValidationResult

	if v.IsAbsent() {
		return invalid(ErrMsgEventMissing)
	}
	if !v.IsObject() {
		return invalid(ErrMsgEventNotObject)
	}

	kind := v.Field(fieldEventKind)
	switch {
	case !kind.Truthy():
		r.Errors = append(r.Errors, ErrMsgKindMissing)
	case !kind.IsString():
		r.Errors = append(r.Errors, ErrMsgKindNotString)
	}

	payload := v.Field(fieldPayload)
	switch {
	case payload.IsAbsent():
		r.Errors = append(r.Errors, ErrMsgPayloadMissing)
	case !payload.IsObject():
		r.Errors = append(r.Errors, ErrMsgPayloadNotObject)
	}
	return finish(r)
}

// ValidateBuildEvent runs ValidateGeneric and then reports every missing
// required payload field at once. Suspicious but usable values produce
// warnings only.
func ValidateBuildEvent(v jsontree.Value) model.ValidationResult {
	r := ValidateGeneric(v)
	if !r.IsValid {
		return r
	}

	payload := v.Field(fieldPayload)
	for _, key := range requiredPayloadFields {
		if payload.Field(key).IsAbsent() {
			r.Errors = append(r.Errors, fmt.Sprintf(ErrMsgMissingFieldFmt, key))
		}
	}

	buildType := payload.Field(fieldBuildType)
	switch {
	case buildType.IsAbsent():
		// already reported above
	case !buildType.IsObject():
		r.Errors = append(r.Errors, ErrMsgBuildTypeNotObject)
	default:
		for _, key := range []string{fieldName, fieldProjectName} {
			if !buildType.Field(key).Truthy() {
				r.Errors = append(r.Errors, fmt.Sprintf(ErrMsgMissingFieldFmt, fieldBuildType+"."+key))
			}
		}
	}

	if id := payload.Field(fieldID); !id.IsAbsent() {
		if n, ok := id.Num(); !ok || n <= 0 {
			r.Warnings = append(r.Warnings, WarnMsgIDNotPositive)
		}
	}
	if webURL := payload.Field(fieldWebURL); !webURL.IsAbsent() && !webURL.IsString() {
		r.Warnings = append(r.Warnings, WarnMsgWebURLNotString)
	}

	return finish(r)
}

// FormatErrorsForDisplay renders a result as "Errors: a, b; Warnings: c".
func FormatErrorsForDisplay(r model.ValidationResult) string {
	segments := make([]string, 0, 2)
	if len(r.Errors) > 0 {
		segments = append(segments, "Errors: "+strings.Join(r.Errors, ", "))
	}
	if len(r.Warnings) > 0 {
		segments = append(segments, "Warnings: "+strings.Join(r.Warnings, ", "))
	}
	return strings.Join(segments, "; ")
}

func invalid(msg string) model.ValidationResult {
	return model.ValidationResult{IsValid: false, Errors: []string{msg}}
}

func finish(r model.ValidationResult) model.ValidationResult {
	r.IsValid = len(r.Errors) == 0
	return r
}
