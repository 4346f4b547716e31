package buildevent_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcity-notifier/internal/buildevent"
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
)

func TestValidateGeneric(t *testing.T) {
	tests := []struct {
		name       string
		value      jsontree.Value
		wantErrors []string
	}{
		{"missing", jsontree.Value{}, []string{buildevent.ErrMsgEventMissing}},
		{"null", jsontree.NullValue(), []string{buildevent.ErrMsgEventMissing}},
		{"string", jsontree.StringValue("BUILD_STARTED"), []string{buildevent.ErrMsgEventNotObject}},
		{"empty object", parse(t, `{}`), []string{buildevent.ErrMsgKindMissing, buildevent.ErrMsgPayloadMissing}},
		{"numeric kind", parse(t, `{"eventKind":5,"payload":{}}`), []string{buildevent.ErrMsgKindNotString}},
		{"payload array", parse(t, `{"eventKind":"X","payload":[]}`), []string{buildevent.ErrMsgPayloadNotObject}},
		{"payload null", parse(t, `{"eventKind":"X","payload":null}`), []string{buildevent.ErrMsgPayloadMissing}},
		{"valid", parse(t, `{"eventKind":"X","payload":{}}`), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildevent.ValidateGeneric(tt.value)
			assert.Equal(t, tt.wantErrors, r.Errors)
			assert.Equal(t, len(tt.wantErrors) == 0, r.IsValid)
			assert.Empty(t, r.Warnings)
		})
	}
}

func TestValidateBuildEventFixtures(t *testing.T) {
	for _, name := range []string{"build_started.json", "build_finished.json", "build_interrupted.json"} {
		r := buildevent.ValidateBuildEvent(loadFixture(t, name))
		assert.True(t, r.IsValid, "%s: %v", name, r.Errors)
		assert.Empty(t, r.Warnings, name)
	}
}

func TestValidateBuildEventReportsAllMissingFields(t *testing.T) {
	r := buildevent.ValidateBuildEvent(parse(t, `{"eventKind":"BUILD_STARTED","payload":{"number":"1"}}`))

	require.False(t, r.IsValid)
	assert.Equal(t, []string{
		"Missing required field: payload.id",
		"Missing required field: payload.buildTypeId",
		"Missing required field: payload.status",
		"Missing required field: payload.state",
		"Missing required field: payload.webUrl",
		"Missing required field: payload.buildType",
	}, r.Errors)
}

func TestValidateBuildEventBuildType(t *testing.T) {
	base := `{"eventKind":"BUILD_STARTED","payload":{"id":1,"buildTypeId":"a","number":"1","status":"S","state":"s","webUrl":"u","buildType":%s}}`

	r := buildevent.ValidateBuildEvent(parse(t, fmt.Sprintf(base, `"Build"`)))
	assert.Equal(t, []string{buildevent.ErrMsgBuildTypeNotObject}, r.Errors)

	r = buildevent.ValidateBuildEvent(parse(t, fmt.Sprintf(base, `{}`)))
	assert.Equal(t, []string{
		"Missing required field: payload.buildType.name",
		"Missing required field: payload.buildType.projectName",
	}, r.Errors)

	r = buildevent.ValidateBuildEvent(parse(t, fmt.Sprintf(base, `{"name":"Build","projectName":""}`)))
	assert.Equal(t, []string{"Missing required field: payload.buildType.projectName"}, r.Errors)
}

func TestValidateBuildEventWarnings(t *testing.T) {
	r := buildevent.ValidateBuildEvent(parse(t, `{"eventKind":"BUILD_FINISHED","payload":{"id":-4,"buildTypeId":"a","number":"1","status":"S","state":"s","webUrl":42,"buildType":{"name":"n","projectName":"p"}}}`))

	assert.True(t, r.IsValid)
	assert.Empty(t, r.Errors)
	assert.Equal(t, []string{buildevent.WarnMsgIDNotPositive, buildevent.WarnMsgWebURLNotString}, r.Warnings)
}

func TestValidateBuildEventShortCircuitsOnEnvelope(t *testing.T) {
	r := buildevent.ValidateBuildEvent(parse(t, `{"eventKind":"BUILD_STARTED"}`))
	assert.Equal(t, []string{buildevent.ErrMsgPayloadMissing}, r.Errors)
}

func TestFormatErrorsForDisplay(t *testing.T) {
	assert.Equal(t, "", buildevent.FormatErrorsForDisplay(model.ValidationResult{IsValid: true}))
	assert.Equal(t, "Errors: a, b", buildevent.FormatErrorsForDisplay(model.ValidationResult{Errors: []string{"a", "b"}}))
	assert.Equal(t, "Warnings: w", buildevent.FormatErrorsForDisplay(model.ValidationResult{IsValid: true, Warnings: []string{"w"}}))
	assert.Equal(t, "Errors: a; Warnings: w1, w2", buildevent.FormatErrorsForDisplay(model.ValidationResult{
		Errors:   []string{"a"},
		Warnings: []string{"w1", "w2"},
	}))
}
