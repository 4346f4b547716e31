package buildevent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcity-notifier/internal/buildevent"
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
)

func TestSanitizeBuildEventDefaults(t *testing.T) {
	for _, v := range []jsontree.Value{jsontree.Value{}, jsontree.NullValue(), parse(t, `{}`), parse(t, `{"eventKind":7,"payload":"x"}`)} {
		e := buildevent.SanitizeBuildEvent(v)

		assert.Equal(t, model.EventUnknown, e.EventKind)
		assert.Equal(t, int64(0), e.Payload.ID)
		assert.Equal(t, buildevent.DefaultBuildTypeID, e.Payload.BuildTypeID)
		assert.Equal(t, buildevent.DefaultNumber, e.Payload.Number)
		assert.Equal(t, buildevent.DefaultStatus, e.Payload.Status)
		assert.Equal(t, buildevent.DefaultState, e.Payload.State)
		assert.Equal(t, "", e.Payload.Href)
		assert.Equal(t, "", e.Payload.WebURL)
		assert.Equal(t, buildevent.DefaultStatusText, e.Payload.StatusText)
		assert.Equal(t, buildevent.DefaultBuildName, e.Payload.BuildType.Name)
		assert.Equal(t, buildevent.DefaultProjectName, e.Payload.BuildType.ProjectName)

		assert.Nil(t, e.Payload.RunningInfo)
		assert.Nil(t, e.Payload.CanceledInfo)
		assert.Nil(t, e.Payload.Agent)
		assert.Nil(t, e.Payload.LastChanges)
	}
}

func TestSanitizeStatusTextFallsBackToStatus(t *testing.T) {
	e := buildevent.SanitizeBuildEvent(parse(t, `{"eventKind":"BUILD_FINISHED","payload":{"status":"FAILURE"}}`))
	assert.Equal(t, "FAILURE", e.Payload.StatusText)
	assert.Equal(t, "FAILURE", e.Payload.Status)
}

func TestSanitizeStartedFixture(t *testing.T) {
	e := buildevent.SanitizeBuildEvent(loadFixture(t, "build_started.json"))

	assert.Equal(t, model.EventBuildStarted, e.EventKind)
	assert.Equal(t, int64(48211), e.Payload.ID)
	assert.Equal(t, "1204", e.Payload.Number)
	assert.Equal(t, "Backend", e.Payload.BuildType.ProjectName)
	assert.Equal(t, "20250812T000012-0300", e.Payload.StartDate)

	require.NotNil(t, e.Payload.RunningInfo)
	assert.Equal(t, float64(586), e.Payload.RunningInfo.EstimatedTotalSeconds)
	assert.Equal(t, "Resolving artifact dependencies", e.Payload.RunningInfo.CurrentStageText)

	require.NotNil(t, e.Payload.Agent)
	assert.Equal(t, "linux-agent-07", e.Payload.Agent.Name)

	assert.Nil(t, e.Payload.CanceledInfo)
	assert.Nil(t, e.Payload.LastChanges)
}

func TestSanitizeLastChanges(t *testing.T) {
	e := buildevent.SanitizeBuildEvent(loadFixture(t, "build_finished.json"))

	require.NotNil(t, e.Payload.LastChanges)
	assert.Equal(t, 3, e.Payload.LastChanges.Count)
	require.Len(t, e.Payload.LastChanges.Changes, 3)
	assert.Equal(t, "mwong", e.Payload.LastChanges.Changes[0].Username)
	assert.Equal(t, "a1b2c3d", e.Payload.LastChanges.Changes[0].Version)

	// count and list length are independent
	e = buildevent.SanitizeBuildEvent(parse(t, `{"eventKind":"BUILD_FINISHED","payload":{"lastChanges":{"count":5,"changes":[{"username":"a"},"junk"]}}}`))
	require.NotNil(t, e.Payload.LastChanges)
	assert.Equal(t, 5, e.Payload.LastChanges.Count)
	assert.Len(t, e.Payload.LastChanges.Changes, 1)
}

func TestSanitizeCanceledInfo(t *testing.T) {
	e := buildevent.SanitizeBuildEvent(loadFixture(t, "build_interrupted.json"))

	require.NotNil(t, e.Payload.CanceledInfo)
	assert.Equal(t, "ops-bot", e.Payload.CanceledInfo.User.Username)
	assert.Equal(t, "20250812T011530-0300", e.Payload.CanceledInfo.Timestamp)
	assert.Equal(t, "  Superseded by a newer deploy  ", e.Payload.CanceledInfo.Text)
}
