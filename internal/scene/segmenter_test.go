package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

func assertScenesCover(t *testing.T, scenes []model.CameraScene, duration float64) {
	t.Helper()
	require.NotEmpty(t, scenes)
	assert.Equal(t, 0.0, scenes[0].StartTime)
	assert.InDelta(t, duration, scenes[len(scenes)-1].EndTime, 1e-9)
	for i := 1; i < len(scenes); i++ {
		assert.InDelta(t, scenes[i-1].EndTime, scenes[i].StartTime, 1e-9)
	}
}

func TestSegment_SingleSpanBecomesOneScene(t *testing.T) {
	spans := []model.IntentSpan{
		{StartTime: 0, EndTime: 10, Intent: model.UserIntent{Kind: model.IntentIdle}},
	}
	scenes := Segment(spans, nil, 10)
	assertScenesCover(t, scenes, 10)
	require.Len(t, scenes, 1)
}

func TestSegment_AdjacentSameContextTypingMerges(t *testing.T) {
	spans := []model.IntentSpan{
		{StartTime: 0, EndTime: 2, Intent: model.UserIntent{Kind: model.IntentTyping, Context: model.ContextCodeEditor}},
		{StartTime: 3, EndTime: 5, Intent: model.UserIntent{Kind: model.IntentTyping, Context: model.ContextCodeEditor}},
		{StartTime: 5, EndTime: 10, Intent: model.UserIntent{Kind: model.IntentIdle}},
	}
	scenes := Segment(spans, nil, 10)
	assertScenesCover(t, scenes, 10)

	var typingScenes int
	for _, s := range scenes {
		if s.PrimaryIntent.Kind == model.IntentTyping {
			typingScenes++
			assert.Equal(t, 0.0, s.StartTime)
			assert.Equal(t, 5.0, s.EndTime)
		}
	}
	assert.Equal(t, 1, typingScenes)
}

func TestSegment_DifferentTypingContextDoesNotMerge(t *testing.T) {
	spans := []model.IntentSpan{
		{StartTime: 0, EndTime: 2, Intent: model.UserIntent{Kind: model.IntentTyping, Context: model.ContextCodeEditor}},
		{StartTime: 3, EndTime: 5, Intent: model.UserIntent{Kind: model.IntentTyping, Context: model.ContextTerminal}},
		{StartTime: 5, EndTime: 10, Intent: model.UserIntent{Kind: model.IntentIdle}},
	}
	scenes := Segment(spans, nil, 10)
	assertScenesCover(t, scenes, 10)

	var typingScenes int
	for _, s := range scenes {
		if s.PrimaryIntent.Kind == model.IntentTyping {
			typingScenes++
		}
	}
	assert.Equal(t, 2, typingScenes)
}

func TestSegment_SpatialDiscontinuitySplitsSpan(t *testing.T) {
	spans := []model.IntentSpan{
		{
			StartTime: 0, EndTime: 10,
			Intent: model.UserIntent{Kind: model.IntentNavigating},
			AnchorEvents: []model.UnifiedEvent{
				{Time: 1, Kind: model.EventClick, Position: geometry.Point{X: 0.1, Y: 0.1}},
				{Time: 5, Kind: model.EventClick, Position: geometry.Point{X: 0.9, Y: 0.9}},
			},
		},
	}
	scenes := Segment(spans, nil, 10)
	assertScenesCover(t, scenes, 10)
	assert.Len(t, scenes, 2)
}

func TestSegment_FocusRegionRequiresAtLeastTwoPoints(t *testing.T) {
	events := []model.UnifiedEvent{
		{Time: 1, Kind: model.EventClick, Position: geometry.Point{X: 0.5, Y: 0.5}},
	}
	spans := []model.IntentSpan{
		{StartTime: 0, EndTime: 10, Intent: model.UserIntent{Kind: model.IntentClicking}},
	}
	scenes := Segment(spans, events, 10)
	require.Len(t, scenes, 1)
	assert.Empty(t, scenes[0].FocusRegions)
}

func TestSegment_FocusRegionClustersNearbyEvents(t *testing.T) {
	events := []model.UnifiedEvent{
		{Time: 1.0, Kind: model.EventClick, Position: geometry.Point{X: 0.50, Y: 0.50}},
		{Time: 1.2, Kind: model.EventClick, Position: geometry.Point{X: 0.52, Y: 0.51}},
		{Time: 8.0, Kind: model.EventClick, Position: geometry.Point{X: 0.05, Y: 0.05}},
	}
	spans := []model.IntentSpan{
		{StartTime: 0, EndTime: 10, Intent: model.UserIntent{Kind: model.IntentClicking}},
	}
	scenes := Segment(spans, events, 10)
	require.Len(t, scenes, 1)
	require.Len(t, scenes[0].FocusRegions, 1)
}

func TestSegment_DominantAppContext(t *testing.T) {
	events := []model.UnifiedEvent{
		{Time: 1, Kind: model.EventMouseMove, Meta: model.EventMetadata{AppBundleID: "com.apple.safari"}},
		{Time: 2, Kind: model.EventMouseMove, Meta: model.EventMetadata{AppBundleID: "com.apple.safari"}},
		{Time: 3, Kind: model.EventMouseMove, Meta: model.EventMetadata{AppBundleID: "com.apple.finder"}},
	}
	spans := []model.IntentSpan{
		{StartTime: 0, EndTime: 10, Intent: model.UserIntent{Kind: model.IntentReading}},
	}
	scenes := Segment(spans, events, 10)
	require.Len(t, scenes, 1)
	assert.Equal(t, "com.apple.safari", scenes[0].AppContext)
}
