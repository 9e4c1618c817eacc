package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
	"github.com/vedantwpatil/autodirector/internal/timeline"
)

func buildTimeline(t *testing.T, input model.RecordingInput) timeline.EventTimeline {
	t.Helper()
	return timeline.Build(input)
}

func assertCoversDuration(t *testing.T, spans []model.IntentSpan, duration float64) {
	t.Helper()
	require.NotEmpty(t, spans)
	assert.Equal(t, 0.0, spans[0].StartTime)
	assert.InDelta(t, duration, spans[len(spans)-1].EndTime, 1e-9)
	for i := 1; i < len(spans); i++ {
		assert.InDelta(t, spans[i-1].EndTime, spans[i].StartTime, 1e-9, "spans must be contiguous at index %d", i)
	}
}

func TestClassify_EmptyRecordingIsAllIdle(t *testing.T) {
	input := model.RecordingInput{Duration: 10}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	assertCoversDuration(t, spans, 10)
	require.Len(t, spans, 1)
	assert.Equal(t, model.IntentIdle, spans[0].Intent.Kind)
}

func TestClassify_TypingRunFormsSingleSpan(t *testing.T) {
	input := model.RecordingInput{
		Duration: 10,
		Keys: []model.KeyEvent{
			{Time: 1.0, KeyCode: 0, HasCode: true, Type: model.KeyDown, Character: 'h'},
			{Time: 1.2, KeyCode: 0, HasCode: true, Type: model.KeyDown, Character: 'e'},
			{Time: 1.4, KeyCode: 0, HasCode: true, Type: model.KeyDown, Character: 'l'},
			{Time: 1.6, KeyCode: 0, HasCode: true, Type: model.KeyDown, Character: 'l'},
			{Time: 1.8, KeyCode: 0, HasCode: true, Type: model.KeyDown, Character: 'o'},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	assertCoversDuration(t, spans, 10)

	var typing *model.IntentSpan
	for i := range spans {
		if spans[i].Intent.Kind == model.IntentTyping {
			typing = &spans[i]
		}
	}
	require.NotNil(t, typing)
	assert.Equal(t, 1.0, typing.StartTime)
	assert.Equal(t, 1.8, typing.EndTime)
	assert.Equal(t, model.ContextCodeEditor, typing.Intent.Context)
}

func TestClassify_ShortcutModifierBreaksTypingRun(t *testing.T) {
	input := model.RecordingInput{
		Duration: 10,
		Keys: []model.KeyEvent{
			{Time: 1.0, Type: model.KeyDown, Character: 'a'},
			{Time: 1.1, Type: model.KeyDown, Modifiers: model.ModCommand, Character: 's'},
			{Time: 1.2, Type: model.KeyDown, Character: 'b'},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	var typingSpans []model.IntentSpan
	for _, s := range spans {
		if s.Intent.Kind == model.IntentTyping {
			typingSpans = append(typingSpans, s)
		}
	}
	// the Command-modified keydown is excluded and splits the run into two
	// single-keystroke typing spans, both well under the 1.5s gap.
	assert.Len(t, typingSpans, 2)
}

func TestClassify_DraggingSpanMatchesDragEvent(t *testing.T) {
	input := model.RecordingInput{
		Duration: 10,
		Drags: []model.DragEvent{
			{StartTime: 2, EndTime: 4, StartPos: geometry.Point{X: 0.1, Y: 0.1}, EndPos: geometry.Point{X: 0.5, Y: 0.5}, Type: model.DragSelection},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	assertCoversDuration(t, spans, 10)
	found := false
	for _, s := range spans {
		if s.Intent.Kind == model.IntentDragging {
			found = true
			assert.Equal(t, 2.0, s.StartTime)
			assert.Equal(t, 4.0, s.EndTime)
		}
	}
	assert.True(t, found, "expected a dragging span")
}

func TestClassify_TwoNearbyClicksFormNavigating(t *testing.T) {
	input := model.RecordingInput{
		Duration: 10,
		Clicks: []model.ClickEvent{
			{Time: 1.0, Position: geometry.Point{X: 0.2, Y: 0.2}, Type: model.LeftDown},
			{Time: 1.5, Position: geometry.Point{X: 0.2, Y: 0.2}, Type: model.LeftUp},
			{Time: 2.0, Position: geometry.Point{X: 0.25, Y: 0.22}, Type: model.LeftDown},
			{Time: 2.5, Position: geometry.Point{X: 0.25, Y: 0.22}, Type: model.LeftUp},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	found := false
	for _, s := range spans {
		if s.Intent.Kind == model.IntentNavigating {
			found = true
		}
	}
	assert.True(t, found, "expected a navigating span from two nearby clicks")
}

func TestClassify_SingleClickIsClicking(t *testing.T) {
	input := model.RecordingInput{
		Duration: 10,
		Clicks: []model.ClickEvent{
			{Time: 3.0, Position: geometry.Point{X: 0.5, Y: 0.5}, Type: model.LeftDown},
			{Time: 3.05, Position: geometry.Point{X: 0.5, Y: 0.5}, Type: model.LeftUp},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	found := false
	for _, s := range spans {
		if s.Intent.Kind == model.IntentClicking {
			found = true
		}
	}
	assert.True(t, found, "expected a clicking span from an isolated leftDown")
}

func TestClassify_AppBundleChangeProducesSwitchingSpan(t *testing.T) {
	input := model.RecordingInput{
		Duration: 10,
		MouseMoves: []model.MouseMoveSample{
			{Time: 1.0, Position: geometry.Point{X: 0.1, Y: 0.1}, AppBundleID: "com.apple.finder"},
			{Time: 2.0, Position: geometry.Point{X: 0.2, Y: 0.2}, AppBundleID: "com.apple.safari"},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	found := false
	for _, s := range spans {
		if s.Intent.Kind == model.IntentSwitching {
			found = true
			assert.LessOrEqual(t, s.Duration(), 0.5+1e-9)
		}
	}
	assert.True(t, found, "expected a switching span at the appBundleID change")
}

func TestClassify_LongGapWithoutMotionIsIdle(t *testing.T) {
	input := model.RecordingInput{
		Duration: 20,
		Clicks: []model.ClickEvent{
			{Time: 1.0, Position: geometry.Point{X: 0.5, Y: 0.5}, Type: model.LeftDown},
			{Time: 1.05, Position: geometry.Point{X: 0.5, Y: 0.5}, Type: model.LeftUp},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	assertCoversDuration(t, spans, 20)
	var tailIdle bool
	for _, s := range spans {
		if s.Intent.Kind == model.IntentIdle && s.Duration() >= 5 {
			tailIdle = true
		}
	}
	assert.True(t, tailIdle, "expected the long silent tail to be idle")
}

func TestClassify_ShortGapWithMotionIsReading(t *testing.T) {
	input := model.RecordingInput{
		Duration: 6,
		MouseMoves: []model.MouseMoveSample{
			{Time: 1.0, Position: geometry.Point{X: 0.3, Y: 0.3}},
			{Time: 1.5, Position: geometry.Point{X: 0.31, Y: 0.3}},
			{Time: 2.0, Position: geometry.Point{X: 0.32, Y: 0.31}},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	assertCoversDuration(t, spans, 6)
	found := false
	for _, s := range spans {
		if s.Intent.Kind == model.IntentReading {
			found = true
		}
	}
	assert.True(t, found, "expected a reading span over mouse motion without clicks/keys")
}

func TestClassify_SpansAreSortedAndNonOverlapping(t *testing.T) {
	input := model.RecordingInput{
		Duration: 30,
		Keys: []model.KeyEvent{
			{Time: 1.0, Type: model.KeyDown, Character: 'a'},
			{Time: 1.2, Type: model.KeyDown, Character: 'b'},
		},
		Clicks: []model.ClickEvent{
			{Time: 5.0, Position: geometry.Point{X: 0.5, Y: 0.5}, Type: model.LeftDown},
			{Time: 5.05, Position: geometry.Point{X: 0.5, Y: 0.5}, Type: model.LeftUp},
		},
		Drags: []model.DragEvent{
			{StartTime: 10, EndTime: 12, StartPos: geometry.Point{X: 0.1, Y: 0.1}, EndPos: geometry.Point{X: 0.4, Y: 0.4}},
		},
	}
	spans := Classify(buildTimeline(t, input), DefaultSettings())

	assertCoversDuration(t, spans, 30)
	for i := 1; i < len(spans); i++ {
		assert.LessOrEqual(t, spans[i-1].EndTime, spans[i].StartTime)
	}
}
