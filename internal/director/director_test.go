package director

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

func sampleRecording() model.RecordingInput {
	var moves []model.MouseMoveSample
	for i := 0; i < 20; i++ {
		t := float64(i) * 0.5
		moves = append(moves, model.MouseMoveSample{
			Time:        t,
			Position:    geometry.Point{X: 0.2 + 0.01*float64(i), Y: 0.3},
			AppBundleID: "com.example.editor",
		})
	}

	clicks := []model.ClickEvent{
		{Time: 1.0, Position: geometry.Point{X: 0.25, Y: 0.3}, Type: model.LeftDown, AppBundleID: "com.example.editor"},
		{Time: 1.05, Position: geometry.Point{X: 0.25, Y: 0.3}, Type: model.LeftUp, AppBundleID: "com.example.editor"},
	}

	var keys []model.KeyEvent
	for i := 0; i < 10; i++ {
		keys = append(keys, model.KeyEvent{
			Time:      3.0 + float64(i)*0.2,
			Character: rune('a' + i%26),
			Type:      model.KeyDown,
		})
	}

	return model.RecordingInput{
		Duration:     12.0,
		FrameRate:    30,
		ScreenBounds: model.PixelRect{MinX: 0, MinY: 0, MaxX: 1920, MaxY: 1080},
		MouseMoves:   moves,
		Clicks:       clicks,
		Keys:         keys,
	}
}

func TestGenerate_ProducesNonEmptyTracks(t *testing.T) {
	out := Generate(sampleRecording(), DefaultSettings())
	require.NotEmpty(t, out.CameraTrack.Segments)
	require.NotEmpty(t, out.CursorTrack.Segments)
}

func TestGenerate_CameraTrackStaysWithinDuration(t *testing.T) {
	input := sampleRecording()
	out := Generate(input, DefaultSettings())
	for _, s := range out.CameraTrack.Segments {
		assert.LessOrEqual(t, s.StartTime, input.Duration+1e-6)
		assert.LessOrEqual(t, s.EndTime, input.Duration+1e-6)
		assert.GreaterOrEqual(t, s.StartTime, -1e-6)
	}
}

func TestGenerate_CameraTrackIsOrderedAndGapFree(t *testing.T) {
	out := Generate(sampleRecording(), DefaultSettings())
	segs := out.CameraTrack.Segments
	for i := 1; i < len(segs); i++ {
		assert.LessOrEqual(t, segs[i-1].EndTime, segs[i].StartTime+0.002)
	}
}

func TestGenerate_KeystrokeTrackReflectsTypedCharacters(t *testing.T) {
	out := Generate(sampleRecording(), DefaultSettings())
	assert.NotEmpty(t, out.KeystrokeTrack.Segments)
}

func TestGenerate_EmptyRecordingProducesSingleIdleCameraSegment(t *testing.T) {
	input := model.RecordingInput{Duration: 5.0, ScreenBounds: model.PixelRect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}}
	out := Generate(input, DefaultSettings())
	require.NotEmpty(t, out.CameraTrack.Segments)
	for _, s := range out.CameraTrack.Segments {
		assert.InDelta(t, 1.0, s.StartTransform.Zoom, 1e-9)
	}
}

func TestGenerate_KeystrokeDisabledYieldsNoSegments(t *testing.T) {
	settings := DefaultSettings()
	settings.Track.KeystrokeEnabled = false
	out := Generate(sampleRecording(), settings)
	assert.Empty(t, out.KeystrokeTrack.Segments)
}
