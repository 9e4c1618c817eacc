package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autodirector/internal/easing"
	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

func twoSampleScene(id string, start, end, zoom float64, center geometry.Point) model.SimulatedSceneSegment {
	sc := model.CameraScene{ID: id, StartTime: start, EndTime: end}
	plan := model.ShotPlan{Scene: sc, IdealZoom: zoom, IdealCenter: center}
	return model.SimulatedSceneSegment{
		Scene:    sc,
		ShotPlan: plan,
		Samples: []model.TimedTransform{
			{Time: start, Transform: model.TransformValue{Zoom: zoom, Center: center}},
			{Time: end, Transform: model.TransformValue{Zoom: zoom, Center: center}},
		},
	}
}

func TestEmitCamera_SingleSceneProducesOneSegment(t *testing.T) {
	path := model.SimulatedPath{
		SceneSegments: []model.SimulatedSceneSegment{
			twoSampleScene("a", 0, 5, 1.5, geometry.Point{X: 0.5, Y: 0.5}),
		},
	}
	track := EmitCamera(path, 5, DefaultSettings())
	require.Len(t, track.Segments, 1)
	assert.Equal(t, 0.0, track.Segments[0].StartTime)
	assert.Equal(t, 5.0, track.Segments[0].EndTime)
}

func TestEmitCamera_DirectPanTransitionAbutsScenes(t *testing.T) {
	scenes := []model.SimulatedSceneSegment{
		twoSampleScene("a", 0, 5, 1.5, geometry.Point{X: 0.3, Y: 0.3}),
		twoSampleScene("b", 5, 10, 1.5, geometry.Point{X: 0.6, Y: 0.6}),
	}
	transitions := []model.SimulatedTransitionSegment{
		{
			FromScene: scenes[0].Scene, ToScene: scenes[1].Scene,
			TransitionPlan: model.TransitionPlan{Style: model.TransitionStyle{Kind: model.TransitionDirectPan, Duration: 0.4}, Easing: easing.NewSpring(1, 0.4)},
			StartTransform: model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.3, Y: 0.3}},
			EndTransform:   model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.6, Y: 0.6}},
		},
	}
	path := model.SimulatedPath{SceneSegments: scenes, TransitionSegments: transitions}
	track := EmitCamera(path, 10, DefaultSettings())
	require.GreaterOrEqual(t, len(track.Segments), 3)

	for i := 1; i < len(track.Segments); i++ {
		assert.LessOrEqual(t, track.Segments[i-1].EndTime, track.Segments[i].StartTime+1e-6)
	}
}

func TestEmitCamera_ZoomOutAndInSplitsIntoTwoSegments(t *testing.T) {
	scenes := []model.SimulatedSceneSegment{
		twoSampleScene("a", 0, 5, 2.0, geometry.Point{X: 0.05, Y: 0.05}),
		twoSampleScene("b", 5, 10, 2.0, geometry.Point{X: 0.95, Y: 0.95}),
	}
	transitions := []model.SimulatedTransitionSegment{
		{
			FromScene: scenes[0].Scene, ToScene: scenes[1].Scene,
			TransitionPlan: model.TransitionPlan{Style: model.TransitionStyle{Kind: model.TransitionZoomOutAndIn, OutDuration: 0.3, InDuration: 0.4}, Easing: easing.NewSpring(1, 0.4)},
			StartTransform: model.TransformValue{Zoom: 2.0, Center: geometry.Point{X: 0.05, Y: 0.05}},
			EndTransform:   model.TransformValue{Zoom: 2.0, Center: geometry.Point{X: 0.95, Y: 0.95}},
		},
	}
	path := model.SimulatedPath{SceneSegments: scenes, TransitionSegments: transitions}
	track := EmitCamera(path, 10, DefaultSettings())

	var zoomOutSegs int
	for _, s := range track.Segments {
		if s.EndTransform.Zoom == 1.0 || s.StartTransform.Zoom == 1.0 {
			zoomOutSegs++
		}
	}
	assert.GreaterOrEqual(t, zoomOutSegs, 2)
}

func TestEmitCamera_CutTransitionIsVeryShort(t *testing.T) {
	scenes := []model.SimulatedSceneSegment{
		twoSampleScene("a", 0, 5, 1.5, geometry.Point{X: 0.3, Y: 0.3}),
		twoSampleScene("b", 5, 10, 1.0, geometry.Point{X: 0.5, Y: 0.5}),
	}
	transitions := []model.SimulatedTransitionSegment{
		{
			FromScene: scenes[0].Scene, ToScene: scenes[1].Scene,
			TransitionPlan: model.TransitionPlan{Style: model.TransitionStyle{Kind: model.TransitionCut}, Easing: easing.NewLinear()},
			StartTransform: model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.3, Y: 0.3}},
			EndTransform:   model.TransformValue{Zoom: 1.0, Center: geometry.Point{X: 0.5, Y: 0.5}},
		},
	}
	path := model.SimulatedPath{SceneSegments: scenes, TransitionSegments: transitions}
	track := EmitCamera(path, 10, DefaultSettings())

	found := false
	for _, s := range track.Segments {
		if s.EndTime-s.StartTime <= 0.011 {
			found = true
		}
	}
	assert.True(t, found, "expected a near-instant cut segment")
}

func TestEmitCamera_TrimsPastDuration(t *testing.T) {
	path := model.SimulatedPath{
		SceneSegments: []model.SimulatedSceneSegment{
			twoSampleScene("a", 0, 12, 1.5, geometry.Point{X: 0.5, Y: 0.5}),
		},
	}
	track := EmitCamera(path, 10, DefaultSettings())
	for _, s := range track.Segments {
		assert.LessOrEqual(t, s.EndTime, 10.0+1e-9)
	}
}

func TestScaleZoom_NeverGoesBelowOne(t *testing.T) {
	assert.Equal(t, 1.0, scaleZoom(1.0, 0.5))
	assert.InDelta(t, 1.5, scaleZoom(2.0, 0.5), 1e-9)
}

func TestOptimizeSegments_MergesTrueHold(t *testing.T) {
	segments := []model.CameraSegment{
		{StartTime: 0, EndTime: 2, StartTransform: model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.5, Y: 0.5}}, EndTransform: model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.5, Y: 0.5}}},
		{StartTime: 2, EndTime: 4, StartTransform: model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.5, Y: 0.5}}, EndTransform: model.TransformValue{Zoom: 1.5, Center: geometry.Point{X: 0.5, Y: 0.5}}},
	}
	out := optimizeSegments(segments, DefaultSettings())
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].StartTime)
	assert.Equal(t, 4.0, out[0].EndTime)
}

func TestEmitCursor_CoversWholeDuration(t *testing.T) {
	ct := EmitCursor(42, DefaultSettings())
	require.Len(t, ct.Segments, 1)
	assert.Equal(t, 0.0, ct.Segments[0].StartTime)
	assert.Equal(t, 42.0, ct.Segments[0].EndTime)
	assert.True(t, ct.Segments[0].Visible)
}
