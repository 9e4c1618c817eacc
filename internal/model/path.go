package model

import (
	"github.com/vedantwpatil/autodirector/internal/easing"
	"github.com/vedantwpatil/autodirector/internal/geometry"
)

// TransformValue is a camera zoom/center pair.
type TransformValue struct {
	Zoom   float64
	Center geometry.Point
}

// ApproxEqual reports whether two transforms are within tolerance on both
// zoom and each center axis. Used by idempotence/continuity checks.
func (t TransformValue) ApproxEqual(o TransformValue, zoomTol, centerTol float64) bool {
	return absf(t.Zoom-o.Zoom) <= zoomTol &&
		absf(t.Center.X-o.Center.X) <= centerTol &&
		absf(t.Center.Y-o.Center.Y) <= centerTol
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TimedTransform is a transform sampled at a point in time.
type TimedTransform struct {
	Time      float64
	Transform TransformValue
}

// SimulatedSceneSegment is one scene's simulated samples.
type SimulatedSceneSegment struct {
	Scene    CameraScene
	ShotPlan ShotPlan
	Samples  []TimedTransform
}

// SimulatedTransitionSegment is the simulated handoff between two scenes.
type SimulatedTransitionSegment struct {
	FromScene      CameraScene
	ToScene        CameraScene
	TransitionPlan TransitionPlan
	StartTransform TransformValue
	EndTransform   TransformValue
}

// SimulatedPath is the full output of the CameraSimulator stage.
type SimulatedPath struct {
	SceneSegments      []SimulatedSceneSegment
	TransitionSegments []SimulatedTransitionSegment
}

// CameraSegment is an atomic interpolation step exposed to the renderer.
type CameraSegment struct {
	StartTime      float64
	EndTime        float64
	StartTransform TransformValue
	EndTransform   TransformValue
	Easing         easing.Easing
}

// CameraTrack is the ordered, gap-free (within 0.001s) list of camera
// segments.
type CameraTrack struct {
	Segments []CameraSegment
}

// CursorStyle is the closed sum of cursor presentation styles.
type CursorStyle int

const (
	CursorArrow CursorStyle = iota
)

// CursorSegment is a time-bounded cursor-style overlay descriptor.
type CursorSegment struct {
	StartTime, EndTime float64
	Style              CursorStyle
	Visible            bool
	Scale              float64
}

// CursorTrack is the ordered list of cursor segments.
type CursorTrack struct {
	Segments []CursorSegment
}

// KeystrokeSegment is a time-bounded keystroke-overlay descriptor.
type KeystrokeSegment struct {
	StartTime, EndTime float64
	DisplayText        string
	FadeIn, FadeOut    float64
}

// KeystrokeTrack is the ordered list of keystroke segments.
type KeystrokeTrack struct {
	Segments []KeystrokeSegment
}

// GeneratedTimeline is the CORE's single output value.
type GeneratedTimeline struct {
	CameraTrack    CameraTrack
	CursorTrack    CursorTrack
	KeystrokeTrack KeystrokeTrack
}
