package track

import (
	"math"

	"github.com/vedantwpatil/autodirector/internal/model"
)

// optimizeSegments implements SegmentOptimizer: merges
// consecutive camera segments that together form a true static hold.
func optimizeSegments(segments []model.CameraSegment, settings Settings) []model.CameraSegment {
	if !settings.MergeConsecutiveHolds || len(segments) < 2 {
		return segments
	}

	out := []model.CameraSegment{segments[0]}
	for _, b := range segments[1:] {
		a := out[len(out)-1]
		if formsHold(a, b, settings) {
			out[len(out)-1] = model.CameraSegment{
				StartTime: a.StartTime, EndTime: b.EndTime,
				StartTransform: a.StartTransform, EndTransform: b.EndTransform,
				Easing: a.Easing,
			}
			continue
		}
		out = append(out, b)
	}
	return out
}

// formsHold reports whether a and b join into a single static segment: the
// seam is continuous, the handoff transform barely moves, and the overall
// pair start-to-end is likewise static.
func formsHold(a, b model.CameraSegment, settings Settings) bool {
	if absDiff(b.StartTime, a.EndTime) >= 0.01 {
		return false
	}
	if !negligible(a.EndTransform, b.StartTransform, settings) {
		return false
	}
	return negligible(a.StartTransform, b.EndTransform, settings)
}

func negligible(a, b model.TransformValue, settings Settings) bool {
	return absDiff(a.Zoom, b.Zoom) < settings.NegligibleZoomDiff &&
		absDiff(a.Center.X, b.Center.X) < settings.NegligibleCenterDiff &&
		absDiff(a.Center.Y, b.Center.Y) < settings.NegligibleCenterDiff
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// applyZoomIntensity implements the post-hoc zoom-intensity pass: scales
// every emitted zoom's excursion above 1.0, re-clamping centers afterward.
func applyZoomIntensity(segments []model.CameraSegment, settings Settings) []model.CameraSegment {
	for i := range segments {
		segments[i].StartTransform.Zoom = scaleZoom(segments[i].StartTransform.Zoom, settings.ZoomIntensity)
		segments[i].EndTransform.Zoom = scaleZoom(segments[i].EndTransform.Zoom, settings.ZoomIntensity)
		clampSegmentCenters(&segments[i])
	}
	return segments
}

func scaleZoom(zoom, intensity float64) float64 {
	return math.Max(1, 1+(zoom-1)*intensity)
}
