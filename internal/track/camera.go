// Package track implements the CameraTrackEmitter, CursorTrackEmitter, and
// KeystrokeTrackEmitter, plus the SegmentOptimizer and post-hoc
// zoom-intensity pass applied after emission.
package track

import (
	"golang.org/x/exp/slices"

	"github.com/vedantwpatil/autodirector/internal/easing"
	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

type trim struct {
	left, right float64
}

// EmitCamera builds the final CameraTrack from a post-processed
// SimulatedPath.
func EmitCamera(path model.SimulatedPath, duration float64, settings Settings) model.CameraTrack {
	trims := computeTrims(path, settings)

	var segments []model.CameraSegment
	for i, seg := range path.SceneSegments {
		segments = append(segments, emitSceneSegments(seg, trims[i])...)
	}
	for i, tr := range path.TransitionSegments {
		segments = append(segments, emitTransitionSegments(tr, trims, i)...)
	}

	for i := range segments {
		clampSegmentCenters(&segments[i])
	}

	slices.SortFunc(segments, func(a, b model.CameraSegment) int {
		switch {
		case a.StartTime < b.StartTime:
			return -1
		case a.StartTime > b.StartTime:
			return 1
		default:
			return 0
		}
	})

	segments = optimizeSegments(segments, settings)
	segments = applyZoomIntensity(segments, settings)
	segments = trimToDuration(segments, duration)

	return model.CameraTrack{Segments: segments}
}

// computeTrims implements CameraTrackEmitter pass 1: charge
// half of each transition's duration to the neighboring scenes' trims,
// capped per neighbor, then proportionally shrink a scene's trims if their
// sum would exceed maxTrimFractionOfScene of its own duration.
func computeTrims(path model.SimulatedPath, settings Settings) []trim {
	trims := make([]trim, len(path.SceneSegments))
	for i, tr := range path.TransitionSegments {
		if i >= len(path.SceneSegments)-1 {
			continue
		}
		totalDur := tr.TransitionPlan.Style.TotalDuration()
		half := totalDur / 2

		leftScene := path.SceneSegments[i].Scene
		rightScene := path.SceneSegments[i+1].Scene
		leftCap := leftScene.Duration() * settings.MaxTrimFractionOfNeighbor
		rightCap := rightScene.Duration() * settings.MaxTrimFractionOfNeighbor

		trims[i].right += geometry.Clamp(half, 0, leftCap)
		trims[i+1].left += geometry.Clamp(half, 0, rightCap)
	}

	for i, seg := range path.SceneSegments {
		d := seg.Scene.Duration()
		if d <= 0 {
			continue
		}
		sum := trims[i].left + trims[i].right
		maxSum := d * settings.MaxTrimFractionOfScene
		if sum > maxSum && sum > 0 {
			scale := maxSum / sum
			trims[i].left *= scale
			trims[i].right *= scale
		}
	}
	return trims
}

// emitSceneSegments implements CameraTrackEmitter pass 2 for one scene.
func emitSceneSegments(seg model.SimulatedSceneSegment, tr trim) []model.CameraSegment {
	start := seg.Scene.StartTime + tr.left
	end := seg.Scene.EndTime - tr.right
	if end <= start {
		mid := (start + end) / 2
		t := interpolateSamples(seg.Samples, mid)
		return []model.CameraSegment{{
			StartTime: mid, EndTime: mid + 0.001,
			StartTransform: t, EndTransform: t,
			Easing: easing.NewLinear(),
		}}
	}

	if len(seg.Samples) <= 1 {
		t := interpolateSamples(seg.Samples, start)
		return []model.CameraSegment{{
			StartTime: start, EndTime: start + 0.001,
			StartTransform: t, EndTransform: t,
			Easing: easing.NewLinear(),
		}}
	}

	effective := []model.TimedTransform{{Time: start, Transform: interpolateSamples(seg.Samples, start)}}
	for _, s := range seg.Samples {
		if s.Time > start+1e-9 && s.Time < end-1e-9 {
			effective = append(effective, s)
		}
	}
	effective = append(effective, model.TimedTransform{Time: end, Transform: interpolateSamples(seg.Samples, end)})

	if len(effective) == 2 {
		return []model.CameraSegment{{
			StartTime: effective[0].Time, EndTime: effective[1].Time,
			StartTransform: effective[0].Transform, EndTransform: effective[1].Transform,
			Easing: easing.NewLinear(),
		}}
	}

	n := len(effective) - 1 // number of pairwise segments
	segments := make([]model.CameraSegment, 0, n)
	for i := 0; i < n; i++ {
		e := easing.NewLinear()
		switch {
		case i == 0:
			e = easing.NewEaseOut()
		case i == n-1:
			e = easing.NewEaseIn()
		case n == 3:
			e = easing.NewEaseInOut()
		}
		segments = append(segments, model.CameraSegment{
			StartTime: effective[i].Time, EndTime: effective[i+1].Time,
			StartTransform: effective[i].Transform, EndTransform: effective[i+1].Transform,
			Easing: e,
		})
	}
	return segments
}

func emitTransitionSegments(tr model.SimulatedTransitionSegment, trims []trim, idx int) []model.CameraSegment {
	if idx >= len(trims)-1 {
		return nil
	}
	transStart := tr.FromScene.EndTime - trims[idx].right
	transEnd := tr.ToScene.StartTime + trims[idx+1].left
	if transEnd < transStart {
		transEnd = transStart
	}
	actualDur := transEnd - transStart

	switch tr.TransitionPlan.Style.Kind {
	case model.TransitionCut:
		cutEnd := transStart + 0.01
		if cutEnd > transEnd && transEnd > transStart {
			cutEnd = transEnd
		}
		return []model.CameraSegment{{
			StartTime: transStart, EndTime: cutEnd,
			StartTransform: tr.StartTransform, EndTransform: tr.EndTransform,
			Easing: easing.NewLinear(),
		}}
	case model.TransitionZoomOutAndIn:
		style := tr.TransitionPlan.Style
		total := style.OutDuration + style.InDuration
		if total <= 0 {
			total = 1
		}
		midTime := transStart + actualDur*style.OutDuration/total
		mid := model.TransformValue{
			Zoom:   1.0,
			Center: geometry.Midpoint(tr.StartTransform.Center, tr.EndTransform.Center),
		}
		return []model.CameraSegment{
			{StartTime: transStart, EndTime: midTime, StartTransform: tr.StartTransform, EndTransform: mid, Easing: tr.TransitionPlan.Easing},
			{StartTime: midTime, EndTime: transEnd, StartTransform: mid, EndTransform: tr.EndTransform, Easing: tr.TransitionPlan.Easing},
		}
	default: // directPan
		return []model.CameraSegment{{
			StartTime: transStart, EndTime: transEnd,
			StartTransform: tr.StartTransform, EndTransform: tr.EndTransform,
			Easing: tr.TransitionPlan.Easing,
		}}
	}
}

// interpolateSamples linearly interpolates the transform at time t from a
// sorted sample list, clamping to the endpoints outside the sample range.
func interpolateSamples(samples []model.TimedTransform, t float64) model.TransformValue {
	if len(samples) == 0 {
		return model.TransformValue{Zoom: 1, Center: geometry.Point{X: 0.5, Y: 0.5}}
	}
	if t <= samples[0].Time {
		return samples[0].Transform
	}
	if t >= samples[len(samples)-1].Time {
		return samples[len(samples)-1].Transform
	}
	for i := 0; i+1 < len(samples); i++ {
		a, b := samples[i], samples[i+1]
		if t >= a.Time && t <= b.Time {
			span := b.Time - a.Time
			if span <= 0 {
				return a.Transform
			}
			frac := (t - a.Time) / span
			return model.TransformValue{
				Zoom:   a.Transform.Zoom + (b.Transform.Zoom-a.Transform.Zoom)*frac,
				Center: geometry.Lerp(a.Transform.Center, b.Transform.Center, frac),
			}
		}
	}
	return samples[len(samples)-1].Transform
}

// clampSegmentCenters re-clamps both endpoint centers so the viewport stays
// inside the unit square.
func clampSegmentCenters(seg *model.CameraSegment) {
	seg.StartTransform.Center = clampViewportCenter(seg.StartTransform.Center, seg.StartTransform.Zoom)
	seg.EndTransform.Center = clampViewportCenter(seg.EndTransform.Center, seg.EndTransform.Zoom)
}

func clampViewportCenter(c geometry.Point, zoom float64) geometry.Point {
	h := geometry.HalfViewport(zoom)
	return geometry.Point{X: geometry.Clamp(c.X, h, 1-h), Y: geometry.Clamp(c.Y, h, 1-h)}
}

// trimToDuration drops/truncates any segment extending past duration.
func trimToDuration(segments []model.CameraSegment, duration float64) []model.CameraSegment {
	var out []model.CameraSegment
	for _, s := range segments {
		if s.StartTime >= duration {
			continue
		}
		if s.EndTime > duration {
			s.EndTime = duration
		}
		out = append(out, s)
	}
	return out
}
