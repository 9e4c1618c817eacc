package postprocess

import (
	"sort"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

// mergeSegments implements SegmentMerger in its two
// passes: first absorbing degenerate-duration scenes into a longer
// neighbor, then merging adjacent scenes whose shot plans are close enough
// to be indistinguishable.
func mergeSegments(path model.SimulatedPath, settings Settings) model.SimulatedPath {
	path = absorbShortScenes(path, settings)
	path = mergeSimilarNeighbors(path, settings)
	return path
}

// absorbShortScenes merges any scene shorter than MinSegmentDuration into
// its longer neighbor (the following scene on a tie), retargeting
// transitions by scene identity.
func absorbShortScenes(path model.SimulatedPath, settings Settings) model.SimulatedPath {
	segments := path.SceneSegments
	if len(segments) <= 1 {
		return path
	}

	var out []model.SimulatedSceneSegment
	retarget := map[string]string{}
	removedTransitionBetween := map[[2]string]bool{}

	i := 0
	for i < len(segments) {
		cur := segments[i]
		if cur.Scene.Duration() >= settings.MinSegmentDuration || len(segments) == 1 {
			out = append(out, cur)
			i++
			continue
		}

		// absorb into the longer neighbor: the following scene, or the
		// previous already-emitted one when that is longer or nothing follows.
		hasPrev := len(out) > 0
		if i+1 < len(segments) && (!hasPrev || segments[i+1].Scene.Duration() >= out[len(out)-1].Scene.Duration()) {
			next := segments[i+1]
			merged := mergeTwoScenes(cur, next, next.ShotPlan)
			removedTransitionBetween[[2]string{cur.Scene.ID, next.Scene.ID}] = true
			retarget[cur.Scene.ID] = merged.Scene.ID
			retarget[next.Scene.ID] = merged.Scene.ID
			segments[i+1] = merged
			i++
			continue
		}
		if hasPrev {
			prev := out[len(out)-1]
			merged := mergeTwoScenes(prev, cur, prev.ShotPlan)
			removedTransitionBetween[[2]string{prev.Scene.ID, cur.Scene.ID}] = true
			retarget[prev.Scene.ID] = merged.Scene.ID
			retarget[cur.Scene.ID] = merged.Scene.ID
			out[len(out)-1] = merged
			i++
			continue
		}
		out = append(out, cur)
		i++
	}

	var transitions []model.SimulatedTransitionSegment
	for _, tr := range path.TransitionSegments {
		fromID, toID := tr.FromScene.ID, tr.ToScene.ID
		if removedTransitionBetween[[2]string{fromID, toID}] {
			continue
		}
		if id, ok := retarget[fromID]; ok {
			tr.FromScene.ID = id
		}
		if id, ok := retarget[toID]; ok {
			tr.ToScene.ID = id
		}
		if tr.FromScene.ID == tr.ToScene.ID {
			continue
		}
		transitions = append(transitions, tr)
	}

	return model.SimulatedPath{SceneSegments: out, TransitionSegments: transitions}
}

// mergeSimilarNeighbors merges adjacent scenes whose shot plans differ by
// no more than the configured zoom/center tolerances.
func mergeSimilarNeighbors(path model.SimulatedPath, settings Settings) model.SimulatedPath {
	segments := path.SceneSegments
	if len(segments) <= 1 {
		return path
	}

	var out []model.SimulatedSceneSegment
	droppedTransitions := map[[2]string]bool{}

	out = append(out, segments[0])
	for _, next := range segments[1:] {
		last := out[len(out)-1]
		if similarEnough(last.ShotPlan, next.ShotPlan, settings) {
			merged := mergeTwoScenes(last, next, last.ShotPlan)
			droppedTransitions[[2]string{last.Scene.ID, next.Scene.ID}] = true
			out[len(out)-1] = merged
			continue
		}
		out = append(out, next)
	}

	var transitions []model.SimulatedTransitionSegment
	for _, tr := range path.TransitionSegments {
		if droppedTransitions[[2]string{tr.FromScene.ID, tr.ToScene.ID}] {
			continue
		}
		transitions = append(transitions, tr)
	}

	return model.SimulatedPath{SceneSegments: out, TransitionSegments: transitions}
}

func similarEnough(a, b model.ShotPlan, settings Settings) bool {
	return absDiff(a.IdealZoom, b.IdealZoom) <= settings.MaxZoomDiffForMerge &&
		absDiff(a.IdealCenter.X, b.IdealCenter.X) <= settings.MaxCenterDiffForMerge &&
		absDiff(a.IdealCenter.Y, b.IdealCenter.Y) <= settings.MaxCenterDiffForMerge
}

// mergeTwoScenes concatenates two adjacent scene segments into one, keeping
// the given absorber shot plan. When a's last sample lies after b's first,
// an interpolated midpoint sample is added between them; a time gap between
// the two sample lists is left as it is.
func mergeTwoScenes(a, b model.SimulatedSceneSegment, absorberPlan model.ShotPlan) model.SimulatedSceneSegment {
	samples := append([]model.TimedTransform(nil), a.Samples...)
	if len(samples) > 0 && len(b.Samples) > 0 {
		last := samples[len(samples)-1]
		first := b.Samples[0]
		if last.Time < first.Time-1e-9 {
			// already contiguous via distinct timestamps, nothing to bridge
		} else if last.Time > first.Time+1e-9 {
			// overlapping timelines (post hold-shift): insert a bridging
			// sample at the midpoint to keep times monotonic.
			mid := model.TimedTransform{
				Time: (last.Time + first.Time) / 2,
				Transform: model.TransformValue{
					Zoom:   (last.Transform.Zoom + first.Transform.Zoom) / 2,
					Center: geometry.Midpoint(last.Transform.Center, first.Transform.Center),
				},
			}
			samples = append(samples, mid)
		}
	}
	samples = append(samples, b.Samples...)
	sort.Slice(samples, func(i, j int) bool { return samples[i].Time < samples[j].Time })

	merged := model.CameraScene{
		ID:            a.Scene.ID,
		StartTime:     a.Scene.StartTime,
		EndTime:       b.Scene.EndTime,
		PrimaryIntent: absorberPlan.Scene.PrimaryIntent,
		FocusRegions:  append(append([]geometry.NormRect{}, a.Scene.FocusRegions...), b.Scene.FocusRegions...),
		AppContext:    a.Scene.AppContext,
	}
	if merged.AppContext == "" {
		merged.AppContext = b.Scene.AppContext
	}

	plan := absorberPlan
	plan.Scene = merged
	return model.SimulatedSceneSegment{Scene: merged, ShotPlan: plan, Samples: samples}
}
