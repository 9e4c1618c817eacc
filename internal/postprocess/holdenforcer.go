package postprocess

import "github.com/vedantwpatil/autodirector/internal/model"

// requiredHold returns the minimum hold duration for a shot plan's zoom.
func requiredHold(plan model.ShotPlan, settings Settings) float64 {
	if plan.IdealZoom > settings.ZoomInThreshold {
		return settings.MinZoomInHold
	}
	return settings.MinZoomOutHold
}

// enforceHolds implements HoldEnforcer: stretches any
// scene shorter than its required hold, shifting every later scene forward
// by the cumulative deficit and rescaling each shifted scene's samples
// linearly into its new interval.
func enforceHolds(path model.SimulatedPath, settings Settings) model.SimulatedPath {
	segments := path.SceneSegments
	transitions := path.TransitionSegments
	shift := 0.0

	for i := range segments {
		sc := &segments[i].Scene
		origStart, origEnd := sc.StartTime, sc.EndTime
		sc.StartTime += shift
		sc.EndTime += shift

		required := requiredHold(segments[i].ShotPlan, settings)
		duration := origEnd - origStart
		if duration < required {
			deficit := required - duration
			sc.EndTime += deficit
			shift += deficit
		}

		rescaleSamples(segments[i].Samples, origStart, origEnd, sc.StartTime, sc.EndTime)

		// keep the transitions straddling this scene in sync with its
		// shifted StartTime/EndTime; simulate bakes in the pre-shift copy.
		if i-1 >= 0 && i-1 < len(transitions) {
			transitions[i-1].ToScene = *sc
		}
		if i < len(transitions) {
			transitions[i].FromScene = *sc
		}
	}

	return model.SimulatedPath{SceneSegments: segments, TransitionSegments: transitions}
}

// rescaleSamples linearly maps each sample's time from [oldStart, oldEnd]
// into [newStart, newEnd], in place.
func rescaleSamples(samples []model.TimedTransform, oldStart, oldEnd, newStart, newEnd float64) {
	oldSpan := oldEnd - oldStart
	newSpan := newEnd - newStart
	for i := range samples {
		if oldSpan <= 0 {
			samples[i].Time = newStart
			continue
		}
		frac := (samples[i].Time - oldStart) / oldSpan
		samples[i].Time = newStart + frac*newSpan
	}
}
