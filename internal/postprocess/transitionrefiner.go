package postprocess

import "github.com/vedantwpatil/autodirector/internal/model"

// refineTransitions implements TransitionRefiner: pins
// every transition's start/end transforms to the exact adjacent scene
// samples, guaranteeing continuity after HoldEnforcer may have shifted
// scenes.
func refineTransitions(path model.SimulatedPath) model.SimulatedPath {
	for i := range path.TransitionSegments {
		if i >= len(path.SceneSegments)-1 {
			continue
		}
		from := path.SceneSegments[i].Samples
		to := path.SceneSegments[i+1].Samples
		if len(from) == 0 || len(to) == 0 {
			continue
		}
		path.TransitionSegments[i].StartTransform = from[len(from)-1].Transform
		path.TransitionSegments[i].EndTransform = to[0].Transform
	}
	return path
}
