// Package postprocess applies PathSmoother, HoldEnforcer, TransitionRefiner,
// and SegmentMerger to a SimulatedPath, in that order.
package postprocess

import "github.com/vedantwpatil/autodirector/internal/model"

// Run applies the full post-processing pipeline to path.
func Run(path model.SimulatedPath, settings Settings) model.SimulatedPath {
	path = smoothPath(path, settings)
	path = enforceHolds(path, settings)
	path = refineTransitions(path)
	path = mergeSegments(path, settings)
	return path
}
