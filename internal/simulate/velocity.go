package simulate

import (
	"github.com/sajari/regression"

	"github.com/vedantwpatil/autodirector/internal/geometry"
)

// minVelocitySamples is the smallest window size from which a regression
// fit is attempted; below it the estimator falls back to two-point finite
// difference.
const minVelocitySamples = 3

// estimateVelocity fits separate linear regressions of X(t) and Y(t) over
// the trailing window of mouse samples and returns their slopes as a
// per-second velocity vector, for the CursorFollowController's predictive
// look-ahead.
func estimateVelocity(window []timedPosition) geometry.Point {
	if len(window) < 2 {
		return geometry.Point{}
	}
	if len(window) < minVelocitySamples {
		first, last := window[0], window[len(window)-1]
		dt := last.time - first.time
		if dt <= 0 {
			return geometry.Point{}
		}
		return geometry.Point{
			X: (last.position.X - first.position.X) / dt,
			Y: (last.position.Y - first.position.Y) / dt,
		}
	}

	rx := new(regression.Regression)
	rx.SetObserved("x")
	rx.SetVar(0, "t")
	ry := new(regression.Regression)
	ry.SetObserved("y")
	ry.SetVar(0, "t")

	for _, p := range window {
		rx.AddDataPoint(regression.DataPoint(p.position.X, []float64{p.time}))
		ry.AddDataPoint(regression.DataPoint(p.position.Y, []float64{p.time}))
	}

	if err := rx.Run(); err != nil {
		return geometry.Point{}
	}
	if err := ry.Run(); err != nil {
		return geometry.Point{}
	}

	return geometry.Point{X: rx.Coeff(1), Y: ry.Coeff(1)}
}

// timedPosition is a time-stamped normalized position sample.
type timedPosition struct {
	time     float64
	position geometry.Point
}
