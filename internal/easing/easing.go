// Package easing implements the Easing sum type: linear,
// the three standard cubic-Bézier named curves, a general cubic-Bézier, and
// a spring curve normalized to a unit interval regardless of duration.
package easing

import "math"

// Kind discriminates the closed Easing sum.
type Kind int

const (
	Linear Kind = iota
	EaseIn
	EaseOut
	EaseInOut
	CubicBezier
	Spring
)

// Easing is a value-typed easing curve. Apply always satisfies
// Apply(0, d) == 0 and Apply(1, d) == 1 for any d > 0.
type Easing struct {
	Kind Kind

	// CubicBezier control points (P0=(0,0), P3=(1,1) implicit).
	P1X, P1Y, P2X, P2Y float64

	// Spring parameters.
	DampingRatio float64 // ζ
	Response     float64 // r, seconds
}

func NewLinear() Easing    { return Easing{Kind: Linear} }
func NewEaseIn() Easing    { return Easing{Kind: EaseIn} }
func NewEaseOut() Easing   { return Easing{Kind: EaseOut} }
func NewEaseInOut() Easing { return Easing{Kind: EaseInOut} }

// NewCubicBezier builds a custom cubic-Bézier easing with the two interior
// control points; P0 and P3 are fixed at (0,0) and (1,1).
func NewCubicBezier(p1x, p1y, p2x, p2y float64) Easing {
	return Easing{Kind: CubicBezier, P1X: p1x, P1Y: p1y, P2X: p2x, P2Y: p2y}
}

// NewSpring builds a spring easing. dampingRatio == 1 is critically damped
// (monotonically non-decreasing); < 1 overshoots and is clamped into
// [0, 1] by Apply.
func NewSpring(dampingRatio, response float64) Easing {
	return Easing{Kind: Spring, DampingRatio: dampingRatio, Response: response}
}

// standard cubic-bezier control points matching the CSS named curves.
var (
	easeInCtl    = [4]float64{0.42, 0, 1, 1}
	easeOutCtl   = [4]float64{0, 0, 0.58, 1}
	easeInOutCtl = [4]float64{0.42, 0, 0.58, 1}
)

// Apply evaluates the easing at t ∈ [0,1] over a segment of the given
// duration (seconds). duration only matters for Spring, whose raw impulse
// response is a function of elapsed time, not of t alone; the result is
// still renormalized so Apply(0)==0 and Apply(1)==1.
func (e Easing) Apply(t, duration float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e.Kind {
	case Linear:
		return t
	case EaseIn:
		return cubicBezierY(t, easeInCtl)
	case EaseOut:
		return cubicBezierY(t, easeOutCtl)
	case EaseInOut:
		return cubicBezierY(t, easeInOutCtl)
	case CubicBezier:
		return cubicBezierY(t, [4]float64{e.P1X, e.P1Y, e.P2X, e.P2Y})
	case Spring:
		return e.springApply(t, duration)
	default:
		return t
	}
}

// Derivative returns d/dt Apply(t, duration), used by track interpolation
// consumers that want velocity-continuous playback.
func (e Easing) Derivative(t, duration float64) float64 {
	const h = 1e-4
	lo, hi := t-h, t+h
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	if hi == lo {
		return 0
	}
	return (e.Apply(hi, duration) - e.Apply(lo, duration)) / (hi - lo)
}

// cubicBezierY evaluates the y-coordinate of a cubic Bézier curve (with
// P0=(0,0), P3=(1,1)) at the x-coordinate t, solving for the bezier
// parameter u via Newton's method then bisection fallback.
func cubicBezierY(t float64, ctl [4]float64) float64 {
	p1x, p1y, p2x, p2y := ctl[0], ctl[1], ctl[2], ctl[3]

	bezX := func(u float64) float64 {
		mu := 1 - u
		return 3*mu*mu*u*p1x + 3*mu*u*u*p2x + u*u*u
	}
	bezY := func(u float64) float64 {
		mu := 1 - u
		return 3*mu*mu*u*p1y + 3*mu*u*u*p2y + u*u*u
	}
	bezXDeriv := func(u float64) float64 {
		mu := 1 - u
		return 3*mu*mu*p1x + 6*mu*u*(p2x-p1x) + 3*u*u*(1-p2x)
	}

	u := t
	for i := 0; i < 8; i++ {
		x := bezX(u) - t
		d := bezXDeriv(u)
		if math.Abs(d) < 1e-9 {
			break
		}
		u -= x / d
		u = math.Max(0, math.Min(1, u))
	}
	// bisection cleanup in case Newton diverged
	lo, hi := 0.0, 1.0
	for i := 0; i < 20 && math.Abs(bezX(u)-t) > 1e-6; i++ {
		if bezX(u) < t {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return bezY(u)
}

// springApply computes a unit-normalized critically-damped/underdamped
// spring response. The raw physical response solves x” + 2ζωx' + ω²x = ω²
// with x(0)=0, x'(0)=0, converging to 1; response r sets ω = 2π/r. The
// curve is evaluated at "real" elapsed time t*duration, then the whole
// curve is rescaled so raw(0)=0 and raw(1 at t=1)=1 exactly, and clamped
// into [0,1] for ζ<1 overshoot.
func (e Easing) springApply(t, duration float64) float64 {
	zeta := e.DampingRatio
	if zeta <= 0 {
		zeta = 1
	}
	response := e.Response
	if response <= 0 {
		response = 0.5
	}
	if duration <= 0 {
		duration = 1
	}
	omega := 2 * math.Pi / response

	raw := func(u float64) float64 {
		elapsed := u * duration
		if zeta >= 1 {
			// critically damped (zeta==1) or overdamped: monotone rise
			wd := omega
			return 1 - math.Exp(-wd*elapsed)*(1+wd*elapsed)
		}
		wd := omega * math.Sqrt(1-zeta*zeta)
		decay := math.Exp(-zeta * omega * elapsed)
		return 1 - decay*(math.Cos(wd*elapsed)+(zeta*omega/wd)*math.Sin(wd*elapsed))
	}

	r0 := raw(0)
	r1 := raw(1)
	if math.Abs(r1-r0) < 1e-12 {
		return t
	}
	v := (raw(t) - r0) / (r1 - r0)
	return math.Max(0, math.Min(1, v))
}
