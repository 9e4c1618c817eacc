// Package geometry implements the normalized-coordinate math shared by
// every stage of the pipeline: points, pixel rects, viewport containment,
// and the viewport center-clamping formula.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a normalized coordinate, (0,0) at the bottom-left, (1,1) at the
// top-right.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two normalized points,
// computed with gonum/floats.
func Distance(a, b Point) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Midpoint returns the arithmetic average of two points (the
// zoomOutAndIn transition midpoint is the average of endpoints).
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Lerp linearly interpolates between a and b at t ∈ [0,1].
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Clamp01 clamps a normalized coordinate into [0,1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp clamps v into [lo, hi]. If lo > hi, returns the midpoint.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// NormRect is a normalized-coordinate rectangle, (0,0) bottom-left.
type NormRect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r NormRect) Width() float64  { return r.MaxX - r.MinX }
func (r NormRect) Height() float64 { return r.MaxY - r.MinY }
func (r NormRect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}
func (r NormRect) IsDegenerate() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Pad grows the rect by frac on every side, relative to its own size, then
// clamps the result into [0,1]^2. Used for the §4.4 workAreaPadding step.
func (r NormRect) Pad(frac float64) NormRect {
	dx, dy := r.Width()*frac, r.Height()*frac
	return NormRect{
		MinX: Clamp01(r.MinX - dx),
		MinY: Clamp01(r.MinY - dy),
		MaxX: Clamp01(r.MaxX + dx),
		MaxY: Clamp01(r.MaxY + dy),
	}
}

// InUnitSquare reports whether the rect lies entirely inside [0,1]^2.
func (r NormRect) InUnitSquare() bool {
	return r.MinX >= 0 && r.MinY >= 0 && r.MaxX <= 1 && r.MaxY <= 1
}

// HalfViewport returns half the viewport's side length for a given zoom,
// the viewport is [center ± 0.5/zoom].
func HalfViewport(zoom float64) float64 {
	if zoom <= 0 {
		return 0.5
	}
	return 0.5 / zoom
}

// Viewport returns the visible rect for a given center and zoom.
func Viewport(center Point, zoom float64) NormRect {
	h := HalfViewport(zoom)
	return NormRect{MinX: center.X - h, MinY: center.Y - h, MaxX: center.X + h, MaxY: center.Y + h}
}

// ClampCenterToRect implements the §4.4 center-clamping formula: given a
// zoom, a target rect the viewport must fully contain, and a desired
// center, clamp the center per-axis into the range that keeps the rect
// inside the viewport, falling back to the rect's own midpoint when the
// zoom is too high for any center to work, and finally clamping the result
// so the viewport itself stays inside the unit square.
func ClampCenterToRect(desired Point, rect NormRect, zoom float64) Point {
	h := HalfViewport(zoom)
	x := clampAxis(desired.X, rect.MinX, rect.MaxX, h)
	y := clampAxis(desired.Y, rect.MinY, rect.MaxY, h)
	// keep viewport inside the screen
	x = Clamp(x, h, 1-h)
	y = Clamp(y, h, 1-h)
	return Point{X: x, Y: y}
}

func clampAxis(desired, rmin, rmax, h float64) float64 {
	lo, hi := rmax-h, rmin+h
	if lo > hi {
		return (rmin + rmax) / 2
	}
	return Clamp(desired, lo, hi)
}

// FitsInViewport reports whether rect lies entirely within the viewport at
// center/zoom (used to validate the §3 ShotPlan element-source invariant).
func FitsInViewport(rect NormRect, center Point, zoom float64) bool {
	vp := Viewport(center, zoom)
	const eps = 1e-9
	return rect.MinX >= vp.MinX-eps && rect.MinY >= vp.MinY-eps &&
		rect.MaxX <= vp.MaxX+eps && rect.MaxY <= vp.MaxY+eps
}

// BoundingBox computes the bounding NormRect of a non-empty set of points.
func BoundingBox(pts []Point) NormRect {
	r := NormRect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range pts {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// NormalizePixelRect converts a pixel-space rect into normalized
// coordinates given the pixel screen bounds. Screen bounds origin is
// top-left in pixel space (as delivered by the OS); normalized output uses
// bottom-left origin, so the Y axis is flipped.
func NormalizePixelRect(minX, minY, maxX, maxY, screenW, screenH float64) NormRect {
	if screenW <= 0 || screenH <= 0 {
		return NormRect{}
	}
	nMinX := minX / screenW
	nMaxX := maxX / screenW
	// flip Y: pixel-space minY/maxY (top-left origin) -> normalized bottom-left origin
	nMinY := 1 - maxY/screenH
	nMaxY := 1 - minY/screenH
	return NormRect{MinX: nMinX, MinY: nMinY, MaxX: nMaxX, MaxY: nMaxY}
}

// NormalizePixelPoint converts a pixel-space point into normalized
// coordinates given the pixel screen bounds, flipping Y to bottom-left
// origin.
func NormalizePixelPoint(x, y, screenW, screenH float64) Point {
	if screenW <= 0 || screenH <= 0 {
		return Point{}
	}
	return Point{X: x / screenW, Y: 1 - y/screenH}
}
