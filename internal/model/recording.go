// Package model holds the data types shared across every stage of the
// event-to-camera-track pipeline: the raw recording input, the unified
// event stream, intents, scenes, shot plans, transitions, simulated
// samples, and the emitted tracks.
package model

import "github.com/vedantwpatil/autodirector/internal/geometry"

// ClickType discriminates the four mouse button edges the pipeline tracks.
type ClickType int

const (
	LeftDown ClickType = iota
	LeftUp
	RightDown
	RightUp
)

// KeyEventType discriminates keyboard edges.
type KeyEventType int

const (
	KeyDown KeyEventType = iota
	KeyUp
)

// DragType discriminates the kind of drag gesture.
type DragType int

const (
	DragSelection DragType = iota
	DragMove
	DragResize
)

// Modifiers is a bitset of held modifier keys.
type Modifiers uint8

const (
	ModControl Modifiers = 1 << iota
	ModOption
	ModShift
	ModCommand
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// ElementInfo describes the UI element under the cursor at a given instant.
type ElementInfo struct {
	Role            string // e.g. "AXButton", "AXTextField"
	Subrole         string
	Frame           PixelRect // pixel-space frame, screen coordinates
	Title           string
	IsClickable     bool
	ApplicationName string
}

// PixelRect is a pixel-space rectangle, used only for element frames and
// caret bounds before normalization. Origin is top-left, as delivered by
// screen-capture/accessibility producers; geometry.NormalizePixelRect
// flips to the normalized bottom-left convention.
type PixelRect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r PixelRect) Width() float64  { return r.MaxX - r.MinX }
func (r PixelRect) Height() float64 { return r.MaxY - r.MinY }

// IsDegenerate reports whether the rect has non-positive width or height.
func (r PixelRect) IsDegenerate() bool { return r.Width() <= 0 || r.Height() <= 0 }

// MouseMoveSample is a single polled cursor position, already normalized.
type MouseMoveSample struct {
	Time        float64
	Position    geometry.Point
	AppBundleID string
	Element     *ElementInfo
}

// ClickEvent is a single mouse-button edge, already normalized.
type ClickEvent struct {
	Time        float64
	Position    geometry.Point
	Type        ClickType
	AppBundleID string
	Element     *ElementInfo
}

// KeyEvent is a single keyboard edge.
type KeyEvent struct {
	Time      float64
	KeyCode   int
	HasCode   bool // false when the producer could not resolve a key code
	Type      KeyEventType
	Modifiers Modifiers
	Character rune // 0 if none
}

// DragEvent is an explicit drag gesture, or one inferred by §4.9.
type DragEvent struct {
	StartTime, EndTime float64
	StartPos, EndPos   geometry.Point
	Type               DragType
}

// UIStateSample is a point-in-time sample of cursor/element/caret state,
// independent of mouse-move polling (e.g. accessibility observation).
type UIStateSample struct {
	Time        float64
	CursorPos   geometry.Point
	Element     *ElementInfo
	CaretBounds *PixelRect // pixel rect, screen space
}

// RecordingInput is the immutable input to the CORE.
type RecordingInput struct {
	Duration     float64
	FrameRate    float64
	ScreenBounds PixelRect // pixel bounds, e.g. MinX=0,MinY=0,MaxX=width,MaxY=height
	MouseMoves   []MouseMoveSample
	Clicks       []ClickEvent
	Keys         []KeyEvent
	Drags        []DragEvent
	UIStates     []UIStateSample
}

// Clamp returns a copy with every time field clamped into [0, duration] per
// an event outside [0, Duration].
func (r RecordingInput) Clamp() RecordingInput {
	clampT := func(t float64) float64 {
		if t < 0 {
			return 0
		}
		if t > r.Duration {
			return r.Duration
		}
		return t
	}
	out := r
	out.MouseMoves = append([]MouseMoveSample(nil), r.MouseMoves...)
	for i := range out.MouseMoves {
		out.MouseMoves[i].Time = clampT(out.MouseMoves[i].Time)
	}
	out.Clicks = append([]ClickEvent(nil), r.Clicks...)
	for i := range out.Clicks {
		out.Clicks[i].Time = clampT(out.Clicks[i].Time)
	}
	out.Keys = append([]KeyEvent(nil), r.Keys...)
	for i := range out.Keys {
		out.Keys[i].Time = clampT(out.Keys[i].Time)
	}
	out.Drags = append([]DragEvent(nil), r.Drags...)
	for i := range out.Drags {
		out.Drags[i].StartTime = clampT(out.Drags[i].StartTime)
		out.Drags[i].EndTime = clampT(out.Drags[i].EndTime)
	}
	out.UIStates = append([]UIStateSample(nil), r.UIStates...)
	for i := range out.UIStates {
		out.UIStates[i].Time = clampT(out.UIStates[i].Time)
	}
	return out
}
