package model

import "github.com/vedantwpatil/autodirector/internal/geometry"

// EventKind discriminates the UnifiedEvent sum type.
type EventKind int

const (
	EventMouseMove EventKind = iota
	EventClick
	EventKeyDown
	EventKeyUp
	EventDragStart
	EventDragEnd
	EventScroll
	EventUIStateChange
)

func (k EventKind) String() string {
	switch k {
	case EventMouseMove:
		return "mouseMove"
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keyDown"
	case EventKeyUp:
		return "keyUp"
	case EventDragStart:
		return "dragStart"
	case EventDragEnd:
		return "dragEnd"
	case EventScroll:
		return "scroll"
	case EventUIStateChange:
		return "uiStateChange"
	default:
		return "unknown"
	}
}

// EventMetadata carries the optional, kind-dependent payload of a
// UnifiedEvent.
type EventMetadata struct {
	AppBundleID string
	Element     *ElementInfo
	CaretBounds *PixelRect
	Modifiers   Modifiers
	ClickType   ClickType
	KeyCode     int
	HasKeyCode  bool
	Character   rune
	DragType    DragType
}

// UnifiedEvent is one instant in the unified input stream.
type UnifiedEvent struct {
	Time     float64
	Kind     EventKind
	Position geometry.Point
	Meta     EventMetadata
	// Seq preserves original producer order, so a stable sort by Time can
	// honor the "original order is preserved on ties" invariant (§4.1).
	Seq int
}
