// Package timeline implements the EventTimeline builder: it
// unifies the heterogeneous RecordingInput streams into one time-sorted
// UnifiedEvent stream, downsampling mouse moves to ~10 Hz while preserving
// clicks, keys, drag endpoints, and UI-state samples.
package timeline

import (
	"golang.org/x/exp/slices"

	"github.com/vedantwpatil/autodirector/internal/model"
)

// mouseMoveSampleInterval is the ~10 Hz downsample window.
const mouseMoveSampleInterval = 0.1

// EventTimeline is the sorted, queryable unified event stream.
type EventTimeline struct {
	Duration float64
	events   []model.UnifiedEvent // sorted by Time, ties by Seq
}

// Events returns the full sorted event slice. Callers must not mutate it.
func (t EventTimeline) Events() []model.UnifiedEvent { return t.events }

// EventsIn returns all events with a <= time <= b, inclusive, in sorted
// order.
func (t EventTimeline) EventsIn(a, b float64) []model.UnifiedEvent {
	lo, _ := slices.BinarySearchFunc(t.events, a, func(e model.UnifiedEvent, target float64) int {
		if e.Time < target {
			return -1
		}
		return 1
	})
	hi, _ := slices.BinarySearchFunc(t.events, b, func(e model.UnifiedEvent, target float64) int {
		if e.Time <= target {
			return -1
		}
		return 1
	})
	if lo >= hi {
		return nil
	}
	out := make([]model.UnifiedEvent, hi-lo)
	copy(out, t.events[lo:hi])
	return out
}

// LastMousePosition returns the most recent mouse-move or click position at
// or before t, and whether one exists.
func (t EventTimeline) LastMousePosition(before float64) (model.UnifiedEvent, bool) {
	var best model.UnifiedEvent
	found := false
	for _, e := range t.events {
		if e.Time > before {
			break
		}
		if e.Kind == model.EventMouseMove || e.Kind == model.EventClick {
			best = e
			found = true
		}
	}
	return best, found
}

// Build unifies a (clamped) RecordingInput into an EventTimeline. Mouse
// moves are downsampled to one sample per 0.1s window,
// keeping the earliest sample in each window; all other event kinds are
// preserved in full. The result is stably sorted by time, preserving
// input order on ties.
func Build(input model.RecordingInput) EventTimeline {
	input = input.Clamp()

	var events []model.UnifiedEvent
	seq := 0
	next := func() int {
		seq++
		return seq - 1
	}

	events = append(events, downsampleMouseMoves(input.MouseMoves, next)...)

	for _, c := range input.Clicks {
		events = append(events, model.UnifiedEvent{
			Time:     c.Time,
			Kind:     model.EventClick,
			Position: c.Position,
			Meta: model.EventMetadata{
				AppBundleID: c.AppBundleID,
				Element:     c.Element,
				ClickType:   c.Type,
			},
			Seq: next(),
		})
	}

	for _, k := range input.Keys {
		kind := model.EventKeyDown
		if k.Type == model.KeyUp {
			kind = model.EventKeyUp
		}
		events = append(events, model.UnifiedEvent{
			Time: k.Time,
			Kind: kind,
			Meta: model.EventMetadata{
				Modifiers:  k.Modifiers,
				KeyCode:    k.KeyCode,
				HasKeyCode: k.HasCode,
				Character:  k.Character,
			},
			Seq: next(),
		})
	}

	for _, d := range input.Drags {
		events = append(events, model.UnifiedEvent{
			Time:     d.StartTime,
			Kind:     model.EventDragStart,
			Position: d.StartPos,
			Meta:     model.EventMetadata{DragType: d.Type},
			Seq:      next(),
		})
		events = append(events, model.UnifiedEvent{
			Time:     d.EndTime,
			Kind:     model.EventDragEnd,
			Position: d.EndPos,
			Meta:     model.EventMetadata{DragType: d.Type},
			Seq:      next(),
		})
	}

	for _, u := range input.UIStates {
		events = append(events, model.UnifiedEvent{
			Time:     u.Time,
			Kind:     model.EventUIStateChange,
			Position: u.CursorPos,
			Meta: model.EventMetadata{
				Element:     u.Element,
				CaretBounds: u.CaretBounds,
			},
			Seq: next(),
		})
	}

	slices.SortStableFunc(events, func(a, b model.UnifiedEvent) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	return EventTimeline{Duration: input.Duration, events: events}
}

// downsampleMouseMoves keeps one sample per mouseMoveSampleInterval window,
// the earliest in each window.
func downsampleMouseMoves(samples []model.MouseMoveSample, next func() int) []model.UnifiedEvent {
	if len(samples) == 0 {
		return nil
	}
	ordered := append([]model.MouseMoveSample(nil), samples...)
	slices.SortStableFunc(ordered, func(a, b model.MouseMoveSample) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	var out []model.UnifiedEvent
	haveWindow := false
	var windowStart float64
	for _, s := range ordered {
		if !haveWindow || s.Time >= windowStart+mouseMoveSampleInterval {
			windowStart = windowFloor(s.Time, mouseMoveSampleInterval)
			haveWindow = true
			out = append(out, model.UnifiedEvent{
				Time:     s.Time,
				Kind:     model.EventMouseMove,
				Position: s.Position,
				Meta: model.EventMetadata{
					AppBundleID: s.AppBundleID,
					Element:     s.Element,
				},
				Seq: next(),
			})
		}
	}
	return out
}

func windowFloor(t, window float64) float64 {
	if window <= 0 {
		return t
	}
	n := int(t / window)
	return float64(n) * window
}
