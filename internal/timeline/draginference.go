package timeline

import (
	"golang.org/x/exp/slices"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

// dragDisplacementThreshold is the minimum normalized displacement between
// a leftDown and the last bracketed mouse-move for the pair to be
// reclassified as a drag.
const dragDisplacementThreshold = 0.02

// InferDrags handles recordings with no explicit drag events: when the recording has no explicit drag
// events, scan leftDown/leftUp pairs bracketing at least two mouse-moves
// and reclassify large-displacement pairs as selection drags. Right-click
// pairs are never reclassified, and the two click events belonging to a
// reclassified pair are removed. The input is returned unmodified if it
// already carries drag events.
func InferDrags(input model.RecordingInput) model.RecordingInput {
	if len(input.Drags) > 0 {
		return input
	}

	clicks := append([]model.ClickEvent(nil), input.Clicks...)
	slices.SortStableFunc(clicks, func(a, b model.ClickEvent) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	moves := append([]model.MouseMoveSample(nil), input.MouseMoves...)
	slices.SortStableFunc(moves, func(a, b model.MouseMoveSample) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	removeClick := make(map[int]bool) // index into clicks
	var drags []model.DragEvent

	for i := 0; i < len(clicks); i++ {
		down := clicks[i]
		if down.Type != model.LeftDown {
			continue
		}
		// find the matching leftUp
		upIdx := -1
		for j := i + 1; j < len(clicks); j++ {
			if removeClick[j] {
				continue
			}
			if clicks[j].Type == model.LeftUp {
				upIdx = j
				break
			}
			if clicks[j].Type == model.LeftDown {
				break // a new down before the matching up: treat as unmatched
			}
		}
		if upIdx == -1 {
			continue
		}
		up := clicks[upIdx]

		bracketed := movesBetween(moves, down.Time, up.Time)
		if len(bracketed) < 2 {
			continue
		}

		last := bracketed[len(bracketed)-1]
		disp := geometry.Distance(down.Position, last.Position)
		if disp < dragDisplacementThreshold {
			continue
		}

		removeClick[i] = true
		removeClick[upIdx] = true
		drags = append(drags, model.DragEvent{
			StartTime: down.Time,
			EndTime:   up.Time,
			StartPos:  down.Position,
			EndPos:    last.Position,
			Type:      model.DragSelection,
		})
	}

	if len(drags) == 0 {
		return input
	}

	out := input
	var remaining []model.ClickEvent
	for i, c := range clicks {
		if !removeClick[i] {
			remaining = append(remaining, c)
		}
	}
	out.Clicks = remaining
	out.Drags = append([]model.DragEvent(nil), drags...)
	return out
}

func movesBetween(moves []model.MouseMoveSample, a, b float64) []model.MouseMoveSample {
	var out []model.MouseMoveSample
	for _, m := range moves {
		if m.Time > a && m.Time < b {
			out = append(out, m)
		}
	}
	return out
}
