// Package intent implements the IntentClassifier: it assigns
// every instant of the recording to exactly one UserIntent, producing a
// sorted, non-overlapping set of IntentSpans that cover [0, duration].
package intent

import (
	"math"
	"sort"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
	"github.com/vedantwpatil/autodirector/internal/timeline"
)

// candidate is a raw, possibly-overlapping detection before the priority
// sweep resolves them into the final partition.
type candidate struct {
	start, end float64
	intent     model.UserIntent
	confidence float64
	anchors    []model.UnifiedEvent
}

// Classify runs the full detection pipeline and returns sorted,
// non-overlapping IntentSpans covering [0, duration].
func Classify(tl timeline.EventTimeline, settings Settings) []model.IntentSpan {
	events := tl.Events()
	duration := tl.Duration

	var candidates []candidate
	candidates = append(candidates, detectTyping(events, settings)...)
	candidates = append(candidates, detectDragging(events)...)
	candidates = append(candidates, detectNavigating(events, settings)...)
	candidates = append(candidates, detectClicking(events, candidates)...)
	candidates = append(candidates, detectSwitching(events, settings)...)

	spans := sweep(candidates, duration)
	spans = fillGaps(spans, events, duration, settings)
	spans = mergeAdjacentSameIntent(spans)
	return spans
}

// sweep resolves overlapping candidates into a non-overlapping partition by
// priority.
func sweep(candidates []candidate, duration float64) []model.IntentSpan {
	if len(candidates) == 0 {
		return nil
	}

	boundarySet := map[float64]bool{0: true, duration: true}
	for _, c := range candidates {
		boundarySet[clamp(c.start, 0, duration)] = true
		boundarySet[clamp(c.end, 0, duration)] = true
	}
	boundaries := make([]float64, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Float64s(boundaries)

	var spans []model.IntentSpan
	for i := 0; i+1 < len(boundaries); i++ {
		lo, hi := boundaries[i], boundaries[i+1]
		if hi <= lo {
			continue
		}
		mid := (lo + hi) / 2
		best := -1
		bestPriority := math.MaxInt32
		for ci, c := range candidates {
			if c.start <= mid && mid < c.end {
				p := model.Priority(c.intent.Kind)
				if p < bestPriority {
					bestPriority = p
					best = ci
				}
			}
		}
		if best == -1 {
			continue
		}
		spans = append(spans, model.IntentSpan{
			StartTime:    lo,
			EndTime:      hi,
			Intent:       candidates[best].intent,
			Confidence:   candidates[best].confidence,
			AnchorEvents: candidates[best].anchors,
		})
	}
	return spans
}

// fillGaps inserts idle/reading spans into every uncovered interval of
// [0, duration].
func fillGaps(spans []model.IntentSpan, events []model.UnifiedEvent, duration float64, settings Settings) []model.IntentSpan {
	sort.Slice(spans, func(i, j int) bool { return spans[i].StartTime < spans[j].StartTime })

	var out []model.IntentSpan
	cursor := 0.0
	for _, s := range spans {
		if s.StartTime > cursor {
			out = append(out, gapSpan(cursor, s.StartTime, events, settings)...)
		}
		out = append(out, s)
		if s.EndTime > cursor {
			cursor = s.EndTime
		}
	}
	if duration > cursor {
		out = append(out, gapSpan(cursor, duration, events, settings)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func gapSpan(start, end float64, events []model.UnifiedEvent, settings Settings) []model.IntentSpan {
	if end <= start {
		return nil
	}
	gapDuration := end - start
	hasMotion := false
	var anchors []model.UnifiedEvent
	for _, e := range events {
		if e.Time < start || e.Time > end {
			continue
		}
		if e.Kind == model.EventMouseMove {
			hasMotion = true
			anchors = append(anchors, e)
		}
	}

	if gapDuration >= settings.IdleGapThreshold || !hasMotion {
		return []model.IntentSpan{{
			StartTime:  start,
			EndTime:    end,
			Intent:     model.UserIntent{Kind: model.IntentIdle},
			Confidence: 1.0,
		}}
	}
	return []model.IntentSpan{{
		StartTime:    start,
		EndTime:      end,
		Intent:       model.UserIntent{Kind: model.IntentReading},
		Confidence:   0.5,
		AnchorEvents: anchors,
	}}
}

// mergeAdjacentSameIntent merges spans whose intent (and, for typing,
// context) is identical and which touch exactly at a boundary.
func mergeAdjacentSameIntent(spans []model.IntentSpan) []model.IntentSpan {
	if len(spans) == 0 {
		return spans
	}
	out := []model.IntentSpan{spans[0]}
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if last.Intent == s.Intent && last.EndTime >= s.StartTime {
			if s.EndTime > last.EndTime {
				last.EndTime = s.EndTime
			}
			last.AnchorEvents = append(last.AnchorEvents, s.AnchorEvents...)
			if s.Confidence > last.Confidence {
				last.Confidence = s.Confidence
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func detectTyping(events []model.UnifiedEvent, settings Settings) []candidate {
	var runs []candidate
	var run []model.UnifiedEvent

	flush := func() {
		if len(run) == 0 {
			return
		}
		start := run[0].Time
		end := run[len(run)-1].Time
		ctx := typingContext(events, start, end)
		conf := math.Min(1.0, 0.3+0.15*float64(len(run)))
		runs = append(runs, candidate{
			start: start, end: end,
			intent:     model.UserIntent{Kind: model.IntentTyping, Context: ctx},
			confidence: conf,
			anchors:    append([]model.UnifiedEvent(nil), run...),
		})
		run = nil
	}

	for _, e := range events {
		if e.Kind != model.EventKeyDown {
			continue
		}
		if e.Meta.Modifiers.Has(model.ModCommand) || e.Meta.Modifiers.Has(model.ModControl) {
			flush()
			continue
		}
		if len(run) > 0 && e.Time-run[len(run)-1].Time > settings.TypingMaxInterArrival {
			flush()
		}
		run = append(run, e)
	}
	flush()

	// zero-width candidate (single keystroke) still needs positive
	// coverage for the sweep to place it: widen by a hair so it can win a
	// boundary interval against overlapping idle/reading gaps.
	for i := range runs {
		if runs[i].end <= runs[i].start {
			runs[i].end = runs[i].start + 1e-6
		}
	}
	return runs
}

func typingContext(events []model.UnifiedEvent, start, end float64) model.TypingContext {
	for _, e := range events {
		if e.Time < start || e.Time > end {
			continue
		}
		if e.Kind != model.EventUIStateChange || e.Meta.Element == nil {
			continue
		}
		return contextFromElement(*e.Meta.Element)
	}
	return model.ContextCodeEditor
}

func contextFromElement(el model.ElementInfo) model.TypingContext {
	switch {
	case isCodeEditorRole(el):
		return model.ContextCodeEditor
	case isTextInputRole(el.Role):
		return model.ContextTextField
	case isTerminalApp(el.ApplicationName):
		return model.ContextTerminal
	case isRichTextRole(el):
		return model.ContextRichText
	default:
		return model.ContextCodeEditor
	}
}

func isCodeEditorRole(el model.ElementInfo) bool {
	return el.Subrole == "AXCodeEditor" || el.Role == "AXSourceTextArea"
}

var textInputRoles = map[string]bool{
	"AXTextField":   true,
	"AXTextArea":    true,
	"AXComboBox":    true,
	"AXSearchField": true,
}

func isTextInputRole(role string) bool { return textInputRoles[role] }

func isTerminalApp(name string) bool {
	switch name {
	case "Terminal", "iTerm2", "iTerm", "Alacritty", "kitty", "Warp":
		return true
	default:
		return false
	}
}

func isRichTextRole(el model.ElementInfo) bool {
	return el.Role == "AXTextArea" && el.Subrole == "AXRichText"
}

func detectDragging(events []model.UnifiedEvent) []candidate {
	var out []candidate
	var open *model.UnifiedEvent
	for i := range events {
		e := events[i]
		switch e.Kind {
		case model.EventDragStart:
			ev := e
			open = &ev
		case model.EventDragEnd:
			if open != nil {
				out = append(out, candidate{
					start:      open.Time,
					end:        e.Time,
					intent:     model.UserIntent{Kind: model.IntentDragging},
					confidence: 0.9,
					anchors:    []model.UnifiedEvent{*open, e},
				})
				open = nil
			}
		}
	}
	return out
}

func detectNavigating(events []model.UnifiedEvent, settings Settings) []candidate {
	var clicks []model.UnifiedEvent
	for _, e := range events {
		if e.Kind == model.EventClick && e.Meta.ClickType == model.LeftDown {
			clicks = append(clicks, e)
		}
	}

	var out []candidate
	used := make([]bool, len(clicks))
	for i := range clicks {
		if used[i] {
			continue
		}
		group := []model.UnifiedEvent{clicks[i]}
		for j := i + 1; j < len(clicks) && len(group) < 3; j++ {
			if used[j] {
				continue
			}
			if clicks[j].Time-clicks[i].Time > settings.NavigatingWindow {
				break
			}
			if geometry.Distance(clicks[i].Position, clicks[j].Position) <= settings.NavigatingMaxDistance {
				group = append(group, clicks[j])
			}
		}
		if len(group) >= 2 {
			for _, g := range group {
				for j, c := range clicks {
					if c.Time == g.Time && c.Seq == g.Seq {
						used[j] = true
					}
				}
			}
			out = append(out, candidate{
				start:      group[0].Time,
				end:        group[len(group)-1].Time,
				intent:     model.UserIntent{Kind: model.IntentNavigating},
				confidence: 0.75,
				anchors:    group,
			})
		}
	}
	return out
}

func detectClicking(events []model.UnifiedEvent, existing []candidate) []candidate {
	var out []candidate
	for _, e := range events {
		if e.Kind != model.EventClick || e.Meta.ClickType != model.LeftDown {
			continue
		}
		if coveredByOtherIntent(e.Time, existing) {
			continue
		}
		out = append(out, candidate{
			start:      e.Time,
			end:        e.Time + 1e-6,
			intent:     model.UserIntent{Kind: model.IntentClicking},
			confidence: 0.8,
			anchors:    []model.UnifiedEvent{e},
		})
	}
	return out
}

func coveredByOtherIntent(t float64, existing []candidate) bool {
	for _, c := range existing {
		if c.intent.Kind == model.IntentClicking {
			continue
		}
		if t >= c.start && t <= c.end {
			return true
		}
	}
	return false
}

func detectSwitching(events []model.UnifiedEvent, settings Settings) []candidate {
	var anchored []model.UnifiedEvent
	for _, e := range events {
		if e.Meta.AppBundleID != "" {
			anchored = append(anchored, e)
		}
	}
	var out []candidate
	for i := 1; i < len(anchored); i++ {
		if anchored[i].Meta.AppBundleID != anchored[i-1].Meta.AppBundleID {
			t := anchored[i].Time
			out = append(out, candidate{
				start:      t,
				end:        t + settings.SwitchingSpanDuration,
				intent:     model.UserIntent{Kind: model.IntentSwitching},
				confidence: 0.6,
				anchors:    []model.UnifiedEvent{anchored[i-1], anchored[i]},
			})
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
