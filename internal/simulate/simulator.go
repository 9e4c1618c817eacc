// Package simulate implements the CameraSimulator: per scene it
// dispatches to a StaticHoldController or CursorFollowController, producing
// a time-sorted sample path whose zoom is constant and whose center moves
// only in response to triggering events.
package simulate

import (
	"sort"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

// Simulate runs the per-scene controllers and assembles the full
// SimulatedPath, including the inter-scene transition handoffs.
func Simulate(scenes []model.CameraScene, plans []model.ShotPlan, transitions []model.TransitionPlan, events []model.UnifiedEvent, settings Settings) model.SimulatedPath {
	sceneSegments := make([]model.SimulatedSceneSegment, len(scenes))
	for i, sc := range scenes {
		plan := plans[i]
		sceneEvents := eventsInRange(events, sc.StartTime, sc.EndTime)

		var samples []model.TimedTransform
		if usesCursorFollow(sc.PrimaryIntent.Kind) {
			samples = runCursorFollow(sc, plan, sceneEvents, settings)
		} else {
			samples = runStaticHold(sc, plan, sceneEvents, settings)
		}
		sceneSegments[i] = model.SimulatedSceneSegment{Scene: sc, ShotPlan: plan, Samples: samples}
	}

	transitionSegments := make([]model.SimulatedTransitionSegment, 0, len(transitions))
	for i, tp := range transitions {
		if i+1 >= len(sceneSegments) {
			break
		}
		fromSamples := sceneSegments[i].Samples
		toSamples := sceneSegments[i+1].Samples
		if len(fromSamples) == 0 || len(toSamples) == 0 {
			continue
		}
		transitionSegments = append(transitionSegments, model.SimulatedTransitionSegment{
			FromScene:      tp.FromScene,
			ToScene:        tp.ToScene,
			TransitionPlan: tp,
			StartTransform: fromSamples[len(fromSamples)-1].Transform,
			EndTransform:   toSamples[0].Transform,
		})
	}

	return model.SimulatedPath{SceneSegments: sceneSegments, TransitionSegments: transitionSegments}
}

func usesCursorFollow(k model.IntentKind) bool {
	return k == model.IntentTyping || k == model.IntentDragging
}

func eventsInRange(events []model.UnifiedEvent, start, end float64) []model.UnifiedEvent {
	var out []model.UnifiedEvent
	for _, e := range events {
		if e.Time >= start && e.Time <= end {
			out = append(out, e)
		}
	}
	return out
}

// runStaticHold implements the StaticHoldController: if the
// scene is unzoomed or carries no events, hold the ideal center for the
// whole scene; otherwise pan to follow events that drift far enough outside
// the viewport.
func runStaticHold(sc model.CameraScene, plan model.ShotPlan, events []model.UnifiedEvent, settings Settings) []model.TimedTransform {
	start := model.TimedTransform{Time: sc.StartTime, Transform: model.TransformValue{Zoom: plan.IdealZoom, Center: plan.IdealCenter}}
	if plan.IdealZoom <= 1 || len(events) == 0 {
		return []model.TimedTransform{start, {Time: sc.EndTime, Transform: start.Transform}}
	}

	return runPanLoop(sc, plan, events, panParams{
		viewportMargin:   settings.StaticViewportMargin,
		minPanInterval:   settings.StaticMinPanInterval,
		correctionFrac:   settings.StaticCorrectionFrac,
		panDurationMin:   settings.StaticPanDurationMin,
		panDurationMax:   settings.StaticPanDurationMax,
		panDurationScale: 1.0,
		lookAhead:        false,
	})
}

// runCursorFollow implements the CursorFollowController: more
// aggressive tracking, with predictive look-ahead based on estimated cursor
// velocity. For typing scenes only mouseMove/click events trigger pans.
func runCursorFollow(sc model.CameraScene, plan model.ShotPlan, events []model.UnifiedEvent, settings Settings) []model.TimedTransform {
	triggers := events
	if sc.PrimaryIntent.Kind == model.IntentTyping {
		triggers = nil
		for _, e := range events {
			if e.Kind == model.EventMouseMove || e.Kind == model.EventClick {
				triggers = append(triggers, e)
			}
		}
	}

	return runPanLoop(sc, plan, triggers, panParams{
		viewportMargin:   settings.FollowViewportMargin,
		minPanInterval:   settings.FollowMinMoveInterval,
		correctionFrac:   settings.FollowCorrectionFrac,
		panDurationMin:   settings.FollowPanDurationMin,
		panDurationMax:   settings.FollowPanDurationMax,
		panDurationScale: 1.2,
		lookAhead:        true,
		lookAheadTime:    settings.LookAheadTime,
		allEvents:        events,
	})
}

type panParams struct {
	viewportMargin   float64
	minPanInterval   float64
	correctionFrac   float64
	panDurationMin   float64
	panDurationMax   float64
	panDurationScale float64
	lookAhead        bool
	lookAheadTime    float64
	allEvents        []model.UnifiedEvent // full event set, for velocity estimation
}

// runPanLoop is the shared scan used by both controllers: it walks the
// trigger events in time order, emitting a hold+move sample pair whenever
// an event (optionally look-ahead projected) lies outside the current
// viewport by at least viewportMargin and at least minPanInterval since the
// last pan.
func runPanLoop(sc model.CameraScene, plan model.ShotPlan, triggers []model.UnifiedEvent, p panParams) []model.TimedTransform {
	zoom := plan.IdealZoom
	currentCenter := plan.IdealCenter
	samples := []model.TimedTransform{{Time: sc.StartTime, Transform: model.TransformValue{Zoom: zoom, Center: currentCenter}}}
	lastPanTime := sc.StartTime - p.minPanInterval - 1

	sorted := append([]model.UnifiedEvent(nil), triggers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for _, e := range sorted {
		if e.Time-lastPanTime < p.minPanInterval {
			continue
		}

		checkPos := e.Position
		if p.lookAhead {
			window := mouseWindow(p.allEvents, e.Time)
			vel := estimateVelocity(window)
			checkPos = geometry.Point{
				X: e.Position.X + vel.X*p.lookAheadTime,
				Y: e.Position.Y + vel.Y*p.lookAheadTime,
			}
		}

		viewport := geometry.Viewport(currentCenter, zoom)
		if outsideAmount(checkPos, viewport) < p.viewportMargin {
			continue
		}

		panStart := e.Time
		desired := geometry.ClampCenterToRect(e.Position, geometry.NormRect{MinX: e.Position.X, MinY: e.Position.Y, MaxX: e.Position.X, MaxY: e.Position.Y}, zoom)
		corrected := geometry.Point{
			X: currentCenter.X + p.correctionFrac*(desired.X-currentCenter.X),
			Y: currentCenter.Y + p.correctionFrac*(desired.Y-currentCenter.Y),
		}
		h := geometry.HalfViewport(zoom)
		corrected.X = geometry.Clamp(corrected.X, h, 1-h)
		corrected.Y = geometry.Clamp(corrected.Y, h, 1-h)

		distance := geometry.Distance(currentCenter, corrected)
		panDuration := geometry.Clamp(distance*p.panDurationScale, p.panDurationMin, p.panDurationMax)
		panEnd := panStart + panDuration
		if panEnd > sc.EndTime {
			panEnd = sc.EndTime
		}

		samples = append(samples,
			model.TimedTransform{Time: panStart, Transform: model.TransformValue{Zoom: zoom, Center: currentCenter}},
			model.TimedTransform{Time: panEnd, Transform: model.TransformValue{Zoom: zoom, Center: corrected}},
		)
		currentCenter = corrected
		lastPanTime = panStart
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Time < samples[j].Time })
	last := samples[len(samples)-1]
	if last.Time < sc.EndTime {
		samples = append(samples, model.TimedTransform{Time: sc.EndTime, Transform: model.TransformValue{Zoom: zoom, Center: currentCenter}})
	}
	return samples
}

// outsideAmount returns how far beyond the viewport's edge pos lies (0 if
// pos is inside the viewport).
func outsideAmount(pos geometry.Point, vp geometry.NormRect) float64 {
	dx := 0.0
	if pos.X < vp.MinX {
		dx = vp.MinX - pos.X
	} else if pos.X > vp.MaxX {
		dx = pos.X - vp.MaxX
	}
	dy := 0.0
	if pos.Y < vp.MinY {
		dy = vp.MinY - pos.Y
	} else if pos.Y > vp.MaxY {
		dy = pos.Y - vp.MaxY
	}
	if dx > dy {
		return dx
	}
	return dy
}

// mouseWindow returns up to the last 5 mouseMove samples at or before t, in
// time order, used as the velocity-estimation window.
func mouseWindow(events []model.UnifiedEvent, t float64) []timedPosition {
	var all []timedPosition
	for _, e := range events {
		if e.Kind != model.EventMouseMove || e.Time > t {
			continue
		}
		all = append(all, timedPosition{time: e.Time, position: e.Position})
	}
	const windowSize = 5
	if len(all) > windowSize {
		all = all[len(all)-windowSize:]
	}
	return all
}
