// Package shot implements the ShotPlanner: for every scene it
// chooses an ideal (center, zoom) via a priority chain of sources, clamped
// so the chosen viewport always contains its target rect.
package shot

import (
	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

// Plan computes one ShotPlan per scene.
func Plan(scenes []model.CameraScene, events []model.UnifiedEvent, screenBounds model.PixelRect, settings Settings) []model.ShotPlan {
	plans := make([]model.ShotPlan, 0, len(scenes))
	for _, sc := range scenes {
		plans = append(plans, planScene(sc, events, screenBounds, settings))
	}
	applyIdleInheritance(plans, settings)
	return plans
}

func planScene(sc model.CameraScene, events []model.UnifiedEvent, screenBounds model.PixelRect, settings Settings) model.ShotPlan {
	sceneEvents := eventsInScene(events, sc)

	if center, zoom, ok := elementSource(sceneEvents, screenBounds, settings); ok {
		return shotPlan(sc, center, zoom, model.ZoomSourceElement)
	}
	if center, zoom, ok := activityBBoxSource(sc, sceneEvents, screenBounds, settings); ok {
		return shotPlan(sc, center, zoom, model.ZoomSourceActivityBBox)
	}
	if center, zoom, ok := singleEventSource(sceneEvents, settings, sc.PrimaryIntent); ok {
		return shotPlan(sc, center, zoom, model.ZoomSourceSingleEvent)
	}
	nominal := settings.nominalRange(sc.PrimaryIntent)
	return shotPlan(sc, geometry.Point{X: 0.5, Y: 0.5}, nominal.Mid(), model.ZoomSourceIntentMidpoint)
}

func shotPlan(sc model.CameraScene, center geometry.Point, zoom float64, source model.ZoomSource) model.ShotPlan {
	return model.ShotPlan{
		Scene:       sc,
		ShotType:    model.ShotType{Kind: shotKindForZoom(zoom), Zoom: zoom},
		IdealZoom:   zoom,
		IdealCenter: center,
		ZoomSource:  source,
	}
}

func shotKindForZoom(zoom float64) string {
	switch {
	case zoom >= 2.2:
		return model.ShotCloseUp
	case zoom >= 1.5:
		return model.ShotMedium
	case zoom > 1.0:
		return model.ShotWide
	default:
		return model.ShotEstablishing
	}
}

func eventsInScene(events []model.UnifiedEvent, sc model.CameraScene) []model.UnifiedEvent {
	var out []model.UnifiedEvent
	for _, e := range events {
		if e.Time >= sc.StartTime && e.Time <= sc.EndTime {
			out = append(out, e)
		}
	}
	return out
}

// elementSource picks the most frequently referenced non-degenerate
// ElementInfo.Frame among the scene's events.
func elementSource(events []model.UnifiedEvent, screenBounds model.PixelRect, settings Settings) (geometry.Point, float64, bool) {
	counts := map[model.PixelRect]int{}
	for _, e := range events {
		if e.Meta.Element == nil || e.Meta.Element.Frame.IsDegenerate() {
			continue
		}
		counts[e.Meta.Element.Frame]++
	}
	if len(counts) == 0 {
		return geometry.Point{}, 0, false
	}
	var best model.PixelRect
	bestCount := 0
	for frame, c := range counts {
		if c > bestCount {
			best = frame
			bestCount = c
		}
	}

	norm := geometry.NormalizePixelRect(best.MinX, best.MinY, best.MaxX, best.MaxY, screenBounds.Width(), screenBounds.Height())
	return centerAndZoomForRect(norm, settings)
}

// activityBBoxSource computes the bounding box of event positions in the
// scene. Typing scenes center on the caret position
// instead of the bbox center.
func activityBBoxSource(sc model.CameraScene, events []model.UnifiedEvent, screenBounds model.PixelRect, settings Settings) (geometry.Point, float64, bool) {
	var points []geometry.Point
	for _, e := range events {
		points = append(points, e.Position)
	}
	// a single point yields a degenerate bbox; that case
	// for the singleEvent source instead.
	if len(points) < 2 {
		return geometry.Point{}, 0, false
	}

	bbox := geometry.BoundingBox(points)
	padded := bbox.Pad(settings.WorkAreaPadding)
	zoom := zoomForRect(padded, settings)

	center := padded.Center()
	if sc.PrimaryIntent.Kind == model.IntentTyping {
		if caret, ok := caretMidpoint(events, screenBounds); ok {
			center = caret
		}
	}
	center = geometry.ClampCenterToRect(center, padded, zoom)
	return center, zoom, true
}

func caretMidpoint(events []model.UnifiedEvent, screenBounds model.PixelRect) (geometry.Point, bool) {
	for _, e := range events {
		if e.Kind != model.EventUIStateChange || e.Meta.CaretBounds == nil {
			continue
		}
		cb := *e.Meta.CaretBounds
		if cb.IsDegenerate() {
			continue
		}
		midX := (cb.MinX + cb.MaxX) / 2
		midY := (cb.MinY + cb.MaxY) / 2
		return geometry.NormalizePixelPoint(midX, midY, screenBounds.Width(), screenBounds.Height()), true
	}
	return geometry.Point{}, false
}

// singleEventSource centers on a scene's sole event, at the intent's
// nominal zoom.
func singleEventSource(events []model.UnifiedEvent, settings Settings, intent model.UserIntent) (geometry.Point, float64, bool) {
	if len(events) != 1 {
		return geometry.Point{}, 0, false
	}
	zoom := settings.nominalRange(intent).Mid()
	pos := events[0].Position
	degenerate := geometry.NormRect{MinX: pos.X, MinY: pos.Y, MaxX: pos.X, MaxY: pos.Y}
	center := geometry.ClampCenterToRect(pos, degenerate, zoom)
	return center, zoom, true
}

func centerAndZoomForRect(rect geometry.NormRect, settings Settings) (geometry.Point, float64, bool) {
	padded := rect.Pad(settings.WorkAreaPadding)
	zoom := zoomForRect(padded, settings)
	center := geometry.ClampCenterToRect(padded.Center(), padded, zoom)
	return center, zoom, true
}

func zoomForRect(rect geometry.NormRect, settings Settings) float64 {
	span := rect.Width()
	if rect.Height() > span {
		span = rect.Height()
	}
	if span <= 0 {
		return settings.MaxZoom
	}
	return geometry.Clamp(settings.TargetAreaCoverage/span, settings.MinZoom, settings.MaxZoom)
}

// applyIdleInheritance gives an idle scene flanked by two non-idle scenes a
// zoom/center derived from its neighbors rather than the idle nominal
// (1.0, center-of-screen) default.
func applyIdleInheritance(plans []model.ShotPlan, settings Settings) {
	for i := 1; i+1 < len(plans); i++ {
		if plans[i].Scene.PrimaryIntent.Kind != model.IntentIdle {
			continue
		}
		prev, next := plans[i-1], plans[i+1]
		if prev.Scene.PrimaryIntent.Kind == model.IntentIdle || next.Scene.PrimaryIntent.Kind == model.IntentIdle {
			continue
		}
		decay := settings.IdleZoomDecay
		avgNeighborZoom := (prev.IdealZoom + next.IdealZoom) / 2
		plans[i].IdealZoom = avgNeighborZoom*decay + 1*(1-decay)
		plans[i].IdealCenter = geometry.Midpoint(prev.IdealCenter, next.IdealCenter)
		plans[i].ShotType = model.ShotType{Kind: shotKindForZoom(plans[i].IdealZoom), Zoom: plans[i].IdealZoom}
		plans[i].Inherited = true
	}
}
