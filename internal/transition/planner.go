// Package transition implements the TransitionPlanner: for each
// adjacent pair of shot plans, it picks a cut, directPan, or zoomOutAndIn
// style based on the viewport-relative distance between their centers.
package transition

import (
	"github.com/vedantwpatil/autodirector/internal/easing"
	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

// Plan computes one TransitionPlan per adjacent pair of shot plans.
// Returns len(plans)-1 entries.
func Plan(plans []model.ShotPlan, settings Settings) []model.TransitionPlan {
	if len(plans) < 2 {
		return nil
	}
	out := make([]model.TransitionPlan, 0, len(plans)-1)
	for i := 0; i+1 < len(plans); i++ {
		out = append(out, planPair(plans[i], plans[i+1], settings))
	}
	return out
}

func planPair(from, to model.ShotPlan, settings Settings) model.TransitionPlan {
	fromScene, toScene := from.Scene, to.Scene

	if toScene.PrimaryIntent.Kind == model.IntentSwitching || fromScene.AppContext != toScene.AppContext {
		return model.TransitionPlan{
			FromScene: fromScene,
			ToScene:   toScene,
			Style:     model.TransitionStyle{Kind: model.TransitionCut, Duration: 0},
			Easing:    easing.NewLinear(),
		}
	}

	vdist := viewportDistance(from, to)
	spring := easing.NewSpring(settings.SpringDampingRatio, settings.SpringResponse)

	switch {
	case vdist < settings.DirectPanThreshold:
		duration := lerpRange(settings.ShortPanMin, settings.ShortPanMax, vdist/settings.DirectPanThreshold)
		return model.TransitionPlan{
			FromScene: fromScene,
			ToScene:   toScene,
			Style:     model.TransitionStyle{Kind: model.TransitionDirectPan, Duration: duration},
			Easing:    spring,
		}
	case vdist < settings.GentlePanThreshold:
		frac := (vdist - settings.DirectPanThreshold) / (settings.GentlePanThreshold - settings.DirectPanThreshold)
		duration := lerpRange(settings.MediumPanMin, settings.MediumPanMax, frac)
		return model.TransitionPlan{
			FromScene: fromScene,
			ToScene:   toScene,
			Style:     model.TransitionStyle{Kind: model.TransitionDirectPan, Duration: duration},
			Easing:    spring,
		}
	default:
		outScale := geometry.Clamp(vdist/settings.FullZoomOutThreshold, 0, 1)
		return model.TransitionPlan{
			FromScene: fromScene,
			ToScene:   toScene,
			Style: model.TransitionStyle{
				Kind:        model.TransitionZoomOutAndIn,
				OutDuration: settings.ZoomOutDuration * (0.5 + 0.5*outScale),
				InDuration:  settings.ZoomInDuration * (0.5 + 0.5*outScale),
			},
			Easing: spring,
		}
	}
}

// viewportDistance returns vdist = d / (0.5 / min(z1, z2)), the Euclidean
// center distance expressed in viewport-widths of the tighter shot.
func viewportDistance(from, to model.ShotPlan) float64 {
	d := geometry.Distance(from.IdealCenter, to.IdealCenter)
	minZoom := from.IdealZoom
	if to.IdealZoom < minZoom {
		minZoom = to.IdealZoom
	}
	halfViewport := geometry.HalfViewport(minZoom)
	if halfViewport <= 0 {
		return 0
	}
	return d / halfViewport
}

func lerpRange(lo, hi, frac float64) float64 {
	frac = geometry.Clamp(frac, 0, 1)
	return lo + (hi-lo)*frac
}
