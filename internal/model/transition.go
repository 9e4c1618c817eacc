package model

import "github.com/vedantwpatil/autodirector/internal/easing"

// TransitionStyleKind is the closed sum of transition styles.
type TransitionStyleKind int

const (
	TransitionDirectPan TransitionStyleKind = iota
	TransitionZoomOutAndIn
	TransitionCut
)

// TransitionStyle carries the style-specific parameters.
type TransitionStyle struct {
	Kind        TransitionStyleKind
	Duration    float64 // directPan, cut
	OutDuration float64 // zoomOutAndIn
	InDuration  float64 // zoomOutAndIn
}

func (s TransitionStyle) TotalDuration() float64 {
	switch s.Kind {
	case TransitionZoomOutAndIn:
		return s.OutDuration + s.InDuration
	default:
		return s.Duration
	}
}

// TransitionPlan is the style and easing used between two adjacent scenes.
type TransitionPlan struct {
	FromScene CameraScene
	ToScene   CameraScene
	Style     TransitionStyle
	Easing    easing.Easing
}
