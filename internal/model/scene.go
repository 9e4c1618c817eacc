package model

import "github.com/vedantwpatil/autodirector/internal/geometry"

// CameraScene is the contiguous unit the camera holds.
type CameraScene struct {
	ID            string
	StartTime     float64
	EndTime       float64
	PrimaryIntent UserIntent
	FocusRegions  []geometry.NormRect
	AppContext    string // "" if none dominant
}

func (s CameraScene) Duration() float64 { return s.EndTime - s.StartTime }

// ShotType is the closed sum of shot-source kinds.
type ShotType struct {
	Kind string // "closeUp", "medium", "wide", "establishing"
	Zoom float64
}

const (
	ShotCloseUp      = "closeUp"
	ShotMedium       = "medium"
	ShotWide         = "wide"
	ShotEstablishing = "establishing"
)

// ZoomSource is the diagnostic provenance of a ShotPlan's center/zoom.
type ZoomSource int

const (
	ZoomSourceElement ZoomSource = iota
	ZoomSourceActivityBBox
	ZoomSourceSingleEvent
	ZoomSourceIntentMidpoint
)

func (z ZoomSource) String() string {
	switch z {
	case ZoomSourceElement:
		return "element"
	case ZoomSourceActivityBBox:
		return "activityBBox"
	case ZoomSourceSingleEvent:
		return "singleEvent"
	case ZoomSourceIntentMidpoint:
		return "intentMidpoint"
	default:
		return "unknown"
	}
}

// ShotPlan is the ideal (zoom, center) for a scene.
type ShotPlan struct {
	Scene       CameraScene
	ShotType    ShotType
	IdealZoom   float64
	IdealCenter geometry.Point
	ZoomSource  ZoomSource
	Inherited   bool
}
