package track

// Settings tunes the track emitters.
type Settings struct {
	// CameraTrackEmitter trim budget.
	MaxTrimFractionOfNeighbor float64 // 0.3
	MaxTrimFractionOfScene    float64 // 0.8

	// SegmentOptimizer.
	NegligibleZoomDiff    float64 // 0.03
	NegligibleCenterDiff  float64 // 0.015
	MergeConsecutiveHolds bool

	// Post-hoc zoom intensity.
	ZoomIntensity float64 // 1.0

	// CursorTrackEmitter.
	CursorScale float64

	// KeystrokeTrackEmitter.
	KeystrokeEnabled bool
	ShortcutsOnly    bool
	DisplayDuration  float64 // 1.5s
	FadeInDuration   float64
	FadeOutDuration  float64
	MinInterval      float64 // 0.05s
}

// DefaultSettings returns the package defaults.
func DefaultSettings() Settings {
	return Settings{
		MaxTrimFractionOfNeighbor: 0.3,
		MaxTrimFractionOfScene:    0.8,

		NegligibleZoomDiff:    0.03,
		NegligibleCenterDiff:  0.015,
		MergeConsecutiveHolds: true,

		ZoomIntensity: 1.0,

		CursorScale: 1.0,

		KeystrokeEnabled: true,
		ShortcutsOnly:    false,
		DisplayDuration:  1.5,
		FadeInDuration:   0.1,
		FadeOutDuration:  0.3,
		MinInterval:      0.05,
	}
}
