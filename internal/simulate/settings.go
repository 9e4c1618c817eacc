package simulate

// Settings tunes both CameraControllers.
type Settings struct {
	StaticViewportMargin float64 // 0.15
	StaticMinPanInterval float64 // 0.3s
	StaticCorrectionFrac float64 // 0.4
	StaticPanDurationMin float64 // 0.2
	StaticPanDurationMax float64 // 0.5

	FollowViewportMargin  float64 // 0.05
	FollowMinMoveInterval float64 // 0.15s
	FollowCorrectionFrac  float64 // 0.6
	FollowPanDurationMin  float64 // 0.1
	FollowPanDurationMax  float64 // 0.4
	LookAheadTime         float64 // 0.2s
}

// DefaultSettings returns the package defaults.
func DefaultSettings() Settings {
	return Settings{
		StaticViewportMargin: 0.15,
		StaticMinPanInterval: 0.3,
		StaticCorrectionFrac: 0.4,
		StaticPanDurationMin: 0.2,
		StaticPanDurationMax: 0.5,

		FollowViewportMargin:  0.05,
		FollowMinMoveInterval: 0.15,
		FollowCorrectionFrac:  0.6,
		FollowPanDurationMin:  0.1,
		FollowPanDurationMax:  0.4,
		LookAheadTime:         0.2,
	}
}
