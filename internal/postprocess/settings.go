package postprocess

// Settings tunes the post-processing pipeline.
type Settings struct {
	SmoothingEnabled bool
	WindowSize       int
	MaxDeviation     float64

	ZoomInThreshold float64
	MinZoomInHold   float64
	MinZoomOutHold  float64

	MinSegmentDuration    float64
	MaxZoomDiffForMerge   float64
	MaxCenterDiffForMerge float64
}

// DefaultSettings returns the package defaults.
func DefaultSettings() Settings {
	return Settings{
		SmoothingEnabled: false,
		WindowSize:       5,
		MaxDeviation:     0.02,

		ZoomInThreshold: 1.05,
		MinZoomInHold:   0.8,
		MinZoomOutHold:  0.5,

		MinSegmentDuration:    0.3,
		MaxZoomDiffForMerge:   0.15,
		MaxCenterDiffForMerge: 0.08,
	}
}
