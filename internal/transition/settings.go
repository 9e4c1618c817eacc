package transition

// Settings tunes the TransitionPlanner thresholds.
type Settings struct {
	DirectPanThreshold   float64 // 0.6
	GentlePanThreshold   float64 // 1.2
	FullZoomOutThreshold float64

	ShortPanMin, ShortPanMax        float64
	MediumPanMin, MediumPanMax      float64
	ZoomOutDuration, ZoomInDuration float64

	SpringDampingRatio float64
	SpringResponse     float64
}

// DefaultSettings returns the package defaults.
func DefaultSettings() Settings {
	return Settings{
		DirectPanThreshold:   0.6,
		GentlePanThreshold:   1.2,
		FullZoomOutThreshold: 3.0,

		ShortPanMin: 0.3, ShortPanMax: 0.5,
		MediumPanMin: 0.5, MediumPanMax: 0.9,
		ZoomOutDuration: 0.4, ZoomInDuration: 0.5,

		SpringDampingRatio: 1.0,
		SpringResponse:     0.4,
	}
}
