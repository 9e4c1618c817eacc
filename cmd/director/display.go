package main

import "github.com/kbinani/screenshot"

// primaryDisplaySize returns the primary display's pixel dimensions.
func primaryDisplaySize() (float64, float64) {
	bounds := screenshot.GetDisplayBounds(0)
	return float64(bounds.Dx()), float64(bounds.Dy())
}
