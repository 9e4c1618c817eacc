package postprocess

import "github.com/vedantwpatil/autodirector/internal/model"

// smoothPath implements PathSmoother: a moving average
// over each scene's interior samples, applied only where it would not erase
// an intentional, larger motion.
func smoothPath(path model.SimulatedPath, settings Settings) model.SimulatedPath {
	if !settings.SmoothingEnabled {
		return path
	}
	for si, seg := range path.SceneSegments {
		path.SceneSegments[si].Samples = smoothSamples(seg.Samples, settings)
	}
	return path
}

func smoothSamples(samples []model.TimedTransform, settings Settings) []model.TimedTransform {
	if len(samples) < 3 {
		return samples
	}
	half := settings.WindowSize / 2
	out := append([]model.TimedTransform(nil), samples...)

	for i := 1; i < len(samples)-1; i++ {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(samples)-1 {
			hi = len(samples) - 1
		}

		var sumX, sumY, sumZoom float64
		n := 0
		for j := lo; j <= hi; j++ {
			sumX += samples[j].Transform.Center.X
			sumY += samples[j].Transform.Center.Y
			sumZoom += samples[j].Transform.Zoom
			n++
		}
		avgX, avgY, avgZoom := sumX/float64(n), sumY/float64(n), sumZoom/float64(n)

		cur := samples[i].Transform
		if absDiff(cur.Center.X, avgX) < settings.MaxDeviation && absDiff(cur.Center.Y, avgY) < settings.MaxDeviation {
			out[i].Transform.Center.X = avgX
			out[i].Transform.Center.Y = avgY
			out[i].Transform.Zoom = avgZoom
		}
	}
	return out
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
