// Package capture bridges a recorded screen video to the duration/frame
// rate metadata director.Generate needs, reading it back with Vidio rather
// than trusting whatever the recorder assumed going in.
package capture

import (
	"fmt"

	vidio "github.com/AlexEidt/Vidio"

	"github.com/vedantwpatil/autodirector/internal/model"
)

// VideoMetadata is the subset of a recorded file's properties the director
// needs to bound and normalize event timestamps.
type VideoMetadata struct {
	Duration  float64
	FrameRate float64
	Width     int
	Height    int
}

// ReadMetadata opens a recorded video file just long enough to read its
// duration, frame rate, and pixel dimensions.
func ReadMetadata(path string) (VideoMetadata, error) {
	video, err := vidio.NewVideo(path)
	if err != nil {
		return VideoMetadata{}, fmt.Errorf("failed to open recorded video at %s: %w", path, err)
	}
	defer video.Close()

	return VideoMetadata{
		Duration:  video.Duration(),
		FrameRate: video.FPS(),
		Width:     video.Width(),
		Height:    video.Height(),
	}, nil
}

// AttachMetadata fills in Duration, FrameRate, and ScreenBounds on an
// otherwise-assembled RecordingInput from a recorded file's metadata.
func AttachMetadata(input model.RecordingInput, meta VideoMetadata) model.RecordingInput {
	input.Duration = meta.Duration
	input.FrameRate = meta.FrameRate
	input.ScreenBounds = model.PixelRect{MinX: 0, MinY: 0, MaxX: float64(meta.Width), MaxY: float64(meta.Height)}
	return input
}
