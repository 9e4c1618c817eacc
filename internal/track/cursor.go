package track

import "github.com/vedantwpatil/autodirector/internal/model"

// EmitCursor builds the single-segment CursorTrack spanning the whole
// recording.
func EmitCursor(duration float64, settings Settings) model.CursorTrack {
	return model.CursorTrack{
		Segments: []model.CursorSegment{{
			StartTime: 0,
			EndTime:   duration,
			Style:     model.CursorArrow,
			Visible:   true,
			Scale:     settings.CursorScale,
		}},
	}
}
