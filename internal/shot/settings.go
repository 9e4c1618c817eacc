package shot

import "github.com/vedantwpatil/autodirector/internal/model"

// ZoomRange is an inclusive [Min, Max] nominal zoom range for an intent.
type ZoomRange struct{ Min, Max float64 }

// Mid returns the midpoint of the range.
func (r ZoomRange) Mid() float64 { return (r.Min + r.Max) / 2 }

// Settings is the ShotPlanner's enumerated configuration.
type Settings struct {
	TargetAreaCoverage float64
	WorkAreaPadding    float64
	MinZoom            float64
	MaxZoom            float64
	IdleZoomDecay      float64

	// Per-intent nominal zoom ranges (typing is keyed by context).
	TypingCodeEditor ZoomRange
	TypingTextField  ZoomRange
	TypingTerminal   ZoomRange
	TypingRichText   ZoomRange
	Clicking         ZoomRange
	Navigating       ZoomRange
	Dragging         ZoomRange
	Scrolling        ZoomRange
	Reading          ZoomRange
	Switching        ZoomRange
	Idle             ZoomRange
}

// DefaultSettings returns the package defaults.
func DefaultSettings() Settings {
	return Settings{
		TargetAreaCoverage: 0.7,
		WorkAreaPadding:    0.08,
		MinZoom:            1.0,
		MaxZoom:            2.8,
		IdleZoomDecay:      0.5,

		TypingCodeEditor: ZoomRange{2.0, 2.5},
		TypingTextField:  ZoomRange{2.2, 2.8},
		TypingTerminal:   ZoomRange{1.6, 2.0},
		TypingRichText:   ZoomRange{1.8, 2.2},
		Clicking:         ZoomRange{2.0, 2.0},
		Navigating:       ZoomRange{1.5, 1.8},
		Dragging:         ZoomRange{1.3, 1.6},
		Scrolling:        ZoomRange{1.3, 1.5},
		Reading:          ZoomRange{1.0, 1.3},
		Switching:        ZoomRange{1.0, 1.0},
		Idle:             ZoomRange{1.0, 1.0},
	}
}

// nominalRange returns the configured zoom range for an intent/context.
func (s Settings) nominalRange(intent model.UserIntent) ZoomRange {
	switch intent.Kind {
	case model.IntentTyping:
		switch intent.Context {
		case model.ContextCodeEditor:
			return s.TypingCodeEditor
		case model.ContextTextField:
			return s.TypingTextField
		case model.ContextTerminal:
			return s.TypingTerminal
		case model.ContextRichText:
			return s.TypingRichText
		}
		return s.TypingCodeEditor
	case model.IntentClicking:
		return s.Clicking
	case model.IntentNavigating:
		return s.Navigating
	case model.IntentDragging:
		return s.Dragging
	case model.IntentScrolling:
		return s.Scrolling
	case model.IntentReading:
		return s.Reading
	case model.IntentSwitching:
		return s.Switching
	default:
		return s.Idle
	}
}
