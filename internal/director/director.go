// Package director wires the full event-to-camera-track pipeline together:
// EventTimeline builder, drag inference, IntentClassifier, SceneSegmenter,
// ShotPlanner, TransitionPlanner, CameraSimulator, post-processing, and the
// three track emitters.
package director

import (
	"github.com/vedantwpatil/autodirector/internal/diagnostics"
	"github.com/vedantwpatil/autodirector/internal/intent"
	"github.com/vedantwpatil/autodirector/internal/model"
	"github.com/vedantwpatil/autodirector/internal/postprocess"
	"github.com/vedantwpatil/autodirector/internal/scene"
	"github.com/vedantwpatil/autodirector/internal/shot"
	"github.com/vedantwpatil/autodirector/internal/simulate"
	"github.com/vedantwpatil/autodirector/internal/timeline"
	"github.com/vedantwpatil/autodirector/internal/track"
	"github.com/vedantwpatil/autodirector/internal/transition"
)

// Settings aggregates every stage's tunables. DefaultSettings wires in the
// numeric defaults each package enumerates.
type Settings struct {
	Intent      intent.Settings
	Shot        shot.Settings
	Transition  transition.Settings
	Simulate    simulate.Settings
	Postprocess postprocess.Settings
	Track       track.Settings
}

// DefaultSettings returns the per-stage defaults composed into one value.
func DefaultSettings() Settings {
	return Settings{
		Intent:      intent.DefaultSettings(),
		Shot:        shot.DefaultSettings(),
		Transition:  transition.DefaultSettings(),
		Simulate:    simulate.DefaultSettings(),
		Postprocess: postprocess.DefaultSettings(),
		Track:       track.DefaultSettings(),
	}
}

// Generate runs the whole pipeline on a RecordingInput and returns the
// GeneratedTimeline, the CORE's single output value.
func Generate(input model.RecordingInput, settings Settings) model.GeneratedTimeline {
	return generate(input, settings, nil)
}

// GenerateWithDiagnostics runs the same pipeline as Generate, narrating
// each stage's item count and elapsed time through logger. Pass a nil
// logger to silence this without changing behavior.
func GenerateWithDiagnostics(input model.RecordingInput, settings Settings, logger *diagnostics.Logger) model.GeneratedTimeline {
	return generate(input, settings, logger)
}

func generate(input model.RecordingInput, settings Settings, logger *diagnostics.Logger) model.GeneratedTimeline {
	done := logger.Stage("drag inference + timeline build")
	input = timeline.InferDrags(input)
	tl := timeline.Build(input)
	done(len(tl.Events()))

	done = logger.Stage("intent classification")
	spans := intent.Classify(tl, settings.Intent)
	done(len(spans))

	done = logger.Stage("scene segmentation")
	scenes := scene.Segment(spans, tl.Events(), tl.Duration)
	done(len(scenes))

	done = logger.Stage("shot planning")
	plans := shot.Plan(scenes, tl.Events(), input.ScreenBounds, settings.Shot)
	done(len(plans))

	done = logger.Stage("transition planning")
	transitions := transition.Plan(plans, settings.Transition)
	done(len(transitions))

	done = logger.Stage("camera simulation")
	path := simulate.Simulate(scenes, plans, transitions, tl.Events(), settings.Simulate)
	done(len(path.SceneSegments))

	done = logger.Stage("post-processing")
	path = postprocess.Run(path, settings.Postprocess)
	done(len(path.SceneSegments))

	done = logger.Stage("track emission")
	cameraTrack := track.EmitCamera(path, tl.Duration, settings.Track)
	cursorTrack := track.EmitCursor(tl.Duration, settings.Track)
	keystrokeTrack := track.EmitKeystroke(tl.Events(), tl.Duration, settings.Track)
	done(len(cameraTrack.Segments))

	return model.GeneratedTimeline{
		CameraTrack:    cameraTrack,
		CursorTrack:    cursorTrack,
		KeystrokeTrack: keystrokeTrack,
	}
}
