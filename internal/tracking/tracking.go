// Package tracking captures live mouse, click, and keyboard events into the
// buffers director.Generate consumes as RecordingInput producers.
// It polls robotgo for cursor position and registers gohook handlers for
// clicks and keys, emitting normalized, timestamped samples.
package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

// Session accumulates events from one recording, normalized against a fixed
// screen size.
type Session struct {
	screenW, screenH float64
	startTime        time.Time

	mu     sync.Mutex
	moves  []model.MouseMoveSample
	clicks []model.ClickEvent
	keys   []model.KeyEvent

	downKeys map[uint16]bool
}

// NewSession creates a tracking session against a known screen size in
// pixels (RecordingInput.ScreenBounds).
func NewSession(screenW, screenH float64) *Session {
	return &Session{screenW: screenW, screenH: screenH, downKeys: make(map[uint16]bool)}
}

// Start begins polling the mouse position at targetFPS and registering
// click/key hooks. It blocks until hook.End is called (see Stop); cancelling
// ctx stops only the mouse polling.
func (s *Session) Start(ctx context.Context, targetFPS int) {
	s.startTime = time.Now()

	go s.pollMouse(ctx, targetFPS)

	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		s.recordClick(e, model.LeftDown)
	})
	hook.Register(hook.MouseUp, []string{}, func(e hook.Event) {
		s.recordClick(e, model.LeftUp)
	})
	hook.Register(hook.KeyDown, []string{}, func(e hook.Event) {
		s.recordKey(e, model.KeyDown)
	})
	hook.Register(hook.KeyUp, []string{}, func(e hook.Event) {
		s.recordKey(e, model.KeyUp)
	})

	evChan := hook.Start()
	<-hook.Process(evChan)
}

func (s *Session) pollMouse(ctx context.Context, targetFPS int) {
	ticker := time.NewTicker(time.Second / time.Duration(targetFPS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			x, y := robotgo.Location()
			s.mu.Lock()
			s.moves = append(s.moves, model.MouseMoveSample{
				Time:     time.Since(s.startTime).Seconds(),
				Position: geometry.NormalizePixelPoint(float64(x), float64(y), s.screenW, s.screenH),
			})
			s.mu.Unlock()
		}
	}
}

func (s *Session) recordClick(e hook.Event, clickType model.ClickType) {
	if e.Button != hook.MouseMap["left"] && clickType != model.LeftDown && clickType != model.LeftUp {
		return
	}
	pos := geometry.NormalizePixelPoint(float64(e.X), float64(e.Y), s.screenW, s.screenH)
	s.mu.Lock()
	s.clicks = append(s.clicks, model.ClickEvent{
		Time:     time.Since(s.startTime).Seconds(),
		Position: pos,
		Type:     clickType,
	})
	s.mu.Unlock()
}

func (s *Session) recordKey(e hook.Event, eventType model.KeyEventType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eventType == model.KeyDown && s.downKeys[e.Rawcode] {
		return // auto-repeat: caller sees only the edges
	}
	s.downKeys[e.Rawcode] = eventType == model.KeyDown

	s.keys = append(s.keys, model.KeyEvent{
		Time:      time.Since(s.startTime).Seconds(),
		KeyCode:   int(e.Rawcode),
		HasCode:   e.Rawcode != 0,
		Type:      eventType,
		Character: rune(e.Keychar),
	})
}

// Stop ends the hook loop started by Start.
func (s *Session) Stop() { hook.End() }

// Drain returns the accumulated samples as a RecordingInput with the given
// total duration. It does not reset the session.
func (s *Session) Drain(duration, frameRate float64) model.RecordingInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.RecordingInput{
		Duration:     duration,
		FrameRate:    frameRate,
		ScreenBounds: model.PixelRect{MinX: 0, MinY: 0, MaxX: s.screenW, MaxY: s.screenH},
		MouseMoves:   append([]model.MouseMoveSample(nil), s.moves...),
		Clicks:       append([]model.ClickEvent(nil), s.clicks...),
		Keys:         append([]model.KeyEvent(nil), s.keys...),
	}
}
