package track

import (
	"strings"

	"github.com/vedantwpatil/autodirector/internal/model"
)

// macOS virtual key codes for the fixed set of special keys this table
// names. These follow the same platform the rest of the ElementInfo
// role vocabulary (AXButton, AXTextField, ...) targets.
const (
	keyReturn     = 36
	keyTab        = 48
	keySpace      = 49
	keyDelete     = 51
	keyEscape     = 53
	keyLeftArrow  = 123
	keyRightArrow = 124
	keyDownArrow  = 125
	keyUpArrow    = 126
	keyHome       = 115
	keyEnd        = 119
	keyPageUp     = 116
	keyPageDown   = 121

	// recordingStopHotkeyCode is the dedicated keyCode for the trailing
	// Cmd+Shift stop-recording shortcut, filtered out of the overlay track.
	recordingStopHotkeyCode = 19
)

var specialKeyNames = map[int]string{
	keyReturn: "Return", keyTab: "Tab", keySpace: "Space", keyDelete: "Delete",
	keyEscape: "Escape", keyLeftArrow: "←", keyRightArrow: "→",
	keyDownArrow: "↓", keyUpArrow: "↑",
	keyHome: "Home", keyEnd: "End", keyPageUp: "Page Up", keyPageDown: "Page Down",
}

var functionKeyCodes = map[int]string{
	122: "F1", 120: "F2", 99: "F3", 118: "F4", 96: "F5", 97: "F6",
	98: "F7", 100: "F8", 101: "F9", 109: "F10", 103: "F11", 111: "F12",
}

// EmitKeystroke builds the KeystrokeTrack from keyDown events in the
// timeline.
func EmitKeystroke(events []model.UnifiedEvent, duration float64, settings Settings) model.KeystrokeTrack {
	if !settings.KeystrokeEnabled {
		return model.KeystrokeTrack{}
	}

	keyDowns := filterKeyDowns(events)
	keyDowns = dropTrailingStopHotkey(keyDowns, duration)

	var segments []model.KeystrokeSegment
	lastEmitted := -1.0
	for _, e := range keyDowns {
		if isStandaloneModifier(e) {
			continue
		}
		if settings.ShortcutsOnly && e.Meta.Modifiers == 0 {
			continue
		}
		if lastEmitted >= 0 && e.Time-lastEmitted < settings.MinInterval {
			continue
		}

		text, ok := displayText(e)
		if !ok {
			continue
		}
		segments = append(segments, model.KeystrokeSegment{
			StartTime:   e.Time,
			EndTime:     e.Time + settings.DisplayDuration,
			DisplayText: text,
			FadeIn:      settings.FadeInDuration,
			FadeOut:     settings.FadeOutDuration,
		})
		lastEmitted = e.Time
	}

	return model.KeystrokeTrack{Segments: segments}
}

func filterKeyDowns(events []model.UnifiedEvent) []model.UnifiedEvent {
	var out []model.UnifiedEvent
	for _, e := range events {
		if e.Kind == model.EventKeyDown {
			out = append(out, e)
		}
	}
	return out
}

// dropTrailingStopHotkey removes the final keyDown if it is the Cmd+Shift
// recording-stop hotkey (keyCode recordingStopHotkeyCode), or (when the keyCode could not be
// resolved) a Cmd+Shift keydown within 0.5s of the recording's end.
func dropTrailingStopHotkey(keyDowns []model.UnifiedEvent, duration float64) []model.UnifiedEvent {
	if len(keyDowns) == 0 {
		return keyDowns
	}
	last := keyDowns[len(keyDowns)-1]
	cmdShift := last.Meta.Modifiers.Has(model.ModCommand) && last.Meta.Modifiers.Has(model.ModShift)
	if !cmdShift {
		return keyDowns
	}
	if last.Meta.HasKeyCode && last.Meta.KeyCode == recordingStopHotkeyCode {
		return keyDowns[:len(keyDowns)-1]
	}
	if !last.Meta.HasKeyCode && duration-last.Time <= 0.5 {
		return keyDowns[:len(keyDowns)-1]
	}
	return keyDowns
}

func isStandaloneModifier(e model.UnifiedEvent) bool {
	return e.Meta.Character == 0 && !e.Meta.HasKeyCode
}

// displayText resolves an event's display string: special-key name,
// function key, printable character (recovering letters from their
// control-character code points), all prefixed with held modifier glyphs
// in the fixed ⌃⌥⇧⌘ order.
func displayText(e model.UnifiedEvent) (string, bool) {
	var base string
	switch {
	case e.Meta.HasKeyCode && specialKeyNames[e.Meta.KeyCode] != "":
		base = specialKeyNames[e.Meta.KeyCode]
	case e.Meta.HasKeyCode && functionKeyCodes[e.Meta.KeyCode] != "":
		base = functionKeyCodes[e.Meta.KeyCode]
	case e.Meta.Character != 0:
		base = string(recoverPrintable(e.Meta.Character))
	default:
		return "", false
	}

	return prependModifiers(base, e.Meta.Modifiers), true
}

// recoverPrintable maps control-character code points U+0001-U+001A back to
// the letters A-Z, the form they arrive as when Control is held.
func recoverPrintable(r rune) rune {
	if r >= 1 && r <= 26 {
		return 'A' + (r - 1)
	}
	return r
}

func prependModifiers(base string, mods model.Modifiers) string {
	var b strings.Builder
	if mods.Has(model.ModControl) {
		b.WriteString("⌃")
	}
	if mods.Has(model.ModOption) {
		b.WriteString("⌥")
	}
	if mods.Has(model.ModShift) {
		b.WriteString("⇧")
	}
	if mods.Has(model.ModCommand) {
		b.WriteString("⌘")
	}
	b.WriteString(base)
	return b.String()
}
