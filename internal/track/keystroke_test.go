package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autodirector/internal/model"
)

func keyDown(time float64, ch rune, mods model.Modifiers) model.UnifiedEvent {
	return model.UnifiedEvent{
		Time: time, Kind: model.EventKeyDown,
		Meta: model.EventMetadata{Character: ch, Modifiers: mods},
	}
}

func keyDownCode(time float64, code int, mods model.Modifiers) model.UnifiedEvent {
	return model.UnifiedEvent{
		Time: time, Kind: model.EventKeyDown,
		Meta: model.EventMetadata{KeyCode: code, HasKeyCode: true, Modifiers: mods},
	}
}

func TestEmitKeystroke_PrintableCharacterBecomesSegment(t *testing.T) {
	events := []model.UnifiedEvent{keyDown(1.0, 'a', 0)}
	tr := EmitKeystroke(events, 5, DefaultSettings())
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "a", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_ControlCharacterRecoversLetter(t *testing.T) {
	// Control+A arrives with Character code point 1.
	events := []model.UnifiedEvent{keyDown(1.0, rune(1), model.ModControl)}
	tr := EmitKeystroke(events, 5, DefaultSettings())
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "⌃A", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_ModifiersPrefixedInFixedOrder(t *testing.T) {
	events := []model.UnifiedEvent{keyDown(1.0, 's', model.ModControl|model.ModOption|model.ModShift|model.ModCommand)}
	tr := EmitKeystroke(events, 5, DefaultSettings())
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "⌃⌥⇧⌘s", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_SpecialKeyUsesName(t *testing.T) {
	events := []model.UnifiedEvent{keyDownCode(1.0, 36, 0)}
	tr := EmitKeystroke(events, 5, DefaultSettings())
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "Return", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_StandaloneModifierIsSkipped(t *testing.T) {
	events := []model.UnifiedEvent{{Time: 1.0, Kind: model.EventKeyDown, Meta: model.EventMetadata{Modifiers: model.ModCommand}}}
	tr := EmitKeystroke(events, 5, DefaultSettings())
	assert.Empty(t, tr.Segments)
}

func TestEmitKeystroke_TrailingStopHotkeyDropped(t *testing.T) {
	events := []model.UnifiedEvent{
		keyDown(1.0, 'a', 0),
		keyDownCode(4.9, recordingStopHotkeyCode, model.ModCommand|model.ModShift),
	}
	tr := EmitKeystroke(events, 5.0, DefaultSettings())
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "a", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_TrailingUnresolvedCmdShiftNearEndDropped(t *testing.T) {
	events := []model.UnifiedEvent{
		keyDown(1.0, 'a', 0),
		{Time: 4.8, Kind: model.EventKeyDown, Meta: model.EventMetadata{Modifiers: model.ModCommand | model.ModShift}},
	}
	tr := EmitKeystroke(events, 5.0, DefaultSettings())
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "a", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_ShortcutsOnlyFiltersBarePresses(t *testing.T) {
	events := []model.UnifiedEvent{
		keyDown(1.0, 'a', 0),
		keyDown(2.0, 's', model.ModCommand),
	}
	settings := DefaultSettings()
	settings.ShortcutsOnly = true
	tr := EmitKeystroke(events, 5, settings)
	require.Len(t, tr.Segments, 1)
	assert.Equal(t, "⌘s", tr.Segments[0].DisplayText)
}

func TestEmitKeystroke_AutoRepeatWithinMinIntervalFiltered(t *testing.T) {
	settings := DefaultSettings()
	settings.MinInterval = 0.05
	events := []model.UnifiedEvent{
		keyDown(1.000, 'a', 0),
		keyDown(1.010, 'a', 0),
		keyDown(1.200, 'a', 0),
	}
	tr := EmitKeystroke(events, 5, settings)
	require.Len(t, tr.Segments, 2)
}

func TestEmitKeystroke_DisabledProducesNoSegments(t *testing.T) {
	settings := DefaultSettings()
	settings.KeystrokeEnabled = false
	events := []model.UnifiedEvent{keyDown(1.0, 'a', 0)}
	tr := EmitKeystroke(events, 5, settings)
	assert.Empty(t, tr.Segments)
}
