package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

func scenePlan(intent model.IntentKind, appContext string, center geometry.Point, zoom float64) model.ShotPlan {
	return model.ShotPlan{
		Scene:       model.CameraScene{PrimaryIntent: model.UserIntent{Kind: intent}, AppContext: appContext},
		IdealCenter: center,
		IdealZoom:   zoom,
	}
}

func TestPlan_SwitchingIntentForcesCut(t *testing.T) {
	plans := []model.ShotPlan{
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.2, Y: 0.2}, 1.5),
		scenePlan(model.IntentSwitching, "a", geometry.Point{X: 0.2, Y: 0.2}, 1.0),
	}
	transitions := Plan(plans, DefaultSettings())
	require.Len(t, transitions, 1)
	assert.Equal(t, model.TransitionCut, transitions[0].Style.Kind)
}

func TestPlan_AppContextChangeForcesCut(t *testing.T) {
	plans := []model.ShotPlan{
		scenePlan(model.IntentClicking, "com.apple.safari", geometry.Point{X: 0.2, Y: 0.2}, 1.5),
		scenePlan(model.IntentClicking, "com.apple.finder", geometry.Point{X: 0.3, Y: 0.3}, 1.5),
	}
	transitions := Plan(plans, DefaultSettings())
	require.Len(t, transitions, 1)
	assert.Equal(t, model.TransitionCut, transitions[0].Style.Kind)
}

func TestPlan_SmallMoveIsDirectPan(t *testing.T) {
	plans := []model.ShotPlan{
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.50, Y: 0.50}, 2.0),
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.52, Y: 0.50}, 2.0),
	}
	transitions := Plan(plans, DefaultSettings())
	require.Len(t, transitions, 1)
	assert.Equal(t, model.TransitionDirectPan, transitions[0].Style.Kind)
	assert.Greater(t, transitions[0].Style.Duration, 0.0)
}

func TestPlan_LargeMoveIsZoomOutAndIn(t *testing.T) {
	plans := []model.ShotPlan{
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.05, Y: 0.05}, 2.5),
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.95, Y: 0.95}, 2.5),
	}
	transitions := Plan(plans, DefaultSettings())
	require.Len(t, transitions, 1)
	assert.Equal(t, model.TransitionZoomOutAndIn, transitions[0].Style.Kind)
	assert.Greater(t, transitions[0].Style.OutDuration, 0.0)
	assert.Greater(t, transitions[0].Style.InDuration, 0.0)
}

func TestPlan_ReturnsOneFewerThanScenes(t *testing.T) {
	plans := []model.ShotPlan{
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.1, Y: 0.1}, 1.5),
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.2, Y: 0.2}, 1.5),
		scenePlan(model.IntentClicking, "a", geometry.Point{X: 0.3, Y: 0.3}, 1.5),
	}
	transitions := Plan(plans, DefaultSettings())
	assert.Len(t, transitions, 2)
}
