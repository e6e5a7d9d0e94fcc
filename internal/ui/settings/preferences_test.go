package settings

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/aura/internal/app"
)

func TestNewForm_Defaults(t *testing.T) {
	a := test.NewTempApp(t)
	f := NewForm(a.Preferences(), nil)

	assert.Equal(t, "200", f.HoverDelay.Text)
	assert.False(t, f.ReducedMotion.Checked)
	assert.False(t, f.Touch.Checked)
	assert.Equal(t, "System Default", f.Theme.Selected)
}

func TestForm_SaveRoundTrip(t *testing.T) {
	a := test.NewTempApp(t)
	prefs := a.Preferences()

	f := NewForm(prefs, nil)
	f.HoverDelay.SetText("450")
	f.ReducedMotion.SetChecked(true)
	f.Touch.SetChecked(true)
	f.Theme.SetSelected("Dark")

	assert.Equal(t, "dark", f.Save(prefs))
	assert.Equal(t, 450, prefs.Int(app.PrefHoverDelay))
	assert.True(t, prefs.Bool(app.PrefReducedMotion))
	assert.True(t, prefs.Bool(app.PrefTouchMode))

	cfg := app.DefaultConfig()
	app.ApplyPreferences(cfg, prefs)
	again := NewForm(prefs, cfg)
	assert.Equal(t, "450", again.HoverDelay.Text)
	assert.Equal(t, "Dark", again.Theme.Selected)
}

func TestForm_InvalidDelayKeepsPrevious(t *testing.T) {
	a := test.NewTempApp(t)
	prefs := a.Preferences()
	prefs.SetInt(app.PrefHoverDelay, 300)

	f := NewForm(prefs, nil)
	f.HoverDelay.SetText("-1")
	assert.Error(t, f.HoverDelay.Validate())

	f.Save(prefs)
	assert.Equal(t, 300, prefs.Int(app.PrefHoverDelay))
}

func TestForm_ShowsEffectiveConfig(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := app.DefaultConfig()
	cfg.HoverDelay = 500 * time.Millisecond
	cfg.ReducedMotion = true
	cfg.TouchMode = true

	f := NewForm(a.Preferences(), cfg)

	assert.Equal(t, "500", f.HoverDelay.Text)
	assert.True(t, f.ReducedMotion.Checked)
	assert.True(t, f.Touch.Checked)
}

func TestForm_ThemeOnlySaveKeepsEnvSettings(t *testing.T) {
	t.Setenv("AURA_REDUCED_MOTION", "true")
	t.Setenv("AURA_TOUCH", "true")
	t.Setenv("AURA_HOVER_DELAY", "500ms")

	a := test.NewTempApp(t)
	prefs := a.Preferences()

	cfg := app.DefaultConfig()
	app.ApplyEnv(cfg)
	app.ApplyPreferences(cfg, prefs)
	require.True(t, cfg.ReducedMotion)
	require.Equal(t, 500*time.Millisecond, cfg.HoverDelay)

	f := NewForm(prefs, cfg)
	f.Theme.SetSelected("Dark")
	assert.Equal(t, "dark", f.Save(prefs))

	app.ApplyPreferences(cfg, prefs)
	assert.True(t, cfg.ReducedMotion)
	assert.True(t, cfg.TouchMode)
	assert.Equal(t, 500*time.Millisecond, cfg.HoverDelay)
}
