package hologlobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUD_ToastFades(t *testing.T) {
	hud := NewHUD()
	assert.False(t, hud.ToastVisible())

	hud.ShowToast("Tokyo", LocationMessage(DefaultLocations()[2]))
	assert.True(t, hud.ToastVisible())
	assert.Equal(t, float32(1), hud.ToastAlpha())

	hud.Update(1)
	assert.InDelta(t, 1, hud.ToastAlpha(), 1e-6, "still opaque")

	hud.Update(2.5)
	assert.InDelta(t, 0.5, hud.ToastAlpha(), 1e-5, "halfway through fading out")
	assert.True(t, hud.ToastVisible())

	hud.Update(1)
	assert.False(t, hud.ToastVisible())
	assert.Zero(t, hud.ToastAlpha())
}

func TestHUD_NewToastReplacesOld(t *testing.T) {
	hud := NewHUD()

	hud.ShowToast("London", "first")
	hud.Update(3.9)

	hud.ShowToast("Sydney", "second")
	assert.Equal(t, float32(1), hud.ToastAlpha())
	assert.Equal(t, "Sydney", hud.toastTitle)

	hud.Update(2)
	assert.True(t, hud.ToastVisible())
}
