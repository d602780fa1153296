package hologlobe

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineSpacing = 16
	// Toasts stay fully opaque for the first three seconds, then fade out over the last one.
	toastSeconds = 4
)

// HUD draws the 2D overlay on top of the globe: the loading indicator, the error state, pick notifications and
// optional help and debug text.
type HUD struct {
	ShowHelp bool
	HelpText string

	face text.Face

	toastTitle   string
	toastMessage string
	toastTween   *gween.Tween
	toastAlpha   float32
}

// NewHUD creates a new HUD. The font face is created on first draw.
func NewHUD() *HUD {
	return &HUD{}
}

// ShowToast shows a notification box with the title and message given; it fades out after a few seconds.
// A new toast replaces the current one.
func (hud *HUD) ShowToast(title, message string) {
	hud.toastTitle = title
	hud.toastMessage = message
	hud.toastTween = gween.New(toastSeconds, 0, toastSeconds, ease.Linear)
	hud.toastAlpha = 1
}

// ToastVisible returns whether a toast is currently showing.
func (hud *HUD) ToastVisible() bool {
	return hud.toastTween != nil
}

// ToastAlpha returns the current opacity of the toast.
func (hud *HUD) ToastAlpha() float32 {
	return hud.toastAlpha
}

// Update advances the toast fade by dt seconds.
func (hud *HUD) Update(dt float64) {

	if hud.toastTween == nil {
		return
	}

	v, finished := hud.toastTween.Update(float32(dt))
	hud.toastAlpha = clamp(v, 0, 1)

	if finished {
		hud.toastTween = nil
		hud.toastAlpha = 0
	}

}

func (hud *HUD) fontFace() text.Face {
	if hud.face == nil {
		hud.face = text.NewGoXFace(basicfont.Face7x13)
	}
	return hud.face
}

// DrawText draws outlined text onto the screen at the position given.
func (hud *HUD) DrawText(screen *ebiten.Image, txt string, posX, posY float64, clr Color) {

	face := hud.fontFace()

	op := &text.DrawOptions{}
	op.LineSpacing = hudLineSpacing
	op.ColorScale.Scale(0, 0, 0, clr.A)

	for y := -1; y < 2; y++ {
		for x := -1; x < 2; x++ {
			op.GeoM.Reset()
			op.GeoM.Translate(posX+float64(x), posY+float64(y))
			text.Draw(screen, txt, face, op)
		}
	}

	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(clr.ToNRGBA64())
	op.GeoM.Reset()
	op.GeoM.Translate(posX, posY)
	text.Draw(screen, txt, face, op)

}

// Draw draws the toast and, if enabled, the help text.
func (hud *HUD) Draw(screen *ebiten.Image) {

	if hud.ShowHelp && hud.HelpText != "" {
		hud.DrawText(screen, hud.HelpText, 8, 8, NewColor(0.8, 0.8, 0.8, 1))
	}

	if hud.toastTween == nil || hud.toastAlpha <= 0 {
		return
	}

	body := hud.toastTitle + "\n" + hud.toastMessage
	w, h := text.Measure(body, hud.fontFace(), hudLineSpacing)

	bounds := screen.Bounds()
	boxW, boxH := w+24, h+16
	x := (float64(bounds.Dx()) - boxW) / 2
	y := float64(bounds.Dy()) - boxH - 24

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), NewColor(0, 0.08, 0, 0.85*hud.toastAlpha).ToNRGBA64(), true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 1, NewColorFromHex(0x00ff00).WithAlpha(hud.toastAlpha).ToNRGBA64(), true)

	hud.DrawText(screen, body, x+12, y+8, NewColorFromHex(0x00ff00).WithAlpha(hud.toastAlpha))

}

// DrawLoading draws the loading indicator, animated by the elapsed time in seconds.
func (hud *HUD) DrawLoading(screen *ebiten.Image, seconds float64) {
	dots := int(math.Mod(seconds*3, 4))
	txt := "INITIALIZING GLOBE" + strings.Repeat(".", dots)
	hud.drawCentered(screen, txt, NewColorFromHex(0x00ff00))
}

// DrawError draws the error state in place of the globe.
func (hud *HUD) DrawError(screen *ebiten.Image, err error) {
	hud.drawCentered(screen, fmt.Sprintf("GLOBE UNAVAILABLE\n%v", err), NewColor(1, 0.2, 0.2, 1))
}

func (hud *HUD) drawCentered(screen *ebiten.Image, txt string, clr Color) {
	w, h := text.Measure(txt, hud.fontFace(), hudLineSpacing)
	bounds := screen.Bounds()
	hud.DrawText(screen, txt, (float64(bounds.Dx())-w)/2, (float64(bounds.Dy())-h)/2, clr)
}

// DrawDebugRenderInfo draws the Camera's render statistics at the top-right of the screen.
func (hud *HUD) DrawDebugRenderInfo(screen *ebiten.Image, camera *Camera) {

	info := camera.DebugInfo

	debugText := fmt.Sprintf(
		"TPS: %.1f\nFPS: %.1f\nRender time: %.2fms\nDraw calls: %d\nTriangles: %d/%d\nLines: %d/%d",
		ebiten.ActualTPS(),
		ebiten.ActualFPS(),
		float64(info.FrameTime.Microseconds())/1000,
		info.DrawCalls,
		info.DrawnTris,
		info.TotalTris,
		info.DrawnLines,
		info.TotalLines,
	)

	w, _ := text.Measure(debugText, hud.fontFace(), hudLineSpacing)
	hud.DrawText(screen, debugText, float64(screen.Bounds().Dx())-w-8, 8, NewColor(0.8, 0.8, 0.8, 1))

}
