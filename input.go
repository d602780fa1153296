package hologlobe

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputAdapter turns Ebitengine's polled mouse, touch and wheel state into PointerEvents once per tick.
// Ebitengine doesn't tell cancelled touches apart from ended ones, so it never produces TouchCancel.
type InputAdapter struct {
	WheelPixelsPerLine float64 // How many pixels of scroll one wheel notch is worth

	cursorX, cursorY int
	touchIDs         []ebiten.TouchID
	pressedIDs       []ebiten.TouchID
	releasedIDs      []ebiten.TouchID
	events           []PointerEvent
}

// NewInputAdapter creates a new InputAdapter.
func NewInputAdapter(wheelPixelsPerLine float64) *InputAdapter {
	return &InputAdapter{WheelPixelsPerLine: wheelPixelsPerLine}
}

// Poll returns this tick's pointer events, in the order they should be handled, and the wheel scroll in pixels
// (positive scrolls down, which zooms out). The returned slice is reused by the next call.
func (in *InputAdapter) Poll() ([]PointerEvent, float64) {

	in.events = in.events[:0]

	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.events = append(in.events, PointerEvent{Kind: PointerDown, X: float64(mx), Y: float64(my)})
	} else if mx != in.cursorX || my != in.cursorY {
		in.events = append(in.events, PointerEvent{Kind: PointerMove, X: float64(mx), Y: float64(my)})
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.events = append(in.events, PointerEvent{Kind: PointerUp, X: float64(mx), Y: float64(my)})
	}

	in.cursorX, in.cursorY = mx, my

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.pressedIDs = inpututil.AppendJustPressedTouchIDs(in.pressedIDs[:0])
	in.releasedIDs = inpututil.AppendJustReleasedTouchIDs(in.releasedIDs[:0])

	for _, id := range in.pressedIDs {
		tx, ty := ebiten.TouchPosition(id)
		in.events = append(in.events, PointerEvent{Kind: TouchStart, X: float64(tx), Y: float64(ty), Touches: len(in.touchIDs)})
	}

	if len(in.touchIDs) == 1 && len(in.pressedIDs) == 0 {
		id := in.touchIDs[0]
		tx, ty := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if tx != px || ty != py {
			in.events = append(in.events, PointerEvent{Kind: TouchMove, X: float64(tx), Y: float64(ty), Touches: 1})
		}
	}

	for _, id := range in.releasedIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		in.events = append(in.events, PointerEvent{Kind: TouchEnd, X: float64(tx), Y: float64(ty), Touches: len(in.touchIDs)})
	}

	_, wheelY := ebiten.Wheel()

	return in.events, -wheelY * in.WheelPixelsPerLine

}
