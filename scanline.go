package hologlobe

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	ScanLineStep   = 0.1         // Radians a scan line turns each frame
	ScanLineBudget = 4 * math.Pi // Radians a scan line turns before it's removed
)

// ScanLine is a transient ring that sweeps around the globe, fading in and out, for two full turns.
type ScanLine struct {
	Model    *Model
	Angle    float64
	Finished bool
	tween    *gween.Tween
}

// NewScanLine creates a ScanLine ring between the radii given. It isn't added to any scene.
func NewScanLine(innerRadius, outerRadius float64) *ScanLine {

	mat := NewMaterial("Scan Line")
	mat.Color = NewColorFromHex(0x00ff00).WithAlpha(0.3)
	mat.CullMode = CullModeNone

	return &ScanLine{
		Model: NewModel("Scan Line", NewRingMesh(innerRadius, outerRadius, 32), mat),
		// One unit of tween time per frame.
		tween: gween.New(0, ScanLineBudget, ScanLineBudget/ScanLineStep, ease.Linear),
	}

}

// ScanLineFrames returns how many frames a ScanLine lives for.
func ScanLineFrames() int {
	return int(math.Ceil(float64(float32(ScanLineBudget / ScanLineStep))))
}

// Advance turns the ScanLine by one frame and updates its opacity, returning true once it has used up its turning budget.
func (scan *ScanLine) Advance() bool {

	if scan.Finished {
		return true
	}

	angle, finished := scan.tween.Update(1)
	scan.Angle = float64(angle)
	scan.Finished = finished

	scan.Model.SetLocalRotation(NewMatrix4Rotate(0, 0, 1, scan.Angle))
	scan.Model.Material.SetOpacity(float32(math.Sin(scan.Angle*2)*0.2 + 0.3))

	return finished

}
