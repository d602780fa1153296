package hologlobe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLineFrames(t *testing.T) {
	assert.Equal(t, 126, ScanLineFrames())
}

func TestScanLine_Advance(t *testing.T) {
	scan := NewScanLine(EarthRadius*ScanInnerRadiusFactor, EarthRadius*ScanOuterRadiusFactor)
	assert.Nil(t, scan.Model.Parent())
	assert.Equal(t, CullModeNone, scan.Model.Material.CullMode)

	frames := ScanLineFrames()

	for i := 1; i < frames; i++ {
		require.False(t, scan.Advance(), "frame %d", i)
		require.InDelta(t, float64(i)*ScanLineStep, scan.Angle, 1e-4, "frame %d", i)

		opacity := scan.Model.Material.Opacity()
		require.GreaterOrEqual(t, opacity, float32(0.1))
		require.LessOrEqual(t, opacity, float32(0.5))
	}

	assert.True(t, scan.Advance())
	assert.True(t, scan.Finished)
	assert.InDelta(t, ScanLineBudget, scan.Angle, 1e-4)

	// Finished scan lines stay finished.
	assert.True(t, scan.Advance())
	assert.InDelta(t, ScanLineBudget, scan.Angle, 1e-4)
}

func TestScanLine_RotatesAroundZ(t *testing.T) {
	scan := NewScanLine(6.5, 6.75)

	for i := 0; i < 10; i++ {
		scan.Advance()
	}

	rot := scan.Model.LocalRotation()
	assertVectorInDelta(t, WorldBackward, rot.MultVec(WorldBackward), 1e-9)
	assertVectorInDelta(t, NewVector(math.Cos(scan.Angle), math.Sin(scan.Angle), 0), rot.MultVec(WorldRight), 1e-9)
}
