package hologlobe

import (
	_ "embed"
	"fmt"
	"math"
)

//go:embed shaders/atmosphere.kage
var atmosphereShaderSrc []byte

// Atmosphere is the glowing shell around the globe. Only its back faces are drawn, additively, so it reads as a rim of light
// rather than a solid sphere.
type Atmosphere struct {
	*Model
	time      float64
	shaderErr error
	compiled  bool
}

// NewAtmosphere creates the atmosphere shell with the radius given.
func NewAtmosphere(radius float64) *Atmosphere {

	atmo := &Atmosphere{}

	mat := NewMaterial("Atmosphere")
	mat.Color = NewColor(0, 1, 0.2, 1)
	mat.CullMode = CullModeFront
	mat.BlendMode = BlendModeAdditive
	mat.Uniforms["Time"] = float32(0)
	mat.VertexProgram = func(viewPosition, viewNormal Vector) Color {
		intensity := AtmosphereIntensity(viewNormal)
		if mat.Shader != nil {
			return Color{R: clamp(float32(intensity/4), 0, 1), A: 1}
		}
		// Without the shader, the pulse is baked into the vertex color instead.
		return mat.Color.WithAlpha(clamp(float32(intensity*AtmospherePulse(atmo.time)*0.6), 0, 1))
	}

	atmo.Model = NewModel("Atmosphere", NewSphereMesh(radius, 32, 32), mat)

	return atmo

}

// AtmosphereIntensity returns the rim glow intensity for a surface with the given view-space normal; it grows as the
// surface turns away from the viewer.
func AtmosphereIntensity(viewNormal Vector) float64 {
	return math.Pow(0.5-viewNormal.Dot(WorldBackward), 3)
}

// AtmospherePulse returns the slow brightness pulse of the glow at the time given, in seconds. It ranges from 0.6 to 1.
func AtmospherePulse(seconds float64) float64 {
	return math.Sin(seconds*2)*0.2 + 0.8
}

// SetTime sets the time, in seconds, that drives the glow's pulse.
func (atmo *Atmosphere) SetTime(seconds float64) {
	atmo.time = seconds
	atmo.Material.Uniforms["Time"] = float32(seconds)
}

// Time returns the time last set through SetTime().
func (atmo *Atmosphere) Time() float64 {
	return atmo.time
}

// compileShader compiles the glow shader once; it must be called from the draw goroutine. If compilation fails, the
// Atmosphere keeps drawing with baked vertex colors and the error is returned every call.
func (atmo *Atmosphere) compileShader() error {
	if !atmo.compiled {
		atmo.compiled = true
		if _, err := atmo.Material.SetShader(atmosphereShaderSrc); err != nil {
			atmo.shaderErr = fmt.Errorf("compiling atmosphere shader: %w", err)
		}
	}
	return atmo.shaderErr
}
