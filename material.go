package hologlobe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	BlendModeNormal   = iota // BlendModeNormal composites triangles over what's already been drawn. This is the default.
	BlendModeAdditive        // BlendModeAdditive adds the triangles' color to what's already been drawn, for glows.
)

const (
	CullModeBack  = iota // CullModeBack hides faces turned away from the camera. This is the default.
	CullModeNone         // CullModeNone renders both sides of each face.
	CullModeFront        // CullModeFront hides faces turned towards the camera, rendering only back faces.
)

// Material describes how a Model's Mesh is drawn. Materials are unlit; Color (including its alpha, used as the
// Material's opacity) is applied to every vertex unless a VertexProgram or Shader says otherwise.
type Material struct {
	Name      string
	Color     Color   // The overall color of the Material. The alpha channel is used as the Material's opacity.
	Wireframe bool    // If Wireframe is true, triangle meshes are drawn as their edges rather than filled.
	LineWidth float32 // Width of lines, in pixels, for line meshes and wireframes. Defaults to 1.
	CullMode  int     // Which faces are culled when drawing filled triangles. Defaults to CullModeBack.
	BlendMode int     // How triangles are composited onto the screen. Defaults to BlendModeNormal.

	// VertexProgram, if set, runs on each vertex rendered with the Material and returns its color. It's given the
	// vertex's position and normal in view space (so the camera looks down -Z).
	VertexProgram func(viewPosition, viewNormal Vector) Color

	// Shader, if set, is used to draw the Material's filled triangles. Uniforms are passed to it as-is.
	Shader   *ebiten.Shader
	Uniforms map[string]any
}

// NewMaterial creates a new Material with the name given.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		Color:     NewColor(1, 1, 1, 1),
		LineWidth: 1,
		CullMode:  CullModeBack,
		BlendMode: BlendModeNormal,
		Uniforms:  map[string]any{},
	}
}

// Clone creates a clone of the specified Material. The Shader is shared, while Uniforms are copied.
func (material *Material) Clone() *Material {
	newMat := NewMaterial(material.Name)
	newMat.Color = material.Color
	newMat.Wireframe = material.Wireframe
	newMat.LineWidth = material.LineWidth
	newMat.CullMode = material.CullMode
	newMat.BlendMode = material.BlendMode
	newMat.VertexProgram = material.VertexProgram
	newMat.Shader = material.Shader
	for k, v := range material.Uniforms {
		newMat.Uniforms[k] = v
	}
	return newMat
}

// Opacity returns the Material's opacity (the alpha channel of its Color).
func (material *Material) Opacity() float32 {
	return material.Color.A
}

// SetOpacity sets the Material's opacity.
func (material *Material) SetOpacity(opacity float32) {
	material.Color.A = clamp(opacity, 0, 1)
}

// SetShader compiles the Kage source provided and assigns the resulting Shader to the Material.
func (material *Material) SetShader(src []byte) (*ebiten.Shader, error) {
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, err
	}
	material.Shader = shader
	return shader, nil
}

func (material *Material) blend() ebiten.Blend {
	if material.BlendMode == BlendModeAdditive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}
