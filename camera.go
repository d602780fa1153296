package hologlobe

import (
	"image"
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugInfo is a struct that holds debugging information for a Camera's render pass. These values are reset at the start of each
// call to Camera.Render().
type DebugInfo struct {
	FrameTime  time.Duration // Amount of CPU frame time spent transforming vertices and issuing draw calls.
	DrawCalls  int           // Number of triangle batches and lines handed to Ebitengine
	DrawnTris  int           // Number of drawn triangles, excluding those culled or behind the camera
	TotalTris  int           // Total number of triangles
	DrawnLines int           // Number of drawn line segments, excluding those behind the camera
	TotalLines int           // Total number of line segments
}

// Camera represents a perspective camera (where you look from). It looks down its local -Z axis.
// The Camera draws directly onto the screen image passed to Render(); it owns no render targets, so creating
// and moving a Camera never touches the GPU.
type Camera struct {
	*Node

	DebugInfo DebugInfo

	width, height int
	fieldOfView   float64
	near, far     float64

	updateProjectionMatrix bool
	cachedProjectionMatrix Matrix4

	whiteImage *ebiten.Image

	drawItems   []drawItem
	vertexCache []cachedVertex
	vertexList  []ebiten.Vertex
	indexList   []uint16
}

type cachedVertex struct {
	screen Vector // X and Y in pixels; W is the distance in front of the camera
	color  Color
}

type drawItem struct {
	depth    float64
	material *Material
	line     bool
	points   [3]Vector
	colors   [3]Color
}

// NewCamera creates a new Camera with the specified width and height. The vertical field of view defaults to 45 degrees.
func NewCamera(w, h int) *Camera {

	cam := &Camera{
		Node:                   NewNode("Camera"),
		fieldOfView:            45,
		near:                   0.1,
		far:                    1000,
		updateProjectionMatrix: true,
	}

	cam.Node.owner = cam
	cam.Resize(w, h)

	return cam

}

// Resize sets the size of the surface the Camera renders to, recomputing its aspect ratio. Sizes smaller than 1 pixel are clamped to 1.
func (camera *Camera) Resize(w, h int) {

	w = max(w, 1)
	h = max(h, 1)

	if w == camera.width && h == camera.height {
		return
	}

	camera.width = w
	camera.height = h
	camera.updateProjectionMatrix = true

}

// Size returns the width and height of the surface the camera renders to.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float64 {
	return float64(camera.width) / float64(camera.height)
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() Matrix4 {
	return camera.Transform().Inverted()
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if camera.updateProjectionMatrix {
		camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, float64(camera.width), float64(camera.height))
		camera.updateProjectionMatrix = false
	}

	return camera.cachedProjectionMatrix

}

// SetFieldOfView sets the vertical field of view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near plane of a camera.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far plane of a camera.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far plane of the camera.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// clipToScreen maps a projected (clip space) vertex to pixels. W is kept as the distance in front of the camera.
func (camera *Camera) clipToScreen(clip Vector) Vector {

	w := clip.W
	if w == 0 {
		w = 1e-9
	}

	width, height := float64(camera.width), float64(camera.height)

	return Vector{
		X: (clip.X/w)*width/2 + width/2,
		Y: -(clip.Y/w)*height/2 + height/2,
		Z: clip.Z / w,
		W: clip.W,
	}

}

// WorldToScreenPixels transforms a 3D position in the world to a position onscreen, with X and Y representing the pixels.
// The W coordinate indicates depth away from the camera in 3D world units; if it's below the near plane, the point is behind the camera.
func (camera *Camera) WorldToScreenPixels(vert Vector) Vector {
	view := camera.ViewMatrix().MultVec(vert)
	return camera.clipToScreen(camera.Projection().MultVecW(view))
}

// ScreenToRay returns a Ray starting at the camera's world position and running through the pixel position given.
func (camera *Camera) ScreenToRay(x, y float64) Ray {

	ndcX := x/float64(camera.width)*2 - 1
	ndcY := 1 - y/float64(camera.height)*2

	tanHalf := math.Tan(camera.fieldOfView * math.Pi / 360)

	dir := Vector{X: ndcX * tanHalf * camera.AspectRatio(), Y: ndcY * tanHalf, Z: -1}

	origin := camera.WorldPosition()

	return Ray{
		Origin:    origin,
		Direction: camera.Transform().MultVec(dir).Sub(origin).Unit(),
	}

}

// Render draws all visible Models underneath the root Nodes provided onto the screen image. Triangles and line segments
// from every Model are sorted together from back to front before drawing, so translucent layers composite correctly
// without a depth buffer.
func (camera *Camera) Render(screen *ebiten.Image, roots ...INode) {

	t := time.Now()

	camera.DebugInfo = DebugInfo{}
	camera.drawItems = camera.drawItems[:0]

	view := camera.ViewMatrix()
	projection := camera.Projection()

	for _, root := range roots {
		for _, model := range Models(root) {
			if model.Mesh == nil || len(model.Mesh.VertexPositions) == 0 || !visibleInTree(model) {
				continue
			}
			camera.queueModel(model, view, projection)
		}
	}

	sort.SliceStable(camera.drawItems, func(i, j int) bool {
		return camera.drawItems[i].depth > camera.drawItems[j].depth
	})

	camera.drawQueue(screen)

	camera.DebugInfo.FrameTime = time.Since(t)

}

func (camera *Camera) queueModel(model *Model, view, projection Matrix4) {

	mesh := model.Mesh
	material := model.Material

	modelView := model.Transform().Mult(view)
	normalMatrix := modelView
	normalMatrix[3] = [4]float64{0, 0, 0, 1}

	if cap(camera.vertexCache) < len(mesh.VertexPositions) {
		camera.vertexCache = make([]cachedVertex, len(mesh.VertexPositions))
	}
	verts := camera.vertexCache[:len(mesh.VertexPositions)]

	for i, v := range mesh.VertexPositions {
		viewPos := modelView.MultVec(v)
		verts[i].screen = camera.clipToScreen(projection.MultVecW(viewPos))
		if material.VertexProgram != nil {
			verts[i].color = material.VertexProgram(viewPos, normalMatrix.MultVec(mesh.VertexNormal(i)).Unit())
		} else {
			verts[i].color = material.Color
		}
	}

	if material.Wireframe || len(mesh.Triangles) == 0 {

		for _, edge := range mesh.WireframeEdges() {

			camera.DebugInfo.TotalLines++

			a, b := verts[edge[0]], verts[edge[1]]
			if a.screen.W <= camera.near || b.screen.W <= camera.near {
				continue
			}

			camera.drawItems = append(camera.drawItems, drawItem{
				depth:    (a.screen.W + b.screen.W) / 2,
				material: material,
				line:     true,
				points:   [3]Vector{a.screen, b.screen},
				colors:   [3]Color{a.color, b.color},
			})

			camera.DebugInfo.DrawnLines++

		}

		return

	}

	for _, tri := range mesh.Triangles {

		camera.DebugInfo.TotalTris++

		a, b, c := verts[tri[0]], verts[tri[1]], verts[tri[2]]

		if a.screen.W <= camera.near || b.screen.W <= camera.near || c.screen.W <= camera.near {
			continue
		}

		// Screen Y points down, so counter-clockwise (front-facing) triangles have a negative signed area here.
		area := (b.screen.X-a.screen.X)*(c.screen.Y-a.screen.Y) - (c.screen.X-a.screen.X)*(b.screen.Y-a.screen.Y)
		frontFacing := area < 0

		if (material.CullMode == CullModeBack && !frontFacing) || (material.CullMode == CullModeFront && frontFacing) {
			continue
		}

		camera.drawItems = append(camera.drawItems, drawItem{
			depth:    (a.screen.W + b.screen.W + c.screen.W) / 3,
			material: material,
			points:   [3]Vector{a.screen, b.screen, c.screen},
			colors:   [3]Color{a.color, b.color, c.color},
		})

		camera.DebugInfo.DrawnTris++

	}

}

func (camera *Camera) drawQueue(screen *ebiten.Image) {

	if camera.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		camera.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var batchMaterial *Material

	flush := func() {
		if len(camera.indexList) == 0 {
			return
		}
		if batchMaterial.Shader != nil {
			screen.DrawTrianglesShader(camera.vertexList, camera.indexList, batchMaterial.Shader, &ebiten.DrawTrianglesShaderOptions{
				Uniforms: batchMaterial.Uniforms,
				Blend:    batchMaterial.blend(),
			})
		} else {
			screen.DrawTriangles(camera.vertexList, camera.indexList, camera.whiteImage, &ebiten.DrawTrianglesOptions{
				ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
				Blend:          batchMaterial.blend(),
				AntiAlias:      true,
			})
		}
		camera.DebugInfo.DrawCalls++
		camera.vertexList = camera.vertexList[:0]
		camera.indexList = camera.indexList[:0]
	}

	for _, item := range camera.drawItems {

		if item.line {
			flush()
			c := item.colors[0]
			if item.colors[0] != item.colors[1] {
				c = Color{
					R: (item.colors[0].R + item.colors[1].R) / 2,
					G: (item.colors[0].G + item.colors[1].G) / 2,
					B: (item.colors[0].B + item.colors[1].B) / 2,
					A: (item.colors[0].A + item.colors[1].A) / 2,
				}
			}
			a, b := item.points[0], item.points[1]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), item.material.LineWidth, c.ToNRGBA64(), true)
			camera.DebugInfo.DrawCalls++
			continue
		}

		if batchMaterial != nil && !compatibleBatch(batchMaterial, item.material) {
			flush()
		}

		if len(camera.vertexList)+3 > math.MaxUint16 {
			flush()
		}

		batchMaterial = item.material

		for i := 0; i < 3; i++ {
			r, g, b, a := item.colors[i].premultiplied()
			camera.indexList = append(camera.indexList, uint16(len(camera.vertexList)))
			camera.vertexList = append(camera.vertexList, ebiten.Vertex{
				DstX:   float32(item.points[i].X),
				DstY:   float32(item.points[i].Y),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}

	}

	flush()

}

// compatibleBatch returns whether triangles of both Materials can be drawn in a single call.
func compatibleBatch(a, b *Material) bool {
	if a == b {
		return true
	}
	return a.Shader == nil && b.Shader == nil && a.BlendMode == b.BlendMode
}
