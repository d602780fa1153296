package hologlobe

import (
	"math"
)

// Mesh represents a collection of vertex positions, connected either as triangles (for filled primitives) or as
// line segments (for wireframes and polylines). Triangles are wound counter-clockwise when viewed from their front side.
type Mesh struct {
	Name            string
	VertexPositions []Vector
	VertexNormals   []Vector // Optional; if empty, normals are taken to point away from the Mesh's origin.
	Triangles       [][3]int
	Lines           [][2]int

	edges        [][2]int
	edgesFrom    *[3]int // First triangle the cached edges were built from
	edgesFromLen int
}

// NewMesh creates a new, empty Mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex adds a vertex to the Mesh, returning its index.
func (mesh *Mesh) AddVertex(v Vector) int {
	mesh.VertexPositions = append(mesh.VertexPositions, v)
	return len(mesh.VertexPositions) - 1
}

// ApplyMatrix transforms all of the Mesh's vertex positions by the Matrix4 provided.
func (mesh *Mesh) ApplyMatrix(matrix Matrix4) {
	for i, v := range mesh.VertexPositions {
		mesh.VertexPositions[i] = matrix.MultVec(v)
	}
	rotation := matrix
	rotation[3] = [4]float64{0, 0, 0, 1}
	for i, n := range mesh.VertexNormals {
		mesh.VertexNormals[i] = rotation.MultVec(n).Unit()
	}
}

// VertexNormal returns the normal of the vertex at the index given.
func (mesh *Mesh) VertexNormal(index int) Vector {
	if index < len(mesh.VertexNormals) {
		return mesh.VertexNormals[index]
	}
	return mesh.VertexPositions[index].Unit()
}

// Radius returns the distance from the Mesh's origin to its furthest vertex.
func (mesh *Mesh) Radius() float64 {
	radius := 0.0
	for _, v := range mesh.VertexPositions {
		if m := v.Magnitude(); m > radius {
			radius = m
		}
	}
	return radius
}

// WireframeEdges returns the Mesh's line segments; if it has none, the unique edges of its triangles are returned instead.
// Triangle edges are cached until Triangles is replaced or changes length; call InvalidateEdges after editing
// triangles in place.
func (mesh *Mesh) WireframeEdges() [][2]int {

	if len(mesh.Lines) > 0 {
		return mesh.Lines
	}

	var first *[3]int
	if len(mesh.Triangles) > 0 {
		first = &mesh.Triangles[0]
	}

	if mesh.edges != nil && mesh.edgesFrom == first && mesh.edgesFromLen == len(mesh.Triangles) {
		return mesh.edges
	}

	seen := map[[2]int]bool{}
	edges := make([][2]int, 0, len(mesh.Triangles)*3/2)

	for _, tri := range mesh.Triangles {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			if !seen[[2]int{a, b}] {
				seen[[2]int{a, b}] = true
				edges = append(edges, [2]int{a, b})
			}
		}
	}

	mesh.edges = edges
	mesh.edgesFrom = first
	mesh.edgesFromLen = len(mesh.Triangles)

	return edges

}

// InvalidateEdges drops the Mesh's cached triangle edges, so the next call to WireframeEdges rebuilds them.
func (mesh *Mesh) InvalidateEdges() {
	mesh.edges = nil
	mesh.edgesFrom = nil
	mesh.edgesFromLen = 0
}

// NewSphereMesh creates a UV sphere of the given radius, with widthSegments slices around the Y axis and heightSegments
// stacks from pole to pole.
func NewSphereMesh(radius float64, widthSegments, heightSegments int) *Mesh {

	mesh := NewMesh("Sphere")

	grid := make([][]int, 0, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {

		row := make([]int, 0, widthSegments+1)
		v := float64(iy) / float64(heightSegments)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			normal := Vector{
				X: -math.Cos(u*math.Pi*2) * math.Sin(v*math.Pi),
				Y: math.Cos(v * math.Pi),
				Z: math.Sin(u*math.Pi*2) * math.Sin(v*math.Pi),
			}
			row = append(row, mesh.AddVertex(normal.Scale(radius)))
			mesh.VertexNormals = append(mesh.VertexNormals, normal)
		}

		grid = append(grid, row)

	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {

			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				mesh.Triangles = append(mesh.Triangles, [3]int{a, b, d})
			}
			if iy != heightSegments-1 {
				mesh.Triangles = append(mesh.Triangles, [3]int{b, c, d})
			}

		}
	}

	return mesh

}

// NewOctahedronMesh creates an eight-sided polyhedron whose vertices lie on a sphere of the given radius.
func NewOctahedronMesh(radius float64) *Mesh {

	mesh := NewMesh("Octahedron")

	for _, v := range []Vector{
		{X: radius}, {X: -radius},
		{Y: radius}, {Y: -radius},
		{Z: radius}, {Z: -radius},
	} {
		mesh.AddVertex(v)
	}

	mesh.Triangles = [][3]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
	}

	return mesh

}

// NewRingMesh creates a flat ring (annulus) in the XY plane facing +Z, spanning from innerRadius to outerRadius.
func NewRingMesh(innerRadius, outerRadius float64, segments int) *Mesh {

	mesh := NewMesh("Ring")

	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * math.Pi * 2
		cos, sin := math.Cos(angle), math.Sin(angle)
		mesh.AddVertex(Vector{X: innerRadius * cos, Y: innerRadius * sin})
		mesh.AddVertex(Vector{X: outerRadius * cos, Y: outerRadius * sin})
	}

	for i := 0; i < segments; i++ {
		in0, out0 := i*2, i*2+1
		in1, out1 := in0+2, out0+2
		mesh.Triangles = append(mesh.Triangles, [3]int{in0, out0, out1}, [3]int{in0, out1, in1})
	}

	return mesh

}

// NewCylinderMesh creates an open-ended cylinder centered on the origin and running along the Y axis.
func NewCylinderMesh(radius, height float64, segments int) *Mesh {

	mesh := NewMesh("Cylinder")

	half := height / 2

	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * math.Pi * 2
		x, z := radius*math.Sin(angle), radius*math.Cos(angle)
		mesh.AddVertex(Vector{X: x, Y: half, Z: z})
		mesh.AddVertex(Vector{X: x, Y: -half, Z: z})
	}

	for i := 0; i < segments; i++ {
		top0, bottom0 := i*2, i*2+1
		top1, bottom1 := top0+2, bottom0+2
		mesh.Triangles = append(mesh.Triangles, [3]int{top0, bottom0, top1}, [3]int{bottom0, bottom1, top1})
	}

	return mesh

}

// NewLineStripMesh creates a Mesh of line segments connecting the points provided in order. If closed is true and
// the last point doesn't already equal the first, a final segment joins them.
func NewLineStripMesh(points []Vector, closed bool) *Mesh {

	mesh := NewMesh("LineStrip")

	for _, p := range points {
		mesh.AddVertex(p)
	}

	for i := 0; i < len(points)-1; i++ {
		mesh.Lines = append(mesh.Lines, [2]int{i, i + 1})
	}

	if closed && len(points) > 2 && !points[0].Equals(points[len(points)-1]) {
		mesh.Lines = append(mesh.Lines, [2]int{len(points) - 1, 0})
	}

	return mesh

}
