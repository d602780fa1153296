package hologlobe

// Model represents a singular visual instantiation of a Mesh. A Mesh contains the vertex information (what to draw); a Model references the Mesh to draw it with a specific
// Position, Rotation, and/or Scale (where and how to draw), using its Material.
type Model struct {
	*Node
	Mesh     *Mesh
	Material *Material
}

// NewModel creates a new Model (or instance) of the Mesh and Name provided. If material is nil, a default white Material is used.
func NewModel(name string, mesh *Mesh, material *Material) *Model {

	if material == nil {
		material = NewMaterial(name)
	}

	model := &Model{
		Node:     NewNode(name),
		Mesh:     mesh,
		Material: material,
	}

	model.Node.owner = model

	return model

}

// BoundingRadius returns the radius of a sphere centered on the Model's world position that encloses its Mesh,
// accounting for the Model's world scale.
func (model *Model) BoundingRadius() float64 {

	if model.Mesh == nil {
		return 0
	}

	t := model.Transform()
	scale := 0.0
	for i := 0; i < 3; i++ {
		if s := (Vector{X: t[i][0], Y: t[i][1], Z: t[i][2]}).Magnitude(); s > scale {
			scale = s
		}
	}

	return model.Mesh.Radius() * scale

}

// Models returns all Models found under the provided Node, including the Node itself, in depth-first order.
func Models(root INode) []*Model {

	out := []*Model{}

	if model, ok := root.(*Model); ok {
		out = append(out, model)
	}

	for _, child := range root.Children() {
		out = append(out, Models(child)...)
	}

	return out

}

// visibleInTree returns whether the Node and all of its parents are visible.
func visibleInTree(node INode) bool {
	for node != nil {
		if !node.Visible() {
			return false
		}
		node = node.Parent()
	}
	return true
}
