package hologlobe

import "strings"

// INode represents an object that exists in 3D space and can be positioned relative to an origin point.
// By default, this origin point is {0, 0, 0} (or world origin), but Nodes can be parented
// to other Nodes to change this origin (making their movements relative and their transforms
// successive). Models implement the INode interface by means of embedding Node.
type INode interface {
	// Name returns the object's name.
	Name() string
	// Parent returns the Node's parent. If the Node has no parent, this will return nil.
	Parent() INode
	// Children returns the Node's direct children.
	Children() []INode
	// AddChildren parents the provided children Nodes to the calling Node. Children already parented elsewhere are unparented first.
	AddChildren(...INode)
	// RemoveChildren removes the provided children from this object.
	RemoveChildren(...INode)
	// Unparent removes the Node from its parent.
	Unparent()

	// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transforming it by any parents'.
	Transform() Matrix4
	// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
	WorldPosition() Vector

	// Visible returns whether the Object is visible.
	Visible() bool
	// SetVisible sets the object's visibility.
	SetVisible(visible bool)

	node() *Node
	setParent(INode)
	dirtyTransform()
}

// Node represents a minimal struct that fully implements the INode interface. Model embeds Node
// into its struct to easily implement INode.
type Node struct {
	name             string
	position         Vector
	scale            Vector
	rotation         Matrix4
	visible          bool
	data             any // A place to store a pointer to something if you need it
	owner            INode
	children         []INode
	parent           INode
	cachedTransform  Matrix4
	isTransformDirty bool
}

// NewNode returns a new Node.
func NewNode(name string) *Node {

	nb := &Node{
		name:             name,
		scale:            Vector{X: 1, Y: 1, Z: 1},
		rotation:         NewMatrix4(),
		children:         []INode{},
		visible:          true,
		isTransformDirty: true,
		cachedTransform:  NewMatrix4(),
	}

	nb.owner = nb

	return nb
}

func (node *Node) node() *Node {
	return node
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetData sets user-customizeable data that could be usefully stored on this node.
func (node *Node) SetData(data any) {
	node.data = data
}

// Data returns the user-customizeable data stored on this node.
func (node *Node) Data() any {
	return node.data
}

// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transforming it by any parents'.
// If there's no change between the previous Transform() call and this one, Transform() will return a cached version of the
// transform for efficiency.
func (node *Node) Transform() Matrix4 {

	// S * R * T * Parent

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := NewMatrix4Scale(node.scale.X, node.scale.Y, node.scale.Z)
	transform = transform.Mult(node.rotation)
	transform = transform.Mult(NewMatrix4Translate(node.position.X, node.position.Y, node.position.Z))

	if node.parent != nil {
		transform = transform.Mult(node.parent.Transform())
	}

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

// dirtyTransform sets this Node and all recursive children's isTransformDirty flags to be true, indicating that they need to be
// rebuilt. This should be called when modifying the transformation properties (position, scale, rotation) of the Node.
func (node *Node) dirtyTransform() {

	for _, child := range node.children {
		child.dirtyTransform()
	}

	node.isTransformDirty = true

}

// LocalPosition returns the object's local position (relative to its parent).
func (node *Node) LocalPosition() Vector {
	return node.position
}

// SetLocalPositionVec sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPositionVec(position Vector) {
	node.position = position
	node.dirtyTransform()
}

// SetLocalPosition sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.SetLocalPositionVec(Vector{X: x, Y: y, Z: z})
}

// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
func (node *Node) WorldPosition() Vector {
	t := node.Transform()
	return Vector{X: t[3][0], Y: t[3][1], Z: t[3][2]}
}

// LocalScale returns the object's local scale.
func (node *Node) LocalScale() Vector {
	return node.scale
}

// SetLocalScale sets the object's local scale.
func (node *Node) SetLocalScale(w, h, d float64) {
	node.scale = Vector{X: w, Y: h, Z: d}
	node.dirtyTransform()
}

// LocalRotation returns the object's local rotation Matrix4.
func (node *Node) LocalRotation() Matrix4 {
	return node.rotation
}

// SetLocalRotation sets the object's local rotation Matrix4 (relative to any parent).
func (node *Node) SetLocalRotation(rotation Matrix4) {
	node.rotation = rotation
	node.dirtyTransform()
}

// Parent returns the Node's parent. If the Node has no parent, this will return nil.
func (node *Node) Parent() INode {
	return node.parent
}

func (node *Node) setParent(parent INode) {
	node.parent = parent
}

// Children returns a copy of the Node's direct children.
func (node *Node) Children() []INode {
	return append(make([]INode, 0, len(node.children)), node.children...)
}

// ChildrenRecursive returns the Node's recursive children (i.e. children, grandchildren, etc).
func (node *Node) ChildrenRecursive() []INode {
	out := node.Children()
	for _, child := range node.children {
		out = append(out, child.node().ChildrenRecursive()...)
	}
	return out
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (node *Node) AddChildren(children ...INode) {
	for _, child := range children {
		if child.Parent() != nil {
			child.Parent().RemoveChildren(child)
		}
		child.setParent(node.owner)
		child.dirtyTransform()
		node.children = append(node.children, child)
	}
}

// RemoveChildren removes the provided children from this object.
func (node *Node) RemoveChildren(children ...INode) {

	for _, child := range children {
		for i, c := range node.children {
			if c.node() == child.node() {
				c.setParent(nil)
				c.dirtyTransform()
				node.children[i] = nil
				node.children = append(node.children[:i], node.children[i+1:]...)
				break
			}
		}
	}

}

// Unparent unparents the Node from its parent, removing it from the scenegraph.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node)
	}
}

// Visible returns whether the Object is visible.
func (node *Node) Visible() bool {
	return node.visible
}

// SetVisible sets the object's visibility.
func (node *Node) SetVisible(visible bool) {
	node.visible = visible
}

// Get returns the first direct child with the name given, or nil if there is none.
func (node *Node) Get(name string) INode {
	name = strings.TrimSpace(name)
	for _, child := range node.children {
		if child.Name() == name {
			return child
		}
	}
	return nil
}
