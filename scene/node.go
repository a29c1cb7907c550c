package scene

import (
	"glitch-corridor/core"
	"glitch-corridor/math"
)

// Node represents an object in the scene graph. A node carries at most one
// payload: a Mesh or a Light.
type Node struct {
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Light     *Light
	Visible   bool
	Id        uint32

	worldMatrixDirty bool
	worldMatrix      math.Mat4
}

var nodeIdCounter uint32

func NewNode(name string) *Node {
	nodeIdCounter++
	return &Node{
		Name:             name,
		Transform:        core.NewTransform(),
		Visible:          true,
		Id:               nodeIdCounter,
		worldMatrixDirty: true,
	}
}

// NewMeshNode wraps mesh in a node named after it.
func NewMeshNode(mesh *Mesh) *Node {
	n := NewNode(mesh.Name)
	n.Mesh = mesh
	return n
}

// NewLightNode wraps light in a node.
func NewLightNode(name string, light *Light) *Node {
	n := NewNode(name)
	n.Light = light
	return n
}

// AddChild attaches child to n, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	child.MarkWorldMatrixDirty()
}

// RemoveChild detaches child and its whole subtree.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.MarkWorldMatrixDirty()
			return
		}
	}
}

// GetWorldMatrix returns local * parentWorld, cached until a transform changes.
func (n *Node) GetWorldMatrix() math.Mat4 {
	if n.worldMatrixDirty {
		local := n.Transform.GetMatrix()
		if n.Parent != nil {
			n.worldMatrix = local.Mul(n.Parent.GetWorldMatrix())
		} else {
			n.worldMatrix = local
		}
		n.worldMatrixDirty = false
	}
	return n.worldMatrix
}

func (n *Node) WorldPosition() math.Vec3 {
	return n.GetWorldMatrix().Translation()
}

func (n *Node) MarkWorldMatrixDirty() {
	n.worldMatrixDirty = true
	for _, child := range n.Children {
		child.MarkWorldMatrixDirty()
	}
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetRotation(rot math.Quaternion) {
	n.Transform.Rotation = rot
	n.MarkWorldMatrixDirty()
}

// Rotate applies an extra rotation about a local axis.
func (n *Node) Rotate(axis math.Vec3, angle float32) {
	n.Transform.Rotation = n.Transform.Rotation.Mul(math.QuaternionFromAxisAngle(axis, angle)).Normalize()
	n.MarkWorldMatrixDirty()
}

// Find finds a node by name
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// WorldAABB returns the mesh bounds transformed to world space.
func (n *Node) WorldAABB() (AABB, bool) {
	if n.Mesh == nil || !n.Mesh.HasLocalAABB {
		return AABB{}, false
	}
	return n.Mesh.LocalAABB.Transform(n.GetWorldMatrix()), true
}
