// Package scene holds the viewer's scene graph as ECS entities.
//
// Every node has a Name and a Pose. Buffer nodes also carry image dimensions
// and act as camera.Content; any node can act as a camera.PoseSink.
package scene

import (
	"fmt"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/imagewatch/mat4"
)

// Stage owns the ECS world and the name index of its nodes.
type Stage struct {
	world *ecs.World

	nodeMapper   *ecs.Map2[Name, Pose]
	bufferMapper *ecs.Map3[Name, Pose, Buffer]
	nameFilter   *ecs.Filter1[Name]

	poseMap   *ecs.Map1[Pose]
	bufferMap *ecs.Map1[Buffer]

	nodes map[string]*Node
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	world := ecs.NewWorld()
	return &Stage{
		world:        world,
		nodeMapper:   ecs.NewMap2[Name, Pose](world),
		bufferMapper: ecs.NewMap3[Name, Pose, Buffer](world),
		nameFilter:   ecs.NewFilter1[Name](world),
		poseMap:      ecs.NewMap1[Pose](world),
		bufferMap:    ecs.NewMap1[Buffer](world),
		nodes:        make(map[string]*Node),
	}
}

// AddNode creates a node with the given pose.
func (s *Stage) AddNode(name string, pose mat4.Mat4) (*Node, error) {
	if _, ok := s.nodes[name]; ok {
		return nil, fmt.Errorf("scene: node %q already exists", name)
	}
	e := s.nodeMapper.NewEntity(&Name{Value: name}, &Pose{M: pose})
	n := &Node{stage: s, entity: e, name: name}
	s.nodes[name] = n
	return n, nil
}

// AddBuffer creates a node carrying w x h pixels of image content.
func (s *Stage) AddBuffer(name string, w, h float64, pose mat4.Mat4) (*Node, error) {
	if _, ok := s.nodes[name]; ok {
		return nil, fmt.Errorf("scene: node %q already exists", name)
	}
	e := s.bufferMapper.NewEntity(&Name{Value: name}, &Pose{M: pose}, &Buffer{Width: w, Height: h})
	n := &Node{stage: s, entity: e, name: name, buffer: true}
	s.nodes[name] = n
	return n, nil
}

// Node looks up a node by name.
func (s *Stage) Node(name string) (*Node, bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// Remove deletes a node from the stage.
func (s *Stage) Remove(name string) error {
	n, ok := s.nodes[name]
	if !ok {
		return fmt.Errorf("scene: no node %q", name)
	}
	s.world.RemoveEntity(n.entity)
	delete(s.nodes, name)
	n.stage = nil
	return nil
}

// Names returns the names of all nodes, sorted.
func (s *Stage) Names() []string {
	var names []string
	query := s.nameFilter.Query()
	for query.Next() {
		name := query.Get()
		names = append(names, name.Value)
	}
	sort.Strings(names)
	return names
}

// Node is a handle on a stage entity.
type Node struct {
	stage  *Stage
	entity ecs.Entity
	name   string
	buffer bool
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Pose returns the node pose. Removed nodes report the identity.
func (n *Node) Pose() mat4.Mat4 {
	if n.stage == nil {
		return mat4.Identity()
	}
	return n.stage.poseMap.Get(n.entity).M
}

// SetPose replaces the node pose. It is a no-op on removed nodes.
func (n *Node) SetPose(m mat4.Mat4) {
	if n.stage == nil {
		return
	}
	n.stage.poseMap.Get(n.entity).M = m
}

// Dimensions returns the image size of a buffer node, or zero for plain nodes.
func (n *Node) Dimensions() (w, h float64) {
	if n.stage == nil || !n.buffer {
		return 0, 0
	}
	b := n.stage.bufferMap.Get(n.entity)
	return b.Width, b.Height
}

// SetDimensions updates the image size of a buffer node.
func (n *Node) SetDimensions(w, h float64) error {
	if n.stage == nil || !n.buffer {
		return fmt.Errorf("scene: node %q has no buffer", n.name)
	}
	b := n.stage.bufferMap.Get(n.entity)
	b.Width, b.Height = w, h
	return nil
}

// IsBuffer reports whether the node carries image content.
func (n *Node) IsBuffer() bool { return n.buffer }
