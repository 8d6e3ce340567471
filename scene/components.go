package scene

import "github.com/pthm-cable/imagewatch/mat4"

// Name identifies a node within its stage.
type Name struct {
	Value string
}

// Pose is the world placement of a node.
type Pose struct {
	M mat4.Mat4
}

// Buffer describes image content attached to a node, in pixels.
type Buffer struct {
	Width, Height float64
}
