package camera

import "github.com/pthm-cable/imagewatch/mat4"

// Fanout forwards a pose to several sinks in order. Nil entries are skipped.
type Fanout []PoseSink

// SetPose implements PoseSink.
func (f Fanout) SetPose(m mat4.Mat4) {
	for _, s := range f {
		if s != nil {
			s.SetPose(m)
		}
	}
}
