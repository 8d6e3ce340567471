package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/imagewatch/mat4"
)

// PoseSample is one published camera pose, flattened for CSV.
type PoseSample struct {
	Seq        int     `csv:"seq"`
	ScaleX     float64 `csv:"scale_x"`
	ScaleY     float64 `csv:"scale_y"`
	TranslateX float64 `csv:"translate_x"`
	TranslateY float64 `csv:"translate_y"`
}

// NewPoseSample extracts the 2D terms of m.
func NewPoseSample(seq int, m mat4.Mat4) PoseSample {
	sx, sy := m.ScaleXY()
	tx, ty := m.TranslationXY()
	return PoseSample{Seq: seq, ScaleX: sx, ScaleY: sy, TranslateX: tx, TranslateY: ty}
}

// PoseRecorder appends every pose it receives to a CSV stream. It satisfies
// camera.PoseSink, so it can sit next to the scene node in a camera.Fanout.
type PoseRecorder struct {
	w             io.Writer
	seq           int
	headerWritten bool
	err           error
}

// NewPoseRecorder writes samples to w.
func NewPoseRecorder(w io.Writer) *PoseRecorder {
	return &PoseRecorder{w: w}
}

// SetPose records m. After the first write error further poses are dropped;
// the error is reported by Err.
func (r *PoseRecorder) SetPose(m mat4.Mat4) {
	if r == nil || r.err != nil {
		return
	}

	records := []PoseSample{NewPoseSample(r.seq, m)}
	r.seq++

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			r.err = fmt.Errorf("writing pose: %w", err)
			return
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			r.err = fmt.Errorf("writing pose: %w", err)
		}
	}
}

// Count returns the number of poses received.
func (r *PoseRecorder) Count() int {
	if r == nil {
		return 0
	}
	return r.seq
}

// Err returns the first write error, if any.
func (r *PoseRecorder) Err() error {
	if r == nil {
		return nil
	}
	return r.err
}

// ReadPoses parses a pose log written by PoseRecorder.
func ReadPoses(rd io.Reader) ([]PoseSample, error) {
	var samples []PoseSample
	if err := gocsv.Unmarshal(rd, &samples); err != nil {
		return nil, fmt.Errorf("reading poses: %w", err)
	}
	return samples, nil
}
