// Package telemetry records camera poses and loads scripted input events.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/imagewatch/config"
)

// DefaultPoseLog is the pose log file name used when none is configured.
const DefaultPoseLog = "pose.csv"

// OutputManager owns the output directory of a viewing session.
type OutputManager struct {
	dir      string
	poseFile *os.File
	recorder *PoseRecorder
}

// NewOutputManager creates dir and opens the pose log inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir, poseLog string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if poseLog == "" {
		poseLog = DefaultPoseLog
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, poseLog))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", poseLog, err)
	}

	return &OutputManager{
		dir:      dir,
		poseFile: f,
		recorder: NewPoseRecorder(f),
	}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// Recorder returns the pose recorder, or nil when output is disabled.
func (om *OutputManager) Recorder() *PoseRecorder {
	if om == nil {
		return nil
	}
	return om.recorder
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the pose log and reports the first recording error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	firstErr := om.recorder.Err()
	if err := om.poseFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
