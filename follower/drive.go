// Package follower turns trajectories into per-tick velocity commands and sequences them.
package follower

import (
	"go.viam.com/pathfollow/spatialmath"
)

// PoseSource reports the current robot pose. Executors and schedulers read it once per tick
// through Sample.
type PoseSource interface {
	Position() spatialmath.Pose
}

// Updater is a PoseSource that must read its sensors to learn about new motion. Every odometry
// is one.
type Updater interface {
	PoseSource
	Update() spatialmath.Pose
}

// Sample returns the pose for this tick. An Updater is updated first, so the pose includes the
// motion since the previous tick; any other source is only asked for its Position.
func Sample(source PoseSource) spatialmath.Pose {
	if u, ok := source.(Updater); ok {
		return u.Update()
	}
	return source.Position()
}

// PoseSourceFunc adapts a plain function to a PoseSource.
type PoseSourceFunc func() spatialmath.Pose

// Position implements PoseSource.
func (f PoseSourceFunc) Position() spatialmath.Pose {
	return f()
}

// Drive accepts one robot-relative translation per tick.
type Drive interface {
	SetTranslation(t spatialmath.Translation)
}

// DriveFunc adapts a plain callback to a Drive.
type DriveFunc func(t spatialmath.Translation)

// SetTranslation implements Drive.
func (f DriveFunc) SetTranslation(t spatialmath.Translation) {
	f(t)
}
