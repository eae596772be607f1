// Package robot provides interfaces and implementations for driving a
// Dobot Magician-class arm over its HTTP bridge.
//
// This package follows the Interface Segregation Principle (ISP) by
// defining small, focused interfaces that can be composed as needed.
// Consumers should depend only on the interfaces they actually use.
package robot

import (
	"fmt"

	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// MoveMode selects the point-to-point motion primitive the arm uses
// between trajectory points. Values match the bridge wire format.
type MoveMode int

const (
	// ModeJump lifts to the gate height, translates, and descends.
	ModeJump MoveMode = 0
	// ModeMovJ moves in joint space.
	ModeMovJ MoveMode = 1
	// ModeMovL moves in a straight Cartesian line.
	ModeMovL MoveMode = 2
)

// String implements fmt.Stringer.
func (m MoveMode) String() string {
	switch m {
	case ModeJump:
		return "jump"
	case ModeMovJ:
		return "movj"
	case ModeMovL:
		return "movl"
	default:
		return fmt.Sprintf("MoveMode(%d)", int(m))
	}
}

// ParseMoveMode maps a mode name to a MoveMode.
func ParseMoveMode(s string) (MoveMode, error) {
	switch s {
	case "jump":
		return ModeJump, nil
	case "movj", "":
		return ModeMovJ, nil
	case "movl":
		return ModeMovL, nil
	default:
		return 0, fmt.Errorf("robot: unknown move mode %q", s)
	}
}

// PoseReader provides the live end-effector pose.
// Use this minimal interface when only the reference pose is needed.
type PoseReader interface {
	Pose() (trajectory.Pose, error)
}

// Mover issues a single point-to-point move.
type Mover interface {
	PTP(mode MoveMode, target trajectory.Pose) error
}

// ParamSetter configures gate-motion parameters used by ModeJump.
type ParamSetter interface {
	SetJumpParams(zLimit, height float64) error
}

// Controller is the composite interface for full arm control.
type Controller interface {
	PoseReader
	Mover
	ParamSetter
}

// Ensure HTTPController implements Controller
var _ Controller = (*HTTPController)(nil)
