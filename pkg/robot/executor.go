package robot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/teslashibe/go-magician/internal/log"
	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// Executor walks an ordered pose sequence, issuing one point-to-point
// move per element with a fixed delay between points. The sequence is
// visited strictly in index order; cancel the context to stop between
// points.
type Executor struct {
	robot Mover
	delay time.Duration

	// OnPoint, if set, is called after each point is issued. Used by
	// the web layer to stream progress.
	OnPoint func(i, total int, p trajectory.Pose)

	sent   atomic.Uint64
	errors atomic.Uint64
}

// NewExecutor creates an executor that sends moves through robot with
// the given inter-point delay.
func NewExecutor(robot Mover, delay time.Duration) *Executor {
	return &Executor{robot: robot, delay: delay}
}

// Execute moves through points in order using the given mode. It stops
// at the first failed move or when ctx is cancelled; the remaining
// points are simply never issued.
func (e *Executor) Execute(ctx context.Context, mode MoveMode, points []trajectory.Pose) error {
	total := len(points)
	log.Info("executing trajectory", "points", total, "mode", mode.String(), "delay", e.delay)

	for i, p := range points {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.robot.PTP(mode, p); err != nil {
			e.errors.Add(1)
			return fmt.Errorf("point %d/%d: %w", i+1, total, err)
		}
		e.sent.Add(1)

		log.Debug("point sent", "i", i+1, "total", total,
			"x", p.X, "y", p.Y, "z", p.Z, "r", p.R)
		if e.OnPoint != nil {
			e.OnPoint(i, total, p)
		}

		if e.delay > 0 && i < total-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.delay):
			}
		}
	}

	log.Info("trajectory complete", "points", total)
	return nil
}

// Sent returns the total number of points issued since creation.
func (e *Executor) Sent() uint64 {
	return e.sent.Load()
}

// Errors returns the total number of failed moves since creation.
func (e *Executor) Errors() uint64 {
	return e.errors.Load()
}
