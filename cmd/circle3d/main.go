// Circle3d - circles on arbitrary planes
//
// Runs a short tour of oriented circles around a fixed center: the XY
// plane, two vertical planes, a tilted plane, and finally a two-point
// semicircle from the current pose to a target.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/geo/r3"

	"github.com/teslashibe/go-magician/internal/config"
	"github.com/teslashibe/go-magician/pkg/robot"
	"github.com/teslashibe/go-magician/pkg/trajectory"
)

var robotIP = config.RobotIP("192.168.68.80")

// demo is one oriented-circle stage of the tour.
type demo struct {
	name string
	spec trajectory.OrientedSpec
}

func main() {
	fmt.Println("🦾 3D Circle Demo")
	fmt.Println("=================")
	fmt.Printf("Robot: %s\n\n", robotIP)

	arm := robot.NewHTTPController(robotIP)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := arm.SetJumpParams(100, 2); err != nil {
		fmt.Printf("❌ jump params: %v\n", err)
		os.Exit(1)
	}
	if err := arm.PTP(robot.ModeMovJ, trajectory.Pose{X: 200, Y: 0, Z: 50, R: 0}); err != nil {
		fmt.Printf("❌ move to start: %v\n", err)
		os.Exit(1)
	}
	time.Sleep(1 * time.Second)

	ref, err := arm.Pose()
	if err != nil {
		fmt.Printf("❌ read pose: %v\n", err)
		os.Exit(1)
	}

	center := r3.Vector{X: 200, Y: 0, Z: 50}
	up := r3.Vector{Z: 1}
	demos := []demo{
		{"full circle in the XY plane", trajectory.OrientedSpec{
			Center: center, Radius: 30, Normal: r3.Vector{Z: 1},
			NumPoints: 20, StartAngle: 0, EndAngle: 360,
		}},
		{"semicircle in the XZ plane", trajectory.OrientedSpec{
			Center: center, Radius: 25, Normal: r3.Vector{Y: 1},
			NumPoints: 15, StartAngle: 0, EndAngle: 180,
		}},
		{"quarter circle in the YZ plane", trajectory.OrientedSpec{
			Center: center, Radius: 20, Normal: r3.Vector{X: 1},
			NumPoints: 10, StartAngle: 0, EndAngle: 90,
		}},
		{"full circle on a tilted plane", trajectory.OrientedSpec{
			Center: center, Radius: 35, Normal: r3.Vector{X: 1, Y: 1, Z: 1},
			Up: &up, NumPoints: 25, StartAngle: 0, EndAngle: 360,
		}},
	}

	exec := robot.NewExecutor(arm, config.PointDelay(100*time.Millisecond))
	exec.OnPoint = func(i, total int, p trajectory.Pose) {
		fmt.Printf("Point %d/%d: x=%.2f y=%.2f z=%.2f\n", i+1, total, p.X, p.Y, p.Z)
	}

	for _, d := range demos {
		fmt.Printf("\n=== %s ===\n", d.name)
		points, err := trajectory.OrientedArc(d.spec, ref)
		if err != nil {
			fmt.Printf("❌ trajectory: %v\n", err)
			os.Exit(1)
		}
		if err := exec.Execute(ctx, robot.ModeMovJ, points); err != nil {
			fmt.Printf("\n❌ execution stopped: %v\n", err)
			os.Exit(1)
		}
	}

	// Finish with a two-point semicircle from wherever the tour ended.
	fmt.Println("\n=== semicircle to target ===")
	ref, err = arm.Pose()
	if err != nil {
		fmt.Printf("❌ read pose: %v\n", err)
		os.Exit(1)
	}
	res, err := trajectory.SemicircleBetween(ref.Position(), r3.Vector{X: 250, Y: 50, Z: 80}, nil, 20, ref)
	if err != nil {
		fmt.Printf("❌ trajectory: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Center (%.2f, %.2f, %.2f), radius %.2f mm\n",
		res.Center.X, res.Center.Y, res.Center.Z, res.Radius)
	if err := exec.Execute(ctx, robot.ModeMovJ, res.Points); err != nil {
		fmt.Printf("\n❌ execution stopped: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Tour complete")
}
