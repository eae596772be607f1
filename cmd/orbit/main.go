// Orbit - circle about the current pose
//
// Reads the live end-effector pose and traces a full circle around it,
// optionally oscillating the height along the way.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-magician/internal/config"
	"github.com/teslashibe/go-magician/pkg/robot"
	"github.com/teslashibe/go-magician/pkg/trajectory"
)

var robotIP = config.RobotIP("192.168.68.80")

func main() {
	fmt.Println("🦾 Orbit Demo")
	fmt.Println("=============")
	fmt.Printf("Robot: %s\n\n", robotIP)

	arm := robot.NewHTTPController(robotIP)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Move to the start pose.
	if err := arm.PTP(robot.ModeMovJ, trajectory.Pose{X: 200, Y: 0, Z: 30, R: 0}); err != nil {
		fmt.Printf("❌ move to start: %v\n", err)
		os.Exit(1)
	}
	time.Sleep(1 * time.Second)

	ref, err := arm.Pose()
	if err != nil {
		fmt.Printf("❌ read pose: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Orbit center (current pose): x=%.2f y=%.2f z=%.2f\n", ref.X, ref.Y, ref.Z)

	// Full circle, 50 points, constant height.
	points, err := trajectory.CircleAboutPose(trajectory.CircleSpec{
		Radius:     20,
		NumPoints:  50,
		StartAngle: 0,
		EndAngle:   360,
		ZOffset:    0,
		ZPolicy:    trajectory.ZNone,
	}, ref)
	if err != nil {
		fmt.Printf("❌ trajectory: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d points, radius 20 mm\n\n", len(points))

	exec := robot.NewExecutor(arm, config.PointDelay(0))
	exec.OnPoint = func(i, total int, p trajectory.Pose) {
		fmt.Printf("Point %d/%d: x=%.2f y=%.2f z=%.2f\n", i+1, total, p.X, p.Y, p.Z)
	}

	if err := exec.Execute(ctx, robot.ModeMovJ, points); err != nil {
		fmt.Printf("\n❌ execution stopped: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\n✅ Orbit complete")
}
