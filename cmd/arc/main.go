// Arc - explicit-center arc demo
//
// Moves the arm to a start pose, then sweeps a quarter arc around the
// base at constant height using JUMP moves.
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

func main() {
	fmt.Println("🦾 Arc Trajectory Demo")
	fmt.Println("======================")
	fmt.Printf("Robot: %s\n\n", robotIP)

	arm := robot.NewHTTPController(robotIP)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Gate-motion parameters for JUMP moves: z limit, lift height.
	if err := arm.SetJumpParams(100, 2); err != nil {
		fmt.Printf("❌ jump params: %v\n", err)
		os.Exit(1)
	}

	// Move to the start pose.
	start := trajectory.Pose{X: 0, Y: -200, Z: -30, R: 0}
	if err := arm.PTP(robot.ModeMovJ, start); err != nil {
		fmt.Printf("❌ move to start: %v\n", err)
		os.Exit(1)
	}
	time.Sleep(1 * time.Second)

	ref, err := arm.Pose()
	if err != nil {
		fmt.Printf("❌ read pose: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Current pose: x=%.2f y=%.2f z=%.2f r=%.2f\n", ref.X, ref.Y, ref.Z, ref.R)

	// Quarter arc around the base at constant height.
	startZ, endZ := -35.0, -35.0
	res, err := trajectory.ArcAboutCenter(trajectory.ArcSpec{
		Center:     r3.Vector{},
		Radius:     200,
		NumPoints:  50,
		StartAngle: 0,
		EndAngle:   90,
		StartZ:     &startZ,
		EndZ:       &endZ,
		ZPolicy:    trajectory.ZLinear,
	}, ref)
	if err != nil {
		fmt.Printf("❌ trajectory: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d points (radius %.2f mm)\n\n", len(res.Points), res.Radius)

	exec := robot.NewExecutor(arm, config.PointDelay(0))
	exec.OnPoint = func(i, total int, p trajectory.Pose) {
		fmt.Printf("Point %d/%d: x=%.2f y=%.2f z=%.2f r=%.2f\n",
			i+1, total, p.X, p.Y, p.Z, p.R)
	}

	if err := exec.Execute(ctx, robot.ModeJump, res.Points); err != nil {
		fmt.Printf("\n❌ execution stopped: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\n✅ Arc complete")
}
