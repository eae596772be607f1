// Trajectoryd - trajectory API daemon
//
// Serves the trajectory computation and execution API in front of the
// arm's HTTP bridge. See pkg/web for the routes.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-magician/internal/config"
	"github.com/teslashibe/go-magician/internal/log"
	"github.com/teslashibe/go-magician/pkg/robot"
	"github.com/teslashibe/go-magician/pkg/web"
)

func main() {
	log.Init(os.Getenv("LOG_LEVEL"))

	robotIP := config.RobotIPRequired()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	arm := robot.NewHTTPControllerURL(config.RobotAPIURL(robotIP))
	srv := web.NewServer(port, arm, config.PointDelay(config.DefaultDelay))

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server exited", "err", err)
			os.Exit(1)
		}
	}()
	log.Info("trajectoryd started", "robot", robotIP, "port", port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		log.Error("shutdown failed", "err", err)
	}
}
