// Watch - tails trajectory execution progress
//
// Connects to the daemon's progress websocket and prints each point as
// the arm reaches it.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// progressEvent mirrors web.ProgressEvent on the wire.
type progressEvent struct {
	JobID string          `json:"job_id"`
	Index int             `json:"index"`
	Total int             `json:"total"`
	Pose  trajectory.Pose `json:"pose"`
}

func main() {
	addr := os.Getenv("DAEMON_ADDR")
	if addr == "" {
		addr = "localhost:8090"
	}
	url := fmt.Sprintf("ws://%s/ws/progress", addr)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: connect %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Printf("👀 Watching %s (Ctrl+C to stop)\n", url)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
		os.Exit(0)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "connection closed: %v\n", err)
			return
		}

		var ev progressEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			continue
		}
		fmt.Printf("[%s] %d/%d x=%.2f y=%.2f z=%.2f r=%.2f\n",
			ev.JobID[:8], ev.Index+1, ev.Total,
			ev.Pose.X, ev.Pose.Y, ev.Pose.Z, ev.Pose.R)
	}
}
