// Package config provides configuration helpers for go-magician commands.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default arm configuration.
const (
	DefaultRobotPort = "8000"
	DefaultDelay     = 100 * time.Millisecond
)

// RobotIP returns the arm IP from ROBOT_IP env var.
// Falls back to the provided default if not set.
func RobotIP(defaultIP string) string {
	if ip := os.Getenv("ROBOT_IP"); ip != "" {
		return ip
	}
	return defaultIP
}

// RobotIPRequired returns the arm IP from ROBOT_IP env var.
// Exits if not set.
func RobotIPRequired() string {
	ip := os.Getenv("ROBOT_IP")
	if ip == "" {
		fmt.Fprintln(os.Stderr, "Error: ROBOT_IP environment variable is required")
		fmt.Fprintln(os.Stderr, "Usage: ROBOT_IP=192.168.68.80 go run ./cmd/...")
		os.Exit(1)
	}
	return ip
}

// RobotAPIURL returns the arm HTTP bridge URL.
func RobotAPIURL(robotIP string) string {
	port := os.Getenv("ROBOT_PORT")
	if port == "" {
		port = DefaultRobotPort
	}
	return fmt.Sprintf("http://%s:%s", robotIP, port)
}

// PointDelay returns the inter-point delay from POINT_DELAY_MS env var
// or the provided default.
func PointDelay(def time.Duration) time.Duration {
	if ms := os.Getenv("POINT_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 {
			return time.Duration(v) * time.Millisecond
		}
	}
	return def
}
