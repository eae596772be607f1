// Package web provides the HTTP control surface for the trajectory
// daemon: compute endpoints that return pose sequences, execution jobs
// that drive the arm in the background, and a websocket stream of
// per-point progress.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-magician/internal/log"
	"github.com/teslashibe/go-magician/pkg/hub"
	"github.com/teslashibe/go-magician/pkg/robot"
	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// JobState is the lifecycle state of an execution job.
type JobState string

// Job lifecycle states.
const (
	JobPending   JobState = "pending"
	JobRunning   JobState = "running"
	JobDone      JobState = "done"
	JobFailed    JobState = "failed"
	JobCancelled JobState = "cancelled"
)

// Job tracks one background trajectory execution.
type Job struct {
	ID      string           `json:"id"`
	Kind    string           `json:"kind"`
	Mode    string           `json:"mode"`
	State   JobState         `json:"state"`
	Total   int              `json:"total"`
	Sent    int              `json:"sent"`
	Last    *trajectory.Pose `json:"last,omitempty"`
	Error   string           `json:"error,omitempty"`
	Created time.Time        `json:"created"`

	cancel func()
}

// ProgressEvent is broadcast over the progress websocket after each
// point is issued.
type ProgressEvent struct {
	JobID string          `json:"job_id"`
	Index int             `json:"index"`
	Total int             `json:"total"`
	Pose  trajectory.Pose `json:"pose"`
}

// Server is the trajectory API server.
type Server struct {
	app  *fiber.App
	port string

	arm   robot.Controller
	delay time.Duration

	jobsMu sync.RWMutex
	jobs   map[string]*Job

	progressHub *hub.Hub
}

// NewServer creates the API server. arm supplies the reference pose
// and executes jobs; delay is the default inter-point delay.
func NewServer(port string, arm robot.Controller, delay time.Duration) *Server {
	s := &Server{
		port:        port,
		arm:         arm,
		delay:       delay,
		jobs:        make(map[string]*Job),
		progressHub: hub.New("progress"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Trajectory Daemon",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/pose", s.handlePose)
	api.Post("/trajectory/arc", s.handleComputeArc)
	api.Post("/trajectory/circle", s.handleComputeCircle)
	api.Post("/trajectory/oriented", s.handleComputeOriented)
	api.Post("/trajectory/semicircle", s.handleComputeSemicircle)
	api.Post("/jobs", s.handleStartJob)
	api.Get("/jobs", s.handleListJobs)
	api.Get("/jobs/:id", s.handleGetJob)
	api.Delete("/jobs/:id", s.handleCancelJob)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/progress", websocket.New(s.handleProgressWS))

	s.app = app
	return s
}

// Start starts the web server. Blocks.
func (s *Server) Start() error {
	log.Info("trajectory API listening", "port", s.port)
	go s.progressHub.Run()
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the web server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleProgressWS streams per-point execution progress.
func (s *Server) handleProgressWS(c *websocket.Conn) {
	client := hub.NewClient(s.progressHub, c)
	client.Run()
}

// putJob registers a job under its ID.
func (s *Server) putJob(j *Job) {
	s.jobsMu.Lock()
	s.jobs[j.ID] = j
	s.jobsMu.Unlock()
}

// getJob looks up a job by ID.
func (s *Server) getJob(id string) (*Job, bool) {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	j, ok := s.jobs[id]
	return j, ok
}
