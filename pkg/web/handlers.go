package web

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"

	"github.com/teslashibe/go-magician/internal/log"
	"github.com/teslashibe/go-magician/pkg/robot"
	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// ArcRequest describes an arc about an explicit center.
type ArcRequest struct {
	Center     [3]float64       `json:"center"`
	Radius     float64          `json:"radius"` // 0 derives from the reference pose
	NumPoints  int              `json:"num_points"`
	StartAngle float64          `json:"start_angle"`
	EndAngle   float64          `json:"end_angle"`
	StartZ     *float64         `json:"start_z"`
	EndZ       *float64         `json:"end_z"`
	ZPolicy    string           `json:"z_policy"`
	Reference  *trajectory.Pose `json:"reference"`
}

// CircleRequest describes a circle about the reference pose.
type CircleRequest struct {
	Radius     float64          `json:"radius"`
	NumPoints  int              `json:"num_points"`
	StartAngle float64          `json:"start_angle"`
	EndAngle   float64          `json:"end_angle"`
	ZOffset    float64          `json:"z_offset"`
	ZPolicy    string           `json:"z_policy"`
	Reference  *trajectory.Pose `json:"reference"`
}

// OrientedRequest describes a circle on an arbitrary plane.
type OrientedRequest struct {
	Center     [3]float64       `json:"center"`
	Radius     float64          `json:"radius"`
	Normal     [3]float64       `json:"normal"`
	Up         *[3]float64      `json:"up"`
	NumPoints  int              `json:"num_points"`
	StartAngle float64          `json:"start_angle"`
	EndAngle   float64          `json:"end_angle"`
	Reference  *trajectory.Pose `json:"reference"`
}

// SemicircleRequest describes a two-point diameter semicircle from the
// reference pose to a target point.
type SemicircleRequest struct {
	Target    [3]float64       `json:"target"`
	Normal    *[3]float64      `json:"normal"`
	NumPoints int              `json:"num_points"`
	Reference *trajectory.Pose `json:"reference"`
}

// JobRequest starts a background execution of one trajectory kind.
type JobRequest struct {
	Kind    string `json:"kind"` // arc, circle, oriented, semicircle
	Mode    string `json:"mode"` // jump, movj, movl; empty picks the kind's default
	DelayMS *int   `json:"delay_ms"`

	Arc        *ArcRequest        `json:"arc,omitempty"`
	Circle     *CircleRequest     `json:"circle,omitempty"`
	Oriented   *OrientedRequest   `json:"oriented,omitempty"`
	Semicircle *SemicircleRequest `json:"semicircle,omitempty"`
}

func vec(a [3]float64) r3.Vector {
	return r3.Vector{X: a[0], Y: a[1], Z: a[2]}
}

// reference resolves the reference pose for a request: the explicit
// override if given, otherwise the arm's live pose.
func (s *Server) reference(override *trajectory.Pose) (trajectory.Pose, error) {
	if override != nil {
		return *override, nil
	}
	return s.arm.Pose()
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// handlePose returns the arm's live pose.
func (s *Server) handlePose(c *fiber.Ctx) error {
	pose, err := s.arm.Pose()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(pose)
}

func (s *Server) handleComputeArc(c *fiber.Ctx) error {
	var req ArcRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := s.arcPoints(&req)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{
		"count":  len(res.Points),
		"radius": res.Radius,
		"points": res.Points,
	})
}

func (s *Server) handleComputeCircle(c *fiber.Ctx) error {
	var req CircleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	points, err := s.circlePoints(&req)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{"count": len(points), "points": points})
}

func (s *Server) handleComputeOriented(c *fiber.Ctx) error {
	var req OrientedRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	points, err := s.orientedPoints(&req)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{"count": len(points), "points": points})
}

func (s *Server) handleComputeSemicircle(c *fiber.Ctx) error {
	var req SemicircleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := s.semicirclePoints(&req)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(fiber.Map{
		"count":  len(res.Points),
		"center": res.Center,
		"radius": res.Radius,
		"points": res.Points,
	})
}

func (s *Server) arcPoints(req *ArcRequest) (trajectory.ArcResult, error) {
	ref, err := s.reference(req.Reference)
	if err != nil {
		return trajectory.ArcResult{}, err
	}
	return trajectory.ArcAboutCenter(trajectory.ArcSpec{
		Center:     vec(req.Center),
		Radius:     req.Radius,
		NumPoints:  req.NumPoints,
		StartAngle: req.StartAngle,
		EndAngle:   req.EndAngle,
		StartZ:     req.StartZ,
		EndZ:       req.EndZ,
		ZPolicy:    trajectory.ParseZPolicy(req.ZPolicy),
	}, ref)
}

func (s *Server) circlePoints(req *CircleRequest) ([]trajectory.Pose, error) {
	ref, err := s.reference(req.Reference)
	if err != nil {
		return nil, err
	}
	return trajectory.CircleAboutPose(trajectory.CircleSpec{
		Radius:     req.Radius,
		NumPoints:  req.NumPoints,
		StartAngle: req.StartAngle,
		EndAngle:   req.EndAngle,
		ZOffset:    req.ZOffset,
		ZPolicy:    trajectory.ParseZPolicy(req.ZPolicy),
	}, ref)
}

func (s *Server) orientedPoints(req *OrientedRequest) ([]trajectory.Pose, error) {
	ref, err := s.reference(req.Reference)
	if err != nil {
		return nil, err
	}
	var up *r3.Vector
	if req.Up != nil {
		v := vec(*req.Up)
		up = &v
	}
	return trajectory.OrientedArc(trajectory.OrientedSpec{
		Center:     vec(req.Center),
		Radius:     req.Radius,
		Normal:     vec(req.Normal),
		Up:         up,
		NumPoints:  req.NumPoints,
		StartAngle: req.StartAngle,
		EndAngle:   req.EndAngle,
	}, ref)
}

func (s *Server) semicirclePoints(req *SemicircleRequest) (trajectory.SemicircleResult, error) {
	ref, err := s.reference(req.Reference)
	if err != nil {
		return trajectory.SemicircleResult{}, err
	}
	var normal *r3.Vector
	if req.Normal != nil {
		v := vec(*req.Normal)
		normal = &v
	}
	return trajectory.SemicircleBetween(ref.Position(), vec(req.Target), normal, req.NumPoints, ref)
}

// buildJob resolves a job request into its pose sequence and the
// default move mode for the kind: jump for explicit-center arcs, movj
// otherwise.
func (s *Server) buildJob(req *JobRequest) ([]trajectory.Pose, robot.MoveMode, error) {
	switch req.Kind {
	case "arc":
		if req.Arc == nil {
			return nil, 0, fmt.Errorf("missing arc spec")
		}
		res, err := s.arcPoints(req.Arc)
		return res.Points, robot.ModeJump, err
	case "circle":
		if req.Circle == nil {
			return nil, 0, fmt.Errorf("missing circle spec")
		}
		points, err := s.circlePoints(req.Circle)
		return points, robot.ModeMovJ, err
	case "oriented":
		if req.Oriented == nil {
			return nil, 0, fmt.Errorf("missing oriented spec")
		}
		points, err := s.orientedPoints(req.Oriented)
		return points, robot.ModeMovJ, err
	case "semicircle":
		if req.Semicircle == nil {
			return nil, 0, fmt.Errorf("missing semicircle spec")
		}
		res, err := s.semicirclePoints(req.Semicircle)
		return res.Points, robot.ModeMovJ, err
	default:
		return nil, 0, fmt.Errorf("unknown trajectory kind %q", req.Kind)
	}
}

// handleStartJob computes a trajectory and executes it in the
// background, streaming progress over the websocket.
func (s *Server) handleStartJob(c *fiber.Ctx) error {
	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	points, mode, err := s.buildJob(&req)
	if err != nil {
		return badRequest(c, err)
	}
	if req.Mode != "" {
		mode, err = robot.ParseMoveMode(req.Mode)
		if err != nil {
			return badRequest(c, err)
		}
	}

	delay := s.delay
	if req.DelayMS != nil && *req.DelayMS >= 0 {
		delay = time.Duration(*req.DelayMS) * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &Job{
		ID:      uuid.NewString(),
		Kind:    req.Kind,
		Mode:    mode.String(),
		State:   JobRunning,
		Total:   len(points),
		Created: time.Now(),
		cancel:  cancel,
	}
	s.putJob(job)

	exec := robot.NewExecutor(s.arm, delay)
	exec.OnPoint = func(i, total int, p trajectory.Pose) {
		s.jobsMu.Lock()
		job.Sent = i + 1
		pose := p
		job.Last = &pose
		s.jobsMu.Unlock()

		s.progressHub.BroadcastJSON(ProgressEvent{
			JobID: job.ID,
			Index: i,
			Total: total,
			Pose:  p,
		})
	}

	go func() {
		defer cancel()
		err := exec.Execute(ctx, mode, points)

		s.jobsMu.Lock()
		switch {
		case err == nil:
			job.State = JobDone
		case ctx.Err() != nil:
			job.State = JobCancelled
		default:
			job.State = JobFailed
			job.Error = err.Error()
		}
		s.jobsMu.Unlock()

		if err != nil {
			log.Warn("job finished with error", "id", job.ID, "err", err)
		}
	}()

	s.jobsMu.RLock()
	snapshot := *job
	s.jobsMu.RUnlock()
	return c.Status(fiber.StatusAccepted).JSON(snapshot)
}

// handleListJobs returns all known jobs.
func (s *Server) handleListJobs(c *fiber.Ctx) error {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	jobs := make([]*Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	return c.JSON(jobs)
}

// handleGetJob returns one job by ID.
func (s *Server) handleGetJob(c *fiber.Ctx) error {
	job, ok := s.getJob(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no such job"})
	}
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	return c.JSON(job)
}

// handleCancelJob cancels a running job. The executor stops before the
// next point; already-issued moves are not undone.
func (s *Server) handleCancelJob(c *fiber.Ctx) error {
	job, ok := s.getJob(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no such job"})
	}
	job.cancel()
	return c.JSON(fiber.Map{"id": job.ID, "cancelling": true})
}
