package robot

import (
	"encoding/json"
	"fmt"

	"github.com/teslashibe/go-magician/internal/httpc"
	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// HTTPController implements Controller using the arm's HTTP bridge.
// This is the primary controller used by the demo commands and the
// trajectory daemon.
type HTTPController struct {
	BaseURL string
}

// NewHTTPController creates a controller for the arm at the given IP,
// on the default bridge port.
func NewHTTPController(robotIP string) *HTTPController {
	return &HTTPController{
		BaseURL: fmt.Sprintf("http://%s:8000", robotIP),
	}
}

// NewHTTPControllerURL creates a controller for an explicit base URL.
func NewHTTPControllerURL(baseURL string) *HTTPController {
	return &HTTPController{BaseURL: baseURL}
}

// Pose reads the live end-effector pose.
func (r *HTTPController) Pose() (trajectory.Pose, error) {
	resp, err := httpc.Get(r.BaseURL + "/api/pose")
	if err != nil {
		return trajectory.Pose{}, fmt.Errorf("pose request failed: %w", err)
	}
	defer resp.Body.Close()

	var pose trajectory.Pose
	if err := json.NewDecoder(resp.Body).Decode(&pose); err != nil {
		return trajectory.Pose{}, fmt.Errorf("failed to decode pose: %w", err)
	}
	return pose, nil
}

// PTP issues a single point-to-point move to the target pose.
func (r *HTTPController) PTP(mode MoveMode, target trajectory.Pose) error {
	payload := map[string]interface{}{
		"mode": int(mode),
		"x":    target.X,
		"y":    target.Y,
		"z":    target.Z,
		"r":    target.R,
	}
	return r.post("/api/ptp", payload)
}

// SetJumpParams configures the gate-motion z limit and lift height
// used by ModeJump.
func (r *HTTPController) SetJumpParams(zLimit, height float64) error {
	payload := map[string]interface{}{
		"z_limit": zLimit,
		"height":  height,
	}
	return r.post("/api/jump_params", payload)
}

// post sends a JSON command to the bridge.
func (r *HTTPController) post(path string, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", path, err)
	}

	resp, err := httpc.Post(r.BaseURL+path, "application/json", data)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", path, err)
	}
	resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return nil
}
