package robot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/teslashibe/go-magician/pkg/trajectory"
)

// mockMover records all commands for testing
type mockMover struct {
	mu    sync.Mutex
	calls []struct {
		mode MoveMode
		pose trajectory.Pose
	}
	failAt int // 1-based call index to fail on, 0 = never
}

func (m *mockMover) PTP(mode MoveMode, target trajectory.Pose) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, struct {
		mode MoveMode
		pose trajectory.Pose
	}{mode, target})
	if m.failAt > 0 && len(m.calls) == m.failAt {
		return errors.New("bridge unreachable")
	}
	return nil
}

func (m *mockMover) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func testPoints(n int) []trajectory.Pose {
	points := make([]trajectory.Pose, n)
	for i := range points {
		points[i] = trajectory.Pose{X: float64(i)}
	}
	return points
}

func TestExecutor_VisitsInOrder(t *testing.T) {
	mock := &mockMover{}
	exec := NewExecutor(mock, 0)

	if err := exec.Execute(context.Background(), ModeMovJ, testPoints(10)); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if mock.callCount() != 10 {
		t.Fatalf("calls = %d, want 10", mock.callCount())
	}
	for i, c := range mock.calls {
		if c.pose.X != float64(i) {
			t.Errorf("call %d X = %v, want %v (index order)", i, c.pose.X, i)
		}
		if c.mode != ModeMovJ {
			t.Errorf("call %d mode = %v, want movj", i, c.mode)
		}
	}
	if exec.Sent() != 10 {
		t.Errorf("Sent = %d, want 10", exec.Sent())
	}
}

func TestExecutor_StopsOnError(t *testing.T) {
	mock := &mockMover{failAt: 3}
	exec := NewExecutor(mock, 0)

	err := exec.Execute(context.Background(), ModeJump, testPoints(10))
	if err == nil {
		t.Fatal("Execute: expected error")
	}
	if mock.callCount() != 3 {
		t.Errorf("calls = %d, want 3 (stop at first failure)", mock.callCount())
	}
	if exec.Errors() != 1 {
		t.Errorf("Errors = %d, want 1", exec.Errors())
	}
}

func TestExecutor_Cancellation(t *testing.T) {
	mock := &mockMover{}
	exec := NewExecutor(mock, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	err := exec.Execute(ctx, ModeMovL, testPoints(100))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if n := mock.callCount(); n == 0 || n >= 100 {
		t.Errorf("calls = %d, want partial progress", n)
	}
}

func TestExecutor_OnPoint(t *testing.T) {
	mock := &mockMover{}
	exec := NewExecutor(mock, 0)

	var got []int
	exec.OnPoint = func(i, total int, p trajectory.Pose) {
		if total != 5 {
			t.Errorf("total = %d, want 5", total)
		}
		got = append(got, i)
	}

	if err := exec.Execute(context.Background(), ModeMovJ, testPoints(5)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("callback order %v, want ascending from 0", got)
			break
		}
	}
	if len(got) != 5 {
		t.Errorf("callbacks = %d, want 5", len(got))
	}
}

func TestExecutor_EmptySequence(t *testing.T) {
	exec := NewExecutor(&mockMover{}, 0)
	if err := exec.Execute(context.Background(), ModeMovJ, nil); err != nil {
		t.Errorf("Execute(nil): %v, want nil", err)
	}
}

func TestParseMoveMode(t *testing.T) {
	cases := []struct {
		in      string
		want    MoveMode
		wantErr bool
	}{
		{"jump", ModeJump, false},
		{"movj", ModeMovJ, false},
		{"movl", ModeMovL, false},
		{"", ModeMovJ, false},
		{"teleport", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseMoveMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoveMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoveMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoveMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
