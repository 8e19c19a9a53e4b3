package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestPostRunsInSubmissionOrder(t *testing.T) {
	clk := clock.NewMock()
	s := NewWithClock(clk)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		s.Post(func() { got = append(got, i) })
	}
	s.Pump()

	want := []int{0, 1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestAfterRespectsDelayNotCallOrder(t *testing.T) {
	clk := clock.NewMock()
	s := NewWithClock(clk)

	var got []string
	s.After(50*time.Millisecond, func() { got = append(got, "slow") })
	s.After(10*time.Millisecond, func() { got = append(got, "fast") })

	if n := s.Pump(); n != 0 {
		t.Fatalf("nothing should be due yet, ran %d", n)
	}

	clk.Add(10 * time.Millisecond)
	s.Pump()
	if len(got) != 1 || got[0] != "fast" {
		t.Fatalf("after 10ms got %v", got)
	}

	clk.Add(40 * time.Millisecond)
	s.Pump()
	if len(got) != 2 || got[1] != "slow" {
		t.Fatalf("after 50ms got %v", got)
	}
}

func TestPumpRunsCascadingZeroDelayTasks(t *testing.T) {
	clk := clock.NewMock()
	s := NewWithClock(clk)

	ran := 0
	s.Post(func() {
		ran++
		s.Post(func() { ran++ })
	})

	if n := s.Pump(); n != 2 {
		t.Fatalf("Pump ran %d tasks, want 2", n)
	}
	if ran != 2 {
		t.Fatalf("ran = %d, want 2", ran)
	}
}

func TestPumpLeavesFutureTasksQueued(t *testing.T) {
	clk := clock.NewMock()
	s := NewWithClock(clk)

	s.Post(func() {})
	s.After(time.Second, func() {})

	s.Pump()
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestNilTaskIgnored(t *testing.T) {
	s := NewWithClock(clock.NewMock())
	s.Post(nil)
	if s.Len() != 0 {
		t.Fatalf("nil task should not be queued")
	}
}

func TestRunExecutesPostedTask(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go s.Run(ctx)

	s.Post(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run under Run loop")
	}
}
