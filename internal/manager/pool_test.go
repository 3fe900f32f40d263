package manager

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsJobs(t *testing.T) {
	p := NewWorkerPool(4, 8)
	defer p.Shutdown()

	var n atomic.Int32
	done := make(chan struct{}, 100)
	for range 100 {
		if err := p.SubmitJobBlocking(context.Background(), func() {
			n.Add(1)
			done <- struct{}{}
		}); err != nil {
			t.Fatalf("SubmitJobBlocking: %v", err)
		}
	}
	for range 100 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	if n.Load() != 100 {
		t.Errorf("ran %d jobs, want 100", n.Load())
	}
	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	p := NewWorkerPool(0, 0)
	defer p.Shutdown()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want at least 1", p.Workers())
	}
}

func TestWorkerPoolSubmitAfterShutdown(t *testing.T) {
	p := NewWorkerPool(1, 1)
	p.Shutdown()
	if err := p.SubmitJobBlocking(context.Background(), func() {}); err != ErrPoolClosed {
		t.Errorf("SubmitJobBlocking after Shutdown = %v, want ErrPoolClosed", err)
	}
}

func TestWorkerPoolSubmitHonoursContext(t *testing.T) {
	p := NewWorkerPool(1, 0)
	defer p.Shutdown()

	release := make(chan struct{})
	started := make(chan struct{})
	_ = p.SubmitJobBlocking(context.Background(), func() {
		close(started)
		<-release
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := p.SubmitJobBlocking(ctx, func() {}); err != context.DeadlineExceeded {
		t.Errorf("SubmitJobBlocking on a busy pool = %v, want DeadlineExceeded", err)
	}
	close(release)
}

func TestWorkerPoolDoneClosesOnShutdown(t *testing.T) {
	p := NewWorkerPool(1, 1)
	select {
	case <-p.Done():
		t.Fatal("Done closed before Shutdown")
	default:
	}
	p.Shutdown()
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after Shutdown")
	}
}
