package core

import (
	"fmt"
	"time"

	"github.com/skarn/mdxwrap/internal/parser"
	"github.com/skarn/mdxwrap/internal/report"
	"github.com/skarn/mdxwrap/internal/utils"
	"github.com/skarn/mdxwrap/internal/worker"
)

const (
	defaultStatusInterval = 5 * time.Second
	defaultGracePeriod    = 5 * time.Second
	defaultPollInterval   = time.Second
	lineBuffer            = 64
)

// Options configures one supervision run.
type Options struct {
	Window WorkWindow

	// StatusInterval is the cadence of periodic STATUS emission.
	StatusInterval time.Duration

	// GracePeriod is how long a terminated worker gets before SIGKILL.
	GracePeriod time.Duration

	// Timeout stops the run after a fixed wall-clock duration. Zero
	// disables it.
	Timeout time.Duration

	// PollInterval is the cadence of the parent-death check.
	PollInterval time.Duration
}

// Supervisor owns the worker's lifecycle: it spawns the process, drains
// both output streams, keeps the progress state current, emits the wire
// protocol and evaluates every termination condition. It is the sole
// consumer of both stream queues and the sole mutator of ProgressState.
type Supervisor struct {
	opts    Options
	proc    *worker.Process
	state   *ProgressState
	cancel  *CancellationController
	emitter *report.Emitter
	logger  utils.Logger
	stopped chan struct{}
}

// NewSupervisor creates a supervisor for a prepared, not yet started
// worker process.
func NewSupervisor(proc *worker.Process, opts Options, cancel *CancellationController, emitter *report.Emitter, logger utils.Logger) *Supervisor {
	if opts.StatusInterval <= 0 {
		opts.StatusInterval = defaultStatusInterval
	}
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = defaultGracePeriod
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	return &Supervisor{
		opts:    opts,
		proc:    proc,
		state:   NewProgressState(opts.Window),
		cancel:  cancel,
		emitter: emitter,
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

// State exposes the progress state for inspection after Run returns.
func (s *Supervisor) State() *ProgressState {
	return s.state
}

// Run drives the worker from spawn to reap. It returns an error only for
// a launch failure; every completed supervision loop, including the
// cancellation paths, is a clean run.
func (s *Supervisor) Run() error {
	if err := s.proc.Start(); err != nil {
		return fmt.Errorf("launching worker: %w", err)
	}
	s.logger.Debugf("Worker started (pid %d)", s.proc.PID())

	resultCh := streamLines(s.proc.Stdout(), lineBuffer)
	progressCh := streamLines(s.proc.Stderr(), lineBuffer)

	statusTicker := time.NewTicker(s.opts.StatusInterval)
	defer statusTicker.Stop()
	pollTicker := time.NewTicker(s.opts.PollInterval)
	defer pollTicker.Stop()

	var timeoutCh <-chan time.Time
	if s.opts.Timeout > 0 {
		timer := time.NewTimer(s.opts.Timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	cancelCh := s.cancel.Done()

	// The loop runs until both streams hit EOF, which only happens once
	// every process in the worker's group has exited. A dead stream on its
	// own never hangs the loop: its channel closes and is nil-ed out.
	for resultCh != nil || progressCh != nil {
		select {
		case line, ok := <-resultCh:
			if !ok {
				resultCh = nil
				continue
			}
			s.handleResultLine(line)
		case line, ok := <-progressCh:
			if !ok {
				progressCh = nil
				continue
			}
			s.handleProgressLine(line)
		case <-statusTicker.C:
			s.emitter.Status(s.state.Percentage(), s.state.SpeedValue())
		case <-pollTicker.C:
			if s.cancel.ParentChanged() {
				s.cancel.Trigger(ReasonParentDied)
			}
		case <-timeoutCh:
			timeoutCh = nil
			s.cancel.Trigger(ReasonTimeout)
		case <-cancelCh:
			cancelCh = nil
			s.requestStop()
		}
	}

	close(s.stopped)
	if err := s.proc.Wait(); err != nil {
		// Expected after a kill; natural nonzero exits are only worth a
		// diagnostic note.
		s.logger.Debugf("Worker exit: %v", err)
	}

	reason := s.cancel.Reason()
	switch reason {
	case ReasonNone, ReasonLimitReached:
		// A finished pass or a fully covered window both complete the run.
		s.state.MarkComplete()
	default:
		s.logger.Warnf("Run stopped early: %s", reason)
	}

	s.emitter.FinalStatus(s.state.Percentage(), s.state.SpeedValue())
	s.logger.Infof("Run finished: %d/10000, %d found", s.state.Percentage(), s.state.FoundCount())
	return nil
}

// requestStop begins the graceful-then-forceful termination sequence. The
// kill timer is disarmed when the drain loop finishes first.
func (s *Supervisor) requestStop() {
	s.logger.Infof("Stopping worker (pid %d): %s", s.proc.PID(), s.cancel.Reason())
	if err := s.proc.Terminate(); err != nil {
		s.logger.Debugf("Terminate request failed: %v", err)
	}
	go func() {
		select {
		case <-s.stopped:
		case <-time.After(s.opts.GracePeriod):
			s.logger.Warnf("Worker ignored graceful stop, killing")
			if err := s.proc.Kill(); err != nil {
				s.logger.Debugf("Kill failed: %v", err)
			}
		}
	}()
}

func (s *Supervisor) handleResultLine(line string) {
	ev, ok := parser.ClassifyResult(line)
	if !ok {
		s.logger.Debugf("Worker says: %s", line)
		return
	}
	s.state.AddFound(1)
	s.emitter.Result(ev)
}

func (s *Supervisor) handleProgressLine(line string) {
	ev, ok := parser.ClassifyProgress(line)
	if !ok {
		s.logger.Debugf("Worker says: %s", line)
		return
	}
	s.state.ApplyProgress(ev.Position, ev.HashRate, ev.Found)
	if s.state.LimitReached() {
		s.cancel.Trigger(ReasonLimitReached)
	}
}
