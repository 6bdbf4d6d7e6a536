// Package scheduler couples the instruction stream to the 60 Hz frame
// cadence. Every tick executes one step, but only steps that reach a frame
// boundary may change the framebuffer and count down the timers.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frame boundaries per second.
const FrameRate = 60

// FrameDuration is the minimum time between two frame boundaries.
const FrameDuration = time.Second / FrameRate

// Stepper executes one instruction per call.
type Stepper interface {
	Step(frame bool) error
}

// FrameSource provides the framebuffer content.
type FrameSource interface {
	Framebuffer() display.Grid
}

// Renderer presents a committed frame.
type Renderer interface {
	Render(grid display.Grid) error
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInstructionsPerSecond caps the step rate, 0 runs uncapped.
func WithInstructionsPerSecond(ips int) Option {
	return func(s *Scheduler) {
		s.limiter.ips = ips
	}
}

// WithFrameLimit stops Run after the given number of frames, 0 runs until
// the context is cancelled.
func WithFrameLimit(frames uint64) Option {
	return func(s *Scheduler) {
		s.frameLimit = frames
	}
}

// Scheduler drives a Stepper and decides which steps are frame boundaries.
type Scheduler struct {
	logger  *log.Logger
	clock   Clock
	stepper Stepper

	lastFrame  time.Time
	frames     uint64
	ticks      uint64
	frameLimit uint64

	limiter limiter
}

// New returns a scheduler for the stepper. The first frame boundary is
// reached one FrameDuration after creation.
func New(logger *log.Logger, clock Clock, stepper Stepper, options ...Option) *Scheduler {
	s := &Scheduler{
		logger:  logger,
		clock:   clock,
		stepper: stepper,
	}
	for _, option := range options {
		option(s)
	}
	s.lastFrame = clock.Now()
	return s
}

// Tick executes one step and returns whether it was a frame boundary.
func (s *Scheduler) Tick() (bool, error) {
	now := s.clock.Now()
	frame := now.Sub(s.lastFrame) >= FrameDuration
	if frame {
		s.lastFrame = now
		s.frames++
	}
	s.ticks++

	if err := s.stepper.Step(frame); err != nil {
		return frame, err
	}
	return frame, nil
}

// Run ticks until the context is cancelled, the frame limit is reached or
// the stepper fails. Every frame boundary hands the framebuffer to the
// renderer.
func (s *Scheduler) Run(ctx context.Context, source FrameSource, renderer Renderer) error {
	s.limiter.start(time.Now())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := s.Tick()
		if err != nil {
			return fmt.Errorf("executing step %d: %w", s.ticks, err)
		}

		if frame {
			if err := renderer.Render(source.Framebuffer()); err != nil {
				return fmt.Errorf("rendering frame %d: %w", s.frames, err)
			}
			if s.frameLimit > 0 && s.frames >= s.frameLimit {
				s.logger.Debug("Frame limit reached",
					log.Int("frames", int(s.frames)),
					log.Int("steps", int(s.ticks)))
				return nil
			}
		}

		s.limiter.wait()
	}
}

// Frames returns the number of frame boundaries reached.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Ticks returns the number of executed steps.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
