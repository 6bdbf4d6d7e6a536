package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestTick_FrameBoundaries(t *testing.T) {
	stepper := &mockStepper{}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(4), stepper)

	for range 12 {
		_, err := s.Tick()
		assert.NoError(t, err)
	}

	expected := []bool{
		false, false, false, true,
		false, false, false, true,
		false, false, false, true,
	}
	assert.Equal(t, expected, stepper.frames)
	assert.Equal(t, uint64(3), s.Frames())
	assert.Equal(t, uint64(12), s.Ticks())
}

func TestTick_EveryStepIsFrameWhenClockIsSlow(t *testing.T) {
	stepper := &mockStepper{}
	s := New(log.NewTestLogger(t), NewSteppedClock(time.Second), stepper)

	for range 5 {
		frame, err := s.Tick()
		assert.NoError(t, err)
		assert.True(t, frame)
	}
}

func TestTick_ExactFrameDuration(t *testing.T) {
	stepper := &mockStepper{}
	s := New(log.NewTestLogger(t), NewSteppedClock(FrameDuration), stepper)

	frame, err := s.Tick()
	assert.NoError(t, err)
	assert.True(t, frame, "a full frame duration reaches the boundary")
}

func TestTick_StepError(t *testing.T) {
	stepper := &mockStepper{failAt: 2}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(1), stepper)

	_, err := s.Tick()
	assert.NoError(t, err)
	_, err = s.Tick()
	assert.True(t, errors.Is(err, errMockStep))
}

func TestRun_FrameLimit(t *testing.T) {
	stepper := &mockStepper{}
	screen := &mockScreen{}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(10), stepper, WithFrameLimit(3))

	err := s.Run(context.Background(), screen, screen)
	assert.NoError(t, err)
	assert.Equal(t, 3, screen.rendered)
	assert.Equal(t, uint64(30), s.Ticks())
}

func TestRun_StepErrorStops(t *testing.T) {
	stepper := &mockStepper{failAt: 5}
	screen := &mockScreen{}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(2), stepper)

	err := s.Run(context.Background(), screen, screen)
	assert.True(t, errors.Is(err, errMockStep))
	assert.ErrorContains(t, err, "executing step 5")
	assert.Equal(t, 2, screen.rendered)
}

func TestRun_RenderErrorStops(t *testing.T) {
	errRender := errors.New("render failure")
	stepper := &mockStepper{}
	screen := &mockScreen{err: errRender}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(2), stepper)

	err := s.Run(context.Background(), screen, screen)
	assert.True(t, errors.Is(err, errRender))
	assert.Equal(t, 2, len(stepper.frames))
}

func TestRun_ContextCancelled(t *testing.T) {
	stepper := &mockStepper{}
	screen := &mockScreen{}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(2), stepper)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, screen, screen)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, len(stepper.frames))
}

func TestRun_InstructionsPerSecond(t *testing.T) {
	stepper := &mockStepper{}
	screen := &mockScreen{}
	s := New(log.NewTestLogger(t), NewStepsPerFrameClock(10), stepper,
		WithInstructionsPerSecond(1000), WithFrameLimit(2))

	start := time.Now()
	assert.NoError(t, s.Run(context.Background(), screen, screen))

	// 19 limited steps at 1000 per second take at least 17ms after slack
	assert.True(t, time.Since(start) >= 15*time.Millisecond)
}
