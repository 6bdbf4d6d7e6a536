package emulator

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type frameRecorder struct {
	last   display.Grid
	frames int
}

func (r *frameRecorder) Render(grid display.Grid) error {
	r.last = grid
	r.frames++
	return nil
}

func newTestEmulator(t *testing.T, rom []byte) *Emulator {
	t.Helper()

	emu, err := New(log.NewTestLogger(t), DefaultConfig())
	assert.NoError(t, err)
	assert.NoError(t, emu.LoadROM(rom))
	return emu
}

func TestNew_InvalidStackDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StackDepth = 0

	_, err := New(log.NewTestLogger(t), cfg)
	assert.Error(t, err)
}

func TestLoadROM_TooLarge(t *testing.T) {
	emu, err := New(log.NewTestLogger(t), DefaultConfig())
	assert.NoError(t, err)

	err = emu.LoadROM(make([]byte, machine.MaxROMSize+1))
	assert.True(t, errors.Is(err, machine.ErrLoad))
}

func TestDelayTimerCountsFrames(t *testing.T) {
	rom := []byte{
		0x61, 0x14, // ld V1, 20
		0xF1, 0x15, // ld DT, V1
		0x12, 0x04, // jp $204
	}
	emu := newTestEmulator(t, rom)

	const stepsPerFrame = 5
	sched := scheduler.New(log.NewTestLogger(t), scheduler.NewStepsPerFrameClock(stepsPerFrame), emu)

	// the timer is set within the first frame
	for range 2 {
		_, err := sched.Tick()
		assert.NoError(t, err)
	}
	assert.Equal(t, byte(20), emu.Machine().DelayTimer)
	setAtFrame := sched.Frames()

	for range 30 * stepsPerFrame {
		_, err := sched.Tick()
		assert.NoError(t, err)

		elapsed := int(sched.Frames() - setAtFrame)
		assert.Equal(t, byte(max(0, 20-elapsed)), emu.Machine().DelayTimer)
	}
}

func TestRunDrawsSprite(t *testing.T) {
	rom := []byte{
		0x00, 0xE0, // cls
		0xA2, 0x0C, // ld I, $20C
		0x60, 0x02, // ld V0, 2
		0x61, 0x03, // ld V1, 3
		0xD0, 0x12, // drw V0, V1, 2
		0x12, 0x0A, // jp $20A
		0xF0, 0x90, // sprite data
	}
	emu := newTestEmulator(t, rom)
	recorder := &frameRecorder{}

	sched := scheduler.New(log.NewTestLogger(t), scheduler.NewStepsPerFrameClock(8), emu,
		scheduler.WithFrameLimit(3))
	assert.NoError(t, sched.Run(context.Background(), emu, recorder))

	assert.Equal(t, 3, recorder.frames)
	assert.Equal(t, 6, recorder.last.Count())
	assert.True(t, recorder.last[3][2])
	assert.True(t, recorder.last[3][5])
	assert.True(t, recorder.last[4][2])
	assert.False(t, recorder.last[4][3])
	assert.True(t, recorder.last[4][5])
	assert.Equal(t, recorder.last, emu.Framebuffer())
}

func TestRunHaltsOnInvalidOpcode(t *testing.T) {
	emu := newTestEmulator(t, []byte{0x00, 0x00})
	recorder := &frameRecorder{}

	sched := scheduler.New(log.NewTestLogger(t), scheduler.NewStepsPerFrameClock(2), emu)
	err := sched.Run(context.Background(), emu, recorder)
	assert.True(t, errors.Is(err, machine.ErrInvalidOpcode))
	assert.Equal(t, machine.Halted, emu.Machine().State().Mode)
}

func TestSetKeyResumesWait(t *testing.T) {
	rom := []byte{
		0xF4, 0x0A, // ld V4, K
		0x12, 0x02, // jp $202
	}
	emu := newTestEmulator(t, rom)

	assert.NoError(t, emu.Step(false))
	assert.NoError(t, emu.Step(false))
	assert.Equal(t, machine.AwaitingKey, emu.Machine().State().Mode)

	emu.SetKey(0x7, true)
	assert.NoError(t, emu.Step(false))
	assert.Equal(t, byte(7), emu.Machine().V[4])
	assert.Equal(t, uint16(0x202), emu.Machine().PC)
	assert.Equal(t, uint64(1), emu.Executed())
}
