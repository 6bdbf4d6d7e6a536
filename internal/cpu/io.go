package cpu

import (
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// clear unsets the framebuffer, held until a frame boundary.
func (c *CPU) clear(frame bool) bool {
	if !frame {
		return false
	}
	c.screen.Clear()
	c.advance()
	return true
}

// draw blits the sprite at I to (Vx, Vy) and sets VF on collision, held until
// a frame boundary.
func (c *CPU) draw(ins instruction.Draw, frame bool) bool {
	if !frame {
		return false
	}

	rows := c.sprite[:ins.Height]
	for r := range rows {
		rows[r] = c.mach.Read(c.mach.I + uint16(r))
	}

	collision := c.screen.Blit(int(c.mach.V[ins.X]), int(c.mach.V[ins.Y]), rows)
	c.setFlag(collision)
	c.advance()
	return true
}

// waitKey stores the first held key in Vx and advances. Without a held key
// the machine switches to awaiting a key and the program counter stays.
func (c *CPU) waitKey(x byte) bool {
	key, ok := c.keys.FirstHeld()
	if !ok {
		c.mach.SetState(machine.State{Mode: machine.AwaitingKey, Register: x})
		return false
	}

	c.mach.V[x] = key
	c.advance()
	return true
}

// resumeKeyWait completes a pending key wait once a key is held.
func (c *CPU) resumeKeyWait(x byte) {
	key, ok := c.keys.FirstHeld()
	if !ok {
		return
	}

	c.mach.V[x] = key
	c.mach.SetState(machine.State{Mode: machine.Running})
	c.advance()
	c.executed++
}
