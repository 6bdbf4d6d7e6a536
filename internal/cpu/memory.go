package cpu

import "github.com/retroenv/retrochip8/internal/machine"

// storeBCD writes the hundreds, tens and units digit of Vx to I, I+1 and I+2.
func (c *CPU) storeBCD(x byte) {
	value := c.mach.V[x]
	i := c.mach.I
	c.mach.Write(i, value/100)
	c.mach.Write(i+1, value/10%10)
	c.mach.Write(i+2, value%10)
}

// storeRegisters copies V0 to Vx inclusive to memory at I and moves I past them.
func (c *CPU) storeRegisters(x byte) {
	for r := range uint16(x) + 1 {
		c.mach.Write(c.mach.I+r, c.mach.V[r])
	}
	c.mach.I = (c.mach.I + uint16(x) + 1) & machine.AddressMask
}

// loadRegisters copies memory at I to V0 to Vx inclusive and moves I past them.
func (c *CPU) loadRegisters(x byte) {
	for r := range uint16(x) + 1 {
		c.mach.V[r] = c.mach.Read(c.mach.I + r)
	}
	c.mach.I = (c.mach.I + uint16(x) + 1) & machine.AddressMask
}
