// Package instruction contains the decoded CHIP-8 instruction model and the
// opcode decoder.
package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded CHIP-8 instruction. The set of implementations is
// closed, every variant is declared in this package.
type Instruction interface {
	fmt.Stringer

	// Name returns the instruction mnemonic.
	Name() string

	isInstruction()
}

// Clear clears the framebuffer (00E0).
type Clear struct{}

// Return pops the return address from the call stack (00EE).
type Return struct{}

// Jump sets the program counter (1nnn).
type Jump struct{ Address uint16 }

// Call pushes the address of the next instruction and jumps (2nnn).
type Call struct{ Address uint16 }

// JumpOffset jumps to the address plus V0 (Bnnn).
type JumpOffset struct{ Address uint16 }

// SkipEqualImm skips the next instruction if Vx equals the value (3xnn).
type SkipEqualImm struct{ X, Value byte }

// SkipNotEqualImm skips the next instruction if Vx does not equal the value (4xnn).
type SkipNotEqualImm struct{ X, Value byte }

// SkipEqualReg skips the next instruction if Vx equals Vy (5xy0).
type SkipEqualReg struct{ X, Y byte }

// SkipNotEqualReg skips the next instruction if Vx does not equal Vy (9xy0).
type SkipNotEqualReg struct{ X, Y byte }

// LoadImm sets Vx to the value (6xnn).
type LoadImm struct{ X, Value byte }

// AddImm adds the value to Vx without touching VF (7xnn).
type AddImm struct{ X, Value byte }

// Move copies Vy to Vx (8xy0).
type Move struct{ X, Y byte }

// Or sets Vx to Vx OR Vy (8xy1).
type Or struct{ X, Y byte }

// And sets Vx to Vx AND Vy (8xy2).
type And struct{ X, Y byte }

// Xor sets Vx to Vx XOR Vy (8xy3).
type Xor struct{ X, Y byte }

// AddReg adds Vy to Vx with carry in VF (8xy4).
type AddReg struct{ X, Y byte }

// Sub subtracts Vy from Vx, VF is set when there is no borrow (8xy5).
type Sub struct{ X, Y byte }

// ShiftRight sets Vx to Vy shifted right by one, VF gets the shifted out bit (8xy6).
type ShiftRight struct{ X, Y byte }

// SubReverse sets Vx to Vy minus Vx, VF is set when there is no borrow (8xy7).
type SubReverse struct{ X, Y byte }

// ShiftLeft sets Vx to Vy shifted left by one, VF gets the shifted out bit (8xyE).
type ShiftLeft struct{ X, Y byte }

// LoadIndex sets the index register (Annn).
type LoadIndex struct{ Address uint16 }

// Random sets Vx to a random byte masked by the value (Cxnn).
type Random struct{ X, Mask byte }

// Draw blits a sprite of Height rows from memory at I to (Vx, Vy) (Dxyn).
type Draw struct{ X, Y, Height byte }

// SkipKey skips the next instruction if the key in Vx is held (Ex9E).
type SkipKey struct{ X byte }

// SkipNotKey skips the next instruction if the key in Vx is not held (ExA1).
type SkipNotKey struct{ X byte }

// LoadDelay sets Vx to the delay timer (Fx07).
type LoadDelay struct{ X byte }

// WaitKey blocks until a key is held and stores its index in Vx (Fx0A).
type WaitKey struct{ X byte }

// SetDelay sets the delay timer to Vx (Fx15).
type SetDelay struct{ X byte }

// SetSound sets the sound timer to Vx (Fx18).
type SetSound struct{ X byte }

// AddIndex adds Vx to the index register (Fx1E).
type AddIndex struct{ X byte }

// StoreBCD stores the decimal digits of Vx at I, I+1 and I+2 (Fx33).
type StoreBCD struct{ X byte }

// StoreRegisters stores V0 to Vx in memory at I (Fx55).
type StoreRegisters struct{ X byte }

// LoadRegisters loads V0 to Vx from memory at I (Fx65).
type LoadRegisters struct{ X byte }

// Invalid is an instruction word that matches no known instruction.
type Invalid struct{ Hi, Lo byte }

func (Clear) Name() string           { return chip8.ClsName }
func (Return) Name() string          { return chip8.RetName }
func (Jump) Name() string            { return chip8.JpName }
func (Call) Name() string            { return chip8.CallName }
func (JumpOffset) Name() string      { return chip8.JpName }
func (SkipEqualImm) Name() string    { return chip8.SeName }
func (SkipNotEqualImm) Name() string { return chip8.SneName }
func (SkipEqualReg) Name() string    { return chip8.SeName }
func (SkipNotEqualReg) Name() string { return chip8.SneName }
func (LoadImm) Name() string         { return chip8.LdName }
func (AddImm) Name() string          { return chip8.AddName }
func (Move) Name() string            { return chip8.LdName }
func (Or) Name() string              { return chip8.OrName }
func (And) Name() string             { return chip8.AndName }
func (Xor) Name() string             { return chip8.XorName }
func (AddReg) Name() string          { return chip8.AddName }
func (Sub) Name() string             { return chip8.SubName }
func (ShiftRight) Name() string      { return chip8.ShrName }
func (SubReverse) Name() string      { return chip8.SubnName }
func (ShiftLeft) Name() string       { return chip8.ShlName }
func (LoadIndex) Name() string       { return chip8.LdName }
func (Random) Name() string          { return chip8.RndName }
func (Draw) Name() string            { return chip8.DrwName }
func (SkipKey) Name() string         { return chip8.SkpName }
func (SkipNotKey) Name() string      { return chip8.SknpName }
func (LoadDelay) Name() string       { return chip8.LdName }
func (WaitKey) Name() string         { return chip8.LdName }
func (SetDelay) Name() string        { return chip8.LdName }
func (SetSound) Name() string        { return chip8.LdName }
func (AddIndex) Name() string        { return chip8.AddName }
func (StoreBCD) Name() string        { return chip8.LdName }
func (StoreRegisters) Name() string  { return chip8.LdName }
func (LoadRegisters) Name() string   { return chip8.LdName }
func (Invalid) Name() string         { return ".word" }

func (i Clear) String() string  { return i.Name() }
func (i Return) String() string { return i.Name() }

func (i Jump) String() string       { return fmt.Sprintf("%s $%03X", i.Name(), i.Address) }
func (i Call) String() string       { return fmt.Sprintf("%s $%03X", i.Name(), i.Address) }
func (i JumpOffset) String() string { return fmt.Sprintf("%s V0, $%03X", i.Name(), i.Address) }
func (i LoadIndex) String() string  { return fmt.Sprintf("%s I, $%03X", i.Name(), i.Address) }

func (i SkipEqualImm) String() string    { return formatImmediate(i.Name(), i.X, i.Value) }
func (i SkipNotEqualImm) String() string { return formatImmediate(i.Name(), i.X, i.Value) }
func (i LoadImm) String() string         { return formatImmediate(i.Name(), i.X, i.Value) }
func (i AddImm) String() string          { return formatImmediate(i.Name(), i.X, i.Value) }
func (i Random) String() string          { return formatImmediate(i.Name(), i.X, i.Mask) }

func (i SkipEqualReg) String() string    { return formatRegisters(i.Name(), i.X, i.Y) }
func (i SkipNotEqualReg) String() string { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Move) String() string            { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Or) String() string              { return formatRegisters(i.Name(), i.X, i.Y) }
func (i And) String() string             { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Xor) String() string             { return formatRegisters(i.Name(), i.X, i.Y) }
func (i AddReg) String() string          { return formatRegisters(i.Name(), i.X, i.Y) }
func (i Sub) String() string             { return formatRegisters(i.Name(), i.X, i.Y) }
func (i ShiftRight) String() string      { return formatRegisters(i.Name(), i.X, i.Y) }
func (i SubReverse) String() string      { return formatRegisters(i.Name(), i.X, i.Y) }
func (i ShiftLeft) String() string       { return formatRegisters(i.Name(), i.X, i.Y) }

func (i Draw) String() string {
	return fmt.Sprintf("%s V%X, V%X, $%X", i.Name(), i.X, i.Y, i.Height)
}

func (i SkipKey) String() string    { return fmt.Sprintf("%s V%X", i.Name(), i.X) }
func (i SkipNotKey) String() string { return fmt.Sprintf("%s V%X", i.Name(), i.X) }

func (i LoadDelay) String() string      { return fmt.Sprintf("%s V%X, DT", i.Name(), i.X) }
func (i WaitKey) String() string        { return fmt.Sprintf("%s V%X, K", i.Name(), i.X) }
func (i SetDelay) String() string       { return fmt.Sprintf("%s DT, V%X", i.Name(), i.X) }
func (i SetSound) String() string       { return fmt.Sprintf("%s ST, V%X", i.Name(), i.X) }
func (i AddIndex) String() string       { return fmt.Sprintf("%s I, V%X", i.Name(), i.X) }
func (i StoreBCD) String() string       { return fmt.Sprintf("%s B, V%X", i.Name(), i.X) }
func (i StoreRegisters) String() string { return fmt.Sprintf("%s [I], V%X", i.Name(), i.X) }
func (i LoadRegisters) String() string  { return fmt.Sprintf("%s V%X, [I]", i.Name(), i.X) }

func (i Invalid) String() string { return fmt.Sprintf("%s $%02X%02X", i.Name(), i.Hi, i.Lo) }

func (Clear) isInstruction()           {}
func (Return) isInstruction()          {}
func (Jump) isInstruction()            {}
func (Call) isInstruction()            {}
func (JumpOffset) isInstruction()      {}
func (SkipEqualImm) isInstruction()    {}
func (SkipNotEqualImm) isInstruction() {}
func (SkipEqualReg) isInstruction()    {}
func (SkipNotEqualReg) isInstruction() {}
func (LoadImm) isInstruction()         {}
func (AddImm) isInstruction()          {}
func (Move) isInstruction()            {}
func (Or) isInstruction()              {}
func (And) isInstruction()             {}
func (Xor) isInstruction()             {}
func (AddReg) isInstruction()          {}
func (Sub) isInstruction()             {}
func (ShiftRight) isInstruction()      {}
func (SubReverse) isInstruction()      {}
func (ShiftLeft) isInstruction()       {}
func (LoadIndex) isInstruction()       {}
func (Random) isInstruction()          {}
func (Draw) isInstruction()            {}
func (SkipKey) isInstruction()         {}
func (SkipNotKey) isInstruction()      {}
func (LoadDelay) isInstruction()       {}
func (WaitKey) isInstruction()         {}
func (SetDelay) isInstruction()        {}
func (SetSound) isInstruction()        {}
func (AddIndex) isInstruction()        {}
func (StoreBCD) isInstruction()        {}
func (StoreRegisters) isInstruction()  {}
func (LoadRegisters) isInstruction()   {}
func (Invalid) isInstruction()         {}

// formatImmediate formats an instruction with a register and byte operand.
func formatImmediate(name string, x, value byte) string {
	return fmt.Sprintf("%s V%X, $%02X", name, x, value)
}

// formatRegisters formats an instruction with two register operands.
func formatRegisters(name string, x, y byte) string {
	return fmt.Sprintf("%s V%X, V%X", name, x, y)
}
