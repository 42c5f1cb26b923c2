// Package machine wires ROM, data memory, and the CPU into the complete
// Hack computer, ticking them through the fetch/read/compute/commit sequence
// once per Clock call.
package machine

import (
	"github.com/nandforge/hacksim/pkg/blackbox"
	"github.com/nandforge/hacksim/pkg/cpu"
	"github.com/nandforge/hacksim/pkg/memory"
	"github.com/nandforge/hacksim/pkg/word"
)

// Machine is the complete Hack computer: instruction ROM, data memory
// (RAM+screen+keyboard), and the CPU.
type Machine struct {
	rom    *blackbox.ROM32K
	memory memory.Memory
	cpu    cpu.CPU
}

// New loads instructions into a fresh Machine's ROM; every other piece of
// state starts zeroed.
func New(instructions []int16) *Machine {
	return &Machine{rom: blackbox.NewROM32K(instructions)}
}

// Clock advances the whole machine by one tick: fetch the instruction at PC,
// read the operand it addresses, compute the CPU's combinational output,
// commit it to memory, then commit the CPU's own state (A/D/PC).
func (m *Machine) Clock(reset bool) {
	in := cpu.Input{
		Instruction: m.rom.Out(m.cpu.PC()),
		InM:         m.memory.Out(m.cpu.AddressM()),
		Reset:       reset,
	}
	out := m.cpu.Out(in)
	m.memory.Clock(m.cpu.AddressM(), out.OutM, out.WriteM)
	m.cpu.Clock(in)
}

// ReadMemory reads a data-memory address, for tests and debugging front-ends.
func (m *Machine) ReadMemory(address int16) int16 {
	return word.ToInt(m.memory.Out(word.FromInt(address)))
}

// ScreenImage exposes the framebuffer for a display front-end to blit.
func (m *Machine) ScreenImage() *[8 * 1024]int16 {
	return m.memory.Screen().RawImage()
}

// KeyboardInput publishes the currently pressed key's scancode.
func (m *Machine) KeyboardInput(key int16) {
	m.memory.Keyboard().SetKey(key)
}

// NextInstruction reads the raw instruction word the next Clock will fetch,
// for tracing/debugging.
func (m *Machine) NextInstruction() int16 {
	return word.ToInt(m.rom.Out(m.cpu.PC()))
}

// IsTerminated reports whether the word at PC is zero: the common halt idiom
// of an A-instruction "@0", which is also what every ROM cell past the
// program's last supplied instruction reads back as. VM-translated programs
// that end on the "(TERMINAL) @TERMINAL; 0;JMP" spin loop never read back
// zero at PC and so never satisfy this; that loop exists only to give an
// over-driven clock a stable fixed point, not to be observed here.
func (m *Machine) IsTerminated() bool {
	return m.NextInstruction() == 0
}
