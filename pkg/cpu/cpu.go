// Package cpu implements the Hack CPU: the A/D registers, the program
// counter, and the combinational decode logic that drives the ALU and
// derives the memory-write and jump control signals for one clock tick.
package cpu

import (
	"github.com/nandforge/hacksim/pkg/alu"
	"github.com/nandforge/hacksim/pkg/gate"
	"github.com/nandforge/hacksim/pkg/ram"
	"github.com/nandforge/hacksim/pkg/word"
)

// Input bundles the three signals the CPU consumes on a tick: the value
// currently sitting at the memory address the A register points to, the
// fetched instruction word, and the reset line.
type Input struct {
	InM         word.Word
	Instruction word.Word
	Reset       bool
}

// Output bundles the combinational results of a tick: the value to (maybe)
// write to memory, whether to actually write it, the address to write it
// at, and the program counter to fetch from next.
type Output struct {
	OutM     word.Word
	WriteM   bool
	AddressM word.Word
	PC       word.Word
}

// CPU holds the three pieces of state the Hack architecture specifies: the
// A and D registers and the program counter.
type CPU struct {
	a  ram.Register
	d  ram.Register
	pc ram.Counter
}

// PC reads the current program counter value, used to index ROM.
func (c *CPU) PC() word.Word {
	return c.pc.Out()
}

// AddressM reads the current A register value, used to index data memory.
func (c *CPU) AddressM() word.Word {
	return c.a.Out()
}

type controlBits struct {
	inA, inD word.Word
	loadA    bool
	loadD    bool
	jump     bool
}

func (c *CPU) decode(in Input) (Output, controlBits) {
	instruction := in.Instruction
	isC := instruction[15]

	x := c.d.Out()
	y := gate.Mux16(c.a.Out(), in.InM, instruction[12])
	result := alu.Compute(x, y,
		instruction[11], instruction[10], instruction[9],
		instruction[8], instruction[7], instruction[6])

	writeM := gate.And(instruction[3], isC)
	loadA := gate.Or(instruction[5], gate.Not(isC))
	loadD := gate.And(instruction[4], isC)

	jump := gate.Or(gate.Or(
		gate.And(instruction[0], gate.Not(gate.Or(result.Zr, result.Ng))),
		gate.And(instruction[1], result.Zr)),
		gate.And(instruction[2], result.Ng))
	jump = gate.And(jump, isC)

	out := Output{
		OutM:     result.Out,
		WriteM:   writeM,
		AddressM: c.a.Out(),
		PC:       c.pc.Out(),
	}

	bits := controlBits{
		inA:   gate.Mux16(instruction, result.Out, isC),
		inD:   result.Out,
		loadA: loadA,
		loadD: loadD,
		jump:  jump,
	}
	return out, bits
}

// Out computes the combinational output for the current tick without
// mutating any state; used both by Clock (to derive the write-back) and by
// callers that want to observe a tick's effect before committing it.
func (c *CPU) Out(in Input) Output {
	out, _ := c.decode(in)
	// AddressM for the NEXT tick depends on whether A loads this tick;
	// Out() reports this tick's address (the one used for InM/memory commit).
	return out
}

// Clock commits one tick: it derives the control bits from the current
// state and the given Input, then updates A, D, and PC accordingly.
func (c *CPU) Clock(in Input) {
	_, bits := c.decode(in)

	jumpTarget := c.a.Out()

	c.a.Clock(bits.inA, bits.loadA)
	c.d.Clock(bits.inD, bits.loadD)
	c.pc.Clock(jumpTarget, true, bits.jump, in.Reset)
}
