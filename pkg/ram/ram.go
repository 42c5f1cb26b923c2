// Package ram implements the Hack machine's sequential memory elements: the
// single-bit flipflop-backed register, the 16-bit register built from 16 of
// those, the cascaded RAM8..RAM16K address-decoding tree, and the program
// counter. Each tier is built the same way the nand2tetris hardware track
// composes them: by nesting the previous tier behind mux8way16/dmux8way (or,
// for the outermost RAM16K tier, mux4way16/dmux4way over its 2 extra bits).
package ram

import (
	"github.com/nandforge/hacksim/pkg/adder"
	"github.com/nandforge/hacksim/pkg/gate"
	"github.com/nandforge/hacksim/pkg/word"
)

// BitRegister stores a single bit across clock ticks.
type BitRegister struct{ bit bool }

// Out reads the currently stored bit.
func (r *BitRegister) Out() bool { return r.bit }

// Clock latches in on the next tick iff load is asserted.
func (r *BitRegister) Clock(in, load bool) {
	r.bit = gate.Mux(r.bit, in, load)
}

// Register is 16 parallel BitRegisters forming a 16-bit latch.
type Register struct{ bits [16]BitRegister }

// Out reads all 16 bits as a Word.
func (r *Register) Out() word.Word {
	var w word.Word
	for i := 0; i < 16; i++ {
		w[i] = r.bits[i].Out()
	}
	return w
}

// Clock broadcasts load to all 16 underlying BitRegisters.
func (r *Register) Clock(in word.Word, load bool) {
	for i := 0; i < 16; i++ {
		r.bits[i].Clock(in[i], load)
	}
}

// RAM8 holds 8 Registers, addressed by a 3-bit selector.
type RAM8 struct{ registers [8]Register }

// Out reads the Register selected by address.
func (r *RAM8) Out(address [3]bool) word.Word {
	return gate.Mux8Way16(
		r.registers[0].Out(), r.registers[1].Out(), r.registers[2].Out(), r.registers[3].Out(),
		r.registers[4].Out(), r.registers[5].Out(), r.registers[6].Out(), r.registers[7].Out(),
		address)
}

// Clock routes load to the Register selected by address.
func (r *RAM8) Clock(address [3]bool, in word.Word, load bool) {
	l0, l1, l2, l3, l4, l5, l6, l7 := gate.Dmux8Way(load, address)
	r.registers[0].Clock(in, l0)
	r.registers[1].Clock(in, l1)
	r.registers[2].Clock(in, l2)
	r.registers[3].Clock(in, l3)
	r.registers[4].Clock(in, l4)
	r.registers[5].Clock(in, l5)
	r.registers[6].Clock(in, l6)
	r.registers[7].Clock(in, l7)
}

// RAM64 nests 8 RAM8 tiers behind 3 more address bits.
type RAM64 struct{ rams [8]RAM8 }

func splitLoHi3(address [6]bool) (lo, hi [3]bool) {
	return [3]bool{address[0], address[1], address[2]}, [3]bool{address[3], address[4], address[5]}
}

// Out reads the word at address.
func (r *RAM64) Out(address [6]bool) word.Word {
	lo, hi := splitLoHi3(address)
	return gate.Mux8Way16(
		r.rams[0].Out(lo), r.rams[1].Out(lo), r.rams[2].Out(lo), r.rams[3].Out(lo),
		r.rams[4].Out(lo), r.rams[5].Out(lo), r.rams[6].Out(lo), r.rams[7].Out(lo),
		hi)
}

// Clock writes in at address when load is asserted.
func (r *RAM64) Clock(address [6]bool, in word.Word, load bool) {
	lo, hi := splitLoHi3(address)
	l0, l1, l2, l3, l4, l5, l6, l7 := gate.Dmux8Way(load, hi)
	r.rams[0].Clock(lo, in, l0)
	r.rams[1].Clock(lo, in, l1)
	r.rams[2].Clock(lo, in, l2)
	r.rams[3].Clock(lo, in, l3)
	r.rams[4].Clock(lo, in, l4)
	r.rams[5].Clock(lo, in, l5)
	r.rams[6].Clock(lo, in, l6)
	r.rams[7].Clock(lo, in, l7)
}

// RAM512 nests 8 RAM64 tiers behind 3 more address bits.
type RAM512 struct{ rams [8]RAM64 }

func splitLoHi69(address [9]bool) (lo [6]bool, hi [3]bool) {
	return [6]bool{address[0], address[1], address[2], address[3], address[4], address[5]},
		[3]bool{address[6], address[7], address[8]}
}

// Out reads the word at address.
func (r *RAM512) Out(address [9]bool) word.Word {
	lo, hi := splitLoHi69(address)
	return gate.Mux8Way16(
		r.rams[0].Out(lo), r.rams[1].Out(lo), r.rams[2].Out(lo), r.rams[3].Out(lo),
		r.rams[4].Out(lo), r.rams[5].Out(lo), r.rams[6].Out(lo), r.rams[7].Out(lo),
		hi)
}

// Clock writes in at address when load is asserted.
func (r *RAM512) Clock(address [9]bool, in word.Word, load bool) {
	lo, hi := splitLoHi69(address)
	l0, l1, l2, l3, l4, l5, l6, l7 := gate.Dmux8Way(load, hi)
	r.rams[0].Clock(lo, in, l0)
	r.rams[1].Clock(lo, in, l1)
	r.rams[2].Clock(lo, in, l2)
	r.rams[3].Clock(lo, in, l3)
	r.rams[4].Clock(lo, in, l4)
	r.rams[5].Clock(lo, in, l5)
	r.rams[6].Clock(lo, in, l6)
	r.rams[7].Clock(lo, in, l7)
}

// RAM4K nests 8 RAM512 tiers behind 3 more address bits.
type RAM4K struct{ rams [8]RAM512 }

func splitLoHi912(address [12]bool) (lo [9]bool, hi [3]bool) {
	return [9]bool{
			address[0], address[1], address[2],
			address[3], address[4], address[5],
			address[6], address[7], address[8],
		},
		[3]bool{address[9], address[10], address[11]}
}

// Out reads the word at address.
func (r *RAM4K) Out(address [12]bool) word.Word {
	lo, hi := splitLoHi912(address)
	return gate.Mux8Way16(
		r.rams[0].Out(lo), r.rams[1].Out(lo), r.rams[2].Out(lo), r.rams[3].Out(lo),
		r.rams[4].Out(lo), r.rams[5].Out(lo), r.rams[6].Out(lo), r.rams[7].Out(lo),
		hi)
}

// Clock writes in at address when load is asserted.
func (r *RAM4K) Clock(address [12]bool, in word.Word, load bool) {
	lo, hi := splitLoHi912(address)
	l0, l1, l2, l3, l4, l5, l6, l7 := gate.Dmux8Way(load, hi)
	r.rams[0].Clock(lo, in, l0)
	r.rams[1].Clock(lo, in, l1)
	r.rams[2].Clock(lo, in, l2)
	r.rams[3].Clock(lo, in, l3)
	r.rams[4].Clock(lo, in, l4)
	r.rams[5].Clock(lo, in, l5)
	r.rams[6].Clock(lo, in, l6)
	r.rams[7].Clock(lo, in, l7)
}

// RAM16K nests 4 RAM4K tiers behind 2 more address bits, reaching the full
// 16K-word (14-bit address) general RAM region of the Hack memory map.
type RAM16K struct{ rams [4]RAM4K }

func splitLoHi1214(address [14]bool) (lo [12]bool, hi [2]bool) {
	return [12]bool{
			address[0], address[1], address[2],
			address[3], address[4], address[5],
			address[6], address[7], address[8],
			address[9], address[10], address[11],
		},
		[2]bool{address[12], address[13]}
}

// Out reads the word at address.
func (r *RAM16K) Out(address [14]bool) word.Word {
	lo, hi := splitLoHi1214(address)
	return gate.Mux4Way16(r.rams[0].Out(lo), r.rams[1].Out(lo), r.rams[2].Out(lo), r.rams[3].Out(lo), hi)
}

// Clock writes in at address when load is asserted.
func (r *RAM16K) Clock(address [14]bool, in word.Word, load bool) {
	lo, hi := splitLoHi1214(address)
	l0, l1, l2, l3 := gate.Dmux4Way(load, hi)
	r.rams[0].Clock(lo, in, l0)
	r.rams[1].Clock(lo, in, l1)
	r.rams[2].Clock(lo, in, l2)
	r.rams[3].Clock(lo, in, l3)
}

// Counter is the Hack program counter: a 16-bit register that can hold,
// increment, load, or reset to zero, with reset taking priority over load,
// which in turn takes priority over increment.
type Counter struct{ register Register }

// Out reads the current counter value.
func (c *Counter) Out() word.Word {
	return c.register.Out()
}

// Clock advances the counter according to (in order of priority) reset,
// load, inc; if none are asserted the counter holds its value.
func (c *Counter) Clock(in word.Word, inc, load, reset bool) {
	next := gate.Mux16(gate.Mux16(adder.Inc16(c.register.Out()), in, load), word.Zero, reset)
	c.register.Clock(next, gate.Or(inc, gate.Or(load, reset)))
}
