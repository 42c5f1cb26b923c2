// Package gate implements the Hack computer's combinational logic, built up
// from a single NAND primitive exactly as the nand2tetris hardware track
// specifies: every gate below is expressible, and tested, purely in terms of
// Nand, even though Go's bool/bitwise operators would do the same job.
package gate

import "github.com/nandforge/hacksim/pkg/word"

// Nand is the one primitive every other gate in this package is built from.
func Nand(a, b bool) bool {
	return !(a && b)
}

// Not is NAND(a, a).
func Not(a bool) bool {
	return Nand(a, a)
}

// And is NOT(NAND(a, b)).
func And(a, b bool) bool {
	return Not(Nand(a, b))
}

// Or is NAND(NOT a, NOT b).
func Or(a, b bool) bool {
	return Nand(Not(a), Not(b))
}

// Xor is OR(AND(a, NOT b), AND(NOT a, b)).
func Xor(a, b bool) bool {
	return Or(And(a, Not(b)), And(Not(a), b))
}

// Mux selects b when sel is true, a otherwise.
func Mux(a, b, sel bool) bool {
	return Or(And(a, Not(sel)), And(b, sel))
}

// Dmux routes input to its first return value when sel is false, to its
// second when sel is true; the unselected output is always false.
func Dmux(input, sel bool) (a, b bool) {
	return And(input, Not(sel)), And(input, sel)
}

// Not16 applies Not bitwise across a Word.
func Not16(a word.Word) word.Word {
	var out word.Word
	for i := 0; i < 16; i++ {
		out[i] = Not(a[i])
	}
	return out
}

// And16 applies And bitwise across two Words.
func And16(a, b word.Word) word.Word {
	var out word.Word
	for i := 0; i < 16; i++ {
		out[i] = And(a[i], b[i])
	}
	return out
}

// Or16 applies Or bitwise across two Words.
func Or16(a, b word.Word) word.Word {
	var out word.Word
	for i := 0; i < 16; i++ {
		out[i] = Or(a[i], b[i])
	}
	return out
}

// Mux16 applies Mux bitwise across two Words, selected by a single bit.
func Mux16(a, b word.Word, sel bool) word.Word {
	var out word.Word
	for i := 0; i < 16; i++ {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Or8Way is a balanced OR-reduction of 8 bits.
func Or8Way(a [8]bool) bool {
	return Or(Or(Or(a[0], a[1]), Or(a[2], a[3])), Or(Or(a[4], a[5]), Or(a[6], a[7])))
}

// Mux4Way16 selects among 4 Words using a 2-bit selector, least-significant
// selector bit innermost.
func Mux4Way16(a, b, c, d word.Word, sel [2]bool) word.Word {
	return Mux16(Mux16(a, b, sel[0]), Mux16(c, d, sel[0]), sel[1])
}

// Mux8Way16 selects among 8 Words using a 3-bit selector, least-significant
// selector bit innermost.
func Mux8Way16(a, b, c, d, e, f, g, h word.Word, sel [3]bool) word.Word {
	return Mux16(Mux4Way16(a, b, c, d, [2]bool{sel[0], sel[1]}), Mux4Way16(e, f, g, h, [2]bool{sel[0], sel[1]}), sel[2])
}

// Dmux4Way routes input to exactly one of 4 outputs, selected by a 2-bit selector.
func Dmux4Way(input bool, sel [2]bool) (a, b, c, d bool) {
	ab, cd := Dmux(input, sel[1])
	a, b = Dmux(ab, sel[0])
	c, d = Dmux(cd, sel[0])
	return
}

// Dmux8Way routes input to exactly one of 8 outputs, selected by a 3-bit selector.
func Dmux8Way(input bool, sel [3]bool) (a, b, c, d, e, f, g, h bool) {
	abcd, efgh := Dmux(input, sel[2])
	a, b, c, d = Dmux4Way(abcd, [2]bool{sel[0], sel[1]})
	e, f, g, h = Dmux4Way(efgh, [2]bool{sel[0], sel[1]})
	return
}
