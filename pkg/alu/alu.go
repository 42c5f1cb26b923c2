// Package alu implements the Hack ALU: a pure combinational unit taking two
// 16-bit inputs and six control bits, producing an output word plus the zr
// and ng status flags the CPU's jump logic consumes.
package alu

import (
	"github.com/nandforge/hacksim/pkg/adder"
	"github.com/nandforge/hacksim/pkg/gate"
	"github.com/nandforge/hacksim/pkg/word"
)

// Output bundles the ALU's combinational result with its two status flags.
type Output struct {
	Out word.Word // 16-bit result
	Zr  bool      // true iff Out == 0
	Ng  bool      // true iff Out < 0
}

// Compute runs the ALU pipeline: zero/negate x, zero/negate y, add-or-and,
// then optionally negate the result. zx/nx/zy/ny/f/no are the six control
// bits described in the Hack ALU spec; f selects add (true) over and (false).
func Compute(x, y word.Word, zx, nx, zy, ny, f, no bool) Output {
	x = gate.Mux16(x, word.Zero, zx)
	x = gate.Mux16(x, gate.Not16(x), nx)
	y = gate.Mux16(y, word.Zero, zy)
	y = gate.Mux16(y, gate.Not16(y), ny)

	out := gate.Mux16(gate.And16(x, y), adder.Add16(x, y), f)
	out = gate.Mux16(out, gate.Not16(out), no)

	zr := gate.Not(gate.Or(
		gate.Or8Way([8]bool{out[0], out[1], out[2], out[3], out[4], out[5], out[6], out[7]}),
		gate.Or8Way([8]bool{out[8], out[9], out[10], out[11], out[12], out[13], out[14], out[15]}),
	))
	ng := out[15]

	return Output{Out: out, Zr: zr, Ng: ng}
}
