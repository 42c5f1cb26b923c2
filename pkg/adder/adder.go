// Package adder builds 16-bit addition and increment from the half/full
// adder gates, mirroring the nand2tetris ALU's arithmetic half.
package adder

import (
	"github.com/nandforge/hacksim/pkg/gate"
	"github.com/nandforge/hacksim/pkg/word"
)

// HalfAdder returns (sum, carry) for two input bits.
func HalfAdder(a, b bool) (sum, carry bool) {
	return gate.Xor(a, b), gate.And(a, b)
}

// FullAdder returns (sum, carry) for two input bits plus an incoming carry.
func FullAdder(a, b, carry bool) (sum, carryOut bool) {
	sum1, carry1 := HalfAdder(a, b)
	sum2, carry2 := HalfAdder(sum1, carry)
	return sum2, gate.Or(carry1, carry2)
}

// Add16 computes a+b as a ripple-carry addition over 16 bits.
func Add16(a, b word.Word) word.Word {
	var sum word.Word
	carry := false
	for i := 0; i < 16; i++ {
		s, c := FullAdder(a[i], b[i], carry)
		sum[i] = s
		carry = c
	}
	return sum
}

// Inc16 computes a+1 by feeding a carry-in of 1 through a ripple-carry chain
// of half adders.
func Inc16(a word.Word) word.Word {
	var sum word.Word
	carry := true
	for i := 0; i < 16; i++ {
		s, c := HalfAdder(a[i], carry)
		sum[i] = s
		carry = c
	}
	return sum
}
