package machine_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/nandforge/hacksim/pkg/machine"
	"github.com/stretchr/testify/assert"
)

// aInst and cInst mirror the Hack instruction encoding: A-instructions are the
// raw 15-bit address, C-instructions pack comp/dest/jump into the low 13 bits
// with the top 3 bits set.
func aInst(address int16) int16 {
	return address & 0x7FFF
}

// cInst packs a 7-bit comp code (the "a" select bit as its MSB, per the
// standard Hack comp table) with dest and jump into a raw instruction word.
func cInst(comp7, dest, jump uint16) int16 {
	return int16(0b111<<13 | comp7<<6 | dest<<3 | jump)
}

const (
	destM uint16 = 0b001
	destD uint16 = 0b010

	compOne  uint16 = 0b0111111
	compZero uint16 = 0b0101010
	compA    uint16 = 0b0110000 // A
	compD    uint16 = 0b0001100 // D
	compDPlusA uint16 = 0b0000010 // D+A
	compDPlusM uint16 = 0b1000010 // D+M
	compDMinusA uint16 = 0b0010011 // D-A
	compM     uint16 = 0b1110000 // M
	compMPlus1 uint16 = 0b1110111 // M+1

	jumpNull uint16 = 0b000
	jumpJGT  uint16 = 0b001
	jumpJMP  uint16 = 0b111
)

func runMachine(t *testing.T, asm []int16, nclock int, address int16) int16 {
	t.Helper()
	m := machine.New(asm)
	for i := 0; i < nclock; i++ {
		m.Clock(false)
	}
	got := m.ReadMemory(address)
	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(m))
		}
	})
	return got
}

func TestSetValueToMemory(t *testing.T) {
	const address = 0b10000
	asm := []int16{
		aInst(address),
		cInst(compOne, destM, jumpNull),
	}
	assert.Equal(t, int16(1), runMachine(t, asm, len(asm), address))
}

func Test123Plus456(t *testing.T) {
	const sum = 0b10000
	asm := []int16{
		aInst(123),
		cInst(compA, destD, jumpNull), // D=A
		aInst(sum),
		cInst(compD, destM, jumpNull), // M=D
		aInst(456),
		cInst(compA, destD, jumpNull), // D=A
		aInst(sum),
		cInst(compDPlusM, destM, jumpNull), // M=D+M
	}
	assert.Equal(t, int16(123+456), runMachine(t, asm, len(asm), sum))
}

func TestSum1To10(t *testing.T) {
	const i = 0b10000
	const sum = 0b10001
	asm := []int16{
		/* 0  @i      */ aInst(i),
		/* 1  M=1     */ cInst(compOne, destM, jumpNull),
		/* 2  @sum    */ aInst(sum),
		/* 3  M=0     */ cInst(compZero, destM, jumpNull),
		/* 4  (LOOP)@i*/ aInst(i),
		/* 5  D=M     */ cInst(compM, destD, jumpNull),
		/* 6  @10     */ aInst(10),
		/* 7  D=D-A   */ cInst(compDMinusA, destD, jumpNull),
		/* 8  @END    */ aInst(18),
		/* 9  D;JGT   */ cInst(compD, 0, jumpJGT),
		/* 10 @i      */ aInst(i),
		/* 11 D=M     */ cInst(compM, destD, jumpNull),
		/* 12 @sum    */ aInst(sum),
		/* 13 M=D+M   */ cInst(compDPlusM, destM, jumpNull),
		/* 14 @i      */ aInst(i),
		/* 15 M=M+1   */ cInst(compMPlus1, destM, jumpNull),
		/* 16 @LOOP   */ aInst(4),
		/* 17 0;JMP   */ cInst(compZero, 0, jumpJMP),
		/* 18 (END)@END*/ aInst(18),
		/* 19 0;JMP   */ cInst(compZero, 0, jumpJMP),
	}
	assert.Equal(t, int16(10*(10+1)/2), runMachine(t, asm, len(asm)*10, sum))
}
