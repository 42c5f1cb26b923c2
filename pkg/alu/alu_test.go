package alu_test

import (
	"testing"

	"github.com/nandforge/hacksim/pkg/alu"
	"github.com/nandforge/hacksim/pkg/word"
	"github.com/stretchr/testify/assert"
)

func assertALU(t *testing.T, x, y int16, zx, nx, zy, ny, f, no bool, expected int16) {
	t.Helper()
	result := alu.Compute(word.FromInt(x), word.FromInt(y), zx, nx, zy, ny, f, no)
	assert.Equal(t, expected, word.ToInt(result.Out))
	assert.Equal(t, expected == 0, result.Zr)
	assert.Equal(t, expected < 0, result.Ng)
}

func TestALU(t *testing.T) {
	data := []int16{73, 61, 973, 294, 429}
	for _, x := range data {
		for _, y := range data {
			assertALU(t, x, y, true, false, true, false, true, false, 0)
			assertALU(t, x, y, true, true, true, true, true, true, 1)
			assertALU(t, x, y, true, true, true, false, true, false, -1)
			assertALU(t, x, y, false, false, true, true, false, false, x)
			assertALU(t, x, y, false, false, true, true, false, true, ^x)
			assertALU(t, x, y, true, true, false, false, false, false, y)
			assertALU(t, x, y, true, true, false, false, false, true, ^y)
			assertALU(t, x, y, false, false, true, true, true, true, -x)
			assertALU(t, x, y, true, true, false, false, true, true, -y)
			assertALU(t, x, y, false, true, true, true, true, true, x+1)
			assertALU(t, x, y, true, true, false, true, true, true, y+1)
			assertALU(t, x, y, false, false, true, true, true, false, x-1)
			assertALU(t, x, y, true, true, false, false, true, false, y-1)
			assertALU(t, x, y, false, false, false, false, true, false, x+y)
			assertALU(t, x, y, false, true, false, false, true, true, x-y)
			assertALU(t, x, y, false, false, false, true, true, true, y-x)
			assertALU(t, x, y, false, false, false, false, false, false, x&y)
			assertALU(t, x, y, false, true, false, true, false, true, x|y)
		}
	}
}
