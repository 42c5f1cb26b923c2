package ram_test

import (
	"testing"

	"github.com/nandforge/hacksim/pkg/ram"
	"github.com/nandforge/hacksim/pkg/word"
	"github.com/stretchr/testify/assert"
)

func TestBit(t *testing.T) {
	var bit ram.BitRegister
	inputs := []struct{ in, load bool }{
		{false, false}, {true, false}, {true, false}, {false, true},
		{true, true}, {false, false}, {false, true},
	}
	previous := bit.Out()
	for _, tc := range inputs {
		bit.Clock(tc.in, tc.load)
		expected := previous
		if tc.load {
			expected = tc.in
		}
		assert.Equal(t, expected, bit.Out())
		previous = bit.Out()
	}
}

func TestRegister(t *testing.T) {
	var reg ram.Register
	inputs := []struct {
		in   int16
		load bool
	}{
		{139, false}, {972, true}, {742, true}, {243, false}, {64, false},
	}
	previous := word.ToInt(reg.Out())
	for _, tc := range inputs {
		reg.Clock(word.FromInt(tc.in), tc.load)
		expected := previous
		if tc.load {
			expected = tc.in
		}
		assert.Equal(t, expected, word.ToInt(reg.Out()))
		previous = word.ToInt(reg.Out())
	}
}

func TestRAM8(t *testing.T) {
	var r ram.RAM8
	values := []int16{72, 45, 29, 836, 4582, 279}
	bits := []bool{false, true}
	for _, a0 := range bits {
		for _, a1 := range bits {
			for _, a2 := range bits {
				address := [3]bool{a0, a1, a2}
				assert.Equal(t, int16(0), word.ToInt(r.Out(address)))
				for _, x := range values {
					r.Clock(address, word.FromInt(x), true)
					assert.Equal(t, x, word.ToInt(r.Out(address)))
				}
			}
		}
	}
}

func TestRAM64(t *testing.T) {
	var r ram.RAM64
	values := []int16{72, 45, 29, 836, 4582, 279}
	for i := 0; i < 6; i++ {
		var address [6]bool
		address[i] = true
		assert.Equal(t, int16(0), word.ToInt(r.Out(address)))
		for _, x := range values {
			r.Clock(address, word.FromInt(x), true)
			assert.Equal(t, x, word.ToInt(r.Out(address)))
		}
	}
}

func TestRAM512(t *testing.T) {
	var r ram.RAM512
	values := []int16{72, 45, 29, 836, 4582, 279}
	for i := 0; i < 9; i++ {
		var address [9]bool
		address[i] = true
		assert.Equal(t, int16(0), word.ToInt(r.Out(address)))
		for _, x := range values {
			r.Clock(address, word.FromInt(x), true)
			assert.Equal(t, x, word.ToInt(r.Out(address)))
		}
	}
}

func TestRAM16K(t *testing.T) {
	var r ram.RAM16K
	values := []int16{72, 45, 29}
	for i := 9; i < 14; i++ {
		var address [14]bool
		address[i] = true
		assert.Equal(t, int16(0), word.ToInt(r.Out(address)))
		for _, x := range values {
			r.Clock(address, word.FromInt(x), true)
			assert.Equal(t, x, word.ToInt(r.Out(address)))
		}
	}
}

func TestCounter(t *testing.T) {
	var c ram.Counter
	for i := int16(0); i < 10; i++ {
		assert.Equal(t, i, word.ToInt(c.Out()))
		c.Clock(word.FromInt(0), true, false, false)
	}
	assert.Equal(t, int16(10), word.ToInt(c.Out()))

	c.Clock(word.FromInt(0), false, false, true)
	assert.Equal(t, int16(0), word.ToInt(c.Out()))

	c.Clock(word.FromInt(123), false, true, false)
	assert.Equal(t, int16(123), word.ToInt(c.Out()))
}
