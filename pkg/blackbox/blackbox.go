// Package blackbox implements the three memory-mapped units the Hack memory
// map exposes outside plain RAM: the write-once instruction ROM, the screen
// framebuffer, and the single-register keyboard. None of these is built from
// NAND gates in the nand2tetris track either — they are given primitives,
// same as here.
package blackbox

import "github.com/nandforge/hacksim/pkg/word"

// ROM32K is the Hack computer's 32768-word instruction memory, loaded once
// at construction and read-only for the remainder of the Machine's life.
type ROM32K struct {
	data [32 * 1024]int16
}

// NewROM32K loads instructions into a fresh ROM32K; any capacity left over
// past len(instructions) reads back as zero.
func NewROM32K(instructions []int16) *ROM32K {
	rom := &ROM32K{}
	copy(rom.data[:], instructions)
	return rom
}

// Out reads the word at address (as a PC value).
func (r *ROM32K) Out(address word.Word) word.Word {
	return word.FromInt(r.data[word.ToUint(address)])
}

// Screen is the 8K-word (512x256 monochrome, bit-packed) framebuffer.
type Screen struct {
	data [8 * 1024]int16
}

// Out reads the word at the given 13-bit screen-relative address.
func (s *Screen) Out(address [13]bool) word.Word {
	return word.FromInt(s.data[screenIndex(address)])
}

// Clock writes input at address when load is asserted.
func (s *Screen) Clock(address [13]bool, input word.Word, load bool) {
	if load {
		s.data[screenIndex(address)] = word.ToInt(input)
	}
}

// RawImage exposes the full framebuffer by reference, for a display
// front-end to blit without copying.
func (s *Screen) RawImage() *[8 * 1024]int16 {
	return &s.data
}

func screenIndex(address [13]bool) uint16 {
	var a word.Word
	copy(a[:], address[:])
	return word.ToUint(a)
}

// Keyboard is the single-word, read-only-to-the-CPU keyboard register; a
// host publishes the currently pressed key's scancode via SetKey.
type Keyboard struct {
	key int16
}

// Out reads the currently published scancode.
func (k *Keyboard) Out() word.Word {
	return word.FromInt(k.key)
}

// SetKey publishes a new scancode, as the external keyboard driver would.
func (k *Keyboard) SetKey(key int16) {
	k.key = key
}
