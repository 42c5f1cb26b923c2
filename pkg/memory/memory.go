// Package memory implements the Hack data memory map: 16K words of general
// RAM, 8K words of screen framebuffer, and a single keyboard word, triaged by
// the top two address bits exactly as the Hack memory map specifies.
package memory

import (
	"github.com/nandforge/hacksim/pkg/blackbox"
	"github.com/nandforge/hacksim/pkg/gate"
	"github.com/nandforge/hacksim/pkg/ram"
	"github.com/nandforge/hacksim/pkg/word"
)

// Memory is the full 16-bit-addressed data memory: RAM, screen, and
// keyboard, selected by address bits 14 and 13.
type Memory struct {
	ram      ram.RAM16K
	screen   blackbox.Screen
	keyboard blackbox.Keyboard
}

// Screen exposes the framebuffer for a display front-end to read.
func (m *Memory) Screen() *blackbox.Screen {
	return &m.screen
}

// Keyboard exposes the keyboard register for a host to publish key presses.
func (m *Memory) Keyboard() *blackbox.Keyboard {
	return &m.keyboard
}

func ramAddr(address word.Word) [14]bool {
	var a [14]bool
	copy(a[:], address[:14])
	return a
}

func screenAddr(address word.Word) [13]bool {
	var a [13]bool
	copy(a[:], address[:13])
	return a
}

// Out reads the word mapped at address: RAM below 0x4000, screen in
// 0x4000-0x5FFF, keyboard at 0x6000.
func (m *Memory) Out(address word.Word) word.Word {
	return gate.Mux16(
		m.ram.Out(ramAddr(address)),
		gate.Mux16(m.screen.Out(screenAddr(address)), m.keyboard.Out(), address[13]),
		address[14])
}

// Clock writes input at address when load is asserted, routing the write to
// RAM or screen by the same address triage Out uses (the keyboard is
// read-only to the CPU; only a host can SetKey it).
func (m *Memory) Clock(address word.Word, input word.Word, load bool) {
	loadRAM, loadNotRAM := gate.Dmux(load, address[14])
	loadScreen, _ := gate.Dmux(loadNotRAM, address[13])
	m.ram.Clock(ramAddr(address), input, loadRAM)
	m.screen.Clock(screenAddr(address), input, loadScreen)
}
