package main

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/nandforge/hacksim/pkg/asm"
	"github.com/nandforge/hacksim/pkg/hack"
	"github.com/nandforge/hacksim/pkg/machine"
	"github.com/nandforge/hacksim/pkg/vm"
	"github.com/teris-io/cli"
)

var Description = strings.ReplaceAll(`
The Simulator loads a program (a .hack binary, a .asm assembly listing, or a .vm bytecode
module) and runs it on the Hack machine, driving its clock either a fixed number of ticks
or until the instruction word at its program counter is zero, then reports the contents of any watched
memory addresses.
`, "\n", " ")

var Simulator = cli.New(Description).
	WithArg(cli.NewArg("file", "The program (.hack, .asm or .vm) to run")).
	WithOption(cli.NewOption("ticks", "Number of clock ticks to drive the machine for").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("until-halt", "Drives the machine until the instruction word at its program counter is zero").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("watch", "Comma separated list of memory addresses to print after running").
		WithType(cli.TypeString)).
	WithAction(Handler)

// load dispatches on the input file's extension, running it through whatever
// prefix of the assembler/translator pipeline is needed to reach a flat
// instruction slice a machine.Machine can boot from.
func load(file string) ([]int16, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to open input file: %w", err)
	}

	switch ext := path.Ext(file); ext {
	case ".hack":
		return loadHack(content)
	case ".asm":
		return assemble(content)
	case ".vm":
		asmSource, err := translate(path.Base(file), content)
		if err != nil {
			return nil, err
		}
		return assemble(asmSource)
	default:
		return nil, fmt.Errorf("unrecognized file extension %q, expected .hack, .asm or .vm", ext)
	}
}

// loadHack parses a compiled .hack listing (one 16-bit binary string per
// line) directly into ROM words.
func loadHack(content []byte) ([]int16, error) {
	var program []int16
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		raw, err := strconv.ParseUint(line, 2, 16)
		if err != nil {
			return nil, fmt.Errorf("malformed .hack line %q: %w", line, err)
		}
		program = append(program, int16(uint16(raw)))
	}
	return program, nil
}

// assemble runs a .asm listing through the parsing/lowering/codegen passes
// and parses the resulting .hack text straight back into ROM words, without
// ever touching the filesystem.
func assemble(source []byte) ([]int16, error) {
	parser := asm.NewParser(bytes.NewReader(source))
	program, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'parsing' pass: %w", err)
	}

	lowerer := asm.NewLowerer(program)
	hackProgram, table, err := lowerer.Lower()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'lowering' pass: %w", err)
	}

	codegen := hack.NewCodeGenerator(hackProgram, table)
	compiled, err := codegen.Generate()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'codegen' pass: %w", err)
	}

	return loadHack([]byte(strings.Join(compiled, "\n")))
}

// translate lowers a single .vm module into Hack assembly text, bootstrapping
// the stack pointer and calling Sys.init since a standalone module run
// through the simulator has no other entrypoint wired up for it.
func translate(moduleName string, content []byte) ([]byte, error) {
	parser := vm.NewParser(bytes.NewReader(content))
	module, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'parsing' pass: %w", err)
	}

	lowerer := vm.NewLowerer(vm.Program{moduleName: module})
	asmProgram, err := lowerer.Lower(true)
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'lowering' pass: %w", err)
	}

	codegen := asm.NewCodeGenerator(asmProgram)
	compiled, err := codegen.Generate()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'codegen' pass: %w", err)
	}

	return []byte(strings.Join(compiled, "\n")), nil
}

// parseWatchList turns "--watch=16,17,256" into its constituent addresses.
func parseWatchList(raw string) ([]int16, error) {
	if raw == "" {
		return nil, nil
	}

	var addresses []int16
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, err := strconv.ParseInt(field, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid --watch address %q: %w", field, err)
		}
		addresses = append(addresses, int16(value))
	}
	return addresses, nil
}

func Handler(args []string, options map[string]string) int {
	program, err := load(args[0])
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}

	watch, err := parseWatchList(options["watch"])
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}

	_, untilHalt := options["until-halt"]
	ticks := 0
	if raw, ok := options["ticks"]; ok && raw != "" {
		ticks, err = strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("ERROR: invalid --ticks value %q: %s\n", raw, err)
			return -1
		}
	}

	if !untilHalt && ticks == 0 {
		fmt.Printf("ERROR: one of --ticks=N or --until-halt must be given\n")
		return -1
	}

	m := machine.New(program)

	// The driver loop owns the pacing decision entirely: either a fixed tick
	// count (batch/test-harness mode) or until IsTerminated reports a zero
	// instruction word at PC, whichever the caller selected. No goroutines involved,
	// matching the machine's single-threaded cooperative clock.
	if untilHalt {
		for !m.IsTerminated() {
			m.Clock(false)
		}
	} else {
		for i := 0; i < ticks; i++ {
			m.Clock(false)
		}
	}

	for _, address := range watch {
		fmt.Printf("RAM[%d] = %d\n", address, m.ReadMemory(address))
	}

	return 0
}

func main() { os.Exit(Simulator.Run(os.Args, os.Stdout)) }
