package vm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nandforge/hacksim/pkg/asm"
)

// ----------------------------------------------------------------------------
// Vm Lowerer
//
// The Lowerer takes a 'vm.Program' (one Module per translation unit/file) and
// produces its 'asm.Program' counterpart: the full Hack assembly implementing
// every memory, arithmetic, branching and function-call operation, following
// the same calling convention a Jack-compiled program relies on (arguments
// and locals addressed off ARG/LCL, the 5-word call frame saved on the stack,
// R13/R14 used as scratch across pop/restore sequences).
type Lowerer struct {
	program Program
	labelID int
}

// Initializes and returns to the caller a brand new 'Lowerer' struct.
func NewLowerer(p Program) Lowerer {
	return Lowerer{program: p}
}

func a(location string) asm.Instruction        { return asm.AInstruction{Location: location} }
func c(dest, comp, jump string) asm.Instruction { return asm.CInstruction{Dest: dest, Comp: comp, Jump: jump} }

func (l *Lowerer) newUniqueLabel(prefix string) string {
	l.labelID++
	return fmt.Sprintf("%s_%d", prefix, l.labelID)
}

var segmentSymbol = map[SegmentType]string{
	Argument: "ARG", Local: "LCL", This: "THIS", That: "THAT",
	Pointer: "R3", Temp: "R5",
}

func push() []asm.Instruction {
	return []asm.Instruction{
		a("SP"), c("A", "M", ""), c("M", "D", ""),
		a("SP"), c("M", "M+1", ""),
	}
}

func pop() []asm.Instruction {
	return []asm.Instruction{
		a("SP"), c("M", "M-1", ""),
		a("SP"), c("A", "M", ""), c("D", "M", ""),
	}
}

func gotoAsm(label string) []asm.Instruction {
	return []asm.Instruction{a(label), c("", "0", "JMP")}
}

func ifGotoAsm(label string) []asm.Instruction {
	return []asm.Instruction{a(label), c("", "D", "JNE")}
}

func setRAM(symbol string, value int) []asm.Instruction {
	return []asm.Instruction{
		a(strconv.Itoa(value)), c("D", "A", ""),
		a(symbol), c("M", "D", ""),
	}
}

// setSegmentIndexAddressTo leaves the resolved address of segment[index] in
// either the A register (dst="A") or D register (dst="D").
func (l *Lowerer) setSegmentIndexAddressTo(filename string, segment SegmentType, index uint16, dst string) ([]asm.Instruction, error) {
	out := []asm.Instruction{a(strconv.Itoa(int(index))), c("D", "A", "")}

	switch segment {
	case Static:
		out = append(out, a(fmt.Sprintf("%s.%d", filename, index)), c(dst, "A", ""))
	case Argument, Local, This, That:
		out = append(out, a(segmentSymbol[segment]), c(dst, "D+M", ""))
	case Pointer, Temp:
		out = append(out, a(segmentSymbol[segment]), c(dst, "D+A", ""))
	default:
		return nil, fmt.Errorf("unsupported segment '%s' for indexed addressing", segment)
	}
	return out, nil
}

func (l *Lowerer) pushSegment(filename string, segment SegmentType, index uint16) ([]asm.Instruction, error) {
	if segment == Constant {
		return append([]asm.Instruction{a(strconv.Itoa(int(index))), c("D", "A", "")}, push()...), nil
	}

	addr, err := l.setSegmentIndexAddressTo(filename, segment, index, "A")
	if err != nil {
		return nil, err
	}
	out := append(addr, c("D", "M", ""))
	return append(out, push()...), nil
}

func (l *Lowerer) popSegment(filename string, segment SegmentType, index uint16) ([]asm.Instruction, error) {
	addr, err := l.setSegmentIndexAddressTo(filename, segment, index, "D")
	if err != nil {
		return nil, err
	}
	out := append(addr, a("R13"), c("M", "D", ""))
	out = append(out, pop()...)
	out = append(out, a("R13"), c("A", "M", ""), c("M", "D", ""))
	return out, nil
}

func (l *Lowerer) unaryOp(op ArithOpType) ([]asm.Instruction, error) {
	var comp string
	switch op {
	case Neg:
		comp = "-D"
	case Not:
		comp = "!D"
	default:
		return nil, fmt.Errorf("unrecognized unary operation '%s'", op)
	}
	out := pop()
	out = append(out, c("D", comp, ""))
	return append(out, push()...), nil
}

// popTwoAndCompute pops the top two stack words (top into the R13 scratch,
// then second-from-top into D) and leaves D = comp(second-from-top, top),
// without pushing the result back — shared by binaryOp and logicalOp, which
// differ only in what they do with D before pushing.
func popTwoAndCompute(comp string) []asm.Instruction {
	out := pop()
	out = append(out, a("R13"), c("M", "D", ""))
	out = append(out, pop()...)
	out = append(out, a("R13"), c("D", comp, ""))
	return out
}

func (l *Lowerer) binaryOp(op ArithOpType) ([]asm.Instruction, error) {
	var comp string
	switch op {
	case Add:
		comp = "D+M"
	case Sub:
		comp = "D-M"
	case And:
		comp = "D&M"
	case Or:
		comp = "D|M"
	default:
		return nil, fmt.Errorf("unrecognized binary operation '%s'", op)
	}

	out := popTwoAndCompute(comp)
	return append(out, push()...), nil
}

func (l *Lowerer) logicalOp(op ArithOpType) ([]asm.Instruction, error) {
	var jmp string
	switch op {
	case Eq:
		jmp = "JEQ"
	case Gt:
		jmp = "JGT"
	case Lt:
		jmp = "JLT"
	default:
		return nil, fmt.Errorf("unrecognized comparison operation '%s'", op)
	}

	ifTrue := l.newUniqueLabel("IF_TRUE")
	ifEnd := l.newUniqueLabel("IF_END")

	out := popTwoAndCompute("D-M")
	out = append(out, a(ifTrue), c("", "D", jmp))
	out = append(out, c("D", "0", ""))
	out = append(out, gotoAsm(ifEnd)...)
	out = append(out, asm.LabelDecl{Name: ifTrue})
	out = append(out, c("D", "-1", ""))
	out = append(out, asm.LabelDecl{Name: ifEnd})
	return append(out, push()...), nil
}

func funcBegin(funcname string, nlocals uint8) []asm.Instruction {
	out := []asm.Instruction{asm.LabelDecl{Name: funcname}, c("D", "0", "")}
	for i := uint8(0); i < nlocals; i++ {
		out = append(out, push()...)
	}
	return out
}

func (l *Lowerer) funcCall(funcname string, nargs uint8) []asm.Instruction {
	returnLabel := l.newUniqueLabel("RETURN")

	out := []asm.Instruction{a(returnLabel), c("D", "A", "")}
	out = append(out, push()...)
	for _, symbol := range []string{"LCL", "ARG", "THIS", "THAT"} {
		out = append(out, a(symbol), c("D", "M", ""))
		out = append(out, push()...)
	}
	out = append(out,
		a(strconv.Itoa(int(nargs)+5)), c("D", "-A", ""),
		a("SP"), c("D", "D+M", ""),
		a("ARG"), c("M", "D", ""))
	out = append(out,
		a("SP"), c("D", "M", ""),
		a("LCL"), c("M", "D", ""))
	out = append(out, a(funcname), c("", "0", "JMP"))
	out = append(out, asm.LabelDecl{Name: returnLabel})
	return out
}

func funcReturn() []asm.Instruction {
	out := []asm.Instruction{
		a("LCL"), c("D", "M", ""),
		a("5"), c("A", "D-A", ""), c("D", "M", ""),
		a("R14"), c("M", "D", ""),
	}
	out = append(out, pop()...)
	out = append(out, a("ARG"), c("A", "M", ""), c("M", "D", ""))
	out = append(out, a("ARG"), c("D", "M+1", ""), a("SP"), c("M", "D", ""))
	out = append(out, a("LCL"), c("D", "M", ""), a("R13"), c("M", "D", ""))
	for _, symbol := range []string{"THAT", "THIS", "ARG", "LCL"} {
		out = append(out,
			a("R13"), c("M", "M-1", ""), c("A", "M", ""), c("D", "M", ""),
			a(symbol), c("M", "D", ""))
	}
	out = append(out, a("R14"), c("A", "M", ""), c("", "0", "JMP"))
	return out
}

func (l *Lowerer) callSysInit() []asm.Instruction {
	out := setRAM("SP", 256)
	out = append(out, l.funcCall("Sys.init", 0)...)
	out = append(out, gotoAsm("TERMINAL")...)
	return out
}

// Lower traverses every module (sorted by name for deterministic output) and
// produces the single asm.Program implementing the whole multi-file VM
// program, followed by the conventional infinite self-jump ("TERMINAL")
// every well-formed translation ends on.
func (l *Lowerer) Lower(bootstrap bool) (asm.Program, error) {
	if len(l.program) == 0 {
		return nil, fmt.Errorf("the given vm program is empty")
	}

	program := asm.Program{}
	if bootstrap {
		program = append(program, l.callSysInit()...)
	}

	names := make([]string, 0, len(l.program))
	for name := range l.program {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		filename := strings.TrimSuffix(name, ".vm")
		generated, err := l.lowerModule(filename, l.program[name])
		if err != nil {
			return nil, fmt.Errorf("module '%s': %w", name, err)
		}
		program = append(program, generated...)
	}

	program = append(program, asm.LabelDecl{Name: "TERMINAL"})
	program = append(program, gotoAsm("TERMINAL")...)

	return program, nil
}

func (l *Lowerer) lowerModule(filename string, module Module) ([]asm.Instruction, error) {
	out := []asm.Instruction{}

	for _, operation := range module {
		var generated []asm.Instruction
		var err error

		switch op := operation.(type) {
		case MemoryOp:
			if op.Operation == Push {
				generated, err = l.pushSegment(filename, op.Segment, op.Offset)
			} else {
				generated, err = l.popSegment(filename, op.Segment, op.Offset)
			}

		case ArithmeticOp:
			switch op.Operation {
			case Add, Sub, And, Or:
				generated, err = l.binaryOp(op.Operation)
			case Neg, Not:
				generated, err = l.unaryOp(op.Operation)
			case Eq, Gt, Lt:
				generated, err = l.logicalOp(op.Operation)
			default:
				err = fmt.Errorf("unrecognized arithmetic operation '%s'", op.Operation)
			}

		case LabelDecl:
			generated = []asm.Instruction{asm.LabelDecl{Name: op.Name}}

		case GotoOp:
			if op.Jump == Conditional {
				generated = ifGotoAsm(op.Label)
			} else {
				generated = gotoAsm(op.Label)
			}

		case FuncDecl:
			generated = funcBegin(op.Name, op.NLocal)

		case FuncCallOp:
			generated = l.funcCall(op.Name, op.NArgs)

		case ReturnOp:
			generated = funcReturn()

		default:
			err = fmt.Errorf("unrecognized operation '%T'", operation)
		}

		if err != nil {
			return nil, err
		}
		out = append(out, generated...)
	}

	return out, nil
}
