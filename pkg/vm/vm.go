package vm

// ----------------------------------------------------------------------------
// General information

// This section contains some general information about the VM intermediate language.
//
// We declare a shared 'Operation' interface for every macro operation available for the
// language and we define some other useful top-level struct such as Program and Module.
// Is important to note that a VM program can be composed of multiple translation units
// that can be also referenced as file or modules or also classes.

// A VM Program is just a set of multiple modules/files, in the VM spec each Jack class is
// translated to its own .vm file (just like Java .class file) that can be handled as its
// own translation unit during the compilation or lowering phases. Keyed by module/file name
// (conventionally the base filename, e.g. 'Main.vm'; any '.vm' extension is trimmed when the
// name is used for static variables) since label/function resolution across modules needs that name.
type Program map[string]Module

// A VM Module is just a linear list of VM operations/instructions
type Module []Operation

// Used to put together all operation in the VM language (Memory, Arithmetic, ... ops).
type Operation interface{}

// ----------------------------------------------------------------------------
// Memory Op

// In memory representation of a Memory operation for the VM language.
//
// In the VM intermediate language there are only two possible memory operation on the stack.
// We could either push a new value taken from the specified segment location on the stack's
// top or take the stack's top and saves its value at the specified segment location.
type MemoryOp struct {
	Operation OperationType // The type of operation, either 'push' or 'pop'
	Segment   SegmentType   // The named memory segment to use (this, that, temp, ...)
	Offset    uint16        // The specific location/offset inside of the memory segment
}

type OperationType string // Enum to manage the operation allowed for a MemoryOp

const (
	Push OperationType = "push"
	Pop  OperationType = "pop"
)

type SegmentType string // Enum to manage the segment accessible for a MemoryOp

const (
	Temp     SegmentType = "temp"     // Real segment used to store intermediate computations
	Constant SegmentType = "constant" // Virtual segment used to access numeric constant

	Local    SegmentType = "local"    // Real segment used to store local function variables
	Static   SegmentType = "static"   // Real segment used to store shared/static variables
	Argument SegmentType = "argument" // Real segment used to store function's argument

	This    SegmentType = "this"    // Virtual segment used to point to a specific memory location
	That    SegmentType = "that"    // Virtual segment used to point to a specific memory location
	Pointer SegmentType = "pointer" // Real segment w/ 2 location used to set the 'this' and 'that' pointers
)

// ----------------------------------------------------------------------------
// Arithmetic Op

// In memory representation of a Arithmetic operation for the VM language.
//
// In the VM intermediate language there are just a handful of operation available.
// In particular each operation acts directly on the top of the stack, of course we have both unary
// and binary operation, the specific management of each op will be handled in the codegen phase.
type ArithmeticOp struct{ Operation ArithOpType }

type ArithOpType string // Enum to manage the operation allowed for an ArithmeticOp

const (
	Eq ArithOpType = "eq" // Comparison operations
	Gt ArithOpType = "gt"
	Lt ArithOpType = "lt"

	Add ArithOpType = "add" // Arithmetic operations
	Sub ArithOpType = "sub"
	Neg ArithOpType = "neg"

	Not ArithOpType = "not" // Bitwise operations
	And ArithOpType = "and"
	Or  ArithOpType = "or"
)

// ----------------------------------------------------------------------------
// Label, Goto, Function and Call/Return Ops

// In memory representation of a label declaration in the VM language; marks a
// location in the module a GotoOp can target.
type LabelDecl struct {
	Name string // The symbol chosen by the user for the label
}

// In memory representation of a goto/if-goto statement in the VM language.
type GotoOp struct {
	Jump  JumpType // Whether the jump is unconditional (goto) or conditional (if-goto)
	Label string   // The target label's name
}

type JumpType string // Enum for the two jump flavors the VM language supports

const (
	Unconditional JumpType = "goto"    // Unconditional jump
	Conditional   JumpType = "if-goto" // Jump iff the popped stack top is non-zero
)

// In memory representation of a function declaration in the VM language.
//
// Declares a function's entry point and how many local variables it needs;
// the generated assembly zero-initializes that many local slots on entry.
type FuncDecl struct {
	Name   string // The function's fully-qualified name (e.g. "Math.multiply")
	NLocal uint8  // The number of local variables the function declares
}

// In memory representation of a function call in the VM language.
//
// Instructs the callee to receive NArgs arguments already pushed onto the
// stack by the caller.
type FuncCallOp struct {
	Name  string // The callee's fully-qualified name
	NArgs uint8  // The number of arguments already pushed for the callee
}

// In memory representation of a function return in the VM language.
type ReturnOp struct{}
