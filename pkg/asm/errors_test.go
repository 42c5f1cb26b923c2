package asm_test

import (
	"errors"
	"testing"

	"github.com/nandforge/hacksim/pkg/asm"
)

func TestCInstructionErrorsAreDistinguishable(t *testing.T) {
	codegen := asm.NewCodeGenerator([]asm.Statement{})

	_, err := codegen.GenerateCInst(asm.CInstruction{})
	if !errors.Is(err, asm.ErrEmptyComputation) {
		t.Fatalf("expected ErrEmptyComputation, got %v", err)
	}

	_, err = codegen.GenerateCInst(asm.CInstruction{Comp: "D%M"})
	if !errors.Is(err, asm.ErrInvalidComputation) {
		t.Fatalf("expected ErrInvalidComputation, got %v", err)
	}

	_, err = codegen.GenerateCInst(asm.CInstruction{Comp: "D", Dest: "X"})
	if !errors.Is(err, asm.ErrInvalidDestination) {
		t.Fatalf("expected ErrInvalidDestination, got %v", err)
	}

	_, err = codegen.GenerateCInst(asm.CInstruction{Comp: "D", Jump: "JFOO"})
	if !errors.Is(err, asm.ErrInvalidJump) {
		t.Fatalf("expected ErrInvalidJump, got %v", err)
	}

	_, err = codegen.GenerateCInst(asm.CInstruction{Comp: "D", Dest: "D", Jump: "JMP"})
	if err != nil {
		t.Fatalf("expected well-formed C instruction to succeed, got %v", err)
	}
}

func TestAInstructionAndLabelDeclErrors(t *testing.T) {
	codegen := asm.NewCodeGenerator([]asm.Statement{})

	if _, err := codegen.GenerateAInst(asm.AInstruction{}); !errors.Is(err, asm.ErrInvalidAInstruction) {
		t.Fatalf("expected ErrInvalidAInstruction, got %v", err)
	}

	if _, err := codegen.GenerateLabelDecl(asm.LabelDecl{}); !errors.Is(err, asm.ErrEmptyLabel) {
		t.Fatalf("expected ErrEmptyLabel, got %v", err)
	}
}
