// Package asm implements a small four-register interpreter with relative
// jumps and self-modifying toggle instructions.
//
// Programs are written one instruction per line:
//
//	cpy x y   copy x (register or value) into register y
//	inc x     increment register x
//	dec x     decrement register x
//	jnz x y   jump y instructions away if x is not zero
//	tgl x     toggle the instruction x instructions away
//	out x     emit x
//
// The registers are named a, b, c, and d.
package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NumRegs is the number of registers in a Machine.
const NumRegs = 4

// An Op is an instruction opcode.
type Op int

const (
	Cpy Op = iota
	Inc
	Dec
	Jnz
	Tgl
	Out
)

var opNames = [...]string{
	Cpy: "cpy",
	Inc: "inc",
	Dec: "dec",
	Jnz: "jnz",
	Tgl: "tgl",
	Out: "out",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// NumArgs returns the number of operands op takes.
func (op Op) NumArgs() int {
	switch op {
	case Cpy, Jnz:
		return 2
	}
	return 1
}

// An Operand is either a register or an immediate value.
type Operand struct {
	IsReg bool
	N     int // register index if IsReg; otherwise the value
}

// Reg returns the operand naming register r (0 for a, 1 for b, and so on).
func Reg(r int) Operand { return Operand{IsReg: true, N: r} }

// Imm returns an immediate operand.
func Imm(v int) Operand { return Operand{N: v} }

func (o Operand) String() string {
	if o.IsReg {
		return string(rune('a' + o.N))
	}
	return strconv.Itoa(o.N)
}

// An Insn is a single instruction. Y is unused by one-operand instructions.
type Insn struct {
	Op Op
	X  Operand
	Y  Operand
}

func (in Insn) String() string {
	if in.Op.NumArgs() == 2 {
		return fmt.Sprintf("%s %s %s", in.Op, in.X, in.Y)
	}
	return fmt.Sprintf("%s %s", in.Op, in.X)
}

// Toggle returns the instruction that in becomes when targeted by tgl.
// Among one-operand instructions inc becomes dec and all others become inc;
// among two-operand instructions jnz becomes cpy and all others become jnz.
// The operands are unchanged.
func Toggle(in Insn) Insn {
	switch in.Op {
	case Inc:
		in.Op = Dec
	case Dec, Tgl, Out:
		in.Op = Inc
	case Jnz:
		in.Op = Cpy
	case Cpy:
		in.Op = Jnz
	}
	return in
}

// Parse parses a program, one instruction per line.
func Parse(text string) ([]Insn, error) {
	var prog []Insn
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		in, err := ParseInsn(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		prog = append(prog, in)
	}
	return prog, nil
}

// ParseInsn parses a single instruction such as "cpy 41 a".
func ParseInsn(line string) (Insn, error) {
	var in Insn
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return in, errors.New("empty instruction")
	}
	op, ok := parseOp(fields[0])
	if !ok {
		return in, fmt.Errorf("unknown instruction %q", line)
	}
	in.Op = op
	if len(fields) != op.NumArgs()+1 {
		return in, fmt.Errorf("bad instruction %q: %s takes %d operands", line, op, op.NumArgs())
	}
	var err error
	if in.X, err = parseOperand(fields[1]); err != nil {
		return in, fmt.Errorf("bad instruction %q: %s", line, err)
	}
	if op.NumArgs() == 2 {
		if in.Y, err = parseOperand(fields[2]); err != nil {
			return in, fmt.Errorf("bad instruction %q: %s", line, err)
		}
	}
	return in, nil
}

func parseOp(s string) (Op, bool) {
	for op, name := range opNames {
		if name == s {
			return Op(op), true
		}
	}
	return 0, false
}

func parseOperand(s string) (Operand, error) {
	if len(s) == 1 && s[0] >= 'a' && s[0] < 'a'+NumRegs {
		return Reg(int(s[0] - 'a')), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, fmt.Errorf("bad operand %q", s)
	}
	return Imm(n), nil
}
