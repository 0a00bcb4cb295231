package asm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegister is returned when inc or dec names an immediate value.
	ErrNotRegister = errors.New("immediate value used as register")
	// ErrStepLimit is returned when a Machine exceeds its Limit.
	ErrStepLimit = errors.New("step limit exceeded")
)

// An ExecError records the instruction at which execution failed.
type ExecError struct {
	PC   int
	Insn Insn
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("asm: pc %d (%s): %s", e.PC, e.Insn, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// A Machine executes programs against four integer registers.
// The zero value is a machine with all registers zero and PC at the first
// instruction. Callers may seed Regs before calling Run.
type Machine struct {
	Regs [NumRegs]int
	PC   int

	// Out receives the values of out instructions. If it returns false,
	// Run stops after that instruction. If Out is nil, output is discarded.
	Out func(v int) bool

	// Optimize replaces recognized addition and multiplication loops with
	// their net effect.
	Optimize bool

	// Limit, if positive, bounds the number of steps Run may take.
	Limit int

	// Steps counts executed instructions. A replaced loop counts as one.
	Steps int
}

// Run executes prog until the program counter leaves the program, Out asks
// to stop, or an error occurs. Run modifies prog when it executes tgl.
func (m *Machine) Run(prog []Insn) error {
	for m.PC >= 0 && m.PC < len(prog) {
		if m.Limit > 0 && m.Steps >= m.Limit {
			return &ExecError{PC: m.PC, Insn: prog[m.PC], Err: ErrStepLimit}
		}
		m.Steps++
		if m.Optimize && (m.mulLoop(prog) || m.addLoop(prog)) {
			continue
		}
		in := prog[m.PC]
		switch in.Op {
		case Cpy:
			// Copying into an immediate does nothing; toggling can
			// produce such instructions.
			if in.Y.IsReg {
				m.Regs[in.Y.N] = m.value(in.X)
			}
		case Inc, Dec:
			if !in.X.IsReg {
				return &ExecError{PC: m.PC, Insn: in, Err: ErrNotRegister}
			}
			if in.Op == Inc {
				m.Regs[in.X.N]++
			} else {
				m.Regs[in.X.N]--
			}
		case Jnz:
			if m.value(in.X) != 0 {
				m.PC += m.value(in.Y)
				continue
			}
		case Tgl:
			if t := m.PC + m.value(in.X); t >= 0 && t < len(prog) {
				prog[t] = Toggle(prog[t])
			}
		case Out:
			if m.Out != nil && !m.Out(m.value(in.X)) {
				m.PC++
				return nil
			}
		default:
			return &ExecError{PC: m.PC, Insn: in, Err: fmt.Errorf("bad opcode %d", in.Op)}
		}
		m.PC++
	}
	return nil
}

func (m *Machine) value(o Operand) int {
	if o.IsReg {
		return m.Regs[o.N]
	}
	return o.N
}

// addLoop recognizes
//
//	inc x (or dec x)
//	dec y
//	jnz y -2
//
// in either order of the first two instructions, and applies x += y (or
// x -= y), y = 0 when y is positive.
func (m *Machine) addLoop(prog []Insn) bool {
	if m.PC+3 > len(prog) {
		return false
	}
	a, b, j := prog[m.PC], prog[m.PC+1], prog[m.PC+2]
	if j.Op != Jnz || j.Y != Imm(-2) {
		return false
	}
	y := j.X
	if b.Op != Dec || b.X != y {
		a, b = b, a
	}
	if b.Op != Dec || b.X != y || a.Op != Inc && a.Op != Dec {
		return false
	}
	x := a.X
	if !x.IsReg || !y.IsReg || x == y {
		return false
	}
	n := m.Regs[y.N]
	if n <= 0 {
		return false
	}
	if a.Op == Inc {
		m.Regs[x.N] += n
	} else {
		m.Regs[x.N] -= n
	}
	m.Regs[y.N] = 0
	m.PC += 3
	return true
}

// mulLoop recognizes
//
//	cpy s t
//	inc x
//	dec t
//	jnz t -2
//	dec k
//	jnz k -5
//
// and applies x += s*k, t = 0, k = 0 when s and k are positive.
func (m *Machine) mulLoop(prog []Insn) bool {
	if m.PC+6 > len(prog) {
		return false
	}
	p := prog[m.PC : m.PC+6]
	if p[0].Op != Cpy || p[4].Op != Dec || p[5].Op != Jnz || p[3].Op != Jnz {
		return false
	}
	inc, dec := p[1], p[2]
	if inc.Op == Dec && dec.Op == Inc {
		inc, dec = dec, inc
	}
	if inc.Op != Inc || dec.Op != Dec {
		return false
	}
	s, t, x, k := p[0].X, p[0].Y, inc.X, p[4].X
	if !t.IsReg || !x.IsReg || !k.IsReg {
		return false
	}
	if x == t || x == k || t == k || s == t || s == k || s == x {
		return false
	}
	if dec.X != t || p[3].X != t || p[3].Y != Imm(-2) || p[5].X != k || p[5].Y != Imm(-5) {
		return false
	}
	sv, kv := m.value(s), m.Regs[k.N]
	if sv <= 0 || kv <= 0 {
		return false
	}
	m.Regs[x.N] += sv * kv
	m.Regs[t.N] = 0
	m.Regs[k.N] = 0
	m.PC += 6
	return true
}
