package main

import (
	"github.com/cespare/advent2016/asm"
)

func init() {
	register("12a", func(input string) (any, error) { return runAssembunny(input, [asm.NumRegs]int{}) })
	register("12b", func(input string) (any, error) { return runAssembunny(input, [asm.NumRegs]int{2: 1}) })
}

// runAssembunny runs the program with the given initial registers and
// returns the final value of register a.
func runAssembunny(input string, regs [asm.NumRegs]int) (int, error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return 0, err
	}
	m := &asm.Machine{Regs: regs, Optimize: true}
	if err := m.Run(prog); err != nil {
		return 0, err
	}
	vlogf("%d instructions executed", m.Steps)
	return m.Regs[0], nil
}
