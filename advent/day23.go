package main

import (
	"github.com/cespare/advent2016/asm"
)

func init() {
	register("23a", func(input string) (any, error) { return runAssembunny(input, [asm.NumRegs]int{0: 7}) })
	register("23b", func(input string) (any, error) { return runAssembunny(input, [asm.NumRegs]int{0: 12}) })
}
