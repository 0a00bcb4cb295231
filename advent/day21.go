package main

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
)

func init() {
	register("21a", func(input string) (any, error) { return scramble("abcdefgh", input) })
	register("21b", func(input string) (any, error) { return unscramble("fbgdceah", input) })
}

type scrambleKind int

const (
	swapPosition scrambleKind = iota
	swapLetter
	rotateLeft
	rotateRight
	rotateLetter
	reversePositions
	movePosition
)

type scrambleOp struct {
	kind scrambleKind
	x, y int  // positions or step count
	a, b byte // letters
}

func parseScrambleOp(s string) (scrambleOp, error) {
	var op scrambleOp
	var err error
	switch {
	case strings.HasPrefix(s, "swap position "):
		op.kind = swapPosition
		_, err = fmt.Sscanf(s, "swap position %d with position %d", &op.x, &op.y)
	case strings.HasPrefix(s, "swap letter "):
		op.kind = swapLetter
		_, err = fmt.Sscanf(s, "swap letter %c with letter %c", &op.a, &op.b)
	case strings.HasPrefix(s, "rotate left "):
		op.kind = rotateLeft
		_, err = fmt.Sscanf(s, "rotate left %d", &op.x)
	case strings.HasPrefix(s, "rotate right "):
		op.kind = rotateRight
		_, err = fmt.Sscanf(s, "rotate right %d", &op.x)
	case strings.HasPrefix(s, "rotate based on position of letter "):
		op.kind = rotateLetter
		_, err = fmt.Sscanf(s, "rotate based on position of letter %c", &op.a)
	case strings.HasPrefix(s, "reverse positions "):
		op.kind = reversePositions
		_, err = fmt.Sscanf(s, "reverse positions %d through %d", &op.x, &op.y)
	case strings.HasPrefix(s, "move position "):
		op.kind = movePosition
		_, err = fmt.Sscanf(s, "move position %d to position %d", &op.x, &op.y)
	default:
		return op, fmt.Errorf("bad scramble operation %q", s)
	}
	if err != nil {
		return op, fmt.Errorf("bad scramble operation %q: %s", s, err)
	}
	return op, nil
}

func parseScrambleOps(s string) ([]scrambleOp, error) {
	var ops []scrambleOp
	for _, line := range strings.Split(s, "\n") {
		op, err := parseScrambleOp(line)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func rotateBytes(b []byte, n int) {
	n %= len(b)
	if n < 0 {
		n += len(b)
	}
	tmp := append([]byte(nil), b...)
	for i, c := range tmp {
		b[(i+n)%len(b)] = c
	}
}

// apply scrambles pw in place.
func (op scrambleOp) apply(pw []byte) error {
	inRange := func(i int) bool { return i >= 0 && i < len(pw) }
	switch op.kind {
	case swapPosition:
		if !inRange(op.x) || !inRange(op.y) {
			return fmt.Errorf("swap positions %d, %d out of range", op.x, op.y)
		}
		pw[op.x], pw[op.y] = pw[op.y], pw[op.x]
	case swapLetter:
		i, j := bytes.IndexByte(pw, op.a), bytes.IndexByte(pw, op.b)
		if i < 0 || j < 0 {
			return fmt.Errorf("cannot swap letters %c and %c in %s", op.a, op.b, pw)
		}
		pw[i], pw[j] = pw[j], pw[i]
	case rotateLeft:
		rotateBytes(pw, -op.x)
	case rotateRight:
		rotateBytes(pw, op.x)
	case rotateLetter:
		i := bytes.IndexByte(pw, op.a)
		if i < 0 {
			return fmt.Errorf("no letter %c in %s", op.a, pw)
		}
		n := 1 + i
		if i >= 4 {
			n++
		}
		rotateBytes(pw, n)
	case reversePositions:
		if !inRange(op.x) || !inRange(op.y) || op.x > op.y {
			return fmt.Errorf("bad reverse range %d through %d", op.x, op.y)
		}
		for i, j := op.x, op.y; i < j; i, j = i+1, j-1 {
			pw[i], pw[j] = pw[j], pw[i]
		}
	case movePosition:
		if !inRange(op.x) || !inRange(op.y) {
			return fmt.Errorf("move positions %d, %d out of range", op.x, op.y)
		}
		c := pw[op.x]
		rest := append(append([]byte(nil), pw[:op.x]...), pw[op.x+1:]...)
		copy(pw[:op.y], rest[:op.y])
		pw[op.y] = c
		copy(pw[op.y+1:], rest[op.y:])
	}
	return nil
}

// unapply reverses apply. Rotation based on a letter has no closed-form
// inverse, so it tries each left rotation until one scrambles back to pw.
func (op scrambleOp) unapply(pw []byte) error {
	switch op.kind {
	case rotateLeft:
		return scrambleOp{kind: rotateRight, x: op.x}.apply(pw)
	case rotateRight:
		return scrambleOp{kind: rotateLeft, x: op.x}.apply(pw)
	case movePosition:
		return scrambleOp{kind: movePosition, x: op.y, y: op.x}.apply(pw)
	case rotateLetter:
		cand := make([]byte, len(pw))
		for n := 0; n < len(pw); n++ {
			copy(cand, pw)
			rotateBytes(cand, -n)
			if err := op.apply(cand); err != nil {
				return err
			}
			if bytes.Equal(cand, pw) {
				rotateBytes(pw, -n)
				return nil
			}
		}
		return fmt.Errorf("cannot invert letter rotation on %s", pw)
	default:
		return op.apply(pw)
	}
}

func scrambleOps(pw string, ops []scrambleOp) (string, error) {
	b := []byte(pw)
	for _, op := range ops {
		if err := op.apply(b); err != nil {
			return "", err
		}
	}
	return string(b), nil
}

func scramble(pw, input string) (string, error) {
	ops, err := parseScrambleOps(input)
	if err != nil {
		return "", err
	}
	return scrambleOps(pw, ops)
}

// unscramble finds the password that scrambles to target. It inverts the
// operations in reverse order and, if the result does not scramble back to
// target (letter rotations can be ambiguous for some lengths), falls back to
// trying every permutation.
func unscramble(target, input string) (string, error) {
	ops, err := parseScrambleOps(input)
	if err != nil {
		return "", err
	}
	b := []byte(target)
	inverted := true
	for i := len(ops) - 1; i >= 0; i-- {
		if err := ops[i].unapply(b); err != nil {
			inverted = false
			break
		}
	}
	if inverted {
		if got, err := scrambleOps(string(b), ops); err == nil && got == target {
			return string(b), nil
		}
	}
	vlogf("21b: inverting failed; trying permutations")
	return unscramblePermutations(target, ops)
}

// unscramblePermutations returns the first permutation of target's letters,
// in lexicographic order, that scrambles to target.
func unscramblePermutations(target string, ops []scrambleOp) (string, error) {
	letters := []byte(target)
	slices.Sort(letters)
	for {
		got, err := scrambleOps(string(letters), ops)
		if err != nil {
			return "", err
		}
		if got == target {
			return string(letters), nil
		}
		if !nextPermutation(letters) {
			return "", fmt.Errorf("no password scrambles to %s", target)
		}
	}
}

// nextPermutation rearranges b into the next lexicographic permutation,
// reporting false if b was the last one.
func nextPermutation[T cmp.Ordered](b []T) bool {
	i := len(b) - 2
	for i >= 0 && b[i] >= b[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(b) - 1
	for b[j] <= b[i] {
		j--
	}
	b[i], b[j] = b[j], b[i]
	for l, r := i+1, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return true
}
