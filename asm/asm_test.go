package asm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t testing.TB, text string) []Insn {
	t.Helper()
	prog, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestParseInsn(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want Insn
	}{
		{"cpy 41 a", Insn{Op: Cpy, X: Imm(41), Y: Reg(0)}},
		{"cpy b c", Insn{Op: Cpy, X: Reg(1), Y: Reg(2)}},
		{"inc d", Insn{Op: Inc, X: Reg(3)}},
		{"dec a", Insn{Op: Dec, X: Reg(0)}},
		{"jnz c -2", Insn{Op: Jnz, X: Reg(2), Y: Imm(-2)}},
		{"jnz 1 c", Insn{Op: Jnz, X: Imm(1), Y: Reg(2)}},
		{"tgl c", Insn{Op: Tgl, X: Reg(2)}},
		{"out b", Insn{Op: Out, X: Reg(1)}},
		{"  inc   a  ", Insn{Op: Inc, X: Reg(0)}},
	} {
		got, err := ParseInsn(tt.s)
		if err != nil {
			t.Errorf("ParseInsn(%q): %s", tt.s, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseInsn(%q) (-want +got):\n%s", tt.s, diff)
		}
	}
}

func TestParseInsnErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"mul a b",
		"cpy a",
		"inc a b",
		"jnz x 2",
		"cpy 1.5 a",
		"inc e",
	} {
		if in, err := ParseInsn(s); err == nil {
			t.Errorf("ParseInsn(%q): got %v; want error", s, in)
		}
	}
}

func TestParseString(t *testing.T) {
	const text = "cpy 41 a\ninc a\njnz a -2\ntgl c\nout d"
	prog := mustParse(t, text)
	prog2 := mustParse(t, text)
	if diff := cmp.Diff(prog, prog2); diff != "" {
		t.Fatalf("parsing twice differs:\n%s", diff)
	}
	var lines []string
	for _, in := range prog {
		lines = append(lines, in.String())
	}
	if diff := cmp.Diff([]string{"cpy 41 a", "inc a", "jnz a -2", "tgl c", "out d"}, lines); diff != "" {
		t.Errorf("String (-want +got):\n%s", diff)
	}
}

func TestToggle(t *testing.T) {
	for _, tt := range []struct {
		in, want Op
	}{
		{Inc, Dec},
		{Dec, Inc},
		{Tgl, Inc},
		{Out, Inc},
		{Cpy, Jnz},
		{Jnz, Cpy},
	} {
		in := Insn{Op: tt.in, X: Reg(1), Y: Imm(3)}
		got := Toggle(in)
		if got.Op != tt.want || got.X != in.X || got.Y != in.Y {
			t.Errorf("Toggle(%s): got %s; want op %s", in, got, tt.want)
		}
	}
}

func TestToggleInvolution(t *testing.T) {
	for _, op := range []Op{Inc, Dec, Cpy, Jnz} {
		in := Insn{Op: op, X: Reg(0), Y: Reg(1)}
		if got := Toggle(Toggle(in)); got != in {
			t.Errorf("toggling %s twice: got %s", in, got)
		}
	}
	// tgl becomes inc, which toggles to dec rather than back.
	in := Insn{Op: Tgl, X: Reg(0)}
	if got := Toggle(Toggle(in)); got.Op != Dec {
		t.Errorf("toggling %s twice: got %s; want dec", in, got)
	}
}

func TestRun(t *testing.T) {
	for _, tt := range []struct {
		name string
		prog string
		a    int
	}{
		{"copy and count", "cpy 41 a\ninc a\ninc a\ninc a\ninc a\ndec a", 44},
		{"jump", "cpy 41 a\ninc a\ninc a\ndec a\njnz a 2\ndec a", 42},
		{"toggle", "cpy 2 a\ntgl a\ntgl a\ntgl a\ncpy 1 a\ndec a\ndec a", 3},
		{"copy to immediate", "cpy 7 a\ncpy 5 3\ninc a", 8},
		{"toggle out of range", "tgl 5\ntgl -9\ninc a", 1},
		{"jump backward out", "inc a\njnz a -5\ninc a", 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var m Machine
			if err := m.Run(mustParse(t, tt.prog)); err != nil {
				t.Fatal(err)
			}
			if got := m.Regs[0]; got != tt.a {
				t.Errorf("got a=%d; want %d", got, tt.a)
			}
		})
	}
}

func TestRunTogglesProgram(t *testing.T) {
	prog := mustParse(t, "cpy 2 a\ntgl a\ntgl a\ntgl a\ncpy 1 a\ndec a\ndec a")
	var m Machine
	if err := m.Run(prog); err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "cpy 2 a\ntgl a\ntgl a\ninc a\njnz 1 a\ndec a\ndec a")
	if diff := cmp.Diff(want, prog); diff != "" {
		t.Errorf("program after run (-want +got):\n%s", diff)
	}
}

func TestRunNotRegister(t *testing.T) {
	for _, text := range []string{"inc 3", "cpy 1 a\ndec 2"} {
		var m Machine
		err := m.Run(mustParse(t, text))
		if !errors.Is(err, ErrNotRegister) {
			t.Errorf("%q: got err %v; want ErrNotRegister", text, err)
			continue
		}
		var ee *ExecError
		if !errors.As(err, &ee) {
			t.Errorf("%q: got %T; want *ExecError", text, err)
			continue
		}
		if ee.PC != m.PC {
			t.Errorf("%q: error at pc %d; machine at %d", text, ee.PC, m.PC)
		}
	}
}

func TestRunOut(t *testing.T) {
	var got []int
	m := Machine{
		Out: func(v int) bool {
			got = append(got, v)
			return len(got) < 2
		},
	}
	m.Regs[1] = 9
	if err := m.Run(mustParse(t, "out 1\nout b\nout 3")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 9}, got); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	if m.PC != 2 {
		t.Errorf("stopped at pc %d; want 2", m.PC)
	}
}

func TestRunLimit(t *testing.T) {
	m := Machine{Limit: 100}
	err := m.Run(mustParse(t, "jnz 1 0"))
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got err %v; want ErrStepLimit", err)
	}
}

const mulProg = `cpy 6 b
cpy 7 d
cpy b c
inc a
dec c
jnz c -2
dec d
jnz d -5
cpy 3 c
inc a
dec c
jnz c -2
dec b
inc d
jnz b -2`

func TestOptimizeEquivalent(t *testing.T) {
	var plain, fast Machine
	fast.Optimize = true
	if err := plain.Run(mustParse(t, mulProg)); err != nil {
		t.Fatal(err)
	}
	if err := fast.Run(mustParse(t, mulProg)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plain.Regs, fast.Regs); diff != "" {
		t.Errorf("registers (-plain +optimized):\n%s", diff)
	}
	if want := [NumRegs]int{45, 0, 0, 6}; plain.Regs != want {
		t.Errorf("got registers %v; want %v", plain.Regs, want)
	}
	if fast.Steps >= plain.Steps {
		t.Errorf("optimized run took %d steps; plain took %d", fast.Steps, plain.Steps)
	}
}

// togglingProg computes a! + 81*94, rewriting its own tail as it goes.
const togglingProg = `cpy a b
dec b
cpy a d
cpy 0 a
cpy b c
inc a
dec c
jnz c -2
dec d
jnz d -5
dec b
cpy b c
cpy c d
dec d
inc c
jnz d -2
tgl c
cpy -16 c
jnz 1 c
cpy 81 c
jnz 94 d
inc a
inc d
jnz d -2
inc c
jnz c -5`

func TestTogglingProgram(t *testing.T) {
	for _, tt := range []struct {
		a        int
		optimize bool
		want     int
	}{
		{7, false, 12654},
		{7, true, 12654},
		{12, true, 479009214},
	} {
		m := Machine{Optimize: tt.optimize}
		m.Regs[0] = tt.a
		if err := m.Run(mustParse(t, togglingProg)); err != nil {
			t.Fatal(err)
		}
		if got := m.Regs[0]; got != tt.want {
			t.Errorf("a=%d optimize=%t: got %d; want %d", tt.a, tt.optimize, got, tt.want)
		}
	}
}

func BenchmarkToggling(b *testing.B) {
	prog := mustParse(b, togglingProg)
	work := make([]Insn, len(prog))
	for i := 0; i < b.N; i++ {
		copy(work, prog)
		m := Machine{}
		m.Regs[0] = 7
		if err := m.Run(work); err != nil {
			b.Fatal(err)
		}
	}
}
