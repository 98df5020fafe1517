package argue

import (
	"testing"

	"github.com/explainable-reasoning/argument-search/internal/logic"
)

func TestArgumentString(t *testing.T) {
	assumption := &Assumption{Premise: logic.Var("p")}
	if got := assumption.String(); got != "p" {
		t.Errorf("assumption string = %q, want %q", got, "p")
	}

	open := &Open{Cases: logic.DNF{{logic.Pos("a"), logic.Neg("b")}}}
	if got, want := open.String(), `(open: a /\ ¬b)`; got != want {
		t.Errorf("open string = %q, want %q", got, want)
	}

	compound := &Compound{
		Premise: logic.Implies{L: logic.Var("a"), R: logic.Var("b")},
		Support: Support{
			Pro:    []Argument{&Assumption{Premise: logic.Var("b")}, &Assumption{Premise: logic.Var("a")}},
			Contra: []Argument{&Assumption{Premise: logic.Var("c")}},
		},
	}
	want := "(pro: [a, b], contra: [c], (a -> b))"
	if got := compound.String(); got != want {
		t.Errorf("compound string = %q, want %q", got, want)
	}
}

// Serialization must not depend on the order premises were enumerated in.
func TestArgumentStringOrderIndependent(t *testing.T) {
	mk := func(pro ...Argument) *Compound {
		return &Compound{Premise: logic.Var("h"), Support: Support{Pro: pro}}
	}
	x := &Assumption{Premise: logic.Var("x")}
	y := &Assumption{Premise: logic.Var("y")}

	if mk(x, y).String() != mk(y, x).String() {
		t.Error("child order should not affect serialization")
	}
}

func TestOpenAtoms(t *testing.T) {
	open := &Open{Cases: logic.DNF{
		{logic.Pos("b"), logic.Neg("a")},
		{logic.Pos("b"), logic.Pos("c")},
	}}
	got := open.Atoms()
	want := []logic.Atom{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("atoms = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("atoms = %v, want %v", got, want)
			break
		}
	}
}

func TestHead(t *testing.T) {
	if _, ok := (&Open{}).Head(); ok {
		t.Error("open leaves must not report a head")
	}
	if h, ok := (&Assumption{Premise: logic.Var("p")}).Head(); !ok || h.String() != "p" {
		t.Error("assumption head broken")
	}
	if h, ok := (&Compound{Premise: logic.Var("q")}).Head(); !ok || h.String() != "q" {
		t.Error("compound head broken")
	}
}
