package argue

import (
	"sort"
	"strings"

	"github.com/explainable-reasoning/argument-search/internal/logic"
)

// Argument justifies or attacks a sub-question. The three variants are
// *Assumption (a premise decides the sub-question on its own), *Compound (a
// relevant premise whose residual sub-question is argued further) and *Open
// (no premise advances the sub-question; its disjuncts are reported open).
//
// Variants are pointer types so an argument node has a stable identity; the
// semantics layer memoizes on it.
type Argument interface {
	// Head returns the argument's premise, or false for *Open.
	Head() (logic.Proposition, bool)
	// String returns the canonical serialization. Child arguments are
	// sorted lexicographically, making the form independent of premise
	// enumeration order.
	String() string
}

// Assumption is a premise that is decisive for the current sub-question.
type Assumption struct {
	Premise logic.Proposition
}

// Compound is a premise that is relevant but not decisive; Support argues
// the residual sub-question.
type Compound struct {
	Premise logic.Proposition
	Support Support
}

// Open carries the disjuncts of a sub-question that no premise advances.
type Open struct {
	Cases logic.DNF
}

// Support is a pair of argument lists for and against a question.
type Support struct {
	Pro    []Argument
	Contra []Argument
}

// Empty reports whether the support carries no arguments on either side.
func (s Support) Empty() bool {
	return len(s.Pro) == 0 && len(s.Contra) == 0
}

func (a *Assumption) Head() (logic.Proposition, bool) {
	return a.Premise, true
}

func (c *Compound) Head() (logic.Proposition, bool) {
	return c.Premise, true
}

func (o *Open) Head() (logic.Proposition, bool) {
	return nil, false
}

func (a *Assumption) String() string {
	return a.Premise.String()
}

func (c *Compound) String() string {
	var b strings.Builder
	b.WriteString("(pro: [")
	b.WriteString(joinSorted(c.Support.Pro))
	b.WriteString("], contra: [")
	b.WriteString(joinSorted(c.Support.Contra))
	b.WriteString("], ")
	b.WriteString(c.Premise.String())
	b.WriteString(")")
	return b.String()
}

func (o *Open) String() string {
	return "(open: " + o.Cases.String() + ")"
}

// Atoms returns the atoms mentioned in the open disjuncts, deduplicated, in
// order of first appearance.
func (o *Open) Atoms() []logic.Atom {
	seen := make(map[logic.Atom]bool)
	var out []logic.Atom
	for _, conj := range o.Cases {
		for _, f := range conj {
			if !seen[f.Atom] {
				seen[f.Atom] = true
				out = append(out, f.Atom)
			}
		}
	}
	return out
}

func joinSorted(args []Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
