package logic

// Atom names a propositional variable. Atoms are compared by value.
type Atom string

// Fact is a signed literal: an atom asserted either positively or negatively.
type Fact struct {
	Atom    Atom
	Negated bool
}

// Pos returns the positive literal for atom a.
func Pos(a Atom) Fact {
	return Fact{Atom: a}
}

// Neg returns the negative literal for atom a.
func Neg(a Atom) Fact {
	return Fact{Atom: a, Negated: true}
}

// Flip returns the literal with the opposite sign.
func (f Fact) Flip() Fact {
	return Fact{Atom: f.Atom, Negated: !f.Negated}
}

// Contradicts reports whether f and g name the same atom with opposite signs.
func (f Fact) Contradicts(g Fact) bool {
	return f.Atom == g.Atom && f.Negated != g.Negated
}

func (f Fact) String() string {
	if f.Negated {
		return "¬" + string(f.Atom)
	}
	return string(f.Atom)
}
