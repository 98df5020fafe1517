package logic

import "strings"

// Conjunction is an ordered sequence of facts, implicitly ANDed. Duplicate
// facts are permitted and idempotent.
type Conjunction []Fact

// DNF is an ordered sequence of conjunctions, implicitly ORed. The empty DNF
// denotes False; a DNF containing the empty conjunction denotes True.
type DNF []Conjunction

// Consistent reports whether no two facts in the conjunction contradict.
func (c Conjunction) Consistent() bool {
	for i, f := range c {
		for _, g := range c[i+1:] {
			if f.Contradicts(g) {
				return false
			}
		}
	}
	return true
}

// Impossible reports whether every conjunction in the DNF is inconsistent.
// The empty DNF is impossible.
func (d DNF) Impossible() bool {
	for _, c := range d {
		if c.Consistent() {
			return false
		}
	}
	return true
}

// Decompose rewrites p into disjunctive normal form by structural recursion.
// No simplification beyond the rewrite rules is performed; tautologies and
// contradictory conjunctions survive as-is. Cases later drops the
// contradictory conjunctions; tautologies are never simplified away.
func Decompose(p Proposition) DNF {
	switch q := p.(type) {
	case Variable:
		return DNF{{Pos(q.Name)}}
	case And:
		return Combine(Decompose(q.L), Decompose(q.R))
	case Or:
		return append(append(DNF{}, Decompose(q.L)...), Decompose(q.R)...)
	case Implies:
		return Decompose(Or{Not{q.L}, q.R})
	case Equiv:
		return Decompose(And{Implies{q.L, q.R}, Implies{q.R, q.L}})
	case Constant:
		if q == True {
			return DNF{{}}
		}
		return DNF{}
	case Not:
		switch r := q.P.(type) {
		case Variable:
			return DNF{{Neg(r.Name)}}
		case Not:
			return Decompose(r.P)
		case And:
			return Decompose(Or{Not{r.L}, Not{r.R}})
		case Or:
			return Decompose(And{Not{r.L}, Not{r.R}})
		case Implies:
			// Contraposition rather than the classical ¬(a -> b) = a /\ ¬b.
			// Kept deliberately: the defeasible reading treats a negated rule
			// as the rule reversed, and downstream behavior depends on it.
			return Decompose(Implies{Not{r.R}, Not{r.L}})
		case Equiv:
			return Decompose(Or{Not{Implies{r.L, r.R}}, Not{Implies{r.R, r.L}}})
		case Constant:
			if r == True {
				return DNF{}
			}
			return DNF{{}}
		}
	}
	return DNF{}
}

// Cases returns the consistent conjunctions of Decompose(p), in order.
func Cases(p Proposition) DNF {
	var out DNF
	for _, c := range Decompose(p) {
		if c.Consistent() {
			out = append(out, c)
		}
	}
	return out
}

func (c Conjunction) String() string {
	if len(c) == 0 {
		return "true"
	}
	parts := make([]string, len(c))
	for i, f := range c {
		parts[i] = f.String()
	}
	return strings.Join(parts, " /\\ ")
}

func (d DNF) String() string {
	if len(d) == 0 {
		return "false"
	}
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, " \\/ ")
}
