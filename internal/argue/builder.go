package argue

import "github.com/explainable-reasoning/argument-search/internal/logic"

// Explanation builds all arguments for and against question from the given
// information base, then partitions them into winners and losers under pref.
// When the information base is non-empty but nothing in it bears on the
// question either way, the question's own cases are reported as a single
// open pro-argument so callers can see what remains undecided. An empty
// information base yields an empty partition.
func Explanation(pref Preference, question logic.Proposition, information []logic.Proposition) WinnersLosers {
	cases := logic.Cases(question)
	support := ProContra(cases, information)
	if support.Empty() && len(information) > 0 {
		support.Pro = []Argument{&Open{Cases: cases}}
	}
	return winnersLosers(pref, support)
}

// ProContra collects the arguments for question and for its negation.
func ProContra(question logic.DNF, information []logic.Proposition) Support {
	return Support{
		Pro:    Arguments(question, information),
		Contra: Arguments(logic.Negate(question), information),
	}
}

// Arguments builds one argument per premise that bears on question. A
// premise is relevant when conjoining it with the negated question rules out
// at least one combined case, and decisive when no combined case survives.
// Decisive premises become assumptions; relevant but indecisive ones recurse
// on the residual question with the premise removed, and are kept only if
// the recursion produces any argument at all. Premise order is preserved.
//
// Termination: each recursion removes the current premise, so the depth is
// bounded by the size of the information base.
func Arguments(question logic.DNF, information []logic.Proposition) []Argument {
	var out []Argument
	for i, premise := range information {
		premiseCases := logic.Cases(premise)
		negated := logic.Negate(question)

		rest := append(
			logic.ConsistentCases(premiseCases, negated),
			logic.ConsistentCases(negated, premiseCases)...,
		)

		relevant := len(rest) < len(premiseCases)*len(negated)
		if !relevant {
			continue
		}
		if len(rest) == 0 {
			out = append(out, &Assumption{Premise: premise})
			continue
		}

		remaining := make([]logic.Proposition, 0, len(information)-1)
		remaining = append(remaining, information[:i]...)
		remaining = append(remaining, information[i+1:]...)

		sub := ProContra(logic.Negate(rest), remaining)
		if sub.Empty() {
			continue
		}
		out = append(out, &Compound{Premise: premise, Support: sub})
	}
	return out
}
