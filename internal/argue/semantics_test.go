package argue

import (
	"testing"

	"github.com/explainable-reasoning/argument-search/internal/logic"
)

// prefer builds a ranking from low to high: later propositions outrank
// earlier ones.
func prefer(props ...logic.Proposition) Ranking {
	r := make(Ranking, len(props))
	for i, p := range props {
		r[i] = RankedProposition{Rank: i + 1, Proposition: p}
	}
	return r
}

func TestAssumptionNeverDefeated(t *testing.T) {
	j := newJudge(NoPreference)
	if j.isDefeated(&Assumption{Premise: logic.Var("a")}) {
		t.Error("assumptions must not be defeated")
	}
	if j.isDefeated(&Open{Cases: logic.DNF{{logic.Pos("a")}}}) {
		t.Error("open leaves must not be defeated")
	}
}

func TestDefeatByCollapsedPro(t *testing.T) {
	// The compound's only pro argument is rebutted by a stronger contra,
	// so the compound collapses.
	weak := logic.Var("weak")
	strong := logic.Var("strong")
	arg := &Compound{
		Premise: logic.Var("head"),
		Support: Support{
			Pro:    []Argument{&Assumption{Premise: weak}},
			Contra: []Argument{&Assumption{Premise: strong}},
		},
	}

	j := newJudge(prefer(weak, strong))
	if !j.isDefeated(arg) {
		t.Error("compound with fully rebutted pro should be defeated")
	}

	// Without the preference the pro stands and the compound survives.
	j = newJudge(NoPreference)
	if j.isDefeated(arg) {
		t.Error("compound should survive when its pro is unrebutted")
	}
}

func TestDefeatByOutrankingContra(t *testing.T) {
	head := logic.Var("head")
	ally := logic.Var("ally")
	rival := logic.Var("rival")
	arg := &Compound{
		Premise: head,
		Support: Support{
			Pro:    []Argument{&Assumption{Premise: ally}},
			Contra: []Argument{&Assumption{Premise: rival}},
		},
	}

	// The live contra outranks the compound's own head while being
	// incomparable with the pro side, so the pro stands yet the compound
	// still falls.
	j := newJudge(Ranking{
		{Rank: 1, Proposition: head},
		{Rank: 2, Proposition: rival},
		{Rank: 2, Proposition: ally},
	})
	if !j.isDefeated(arg) {
		t.Error("compound should be defeated by an outranking live contra")
	}

	// If the contra is itself rebutted by the pro side it cannot defeat.
	j = newJudge(prefer(head, rival, ally))
	if j.isDefeated(arg) {
		t.Error("rebutted contra should not defeat the compound")
	}
}

func TestIsRebutted(t *testing.T) {
	a := &Assumption{Premise: logic.Var("a")}
	b := &Assumption{Premise: logic.Var("b")}

	j := newJudge(prefer(logic.Var("a"), logic.Var("b")))
	if !j.isRebutted([]Argument{b}, a) {
		t.Error("a should be rebutted by the preferred b")
	}
	if j.isRebutted([]Argument{a}, b) {
		t.Error("b should not be rebutted by the weaker a")
	}

	open := &Open{Cases: logic.DNF{{logic.Pos("x")}}}
	if j.isRebutted([]Argument{b}, open) {
		t.Error("open leaves have no head and cannot be rebutted")
	}
	if j.isRebutted([]Argument{open}, a) {
		t.Error("open leaves have no head and cannot rebut")
	}
}

func TestOpenLosesAgainstConcreteOpponent(t *testing.T) {
	open := &Open{Cases: logic.DNF{{logic.Pos("x")}}}
	concrete := &Assumption{Premise: logic.Var("p")}

	wl := winnersLosers(NoPreference, Support{
		Pro:    []Argument{open},
		Contra: []Argument{concrete},
	})

	if len(wl.ProWinners) != 0 || len(wl.ProLosers) != 1 {
		t.Errorf("open should lose against a concrete opponent: %+v", wl)
	}
	if len(wl.ContraWinners) != 1 {
		t.Errorf("concrete argument should win against open: %+v", wl)
	}
}

func TestWinnersDisjointFromLosers(t *testing.T) {
	grant := logic.Implies{L: logic.Var("e"), R: logic.Var("m")}
	deny := logic.Implies{L: logic.Var("e"), R: logic.Not{P: logic.Var("m")}}
	information := []logic.Proposition{grant, deny, logic.Var("e")}

	wl := Explanation(prefer(grant, deny), logic.Var("m"), information)

	inWinners := make(map[Argument]bool)
	for _, w := range wl.ProWinners {
		inWinners[w.Argument] = true
	}
	for _, w := range wl.ContraWinners {
		inWinners[w.Argument] = true
	}
	for _, l := range append(append([]Argument{}, wl.ProLosers...), wl.ContraLosers...) {
		if inWinners[l] {
			t.Errorf("argument %v is both winner and loser", l)
		}
	}
}
