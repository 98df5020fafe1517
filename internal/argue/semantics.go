package argue

// Winner is a surviving argument together with the partitioning of its own
// support, so callers can walk the full explanation tree. Sub is nil for
// assumptions and open leaves.
type Winner struct {
	Argument Argument
	Sub      *WinnersLosers
}

// WinnersLosers partitions a support into the arguments that survive mutual
// attack and those that do not. Losers are retained by argument only;
// winners carry their recursive decomposition.
type WinnersLosers struct {
	ProWinners    []Winner
	ContraWinners []Winner
	ProLosers     []Argument
	ContraLosers  []Argument
}

// judge evaluates defeat and rebuttal under a fixed preference. Defeat
// results are memoized per node: the tree is finite, but shared subtrees
// would otherwise be re-judged exponentially often.
type judge struct {
	pref     Preference
	defeated map[Argument]bool
}

func newJudge(pref Preference) *judge {
	return &judge{pref: pref, defeated: make(map[Argument]bool)}
}

// isDefeated reports whether a collapses on its own merits: every pro
// argument of a is dead, or some live contra argument strictly outranks a.
// Assumptions and open leaves are never defeated.
func (j *judge) isDefeated(a Argument) bool {
	c, ok := a.(*Compound)
	if !ok {
		return false
	}
	if verdict, done := j.defeated[a]; done {
		return verdict
	}
	// Within one evaluation the tree strictly shrinks, so seeding the memo
	// before recursing is safe and breaks re-entry on shared nodes.
	j.defeated[a] = false

	verdict := j.proCollapses(c) || j.outranked(c)
	j.defeated[a] = verdict
	return verdict
}

func (j *judge) proCollapses(c *Compound) bool {
	for _, p := range c.Support.Pro {
		if !j.isDefeated(p) && !j.isRebutted(c.Support.Contra, p) {
			return false
		}
	}
	return true
}

func (j *judge) outranked(c *Compound) bool {
	head := c.Premise
	for _, opp := range c.Support.Contra {
		if j.isDefeated(opp) || j.isRebutted(c.Support.Pro, opp) {
			continue
		}
		oppHead, ok := opp.Head()
		if ok && j.pref.Compare(oppHead, head) == Greater {
			return true
		}
	}
	return false
}

// isRebutted reports whether some opponent that is itself alive strictly
// outranks a. Arguments without a head (open leaves) neither rebut nor can
// be rebutted.
func (j *judge) isRebutted(opponents []Argument, a Argument) bool {
	head, ok := a.Head()
	if !ok {
		return false
	}
	for _, opp := range opponents {
		if j.isDefeated(opp) {
			continue
		}
		oppHead, ok := opp.Head()
		if ok && j.pref.Compare(oppHead, head) == Greater {
			return true
		}
	}
	return false
}

// winnersLosers splits each side of the support into winners and losers and
// recurses into the winners' own supports. An open leaf survives only when
// the opposing side has no live concrete argument.
func winnersLosers(pref Preference, s Support) WinnersLosers {
	j := newJudge(pref)
	var wl WinnersLosers
	wl.ProWinners, wl.ProLosers = j.split(s.Pro, s.Contra)
	wl.ContraWinners, wl.ContraLosers = j.split(s.Contra, s.Pro)
	return wl
}

func (j *judge) split(side, opponents []Argument) ([]Winner, []Argument) {
	var winners []Winner
	var losers []Argument
	for _, a := range side {
		if j.loses(a, opponents) {
			losers = append(losers, a)
			continue
		}
		w := Winner{Argument: a}
		if c, ok := a.(*Compound); ok {
			sub := winnersLosers(j.pref, c.Support)
			w.Sub = &sub
		}
		winners = append(winners, w)
	}
	return winners, losers
}

func (j *judge) loses(a Argument, opponents []Argument) bool {
	if j.isDefeated(a) || j.isRebutted(opponents, a) {
		return true
	}
	if _, open := a.(*Open); open {
		for _, opp := range opponents {
			if _, alsoOpen := opp.(*Open); !alsoOpen && !j.isDefeated(opp) {
				return true
			}
		}
	}
	return false
}
