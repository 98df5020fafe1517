package argue

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/explainable-reasoning/argument-search/internal/logic"
)

// OpenArguments collects, one set per open leaf reachable through winners,
// the atoms whose truth values the leaf depends on. Losers and assumptions
// contribute nothing.
func OpenArguments(wl WinnersLosers) [][]logic.Atom {
	var out [][]logic.Atom
	collectOpen(wl, &out)
	return out
}

func collectOpen(wl WinnersLosers, out *[][]logic.Atom) {
	for _, side := range [][]Winner{wl.ProWinners, wl.ContraWinners} {
		for _, w := range side {
			switch a := w.Argument.(type) {
			case *Open:
				*out = append(*out, a.Atoms())
			case *Compound:
				if w.Sub != nil {
					collectOpen(*w.Sub, out)
				}
			}
		}
	}
}

// Questions enumerates the minimal atom sets whose determination would close
// every open branch of the explanation: the cartesian product over the open
// leaves' atom sets, one atom picked per leaf. Each combination is
// deduplicated and sorted; the result is deduplicated and ordered by length,
// then lexicographically.
func Questions(wl WinnersLosers) [][]logic.Atom {
	open := OpenArguments(wl)

	var branches [][]logic.Atom
	for _, atoms := range open {
		if len(atoms) > 0 {
			branches = append(branches, atoms)
		}
	}
	if len(branches) == 0 {
		return nil
	}

	lens := make([]int, len(branches))
	for i, b := range branches {
		lens[i] = len(b)
	}

	var combos [][]logic.Atom
	seen := make(map[string]bool)
	for _, pick := range combin.Cartesian(lens) {
		combo := make([]logic.Atom, 0, len(pick))
		present := make(map[logic.Atom]bool)
		for i, idx := range pick {
			a := branches[i][idx]
			if !present[a] {
				present[a] = true
				combo = append(combo, a)
			}
		}
		sort.Slice(combo, func(i, j int) bool { return combo[i] < combo[j] })
		key := joinAtoms(combo)
		if seen[key] {
			continue
		}
		seen[key] = true
		combos = append(combos, combo)
	}

	sort.SliceStable(combos, func(i, j int) bool {
		if len(combos[i]) != len(combos[j]) {
			return len(combos[i]) < len(combos[j])
		}
		return joinAtoms(combos[i]) < joinAtoms(combos[j])
	})
	return combos
}

func joinAtoms(atoms []logic.Atom) string {
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}
