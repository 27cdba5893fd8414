/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teams

import (
	"github.com/mikeb26/senticl-drawbot/internal"
)

// Partitioner builds balanced teams from per-tier pools.
//
// The search is a plain depth-first backtrack with no iteration cap, so the
// worst case is exponential in team count times tier breadth. Callers that
// accept user input should bound the roster size themselves.
type Partitioner struct {
	// Tiers is the visible-tier order teams are filled in. When empty the
	// keys of the supplied pools are used, sorted by rank.
	Tiers []TierKey

	// Rand permutes each pool before the search. nil means
	// internal.DefaultRand.
	Rand internal.Shuffler

	// Ordered disables the shuffle so identical input yields identical teams.
	Ordered bool
}

// Partition draws teams with the default Partitioner.
func Partition(pools map[TierKey][]string, avoid []Pair) ([]Team, error) {
	var p Partitioner
	return p.Partition(pools, avoid)
}

// Partition returns min(len(pool)) teams, each holding one participant from
// every visible tier, such that no team contains both names of an avoid
// pair. Participants beyond the smallest pool's size are left out.
func (p *Partitioner) Partition(pools map[TierKey][]string,
	avoid []Pair) ([]Team, error) {

	tiers := p.Tiers
	if len(tiers) == 0 {
		tiers = sortedKeys(pools)
	}
	if len(tiers) == 0 {
		return nil, &EmptyTierError{Tier: Tier(1)}
	}

	state := make(poolSet, len(tiers))
	for _, k := range tiers {
		names := CleanNames(pools[k])
		if len(names) == 0 {
			return nil, &EmptyTierError{Tier: k}
		}
		if !p.Ordered {
			internal.Shuffle(p.Rand, names)
		}
		state[k] = names
	}

	teamCount := len(state[tiers[0]])
	for _, k := range tiers[1:] {
		if n := len(state[k]); n < teamCount {
			teamCount = n
		}
	}

	s := &search{
		tiers:     tiers,
		avoid:     normalizePairs(avoid),
		teamCount: teamCount,
	}
	result := s.buildTeam(0, state)
	if result == nil {
		return nil, &UnsatisfiableConstraintsError{
			TeamCount:  teamCount,
			AvoidCount: len(s.avoid),
		}
	}

	return result, nil
}

// poolSet maps each tier to the candidates still unplaced on the current
// branch.
type poolSet map[TierKey][]string

// without returns a copy of ps with the idx-th candidate of tier k removed.
// Sibling branches never observe each other's removals.
func (ps poolSet) without(k TierKey, idx int) poolSet {
	ret := make(poolSet, len(ps))
	for key, names := range ps {
		if key == k {
			rest := make([]string, 0, len(names)-1)
			rest = append(rest, names[:idx]...)
			rest = append(rest, names[idx+1:]...)
			ret[key] = rest
		} else {
			ret[key] = names
		}
	}
	return ret
}

type search struct {
	tiers     []TierKey
	avoid     []Pair
	teamCount int
}

// buildTeam fills team teamIdx and every team after it, returning nil on a
// dead end.
func (s *search) buildTeam(teamIdx int, pools poolSet) []Team {
	if teamIdx == s.teamCount {
		return []Team{}
	}
	current := make(Team, 0, len(s.tiers))
	return s.placeTier(teamIdx, 0, pools, current)
}

func (s *search) placeTier(teamIdx int, ti int, pools poolSet,
	current Team) []Team {

	if ti == len(s.tiers) {
		rest := s.buildTeam(teamIdx+1, pools)
		if rest == nil {
			return nil
		}
		done := append(Team(nil), current...)
		return append([]Team{done}, rest...)
	}

	k := s.tiers[ti]
	candidates := pools[k]
	for idx, name := range candidates {
		current = append(current, Member{Tier: k, Name: name})
		if !violatesAvoid(current, s.avoid) {
			res := s.placeTier(teamIdx, ti+1, pools.without(k, idx), current)
			if res != nil {
				return res
			}
		}
		current = current[:len(current)-1]
	}

	return nil
}

// violatesAvoid reports whether both names of any avoid pair are present in
// members. A pair naming the same person twice is violated by that person
// alone.
func violatesAvoid(members Team, avoid []Pair) bool {
	if len(avoid) == 0 {
		return false
	}
	present := make(map[string]bool, len(members))
	for _, m := range members {
		present[Normalize(m.Name)] = true
	}
	for _, p := range avoid {
		if present[p[0]] && present[p[1]] {
			return true
		}
	}
	return false
}

func normalizePairs(pairs []Pair) []Pair {
	ret := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		a, b := Normalize(p[0]), Normalize(p[1])
		if a == "" || b == "" {
			continue
		}
		ret = append(ret, Pair{a, b})
	}
	return ret
}
