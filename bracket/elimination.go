/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
	"math/bits"
)

const (
	lowerContenderName = "Incoming Lower Bracket contender"
	lowerWinnerName    = "Lower Bracket winner"
)

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// RoundName names an elimination round by the number of entrants it starts
// with; idx is the 0-based round index used for the generic label.
func RoundName(size int, idx int) string {
	if size >= 16 && size%8 == 0 {
		return fmt.Sprintf("Round of %d", size)
	}
	switch size {
	case 8:
		return "Quarterfinal"
	case 4:
		return "Semifinal"
	case 2:
		return "Final"
	}
	return fmt.Sprintf("Round %d", idx+1)
}

// padWithByes extends names to the next power of two with byes.
func padWithByes(names []string) []Slot {
	target := nextPow2(len(names))
	slots := make([]Slot, 0, target)
	for _, n := range names {
		slots = append(slots, Entrant(n))
	}
	for len(slots) < target {
		slots = append(slots, Bye())
	}
	return slots
}

// buildElimRounds lays out a knockout tree over a padded slot list in
// section sec, recording an "A vs B" hint for every match.
func buildElimRounds(slots []Slot, sec SectionID,
	hints map[Ref]string) []Round {

	var rounds []Round
	r1 := make([]Match, 0, len(slots)/2)
	for i := 0; i+1 < len(slots); i += 2 {
		r1 = append(r1, Match{Home: slots[i], Away: slots[i+1]})
	}
	rounds = append(rounds, Round{Name: RoundName(len(slots), 0), Matches: r1})
	recordHints(hints, sec, 1, r1)

	prevCount := len(r1)
	teamCount := len(slots) / 2
	for roundNo := 2; prevCount > 1; roundNo++ {
		matches := make([]Match, 0, prevCount/2)
		for m := 0; m+1 < prevCount; m += 2 {
			matches = append(matches, Match{
				Home: WinnerOf(Ref{Section: sec, Round: roundNo - 1, Match: m + 1}),
				Away: WinnerOf(Ref{Section: sec, Round: roundNo - 1, Match: m + 2}),
			})
		}
		rounds = append(rounds, Round{Name: RoundName(teamCount, roundNo-1),
			Matches: matches})
		recordHints(hints, sec, roundNo, matches)
		prevCount = len(matches)
		teamCount = max(1, teamCount/2)
	}

	return rounds
}

func recordHints(hints map[Ref]string, sec SectionID, roundNo int,
	matches []Match) {

	for i, m := range matches {
		hints[Ref{Section: sec, Round: roundNo, Match: i + 1}] =
			fmt.Sprintf("%v vs %v", m.Home, m.Away)
	}
}

func firstRoundHasBye(rounds []Round) bool {
	if len(rounds) == 0 {
		return false
	}
	for _, m := range rounds[0].Matches {
		if m.HasBye() {
			return true
		}
	}
	return false
}

// singleElimination expects names already cleaned and seeded.
func singleElimination(names []string) *Schedule {
	s := &Schedule{
		Kind:  KindSingleElim,
		hints: make(map[Ref]string),
	}
	rounds := buildElimRounds(padWithByes(names), SectionMain, s.hints)
	s.Sections = []Section{
		{ID: SectionMain, Name: SectionMain.String(), Rounds: rounds},
	}
	if firstRoundHasBye(rounds) {
		s.ByeNote = "BYE holders advance to the next round automatically."
	}

	return s
}

// pairUp pairs consecutive slots; an odd trailing slot is dropped.
func pairUp(slots []Slot) []Match {
	ret := make([]Match, 0, len(slots)/2)
	for i := 0; i+1 < len(slots); i += 2 {
		ret = append(ret, Match{Home: slots[i], Away: slots[i+1]})
	}
	return ret
}

func upperLosers(roundNo int, count int) []Slot {
	ret := make([]Slot, count)
	for i := range ret {
		ret[i] = LoserOf(Ref{Section: SectionUpper, Round: roundNo, Match: i + 1})
	}
	return ret
}

func lowerWinners(roundNo int, count int) []Slot {
	ret := make([]Slot, count)
	for i := range ret {
		ret[i] = WinnerOf(Ref{Section: SectionLower, Round: roundNo, Match: i + 1})
	}
	return ret
}

// doubleElimination expects names already cleaned and seeded.
func doubleElimination(names []string) *Schedule {
	s := &Schedule{
		Kind:  KindDoubleElim,
		hints: make(map[Ref]string),
	}

	slots := padWithByes(names)
	target := len(slots)
	upper := buildElimRounds(slots, SectionUpper, s.hints)
	k := bits.Len(uint(target)) - 1

	// Lower bracket: round 1 takes every upper round 1 loser. After that
	// each upper round r contributes a minor round (lower winners among
	// themselves, when there are at least two) followed by a major round
	// (those winners against the upper round r losers).
	var lower []Round
	addLower := func(name string, matches []Match) int {
		lower = append(lower, Round{Name: name, Matches: matches})
		return len(lower)
	}

	lbr1 := pairUp(upperLosers(1, target/2))
	if len(lbr1) > 0 {
		addLower("LB R1", lbr1)
	}
	lastWinners := lowerWinners(1, len(lbr1))

	for r := 2; r <= k; r++ {
		if len(lastWinners) >= 2 {
			minor := pairUp(lastWinners)
			idx := addLower(fmt.Sprintf("LB R%d", len(lower)+1), minor)
			lastWinners = lowerWinners(idx, len(minor))
		}

		pool := append(append([]Slot(nil), lastWinners...),
			upperLosers(r, max(1, target>>r))...)
		idx := len(lower) + 1
		major := pairUp(pool)
		if len(major) > 0 {
			addLower(fmt.Sprintf("LB R%d", idx), major)
		}
		lastWinners = lowerWinners(idx, len(major))
	}

	if len(lastWinners) >= 2 {
		final := pairUp(lastWinners)
		idx := addLower("LB Final", final)
		lastWinners = lowerWinners(idx, len(final))
	} else if len(lastWinners) == 1 {
		idx := addLower("LB Final", []Match{
			{Home: lastWinners[0], Away: Placeholder(lowerContenderName)},
		})
		lastWinners = lowerWinners(idx, 1)
	}

	ubWinner := WinnerOf(Ref{Section: SectionUpper, Round: len(upper), Match: 1})
	lbWinner := Placeholder(lowerWinnerName)
	if len(lastWinners) > 0 {
		lbWinner = lastWinners[0]
	}
	grand := []Round{
		{Name: "Grand Final", Matches: []Match{{Home: ubWinner, Away: lbWinner}}},
	}

	s.Sections = []Section{
		{ID: SectionUpper, Name: SectionUpper.String(), Rounds: upper},
		{ID: SectionLower, Name: SectionLower.String(), Rounds: lower},
		{ID: SectionGrandFinal, Name: SectionGrandFinal.String(), Rounds: grand},
	}
	if firstRoundHasBye(upper) {
		s.ByeNote = "BYE holders advance automatically in their round."
	}

	return s
}
