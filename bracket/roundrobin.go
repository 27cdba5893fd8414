/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import "fmt"

// noOpponent marks the padding seat added for an odd entrant count.
const noOpponent = -1

// roundRobin schedules every pairing with the circle method: seat 0 stays
// fixed while the other seats rotate one step per round. Each round pairs
// the left half of the line with the reversed right half. names must
// already be cleaned and seeded.
func roundRobin(names []string, repeat Repeat) *Schedule {
	seats := make([]int, 0, len(names)+1)
	for i := range names {
		seats = append(seats, i)
	}
	if len(seats)%2 == 1 {
		seats = append(seats, noOpponent)
	}

	n := len(seats)
	half := n / 2
	fixed := seats[0]
	others := append([]int(nil), seats[1:]...)
	numRounds := n - 1

	rounds := make([]Round, 0, numRounds*2)
	for r := 0; r < numRounds; r++ {
		left := append([]int{fixed}, others[:half-1]...)
		right := make([]int, 0, half)
		for i := len(others) - 1; i >= half-1; i-- {
			right = append(right, others[i])
		}

		matches := make([]Match, 0, half)
		for i := 0; i < half; i++ {
			a, b := left[i], right[i]
			if a == noOpponent || b == noOpponent {
				continue
			}
			matches = append(matches, Match{
				Home: Entrant(names[a]),
				Away: Entrant(names[b]),
			})
		}
		rounds = append(rounds, Round{Name: weekName(r), Matches: matches})

		last := others[len(others)-1]
		others = append([]int{last}, others[:len(others)-1]...)
	}

	if repeat == RepeatDouble {
		for i := 0; i < numRounds; i++ {
			first := rounds[i]
			matches := make([]Match, len(first.Matches))
			for j, m := range first.Matches {
				matches[j] = Match{Home: m.Away, Away: m.Home}
			}
			rounds = append(rounds, Round{Name: weekName(numRounds + i),
				Matches: matches})
		}
	}

	return &Schedule{
		Kind: KindRoundRobin,
		Sections: []Section{
			{ID: SectionMain, Name: "League", Rounds: rounds},
		},
	}
}

func weekName(idx int) string {
	return fmt.Sprintf("Week %d", idx+1)
}
