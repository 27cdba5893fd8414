/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"strings"

	"github.com/mikeb26/senticl-drawbot/internal"
)

// Options selects the fixture format for Generate.
type Options struct {
	Kind    Kind
	Repeat  Repeat
	Seeding Seeding

	// Rand is used for SeedShuffle; nil means internal.DefaultRand.
	Rand internal.Shuffler
}

// Generate builds a schedule for entrants. Fewer than two usable names
// yield an empty schedule and ErrInsufficientEntrants.
func Generate(entrants []string, opts Options) (*Schedule, error) {
	names := cleanEntrants(entrants)
	if len(names) < 2 {
		return &Schedule{Kind: opts.Kind}, ErrInsufficientEntrants
	}
	if opts.Seeding == SeedShuffle {
		internal.Shuffle(opts.Rand, names)
	}

	switch opts.Kind {
	case KindDoubleElim:
		return doubleElimination(names), nil
	case KindRoundRobin:
		return roundRobin(names, opts.Repeat), nil
	}
	return singleElimination(names), nil
}

// SingleElimination pads entrants to a power of two with byes and builds a
// knockout tree.
func SingleElimination(entrants []string, seeding Seeding) (*Schedule, error) {
	return Generate(entrants, Options{Kind: KindSingleElim, Seeding: seeding})
}

// DoubleElimination builds upper, lower and grand final sections.
func DoubleElimination(entrants []string, seeding Seeding) (*Schedule, error) {
	return Generate(entrants, Options{Kind: KindDoubleElim, Seeding: seeding})
}

// RoundRobin pairs every entrant with every other once, or twice with home
// and away swapped when repeat is RepeatDouble.
func RoundRobin(entrants []string, repeat Repeat,
	seeding Seeding) (*Schedule, error) {

	return Generate(entrants, Options{Kind: KindRoundRobin, Repeat: repeat,
		Seeding: seeding})
}

func cleanEntrants(entrants []string) []string {
	ret := make([]string, 0, len(entrants))
	for _, e := range entrants {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		ret = append(ret, e)
	}
	return ret
}
