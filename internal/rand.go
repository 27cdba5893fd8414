/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"math/rand/v2"
)

// Shuffler is the random source the draw algorithms permute with.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultRand is the process-wide uniform source used when a caller doesn't
// supply one.
var DefaultRand Shuffler = globalRand{}

// NewSeededRand returns a reproducible source for tests and for callers that
// want to replay a draw.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes xs in place using src, or DefaultRand when src is nil.
func Shuffle[T any](src Shuffler, xs []T) {
	if src == nil {
		src = DefaultRand
	}
	src.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
