/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInsufficientEntrants is returned together with an empty schedule when
// fewer than two entrants are supplied.
var ErrInsufficientEntrants = errors.New("at least two entrants are needed to build a fixture")

// ByeName is how a bye slot is displayed.
const ByeName = "BYE"

type Kind string

const (
	KindSingleElim Kind = "singleelim"
	KindDoubleElim Kind = "doubleelim"
	KindRoundRobin Kind = "roundrobin"
)

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "singleelim", "knockout":
		return KindSingleElim, nil
	case "double", "doubleelim":
		return KindDoubleElim, nil
	case "roundrobin", "rr", "league":
		return KindRoundRobin, nil
	}
	return "", fmt.Errorf("unknown fixture mode %q (want single, double or roundrobin)", s)
}

func (k Kind) String() string {
	switch k {
	case KindDoubleElim:
		return "Double Elimination"
	case KindRoundRobin:
		return "Round Robin"
	}
	return "Single Elimination"
}

type Seeding int

const (
	SeedShuffle Seeding = iota
	SeedOrdered
)

func ParseSeeding(s string) (Seeding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shuffle", "random":
		return SeedShuffle, nil
	case "ordered", "order":
		return SeedOrdered, nil
	}
	return SeedShuffle, fmt.Errorf("unknown seeding %q (want shuffle or ordered)", s)
}

// Repeat selects how many times each round-robin pairing is played.
type Repeat int

const (
	RepeatSingle Repeat = iota
	RepeatDouble
)

func ParseRepeat(s string) (Repeat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "1":
		return RepeatSingle, nil
	case "double", "2":
		return RepeatDouble, nil
	}
	return RepeatSingle, fmt.Errorf("unknown repeat %q (want single or double)", s)
}

type SectionID int

const (
	SectionMain SectionID = iota
	SectionUpper
	SectionLower
	SectionGrandFinal
)

func (id SectionID) String() string {
	switch id {
	case SectionUpper:
		return "Upper Bracket"
	case SectionLower:
		return "Lower Bracket"
	case SectionGrandFinal:
		return "Grand Final"
	}
	return "Bracket"
}

// Ref points at a match by section and 1-based round and match number.
type Ref struct {
	Section SectionID `json:"section"`
	Round   int       `json:"round"`
	Match   int       `json:"match"`
}

// String renders the short reference, e.g. "R2-M1", "UB R2-M1" or
// "LB R3-M2".
func (r Ref) String() string {
	switch r.Section {
	case SectionUpper:
		return fmt.Sprintf("UB R%d-M%d", r.Round, r.Match)
	case SectionLower:
		return fmt.Sprintf("LB R%d-M%d", r.Round, r.Match)
	case SectionGrandFinal:
		return fmt.Sprintf("GF-M%d", r.Match)
	}
	return fmt.Sprintf("R%d-M%d", r.Round, r.Match)
}

type SlotKind int

const (
	SlotEntrant SlotKind = iota
	SlotBye
	SlotWinner
	SlotLoser
	SlotPlaceholder
)

// Slot is one side of a match: a resolved entrant, a bye, a forward
// reference to the winner or loser of another match, or a named placeholder
// for a contender not yet determined.
type Slot struct {
	Kind SlotKind `json:"kind"`
	Name string   `json:"name,omitempty"`
	Ref  Ref      `json:"ref"`
}

func Entrant(name string) Slot { return Slot{Kind: SlotEntrant, Name: name} }

func Bye() Slot { return Slot{Kind: SlotBye} }

func WinnerOf(ref Ref) Slot { return Slot{Kind: SlotWinner, Ref: ref} }

func LoserOf(ref Ref) Slot { return Slot{Kind: SlotLoser, Ref: ref} }

func Placeholder(name string) Slot { return Slot{Kind: SlotPlaceholder, Name: name} }

func (s Slot) IsBye() bool { return s.Kind == SlotBye }

// IsRef reports whether the slot is a forward reference.
func (s Slot) IsRef() bool { return s.Kind == SlotWinner || s.Kind == SlotLoser }

func (s Slot) String() string {
	switch s.Kind {
	case SlotBye:
		return ByeName
	case SlotWinner:
		return "Winner " + s.Ref.String()
	case SlotLoser:
		return "Loser " + s.Ref.String()
	}
	return s.Name
}

type Match struct {
	Home Slot `json:"home"`
	Away Slot `json:"away"`
}

// HasBye reports whether either side is a bye.
func (m Match) HasBye() bool {
	return m.Home.IsBye() || m.Away.IsBye()
}

// Round is a set of matches played concurrently.
type Round struct {
	Name    string    `json:"name"`
	Matches []Match   `json:"matches"`
	Date    time.Time `json:"date,omitzero"`
}

// Section groups rounds; only double elimination has more than one.
type Section struct {
	ID     SectionID `json:"id"`
	Name   string    `json:"name"`
	Rounds []Round   `json:"rounds"`
}

// Schedule is the output of every generator.
type Schedule struct {
	Kind     Kind      `json:"kind"`
	Sections []Section `json:"sections"`
	// ByeNote is set when a first-round slot holds a bye.
	ByeNote string `json:"byeNote,omitempty"`

	// hints maps an elimination match to its "A vs B" label.
	hints map[Ref]string
	dated bool
}

// Empty reports whether there is nothing to schedule.
func (s *Schedule) Empty() bool {
	return s == nil || len(s.Sections) == 0
}

// Section returns the section with the given id or nil.
func (s *Schedule) Section(id SectionID) *Section {
	if s == nil {
		return nil
	}
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// Rounds returns every round in section order.
func (s *Schedule) Rounds() []Round {
	if s == nil {
		return nil
	}
	var ret []Round
	for _, sec := range s.Sections {
		ret = append(ret, sec.Rounds...)
	}
	return ret
}

// MatchCount returns the total number of matches across all sections.
func (s *Schedule) MatchCount() int {
	n := 0
	for _, r := range s.Rounds() {
		n += len(r.Matches)
	}
	return n
}

// Lookup returns the match a reference points at.
func (s *Schedule) Lookup(ref Ref) (Match, bool) {
	sec := s.Section(ref.Section)
	if sec == nil || ref.Round < 1 || ref.Round > len(sec.Rounds) {
		return Match{}, false
	}
	r := sec.Rounds[ref.Round-1]
	if ref.Match < 1 || ref.Match > len(r.Matches) {
		return Match{}, false
	}
	return r.Matches[ref.Match-1], true
}

// Hint returns the "A vs B" label recorded for an elimination match.
func (s *Schedule) Hint(ref Ref) (string, bool) {
	if s == nil {
		return "", false
	}
	h, ok := s.hints[ref]
	return h, ok
}

// RefName renders a slot the raw way, using the referenced round's name
// for lower bracket references (e.g. "Winner LB Final-M1").
func (s *Schedule) RefName(slot Slot) string {
	if !slot.IsRef() || slot.Ref.Section != SectionLower {
		return slot.String()
	}
	word := "Winner"
	if slot.Kind == SlotLoser {
		word = "Loser"
	}
	if sec := s.Section(SectionLower); sec != nil &&
		slot.Ref.Round >= 1 && slot.Ref.Round <= len(sec.Rounds) {
		return fmt.Sprintf("%v %v-M%d", word, sec.Rounds[slot.Ref.Round-1].Name,
			slot.Ref.Match)
	}
	return slot.String()
}

// Label renders a slot for display. References to elimination matches with
// a recorded hint read "Winner (A vs B)"; everything else falls back to
// RefName.
func (s *Schedule) Label(slot Slot) string {
	if slot.IsRef() {
		if h, ok := s.Hint(slot.Ref); ok {
			word := "Winner"
			if slot.Kind == SlotLoser {
				word = "Loser"
			}
			return fmt.Sprintf("%v (%v)", word, h)
		}
	}
	return s.RefName(slot)
}
