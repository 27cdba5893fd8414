/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/mikeb26/senticl-drawbot/internal"
)

func names(n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = fmt.Sprintf("Team %d", i+1)
	}
	return ret
}

func slotNames(s *Schedule, r Round) [][2]string {
	ret := make([][2]string, len(r.Matches))
	for i, m := range r.Matches {
		ret[i] = [2]string{s.RefName(m.Home), s.RefName(m.Away)}
	}
	return ret
}

func TestSingleEliminationThreeEntrants(t *testing.T) {
	s, err := SingleElimination([]string{"A", "B", "C"}, SeedOrdered)
	if err != nil {
		t.Fatalf("SingleElimination returned error: %v", err)
	}
	rounds := s.Rounds()
	if len(rounds) != 2 {
		t.Fatalf("len(rounds) = %d; want 2", len(rounds))
	}
	if got := slotNames(s, rounds[0]); !reflect.DeepEqual(got,
		[][2]string{{"A", "B"}, {"C", "BYE"}}) {
		t.Errorf("round 1 = %v", got)
	}
	if rounds[1].Name != "Final" {
		t.Errorf("round 2 name = %q; want Final", rounds[1].Name)
	}
	final := rounds[1].Matches
	if len(final) != 1 {
		t.Fatalf("final has %d matches; want 1", len(final))
	}
	wantHome := WinnerOf(Ref{Section: SectionMain, Round: 1, Match: 1})
	wantAway := WinnerOf(Ref{Section: SectionMain, Round: 1, Match: 2})
	if final[0].Home != wantHome || final[0].Away != wantAway {
		t.Errorf("final = %v vs %v; want %v vs %v", final[0].Home, final[0].Away,
			wantHome, wantAway)
	}
	if s.ByeNote == "" {
		t.Errorf("missing bye advisory")
	}
	if got, want := s.Label(final[0].Home), "Winner (A vs B)"; got != want {
		t.Errorf("Label = %q; want %q", got, want)
	}
	if got, want := s.Label(final[0].Away), "Winner (C vs BYE)"; got != want {
		t.Errorf("Label = %q; want %q", got, want)
	}
}

func TestSingleEliminationShape(t *testing.T) {
	for n := 2; n <= 33; n++ {
		s, err := SingleElimination(names(n), SeedShuffle)
		if err != nil {
			t.Fatalf("n=%d: SingleElimination returned error: %v", n, err)
		}
		rounds := s.Rounds()
		wantRounds := int(math.Ceil(math.Log2(float64(n))))
		if len(rounds) != wantRounds {
			t.Errorf("n=%d: len(rounds) = %d; want %d", n, len(rounds), wantRounds)
			continue
		}
		if got, want := len(rounds[0].Matches), nextPow2(n)/2; got != want {
			t.Errorf("n=%d: round 1 has %d matches; want %d", n, got, want)
		}
		for i := 1; i < len(rounds); i++ {
			if len(rounds[i].Matches)*2 != len(rounds[i-1].Matches) {
				t.Errorf("n=%d: round %d has %d matches after %d", n, i+1,
					len(rounds[i].Matches), len(rounds[i-1].Matches))
			}
		}
		if got := len(rounds[len(rounds)-1].Matches); got != 1 {
			t.Errorf("n=%d: final round has %d matches; want 1", n, got)
		}
		if rounds[len(rounds)-1].Name != "Final" {
			t.Errorf("n=%d: last round = %q; want Final", n, rounds[len(rounds)-1].Name)
		}
		hasBye := nextPow2(n) != n
		if (s.ByeNote != "") != hasBye {
			t.Errorf("n=%d: ByeNote = %q; want present=%v", n, s.ByeNote, hasBye)
		}
	}
}

func TestRoundName(t *testing.T) {
	cases := []struct {
		size, idx int
		want      string
	}{
		{2, 0, "Final"},
		{4, 1, "Semifinal"},
		{8, 0, "Quarterfinal"},
		{16, 0, "Round of 16"},
		{32, 0, "Round of 32"},
		{24, 0, "Round of 24"},
		{6, 2, "Round 3"},
		{12, 0, "Round 1"},
	}
	for _, c := range cases {
		if got := RoundName(c.size, c.idx); got != c.want {
			t.Errorf("RoundName(%d, %d) = %q; want %q", c.size, c.idx, got, c.want)
		}
	}
}

func TestSingleEliminationRoundNames(t *testing.T) {
	s, err := SingleElimination(names(32), SeedOrdered)
	if err != nil {
		t.Fatalf("SingleElimination returned error: %v", err)
	}
	var got []string
	for _, r := range s.Rounds() {
		got = append(got, r.Name)
	}
	want := []string{"Round of 32", "Round of 16", "Quarterfinal", "Semifinal", "Final"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round names = %v; want %v", got, want)
	}
}

func TestDoubleEliminationEight(t *testing.T) {
	s, err := DoubleElimination(names(8), SeedOrdered)
	if err != nil {
		t.Fatalf("DoubleElimination returned error: %v", err)
	}
	if len(s.Sections) != 3 {
		t.Fatalf("len(Sections) = %d; want 3", len(s.Sections))
	}
	upper := s.Section(SectionUpper)
	lower := s.Section(SectionLower)
	grand := s.Section(SectionGrandFinal)
	if upper == nil || lower == nil || grand == nil {
		t.Fatalf("missing section: %v", s.Sections)
	}
	if len(upper.Rounds) != 3 {
		t.Errorf("upper has %d rounds; want 3", len(upper.Rounds))
	}

	want := []struct {
		name    string
		matches [][2]string
	}{
		{"LB R1", [][2]string{
			{"Loser UB R1-M1", "Loser UB R1-M2"},
			{"Loser UB R1-M3", "Loser UB R1-M4"},
		}},
		{"LB R2", [][2]string{{"Winner LB R1-M1", "Winner LB R1-M2"}}},
		{"LB R3", [][2]string{{"Winner LB R2-M1", "Loser UB R2-M1"}}},
		{"LB R4", [][2]string{{"Winner LB R3-M1", "Loser UB R3-M1"}}},
		{"LB Final", [][2]string{{"Winner LB R4-M1", lowerContenderName}}},
	}
	if len(lower.Rounds) != len(want) {
		t.Fatalf("lower has %d rounds; want %d", len(lower.Rounds), len(want))
	}
	for i, w := range want {
		r := lower.Rounds[i]
		if r.Name != w.name {
			t.Errorf("lower round %d name = %q; want %q", i+1, r.Name, w.name)
		}
		if got := slotNames(s, r); !reflect.DeepEqual(got, w.matches) {
			t.Errorf("%v = %v; want %v", w.name, got, w.matches)
		}
	}

	if len(grand.Rounds) != 1 || len(grand.Rounds[0].Matches) != 1 {
		t.Fatalf("grand final = %v; want exactly one match", grand.Rounds)
	}
	gf := grand.Rounds[0].Matches[0]
	if gf.Home != WinnerOf(Ref{Section: SectionUpper, Round: 3, Match: 1}) {
		t.Errorf("grand final home = %v; want upper final winner", gf.Home)
	}
	if got, want := s.RefName(gf.Away), "Winner LB Final-M1"; got != want {
		t.Errorf("grand final away = %q; want %q", got, want)
	}
	if s.ByeNote != "" {
		t.Errorf("unexpected bye note for 8 entrants: %q", s.ByeNote)
	}
}

func TestDoubleEliminationLabels(t *testing.T) {
	s, err := DoubleElimination([]string{"A", "B", "C", "D"}, SeedOrdered)
	if err != nil {
		t.Fatalf("DoubleElimination returned error: %v", err)
	}
	lower := s.Section(SectionLower)
	if lower == nil || len(lower.Rounds) == 0 {
		t.Fatalf("missing lower bracket")
	}
	m := lower.Rounds[0].Matches[0]
	if got, want := s.Label(m.Home), "Loser (A vs B)"; got != want {
		t.Errorf("Label(home) = %q; want %q", got, want)
	}
	if got, want := s.Label(m.Away), "Loser (C vs D)"; got != want {
		t.Errorf("Label(away) = %q; want %q", got, want)
	}
	gf := s.Section(SectionGrandFinal).Rounds[0].Matches[0]
	if got, want := s.Label(gf.Home),
		"Winner (Winner UB R1-M1 vs Winner UB R1-M2)"; got != want {
		t.Errorf("Label(grand final home) = %q; want %q", got, want)
	}
}

func TestDoubleEliminationGrandFinalAlwaysPresent(t *testing.T) {
	for n := 2; n <= 20; n++ {
		s, err := DoubleElimination(names(n), SeedShuffle)
		if err != nil {
			t.Fatalf("n=%d: DoubleElimination returned error: %v", n, err)
		}
		grand := s.Section(SectionGrandFinal)
		if grand == nil || len(grand.Rounds) != 1 || len(grand.Rounds[0].Matches) != 1 {
			t.Errorf("n=%d: grand final missing or malformed", n)
			continue
		}
		upper := s.Section(SectionUpper)
		gf := grand.Rounds[0].Matches[0]
		if gf.Home.Kind != SlotWinner || gf.Home.Ref.Section != SectionUpper ||
			gf.Home.Ref.Round != len(upper.Rounds) {
			t.Errorf("n=%d: grand final home = %v", n, gf.Home)
		}
		if n == 2 {
			if gf.Away.Kind != SlotPlaceholder {
				t.Errorf("n=2: grand final away = %v; want placeholder", gf.Away)
			}
			continue
		}
		lower := s.Section(SectionLower)
		if gf.Away.Kind != SlotWinner || gf.Away.Ref.Section != SectionLower ||
			gf.Away.Ref.Round != len(lower.Rounds) {
			t.Errorf("n=%d: grand final away = %v", n, gf.Away)
		}
		if _, ok := s.Lookup(gf.Away.Ref); !ok {
			t.Errorf("n=%d: grand final away ref %v does not resolve", n, gf.Away.Ref)
		}
	}
}

func TestOrderedSeedingIsDeterministic(t *testing.T) {
	entrants := names(11)
	for _, kind := range []Kind{KindSingleElim, KindDoubleElim, KindRoundRobin} {
		opts := Options{Kind: kind, Seeding: SeedOrdered, Repeat: RepeatDouble}
		a, err := Generate(entrants, opts)
		if err != nil {
			t.Fatalf("%v: Generate returned error: %v", kind, err)
		}
		b, err := Generate(entrants, opts)
		if err != nil {
			t.Fatalf("%v: Generate returned error: %v", kind, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%v: ordered schedules differ", kind)
		}
	}
}

func TestSeededShuffleIsReproducible(t *testing.T) {
	entrants := names(9)
	a, _ := Generate(entrants, Options{Kind: KindSingleElim, Rand: internal.NewSeededRand(42)})
	b, _ := Generate(entrants, Options{Kind: KindSingleElim, Rand: internal.NewSeededRand(42)})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("schedules from the same seed differ")
	}
	if !reflect.DeepEqual(entrants, names(9)) {
		t.Errorf("Generate shuffled the caller's slice")
	}
}

func TestInsufficientEntrants(t *testing.T) {
	for _, kind := range []Kind{KindSingleElim, KindDoubleElim, KindRoundRobin} {
		for _, in := range [][]string{nil, {"Solo"}, {"Solo", "  "}} {
			s, err := Generate(in, Options{Kind: kind})
			if !errors.Is(err, ErrInsufficientEntrants) {
				t.Errorf("%v %v: err = %v; want ErrInsufficientEntrants", kind, in, err)
			}
			if s == nil || !s.Empty() || s.MatchCount() != 0 {
				t.Errorf("%v %v: schedule = %v; want empty", kind, in, s)
			}
		}
	}
}

func TestRows(t *testing.T) {
	s, err := SingleElimination([]string{"A", "B", "C"}, SeedOrdered)
	if err != nil {
		t.Fatalf("SingleElimination returned error: %v", err)
	}
	headers, rows := s.Rows()
	if !reflect.DeepEqual(headers, []string{"Round", "Home", "Away"}) {
		t.Errorf("headers = %v", headers)
	}
	want := [][]string{
		{"Semifinal", "A", "B"},
		{"Semifinal", "C", "BYE"},
		{"Final", "Winner R1-M1", "Winner R1-M2"},
		{"BYE", s.ByeNote, ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v; want %v", rows, want)
	}
}

func TestRowsDoubleEliminationPrefixesSection(t *testing.T) {
	s, err := DoubleElimination([]string{"A", "B"}, SeedOrdered)
	if err != nil {
		t.Fatalf("DoubleElimination returned error: %v", err)
	}
	_, rows := s.Rows()
	want := [][]string{
		{"Upper Bracket - Final", "A", "B"},
		{"Grand Final - Grand Final", "Winner UB R1-M1", lowerWinnerName},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v; want %v", rows, want)
	}
}
