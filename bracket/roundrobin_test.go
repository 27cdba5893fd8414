/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRoundRobinFour(t *testing.T) {
	s, err := RoundRobin([]string{"A", "B", "C", "D"}, RepeatSingle, SeedOrdered)
	if err != nil {
		t.Fatalf("RoundRobin returned error: %v", err)
	}
	rounds := s.Rounds()
	want := [][][2]string{
		{{"A", "D"}, {"B", "C"}},
		{{"A", "C"}, {"D", "B"}},
		{{"A", "B"}, {"C", "D"}},
	}
	if len(rounds) != len(want) {
		t.Fatalf("len(rounds) = %d; want %d", len(rounds), len(want))
	}
	for i, w := range want {
		if got := slotNames(s, rounds[i]); !reflect.DeepEqual(got, w) {
			t.Errorf("week %d = %v; want %v", i+1, got, w)
		}
		if rounds[i].Name != weekName(i) {
			t.Errorf("round %d name = %q; want %q", i+1, rounds[i].Name, weekName(i))
		}
	}
	if s.MatchCount() != 6 {
		t.Errorf("MatchCount() = %d; want 6", s.MatchCount())
	}
}

func TestRoundRobinEveryPairOnce(t *testing.T) {
	for n := 2; n <= 12; n++ {
		s, err := RoundRobin(names(n), RepeatSingle, SeedShuffle)
		if err != nil {
			t.Fatalf("n=%d: RoundRobin returned error: %v", n, err)
		}
		wantRounds := n - 1
		if n%2 == 1 {
			wantRounds = n
		}
		rounds := s.Rounds()
		if len(rounds) != wantRounds {
			t.Errorf("n=%d: len(rounds) = %d; want %d", n, len(rounds), wantRounds)
		}
		if got, want := s.MatchCount(), n*(n-1)/2; got != want {
			t.Errorf("n=%d: MatchCount() = %d; want %d", n, got, want)
		}

		seen := make(map[[2]string]bool)
		for _, r := range rounds {
			busy := make(map[string]bool)
			for _, m := range r.Matches {
				if m.Home.Kind != SlotEntrant || m.Away.Kind != SlotEntrant {
					t.Fatalf("n=%d: %v has a non-entrant slot", n, r.Name)
				}
				for _, name := range []string{m.Home.Name, m.Away.Name} {
					if busy[name] {
						t.Errorf("n=%d: %v plays twice in %v", n, name, r.Name)
					}
					busy[name] = true
				}
				key := [2]string{m.Home.Name, m.Away.Name}
				if strings.Compare(key[0], key[1]) > 0 {
					key[0], key[1] = key[1], key[0]
				}
				if seen[key] {
					t.Errorf("n=%d: pairing %v repeated", n, key)
				}
				seen[key] = true
			}
		}
	}
}

func TestRoundRobinDoubleSwapsHomeAway(t *testing.T) {
	s, err := RoundRobin(names(5), RepeatDouble, SeedOrdered)
	if err != nil {
		t.Fatalf("RoundRobin returned error: %v", err)
	}
	rounds := s.Rounds()
	if len(rounds) != 10 {
		t.Fatalf("len(rounds) = %d; want 10", len(rounds))
	}
	if s.MatchCount() != 20 {
		t.Errorf("MatchCount() = %d; want 20", s.MatchCount())
	}
	for i := 0; i < 5; i++ {
		first, second := rounds[i], rounds[i+5]
		if second.Name != weekName(i+5) {
			t.Errorf("round %d name = %q; want %q", i+6, second.Name, weekName(i+5))
		}
		for j, m := range first.Matches {
			if second.Matches[j].Home != m.Away || second.Matches[j].Away != m.Home {
				t.Errorf("week %d match %d not mirrored", i+6, j+1)
			}
		}
	}
	if s.ByeNote != "" {
		t.Errorf("round robin reported a bye note: %q", s.ByeNote)
	}
}

func TestAssignDates(t *testing.T) {
	start := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)

	rr, _ := RoundRobin(names(4), RepeatSingle, SeedOrdered)
	rr.AssignDates(start, 0)
	for i, r := range rr.Rounds() {
		if want := start.AddDate(0, 0, 7*i); !r.Date.Equal(want) {
			t.Errorf("week %d date = %v; want %v", i+1, r.Date, want)
		}
	}
	headers, rows := rr.Rows()
	if !reflect.DeepEqual(headers, []string{"Round", "Date", "Home", "Away"}) {
		t.Errorf("headers = %v", headers)
	}
	if rows[0][1] != "2026-03-02" {
		t.Errorf("first row date = %q", rows[0][1])
	}

	de, _ := DoubleElimination(names(4), SeedOrdered)
	de.AssignDates(start, 24*time.Hour)
	day := func(n int) time.Time { return start.Add(time.Duration(n) * 24 * time.Hour) }
	upper := de.Section(SectionUpper).Rounds
	lower := de.Section(SectionLower).Rounds
	grand := de.Section(SectionGrandFinal).Rounds
	if !upper[0].Date.Equal(day(0)) || !upper[1].Date.Equal(day(1)) {
		t.Errorf("upper dates = %v, %v", upper[0].Date, upper[1].Date)
	}
	if !lower[0].Date.Equal(day(1)) || !lower[len(lower)-1].Date.Equal(day(len(lower))) {
		t.Errorf("lower dates start %v end %v", lower[0].Date, lower[len(lower)-1].Date)
	}
	if !grand[0].Date.Equal(day(len(lower) + 1)) {
		t.Errorf("grand final date = %v; want %v", grand[0].Date, day(len(lower)+1))
	}
}

func TestBuildScheduleOutput(t *testing.T) {
	s, _ := SingleElimination([]string{"A", "B", "C"}, SeedOrdered)
	out := BuildScheduleOutput(s)
	for _, want := range []string{
		"Fixture (Single Elimination):",
		"Semifinal\n",
		"Winner (A vs B)",
		"* BYE holders advance",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%v", want, out)
		}
	}

	empty, _ := RoundRobin(nil, RepeatSingle, SeedOrdered)
	if got := BuildScheduleOutput(empty); !strings.Contains(got, "Nothing to schedule") {
		t.Errorf("empty output = %q", got)
	}
}

func TestParseOptions(t *testing.T) {
	if k, err := ParseKind("double"); err != nil || k != KindDoubleElim {
		t.Errorf("ParseKind(double) = %v, %v", k, err)
	}
	if k, err := ParseKind("roundrobin"); err != nil || k != KindRoundRobin {
		t.Errorf("ParseKind(roundrobin) = %v, %v", k, err)
	}
	if _, err := ParseKind("swiss"); err == nil {
		t.Errorf("ParseKind(swiss) succeeded")
	}
	if s, err := ParseSeeding("ordered"); err != nil || s != SeedOrdered {
		t.Errorf("ParseSeeding(ordered) = %v, %v", s, err)
	}
	if r, err := ParseRepeat("double"); err != nil || r != RepeatDouble {
		t.Errorf("ParseRepeat(double) = %v, %v", r, err)
	}
}
