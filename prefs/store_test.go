/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/test"
	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/teams"
)

func TestParticipantsRoundTrip(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.Participants(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Participants() on empty store err = %v; want ErrNotFound", err)
	}

	in := Participants{
		Format: 2,
		Tiers: map[teams.TierKey][]string{
			"t1": {" Ada ", "", "Bo"},
			"t2": {"Cy", "  "},
		},
	}
	if err := s.SaveParticipants(in); err != nil {
		t.Fatalf("SaveParticipants() = %v", err)
	}
	got, err := s.Participants()
	if err != nil {
		t.Fatalf("Participants() = %v", err)
	}
	if got.Format != 2 {
		t.Errorf("Format = %d; want 2", got.Format)
	}
	if want := []string{"Ada", "Bo"}; !reflect.DeepEqual(got.Tiers["t1"], want) {
		t.Errorf("t1 = %v; want %v", got.Tiers["t1"], want)
	}
	if want := []string{"Cy"}; !reflect.DeepEqual(got.Tiers["t2"], want) {
		t.Errorf("t2 = %v; want %v", got.Tiers["t2"], want)
	}
	if len(got.Tiers["t5"]) != 0 {
		t.Errorf("t5 = %v; want empty", got.Tiers["t5"])
	}

	pools := got.Pools()
	if len(pools) != 2 {
		t.Errorf("len(Pools()) = %d; want 2", len(pools))
	}
}

func TestParticipantsForgivingDecode(t *testing.T) {
	tests := []struct {
		doc    string
		format int
		t1     []string
	}{
		{`{"format":9,"t1":["a",3,"b"]}`, 5, []string{"a", "b"}},
		{`{"format":"3","t1":"nope"}`, 3, []string{}},
		{`{"format":0}`, 1, []string{}},
		{`{"t1":["x"]}`, 1, []string{"x"}},
	}
	for _, tc := range tests {
		var p Participants
		if err := json.Unmarshal([]byte(tc.doc), &p); err != nil {
			t.Errorf("Unmarshal(%v) = %v", tc.doc, err)
			continue
		}
		if p.Format != tc.format {
			t.Errorf("Unmarshal(%v).Format = %d; want %d", tc.doc, p.Format, tc.format)
		}
		if !reflect.DeepEqual(p.Tiers["t1"], tc.t1) {
			t.Errorf("Unmarshal(%v).t1 = %v; want %v", tc.doc, p.Tiers["t1"], tc.t1)
		}
	}
}

func TestMalformedDocuments(t *testing.T) {
	cache := httpcache.NewMemoryCache()
	cache.Set(internal.ParticipantsKey, []byte(`[1,2`))
	cache.Set(internal.RulesKey, []byte(`{"not":"a list"}`))
	cache.Set(internal.FixtureKey, []byte(`null garbage`))
	s := NewStore(cache)

	if p, err := s.Participants(); p != nil || !errors.Is(err, ErrNotFound) {
		t.Errorf("Participants() = %v, %v; want nil, ErrNotFound", p, err)
	}
	if n := len(s.Rules().Rules); n != 0 {
		t.Errorf("len(Rules()) = %d; want 0", n)
	}
	if f := s.Fixture(); len(f) != 0 {
		t.Errorf("Fixture() = %v; want empty", f)
	}

	cache.Set(internal.ParticipantsKey, []byte(`null`))
	if _, err := s.Participants(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Participants() for null doc err = %v; want ErrNotFound", err)
	}
}

func TestRulesAndFixture(t *testing.T) {
	s := NewStore(nil)
	rs := s.Rules()
	if _, ok := rs.Add(teams.RuleAvoid, "Ada", "Cy"); !ok {
		t.Fatalf("Add() rejected a fresh rule")
	}
	rs.Add(teams.RulePrefer, "Bo", "Di")
	if err := s.SaveRules(rs); err != nil {
		t.Fatalf("SaveRules() = %v", err)
	}
	got := s.Rules()
	if !reflect.DeepEqual(got.Rules, rs.Rules) {
		t.Errorf("Rules() = %v; want %v", got.Rules, rs.Rules)
	}

	if err := s.SaveFixture([]string{"Red", " ", " Blue"}); err != nil {
		t.Fatalf("SaveFixture() = %v", err)
	}
	if got, want := s.Fixture(), []string{"Red", "Blue"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fixture() = %v; want %v", got, want)
	}

	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if snap.Participants != nil {
		t.Errorf("Load().Participants = %v; want nil", snap.Participants)
	}
	if len(snap.Rules.Rules) != 2 || len(snap.Fixture) != 2 {
		t.Errorf("Load() = %d rules, %d entrants; want 2, 2",
			len(snap.Rules.Rules), len(snap.Fixture))
	}

	s.Clear()
	if f := s.Fixture(); len(f) != 0 {
		t.Errorf("Fixture() after Clear = %v", f)
	}
	if n := len(s.Rules().Rules); n != 0 {
		t.Errorf("len(Rules()) after Clear = %d", n)
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStore(nil).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load(canceled) err = %v; want context.Canceled", err)
	}
}

func TestSQLiteCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	cache, err := OpenSQLiteCache(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLiteCache() = %v", err)
	}
	defer cache.Close()

	test.Cache(t, cache)

	cache.Set("k", []byte("one"))
	cache.Set("k", []byte("two"))
	if v, ok := cache.Get("k"); !ok || string(v) != "two" {
		t.Errorf("Get(k) = %q, %v; want two, true", v, ok)
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drawtd.db")

	s, closer, err := OpenStore(ctx, "sqlite:"+path)
	if err != nil {
		t.Fatalf("OpenStore(sqlite) = %v", err)
	}
	if err := s.SaveFixture([]string{"Red", "Blue"}); err != nil {
		t.Fatalf("SaveFixture() = %v", err)
	}
	closer.Close()

	// reopening sees the saved entrants
	s, closer, err = OpenStore(ctx, "sqlite:"+path)
	if err != nil {
		t.Fatalf("reopen OpenStore(sqlite) = %v", err)
	}
	defer closer.Close()
	if got := s.Fixture(); len(got) != 2 {
		t.Errorf("Fixture() after reopen = %v", got)
	}

	for _, backend := range []string{"", "memory"} {
		if _, _, err := OpenStore(ctx, backend); err != nil {
			t.Errorf("OpenStore(%q) = %v", backend, err)
		}
	}
	for _, backend := range []string{"sqlite", "sqlite:", "redis:localhost"} {
		if _, _, err := OpenStore(ctx, backend); err == nil {
			t.Errorf("OpenStore(%q) succeeded", backend)
		}
	}
}
