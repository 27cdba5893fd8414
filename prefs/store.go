/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package prefs persists the draw bot's saved selections (team format and
// tier pools, pairing rules, fixture entrants) as JSON documents in any
// httpcache.Cache implementation.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/teams"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when nothing usable has been saved under a key.
var ErrNotFound = errors.New("no saved selection")

type Store struct {
	cache httpcache.Cache
}

// Snapshot is everything the store holds.
type Snapshot struct {
	Participants *Participants
	Rules        *teams.RuleSet
	Fixture      []string
}

// NewStore returns a Store backed by cache. A nil cache means an in-memory
// cache that lives as long as the Store.
func NewStore(cache httpcache.Cache) *Store {
	if cache == nil {
		cache = httpcache.NewMemoryCache()
	}
	return &Store{cache: cache}
}

func (s *Store) get(key string, v any) error {
	data, ok := s.cache.Get(key)
	if !ok || len(data) == 0 {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("prefs.get: discarding malformed %v: %v", key, err)
		return fmt.Errorf("%w: %v is malformed", ErrNotFound, key)
	}
	return nil
}

func (s *Store) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("prefs.put: failed to encode %v: %w", key, err)
	}
	s.cache.Set(key, data)
	return nil
}

// Participants returns the saved format and tier pools, or ErrNotFound if
// none are saved or the saved document can't be read.
func (s *Store) Participants() (*Participants, error) {
	var p Participants
	if err := s.get(internal.ParticipantsKey, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveParticipants persists the format and the trimmed, non-empty names of
// every tier.
func (s *Store) SaveParticipants(p Participants) error {
	return s.put(internal.ParticipantsKey, p)
}

// Rules returns the saved rule set. A missing or malformed document yields
// an empty set rather than an error.
func (s *Store) Rules() *teams.RuleSet {
	var rules []teams.Rule
	if err := s.get(internal.RulesKey, &rules); err != nil {
		return teams.NewRuleSet(nil)
	}
	return teams.NewRuleSet(rules)
}

func (s *Store) SaveRules(rs *teams.RuleSet) error {
	rules := []teams.Rule{}
	if rs != nil {
		rules = append(rules, rs.Rules...)
	}
	return s.put(internal.RulesKey, rules)
}

// Fixture returns the saved fixture entrants. A missing or malformed
// document yields an empty list.
func (s *Store) Fixture() []string {
	var names []string
	if err := s.get(internal.FixtureKey, &names); err != nil {
		return []string{}
	}
	return teams.CleanNames(names)
}

func (s *Store) SaveFixture(names []string) error {
	return s.put(internal.FixtureKey, teams.CleanNames(names))
}

// Load reads all three documents concurrently. A missing participants
// document leaves Snapshot.Participants nil.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	eg, _ := errgroup.WithContext(ctx)

	eg.Go(func() error {
		p, err := s.Participants()
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		snap.Participants = p
		return nil
	})
	eg.Go(func() error {
		snap.Rules = s.Rules()
		return nil
	})
	eg.Go(func() error {
		snap.Fixture = s.Fixture()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Clear deletes every saved document.
func (s *Store) Clear() {
	for _, key := range []string{internal.ParticipantsKey, internal.RulesKey,
		internal.FixtureKey} {
		s.cache.Delete(key)
	}
}
