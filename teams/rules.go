/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teams

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type RuleKind string

const (
	// RuleAvoid keeps two participants off the same team.
	RuleAvoid RuleKind = "avoidPair"
	// RulePrefer asks for two participants to share a team. It is stored and
	// displayed but the partitioner does not evaluate it.
	RulePrefer RuleKind = "preferPair"
)

// ParseRuleKind accepts the stored names as well as the short forms "avoid"
// and "prefer".
func ParseRuleKind(s string) (RuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avoid", "avoidpair", "":
		return RuleAvoid, nil
	case "prefer", "preferpair":
		return RulePrefer, nil
	}
	return "", fmt.Errorf("unknown rule kind %q (want avoid or prefer)", s)
}

func (k RuleKind) String() string {
	if k == RulePrefer {
		return "prefer"
	}
	return "avoid"
}

// Rule is a pairwise constraint between two participants as entered by the
// user.
type Rule struct {
	ID   string   `json:"id"`
	Kind RuleKind `json:"type"`
	A    string   `json:"a"`
	B    string   `json:"b"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%v: %v <-> %v", r.Kind, r.A, r.B)
}

// RuleSet is an ordered, de-duplicated list of rules.
type RuleSet struct {
	Rules []Rule
}

// NewRuleSet wraps previously saved rules, dropping malformed and duplicate
// entries.
func NewRuleSet(rules []Rule) *RuleSet {
	rs := &RuleSet{}
	for _, r := range rules {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.Kind != RulePrefer {
			r.Kind = RuleAvoid
		}
		r.A = strings.TrimSpace(r.A)
		r.B = strings.TrimSpace(r.B)
		if r.A == "" || r.B == "" || rs.contains(r.Kind, r.A, r.B) {
			continue
		}
		rs.Rules = append(rs.Rules, r)
	}
	return rs
}

// Add appends a rule. It returns false without modifying the set when either
// name is blank or an equivalent rule (same kind, same names in the same
// order after normalizing) already exists.
func (rs *RuleSet) Add(kind RuleKind, a, b string) (Rule, bool) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return Rule{}, false
	}
	if rs.contains(kind, a, b) {
		return Rule{}, false
	}
	r := Rule{ID: uuid.NewString(), Kind: kind, A: a, B: b}
	rs.Rules = append(rs.Rules, r)
	return r, true
}

// Remove deletes the rule with the given id.
func (rs *RuleSet) Remove(id string) bool {
	for i, r := range rs.Rules {
		if r.ID == id {
			rs.Rules = append(rs.Rules[:i], rs.Rules[i+1:]...)
			return true
		}
	}
	return false
}

// AvoidPairs compiles the avoid rules into normalized pairs for Partition.
func (rs *RuleSet) AvoidPairs() []Pair {
	var ret []Pair
	for _, r := range rs.Rules {
		if r.Kind != RuleAvoid {
			continue
		}
		ret = append(ret, Pair{Normalize(r.A), Normalize(r.B)})
	}
	return ret
}

func (rs *RuleSet) contains(kind RuleKind, a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	for _, r := range rs.Rules {
		if r.Kind == kind && Normalize(r.A) == na && Normalize(r.B) == nb {
			return true
		}
	}
	return false
}

// ParsePair splits "A-B", "A:B" or "A,B" into a pair of trimmed names.
func ParsePair(s string) (string, string, error) {
	for _, sep := range []string{"<->", ":", ",", "-"} {
		if idx := strings.Index(s, sep); idx != -1 {
			a := strings.TrimSpace(s[:idx])
			b := strings.TrimSpace(s[idx+len(sep):])
			if a == "" || b == "" {
				break
			}
			return a, b, nil
		}
	}
	return "", "", fmt.Errorf("cannot parse %q as a pair of names (try A:B)", s)
}
