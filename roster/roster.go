/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster collects draw inputs from files and web pages: the team
// format, the names in each tier, pairing rules and fixture entrants.
package roster

import (
	"fmt"
	"strings"

	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/teams"
)

type Roster struct {
	// Format is the team size; 0 means "as many tiers as were given".
	Format   int
	Tiers    map[teams.TierKey][]string
	Rules    []teams.Rule
	Entrants []string
}

// TeamFormat returns the effective team size.
func (r *Roster) TeamFormat() int {
	if r.Format > 0 {
		return teams.ClampFormat(r.Format)
	}
	highest := 0
	for k := range r.Tiers {
		if idx := k.Index(); idx > highest {
			highest = idx
		}
	}
	return teams.ClampFormat(highest)
}

// Pools returns the trimmed, non-empty names of every visible tier.
func (r *Roster) Pools() map[teams.TierKey][]string {
	ret := make(map[teams.TierKey][]string)
	for _, k := range teams.VisibleTiers(r.TeamFormat()) {
		ret[k] = teams.CleanNames(r.Tiers[k])
	}
	return ret
}

func (r *Roster) RuleSet() *teams.RuleSet {
	return teams.NewRuleSet(r.Rules)
}

// String summarizes the roster, one line per visible tier.
func (r *Roster) String() string {
	var sb strings.Builder
	format := r.TeamFormat()
	sb.WriteString(fmt.Sprintf("Format: %d\n", format))
	for _, k := range teams.VisibleTiers(format) {
		sb.WriteString(fmt.Sprintf("%v: %v\n", k.Label(),
			strings.Join(teams.CleanNames(r.Tiers[k]), ", ")))
	}
	if len(r.Rules) > 0 {
		sb.WriteString(fmt.Sprintf("Rules: %d\n", len(r.Rules)))
	}
	if len(r.Entrants) > 0 {
		sb.WriteString(fmt.Sprintf("Entrants: %v\n", strings.Join(r.Entrants, ", ")))
	}

	return sb.String()
}

// parseTierKey accepts "t1", "T1", "1", "tier1" and "tier 1".
func parseTierKey(s string) (teams.TierKey, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "tier")
	s = strings.TrimPrefix(strings.TrimSpace(s), "t")
	k := teams.TierKey("t" + strings.TrimSpace(s))
	if k.Index() == 0 {
		return "", false
	}
	return k, true
}

// ParseTierList reads tiers written inline, one tier per ";" or "|"
// separated group and names separated by commas: "Ada, Bo; Cy, Di". The
// format is the number of groups.
func ParseTierList(s string) *Roster {
	r := &Roster{Tiers: make(map[teams.TierKey][]string)}
	groups := strings.FieldsFunc(s, func(c rune) bool { return c == ';' || c == '|' })
	for i, g := range groups {
		if i >= teams.MaxTiers {
			break
		}
		r.Tiers[teams.Tier(i+1)] = internal.SplitList(g)
	}
	r.Format = teams.ClampFormat(len(groups))

	return r
}
