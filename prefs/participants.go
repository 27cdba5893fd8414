/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prefs

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/mikeb26/senticl-drawbot/teams"
)

// Participants is the saved team format and the names entered in each tier.
// On the wire it is a flat object: {"format":2,"t1":[...],"t2":[...]}.
type Participants struct {
	Format int
	Tiers  map[teams.TierKey][]string
}

var errNullDocument = errors.New("participants document is null")

// Pools returns the non-empty, trimmed names of the tiers visible under the
// saved format.
func (p *Participants) Pools() map[teams.TierKey][]string {
	ret := make(map[teams.TierKey][]string)
	for _, k := range teams.VisibleTiers(p.Format) {
		ret[k] = teams.CleanNames(p.Tiers[k])
	}
	return ret
}

func (p Participants) MarshalJSON() ([]byte, error) {
	doc := map[string]any{"format": teams.ClampFormat(p.Format)}
	for i := 1; i <= teams.MaxTiers; i++ {
		k := teams.Tier(i)
		doc[string(k)] = teams.CleanNames(p.Tiers[k])
	}
	return json.Marshal(doc)
}

// UnmarshalJSON is forgiving: a missing or non-numeric format becomes 1,
// out-of-range formats are clamped, and tier entries that aren't strings
// are dropped. Only a document that isn't a JSON object is an error.
func (p *Participants) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errNullDocument
	}

	p.Format = teams.ClampFormat(looseInt(raw["format"]))
	p.Tiers = make(map[teams.TierKey][]string)
	for i := 1; i <= teams.MaxTiers; i++ {
		k := teams.Tier(i)
		arr, ok := raw[string(k)].([]any)
		if !ok {
			p.Tiers[k] = []string{}
			continue
		}
		names := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				names = append(names, s)
			}
		}
		p.Tiers[k] = names
	}

	return nil
}

func looseInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return int(f)
		}
	}
	return 0
}
