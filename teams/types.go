/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teams

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxTiers is the number of tier slots a roster can carry; a format of F
// makes the first F of them visible.
const MaxTiers = 5

// TierKey identifies a tier slot, "t1" through "t5".
type TierKey string

// Index returns the 1-based rank of the tier or 0 if the key is malformed.
func (k TierKey) Index() int {
	s := string(k)
	if !strings.HasPrefix(s, "t") {
		return 0
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > MaxTiers {
		return 0
	}
	return n
}

// Label returns the short display form used in output, e.g. "T2".
func (k TierKey) Label() string {
	return strings.ToUpper(string(k))
}

// Tier returns the key for the given 1-based rank.
func Tier(n int) TierKey {
	return TierKey(fmt.Sprintf("t%d", n))
}

// ClampFormat bounds a format (team size) to 1..MaxTiers.
func ClampFormat(format int) int {
	if format < 1 {
		return 1
	}
	if format > MaxTiers {
		return MaxTiers
	}
	return format
}

// VisibleTiers returns the tier keys that are in play for format, in rank
// order.
func VisibleTiers(format int) []TierKey {
	format = ClampFormat(format)
	ret := make([]TierKey, 0, format)
	for i := 1; i <= format; i++ {
		ret = append(ret, Tier(i))
	}
	return ret
}

// sortedKeys orders pool keys by tier rank, falling back to lexical order
// for keys that don't look like tiers.
func sortedKeys(pools map[TierKey][]string) []TierKey {
	keys := make([]TierKey, 0, len(pools))
	for k := range pools {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i].Index(), keys[j].Index()
		if a != 0 && b != 0 {
			return a < b
		}
		if (a == 0) != (b == 0) {
			return a != 0
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Member is one participant placed on a team.
type Member struct {
	Tier TierKey `json:"tier"`
	Name string  `json:"name"`
}

// Team holds exactly one member per visible tier, in tier order.
type Team []Member

// Names returns the display names of the team's members.
func (t Team) Names() []string {
	ret := make([]string, len(t))
	for i, m := range t {
		ret[i] = m.Name
	}
	return ret
}

// Pair is a normalized pair of names used for avoid matching.
type Pair [2]string

// Normalize trims and case-folds a name for comparisons. Display names keep
// their original case.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanNames trims every entry and drops the empty ones.
func CleanNames(names []string) []string {
	ret := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		ret = append(ret, n)
	}
	return ret
}
