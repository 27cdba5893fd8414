/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/teams"
)

// ErrNoRosterTable is returned when a page has no table with tier or
// entrant columns.
var ErrNoRosterTable = errors.New("no roster table found")

// DefaultMaxAge is how long fetched roster pages are cached.
const DefaultMaxAge = 15 * time.Minute

const entrantCol = -1

// columnFor maps a header cell to a tier index (1..5), entrantCol, or 0 when
// the column isn't part of the roster.
func columnFor(header string) int {
	if k, ok := parseTierKey(header); ok {
		return k.Index()
	}
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "team", "teams", "entrant", "entrants", "club", "clubs":
		return entrantCol
	}
	return 0
}

// ParseHTML reads the first table on the page whose header row names tier
// columns ("T1".."T5" or "Tier 1".."Tier 5") and/or an entrant column
// ("Team" or "Entrant"). Each body row contributes at most one name per
// column; blank cells are skipped.
func ParseHTML(r io.Reader) (*Roster, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("roster.html: failed to parse document: %w", err)
	}

	var ret *Roster
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}
		var cols []int
		found := false
		rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			c := columnFor(cell.Text())
			if c != 0 {
				found = true
			}
			cols = append(cols, c)
		})
		if !found {
			return true
		}

		ret = &Roster{Tiers: make(map[teams.TierKey][]string)}
		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			row.Find("td").Each(func(i int, cell *goquery.Selection) {
				if i >= len(cols) || cols[i] == 0 {
					return
				}
				name := strings.Join(strings.Fields(cell.Text()), " ")
				if name == "" {
					return
				}
				if cols[i] == entrantCol {
					ret.Entrants = append(ret.Entrants, name)
					return
				}
				k := teams.Tier(cols[i])
				ret.Tiers[k] = append(ret.Tiers[k], name)
			})
		})
		for _, c := range cols {
			if c > 0 {
				if _, ok := ret.Tiers[teams.Tier(c)]; !ok {
					ret.Tiers[teams.Tier(c)] = []string{}
				}
			}
		}
		return false
	})

	if ret == nil {
		return nil, ErrNoRosterTable
	}
	return ret, nil
}

// Fetch downloads and parses the roster page at url. A nil client means a
// caching client that holds pages for DefaultMaxAge.
func Fetch(ctx context.Context, client *http.Client, url string) (*Roster, error) {
	if client == nil {
		client = internal.NewCachedHttpClient(nil, DefaultMaxAge)
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return ParseHTML(resp.Body)
}
