/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teams

import (
	"fmt"
	"strings"
)

// Matrix lays teams out as spreadsheet rows: a "Team" column followed by one
// column per visible tier. Members whose tier falls outside the format are
// left out.
func Matrix(result []Team, format int) ([]string, [][]string) {
	format = ClampFormat(format)
	headers := make([]string, 0, format+1)
	headers = append(headers, "Team")
	for _, k := range VisibleTiers(format) {
		headers = append(headers, k.Label())
	}

	rows := make([][]string, 0, len(result))
	for idx, team := range result {
		row := make([]string, format+1)
		row[0] = fmt.Sprintf("Team %d", idx+1)
		for _, m := range team {
			tierIdx := m.Tier.Index()
			if tierIdx >= 1 && tierIdx <= format {
				row[tierIdx] = m.Name
			}
		}
		rows = append(rows, row)
	}

	return headers, rows
}

// BuildTeamsOutput formats teams for chat or terminal display.
func BuildTeamsOutput(result []Team) string {
	var sb strings.Builder

	if len(result) == 0 {
		sb.WriteString("No teams drawn\n")
		return sb.String()
	}
	for idx, team := range result {
		sb.WriteString(BuildOneTeamOutput(idx, team))
		sb.WriteString("\n")
	}

	return sb.String()
}

// BuildOneTeamOutput formats a single team; idx is 0-based.
func BuildOneTeamOutput(idx int, team Team) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Team %d\n", idx+1))
	for _, m := range team {
		sb.WriteString(fmt.Sprintf("  [%v] %v\n", m.Tier.Label(), m.Name))
	}

	return sb.String()
}
