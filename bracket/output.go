/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
	"strings"
)

const dateLayout = "2006-01-02"

// Rows flattens the schedule into spreadsheet rows of round, home and away.
// Round names carry their section when there is more than one section, a
// Date column is added once AssignDates has run, and the bye note is
// appended as a final BYE row.
func (s *Schedule) Rows() ([]string, [][]string) {
	headers := []string{"Round", "Home", "Away"}
	if s.dated {
		headers = []string{"Round", "Date", "Home", "Away"}
	}
	if s.Empty() {
		return headers, nil
	}

	var rows [][]string
	multi := len(s.Sections) > 1
	for _, sec := range s.Sections {
		for _, r := range sec.Rounds {
			name := r.Name
			if multi {
				name = sec.Name + " - " + r.Name
			}
			for _, m := range r.Matches {
				row := []string{name}
				if s.dated {
					row = append(row, formatDate(r))
				}
				row = append(row, s.RefName(m.Home), s.RefName(m.Away))
				rows = append(rows, row)
			}
		}
	}
	if s.ByeNote != "" {
		row := []string{ByeName, s.ByeNote, ""}
		if s.dated {
			row = []string{ByeName, "", s.ByeNote, ""}
		}
		rows = append(rows, row)
	}

	return headers, rows
}

func formatDate(r Round) string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(dateLayout)
}

// BuildScheduleOutput formats a schedule into grouped, aligned text.
func BuildScheduleOutput(s *Schedule) string {
	var sb strings.Builder

	if s.Empty() {
		sb.WriteString("Nothing to schedule; add at least two entrants.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Fixture (%v):\n\n", s.Kind))
	multi := len(s.Sections) > 1
	for _, sec := range s.Sections {
		if multi {
			sb.WriteString(fmt.Sprintf("%v\n", sec.Name))
		}
		for _, r := range sec.Rounds {
			sb.WriteString(s.BuildOneRoundOutput(r))
			sb.WriteString("\n")
		}
	}
	if s.ByeNote != "" {
		sb.WriteString(fmt.Sprintf("* %v\n", s.ByeNote))
	}

	return sb.String()
}

// BuildOneRoundOutput formats a single round as a Match/Home/Away table.
func (s *Schedule) BuildOneRoundOutput(r Round) string {
	var sb strings.Builder

	if r.Date.IsZero() {
		sb.WriteString(fmt.Sprintf("%v\n", r.Name))
	} else {
		sb.WriteString(fmt.Sprintf("%v (%v)\n", r.Name, r.Date.Format(dateLayout)))
	}

	type row struct{ match, home, away string }
	var rows []row
	for i, m := range r.Matches {
		rows = append(rows, row{
			match: fmt.Sprintf("%d.", i+1),
			home:  s.Label(m.Home),
			away:  s.Label(m.Away),
		})
	}

	// Compute column widths
	maxM, maxH, maxA := len("Match"), len("Home"), len("Away")
	for _, r := range rows {
		if l := len(r.match); l > maxM {
			maxM = l
		}
		if l := len(r.home); l > maxH {
			maxH = l
		}
		if l := len(r.away); l > maxA {
			maxA = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxM, "Match", maxH,
		"Home", maxA, "Away"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxM, r.match,
			maxH, r.home, maxA, r.away))
	}

	return sb.String()
}
