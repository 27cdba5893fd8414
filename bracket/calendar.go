/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import "time"

// Weekly is the default spacing between matchdays.
const Weekly = 7 * 24 * time.Hour

// AssignDates stamps every round with a matchday starting at start and
// spaced by every. Rounds within a section are consecutive. In double
// elimination the lower bracket starts one matchday after the upper bracket
// (it is fed by upper round 1) and the grand final follows whichever
// bracket finishes last.
func (s *Schedule) AssignDates(start time.Time, every time.Duration) {
	if s.Empty() || start.IsZero() {
		return
	}
	if every <= 0 {
		every = Weekly
	}
	day := func(n int) time.Time {
		return start.Add(time.Duration(n) * every)
	}

	last := -1
	for i := range s.Sections {
		sec := &s.Sections[i]
		offset := 0
		switch sec.ID {
		case SectionLower:
			offset = 1
		case SectionGrandFinal:
			offset = last + 1
		}
		for j := range sec.Rounds {
			sec.Rounds[j].Date = day(offset + j)
			if offset+j > last {
				last = offset + j
			}
		}
	}
	s.dated = true
}
