/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teams

import "fmt"

// EmptyTierError is returned when a visible tier has no candidates.
type EmptyTierError struct {
	Tier TierKey
}

func (e *EmptyTierError) Error() string {
	if n := e.Tier.Index(); n != 0 {
		return fmt.Sprintf("tier %d is empty", n)
	}
	return fmt.Sprintf("tier %q is empty", string(e.Tier))
}

// UnsatisfiableConstraintsError is returned when the search runs out of
// branches without completing every team.
type UnsatisfiableConstraintsError struct {
	TeamCount  int
	AvoidCount int
}

func (e *UnsatisfiableConstraintsError) Error() string {
	return fmt.Sprintf("no combination of %d teams satisfies the %d avoid rules; try relaxing the rules",
		e.TeamCount, e.AvoidCount)
}

// Is matches any UnsatisfiableConstraintsError so callers can test with
// errors.Is(err, ErrUnsatisfiable).
func (e *UnsatisfiableConstraintsError) Is(target error) bool {
	_, ok := target.(*UnsatisfiableConstraintsError)
	return ok
}

var ErrUnsatisfiable error = &UnsatisfiableConstraintsError{}
