package booking

import "time"

// Overlaps reports whether the half-open intervals [s, e) and [cs, ce)
// intersect. Touching endpoints (one booking ending exactly when another
// starts) do not count as a conflict.
func Overlaps(s, e, cs, ce time.Time) bool {
	return s.Before(ce) && e.After(cs)
}
