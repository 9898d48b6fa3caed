package domain

import "github.com/seminarhub/hall-booking-service/pkg/types"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely touch do not overlap:
//
//   - 10:00-11:00 vs 11:00-12:00 -> false (boundary)
//   - 09:00-12:00 vs 10:00-11:00 -> true  (containment)
//   - 09:00-11:00 vs 10:00-12:00 -> true  (partial)
//   - 10:00-11:00 vs 10:00-10:30 -> true  (equal starts)
//
// Every conflict decision in the service goes through this single predicate.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}
