package domain

import "time"

// HasConflict reports whether a candidate interval overlaps any existing slot.
//
// The check uses strict inequalities, so intervals that merely touch
// (candidate start == existing end, or the reverse) do not conflict.
// Mode is intentionally not part of the comparison: a single practitioner
// serves one calendar, so an online and an offline slot cannot share time.
//
// Caller must guarantee candidateStart < candidateEnd
func HasConflict(candidateStart, candidateEnd time.Time, slots []*Slot) bool {
	for _, s := range slots {
		if s.Overlaps(candidateStart, candidateEnd) {
			return true
		}
	}
	return false
}
