package transect

import "slices"

// Store is the ordered record of admitted intervals for one session.
// It is not safe for concurrent use; a session has a single writer.
type Store struct {
	intervals []Interval
}

func NewStore(intervals ...Interval) *Store {
	return &Store{intervals: slices.Clone(intervals)}
}

func (s *Store) Append(i Interval) {
	s.intervals = append(s.intervals, i)
}

// RemoveLast pops the most recent interval. On an empty store it does
// nothing and reports false.
func (s *Store) RemoveLast() (Interval, bool) {
	n := len(s.intervals)
	if n == 0 {
		return Interval{}, false
	}
	last := s.intervals[n-1]
	s.intervals = s.intervals[:n-1]
	return last, true
}

func (s *Store) Clear() {
	s.intervals = nil
}

// All returns a copy of the intervals in insertion order.
func (s *Store) All() []Interval {
	return slices.Clone(s.intervals)
}

func (s *Store) Len() int {
	return len(s.intervals)
}

func (s *Store) Last() (Interval, bool) {
	if len(s.intervals) == 0 {
		return Interval{}, false
	}
	return s.intervals[len(s.intervals)-1], true
}
