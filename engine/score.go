package engine

import "fmt"

// Score is the pickup count of the active episode
type Score struct {
	value int
}

// Value returns the current count
func (s *Score) Value() int {
	return s.value
}

// Add increases the count by n
// A negative n is a programming defect and panics
func (s *Score) Add(n int) {
	if n < 0 {
		panic(fmt.Sprintf("score: invariant violated, negative increment %d", n))
	}
	s.value += n
}

// Reset zeroes the count
func (s *Score) Reset() {
	s.value = 0
}
