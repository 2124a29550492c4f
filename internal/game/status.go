package game

import "fmt"

// Status is a point-in-time snapshot of a session's progress.
type Status struct {
	Found     int // revealed positions
	Total     int // length of the target
	Missed    int // distinct missed letters
	MaxMisses int
}

// IsWon reports whether every position of the target is revealed.
func (s Status) IsWon() bool {
	return s.Found >= s.Total
}

// IsLost reports whether the miss limit has been reached.
func (s Status) IsLost() bool {
	return s.Missed >= s.MaxMisses
}

// IsOver reports whether the game has been won or lost.
func (s Status) IsOver() bool {
	return s.IsWon() || s.IsLost()
}

// Remaining returns how many more misses are allowed before losing.
func (s Status) Remaining() int {
	return max(s.MaxMisses-s.Missed, 0)
}

// MissRatio returns Missed/MaxMisses clamped to [0, 1].
func (s Status) MissRatio() float64 {
	if s.MaxMisses <= 0 {
		return 1
	}
	return min(float64(s.Missed)/float64(s.MaxMisses), 1)
}

func (s Status) String() string {
	return fmt.Sprintf("Found %d/%d | Lost Attempts %d/%d", s.Found, s.Total, s.Missed, s.MaxMisses)
}
