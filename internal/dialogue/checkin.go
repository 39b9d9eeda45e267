package dialogue

import "time"

// DefaultCheckInThresholds are the escalating inactivity thresholds.
// Crossing threshold N puts the session at check-in level N+1.
var DefaultCheckInThresholds = []time.Duration{
	30 * time.Second,
	60 * time.Second,
	120 * time.Second,
}

// CheckInLevel maps an inactivity duration to the highest threshold
// crossed, or 0 if the student has been active recently enough.
func CheckInLevel(inactivity time.Duration, thresholds []time.Duration) int {
	level := 0
	for i, th := range thresholds {
		if inactivity >= th {
			level = i + 1
		}
	}
	return level
}

// ShouldRespondToCheckIn reports whether the tutor should speak up for
// the given check-in level. Level 2 is deliberately skipped so the tutor
// does not nag at every threshold crossing: the student hears a gentle
// prompt at level 1 and a firmer one at level 3, with a quiet gap between.
func (g *Gate) ShouldRespondToCheckIn(inactivity time.Duration, checkInLevel int) bool {
	if !g.config.CheckInOnInactivity {
		return false
	}
	return checkInLevel == 1 || checkInLevel == 3
}
