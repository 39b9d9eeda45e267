package dialogue

import (
	"testing"
	"time"
)

func TestCheckInLevel(t *testing.T) {
	tests := []struct {
		inactivity time.Duration
		want       int
	}{
		{10 * time.Second, 0},
		{30 * time.Second, 1},
		{45 * time.Second, 1},
		{60 * time.Second, 2},
		{120 * time.Second, 3},
		{10 * time.Minute, 3},
	}

	for _, tt := range tests {
		got := CheckInLevel(tt.inactivity, DefaultCheckInThresholds)
		if got != tt.want {
			t.Errorf("CheckInLevel(%s) = %d, want %d", tt.inactivity, got, tt.want)
		}
	}
}

func TestShouldRespondToCheckIn_Disabled(t *testing.T) {
	g := testGate(newFakeClock())
	enabled := false
	g.UpdateConfig(ConfigUpdate{CheckInOnInactivity: &enabled})

	for level := 1; level <= 3; level++ {
		if g.ShouldRespondToCheckIn(time.Minute, level) {
			t.Errorf("level %d: expected false when check-ins are disabled", level)
		}
	}
}

// Level 2 is skipped on purpose so the tutor does not speak at every
// threshold crossing.
func TestShouldRespondToCheckIn_LevelPolicy(t *testing.T) {
	g := testGate(newFakeClock())

	tests := []struct {
		level int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{3, true},
		{4, false},
	}

	for _, tt := range tests {
		got := g.ShouldRespondToCheckIn(time.Minute, tt.level)
		if got != tt.want {
			t.Errorf("level %d = %v, want %v", tt.level, got, tt.want)
		}
	}
}
