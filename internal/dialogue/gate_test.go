package dialogue

import (
	"testing"
	"time"
)

// fakeClock is a controllable clock for timing-dependent gate tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// fixedRand returns a gate option that always draws the given value.
func fixedRand(v float64) Option {
	return WithRand(func() float64 { return v })
}

// testGate builds a gate with generous limits so individual tests can
// tighten the single knob they exercise.
func testGate(clock *fakeClock, opts ...Option) *Gate {
	cfg := Config{
		Mode:                         ModeConversational,
		MinTimeBetweenQuestions:      0,
		MaxQuestionsPerMinute:        100,
		SpeakingCooldown:             0,
		StrategicQuestionProbability: 0.3,
		AlwaysAskOnStrategicMoment:   true,
		CheckInOnInactivity:          true,
	}
	allOpts := append([]Option{WithClock(clock.Now)}, opts...)
	return NewGate(cfg, allOpts...)
}

func TestGate_InitialState(t *testing.T) {
	g := testGate(newFakeClock())
	if g.State() != StateIdle {
		t.Errorf("initial state = %s, want idle", g.State())
	}
}

func TestGate_StateTransitions(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)

	g.Reset()
	g.OnStudentActivity()
	if g.State() != StateWorking {
		t.Errorf("after activity: state = %s, want working", g.State())
	}

	g.OnSpeechStart()
	if g.State() != StateSpeaking {
		t.Errorf("after speech start: state = %s, want speaking", g.State())
	}

	// Activity is ignored while the tutor is speaking.
	g.OnStudentActivity()
	if g.State() != StateSpeaking {
		t.Errorf("activity during speaking: state = %s, want speaking", g.State())
	}
}

func TestGate_SpeechEndRoutesByWaiting(t *testing.T) {
	clock := newFakeClock()

	g := testGate(clock)
	g.RecordQuestion("what next?", true)
	g.OnSpeechStart()
	g.OnSpeechEnd()
	if g.State() != StateListening {
		t.Errorf("awaiting response: state = %s, want listening", g.State())
	}

	g = testGate(clock)
	g.RecordQuestion("notice anything?", false)
	g.OnSpeechStart()
	g.OnSpeechEnd()
	if g.State() != StateWorking {
		t.Errorf("no response expected: state = %s, want working", g.State())
	}
}

func TestGate_PauseOnlyFromWorking(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)

	g.OnStudentPause()
	if g.State() != StateIdle {
		t.Errorf("pause from idle: state = %s, want idle", g.State())
	}

	g.OnStudentActivity()
	g.OnStudentPause()
	if g.State() != StatePaused {
		t.Errorf("pause from working: state = %s, want paused", g.State())
	}
}

func TestGate_ResponseClearsWaiting(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)

	g.RecordQuestion("how many sides?", true)
	if !g.WaitingForResponse() {
		t.Fatal("expected gate to wait for a response")
	}
	g.OnStudentResponse("four")
	if g.WaitingForResponse() {
		t.Error("response should clear waiting flag")
	}
	if g.State() != StateWorking {
		t.Errorf("after response: state = %s, want working", g.State())
	}
}

func TestShouldAskQuestion_SilentModes(t *testing.T) {
	clock := newFakeClock()
	ctx := AskContext{StrategicMoment: true, ConsecutiveErrors: 5}

	for _, mode := range []Mode{ModeSilent, ModeHintsOnly} {
		g := testGate(clock)
		m := mode
		g.UpdateConfig(ConfigUpdate{Mode: &m})
		if g.ShouldAskQuestion(ctx) {
			t.Errorf("mode %s: expected false regardless of context", mode)
		}
	}
}

func TestShouldAskQuestion_NeverWhileSpeakingOrListening(t *testing.T) {
	clock := newFakeClock()
	ctx := AskContext{StrategicMoment: true, ConsecutiveErrors: 5}

	g := testGate(clock)
	g.OnSpeechStart()
	if g.ShouldAskQuestion(ctx) {
		t.Error("speaking: expected false")
	}

	g = testGate(clock)
	g.RecordQuestion("q", true)
	g.OnSpeechStart()
	clock.Advance(time.Minute) // cooldowns satisfied, state still blocks
	g.OnSpeechEnd()
	if g.State() != StateListening {
		t.Fatalf("state = %s, want listening", g.State())
	}
	clock.Advance(time.Minute)
	if g.ShouldAskQuestion(ctx) {
		t.Error("listening: expected false")
	}
}

func TestShouldAskQuestion_SpeakingCooldown(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)
	cd := 3 * time.Second
	g.UpdateConfig(ConfigUpdate{SpeakingCooldown: &cd})

	g.OnSpeechStart()
	g.OnSpeechEnd()

	clock.Advance(time.Second)
	if g.ShouldAskQuestion(AskContext{StrategicMoment: true}) {
		t.Error("within speaking cooldown: expected false")
	}

	clock.Advance(3 * time.Second)
	if !g.ShouldAskQuestion(AskContext{StrategicMoment: true}) {
		t.Error("past speaking cooldown: expected true")
	}
}

func TestShouldAskQuestion_CooldownBeatsStuckOverride(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)
	gap := 15 * time.Second
	g.UpdateConfig(ConfigUpdate{MinTimeBetweenQuestions: &gap})

	g.RecordQuestion("first", false)
	clock.Advance(5 * time.Second)

	// The stuck override is evaluated after the hard gates, so a stuck
	// student still waits out the question cooldown.
	d := g.EvaluateQuestion(AskContext{ConsecutiveErrors: 3})
	if d.Ask {
		t.Error("within question cooldown: expected false even when stuck")
	}
	if d.Reason != ReasonQuestionCooldown {
		t.Errorf("reason = %s, want %s", d.Reason, ReasonQuestionCooldown)
	}

	clock.Advance(11 * time.Second)
	d = g.EvaluateQuestion(AskContext{ConsecutiveErrors: 3})
	if !d.Ask {
		t.Error("past cooldown: expected true for stuck student")
	}
	if d.Reason != ReasonStuck {
		t.Errorf("reason = %s, want %s", d.Reason, ReasonStuck)
	}
}

func TestShouldAskQuestion_RateLimit(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)
	maxPerMin := 2
	g.UpdateConfig(ConfigUpdate{MaxQuestionsPerMinute: &maxPerMin})

	for i := 0; i < 3; i++ {
		g.RecordQuestion("q", false)
		clock.Advance(5 * time.Second)
	}

	d := g.EvaluateQuestion(AskContext{StrategicMoment: true})
	if d.Ask {
		t.Error("three questions in 10s with cap 2: expected false")
	}
	if d.Reason != ReasonRateLimit {
		t.Errorf("reason = %s, want %s", d.Reason, ReasonRateLimit)
	}

	// Past 60s from the first recorded question the window drains.
	clock.Advance(50 * time.Second)
	if !g.ShouldAskQuestion(AskContext{StrategicMoment: true}) {
		t.Error("after window drained: expected true")
	}
}

func TestShouldAskQuestion_StuckOverridesProbability(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock, fixedRand(0.99)) // probability draw would fail

	if !g.ShouldAskQuestion(AskContext{ConsecutiveErrors: 2}) {
		t.Error("two consecutive errors: expected true regardless of draw")
	}
	if g.ShouldAskQuestion(AskContext{ConsecutiveErrors: 1}) {
		t.Error("one error, no trigger: expected false")
	}
}

func TestShouldAskQuestion_StrategicMoment(t *testing.T) {
	clock := newFakeClock()

	g := testGate(clock, fixedRand(0.99))
	if !g.ShouldAskQuestion(AskContext{StrategicMoment: true}) {
		t.Error("strategic moment with alwaysAsk: expected true")
	}

	always := false
	g.UpdateConfig(ConfigUpdate{AlwaysAskOnStrategicMoment: &always})
	if g.ShouldAskQuestion(AskContext{StrategicMoment: true}) {
		t.Error("strategic moment without alwaysAsk or correct step: expected false")
	}
}

func TestShouldAskQuestion_ProbabilityDraw(t *testing.T) {
	clock := newFakeClock()

	g := testGate(clock, fixedRand(0.2)) // below 0.3 probability
	if !g.ShouldAskQuestion(AskContext{CorrectStep: true}) {
		t.Error("draw 0.2 < 0.3: expected true")
	}

	g = testGate(clock, fixedRand(0.9))
	if g.ShouldAskQuestion(AskContext{CorrectStep: true}) {
		t.Error("draw 0.9 >= 0.3: expected false")
	}
}

func TestShouldAskQuestion_NoTrigger(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)

	d := g.EvaluateQuestion(AskContext{})
	if d.Ask {
		t.Error("no trigger: expected false")
	}
	if d.Reason != ReasonNoTrigger {
		t.Errorf("reason = %s, want %s", d.Reason, ReasonNoTrigger)
	}
}

func TestRecordQuestion_UpdatesWindow(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)

	g.RecordQuestion("what is a vertex?", true)
	if g.LastQuestion() != "what is a vertex?" {
		t.Errorf("last question = %q", g.LastQuestion())
	}
	if len(g.questionTimes) != 1 {
		t.Errorf("window length = %d, want 1", len(g.questionTimes))
	}

	// Entries older than the trailing minute are pruned on record.
	clock.Advance(2 * time.Minute)
	g.RecordQuestion("and an edge?", false)
	if len(g.questionTimes) != 1 {
		t.Errorf("window length after prune = %d, want 1", len(g.questionTimes))
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)

	g.OnStudentActivity()
	g.RecordQuestion("q", true)
	g.OnSpeechStart()
	g.OnSpeechEnd()

	g.Reset()

	if g.State() != StateIdle {
		t.Errorf("state = %s, want idle", g.State())
	}
	if g.WaitingForResponse() {
		t.Error("waiting flag should be cleared")
	}
	if !g.lastQuestionTime.IsZero() || !g.lastSpeechEndTime.IsZero() {
		t.Error("timers should be zeroed")
	}
	if len(g.questionTimes) != 0 {
		t.Error("question window should be empty")
	}
}

func TestUpdateConfig_PartialMerge(t *testing.T) {
	clock := newFakeClock()
	g := testGate(clock)
	before := g.Config()

	newCap := 7
	g.UpdateConfig(ConfigUpdate{MaxQuestionsPerMinute: &newCap})

	after := g.Config()
	if after.MaxQuestionsPerMinute != 7 {
		t.Errorf("MaxQuestionsPerMinute = %d, want 7", after.MaxQuestionsPerMinute)
	}
	if after.Mode != before.Mode ||
		after.SpeakingCooldown != before.SpeakingCooldown ||
		after.StrategicQuestionProbability != before.StrategicQuestionProbability {
		t.Error("unset fields must keep their previous values")
	}
}
