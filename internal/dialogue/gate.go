package dialogue

import (
	"math/rand"
	"time"
)

// questionRateWindow is the trailing window used for the per-minute cap.
const questionRateWindow = time.Minute

// stuckErrorThreshold is the consecutive-error count at which the gate
// always grants a question (subject to the hard rate/cooldown gates).
const stuckErrorThreshold = 2

// AskContext describes the moment the orchestrator is considering
// asking a guiding question at.
type AskContext struct {
	// StrategicMoment marks a structurally significant solving step
	// (before distribution, combining like terms, etc).
	StrategicMoment bool

	// CorrectStep is true when the student just completed a correct step.
	CorrectStep bool

	// ConsecutiveErrors counts errors since the last correct step.
	ConsecutiveErrors int
}

// Reason explains why a question was granted or denied.
type Reason string

const (
	ReasonMode             Reason = "mode"
	ReasonState            Reason = "state"
	ReasonSpeechCooldown   Reason = "speech-cooldown"
	ReasonQuestionCooldown Reason = "question-cooldown"
	ReasonRateLimit        Reason = "rate-limit"
	ReasonStuck            Reason = "stuck"
	ReasonStrategic        Reason = "strategic"
	ReasonProbability      Reason = "probability"
	ReasonNoTrigger        Reason = "no-trigger"
)

// Decision is the outcome of a single question evaluation.
type Decision struct {
	Ask    bool
	Reason Reason
}

// Gate decides whether this is an acceptable moment to speak unprompted.
// One gate serves one student session; calls must be serialized by the
// orchestrator, the gate itself takes no locks.
type Gate struct {
	config Config
	state  ConversationState

	lastQuestionTime   time.Time
	lastSpeechEndTime  time.Time
	waitingForResponse bool
	lastQuestion       string
	questionTimes      []time.Time

	now       func() time.Time
	randFloat func() float64
}

// Option configures a Gate at construction.
type Option func(*Gate)

// WithClock replaces the wall clock, for timing-dependent tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// WithRand replaces the uniform [0,1) draw used by the probability gate.
func WithRand(draw func() float64) Option {
	return func(g *Gate) { g.randFloat = draw }
}

// NewGate creates a gate in the idle state.
func NewGate(cfg Config, opts ...Option) *Gate {
	g := &Gate{
		config:    cfg,
		state:     StateIdle,
		now:       time.Now,
		randFloat: rand.Float64,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the current conversation state.
func (g *Gate) State() ConversationState {
	return g.state
}

// Config returns the active configuration.
func (g *Gate) Config() Config {
	return g.config
}

// UpdateConfig merges a partial update into the active configuration.
// Unset fields keep their previous values.
func (g *Gate) UpdateConfig(update ConfigUpdate) {
	g.config = update.apply(g.config)
}

// WaitingForResponse reports whether a previously asked question still
// expects a student answer.
func (g *Gate) WaitingForResponse() bool {
	return g.waitingForResponse
}

// OnSpeechStart transitions to speaking from any state.
func (g *Gate) OnSpeechStart() {
	g.state = StateSpeaking
}

// OnSpeechEnd records the end of speech output. If a response is awaited
// the gate listens, otherwise the student is assumed back at work.
func (g *Gate) OnSpeechEnd() {
	g.lastSpeechEndTime = g.now()
	if g.waitingForResponse {
		g.state = StateListening
	} else {
		g.state = StateWorking
	}
}

// OnStudentActivity notes pen or keyboard activity. Ignored while
// speaking so output is never cut short by a stray stroke.
func (g *Gate) OnStudentActivity() {
	if g.state == StateSpeaking {
		return
	}
	g.state = StateWorking
	g.waitingForResponse = false
}

// OnStudentPause transitions working to paused. Other states are unaffected.
func (g *Gate) OnStudentPause() {
	if g.state == StateWorking {
		g.state = StatePaused
	}
}

// OnStudentResponse consumes a spoken or typed student reply.
func (g *Gate) OnStudentResponse(text string) {
	g.waitingForResponse = false
	g.state = StateWorking
}

// Reset returns the gate to idle and clears all timers and the question
// window. Called when a new problem starts.
func (g *Gate) Reset() {
	g.state = StateIdle
	g.lastQuestionTime = time.Time{}
	g.lastSpeechEndTime = time.Time{}
	g.waitingForResponse = false
	g.lastQuestion = ""
	g.questionTimes = nil
}

// ShouldAskQuestion reports whether a proactive question may be asked now.
func (g *Gate) ShouldAskQuestion(ctx AskContext) bool {
	return g.EvaluateQuestion(ctx).Ask
}

// EvaluateQuestion runs the decision pipeline and returns the outcome
// with the rule that settled it. Rules short-circuit in order: the hard
// gates (mode, state, cooldowns, rate limit) always win over the stuck
// override and the strategic/probability triggers.
func (g *Gate) EvaluateQuestion(ctx AskContext) Decision {
	if g.config.Mode == ModeSilent || g.config.Mode == ModeHintsOnly {
		return Decision{Ask: false, Reason: ReasonMode}
	}

	if g.state == StateSpeaking || g.state == StateListening {
		return Decision{Ask: false, Reason: ReasonState}
	}

	now := g.now()

	if !g.lastSpeechEndTime.IsZero() && now.Sub(g.lastSpeechEndTime) < g.config.SpeakingCooldown {
		return Decision{Ask: false, Reason: ReasonSpeechCooldown}
	}

	if !g.lastQuestionTime.IsZero() && now.Sub(g.lastQuestionTime) < g.config.MinTimeBetweenQuestions {
		return Decision{Ask: false, Reason: ReasonQuestionCooldown}
	}

	g.pruneQuestionWindow(now)
	if len(g.questionTimes) >= g.config.MaxQuestionsPerMinute {
		return Decision{Ask: false, Reason: ReasonRateLimit}
	}

	if ctx.ConsecutiveErrors >= stuckErrorThreshold {
		return Decision{Ask: true, Reason: ReasonStuck}
	}

	if ctx.StrategicMoment && g.config.AlwaysAskOnStrategicMoment {
		return Decision{Ask: true, Reason: ReasonStrategic}
	}

	if ctx.CorrectStep {
		if g.randFloat() < g.config.StrategicQuestionProbability {
			return Decision{Ask: true, Reason: ReasonProbability}
		}
		return Decision{Ask: false, Reason: ReasonProbability}
	}

	return Decision{Ask: false, Reason: ReasonNoTrigger}
}

// RecordQuestion marks a question as asked now, updating the cooldown
// timer and the rate window.
func (g *Gate) RecordQuestion(question string, expectsResponse bool) {
	now := g.now()
	g.lastQuestionTime = now
	g.lastQuestion = question
	g.waitingForResponse = expectsResponse
	g.questionTimes = append(g.questionTimes, now)
	g.pruneQuestionWindow(now)
}

// LastQuestion returns the most recently recorded question text.
func (g *Gate) LastQuestion() string {
	return g.lastQuestion
}

// pruneQuestionWindow drops timestamps older than the trailing rate window.
func (g *Gate) pruneQuestionWindow(now time.Time) {
	cutoff := now.Add(-questionRateWindow)
	kept := g.questionTimes[:0]
	for _, ts := range g.questionTimes {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	g.questionTimes = kept
}
