package dialogue

import "time"

// Config holds the recognized dialogue gate options.
type Config struct {
	// Mode controls whether proactive questions are allowed at all.
	Mode Mode

	// MinTimeBetweenQuestions is the minimum gap since the last recorded question.
	MinTimeBetweenQuestions time.Duration

	// MaxQuestionsPerMinute caps questions within any trailing 60s window.
	MaxQuestionsPerMinute int

	// SpeakingCooldown is the minimum gap since speech output last ended.
	SpeakingCooldown time.Duration

	// StrategicQuestionProbability is the chance of asking at a
	// non-strategic correct-step moment, in [0,1].
	StrategicQuestionProbability float64

	// AlwaysAskOnStrategicMoment bypasses the probability gate (but not
	// the rate/cooldown gates) at strategic moments.
	AlwaysAskOnStrategicMoment bool

	// CheckInOnInactivity enables inactivity check-ins.
	CheckInOnInactivity bool
}

// DefaultConfig returns sensible defaults for a conversational session.
func DefaultConfig() Config {
	return Config{
		Mode:                         ModeConversational,
		MinTimeBetweenQuestions:      15 * time.Second,
		MaxQuestionsPerMinute:        2,
		SpeakingCooldown:             3 * time.Second,
		StrategicQuestionProbability: 0.3,
		AlwaysAskOnStrategicMoment:   true,
		CheckInOnInactivity:          true,
	}
}

// ConfigUpdate carries a partial configuration change. Nil fields keep
// the previous value, so callers can adjust a single knob without
// restating the rest.
type ConfigUpdate struct {
	Mode                         *Mode
	MinTimeBetweenQuestions      *time.Duration
	MaxQuestionsPerMinute        *int
	SpeakingCooldown             *time.Duration
	StrategicQuestionProbability *float64
	AlwaysAskOnStrategicMoment   *bool
	CheckInOnInactivity          *bool
}

// apply merges the update into cfg and returns the result.
func (u ConfigUpdate) apply(cfg Config) Config {
	if u.Mode != nil {
		cfg.Mode = *u.Mode
	}
	if u.MinTimeBetweenQuestions != nil {
		cfg.MinTimeBetweenQuestions = *u.MinTimeBetweenQuestions
	}
	if u.MaxQuestionsPerMinute != nil {
		cfg.MaxQuestionsPerMinute = *u.MaxQuestionsPerMinute
	}
	if u.SpeakingCooldown != nil {
		cfg.SpeakingCooldown = *u.SpeakingCooldown
	}
	if u.StrategicQuestionProbability != nil {
		cfg.StrategicQuestionProbability = *u.StrategicQuestionProbability
	}
	if u.AlwaysAskOnStrategicMoment != nil {
		cfg.AlwaysAskOnStrategicMoment = *u.AlwaysAskOnStrategicMoment
	}
	if u.CheckInOnInactivity != nil {
		cfg.CheckInOnInactivity = *u.CheckInOnInactivity
	}
	return cfg
}
