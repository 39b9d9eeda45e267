package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/slate/internal/dialogue"
	"github.com/abhisek/slate/internal/mastery"
	"github.com/abhisek/slate/internal/store"
)

// snapshotVersion is the current snapshot format version.
const snapshotVersion = 1

// Options configures a new Session.
type Options struct {
	// Gate is the dialogue gate for this session. Required.
	Gate *dialogue.Gate

	// Engine is the mastery engine. Required.
	Engine *mastery.Engine

	// Events receives domain events. Optional; nil disables event logging.
	Events store.EventRepo

	// Snapshots persists mastery state. Optional; nil disables persistence.
	Snapshots store.SnapshotRepo

	// Now overrides the wall clock, for tests.
	Now func() time.Time

	// CheckInThresholds overrides the escalating inactivity thresholds.
	CheckInThresholds []time.Duration
}

// Session owns one student's policy state for the lifetime of a tutoring
// session: one dialogue gate, one mastery engine, and the current mastery
// state. The orchestrator creates one per active student and must
// serialize calls; there is no cross-session sharing.
type Session struct {
	id     string
	gate   *dialogue.Gate
	engine *mastery.Engine
	state  mastery.MasteryState

	events    store.EventRepo
	snapshots store.SnapshotRepo

	now               func() time.Time
	checkInThresholds []time.Duration

	startTime        time.Time
	lastActivity     time.Time
	lastCheckInLevel int

	attemptsServed int
	solvedCount    int
	questionsAsked int
}

// New creates a session, restoring mastery state from the latest
// snapshot. Any load failure falls back to the zeroed default state
// rather than propagating; a fresh student must not be blocked by a
// corrupt snapshot.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Gate == nil || opts.Engine == nil {
		return nil, fmt.Errorf("session: gate and engine are required")
	}

	s := &Session{
		id:                uuid.NewString(),
		gate:              opts.Gate,
		engine:            opts.Engine,
		state:             mastery.NewMasteryState(),
		events:            opts.Events,
		snapshots:         opts.Snapshots,
		now:               opts.Now,
		checkInThresholds: opts.CheckInThresholds,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.checkInThresholds == nil {
		s.checkInThresholds = dialogue.DefaultCheckInThresholds
	}
	s.startTime = s.now()
	s.lastActivity = s.startTime

	if s.snapshots != nil {
		snap, err := s.snapshots.Latest(ctx)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "warning: load snapshot: %v (starting fresh)\n", err)
		case snap != nil:
			s.state = mastery.StateFromSnapshot(snap.Data.Mastery)
		}
	}

	if s.events != nil {
		err := s.events.AppendSession(ctx, store.SessionEventData{
			SessionID: s.id,
			Action:    "start",
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: log session start: %v\n", err)
		}
	}

	return s, nil
}

// ID returns the session UUID.
func (s *Session) ID() string {
	return s.id
}

// Gate returns the session's dialogue gate.
func (s *Session) Gate() *dialogue.Gate {
	return s.gate
}

// MasteryState returns the current mastery state.
func (s *Session) MasteryState() mastery.MasteryState {
	return s.state
}

// Recommended returns the difficulty tier to present next.
func (s *Session) Recommended() mastery.Difficulty {
	return s.state.Recommended
}

// StartProblem resets the gate for a fresh problem.
func (s *Session) StartProblem() {
	s.gate.Reset()
	s.touchActivity()
}

// RecordAttempt folds a completed attempt into the mastery state,
// appends the attempt event, and saves a snapshot. A persistence
// failure is returned to the caller but the in-memory state has already
// advanced and stays valid.
func (s *Session) RecordAttempt(ctx context.Context, attempt mastery.ProblemAttempt) error {
	s.state = s.engine.UpdateState(s.state, attempt)
	s.attemptsServed++
	if attempt.Solved {
		s.solvedCount++
	}

	if s.events != nil {
		err := s.events.AppendAttempt(ctx, store.AttemptEventData{
			SessionID:         s.id,
			ProblemID:         attempt.ProblemID,
			Difficulty:        string(attempt.Difficulty),
			Solved:            attempt.Solved,
			TimeMs:            attempt.TimeSpent.Milliseconds(),
			HintsUsed:         attempt.HintsUsed,
			IncorrectAttempts: attempt.IncorrectAttempts,
		})
		if err != nil {
			return fmt.Errorf("append attempt event: %w", err)
		}
	}

	return s.saveSnapshot(ctx)
}

// AskQuestion runs the gate's decision pipeline for a proactive
// question. On a grant it records the question with the gate and logs
// the event; on a deny nothing changes.
func (s *Session) AskQuestion(ctx context.Context, text string, expectsResponse bool, askCtx dialogue.AskContext) bool {
	decision := s.gate.EvaluateQuestion(askCtx)
	if !decision.Ask {
		return false
	}

	s.gate.RecordQuestion(text, expectsResponse)
	s.questionsAsked++

	if s.events != nil {
		err := s.events.AppendQuestion(ctx, store.QuestionEventData{
			SessionID:       s.id,
			QuestionText:    text,
			ExpectsResponse: expectsResponse,
			State:           string(s.gate.State()),
			Trigger:         string(decision.Reason),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: log question event: %v\n", err)
		}
	}

	return true
}

// OnStudentActivity forwards pen/keyboard activity to the gate and
// resets the inactivity clock.
func (s *Session) OnStudentActivity() {
	s.gate.OnStudentActivity()
	s.touchActivity()
}

// OnStudentPause forwards a detected pause to the gate.
func (s *Session) OnStudentPause() {
	s.gate.OnStudentPause()
}

// OnSpeechStart forwards the start of tutor speech output.
func (s *Session) OnSpeechStart() {
	s.gate.OnSpeechStart()
}

// OnSpeechEnd forwards the end of tutor speech output.
func (s *Session) OnSpeechEnd() {
	s.gate.OnSpeechEnd()
}

// OnStudentResponse forwards a student reply and resets the inactivity clock.
func (s *Session) OnStudentResponse(text string) {
	s.gate.OnStudentResponse(text)
	s.touchActivity()
}

// InactivityCheckIn reports the current check-in level and whether the
// tutor should speak up for it. A level fires at most once; the student
// must cross the next threshold (or become active again) before another
// check-in is considered.
func (s *Session) InactivityCheckIn() (int, bool) {
	inactivity := s.now().Sub(s.lastActivity)
	level := dialogue.CheckInLevel(inactivity, s.checkInThresholds)
	if level == 0 || level == s.lastCheckInLevel {
		return level, false
	}
	s.lastCheckInLevel = level
	return level, s.gate.ShouldRespondToCheckIn(inactivity, level)
}

// Close records the session-end event with final totals.
func (s *Session) Close(ctx context.Context) error {
	if s.events == nil {
		return nil
	}
	err := s.events.AppendSession(ctx, store.SessionEventData{
		SessionID:      s.id,
		Action:         "end",
		AttemptsServed: s.attemptsServed,
		SolvedCount:    s.solvedCount,
		QuestionsAsked: s.questionsAsked,
		DurationSecs:   int(s.now().Sub(s.startTime).Seconds()),
	})
	if err != nil {
		return fmt.Errorf("append session end: %w", err)
	}
	return nil
}

func (s *Session) touchActivity() {
	s.lastActivity = s.now()
	s.lastCheckInLevel = 0
}

func (s *Session) saveSnapshot(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	err := s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  int64(s.attemptsServed),
		Timestamp: s.now(),
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Mastery: s.state.ToSnapshot(),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
