package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/slate/internal/dialogue"
	"github.com/abhisek/slate/internal/mastery"
	"github.com/abhisek/slate/internal/store"
)

// fakeEventRepo captures appended events in memory.
type fakeEventRepo struct {
	attempts  []store.AttemptEventData
	questions []store.QuestionEventData
	sessions  []store.SessionEventData
}

func (f *fakeEventRepo) AppendAttempt(ctx context.Context, data store.AttemptEventData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeEventRepo) AppendQuestion(ctx context.Context, data store.QuestionEventData) error {
	f.questions = append(f.questions, data)
	return nil
}

func (f *fakeEventRepo) AppendSession(ctx context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEventRepo) RecentAttempts(ctx context.Context, limit int) ([]store.AttemptEventData, error) {
	return f.attempts, nil
}

func (f *fakeEventRepo) AttemptTotals(ctx context.Context) ([]store.AttemptTotals, error) {
	return nil, nil
}

func (f *fakeEventRepo) QuestionCount(ctx context.Context) (int, error) {
	return len(f.questions), nil
}

// fakeSnapshotRepo keeps snapshots in memory.
type fakeSnapshotRepo struct {
	saved   []*store.Snapshot
	loadErr error
	saveErr error
}

func (f *fakeSnapshotRepo) Save(ctx context.Context, snap *store.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(ctx context.Context) (*store.Snapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshotRepo) Prune(ctx context.Context, keep int) error {
	return nil
}

func testOptions(clock *simTestClock, events *fakeEventRepo, snaps *fakeSnapshotRepo) Options {
	cfg := dialogue.DefaultConfig()
	cfg.MinTimeBetweenQuestions = 0
	cfg.SpeakingCooldown = 0
	return Options{
		Gate:      dialogue.NewGate(cfg, dialogue.WithClock(clock.Now), dialogue.WithRand(func() float64 { return 0 })),
		Engine:    mastery.NewEngine(mastery.DefaultThresholds()),
		Events:    events,
		Snapshots: snaps,
		Now:       clock.Now,
	}
}

type simTestClock struct {
	t time.Time
}

func newTestClock() *simTestClock {
	return &simTestClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *simTestClock) Now() time.Time          { return c.t }
func (c *simTestClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func solvedAttempt(id string, d mastery.Difficulty) mastery.ProblemAttempt {
	return mastery.ProblemAttempt{
		ProblemID:  id,
		Difficulty: d,
		Solved:     true,
		TimeSpent:  40 * time.Second,
		Timestamp:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNew_FreshStudent(t *testing.T) {
	events := &fakeEventRepo{}
	sess, err := New(context.Background(), testOptions(newTestClock(), events, &fakeSnapshotRepo{}))
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID())
	assert.Equal(t, mastery.DifficultyEasy, sess.Recommended())
	require.Len(t, events.sessions, 1)
	assert.Equal(t, "start", events.sessions[0].Action)
}

func TestNew_RequiresGateAndEngine(t *testing.T) {
	_, err := New(context.Background(), Options{})
	require.Error(t, err)
}

func TestNew_LoadFailureFallsBackToDefault(t *testing.T) {
	snaps := &fakeSnapshotRepo{loadErr: errors.New("corrupt page")}
	sess, err := New(context.Background(), testOptions(newTestClock(), &fakeEventRepo{}, snaps))
	require.NoError(t, err, "a corrupt snapshot must not block the session")

	state := sess.MasteryState()
	assert.Empty(t, state.RecentAttempts)
	assert.Equal(t, mastery.DifficultyEasy, state.Recommended)
}

func TestRecordAttempt_PersistsEventAndSnapshot(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	sess, err := New(ctx, testOptions(newTestClock(), events, snaps))
	require.NoError(t, err)

	require.NoError(t, sess.RecordAttempt(ctx, solvedAttempt("p-1", mastery.DifficultyEasy)))

	require.Len(t, events.attempts, 1)
	assert.Equal(t, sess.ID(), events.attempts[0].SessionID)
	assert.Equal(t, "easy", events.attempts[0].Difficulty)
	assert.True(t, events.attempts[0].Solved)

	require.Len(t, snaps.saved, 1)
	require.NotNil(t, snaps.saved[0].Data.Mastery)
	assert.Equal(t, 1, snaps.saved[0].Data.Mastery.ConsecutiveSolved)
}

func TestRecordAttempt_SaveFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	snaps := &fakeSnapshotRepo{saveErr: errors.New("disk full")}
	sess, err := New(ctx, testOptions(newTestClock(), &fakeEventRepo{}, snaps))
	require.NoError(t, err)

	err = sess.RecordAttempt(ctx, solvedAttempt("p-1", mastery.DifficultyEasy))
	require.Error(t, err, "save failure must be reported")

	// The in-memory state already advanced and stays valid.
	state := sess.MasteryState()
	assert.Len(t, state.RecentAttempts, 1)
	assert.Equal(t, 1, state.ConsecutiveSolved)
}

func TestStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	snaps := &fakeSnapshotRepo{}
	clock := newTestClock()

	sess, err := New(ctx, testOptions(clock, &fakeEventRepo{}, snaps))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, sess.RecordAttempt(ctx, solvedAttempt("p", mastery.DifficultyEasy)))
	}
	require.Equal(t, mastery.DifficultyMedium, sess.Recommended())

	// A new session revives the persisted mastery state.
	revived, err := New(ctx, testOptions(clock, &fakeEventRepo{}, snaps))
	require.NoError(t, err)
	assert.Equal(t, mastery.DifficultyMedium, revived.Recommended())
	assert.Len(t, revived.MasteryState().RecentAttempts, 10)
}

func TestAskQuestion_GrantRecordsEvent(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	sess, err := New(ctx, testOptions(newTestClock(), events, &fakeSnapshotRepo{}))
	require.NoError(t, err)

	asked := sess.AskQuestion(ctx, "what shape is this?", true, dialogue.AskContext{StrategicMoment: true})
	require.True(t, asked)
	require.Len(t, events.questions, 1)
	assert.Equal(t, "what shape is this?", events.questions[0].QuestionText)
	assert.Equal(t, string(dialogue.ReasonStrategic), events.questions[0].Trigger)
	assert.True(t, sess.Gate().WaitingForResponse())
}

func TestAskQuestion_DenyLeavesGateUntouched(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	opts := testOptions(newTestClock(), events, &fakeSnapshotRepo{})
	sess, err := New(ctx, opts)
	require.NoError(t, err)

	sess.OnSpeechStart()
	asked := sess.AskQuestion(ctx, "q", false, dialogue.AskContext{StrategicMoment: true})
	assert.False(t, asked)
	assert.Empty(t, events.questions)
}

func TestInactivityCheckIn_FiresOncePerLevel(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	sess, err := New(ctx, testOptions(clock, &fakeEventRepo{}, &fakeSnapshotRepo{}))
	require.NoError(t, err)

	level, ask := sess.InactivityCheckIn()
	assert.Equal(t, 0, level)
	assert.False(t, ask)

	// Cross the first threshold: level 1 fires once.
	clock.Advance(31 * time.Second)
	level, ask = sess.InactivityCheckIn()
	assert.Equal(t, 1, level)
	assert.True(t, ask)

	level, ask = sess.InactivityCheckIn()
	assert.Equal(t, 1, level)
	assert.False(t, ask, "same level must not fire twice")

	// Level 2 is the deliberate quiet gap.
	clock.Advance(30 * time.Second)
	level, ask = sess.InactivityCheckIn()
	assert.Equal(t, 2, level)
	assert.False(t, ask)

	// Level 3 speaks again.
	clock.Advance(60 * time.Second)
	level, ask = sess.InactivityCheckIn()
	assert.Equal(t, 3, level)
	assert.True(t, ask)

	// Activity resets the ladder.
	sess.OnStudentActivity()
	level, ask = sess.InactivityCheckIn()
	assert.Equal(t, 0, level)
	assert.False(t, ask)
}

func TestStartProblem_ResetsGate(t *testing.T) {
	ctx := context.Background()
	sess, err := New(ctx, testOptions(newTestClock(), &fakeEventRepo{}, &fakeSnapshotRepo{}))
	require.NoError(t, err)

	sess.OnStudentActivity()
	require.Equal(t, dialogue.StateWorking, sess.Gate().State())

	sess.StartProblem()
	assert.Equal(t, dialogue.StateIdle, sess.Gate().State())
}

func TestClose_RecordsTotals(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	clock := newTestClock()
	sess, err := New(ctx, testOptions(clock, events, &fakeSnapshotRepo{}))
	require.NoError(t, err)

	require.NoError(t, sess.RecordAttempt(ctx, solvedAttempt("p-1", mastery.DifficultyEasy)))
	failed := solvedAttempt("p-2", mastery.DifficultyEasy)
	failed.Solved = false
	require.NoError(t, sess.RecordAttempt(ctx, failed))

	clock.Advance(5 * time.Minute)
	require.NoError(t, sess.Close(ctx))

	require.Len(t, events.sessions, 2)
	end := events.sessions[1]
	assert.Equal(t, "end", end.Action)
	assert.Equal(t, 2, end.AttemptsServed)
	assert.Equal(t, 1, end.SolvedCount)
	assert.Equal(t, 300, end.DurationSecs)
}
