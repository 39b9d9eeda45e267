// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/slate/ent/attemptevent"
	"github.com/abhisek/slate/ent/questionevent"
	"github.com/abhisek/slate/ent/schema"
	"github.com/abhisek/slate/ent/sessionevent"
	"github.com/abhisek/slate/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescProblemID is the schema descriptor for problem_id field.
	attempteventDescProblemID := attempteventFields[1].Descriptor()
	// attemptevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	attemptevent.ProblemIDValidator = attempteventDescProblemID.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[2].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	// attempteventDescHintsUsed is the schema descriptor for hints_used field.
	attempteventDescHintsUsed := attempteventFields[5].Descriptor()
	// attemptevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attemptevent.DefaultHintsUsed = attempteventDescHintsUsed.Default.(int)
	// attempteventDescIncorrectAttempts is the schema descriptor for incorrect_attempts field.
	attempteventDescIncorrectAttempts := attempteventFields[6].Descriptor()
	// attemptevent.DefaultIncorrectAttempts holds the default value on creation for the incorrect_attempts field.
	attemptevent.DefaultIncorrectAttempts = attempteventDescIncorrectAttempts.Default.(int)
	questioneventMixin := schema.QuestionEvent{}.Mixin()
	questioneventMixinFields0 := questioneventMixin[0].Fields()
	_ = questioneventMixinFields0
	questioneventFields := schema.QuestionEvent{}.Fields()
	_ = questioneventFields
	// questioneventDescTimestamp is the schema descriptor for timestamp field.
	questioneventDescTimestamp := questioneventMixinFields0[1].Descriptor()
	// questionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questionevent.DefaultTimestamp = questioneventDescTimestamp.Default.(func() time.Time)
	// questioneventDescSessionID is the schema descriptor for session_id field.
	questioneventDescSessionID := questioneventFields[0].Descriptor()
	// questionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questionevent.SessionIDValidator = questioneventDescSessionID.Validators[0].(func(string) error)
	// questioneventDescQuestionText is the schema descriptor for question_text field.
	questioneventDescQuestionText := questioneventFields[1].Descriptor()
	// questionevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	questionevent.QuestionTextValidator = questioneventDescQuestionText.Validators[0].(func(string) error)
	// questioneventDescState is the schema descriptor for state field.
	questioneventDescState := questioneventFields[3].Descriptor()
	// questionevent.StateValidator is a validator for the "state" field. It is called by the builders before save.
	questionevent.StateValidator = questioneventDescState.Validators[0].(func(string) error)
	// questioneventDescTrigger is the schema descriptor for trigger field.
	questioneventDescTrigger := questioneventFields[4].Descriptor()
	// questionevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	questionevent.TriggerValidator = questioneventDescTrigger.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescAttemptsServed is the schema descriptor for attempts_served field.
	sessioneventDescAttemptsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultAttemptsServed holds the default value on creation for the attempts_served field.
	sessionevent.DefaultAttemptsServed = sessioneventDescAttemptsServed.Default.(int)
	// sessioneventDescSolvedCount is the schema descriptor for solved_count field.
	sessioneventDescSolvedCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSolvedCount holds the default value on creation for the solved_count field.
	sessionevent.DefaultSolvedCount = sessioneventDescSolvedCount.Default.(int)
	// sessioneventDescQuestionsAsked is the schema descriptor for questions_asked field.
	sessioneventDescQuestionsAsked := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	sessionevent.DefaultQuestionsAsked = sessioneventDescQuestionsAsked.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
