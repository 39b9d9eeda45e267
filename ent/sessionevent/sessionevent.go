// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldAttemptsServed holds the string denoting the attempts_served field in the database.
	FieldAttemptsServed = "attempts_served"
	// FieldSolvedCount holds the string denoting the solved_count field in the database.
	FieldSolvedCount = "solved_count"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldAttemptsServed,
	FieldSolvedCount,
	FieldQuestionsAsked,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultAttemptsServed holds the default value on creation for the "attempts_served" field.
	DefaultAttemptsServed int
	// DefaultSolvedCount holds the default value on creation for the "solved_count" field.
	DefaultSolvedCount int
	// DefaultQuestionsAsked holds the default value on creation for the "questions_asked" field.
	DefaultQuestionsAsked int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByAttemptsServed orders the results by the attempts_served field.
func ByAttemptsServed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsServed, opts...).ToFunc()
}

// BySolvedCount orders the results by the solved_count field.
func BySolvedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolvedCount, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
