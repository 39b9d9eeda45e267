package dialogue

// ConversationState represents where the tutoring conversation currently is.
// Exactly one state is active at a time; the gate owns it exclusively and
// external events drive the transitions.
type ConversationState string

const (
	StateIdle      ConversationState = "idle"
	StateWorking   ConversationState = "working"
	StatePaused    ConversationState = "paused"
	StateStuck     ConversationState = "stuck"
	StateListening ConversationState = "listening"
	StateSpeaking  ConversationState = "speaking"
)

// Mode controls how proactive the tutor is allowed to be.
type Mode string

const (
	// ModeSilent disables all spoken output.
	ModeSilent Mode = "silent"

	// ModeHintsOnly allows answering when asked but never proactive questions.
	ModeHintsOnly Mode = "hints_only"

	// ModeConversational allows proactive guiding questions.
	ModeConversational Mode = "conversational"
)
