package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuestion(ctx context.Context, data QuestionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuestionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionText(data.QuestionText).
		SetExpectsResponse(data.ExpectsResponse).
		SetState(data.State).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save question event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuestionCount(ctx context.Context) (int, error) {
	n, err := r.client.QuestionEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count question events: %w", err)
	}
	return n, nil
}
