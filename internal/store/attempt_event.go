package store

import (
	"context"
	"fmt"

	"github.com/abhisek/slate/ent"
	"github.com/abhisek/slate/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProblemID(data.ProblemID).
		SetDifficulty(data.Difficulty).
		SetSolved(data.Solved).
		SetTimeMs(data.TimeMs).
		SetHintsUsed(data.HintsUsed).
		SetIncorrectAttempts(data.IncorrectAttempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptEventData, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	out := make([]AttemptEventData, 0, len(events))
	for _, e := range events {
		out = append(out, AttemptEventData{
			SessionID:         e.SessionID,
			ProblemID:         e.ProblemID,
			Difficulty:        e.Difficulty,
			Solved:            e.Solved,
			TimeMs:            e.TimeMs,
			HintsUsed:         e.HintsUsed,
			IncorrectAttempts: e.IncorrectAttempts,
		})
	}
	return out, nil
}

func (r *eventRepo) AttemptTotals(ctx context.Context) ([]AttemptTotals, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt totals: %w", err)
	}

	byDifficulty := make(map[string]*AttemptTotals)
	for _, e := range events {
		tot := byDifficulty[e.Difficulty]
		if tot == nil {
			tot = &AttemptTotals{Difficulty: e.Difficulty}
			byDifficulty[e.Difficulty] = tot
		}
		tot.Attempts++
		if e.Solved {
			tot.Solved++
		}
	}

	// Stable order: easy, medium, hard, then anything else.
	var out []AttemptTotals
	for _, d := range []string{"easy", "medium", "hard"} {
		if tot, ok := byDifficulty[d]; ok {
			out = append(out, *tot)
			delete(byDifficulty, d)
		}
	}
	for _, tot := range byDifficulty {
		out = append(out, *tot)
	}
	return out, nil
}
