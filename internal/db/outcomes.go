package db

import (
	"context"
	"fmt"

	"commentlens/internal/models"
)

// IncrementOutcome upserts the aggregate count for a channel and outcome.
// Only counts are stored; no per-video data reaches the database.
func (d *DB) IncrementOutcome(ctx context.Context, channel, outcome string) error {
	if !knownOutcome(outcome) {
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO analysis_outcomes (channel, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (channel, outcome) DO UPDATE
		SET count = analysis_outcomes.count + 1, last_seen_at = NOW()
	`, channel, outcome)
	return err
}

// GetAllOutcomes returns all outcome rows for metrics export.
func (d *DB) GetAllOutcomes(ctx context.Context) ([]models.AnalysisOutcome, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT channel, outcome, count, last_seen_at
		FROM analysis_outcomes
		ORDER BY channel, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []models.AnalysisOutcome
	for rows.Next() {
		var o models.AnalysisOutcome
		if err := rows.Scan(&o.Channel, &o.Outcome, &o.Count, &o.LastSeenAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

func knownOutcome(outcome string) bool {
	switch outcome {
	case models.OutcomeAnalyzed, models.OutcomeInvalid, models.OutcomeFailed:
		return true
	default:
		return false
	}
}
