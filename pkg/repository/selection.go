package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// SelectionRepository handles selected-topic database operations
type SelectionRepository struct {
	db *sqlx.DB
}

// NewSelectionRepository creates a new selection repository
func NewSelectionRepository(database *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: database}
}

// GetSelectedTopics retrieves selected topic ids in selection order
func (r *SelectionRepository) GetSelectedTopics(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, "SELECT topic_id FROM selected_topics ORDER BY selected_at, topic_id")
	if err != nil {
		return nil, fmt.Errorf("get selected topics: %w", err)
	}
	return ids, nil
}

// SaveSelectedTopics replaces the stored selection with the given ids
func (r *SelectionRepository) SaveSelectedTopics(ctx context.Context, ids []string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin selection tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "DELETE FROM selected_topics"); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("clear selected topics: %w", err)}
		}
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, "INSERT INTO selected_topics (topic_id) VALUES (?)", id); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("insert selected topic %q: %w", id, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit selection: %w", err)}
		}
		return nil
	})
}
