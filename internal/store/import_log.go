package store

import (
	"fmt"

	"github.com/google/uuid"
)

// CreateImportLog opens an import-log row and returns its id.
func (s *Store) CreateImportLog(source, actor string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`
		INSERT INTO import_logs (id, source, actor, status)
		VALUES (?, ?, ?, 'processing')
	`, id, source, actor)
	if err != nil {
		return "", fmt.Errorf("failed to create import log: %w", err)
	}
	return id, nil
}

// FinishImportLog closes an import-log row with the batch counters.
func (s *Store) FinishImportLog(id string, total, created, updated, errors int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_records = ?,
			created_count = ?,
			updated_count = ?,
			error_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, total, created, updated, errors, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}
