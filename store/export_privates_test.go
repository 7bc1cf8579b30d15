// SPDX-License-Identifier: MIT

package store

// ExportedInsertRun registers a run with an explicit creation timestamp.
func ExportedInsertRun(s *Store, id, createdAt string) error {
	_, err := s.db.Exec(`INSERT INTO runs (run_id, note, created_at) VALUES (?, '', ?)`, id, createdAt)

	return err
}
