package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS shifts (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			name              TEXT NOT NULL UNIQUE,
			start_time        TEXT NOT NULL,
			end_time          TEXT NOT NULL,
			is_over_night     BOOLEAN NOT NULL DEFAULT 0,
			is_available      BOOLEAN NOT NULL DEFAULT 1,
			allowed_over_time INTEGER NOT NULL DEFAULT 0 CHECK(allowed_over_time >= 0),
			created_at        DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS punches (
			id         TEXT PRIMARY KEY,
			shift_id   INTEGER NOT NULL REFERENCES shifts(id),
			kind       TEXT NOT NULL CHECK(kind IN ('in', 'out')),
			day        DATE NOT NULL,
			at         TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_punches_day ON punches(day);
		CREATE INDEX IF NOT EXISTS idx_punches_shift_day ON punches(shift_id, day);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
