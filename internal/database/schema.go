package database

import "context"

// EnsureSchema creates the listing table and its indexes when they do not
// exist yet. The source_url unique constraint is the deduplication key:
// storage, not application code, arbitrates insert-vs-duplicate atomically.
func EnsureSchema(ctx context.Context, db DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS job_listings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			company_name TEXT NOT NULL,
			location TEXT NOT NULL,
			description TEXT,
			posting_date DATE NOT NULL,
			source_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT job_listings_source_url_key UNIQUE (source_url)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_job_listings_posting_date ON job_listings (posting_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_job_listings_company_name ON job_listings (company_name)`,
	}

	for _, s := range stmts {
		if _, err := db.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
