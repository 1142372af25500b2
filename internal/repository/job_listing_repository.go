package repository

import (
	"context"
	"errors"
	"time"

	"jobradar/internal/database"
	"jobradar/internal/domain/job"

	"github.com/jackc/pgx/v5/pgconn"
)

// InsertOutcome classifies a persistence attempt so callers never inspect
// storage error codes directly. A duplicate source_url is an expected,
// counted outcome, not a failure.
type InsertOutcome int

const (
	OutcomeInserted InsertOutcome = iota + 1
	OutcomeDuplicate
)

const pgUniqueViolation = "23505"

type JobListingRepository interface {
	Insert(ctx context.Context, c job.Candidate) (InsertOutcome, error)
	List(ctx context.Context, q ListQuery) ([]job.Listing, error)
	ListAll(ctx context.Context, q ListQuery) ([]job.Listing, error)
	Count(ctx context.Context, q ListQuery) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type PostgresJobListingRepository struct {
	db database.DB
}

func NewPostgresJobListingRepository(db database.DB) *PostgresJobListingRepository {
	return &PostgresJobListingRepository{db: db}
}

func (r *PostgresJobListingRepository) Insert(ctx context.Context, c job.Candidate) (InsertOutcome, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_listings (title, company_name, location, description, posting_date, source_url)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.Title, c.CompanyName, c.Location, nullableText(c.Description), c.PostingDate, c.SourceURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return OutcomeDuplicate, nil
		}
		return 0, err
	}
	return OutcomeInserted, nil
}

func (r *PostgresJobListingRepository) List(ctx context.Context, q ListQuery) ([]job.Listing, error) {
	sqlText, args := buildListSQL(q)
	return r.scanListings(ctx, sqlText, args)
}

// ListAll returns every listing matching the predicate with no page window,
// in the requested order. Used by the CSV export.
func (r *PostgresJobListingRepository) ListAll(ctx context.Context, q ListQuery) ([]job.Listing, error) {
	sqlText, args := buildListAllSQL(q)
	return r.scanListings(ctx, sqlText, args)
}

func (r *PostgresJobListingRepository) scanListings(ctx context.Context, sqlText string, args []any) ([]job.Listing, error) {
	rows, err := r.db.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0, job.PageSize)
	for rows.Next() {
		var l job.Listing
		if err := rows.Scan(&l.ID, &l.Title, &l.CompanyName, &l.Location, &l.Description, &l.PostingDate, &l.SourceURL, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobListingRepository) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlText, args := buildCountSQL(q)
	var c int
	if err := r.db.QueryRow(ctx, sqlText, args...).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobListingRepository) DeleteAll(ctx context.Context) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM job_listings`)
}

func (r *PostgresJobListingRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM job_listings WHERE posting_date < $1`, cutoff)
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ JobListingRepository = (*PostgresJobListingRepository)(nil)
