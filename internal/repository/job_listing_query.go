package repository

import (
	"fmt"
	"time"

	"jobradar/internal/domain/job"
)

// ListQuery is the storage-facing form of a filtered, sorted, windowed read.
// Title and Location are required non-empty substrings; Since is the oldest
// admitted posting date. Callers guarantee Page >= 1.
type ListQuery struct {
	Title    string
	Location string
	Since    time.Time
	Sort     job.SortKey
	Page     int
}

func (q ListQuery) offset() int {
	return (q.Page - 1) * job.PageSize
}

const listingColumns = "id, title, company_name, location, description, posting_date, source_url, created_at"

const listingPredicate = "title ILIKE '%' || $1 || '%' AND location ILIKE '%' || $2 || '%' AND posting_date >= $3"

func buildListSQL(q ListQuery) (string, []any) {
	sqlText := fmt.Sprintf(
		"SELECT %s FROM job_listings WHERE %s ORDER BY %s LIMIT $4 OFFSET $5",
		listingColumns, listingPredicate, orderClause(q.Sort),
	)
	return sqlText, []any{q.Title, q.Location, q.Since, job.PageSize, q.offset()}
}

func buildListAllSQL(q ListQuery) (string, []any) {
	sqlText := fmt.Sprintf(
		"SELECT %s FROM job_listings WHERE %s ORDER BY %s",
		listingColumns, listingPredicate, orderClause(q.Sort),
	)
	return sqlText, []any{q.Title, q.Location, q.Since}
}

func buildCountSQL(q ListQuery) (string, []any) {
	sqlText := fmt.Sprintf("SELECT COUNT(1) FROM job_listings WHERE %s", listingPredicate)
	return sqlText, []any{q.Title, q.Location, q.Since}
}

// orderClause maps a sort key to its ORDER BY expression. Ties within a key
// stay in storage-native order; there is no secondary key. Unknown keys fall
// back to newest-first.
func orderClause(sort job.SortKey) string {
	switch sort {
	case job.SortDateAsc:
		return "posting_date ASC"
	case job.SortCompanyAZ:
		return "company_name ASC"
	case job.SortTitleAZ:
		return "title ASC"
	case job.SortDateDesc:
		return "posting_date DESC"
	default:
		return "posting_date DESC"
	}
}
