package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"jobradar/internal/domain/job"
)

// SearchCache is the page-cache surface the read path uses. Implementations
// must degrade to no-ops when the backing store is unavailable.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const pageCachePattern = "jobs:page:*"

type pageCacheKeyInput struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Days     int    `json:"days"`
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
}

func normalizeCacheValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// PageCacheKey derives a stable key for one (filters, sort, page) tuple.
func PageCacheKey(f job.Filters, page int, sort job.SortKey) string {
	in := pageCacheKeyInput{
		Title:    normalizeCacheValue(f.JobTitle),
		Location: normalizeCacheValue(f.Location),
		Days:     f.TimeRangeDays,
		Sort:     string(sort),
		Page:     page,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:page:" + hex.EncodeToString(sum[:])
}
