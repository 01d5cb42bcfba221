package feed

import (
	"context"

	"Chirp/api/metrics"
	"Chirp/api/models"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 50
	DefaultPageSize = 20
)

// TweetStore is the Content Store the core reads and writes through.
type TweetStore interface {
	// Create inserts a tweet and returns it with its generated id and timestamp.
	Create(ctx context.Context, content string) (*models.Tweet, error)
	// FindByID returns ErrNotFound when no row has the id.
	FindByID(ctx context.Context, id uint) (*models.Tweet, error)
	// ListBefore returns up to limit tweets ordered by (created_at, id)
	// descending, restricted to keys strictly below before when it is set.
	ListBefore(ctx context.Context, limit int, before *Cursor) ([]models.Tweet, error)
	// ListOffset returns up to limit tweets in the same order, skipping offset rows.
	ListOffset(ctx context.Context, limit, offset int) ([]models.Tweet, error)
}

// ClampLimit silently corrects a page size into [MinPageSize, MaxPageSize].
func ClampLimit(limit int) int {
	if limit < MinPageSize {
		return MinPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// TimelinePage is one keyset page. NextCursor is nil once the timeline is
// exhausted.
type TimelinePage struct {
	Items      []models.Tweet
	NextCursor *Cursor
}

// TweetCursor returns the sort key of a tweet.
func TweetCursor(t models.Tweet) Cursor {
	return Cursor{CreatedAt: t.CreatedAt, ID: t.ID}
}

// nextCursor is the key of the last row of a full page. A short or empty
// page means the scan reached the end.
func nextCursor[T any](rows []T, limit int, key func(T) Cursor) *Cursor {
	if len(rows) == 0 || len(rows) < limit {
		return nil
	}
	c := key(rows[len(rows)-1])
	return &c
}

// Pager pages through the timeline newest first.
//
// The keyset mode resumes strictly after a (created_at, id) key, which stays
// correct while tweets are being inserted: rows committed after a cursor was
// issued sort above it and never shift later pages. The offset mode re-scans
// from the top on every call and can repeat or skip rows when the table
// grows between requests; keep it for small, static data.
type Pager struct {
	store TweetStore
}

func NewPager(store TweetStore) *Pager {
	return &Pager{store: store}
}

// Page returns up to limit tweets that sort strictly after resumeAfter.
func (p *Pager) Page(ctx context.Context, limit int, resumeAfter *Cursor) (*TimelinePage, error) {
	limit = ClampLimit(limit)
	rows, err := p.store.ListBefore(ctx, limit, resumeAfter)
	if err != nil {
		return nil, storageFailure("pager.Page", err)
	}
	metrics.TimelinePages.WithLabelValues("cursor").Inc()
	return &TimelinePage{
		Items:      rows,
		NextCursor: nextCursor(rows, limit, TweetCursor),
	}, nil
}

// Offset returns the page at offset. Negative offsets read from the start.
func (p *Pager) Offset(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
	limit = ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	rows, err := p.store.ListOffset(ctx, limit, offset)
	if err != nil {
		return nil, storageFailure("pager.Offset", err)
	}
	metrics.TimelinePages.WithLabelValues("offset").Inc()
	return rows, nil
}
