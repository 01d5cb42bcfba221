package feed_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"Chirp/api/feed"
	"Chirp/api/models"
)

// memTweets keeps tweets in memory and answers queries with the same
// ordering and predicate as the SQL store.
type memTweets struct {
	mu     sync.Mutex
	rows   []models.Tweet
	nextID uint
	clock  func() time.Time
	err    error
}

func newMemTweets() *memTweets {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var tick int64
	return &memTweets{clock: func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}}
}

func (m *memTweets) Create(_ context.Context, content string) (*models.Tweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	t := models.Tweet{ID: m.nextID, Content: content, CreatedAt: m.clock()}
	m.rows = append(m.rows, t)
	return &t, nil
}

// insertAt stores a tweet with an explicit timestamp.
func (m *memTweets) insertAt(ts time.Time, content string) models.Tweet {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	t := models.Tweet{ID: m.nextID, Content: content, CreatedAt: ts}
	m.rows = append(m.rows, t)
	return t
}

func (m *memTweets) FindByID(_ context.Context, id uint) (*models.Tweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, t := range m.rows {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, feed.ErrNotFound
}

func (m *memTweets) sorted() []models.Tweet {
	rows := append([]models.Tweet(nil), m.rows...)
	sort.Slice(rows, func(i, j int) bool {
		return feed.TweetCursor(rows[j]).Less(feed.TweetCursor(rows[i]))
	})
	return rows
}

func (m *memTweets) ListBefore(_ context.Context, limit int, before *feed.Cursor) ([]models.Tweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Tweet{}
	for _, t := range m.sorted() {
		if before != nil && !feed.TweetCursor(t).Less(*before) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memTweets) ListOffset(_ context.Context, limit, offset int) ([]models.Tweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	rows := m.sorted()
	if offset >= len(rows) {
		return []models.Tweet{}, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type edge struct{ from, to uint }

// memFollows is a set of edges guarded by one mutex, which makes Insert and
// Delete atomic conditional writes.
type memFollows struct {
	mu      sync.Mutex
	users   map[uint]bool
	edges   map[edge]bool
	inserts int
	err     error
}

func newMemFollows(users ...uint) *memFollows {
	m := &memFollows{users: map[uint]bool{}, edges: map[edge]bool{}}
	for _, u := range users {
		m.users[u] = true
	}
	return m
}

func (m *memFollows) Insert(_ context.Context, a, b uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++
	if m.err != nil {
		return false, m.err
	}
	if !m.users[a] || !m.users[b] {
		return false, feed.ErrUserNotFound
	}
	if m.edges[edge{a, b}] {
		return false, nil
	}
	m.edges[edge{a, b}] = true
	return true, nil
}

func (m *memFollows) Delete(_ context.Context, a, b uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if !m.edges[edge{a, b}] {
		return false, nil
	}
	delete(m.edges, edge{a, b})
	return true, nil
}

func (m *memFollows) Exists(_ context.Context, a, b uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	return m.edges[edge{a, b}], nil
}

func (m *memFollows) ListFollowers(_ context.Context, userID uint, limit int, before *feed.Cursor) ([]models.FollowEntry, error) {
	return m.list(func(e edge) (uint, bool) { return e.from, e.to == userID }, limit, before)
}

func (m *memFollows) ListFollowing(_ context.Context, userID uint, limit int, before *feed.Cursor) ([]models.FollowEntry, error) {
	return m.list(func(e edge) (uint, bool) { return e.to, e.from == userID }, limit, before)
}

// list synthesizes entries whose edge key is derived from the other user's
// id, so order is deterministic.
func (m *memFollows) list(match func(edge) (uint, bool), limit int, before *feed.Cursor) ([]models.FollowEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var entries []models.FollowEntry
	for e := range m.edges {
		other, ok := match(e)
		if !ok {
			continue
		}
		entries = append(entries, models.FollowEntry{
			User:            models.User{ID: other},
			FollowID:        other,
			FollowCreatedAt: base.Add(time.Duration(other) * time.Minute),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return feed.FollowEntryCursor(entries[j]).Less(feed.FollowEntryCursor(entries[i]))
	})
	out := []models.FollowEntry{}
	for _, e := range entries {
		if before != nil && !feed.FollowEntryCursor(e).Less(*before) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

type memUsers struct {
	mu     sync.Mutex
	rows   map[uint]models.User
	nextID uint
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[uint]models.User{}}
}

func (m *memUsers) Create(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u := models.User{ID: m.nextID, Username: username, CreatedAt: time.Now().UTC()}
	m.rows[u.ID] = u
	return &u, nil
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, feed.ErrUserNotFound
	}
	return &u, nil
}

type memCache struct {
	mu     sync.Mutex
	tweets map[uint]models.Tweet
	hits   int
}

func newMemCache() *memCache {
	return &memCache{tweets: map[uint]models.Tweet{}}
}

func (c *memCache) GetTweet(_ context.Context, id uint) (*models.Tweet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tweets[id]
	if ok {
		c.hits++
	}
	return &t, ok
}

func (c *memCache) SetTweet(_ context.Context, tweet *models.Tweet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tweets[tweet.ID] = *tweet
}
