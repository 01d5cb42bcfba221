package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Chirp/api/feed"
	"Chirp/api/models"
	"Chirp/api/store"
	"Chirp/api/store/storetest"
)

func seedUsers(t *testing.T, db *gorm.DB, n int) []uint {
	t.Helper()
	users := store.NewUsers(db)
	ids := make([]uint, n)
	for i := range ids {
		u, err := users.Create(context.Background(), "user")
		require.NoError(t, err)
		ids[i] = u.ID
	}
	return ids
}

func counts(t *testing.T, db *gorm.DB, id uint) (followers, following int64) {
	t.Helper()
	u, err := store.NewUsers(db).FindByID(context.Background(), id)
	require.NoError(t, err)
	return u.FollowersCount, u.FollowingCount
}

func TestFollowsInsertIsConditional(t *testing.T) {
	ctx := context.Background()
	db := storetest.NewDB(t)
	ids := seedUsers(t, db, 2)
	follows := store.NewFollows(db)

	created, err := follows.Insert(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.True(t, created)

	created, err = follows.Insert(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.False(t, created)

	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)

	followers, following := counts(t, db, ids[1])
	assert.Equal(t, int64(1), followers)
	assert.Equal(t, int64(0), following)
	followers, following = counts(t, db, ids[0])
	assert.Equal(t, int64(0), followers)
	assert.Equal(t, int64(1), following)
}

func TestFollowsInsertSelfHitsCheckConstraint(t *testing.T) {
	db := storetest.NewDB(t)
	ids := seedUsers(t, db, 1)

	_, err := store.NewFollows(db).Insert(context.Background(), ids[0], ids[0])
	assert.ErrorIs(t, err, feed.ErrSelfFollow)
}

func TestFollowsInsertUnknownUser(t *testing.T) {
	db := storetest.NewDB(t)
	ids := seedUsers(t, db, 1)

	_, err := store.NewFollows(db).Insert(context.Background(), ids[0], 999)
	assert.ErrorIs(t, err, feed.ErrUserNotFound)
}

func TestFollowsDelete(t *testing.T) {
	ctx := context.Background()
	db := storetest.NewDB(t)
	ids := seedUsers(t, db, 2)
	follows := store.NewFollows(db)

	deleted, err := follows.Delete(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = follows.Insert(ctx, ids[0], ids[1])
	require.NoError(t, err)
	deleted, err = follows.Delete(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err := follows.Exists(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.False(t, exists)

	followers, _ := counts(t, db, ids[1])
	assert.Equal(t, int64(0), followers)
	_, following := counts(t, db, ids[0])
	assert.Equal(t, int64(0), following)
}

func TestFollowServiceConcurrentFollowsOverStore(t *testing.T) {
	ctx := context.Background()
	db := storetest.NewDB(t)
	ids := seedUsers(t, db, 2)
	svc := feed.NewFollowService(store.NewFollows(db), nil)

	const callers = 8
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.Follow(ctx, ids[0], ids[1])
		}()
	}
	wg.Wait()
	close(results)

	ok, already := 0, 0
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, feed.ErrAlreadyFollowing):
			already++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, callers-1, already)

	followers, _ := counts(t, db, ids[1])
	assert.Equal(t, int64(1), followers)
}

func TestFollowsListFollowers(t *testing.T) {
	ctx := context.Background()
	db := storetest.NewDB(t)
	ids := seedUsers(t, db, 5)
	follows := store.NewFollows(db)

	// ids[1..4] follow ids[0]
	for _, id := range ids[1:] {
		created, err := follows.Insert(ctx, id, ids[0])
		require.NoError(t, err)
		require.True(t, created)
		time.Sleep(time.Millisecond)
	}
	_, err := follows.Insert(ctx, ids[0], ids[2])
	require.NoError(t, err)

	svc := feed.NewUserService(store.NewUsers(db), follows, nil)

	page, err := svc.Followers(ctx, ids[0], 3, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []uint{ids[4], ids[3], ids[2]}, []uint{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
	assert.Equal(t, "user", page.Items[0].Username)
	require.NotNil(t, page.NextCursor)

	page, err = svc.Followers(ctx, ids[0], 3, page.NextCursor.String())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, ids[1], page.Items[0].ID)
	assert.Nil(t, page.NextCursor)

	following, err := svc.Following(ctx, ids[0], 10, "")
	require.NoError(t, err)
	require.Len(t, following.Items, 1)
	assert.Equal(t, ids[2], following.Items[0].ID)
	assert.False(t, following.Items[0].FollowCreatedAt.IsZero())
}
