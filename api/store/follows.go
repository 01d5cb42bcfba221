package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Chirp/api/feed"
	"Chirp/api/models"
)

// Follows is the Relationship Store. The follows table carries a unique
// index on (follower_id, following_id) and a CHECK against self-follows, so
// the graph invariants hold even for writers that bypass this type.
type Follows struct {
	db *gorm.DB
}

func NewFollows(db *gorm.DB) *Follows {
	return &Follows{db: db}
}

// Insert adds the edge with INSERT ... ON CONFLICT DO NOTHING and bumps the
// follow counters in the same transaction. created is false when the edge
// was already there, including when a concurrent insert won the race.
func (s *Follows) Insert(ctx context.Context, followerID, followingID uint) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUsers(tx, followerID, followingID); err != nil {
			return err
		}

		follow := models.Follow{
			FollowerID:  followerID,
			FollowingID: followingID,
		}
		follow.Prepare()
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error
	})
	if err != nil {
		if constraintViolation(err) == violationUnique {
			return false, nil
		}
		return false, edgeFailure("followStore.Insert", err)
	}
	return created, nil
}

// Delete removes the edge and decrements the counters. deleted is false when
// there was no edge to remove.
func (s *Follows) Delete(ctx context.Context, followerID, followingID uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", decrement("following_count")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", followingID).
			UpdateColumn("followers_count", decrement("followers_count")).Error
	})
	if err != nil {
		return false, failure("followStore.Delete", err)
	}
	return deleted, nil
}

func (s *Follows) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, failure("followStore.Exists", err)
	}
	return count > 0, nil
}

// ListFollowers returns the users following userID.
func (s *Follows) ListFollowers(ctx context.Context, userID uint, limit int, before *feed.Cursor) ([]models.FollowEntry, error) {
	return s.listEdges(ctx, "follows.following_id = ?", "users.id = follows.follower_id", userID, limit, before)
}

// ListFollowing returns the users userID follows.
func (s *Follows) ListFollowing(ctx context.Context, userID uint, limit int, before *feed.Cursor) ([]models.FollowEntry, error) {
	return s.listEdges(ctx, "follows.follower_id = ?", "users.id = follows.following_id", userID, limit, before)
}

func (s *Follows) listEdges(ctx context.Context, whereClause, joinClause string, userID uint, limit int, before *feed.Cursor) ([]models.FollowEntry, error) {
	query := s.db.WithContext(ctx).Table("follows").
		Select("follows.id AS follow_id, follows.created_at AS follow_created_at, users.*").
		Joins("JOIN users ON "+joinClause).
		Where(whereClause, userID)

	if before != nil {
		query = query.Where("(follows.created_at, follows.id) < (?, ?)", before.CreatedAt, before.ID)
	}

	rows := []models.FollowEntry{}
	if err := query.Order("follows.created_at DESC, follows.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, failure("followStore.listEdges", err)
	}
	return rows, nil
}

// requireUsers fails with feed.ErrUserNotFound unless every id is a user.
func requireUsers(tx *gorm.DB, ids ...uint) error {
	distinct := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	var count int64
	if err := tx.Model(&models.User{}).Where("id IN ?", distinct).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		return feed.ErrUserNotFound
	}
	return nil
}

// decrement lowers a counter without letting it go negative. GREATEST is not
// available on SQLite, so use CASE.
func decrement(column string) clause.Expr {
	return gorm.Expr("CASE WHEN " + column + " > 0 THEN " + column + " - 1 ELSE 0 END")
}

// edgeFailure translates constraint violations on follows into the domain
// errors they stand for.
func edgeFailure(op string, err error) error {
	var ferr *feed.Error
	if errors.As(err, &ferr) {
		return err
	}
	switch constraintViolation(err) {
	case violationCheck:
		return feed.ErrSelfFollow
	case violationForeignKey:
		return feed.ErrUserNotFound
	}
	return failure(op, err)
}
