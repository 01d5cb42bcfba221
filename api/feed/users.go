package feed

import (
	"context"

	"go.uber.org/zap"

	"Chirp/api/models"
)

type UserStore interface {
	Create(ctx context.Context, username string) (*models.User, error)
	// FindByID returns ErrUserNotFound when no row has the id.
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// FollowPage is one keyset page of a followers or following listing, ordered
// by when the edge was created, newest first.
type FollowPage struct {
	Items      []models.FollowEntry
	NextCursor *Cursor
}

// FollowEntryCursor returns the sort key of a listing row: the edge's
// (created_at, id), not the user's.
func FollowEntryCursor(e models.FollowEntry) Cursor {
	return Cursor{CreatedAt: e.FollowCreatedAt, ID: e.FollowID}
}

type UserService struct {
	users   UserStore
	follows FollowStore
	log     *zap.Logger
}

func NewUserService(users UserStore, follows FollowStore, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{users: users, follows: follows, log: log.Named("users")}
}

// Create registers a user under the trimmed username.
func (s *UserService) Create(ctx context.Context, username string) (*models.User, error) {
	trimmed, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Create(ctx, trimmed)
	if err != nil {
		return nil, storageFailure("userService.Create", err)
	}
	s.log.Debug("user created", zap.Uint("user_id", user.ID))
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storageFailure("userService.Get", err)
	}
	return user, nil
}

// Followers lists the users following id.
func (s *UserService) Followers(ctx context.Context, id uint, limit int, before string) (*FollowPage, error) {
	return s.listEdges(ctx, id, limit, before, s.follows.ListFollowers)
}

// Following lists the users id follows.
func (s *UserService) Following(ctx context.Context, id uint, limit int, before string) (*FollowPage, error) {
	return s.listEdges(ctx, id, limit, before, s.follows.ListFollowing)
}

type edgeLister func(ctx context.Context, userID uint, limit int, before *Cursor) ([]models.FollowEntry, error)

func (s *UserService) listEdges(ctx context.Context, id uint, limit int, before string, list edgeLister) (*FollowPage, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	limit = ClampLimit(limit)
	rows, err := list(ctx, id, limit, ParseCursor(before))
	if err != nil {
		return nil, storageFailure("userService.listEdges", err)
	}
	return &FollowPage{
		Items:      rows,
		NextCursor: nextCursor(rows, limit, FollowEntryCursor),
	}, nil
}
