package feed

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"Chirp/api/metrics"
	"Chirp/api/models"
)

// FollowStore is the Relationship Store. Insert and Delete must be atomic
// conditional writes: the returned bool says whether the edge changed state,
// so two racing callers can never both observe success for the same
// transition.
type FollowStore interface {
	// Insert adds the edge unless it exists. It returns ErrUserNotFound when
	// either end is not a user.
	Insert(ctx context.Context, followerID, followingID uint) (created bool, err error)
	Delete(ctx context.Context, followerID, followingID uint) (deleted bool, err error)
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint, limit int, before *Cursor) ([]models.FollowEntry, error)
	ListFollowing(ctx context.Context, userID uint, limit int, before *Cursor) ([]models.FollowEntry, error)
}

// Relationship describes how a viewer and a target user are connected.
type Relationship struct {
	Following  bool
	FollowedBy bool
	Mutual     bool
}

// FollowService guards every write to the follow graph. Per ordered pair an
// edge is either absent or present; follow and unfollow move between the two
// states and reject the call when the edge is already in the target state.
type FollowService struct {
	store FollowStore
	log   *zap.Logger
}

func NewFollowService(store FollowStore, log *zap.Logger) *FollowService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FollowService{store: store, log: log.Named("follows")}
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) (err error) {
	defer func() { recordFollowOutcome("follow", err) }()

	if followerID == followingID {
		return ErrSelfFollow
	}
	created, err := s.store.Insert(ctx, followerID, followingID)
	if err != nil {
		return storageFailure("followService.Follow", err)
	}
	if !created {
		return ErrAlreadyFollowing
	}
	s.log.Debug("followed",
		zap.Uint("follower_id", followerID),
		zap.Uint("following_id", followingID))
	return nil
}

// Unfollow removes the edge. When two unfollows race, only the one whose
// delete removed the row succeeds; the other sees ErrNotFollowing.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) (err error) {
	defer func() { recordFollowOutcome("unfollow", err) }()

	deleted, err := s.store.Delete(ctx, followerID, followingID)
	if err != nil {
		return storageFailure("followService.Unfollow", err)
	}
	if !deleted {
		return ErrNotFollowing
	}
	s.log.Debug("unfollowed",
		zap.Uint("follower_id", followerID),
		zap.Uint("following_id", followingID))
	return nil
}

// Relationship reports the edges between viewer and target in both
// directions. A user has no relationship with themself.
func (s *FollowService) Relationship(ctx context.Context, viewerID, targetID uint) (*Relationship, error) {
	if viewerID == targetID {
		return &Relationship{}, nil
	}
	following, err := s.store.Exists(ctx, viewerID, targetID)
	if err != nil {
		return nil, storageFailure("followService.Relationship", err)
	}
	followedBy, err := s.store.Exists(ctx, targetID, viewerID)
	if err != nil {
		return nil, storageFailure("followService.Relationship", err)
	}
	return &Relationship{
		Following:  following,
		FollowedBy: followedBy,
		Mutual:     following && followedBy,
	}, nil
}

func recordFollowOutcome(operation string, err error) {
	outcome := "ok"
	if err != nil {
		var ferr *Error
		if errors.As(err, &ferr) {
			outcome = string(ferr.Reason)
		} else {
			outcome = string(ReasonStorage)
		}
	}
	metrics.FollowOperations.WithLabelValues(operation, outcome).Inc()
}
