package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"Chirp/api/feed"
	"Chirp/api/models"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) Create(ctx context.Context, username string) (*models.User, error) {
	user := models.User{Username: username}
	user.Prepare()
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, failure("userStore.Create", err)
	}
	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feed.ErrUserNotFound
		}
		return nil, failure("userStore.FindByID", err)
	}
	return &user, nil
}
