package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinic-booking-server/internal/models"
)

// UserStore is the persistence contract for user records. An interface so
// handler tests can substitute an in-memory implementation.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type gormUserStore struct {
	db *gorm.DB
}

// NewUserStore returns a UserStore backed by db. db may be nil when the
// startup connection failed; every call then reports ErrUnavailable.
func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index on email is the real duplicate guard; the
		// handler's pre-check only loses races.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
