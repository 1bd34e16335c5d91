package auth

import (
	"context"

	"github.com/staybluo/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(ctx context.Context, user *entities.User) error
	FindUserByEmail(ctx context.Context, email string) (entities.User, error)
	FindUserByIdentifier(ctx context.Context, id Identifier) (entities.User, error)
	FindUserByID(ctx context.Context, userID uint) (entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *repository) FindUserByIdentifier(ctx context.Context, id Identifier) (entities.User, error) {
	var user entities.User
	column := "email"
	if id.kind == byPhone {
		column = "phone"
	}
	err := r.db.WithContext(ctx).Where(column+" = ?", id.value).First(&user).Error
	return user, err
}

func (r *repository) FindUserByID(ctx context.Context, userID uint) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	return user, err
}

func (r *repository) UpdateUser(ctx context.Context, user entities.User) error {
	return r.db.WithContext(ctx).Save(&user).Error
}
