package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository 接口定义
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserModel, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*UserModel, error)
}

// repository 具体实现
type repository struct {
	db *gorm.DB
}

// NewRepository 构造函数
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID 不存在返回 nil, nil
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*UserModel, error) {
	var u UserModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*UserModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*UserModel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{})
}
