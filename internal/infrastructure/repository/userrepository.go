package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chefviral/internal/domain/user"
	"chefviral/internal/infrastructure/persistence/models"
	apperrors "chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// UserRepositoryImpl persists accounts.
type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB, log logger.Interface) user.Repository {
	return &UserRepositoryImpl{db: db, logger: log}
}

func (r *UserRepositoryImpl) toEntity(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(model.ID, model.SID, model.Email, model.LastLoginAt, model.CreatedAt, model.UpdatedAt)
}

func (r *UserRepositoryImpl) toModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.DBID(),
		SID:         u.SID(),
		Email:       u.Email(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.toModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("account already exists")
		}
		r.logger.Errorw("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetDBID(model.ID)
	return nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", user.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.toEntity(&model)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.toEntity(&model)
}

func (r *UserRepositoryImpl) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.toEntity(&model)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := r.toModel(u)
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", u.DBID()).
		Omit("id", "sid", "created_at").
		Updates(model).Error; err != nil {
		r.logger.Errorw("failed to update user", "error", err, "user_id", u.DBID())
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
