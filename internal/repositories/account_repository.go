package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByGoogleID(ctx context.Context, googleID string) (*db_models.Account, error)
	// FindByValidResetToken matches only when the stored expiry is strictly
	// in the future.
	FindByValidResetToken(ctx context.Context, token string, now int64) (*db_models.Account, error)

	UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt int64) error
	// ResetPassword stores the new hash and clears the reset token in one
	// update so the token cannot be replayed.
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return a.findOne(ctx, "id = ?", id)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.findOne(ctx, "email = ?", email)
}

func (a *accountRepository) FindByGoogleID(ctx context.Context, googleID string) (*db_models.Account, error) {
	return a.findOne(ctx, "google_id = ?", googleID)
}

func (a *accountRepository) FindByValidResetToken(ctx context.Context, token string, now int64) (*db_models.Account, error) {
	return a.findOne(ctx, "reset_token = ? AND reset_token_expires_at > ?", token, now)
}

func (a *accountRepository) findOne(ctx context.Context, query string, args ...interface{}) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, append([]interface{}{query}, args...)...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("role", role).Error
}

func (a *accountRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt int64) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token":            token,
			"reset_token_expires_at": expiresAt,
		}).Error
}

func (a *accountRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":          passwordHash,
			"reset_token":            nil,
			"reset_token_expires_at": nil,
		}).Error
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
