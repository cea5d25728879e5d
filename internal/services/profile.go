package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// ProfileWriter defines write operations on the caller's own user row.
type ProfileWriter interface {
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// ProfileService reads and updates the authenticated user's profile.
type ProfileService struct {
	reader UserReader
	writer ProfileWriter
	tx     TxRunner
}

func NewProfileService(reader UserReader, writer ProfileWriter, tx TxRunner) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		tx:     tx,
	}
}

// Get returns the caller's user row.
func (svc *ProfileService) Get(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial profile update and returns the canonical
// row. An empty field set skips the UPDATE but still re-reads.
func (svc *ProfileService) Update(ctx context.Context, userID int64, name *string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	fields := map[string]any{}
	if name != nil {
		fields["name"] = *name
	}

	var user *models.UserDB
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := svc.writer.UpdateFields(ctx, userID, fields); err != nil {
			return err
		}
		user, err = svc.reader.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return nil, err
	}

	return user, nil
}

// ChangePassword rehashes and overwrites the caller's password.
func (svc *ProfileService) ChangePassword(ctx context.Context, userID int64, password string) error {
	existing, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	return nil
}
