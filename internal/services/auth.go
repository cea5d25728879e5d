package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByEmailOrPhone(ctx context.Context, key string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, name, email, phoneNumber, passwordHash string) (int64, error)
}

// ChildCreator creates the first child during registration.
type ChildCreator interface {
	Create(ctx context.Context, name string, birthDate *models.DateTime, birthPlace *string, parentID int64) (int64, error)
}

// TokenGenerator defines an interface for issuing signed tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthService handles registration and login.
type AuthService struct {
	userReader  UserReader
	userWriter  UserWriter
	childWriter ChildCreator
	jwt         TokenGenerator
	tx          TxRunner
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userReader UserReader, userWriter UserWriter, childWriter ChildCreator, jwt TokenGenerator, tx TxRunner) *AuthService {
	return &AuthService{
		userReader:  userReader,
		userWriter:  userWriter,
		childWriter: childWriter,
		jwt:         jwt,
		tx:          tx,
	}
}

// Register creates a user and their first child in one transaction and
// returns the canonical user row.
func (svc *AuthService) Register(ctx context.Context, name, childName, phoneNumber, email, password string) (*models.UserDB, error) {
	existing, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	var user *models.UserDB
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		userID, err := svc.userWriter.Create(ctx, name, email, phoneNumber, string(hashedPassword))
		if err != nil {
			return err
		}

		if _, err := svc.childWriter.Create(ctx, childName, nil, nil, userID); err != nil {
			return err
		}

		user, err = svc.userReader.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to register user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates by email or phone number and returns a token.
func (svc *AuthService) Login(ctx context.Context, key, password string) (string, error) {
	user, err := svc.userReader.GetByEmailOrPhone(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login failed: unknown key")
		return "", ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("login failed: password mismatch", "user_id", user.ID)
		return "", ErrWrongCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
