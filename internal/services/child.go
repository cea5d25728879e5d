package services

import (
	"context"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// ChildReader defines read-only operations for children.
type ChildReader interface {
	ListByParent(ctx context.Context, parentID int64) ([]models.ChildDB, error)
	GetByID(ctx context.Context, id int64) (*models.ChildDB, error)
	GetByIDAndParent(ctx context.Context, id, parentID int64) (*models.ChildDB, error)
	FirstByParent(ctx context.Context, parentID int64) (*models.ChildDB, error)
}

// ChildWriter defines write operations for children.
type ChildWriter interface {
	Create(ctx context.Context, name string, birthDate *models.DateTime, birthPlace *string, parentID int64) (int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// ChildService manages children owned by the authenticated user. Every
// operation on an existing child is scoped by parent_id equality; there
// is no shared or hierarchical access.
type ChildService struct {
	reader ChildReader
	writer ChildWriter
	users  UserReader
	tx     TxRunner
}

func NewChildService(reader ChildReader, writer ChildWriter, users UserReader, tx TxRunner) *ChildService {
	return &ChildService{
		reader: reader,
		writer: writer,
		users:  users,
		tx:     tx,
	}
}

// List returns all children of the caller.
func (svc *ChildService) List(ctx context.Context, userID int64) ([]models.ChildDB, error) {
	if err := svc.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return svc.reader.ListByParent(ctx, userID)
}

// Create adds a child owned by the caller and returns the canonical row.
func (svc *ChildService) Create(ctx context.Context, userID int64, name string, birthDate *models.DateTime, birthPlace *string) (*models.ChildDB, error) {
	if err := svc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	id, err := svc.writer.Create(ctx, name, birthDate, birthPlace, userID)
	if err != nil {
		logger.Log.Errorw("failed to create child", "err", err)
		return nil, err
	}

	return svc.reader.GetByID(ctx, id)
}

// Get returns the child with its parent attached, if owned by the caller.
func (svc *ChildService) Get(ctx context.Context, userID, childID int64) (*models.ChildDetail, error) {
	child, err := svc.reader.GetByIDAndParent(ctx, childID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get child", "err", err)
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}

	detail := &models.ChildDetail{ChildDB: *child}

	parent, err := svc.users.GetByID(ctx, child.ParentID)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "err", err)
		return nil, err
	}
	if parent != nil {
		detail.Parent = &models.ParentDB{Name: parent.Name}
	}

	return detail, nil
}

// Update applies a partial update to an owned child and returns the
// canonical row. An empty field set skips the UPDATE but still re-reads.
func (svc *ChildService) Update(ctx context.Context, userID, childID int64, fields map[string]any) (*models.ChildDB, error) {
	existing, err := svc.reader.GetByIDAndParent(ctx, childID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get child", "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrChildNotFound
	}

	var child *models.ChildDB
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := svc.writer.UpdateFields(ctx, childID, fields); err != nil {
			return err
		}
		child, err = svc.reader.GetByID(ctx, childID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to update child", "err", err)
		return nil, err
	}

	return child, nil
}

// Delete removes an owned child.
func (svc *ChildService) Delete(ctx context.Context, userID, childID int64) error {
	existing, err := svc.reader.GetByIDAndParent(ctx, childID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get child", "err", err)
		return err
	}
	if existing == nil {
		return ErrChildNotFound
	}

	if err := svc.writer.Delete(ctx, childID); err != nil {
		logger.Log.Errorw("failed to delete child", "err", err)
		return err
	}

	return nil
}

func (svc *ChildService) requireUser(ctx context.Context, userID int64) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
