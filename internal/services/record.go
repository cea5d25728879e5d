package services

import (
	"context"
	"time"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// WeightRecordReader defines read-only operations for device submissions.
type WeightRecordReader interface {
	GetByID(ctx context.Context, id int64) (*models.WeightRecordDB, error)
	GetLatestByBox(ctx context.Context, boxID string) (*models.WeightRecordDB, error)
}

// WeightRecordWriter defines write operations for device submissions.
type WeightRecordWriter interface {
	Create(ctx context.Context, boxID string, weight, length float64, recordedAt time.Time) (int64, error)
}

// RecordReader defines read-only operations for claimed records.
type RecordReader interface {
	GetByID(ctx context.Context, id int64) (*models.RecordDB, error)
	ListByChild(ctx context.Context, childID int64) ([]models.RecordDB, error)
}

// RecordWriter defines write operations for claimed records.
type RecordWriter interface {
	Create(ctx context.Context, childID int64, boxID string, weight, length float64, recordedAt time.Time) (int64, error)
}

// RecordService handles unauthenticated box submissions and the
// claiming of submissions into a child's permanent history. Claiming
// and listing operate on the caller's first child.
type RecordService struct {
	weightReader WeightRecordReader
	weightWriter WeightRecordWriter
	recordReader RecordReader
	recordWriter RecordWriter
	children     ChildReader
}

func NewRecordService(weightReader WeightRecordReader, weightWriter WeightRecordWriter, recordReader RecordReader, recordWriter RecordWriter, children ChildReader) *RecordService {
	return &RecordService{
		weightReader: weightReader,
		weightWriter: weightWriter,
		recordReader: recordReader,
		recordWriter: recordWriter,
		children:     children,
	}
}

// Submit stores a box measurement stamped with the current server time
// and returns the canonical row.
func (svc *RecordService) Submit(ctx context.Context, boxID string, weight, length float64) (*models.WeightRecordDB, error) {
	id, err := svc.weightWriter.Create(ctx, boxID, weight, length, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to store weight record", "err", err)
		return nil, err
	}
	return svc.weightReader.GetByID(ctx, id)
}

// Latest returns the most recent submission for a box, or nil when the
// box has never reported.
func (svc *RecordService) Latest(ctx context.Context, boxID string) (*models.WeightRecordDB, error) {
	return svc.weightReader.GetLatestByBox(ctx, boxID)
}

// Save claims a box submission into the caller's child: the
// measurement is copied, not moved, and stamped with the current
// server time.
func (svc *RecordService) Save(ctx context.Context, userID, recordID int64) (*models.RecordDB, error) {
	child, err := svc.children.FirstByParent(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get child", "err", err)
		return nil, err
	}
	if child == nil {
		return nil, ErrNoChild
	}

	weightRecord, err := svc.weightReader.GetByID(ctx, recordID)
	if err != nil {
		logger.Log.Errorw("failed to get weight record", "err", err)
		return nil, err
	}
	if weightRecord == nil {
		return nil, ErrInvalidRecordID
	}

	id, err := svc.recordWriter.Create(ctx, child.ID, weightRecord.BoxID, weightRecord.Weight, weightRecord.Length, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to save record", "err", err)
		return nil, err
	}

	return svc.recordReader.GetByID(ctx, id)
}

// List returns the saved records of the caller's child.
func (svc *RecordService) List(ctx context.Context, userID int64) ([]models.RecordDB, error) {
	child, err := svc.children.FirstByParent(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get child", "err", err)
		return nil, err
	}
	if child == nil {
		return nil, ErrNoChild
	}

	return svc.recordReader.ListByChild(ctx, child.ID)
}
