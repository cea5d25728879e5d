package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apriyandi/timbangan-api/internal/models"
)

func TestRecordServiceSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weightReader := NewMockWeightRecordReader(ctrl)
	weightWriter := NewMockWeightRecordWriter(ctrl)

	before := time.Now()
	weightWriter.EXPECT().
		Create(gomock.Any(), "box-0042", 4.2, 53.5, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, _ float64, recordedAt time.Time) (int64, error) {
			// stamped with server time, not device time
			assert.False(t, recordedAt.Before(before))
			return 17, nil
		})
	weightReader.EXPECT().
		GetByID(gomock.Any(), int64(17)).
		Return(&models.WeightRecordDB{ID: 17, BoxID: "box-0042", Weight: 4.2, Length: 53.5}, nil)

	svc := NewRecordService(weightReader, weightWriter, NewMockRecordReader(ctrl), NewMockRecordWriter(ctrl), NewMockChildReader(ctrl))
	record, err := svc.Submit(context.Background(), "box-0042", 4.2, 53.5)
	require.NoError(t, err)
	assert.Equal(t, int64(17), record.ID)
}

func TestRecordServiceLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		weightReader := NewMockWeightRecordReader(ctrl)
		weightReader.EXPECT().
			GetLatestByBox(gomock.Any(), "box-0042").
			Return(&models.WeightRecordDB{ID: 17, BoxID: "box-0042"}, nil)

		svc := NewRecordService(weightReader, NewMockWeightRecordWriter(ctrl), NewMockRecordReader(ctrl), NewMockRecordWriter(ctrl), NewMockChildReader(ctrl))
		record, err := svc.Latest(context.Background(), "box-0042")
		require.NoError(t, err)
		assert.Equal(t, int64(17), record.ID)
	})

	t.Run("never reported", func(t *testing.T) {
		weightReader := NewMockWeightRecordReader(ctrl)
		weightReader.EXPECT().
			GetLatestByBox(gomock.Any(), "box-9999").
			Return(nil, nil)

		svc := NewRecordService(weightReader, NewMockWeightRecordWriter(ctrl), NewMockRecordReader(ctrl), NewMockRecordWriter(ctrl), NewMockChildReader(ctrl))
		record, err := svc.Latest(context.Background(), "box-9999")
		assert.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestRecordServiceSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("copies the measurement into the first child", func(t *testing.T) {
		weightReader := NewMockWeightRecordReader(ctrl)
		recordReader := NewMockRecordReader(ctrl)
		recordWriter := NewMockRecordWriter(ctrl)
		children := NewMockChildReader(ctrl)

		children.EXPECT().
			FirstByParent(gomock.Any(), int64(7)).
			Return(&models.ChildDB{ID: 3, ParentID: 7}, nil)
		weightReader.EXPECT().
			GetByID(gomock.Any(), int64(17)).
			Return(&models.WeightRecordDB{ID: 17, BoxID: "box-0042", Weight: 4.2, Length: 53.5}, nil)
		recordWriter.EXPECT().
			Create(gomock.Any(), int64(3), "box-0042", 4.2, 53.5, gomock.Any()).
			Return(int64(5), nil)
		recordReader.EXPECT().
			GetByID(gomock.Any(), int64(5)).
			Return(&models.RecordDB{ID: 5, ChildID: 3, BoxID: "box-0042", Weight: 4.2, Length: 53.5}, nil)

		svc := NewRecordService(weightReader, NewMockWeightRecordWriter(ctrl), recordReader, recordWriter, children)
		record, err := svc.Save(context.Background(), 7, 17)
		require.NoError(t, err)
		assert.Equal(t, int64(3), record.ChildID)
	})

	t.Run("caller without a child", func(t *testing.T) {
		children := NewMockChildReader(ctrl)
		children.EXPECT().
			FirstByParent(gomock.Any(), int64(7)).
			Return(nil, nil)

		svc := NewRecordService(NewMockWeightRecordReader(ctrl), NewMockWeightRecordWriter(ctrl), NewMockRecordReader(ctrl), NewMockRecordWriter(ctrl), children)
		record, err := svc.Save(context.Background(), 7, 17)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrNoChild)
	})

	t.Run("unknown record id", func(t *testing.T) {
		weightReader := NewMockWeightRecordReader(ctrl)
		children := NewMockChildReader(ctrl)

		children.EXPECT().
			FirstByParent(gomock.Any(), int64(7)).
			Return(&models.ChildDB{ID: 3, ParentID: 7}, nil)
		weightReader.EXPECT().
			GetByID(gomock.Any(), int64(17)).
			Return(nil, nil)

		svc := NewRecordService(weightReader, NewMockWeightRecordWriter(ctrl), NewMockRecordReader(ctrl), NewMockRecordWriter(ctrl), children)
		record, err := svc.Save(context.Background(), 7, 17)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrInvalidRecordID)
	})
}

func TestRecordServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists the first child's records", func(t *testing.T) {
		recordReader := NewMockRecordReader(ctrl)
		children := NewMockChildReader(ctrl)

		children.EXPECT().
			FirstByParent(gomock.Any(), int64(7)).
			Return(&models.ChildDB{ID: 3, ParentID: 7}, nil)
		recordReader.EXPECT().
			ListByChild(gomock.Any(), int64(3)).
			Return([]models.RecordDB{{ID: 1, ChildID: 3}, {ID: 2, ChildID: 3}}, nil)

		svc := NewRecordService(NewMockWeightRecordReader(ctrl), NewMockWeightRecordWriter(ctrl), recordReader, NewMockRecordWriter(ctrl), children)
		records, err := svc.List(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("caller without a child", func(t *testing.T) {
		children := NewMockChildReader(ctrl)
		children.EXPECT().
			FirstByParent(gomock.Any(), int64(7)).
			Return(nil, nil)

		svc := NewRecordService(NewMockWeightRecordReader(ctrl), NewMockWeightRecordWriter(ctrl), NewMockRecordReader(ctrl), NewMockRecordWriter(ctrl), children)
		records, err := svc.List(context.Background(), 7)
		assert.Nil(t, records)
		assert.ErrorIs(t, err, ErrNoChild)
	})
}
