package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/apriyandi/timbangan-api/internal/models"
)

func TestProfileServiceGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7, Name: "Siti Rahma"}, nil)

		svc := NewProfileService(reader, NewMockProfileWriter(ctrl), NewMockTxRunner(ctrl))
		user, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Siti Rahma", user.Name)
	})

	t.Run("missing row", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(nil, nil)

		svc := NewProfileService(reader, NewMockProfileWriter(ctrl), NewMockTxRunner(ctrl))
		user, err := svc.Get(context.Background(), 7)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestProfileServiceUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	name := "Siti Aminah"

	t.Run("rename", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockProfileWriter(ctrl)
		tx := NewMockTxRunner(ctrl)
		passthroughTx(tx)

		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7, Name: "Siti Rahma"}, nil)
		writer.EXPECT().
			UpdateFields(gomock.Any(), int64(7), map[string]any{"name": name}).
			Return(nil)
		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7, Name: name}, nil)

		svc := NewProfileService(reader, writer, tx)
		user, err := svc.Update(context.Background(), 7, &name)
		require.NoError(t, err)
		assert.Equal(t, name, user.Name)
	})

	t.Run("nil name updates nothing but re-reads", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockProfileWriter(ctrl)
		tx := NewMockTxRunner(ctrl)
		passthroughTx(tx)

		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7, Name: "Siti Rahma"}, nil).
			Times(2)
		writer.EXPECT().
			UpdateFields(gomock.Any(), int64(7), map[string]any{}).
			Return(nil)

		svc := NewProfileService(reader, writer, tx)
		user, err := svc.Update(context.Background(), 7, nil)
		require.NoError(t, err)
		assert.Equal(t, "Siti Rahma", user.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(nil, nil)

		svc := NewProfileService(reader, NewMockProfileWriter(ctrl), NewMockTxRunner(ctrl))
		user, err := svc.Update(context.Background(), 7, &name)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestProfileServiceChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("stores a fresh digest", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockProfileWriter(ctrl)

		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7}, nil)
		writer.EXPECT().
			UpdatePassword(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, passwordHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret456")))
				return nil
			})

		svc := NewProfileService(reader, writer, NewMockTxRunner(ctrl))
		assert.NoError(t, svc.ChangePassword(context.Background(), 7, "secret456"))
	})

	t.Run("missing user", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		reader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(nil, nil)

		svc := NewProfileService(reader, NewMockProfileWriter(ctrl), NewMockTxRunner(ctrl))
		assert.ErrorIs(t, svc.ChangePassword(context.Background(), 7, "secret456"), ErrUserNotFound)
	})
}
