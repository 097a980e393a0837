package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository/mocks"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

func TestLogWaste(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountsRepositoryI(ctrl)
	logs := mocks.NewMockWasteLogsRepositoryI(ctrl)
	clock := newClock(2024, time.March, 10, 8, 0, 0)
	recorder := newRecorder()
	ws := service.NewWasteLogService(accounts, logs, clock.now, recorder)
	ctx := context.Background()

	household := func(mixed int, lastLog *time.Time) *entity.Account {
		return &entity.Account{
			ID:                        uuid.New(),
			Role:                      entity.RoleHousehold,
			OutstandingBalance:        decimal.NewFromInt(75),
			ConsecutiveMixedWasteLogs: mixed,
			LastWasteLogDate:          lastLog,
		}
	}
	yesterday := clock.now().AddDate(0, 0, -1)

	t.Run("third mixed log is fined", func(t *testing.T) {
		acc := household(2, &yesterday)
		accounts.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)
		logs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), engine.MixedWasteFine, gomock.Any()).DoAndReturn(
			func(_ context.Context, saved *entity.Account, log *entity.WasteLog, _ decimal.Decimal, notice *entity.Message) error {
				assert.Equal(t, 0, saved.ConsecutiveMixedWasteLogs)
				assert.Equal(t, entity.WasteMixed, log.WasteType)
				require.NotNil(t, notice)
				assert.Equal(t, acc.ID, notice.RecipientID)
				assert.Equal(t, engine.MixedWasteNotice, notice.Text)
				return nil
			})
		res, err := ws.LogWaste(ctx, acc.ID, entity.WasteMixed)
		require.NoError(t, err)
		assert.True(t, res.Accepted)
		assert.True(t, res.FineApplied)
		assert.True(t, res.Balance.Equal(decimal.NewFromInt(175)))
		assert.Equal(t, 1, recorder.fines)
	})
	t.Run("dry log resets run", func(t *testing.T) {
		acc := household(2, &yesterday)
		accounts.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)
		logs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), decimal.Zero, gomock.Nil()).Return(nil)
		res, err := ws.LogWaste(ctx, acc.ID, entity.WasteDry)
		require.NoError(t, err)
		assert.True(t, res.Accepted)
		assert.Equal(t, 0, res.ConsecutiveMixed)
		assert.True(t, res.Balance.Equal(decimal.NewFromInt(75)))
	})
	t.Run("second log of the day", func(t *testing.T) {
		earlier := clock.now().Add(-time.Hour)
		acc := household(1, &earlier)
		accounts.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)
		res, err := ws.LogWaste(ctx, acc.ID, entity.WasteMixed)
		require.NoError(t, err)
		assert.False(t, res.Accepted)
		assert.Equal(t, 1, res.ConsecutiveMixed)
	})
	t.Run("lost race", func(t *testing.T) {
		acc := household(0, &yesterday)
		accounts.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)
		logs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errorvalues.ErrAlreadyLoggedToday)
		res, err := ws.LogWaste(ctx, acc.ID, entity.WasteWet)
		require.NoError(t, err)
		assert.False(t, res.Accepted)
	})
	t.Run("unknown waste type", func(t *testing.T) {
		_, err := ws.LogWaste(ctx, uuid.New(), entity.WasteType("Plastic"))
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("staff account", func(t *testing.T) {
		acc := household(0, nil)
		acc.Role = entity.RoleDriver
		accounts.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)
		_, err := ws.LogWaste(ctx, acc.ID, entity.WasteWet)
		assert.ErrorIs(t, err, errorvalues.ErrWrongRole)
	})
	t.Run("storage failure", func(t *testing.T) {
		acc := household(0, nil)
		accounts.EXPECT().FindByID(gomock.Any(), acc.ID).Return(acc, nil)
		logs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
		_, err := ws.LogWaste(ctx, acc.ID, entity.WasteWet)
		assert.Error(t, err)
	})
}
