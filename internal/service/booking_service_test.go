package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository/mocks"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

func TestBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingsRepositoryI(ctrl)
	clock := newClock(2024, time.March, 10, 23, 0, 0)
	recorder := newRecorder()
	bs := service.NewBookingService(repo, clock.now, recorder)
	ctx := context.Background()
	accountID := uuid.New()
	tomorrow := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	attendees := func(n int) *int { return &n }

	t.Run("event priced from table", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		b, err := bs.Book(ctx, accountID, &service.BookingRequest{
			PickupDate:    tomorrow,
			TimeSlot:      entity.SlotMorning,
			WasteType:     entity.BookingEventWaste,
			AttendeeCount: attendees(450),
		})
		require.NoError(t, err)
		require.NotNil(t, b.BookingFee)
		assert.True(t, b.BookingFee.Equal(decimal.NewFromInt(700)))
		assert.False(t, b.NeedsFeeAdjustment)
		assert.Equal(t, entity.BookingScheduled, b.Status)
		assert.Equal(t, kolkata, b.PickupDate.Location())
		assert.Equal(t, 1, recorder.bookings[string(entity.BookingEventWaste)])
	})
	t.Run("large event needs admin", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		b, err := bs.Book(ctx, accountID, &service.BookingRequest{
			PickupDate:    tomorrow,
			TimeSlot:      entity.SlotAfternoon,
			WasteType:     entity.BookingEventWaste,
			AttendeeCount: attendees(1001),
		})
		require.NoError(t, err)
		assert.Nil(t, b.BookingFee)
		assert.True(t, b.NeedsFeeAdjustment)
	})
	t.Run("garden waste is free", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		b, err := bs.Book(ctx, accountID, &service.BookingRequest{
			PickupDate: tomorrow,
			TimeSlot:   entity.SlotMorning,
			WasteType:  entity.BookingGardenWaste,
		})
		require.NoError(t, err)
		assert.Nil(t, b.BookingFee)
		assert.Nil(t, b.AttendeeCount)
	})
	t.Run("event without attendees", func(t *testing.T) {
		_, err := bs.Book(ctx, accountID, &service.BookingRequest{
			PickupDate: tomorrow,
			TimeSlot:   entity.SlotMorning,
			WasteType:  entity.BookingEventWaste,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("pickup today", func(t *testing.T) {
		_, err := bs.Book(ctx, accountID, &service.BookingRequest{
			PickupDate: clock.now(),
			TimeSlot:   entity.SlotMorning,
			WasteType:  entity.BookingBulkHousehold,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("missing pickup date", func(t *testing.T) {
		_, err := bs.Book(ctx, accountID, &service.BookingRequest{
			TimeSlot:  entity.SlotMorning,
			WasteType: entity.BookingBulkHousehold,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown slot", func(t *testing.T) {
		_, err := bs.Book(ctx, accountID, &service.BookingRequest{
			PickupDate: tomorrow,
			TimeSlot:   entity.TimeSlot("Night"),
			WasteType:  entity.BookingBulkHousehold,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestBookingAdministration(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingsRepositoryI(ctrl)
	clock := newClock(2024, time.March, 10, 9, 0, 0)
	bs := service.NewBookingService(repo, clock.now, newRecorder())
	ctx := context.Background()
	id := uuid.New()

	t.Run("complete", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Booking{ID: id, Status: entity.BookingScheduled}, nil)
		repo.EXPECT().Complete(gomock.Any(), id).Return(nil)
		assert.NoError(t, bs.Complete(ctx, id))
	})
	t.Run("complete twice", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Booking{ID: id, Status: entity.BookingCompleted}, nil)
		assert.ErrorIs(t, bs.Complete(ctx, id), errorvalues.ErrBookingCompleted)
	})
	t.Run("complete missing", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, errorvalues.ErrBookingNotFound)
		assert.ErrorIs(t, bs.Complete(ctx, id), errorvalues.ErrBookingNotFound)
	})
	t.Run("adjust flagged fee", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Booking{ID: id, NeedsFeeAdjustment: true}, nil)
		repo.EXPECT().AdjustFee(gomock.Any(), gomock.Any()).Return(nil)
		b, err := bs.AdjustFee(ctx, id, decimal.NewFromInt(2500))
		require.NoError(t, err)
		assert.True(t, b.BookingFee.Equal(decimal.NewFromInt(2500)))
	})
	t.Run("adjust priced booking", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Booking{ID: id}, nil)
		_, err := bs.AdjustFee(ctx, id, decimal.NewFromInt(2500))
		assert.ErrorIs(t, err, errorvalues.ErrFeeNotAdjustable)
	})
	t.Run("adjust with zero fee", func(t *testing.T) {
		_, err := bs.AdjustFee(ctx, id, decimal.Zero)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
