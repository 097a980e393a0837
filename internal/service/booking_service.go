package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type BookingService struct {
	repo   repository.BookingsRepositoryI
	now    Clock
	events EventRecorder
}

func NewBookingService(bookingsRepo repository.BookingsRepositoryI, clock Clock, events EventRecorder) *BookingService {
	return &BookingService{
		repo:   bookingsRepo,
		now:    clock,
		events: events,
	}
}

func (bs *BookingService) Book(ctx context.Context, accountID uuid.UUID, req *BookingRequest) (*entity.Booking, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := bs.now()
	if req.PickupDate.IsZero() {
		return nil, fmt.Errorf("%w: pickup date is required", errorvalues.ErrValidation)
	}
	// Pickup date is a calendar date; only its y-m-d matters
	y, m, d := req.PickupDate.Date()
	pickup := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if !pickup.After(engine.StartOfDay(now, now.Location())) {
		return nil, fmt.Errorf("%w: pickup date must be tomorrow or later", errorvalues.ErrValidation)
	}
	booking := &entity.Booking{
		AccountID:  accountID,
		PickupDate: pickup,
		TimeSlot:   req.TimeSlot,
		WasteType:  req.WasteType,
		Status:     entity.BookingScheduled,
		Notes:      req.Notes,
	}
	if req.WasteType == entity.BookingEventWaste {
		if req.AttendeeCount == nil {
			return nil, fmt.Errorf("%w: event waste needs attendee count", errorvalues.ErrValidation)
		}
		attendees := *req.AttendeeCount
		booking.AttendeeCount = &attendees
		fee := engine.CalculateEventFee(attendees)
		if fee.AdminAdjust {
			booking.NeedsFeeAdjustment = true
		} else {
			amount := fee.Amount
			booking.BookingFee = &amount
		}
	}
	if err := bs.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	bs.events.IncBooking(string(req.WasteType))
	return booking, nil
}

func (bs *BookingService) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Booking, error) {
	bookings, err := bs.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return bookings, nil
}

func (bs *BookingService) ListAll(ctx context.Context, opts PaginationOpts) ([]entity.Booking, error) {
	bookings, err := bs.repo.List(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return bookings, nil
}

func (bs *BookingService) Complete(ctx context.Context, id uuid.UUID) error {
	booking, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookingNotFound) {
			return err
		}
		return fmt.Errorf("repository searching error: %w", err)
	}
	if booking.Status == entity.BookingCompleted {
		return errorvalues.ErrBookingCompleted
	}
	if err := bs.repo.Complete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrBookingCompleted) {
			return err
		}
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}

// AdjustFee prices a booking the fee table could not price and bills its owner.
func (bs *BookingService) AdjustFee(ctx context.Context, id uuid.UUID, fee decimal.Decimal) (*entity.Booking, error) {
	if !fee.IsPositive() {
		return nil, fmt.Errorf("%w: fee must be positive", errorvalues.ErrValidation)
	}
	booking, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if !booking.NeedsFeeAdjustment {
		return nil, errorvalues.ErrFeeNotAdjustable
	}
	booking.BookingFee = &fee
	if err := bs.repo.AdjustFee(ctx, booking); err != nil {
		if errors.Is(err, errorvalues.ErrFeeNotAdjustable) {
			return nil, err
		}
		return nil, fmt.Errorf("repository updating error: %w", err)
	}
	return booking, nil
}
