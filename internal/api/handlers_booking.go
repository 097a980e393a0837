package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

const pickupDateLayout = "2006-01-02"

type CreateBookingRequest struct {
	// Calendar date, YYYY-MM-DD
	PickupDate    string                  `json:"pickup_date"`
	TimeSlot      entity.TimeSlot         `json:"time_slot"`
	WasteType     entity.BookingWasteType `json:"waste_type"`
	Notes         string                  `json:"notes"`
	AttendeeCount *int                    `json:"attendee_count"`
}

type AdjustFeeRequest struct {
	Fee decimal.Decimal `json:"fee"`
}

type GetBookingsResponse struct {
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Bookings []entity.Booking `json:"bookings"`
}

func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create booking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("create booking error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	pickup, err := time.Parse(pickupDateLayout, req.PickupDate)
	if err != nil {
		logger.Error("create booking error: invalid pickup date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "pickup_date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	booking, err := s.bookingService.Book(ctx, uid, &service.BookingRequest{
		PickupDate:    pickup,
		TimeSlot:      req.TimeSlot,
		WasteType:     req.WasteType,
		Notes:         req.Notes,
		AttendeeCount: req.AttendeeCount,
	})
	if err != nil {
		writeServiceError(w, logger, "create booking", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, booking)
	logger.Info("booking created", slog.String("booking_id", booking.ID.String()))
}

func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get bookings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	bookings, err := s.bookingService.ListForAccount(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get bookings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, bookings)
	logger.Info("bookings provided")
}

func (s *Server) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, limit, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	bookings, err := s.bookingService.ListAll(ctx, opts)
	if err != nil {
		writeServiceError(w, logger, "list bookings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetBookingsResponse{
		Page:     page,
		Limit:    limit,
		Bookings: bookings,
	})
	logger.Info("bookings provided")
}

func (s *Server) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("complete booking error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid booking id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.bookingService.Complete(ctx, id); err != nil {
		writeServiceError(w, logger, "complete booking", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("booking completed", slog.String("booking_id", id.String()))
}

func (s *Server) AdjustBookingFee(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("adjust fee error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid booking id in path value", nil)
		return
	}
	var req AdjustFeeRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("adjust fee error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	booking, err := s.bookingService.AdjustFee(ctx, id, req.Fee)
	if err != nil {
		writeServiceError(w, logger, "adjust fee", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, booking)
	logger.Info("booking fee adjusted", slog.String("booking_id", id.String()), slog.String("fee", req.Fee.String()))
}
