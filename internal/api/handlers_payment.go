package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

type SubmitPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Screenshot string          `json:"screenshot"`
}

type ReviewPaymentRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

func (s *Server) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit payment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("submit payment error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	payment, err := s.paymentService.Submit(ctx, uid, req.Amount, req.Screenshot)
	if err != nil {
		writeServiceError(w, logger, "submit payment", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusAccepted, payment)
	logger.Info("payment submitted", slog.String("payment_id", payment.ID.String()))
}

func (s *Server) ListPayments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get payments error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	payments, err := s.paymentService.ListForAccount(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get payments", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payments)
	logger.Info("payments provided")
}

func (s *Server) ListPaymentsByStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	status := entity.PaymentStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = entity.PaymentPending
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	payments, err := s.paymentService.ListByStatus(ctx, status)
	if err != nil {
		writeServiceError(w, logger, "list payments", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payments)
	logger.Info("payments provided", slog.String("status", string(status)))
}

func (s *Server) ReviewPayment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("review payment error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid payment id in path value", nil)
		return
	}
	var req ReviewPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("review payment error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	payment, err := s.paymentService.Review(ctx, id, req.Approve, req.Reason)
	if err != nil {
		writeServiceError(w, logger, "review payment", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payment)
	logger.Info("payment reviewed", slog.String("payment_id", id.String()), slog.String("status", string(payment.Status)))
}
