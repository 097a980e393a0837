package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

type UpdateProfileRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	BookingReminders *bool   `json:"booking_reminders"`
}

type ProvisionRequest struct {
	Name       string      `json:"name"`
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
	Role       entity.Role `json:"role"`
}

type WarnRequest struct {
	Message string `json:"message"`
}

type BlockRequest struct {
	Blocked bool `json:"blocked"`
}

type AttendanceRequest struct {
	Status entity.AttendanceStatus `json:"status"`
}

type GetAccountsResponse struct {
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Accounts []*entity.Account `json:"accounts"`
}

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, acc)
	logger.Info("profile provided")
}

func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("update profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.UpdateProfile(ctx, uid, &service.ProfileUpdate{
		Name:             req.Name,
		Email:            req.Email,
		BookingReminders: req.BookingReminders,
	})
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, acc)
	logger.Info("profile updated")
}

func (s *Server) ListAccounts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, limit, opts := pagination(r)
	role := entity.Role(r.URL.Query().Get("role"))
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	accounts, err := s.accountService.List(ctx, role, opts)
	if err != nil {
		writeServiceError(w, logger, "list accounts", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAccountsResponse{
		Page:     page,
		Limit:    limit,
		Accounts: accounts,
	})
	logger.Info("accounts provided")
}

func (s *Server) ProvisionAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ProvisionRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("provision error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.Provision(ctx, &service.ProvisionRequest{
		Name:       req.Name,
		Identifier: req.Identifier,
		Password:   req.Password,
		Role:       req.Role,
	})
	if err != nil {
		writeServiceError(w, logger, "provision", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, acc)
	logger.Info("account provisioned", slog.String("account_id", acc.ID.String()), slog.String("account_role", string(acc.Role)))
}

func (s *Server) GetAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get account error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get account", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, acc)
	logger.Info("account provided")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("account deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.accountService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted", slog.String("account_id", id.String()))
}

func (s *Server) WarnAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("warn error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	var req WarnRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("warn error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.accountService.Warn(ctx, id, req.Message); err != nil {
		writeServiceError(w, logger, "warn", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account warned", slog.String("account_id", id.String()))
}

func (s *Server) ClearWarning(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("clear warning error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.accountService.ClearWarning(ctx, id); err != nil {
		writeServiceError(w, logger, "clear warning", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("warning cleared", slog.String("account_id", id.String()))
}

func (s *Server) SetBlocked(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("block error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	var req BlockRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("block error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.accountService.SetBlocked(ctx, id, req.Blocked); err != nil {
		writeServiceError(w, logger, "block", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("block flag changed", slog.String("account_id", id.String()), slog.Bool("blocked", req.Blocked))
}

func (s *Server) SetAttendance(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("attendance error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	var req AttendanceRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("attendance error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.accountService.SetAttendance(ctx, id, req.Status); err != nil {
		writeServiceError(w, logger, "attendance", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("attendance set", slog.String("account_id", id.String()), slog.String("status", string(req.Status)))
}
