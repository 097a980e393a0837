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

type SignupRequest struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	FamilySize int    `json:"family_size"`
	Area       string `json:"area"`
	Landmark   string `json:"landmark"`
	Pincode    string `json:"pincode"`
}

type LoginRequest struct {
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
	Role       entity.Role `json:"role,omitempty"`
}

type LoginResponse struct {
	UserID  string          `json:"uid"`
	Token   string          `json:"token"`
	Account *entity.Account `json:"account"`
}

func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignupRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("signup error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.Signup(ctx, &service.SignupRequest{
		Name:       req.Name,
		Identifier: req.Identifier,
		Password:   req.Password,
		FamilySize: req.FamilySize,
		Area:       req.Area,
		Landmark:   req.Landmark,
		Pincode:    req.Pincode,
	})
	if err != nil {
		writeServiceError(w, logger, "signup", err)
		return
	}
	s.writeLogin(w, logger, http.StatusCreated, acc)
	logger.Info("successful signup", slog.String("uid", acc.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.Login(ctx, req.Identifier, req.Password, clientIP(r))
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	s.writeLogin(w, logger, http.StatusOK, acc)
	logger.Info("successful login", slog.String("uid", acc.ID.String()))
}

func (s *Server) StaffLogin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("staff login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.StaffLogin(ctx, req.Identifier, req.Password, req.Role, clientIP(r))
	if err != nil {
		writeServiceError(w, logger, "staff login", err)
		return
	}
	s.writeLogin(w, logger, http.StatusOK, acc)
	logger.Info("successful staff login",
		slog.String("uid", acc.ID.String()),
		slog.String("attendance", string(acc.AttendanceStatus)))
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("admin login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	acc, err := s.accountService.AdminLogin(ctx, req.Identifier, req.Password)
	if err != nil {
		writeServiceError(w, logger, "admin login", err)
		return
	}
	s.writeLogin(w, logger, http.StatusOK, acc)
	logger.Info("successful admin login", slog.String("uid", acc.ID.String()))
}

func (s *Server) writeLogin(w http.ResponseWriter, logger *slog.Logger, code int, acc *entity.Account) {
	token, err := s.jwtService.GenerateToken(acc)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, code, LoginResponse{
		UserID:  acc.ID.String(),
		Token:   token,
		Account: acc,
	})
}
