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

type LogWasteRequest struct {
	WasteType entity.WasteType `json:"waste_type"`
}

type LogWasteResponse struct {
	Accepted         bool            `json:"accepted"`
	ConsecutiveMixed int             `json:"consecutive_mixed"`
	FineApplied      bool            `json:"fine_applied"`
	Balance          decimal.Decimal `json:"balance"`
	Notice           string          `json:"notice,omitempty"`
}

type GetWasteLogsResponse struct {
	UserID string            `json:"uid"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
	Logs   []entity.WasteLog `json:"logs"`
}

func (s *Server) LogWaste(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log waste error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogWasteRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("log waste error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.wasteLogService.LogWaste(ctx, uid, req.WasteType)
	if err != nil {
		writeServiceError(w, logger, "log waste", err)
		return
	}
	resp := LogWasteResponse{
		Accepted:         res.Accepted,
		ConsecutiveMixed: res.ConsecutiveMixed,
		FineApplied:      res.FineApplied,
		Balance:          res.Balance,
		Notice:           res.Notice,
	}
	if !res.Accepted {
		httputil.WriteJSONResponse(w, http.StatusOK, resp)
		logger.Info("waste already logged today")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
	logger.Info("waste logged", slog.String("waste_type", string(req.WasteType)), slog.Bool("fine", res.FineApplied))
}

func (s *Server) ListWasteLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get waste logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.wasteLogService.ListLogs(ctx, uid, opts)
	if err != nil {
		writeServiceError(w, logger, "get waste logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWasteLogsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Logs:   logs,
	})
	logger.Info("waste logs provided")
}
