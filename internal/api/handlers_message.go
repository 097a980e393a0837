package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

type SendMessageRequest struct {
	Text string `json:"text"`
}

type BroadcastRequest struct {
	Message string `json:"message"`
}

func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get messages error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	msgs, err := s.messageService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get messages", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, msgs)
	logger.Info("messages provided")
}

func (s *Server) MarkMessagesRead(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark read error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	n, err := s.messageService.MarkRead(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "mark read", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"marked": n})
	logger.Info("messages marked read", slog.Int64("count", n))
}

func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("send message error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid account id in path value", nil)
		return
	}
	var req SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("send message error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	msg, err := s.messageService.Notify(ctx, id, req.Text)
	if err != nil {
		writeServiceError(w, logger, "send message", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, msg)
	logger.Info("message sent", slog.String("recipient_id", id.String()))
}

func (s *Server) GetBroadcast(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	msg, err := s.messageService.Broadcast(ctx)
	if err != nil {
		writeServiceError(w, logger, "get broadcast", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BroadcastRequest{Message: msg})
}

func (s *Server) SetBroadcast(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req BroadcastRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("set broadcast error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.messageService.SetBroadcast(ctx, req.Message); err != nil {
		writeServiceError(w, logger, "set broadcast", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("broadcast updated")
}
