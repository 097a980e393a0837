package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

type FileComplaintRequest struct {
	Issue   string `json:"issue"`
	Details string `json:"details"`
	Photo   string `json:"photo"`
}

type ComplaintStatusRequest struct {
	Status entity.ComplaintStatus `json:"status"`
}

type FeedbackRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ETAResponse struct {
	ETA string `json:"eta"`
}

func (s *Server) FileComplaint(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("file complaint error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req FileComplaintRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("file complaint error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	complaint, err := s.complaintService.File(ctx, uid, &service.ComplaintRequest{
		Issue:   req.Issue,
		Details: req.Details,
		Photo:   req.Photo,
	})
	if err != nil {
		writeServiceError(w, logger, "file complaint", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, complaint)
	logger.Info("complaint filed", slog.String("complaint_id", complaint.ID.String()))
}

func (s *Server) ListComplaints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get complaints error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	complaints, err := s.complaintService.ListForAccount(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get complaints", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, complaints)
	logger.Info("complaints provided")
}

func (s *Server) ListAllComplaints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, _, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	complaints, err := s.complaintService.ListAll(ctx, opts)
	if err != nil {
		writeServiceError(w, logger, "list complaints", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, complaints)
	logger.Info("complaints provided")
}

func (s *Server) SetComplaintStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("complaint status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid complaint id in path value", nil)
		return
	}
	var req ComplaintStatusRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("complaint status error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.complaintService.SetStatus(ctx, id, req.Status); err != nil {
		writeServiceError(w, logger, "complaint status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("complaint status changed", slog.String("complaint_id", id.String()))
}

func (s *Server) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("feedback error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req FeedbackRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("feedback error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	fb, err := s.feedbackService.Submit(ctx, uid, &service.FeedbackRequest{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		writeServiceError(w, logger, "feedback", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, fb)
	logger.Info("feedback submitted")
}

func (s *Server) ListFeedback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, _, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	feedback, err := s.feedbackService.List(ctx, opts)
	if err != nil {
		writeServiceError(w, logger, "list feedback", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, feedback)
	logger.Info("feedback provided")
}

func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ChatRequest
	if err := decodeBody(r, &req); err != nil || req.Prompt == "" {
		logger.Error("chat error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	reply := s.chatService.Chat(ctx, req.Prompt)
	httputil.WriteJSONResponse(w, http.StatusOK, ChatResponse{Reply: reply})
	logger.Info("chat answered")
}

func (s *Server) GetActiveDriver(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	driver, err := s.trackingService.ActiveDriver(ctx)
	if err != nil {
		writeServiceError(w, logger, "active driver", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, driver)
}

func (s *Server) GetETA(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		logger.Error("eta error: invalid coordinates")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "lat and lng query params are required", nil)
		return
	}
	household := entity.Location{Lat: lat, Lng: lng}
	if !household.Valid() {
		logger.Error("eta error: coordinates out of range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "lat must be within [-90, 90] and lng within [-180, 180]", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	eta := s.trackingService.ETA(ctx, household)
	httputil.WriteJSONResponse(w, http.StatusOK, ETAResponse{ETA: eta})
	logger.Info("eta provided", slog.String("eta", eta))
}

func (s *Server) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update location error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req entity.Location
	if err := decodeBody(r, &req); err != nil {
		logger.Error("update location error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.trackingService.UpdateLocation(ctx, uid, req); err != nil {
		writeServiceError(w, logger, "update location", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	plans, err := s.settingsService.Plans(ctx)
	if err != nil {
		writeServiceError(w, logger, "get plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
}

func (s *Server) UpdatePlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req entity.SubscriptionPlans
	if err := decodeBody(r, &req); err != nil {
		logger.Error("update plans error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.settingsService.UpdatePlans(ctx, &req); err != nil {
		writeServiceError(w, logger, "update plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, req)
	logger.Info("plans updated")
}
