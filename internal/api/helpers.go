package api

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/httputil"
)

const maxBodySize = 8 << 20

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
}

// pagination reads page and limit query params. Limit defaults to 10 and is
// capped at 50.
func pagination(r *http.Request) (page, limit int, opts service.PaginationOpts) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// clientIP strips the port from the remote address RealIP left in the request.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// writeServiceError logs err under op and maps it to a response.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "account with such identifier already exists", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "account doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(op + " error: wrong password")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid identifier or password", nil)
	case errors.Is(err, errorvalues.ErrAccountBlocked):
		logger.Error(op + " error: blocked account")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "account is blocked", nil)
	case errors.Is(err, errorvalues.ErrPortalDenied):
		logger.Error(op + " error: wrong portal")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "access denied for this portal", nil)
	case errors.Is(err, errorvalues.ErrWrongRole):
		logger.Error(op + " error: wrong role")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "operation not allowed for this account", nil)
	case errors.Is(err, errorvalues.ErrPaymentNotFound),
		errors.Is(err, errorvalues.ErrBookingNotFound),
		errors.Is(err, errorvalues.ErrComplaintNotFound),
		errors.Is(err, errorvalues.ErrNoActiveDriver):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrPaymentSettled),
		errors.Is(err, errorvalues.ErrBookingCompleted),
		errors.Is(err, errorvalues.ErrFeeNotAdjustable),
		errors.Is(err, errorvalues.ErrAlreadyLoggedToday):
		logger.Error(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
