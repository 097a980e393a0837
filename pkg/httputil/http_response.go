package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// RequestIDHeader carries the request id from the client and back to it.
const RequestIDHeader = "X-Request-ID"

type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteErrorResponse echoes the request id already set on the response so
// that clients can quote it when reporting a failure.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:      statusCode,
		Message:   message,
		RequestID: w.Header().Get(RequestIDHeader),
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return
	}
	writeJSON(w, statusCode, body)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response error", slog.String("error", err.Error()))
	}
}
