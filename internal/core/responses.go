// AngelaMos | 2026
// responses.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type successEnvelope struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(
	w http.ResponseWriter,
	data any,
	page, pageSize, total int,
) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{
		Error: &AppError{Code: "BAD_REQUEST", Message: message},
	})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(w, http.StatusNotFound, errorEnvelope{
		Error: &AppError{Code: "NOT_FOUND", Message: resource + " not found"},
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, errorEnvelope{
		Error: &AppError{Code: "FORBIDDEN", Message: message},
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, errorEnvelope{
		Error: &AppError{Code: "UNAUTHORIZED", Message: message},
	})
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusServiceUnavailable, errorEnvelope{
		Error: &AppError{Code: "SERVICE_UNAVAILABLE", Message: message},
	})
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Error: &AppError{
			Code:    "INTERNAL_ERROR",
			Message: "an internal error occurred",
		},
	})
}

// JSONError writes an AppError with its own status code, falling back to
// a generic 500 for anything else.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorEnvelope{Error: appErr})
		return
	}

	InternalServerError(w, err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}
