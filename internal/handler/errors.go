package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because only the handler knows what was
// being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a request rejected before it
// reaches the service layer.
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "bad_request", Message: message}}
}

// requestError renders a body the generated decoder could not read:
// 413 when the size limit cut it off, 400 otherwise.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		writeError(w, http.StatusRequestEntityTooLarge,
			gen.ErrorResponse{Error: gen.ErrorDetail{Code: "too_large", Message: "request body too large"}})
		return
	}
	writeError(w, http.StatusBadRequest, requestBody(err.Error()))
}

// paramError renders a path or query parameter the generated router could not bind.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, requestBody(err.Error()))
}

// responseError logs an unexpected service error and hides it behind a 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError,
		gen.ErrorResponse{Error: gen.ErrorDetail{Code: "internal_error", Message: "internal server error"}})
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: destination is required"
// → "destination is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
