package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronov/boardkeeper/internal/common"
)

// errorResponse is the uniform error body: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeDomainError maps a service error onto the four exposed failure codes.
// Anything unclassified is a server-side failure and stays a bare 500.
func (s *HTTPServer) writeDomainError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, notFoundDetail)
	default:
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
