package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avoronov/boardkeeper/internal/server/auth"
	"github.com/avoronov/boardkeeper/internal/server/models"
)

// getTokenSubject is a seam for auth.GetSubjectFromToken, replaceable in tests.
var getTokenSubject = auth.GetSubjectFromToken

type ctxKey string

const userKey ctxKey = "user"

// CurrentUser returns the authenticated user stashed by authMiddleware.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// statusRecorder captures the status code written by a handler so the
// request log line can include it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogMiddleware tags every request with a correlation id and logs it
// once completed.
func (s *HTTPServer) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request completed",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// authMiddleware enforces bearer-token authentication. It verifies the token
// signature and expiry, resolves the subject email to a stored user and puts
// the user on the request context. Every failure mode is the same 401 with a
// bearer challenge; the response never says why.
func (s *HTTPServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.unauthenticated(w)
			return
		}

		email, err := getTokenSubject(token, s.jwtSecret)
		if err != nil {
			s.unauthenticated(w)
			return
		}

		user, err := s.users.GetByEmail(r.Context(), email)
		if err != nil {
			s.unauthenticated(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HTTPServer) unauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Could not validate credentials")
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
