// Package httpapi exposes the JSON HTTP surface of the server. It translates
// requests into service calls and domain errors into status codes; all
// authorization decisions live in the services, not here.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/avoronov/boardkeeper/internal/logging"
	"github.com/avoronov/boardkeeper/internal/server/models"
)

// UserProvider is the slice of the user service the HTTP layer consumes.
type UserProvider interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// BoardProvider is the slice of the board service the HTTP layer consumes.
type BoardProvider interface {
	CreateBoard(ctx context.Context, ownerID int64, title string) (*models.Board, error)
	ListBoards(ctx context.Context, ownerID int64) ([]models.Board, error)
	GetBoard(ctx context.Context, ownerID, boardID int64) (*models.Board, error)
	CreateList(ctx context.Context, ownerID, boardID int64, title string) (*models.List, error)
	CreateCard(ctx context.Context, ownerID, listID int64, title, description string) (*models.Card, error)
}

type HTTPServer struct {
	address       string
	logger        logging.Logger
	users         UserProvider
	boards        BoardProvider
	jwtSecret     []byte
	allowedOrigin string
}

func NewHTTPServer(addr string, l logging.Logger, us UserProvider, bs BoardProvider, secretKey, allowedOrigin string) *HTTPServer {
	return &HTTPServer{
		address:       addr,
		logger:        l.With("module", "http_server"),
		users:         us,
		boards:        bs,
		jwtSecret:     []byte(secretKey),
		allowedOrigin: allowedOrigin,
	}
}

// Handler builds the full route tree with middleware applied. It is exposed
// separately from Run so tests can drive it through httptest.
func (s *HTTPServer) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requestLogMiddleware)

	// public routes
	api.HandleFunc("/users/register", s.registerUser).Methods(http.MethodPost)
	api.HandleFunc("/token", s.createToken).Methods(http.MethodPost)

	// bearer-token routes
	protected := api.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/boards/", s.createBoard).Methods(http.MethodPost)
	protected.HandleFunc("/boards/", s.listBoards).Methods(http.MethodGet)
	protected.HandleFunc("/boards/{id:[0-9]+}", s.getBoard).Methods(http.MethodGet)
	protected.HandleFunc("/boards/{id:[0-9]+}/lists", s.createList).Methods(http.MethodPost)
	protected.HandleFunc("/lists/{id:[0-9]+}/cards", s.createCard).Methods(http.MethodPost)

	// Cross-origin requests are allowed from exactly one configured origin,
	// the deployed front-end; everything else gets no CORS headers.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
