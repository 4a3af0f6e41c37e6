package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avoronov/boardkeeper/internal/server/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type cardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *HTTPServer) registerUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeDomainError(w, r, err, "")
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// createToken is the login endpoint. Credentials arrive form-encoded as
// username/password (OAuth2 password-grant shape), not as JSON.
func (s *HTTPServer) createToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		s.writeDomainError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *HTTPServer) createBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		s.unauthenticated(w)
		return
	}

	var req titleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := s.boards.CreateBoard(r.Context(), user.ID, req.Title)
	if err != nil {
		s.writeDomainError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, board)
}

func (s *HTTPServer) listBoards(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		s.unauthenticated(w)
		return
	}

	boards, err := s.boards.ListBoards(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err, "")
		return
	}
	if boards == nil {
		boards = []models.Board{}
	}

	writeJSON(w, http.StatusOK, boards)
}

func (s *HTTPServer) getBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		s.unauthenticated(w)
		return
	}

	boardID := pathID(r)

	board, err := s.boards.GetBoard(r.Context(), user.ID, boardID)
	if err != nil {
		s.writeDomainError(w, r, err, "Board not found or you do not have permission to view it")
		return
	}

	writeJSON(w, http.StatusOK, board)
}

func (s *HTTPServer) createList(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		s.unauthenticated(w)
		return
	}

	var req titleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	list, err := s.boards.CreateList(r.Context(), user.ID, pathID(r), req.Title)
	if err != nil {
		s.writeDomainError(w, r, err, "Board not found or you do not have permission")
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

func (s *HTTPServer) createCard(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		s.unauthenticated(w)
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := s.boards.CreateCard(r.Context(), user.ID, pathID(r), req.Title, req.Description)
	if err != nil {
		s.writeDomainError(w, r, err, "List not found or you do not have permission")
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// pathID returns the {id} route variable. The route pattern constrains it to
// digits; an id too large for int64 clamps to the maximum value, which
// matches no row and yields the usual 404.
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
