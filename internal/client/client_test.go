package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronov/boardkeeper/internal/common"
)

func TestLogin_StoresTokenAndSendsIt(t *testing.T) {
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token":
			if err := r.ParseForm(); err != nil {
				t.Fatalf("ParseForm error: %v", err)
			}
			if r.PostForm.Get("username") != "test@example.com" {
				t.Fatalf("unexpected username %q", r.PostForm.Get("username"))
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "token_type": "bearer"})
		case "/api/boards/":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode([]any{})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(ts.URL)

	if c.IsLoggedIn() {
		t.Fatalf("fresh client must not be logged in")
	}
	if err := c.Login(context.Background(), "test@example.com", "pw123"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !c.IsLoggedIn() {
		t.Fatalf("client must be logged in after Login")
	}

	if _, err := c.Boards(context.Background()); err != nil {
		t.Fatalf("Boards error: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("token not attached, got %q", gotAuth)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := New(ts.URL)
	err := c.Login(context.Background(), "test@example.com", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.Register(context.Background(), "test@example.com", "pw123")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

func TestBoard_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.Board(context.Background(), 3)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestCreateCard_PostsPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lists/11/cards" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if payload["title"] != "Fix bug" || payload["description"] != "crash" {
			t.Fatalf("unexpected payload: %v", payload)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 21, "title": "Fix bug", "description": "crash", "list_id": 11})
	}))
	defer ts.Close()

	c := New(ts.URL)
	card, err := c.CreateCard(context.Background(), 11, "Fix bug", "crash")
	if err != nil {
		t.Fatalf("CreateCard error: %v", err)
	}
	if card.ID != 21 || card.ListID != 11 {
		t.Fatalf("unexpected card: %+v", card)
	}
}
