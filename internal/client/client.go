// Package client implements a thin HTTP consumer of the BoardKeeper API.
// It keeps the bearer token obtained at login and attaches it to every
// subsequent request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avoronov/boardkeeper/internal/common"
	"github.com/avoronov/boardkeeper/internal/server/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// IsLoggedIn reports whether a login has succeeded in this session.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account. A 400 response means the email is taken.
func (c *Client) Register(ctx context.Context, email, password string) (*models.User, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users/register", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	user := &models.User{}
	if err := c.do(req, http.StatusCreated, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{"username": {email}, "password": {password}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok tokenResponse
	if err := c.do(req, http.StatusOK, &tok); err != nil {
		return err
	}

	c.token = tok.AccessToken
	return nil
}

func (c *Client) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	board := &models.Board{}
	if err := c.postJSON(ctx, "/api/boards/", map[string]string{"title": title}, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (c *Client) Boards(ctx context.Context) ([]models.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/boards/", nil)
	if err != nil {
		return nil, err
	}

	boards := []models.Board{}
	if err := c.do(req, http.StatusOK, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *Client) Board(ctx context.Context, id int64) (*models.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/boards/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}

	board := &models.Board{}
	if err := c.do(req, http.StatusOK, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (c *Client) CreateList(ctx context.Context, boardID int64, title string) (*models.List, error) {
	list := &models.List{}
	path := fmt.Sprintf("/api/boards/%d/lists", boardID)
	if err := c.postJSON(ctx, path, map[string]string{"title": title}, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateCard(ctx context.Context, listID int64, title, description string) (*models.Card, error) {
	card := &models.Card{}
	path := fmt.Sprintf("/api/lists/%d/cards", listID)
	payload := map[string]string{"title": title, "description": description}
	if err := c.postJSON(ctx, path, payload, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, http.StatusCreated, out)
}

// do sends the request with the stored token and decodes the response into
// out when the status matches. Error statuses are mapped onto the shared
// sentinel errors so the CLI can react uniformly.
func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return common.ErrorAlreadyExists
		case http.StatusUnauthorized:
			return common.ErrorUnauthorized
		case http.StatusNotFound:
			return common.ErrorNotFound
		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(b))
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
