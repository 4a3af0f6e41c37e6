// Package models defines the server-side entities persisted in the database.
// The containment chain is strictly tree-shaped: a User owns Boards, a Board
// owns Lists, a List owns Cards. Lists and Cards carry no owner of their own;
// ownership is derived by walking up to the board's OwnerID.
package models

import "time"

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"-"`
}

type Board struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	OwnerID int64  `json:"owner_id"`
	Lists   []List `json:"lists"`
}

type List struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	BoardID int64  `json:"board_id"`
	Cards   []Card `json:"cards"`
}

type Card struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ListID      int64  `json:"list_id"`
}
