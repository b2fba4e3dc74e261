package model

import (
	"time"

	"github.com/pkg/errors"
)

type Paging struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

// Rating is the fixed review scale a book gets exactly one value from.
type Rating string

const (
	RatingTerrible Rating = "TERRIBLE"
	RatingPoor     Rating = "POOR"
	RatingOK       Rating = "OK"
	RatingGood     Rating = "GOOD"
	RatingGreat    Rating = "GREAT"
)

var ErrUnknownRating = errors.New("unknown rating")

func ParseRating(s string) (Rating, error) {
	switch r := Rating(s); r {
	case RatingTerrible, RatingPoor, RatingOK, RatingGood, RatingGreat:
		return r, nil
	}
	return "", errors.Wrap(ErrUnknownRating, s)
}

// Owner identifies the user a book was created by. The fullName field is
// queried as a nested document field, so its bson name is load-bearing.
type Owner struct {
	AuthenticationServiceID string `json:"authenticationServiceId" bson:"authenticationServiceId"`
	AuthProvider            string `json:"authProvider" bson:"authProvider"`
	FullName                string `json:"fullName" bson:"fullName"`
}

type Book struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Title             string    `json:"title" bson:"title" validate:"required"`
	Author            string    `json:"author" bson:"author" validate:"required"`
	Genre             string    `json:"genre" bson:"genre" validate:"required"`
	Summary           string    `json:"summary,omitempty" bson:"summary,omitempty"`
	Rating            Rating    `json:"rating" bson:"rating" validate:"required"`
	GoogleBookID      string    `json:"googleBookId,omitempty" bson:"googleBookId,omitempty"`
	GoogleBookDetails *Item     `json:"googleBookDetails,omitempty" bson:"googleBookDetails,omitempty"`
	CreatedDateTime   time.Time `json:"createdDateTime" bson:"createdDateTime"`
	CreatedBy         Owner     `json:"createdBy" bson:"createdBy"`
}

type Role string

const (
	RoleAdmin  Role = "ROLE_ADMIN"
	RoleEditor Role = "ROLE_EDITOR"
)

type User struct {
	ID                      string    `json:"id" bson:"_id,omitempty"`
	AuthenticationServiceID string    `json:"authenticationServiceId" bson:"authenticationServiceId"`
	AuthProvider            string    `json:"authProvider" bson:"authProvider"`
	FullName                string    `json:"fullName" bson:"fullName"`
	Email                   string    `json:"email,omitempty" bson:"email,omitempty"`
	FirstLogon              time.Time `json:"firstLogon,omitempty" bson:"firstLogon,omitempty"`
	LastLogon               time.Time `json:"lastLogon,omitempty" bson:"lastLogon,omitempty"`
	Roles                   []Role    `json:"roles" bson:"roles"`
}

// ClientRoles is the one-shot role-update request. It is consumed to compute
// the full replacement role list and never persisted.
type ClientRoles struct {
	ID     string `json:"id" param:"userId"`
	Admin  bool   `json:"admin"`
	Editor bool   `json:"editor"`
}

type BooksByGenre struct {
	Genre        string `json:"genre" bson:"_id"`
	CountOfBooks int64  `json:"countOfBooks" bson:"countOfBooks"`
}

type BooksByAuthor struct {
	Author       string `json:"author" bson:"_id"`
	CountOfBooks int64  `json:"countOfBooks" bson:"countOfBooks"`
}
