package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and from the projection loaded for authenticated
// requests.
type User struct {
	ID            int64     `json:"id"`
	Prenom        string    `json:"prenom"`
	Nom           string    `json:"nom"`
	DateNaissance Date      `json:"dateNaissance"`
	Adresse       string    `json:"adresse"`
	CodePostal    string    `json:"codePostal"`
	Ville         string    `json:"ville"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
