package ports

import (
	"context"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Prenom        string
	Nom           string
	DateNaissance domain.Date
	Adresse       string
	CodePostal    string
	Ville         string
	Email         string
	Password      string
}

// LoginResult bundles the authenticated user with its freshly minted
// credentials.
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService implements registration, login, and token refresh.
type AuthService interface {
	// Register hashes the password, persists the user, and returns it with
	// an access token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login returns domain.ErrInvalidCredentials for both an unknown email
	// and a wrong password.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(refreshToken string) (string, error)
}
