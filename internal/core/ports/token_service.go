package ports

// TokenClaims is the identity assertion carried by both access and refresh
// tokens.
type TokenClaims struct {
	UserID int64
	Role   string
}

// TokenService mints and validates stateless signed credentials. There is
// no server-side session or revocation list: a token stays valid until it
// expires.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token.
	IssueAccessToken(userID int64, role string) (string, error)
	// IssueRefreshToken signs a longer-lived refresh token with a distinct
	// secret.
	IssueRefreshToken(userID int64, role string) (string, error)
	// VerifyAccessToken returns the claims of a valid access token, or
	// domain.ErrInvalidToken when the signature, expiry, or shape is wrong.
	VerifyAccessToken(token string) (*TokenClaims, error)
	// Refresh verifies a refresh token and mints a new access token carrying
	// the same claims. The refresh token itself is not rotated.
	Refresh(refreshToken string) (string, error)
}
