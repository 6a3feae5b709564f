package auth

import "docshelf/internal/domain/models"

// TokenVerifier validates session tokens and extracts their claims.
type TokenVerifier interface {
	VerifyToken(token string) (*models.SessionClaims, error)
}

// TokenIssuer mints session tokens for the placeholder login endpoint.
type TokenIssuer interface {
	IssueToken(userID, name string) (string, error)
}
