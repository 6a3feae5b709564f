package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

// SessionTokenLifetime is how long an issued session token is valid.
const SessionTokenLifetime = 24 * time.Hour

const issuer = "docshelf"

// legacyTokenPrefix is the illustrative placeholder token format
// ("mock_token_<id>_<timestamp>") accepted in dev so seed fixtures and
// curl sessions work without going through the login endpoint first.
const legacyTokenPrefix = "mock_token_"

// SessionTokens issues and verifies HS256-signed session tokens.
// This is placeholder identity, not access control: the subject claim
// only feeds audit-log provenance.
type SessionTokens struct {
	secret      []byte
	allowLegacy bool
	logger      *slog.Logger
}

// NewSessionTokens creates a token service. allowLegacy enables the
// dev-only mock token fallback and must be off outside dev.
func NewSessionTokens(secret string, allowLegacy bool, logger *slog.Logger) (*SessionTokens, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	return &SessionTokens{
		secret:      []byte(secret),
		allowLegacy: allowLegacy,
		logger:      logger,
	}, nil
}

// IssueToken mints a signed session token for a user.
func (s *SessionTokens) IssueToken(userID, name string) (string, error) {
	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenLifetime)),
		},
		Name: name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a session token and returns its claims.
func (s *SessionTokens) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	if s.allowLegacy && strings.HasPrefix(tokenString, legacyTokenPrefix) {
		return s.verifyLegacy(tokenString)
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Pin the algorithm so a crafted token cannot downgrade it.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		s.logger.Debug("session token rejected", "error", err)
		return nil, &domain.UnauthorizedError{Message: "invalid session token"}
	}
	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, &domain.UnauthorizedError{Message: "invalid session token"}
	}
	return claims, nil
}

// verifyLegacy accepts the mock_token_<id>_<timestamp> placeholder.
// The timestamp must parse but is not an expiry; these tokens carry no
// signature and exist only for local development.
func (s *SessionTokens) verifyLegacy(tokenString string) (*models.SessionClaims, error) {
	rest := strings.TrimPrefix(tokenString, legacyTokenPrefix)
	sep := strings.LastIndex(rest, "_")
	if sep <= 0 {
		return nil, &domain.UnauthorizedError{Message: "invalid session token"}
	}
	userID := rest[:sep]
	if _, err := strconv.ParseInt(rest[sep+1:], 10, 64); err != nil {
		return nil, &domain.UnauthorizedError{Message: "invalid session token"}
	}
	s.logger.Debug("accepted legacy mock token", "user_id", userID)
	return &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: userID},
	}, nil
}
