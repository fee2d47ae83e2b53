package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token carries these standard claims:
//   - iss: the dashboard instance that issued it
//   - sub: the operator username
//   - jti: the server-side session identifier
//   - iat / exp: issue time and issue time plus duration
func GenerateSessionToken(issuer, username, sessionID string, duration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || username == "" || sessionID == "" || duration <= 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Username:         username,
		SessionID:        sessionID,
	}, nil
}

// ValidateSessionToken verifies the signature, issuer and expiry of
// tokenString and extracts the username and session identifier.
func ValidateSessionToken(tokenString, signKey, issuer string) (models.SessionToken, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}
	if claims.ID == "" {
		return models.SessionToken{}, errors.New("empty session id error")
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Username:         claims.Subject,
		SessionID:        claims.ID,
	}, nil
}
