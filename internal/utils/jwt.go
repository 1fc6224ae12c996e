package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pos-lite/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateTerminalToken signs an HS256 token whose subject is terminalID.
// All parameters are required.
//
//	token, err := utils.GenerateTerminalToken("pos-lite", "till-1", time.Hour, "secret")
func GenerateTerminalToken(issuer, terminalID string, tokenDuration time.Duration, signKey string) (models.TerminalToken, error) {
	if issuer == "" || terminalID == "" || tokenDuration <= 0 || signKey == "" {
		return models.TerminalToken{}, errors.New("invalid params for generating terminal token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   terminalID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.TerminalToken{}, fmt.Errorf("error occurred during signing terminal token: %w", err)
	}

	return models.TerminalToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     signed,
		TerminalID:       terminalID,
	}, nil
}

// ValidateTerminalToken verifies signature, issuer and expiry of
// tokenString and extracts the terminal identifier.
func ValidateTerminalToken(tokenString, signKey, issuer string) (models.TerminalToken, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.TerminalToken{}, fmt.Errorf("error occurred validating terminal token: %w", err)
	}

	result := models.TerminalToken{Token: token, RegisteredClaims: *claims, SignedString: tokenString}
	terminalID, err := result.GetTerminalID()
	if err != nil {
		return models.TerminalToken{}, fmt.Errorf("error occurred reading token subject: %w", err)
	}
	result.TerminalID = terminalID

	return result, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
