package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
)

const clockSkew = 30 * time.Second

// JWTService validates HS256 bearer tokens whose subject is the user id.
// Tokens are normally minted by the identity provider sharing the secret;
// GenerateAccessToken exists for operators and tests.
type JWTService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	parser    *jwt.Parser
}

func NewJWTService(secretKey, issuer string, accessTokenTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       accessTokenTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

func (s *JWTService) GenerateAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *JWTService) ValidateAccessToken(tokenStr string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return uuid.Nil, domain.ErrTokenExpired
	case err != nil:
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user id", domain.ErrTokenInvalid)
	}

	return userID, nil
}
