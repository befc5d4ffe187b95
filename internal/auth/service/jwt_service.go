package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/userguard/internal/auth/domain"
	"github.com/allisson/userguard/internal/errors"
)

// jwtService issues HMAC-SHA256 signed JWTs carrying the user id as subject.
type jwtService struct {
	signingKey []byte
	issuer     string
	expiration time.Duration
}

// NewJWTService creates a TokenService backed by HS256 JWTs.
func NewJWTService(signingKey []byte, issuer string, expiration time.Duration) (TokenService, error) {
	if len(signingKey) == 0 {
		return nil, errors.Wrap(errors.ErrConfiguration, "jwt signing key is required")
	}
	return &jwtService{
		signingKey: signingKey,
		issuer:     issuer,
		expiration: expiration,
	}, nil
}

// Issue creates a signed token for the subject with iat and exp claims.
func (s *jwtService) Issue(subject string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiration)

	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.Must(uuid.NewV7()).String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}
	return token, expiresAt, nil
}

// Validate parses and verifies a token, returning its subject claim.
func (s *jwtService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domain.ErrTokenBadSignature
			}
			return s.signingKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", mapJWTError(err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenBadSignature
	case errors.Is(err, domain.ErrTokenBadSignature):
		return domain.ErrTokenBadSignature
	default:
		return domain.ErrTokenMalformed
	}
}
