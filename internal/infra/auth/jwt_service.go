package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"portal/config"
	"portal/internal/domain/service"
)

const sessionIssuer = "tenant-portal"

// jwtSessionService signs session cookies as HS256 JWTs.
type jwtSessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessionService is the constructor for jwtSessionService.
func NewJWTSessionService(cfg *config.Config) (service.SessionService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Session.MaxAge
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &jwtSessionService{
		secret: []byte(cfg.Session.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a session token for the user id and role.
func (s *jwtSessionService) Issue(userID uint, role string) (string, error) {
	now := s.now()
	claims := service.SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Validate checks the signature, issuer and expiry of a session token.
func (s *jwtSessionService) Validate(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// TTL returns the configured session lifetime.
func (s *jwtSessionService) TTL() time.Duration {
	return s.ttl
}
