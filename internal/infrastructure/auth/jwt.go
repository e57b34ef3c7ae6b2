package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	appErrors "helpdesk/internal/shared/errors"
)

// Claims carries the account identity inside the access token. The subject
// is the account ID; the role rides along so handlers can authorize without
// a second lookup, but identity itself is always re-resolved per request.
type Claims struct {
	Role authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	now              func() time.Time
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		now:              biztime.NowUTC,
	}
}

// Generate signs a new HS256 access token for the account.
func (s *JWTService) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	now := s.now()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, int64(s.accessExpMinutes * 60), nil
}

// Verify parses and validates a token string and returns its claims.
// All failure modes surface as unauthorized errors with a cause-specific
// message; none of them leak the signing secret or internal state.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, appErrors.NewUnauthorizedError("malformed token")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, appErrors.NewUnauthorizedError("invalid token signature")
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, appErrors.NewUnauthorizedError("token expired")
		default:
			return nil, appErrors.NewUnauthorizedError("invalid token")
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.NewUnauthorizedError("invalid token")
	}

	return claims, nil
}

// UserID extracts the account ID from the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, appErrors.NewUnauthorizedError("invalid token subject")
	}
	return uint(id), nil
}

// AccessExpMinutes returns the configured access token lifetime in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
