package usecases

import "helpdesk/internal/shared/authorization"

// TokenService issues signed access tokens for authenticated accounts.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
}
