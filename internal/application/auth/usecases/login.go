package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	UserID      uint
	Username    string
	Admin       bool
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       user.PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to look up user")
	}

	// Generic message so callers cannot probe which emails exist.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !existingUser.IsActive() {
		return nil, errors.NewForbiddenError("account is inactive")
	}

	token, expiresIn, err := uc.tokenService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", existingUser.ID())
		return nil, errors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		UserID:      existingUser.ID(),
		Username:    existingUser.Username(),
		Admin:       existingUser.IsAdmin(),
	}, nil
}
