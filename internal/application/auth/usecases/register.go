package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Username string
	FullName string
	Password string
}

type RegisterResult struct {
	UserID    uint
	Email     string
	Username  string
	FullName  string
	Active    bool
	Admin     bool
	CreatedAt time.Time
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	emailExists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email availability")
	}
	if emailExists {
		return nil, errors.NewConflictError("email already registered")
	}

	usernameExists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, errors.NewInternalError("failed to check username availability")
	}
	if usernameExists {
		return nil, errors.NewConflictError("username already taken")
	}

	newUser, err := user.NewUser(cmd.Email, cmd.Username, cmd.FullName, cmd.Password, uc.hasher)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// Concurrent registration can still hit the unique index.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email or username already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err, "email", cmd.Email)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &RegisterResult{
		UserID:    newUser.ID(),
		Email:     newUser.Email(),
		Username:  newUser.Username(),
		FullName:  newUser.FullName(),
		Active:    newUser.IsActive(),
		Admin:     newUser.IsAdmin(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}
