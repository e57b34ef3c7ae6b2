package mappers

import (
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		IsAdmin:      u.IsAdmin(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}

	if u.FullName() != "" {
		fullName := u.FullName()
		model.FullName = &fullName
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role := authorization.RoleUser
	if model.IsAdmin {
		role = authorization.RoleAdmin
	}

	fullName := ""
	if model.FullName != nil {
		fullName = *model.FullName
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.Username,
		fullName,
		model.PasswordHash,
		model.IsActive,
		role,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}

	return u, nil
}
