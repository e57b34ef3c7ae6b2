package auth

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type AuthHandler struct {
	registerUC RegisterExecutor
	loginUC    LoginExecutor
	logger     logger.Interface
}

func NewAuthHandler(registerUC RegisterExecutor, loginUC LoginExecutor) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, UserResponse{
		ID:        result.UserID,
		Email:     result.Email,
		Username:  result.Username,
		FullName:  result.FullName,
		IsActive:  result.Active,
		IsAdmin:   result.Admin,
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
	}, "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
	})
}
