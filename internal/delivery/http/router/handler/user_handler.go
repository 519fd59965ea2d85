package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"
)

// UserHandler serves registration, authentication, and user administration
// endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates the user handler.
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

type registerRequest struct {
	Username             string `json:"username" validate:"required,min=3,max=150"`
	Email                string `json:"email" validate:"required,contains=@,max=254"`
	FirstName            string `json:"first_name" validate:"required,max=150"`
	LastName             string `json:"last_name" validate:"required,max=150"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type updateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,contains=@,max=254"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
}

type patchUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=150"`
	Email     *string `json:"email" validate:"omitempty,contains=@,max=254"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type tokenPairResponse struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type loginResponse struct {
	User   userResponse      `json:"user"`
	Tokens tokenPairResponse `json:"tokens"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
		IsStaff:   user.IsStaff,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toTokenPairResponse(tokens usecase.TokenPair) tokenPairResponse {
	return tokenPairResponse{
		AccessToken:      tokens.AccessToken,
		AccessExpiresAt:  tokens.AccessExpiresAt,
		RefreshToken:     tokens.RefreshToken,
		RefreshExpiresAt: tokens.RefreshExpiresAt,
	}
}

// Register handles POST /api/users/auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/users/auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.userUsecase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, loginResponse{
		User:   toUserResponse(result.User),
		Tokens: toTokenPairResponse(result.Tokens),
	})
}

// Refresh handles POST /api/users/auth/refresh.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := h.userUsecase.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toTokenPairResponse(*tokens))
}

// Logout handles POST /api/users/auth/logout.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUsecase.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}
	return response.NoContent(c)
}

// Me handles GET /api/users/auth/me.
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUsecase.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Get handles GET /api/users/auth/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.userUsecase.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Update handles PUT /api/users/auth/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUsecase.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Patch handles PATCH /api/users/auth/:id. Absent fields keep their values.
func (h *UserHandler) Patch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req patchUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUsecase.PartialUpdateUser(c.Request().Context(), id, usecase.UserPatch{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/users/auth/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.userUsecase.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return response.NoContent(c)
}

// List handles GET /api/users/auth/list-users. Admin only; returns the full
// roster without pagination.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUsecase.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	results := make([]userResponse, 0, len(users))
	for _, user := range users {
		results = append(results, toUserResponse(user))
	}
	return response.Success(c, http.StatusOK, results)
}
