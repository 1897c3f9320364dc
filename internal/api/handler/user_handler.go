package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/core/ports"
)

type userRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=50"`
	SecondName string `json:"second_name" validate:"required,max=50"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Password   string `json:"password" validate:"omitempty,min=8,max=72"`
	Role       string `json:"role" validate:"required,oneof=CEO TeamLeader TeamMember"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserHandler handles the administrative user endpoints.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
//
// @Summary      Create an account with an explicit role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "Account details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	user, err := h.users.Create(c.Request().Context(), toUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Update handles PUT /users/:email.
//
// @Summary      Update an account by email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string       true  "Current email of the account"
// @Param        body   body      userRequest  true  "Updated account details"
// @Success      200    {object}  userResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /users/{email} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("email"), toUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateRole handles PATCH /users/:email/role.
//
// @Summary      Change an account's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string       true  "Email of the account"
// @Param        body   body      roleRequest  true  "New role"
// @Success      200    {object}  userResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /users/{email}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateRole(c.Request().Context(), c.Param("email"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Get handles GET /users/:email.
//
// @Summary      Retrieve an account by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email of the account"
// @Success      200    {object}  userResponse
// @Failure      404    {object}  map[string]string
// @Router       /users/{email} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// List handles GET /users.
//
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /users/:email.
//
// @Summary      Delete an account by email
// @Tags         users
// @Security     BearerAuth
// @Param        email  path  string  true  "Email of the account"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{email} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteByEmail(c.Request().Context(), c.Param("email")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toUserInput(r userRequest) ports.UserInput {
	return ports.UserInput{
		FirstName:  r.FirstName,
		SecondName: r.SecondName,
		Email:      r.Email,
		Password:   r.Password,
		Role:       r.Role,
	}
}
