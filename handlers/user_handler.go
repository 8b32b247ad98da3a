package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/middlewares"
	"github.com/radipleven/school-gradebook-project/models"
	"github.com/radipleven/school-gradebook-project/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// POST /users
func (h *UserHandler) Create(c echo.Context) error {
	var p models.NewUser
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	u, aerr := h.users.Create(c.Request().Context(), middlewares.Caller(c), p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusCreated, u)
}

// GET /users
func (h *UserHandler) List(c echo.Context) error {
	us, aerr := h.users.List(c.Request().Context(), middlewares.Caller(c))
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, us)
}

// PUT /users/:id
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var p models.UpdateUser
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	u, aerr := h.users.Update(c.Request().Context(), middlewares.Caller(c), id, p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, u)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if aerr := h.users.Delete(c.Request().Context(), middlewares.Caller(c), id); aerr != nil {
		return respondErr(c, aerr)
	}
	return c.NoContent(http.StatusNoContent)
}
