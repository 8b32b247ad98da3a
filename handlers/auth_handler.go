package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return bindErr(c)
	}
	res, aerr := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, res)
}
