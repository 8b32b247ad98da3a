package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/database"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler { return &HealthHandler{db: db} }

// Check reports storage reachability as plain text.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := database.Ping(c.Request().Context(), h.db); err != nil {
		return c.String(http.StatusServiceUnavailable, "DB ERROR")
	}
	return c.String(http.StatusOK, "DB OK")
}
