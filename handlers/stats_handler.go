package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GET /stats/avg_grade
func (h *StatsHandler) AvgGrades(c echo.Context) error {
	rows, aerr := h.stats.AvgGrades(c.Request().Context())
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /stats/absence_count
func (h *StatsHandler) AbsenceCounts(c echo.Context) error {
	rows, aerr := h.stats.AbsenceCounts(c.Request().Context())
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, rows)
}
