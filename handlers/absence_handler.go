package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/middlewares"
	"github.com/radipleven/school-gradebook-project/models"
	"github.com/radipleven/school-gradebook-project/services"
)

type AbsenceHandler struct {
	absences *services.AbsenceService
}

func NewAbsenceHandler(absences *services.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absences: absences}
}

// POST /absences
func (h *AbsenceHandler) Create(c echo.Context) error {
	var p models.NewAbsence
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	a, aerr := h.absences.Create(c.Request().Context(), middlewares.Caller(c), p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusCreated, a)
}

// GET /absences — role-filtered list.
func (h *AbsenceHandler) List(c echo.Context) error {
	as, aerr := h.absences.List(c.Request().Context(), middlewares.Caller(c))
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, as)
}

// PUT /absences/:id
func (h *AbsenceHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var p models.UpdateAbsence
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	a, aerr := h.absences.Update(c.Request().Context(), middlewares.Caller(c), id, p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, a)
}

// DELETE /absences/:id
func (h *AbsenceHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if aerr := h.absences.Delete(c.Request().Context(), middlewares.Caller(c), id); aerr != nil {
		return respondErr(c, aerr)
	}
	return c.NoContent(http.StatusNoContent)
}
