package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/middlewares"
	"github.com/radipleven/school-gradebook-project/models"
	"github.com/radipleven/school-gradebook-project/services"
)

type GradeHandler struct {
	grades *services.GradeService
}

func NewGradeHandler(grades *services.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// POST /grades
func (h *GradeHandler) Create(c echo.Context) error {
	var p models.NewGrade
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	g, aerr := h.grades.Create(c.Request().Context(), middlewares.Caller(c), p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusCreated, g)
}

// GET /grades — role-filtered list.
func (h *GradeHandler) List(c echo.Context) error {
	gs, aerr := h.grades.List(c.Request().Context(), middlewares.Caller(c))
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, gs)
}

// PUT /grades/:id
func (h *GradeHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var p models.UpdateGrade
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	g, aerr := h.grades.Update(c.Request().Context(), middlewares.Caller(c), id, p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, g)
}

// DELETE /grades/:id
func (h *GradeHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if aerr := h.grades.Delete(c.Request().Context(), middlewares.Caller(c), id); aerr != nil {
		return respondErr(c, aerr)
	}
	return c.NoContent(http.StatusNoContent)
}
