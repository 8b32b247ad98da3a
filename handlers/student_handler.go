package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/middlewares"
	"github.com/radipleven/school-gradebook-project/models"
	"github.com/radipleven/school-gradebook-project/services"
)

type StudentHandler struct {
	students *services.StudentService
}

func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var p models.NewStudent
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	st, aerr := h.students.Create(c.Request().Context(), middlewares.Caller(c), p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusCreated, st)
}

// GET /students
func (h *StudentHandler) List(c echo.Context) error {
	views, aerr := h.students.List(c.Request().Context(), middlewares.Caller(c))
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /students/:id
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	view, aerr := h.students.GetByID(c.Request().Context(), middlewares.Caller(c), id)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, view)
}

// PUT /students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var p models.UpdateStudent
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	st, aerr := h.students.Update(c.Request().Context(), middlewares.Caller(c), id, p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, st)
}

// DELETE /students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if aerr := h.students.Delete(c.Request().Context(), middlewares.Caller(c), id); aerr != nil {
		return respondErr(c, aerr)
	}
	return c.NoContent(http.StatusNoContent)
}
