package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/middlewares"
	"github.com/radipleven/school-gradebook-project/models"
	"github.com/radipleven/school-gradebook-project/services"
)

type ParentStudentHandler struct {
	links *services.ParentLinkService
}

func NewParentStudentHandler(links *services.ParentLinkService) *ParentStudentHandler {
	return &ParentStudentHandler{links: links}
}

// POST /parent_students
func (h *ParentStudentHandler) Create(c echo.Context) error {
	var p models.LinkParentStudent
	if err := c.Bind(&p); err != nil {
		return bindErr(c)
	}
	link, aerr := h.links.Create(c.Request().Context(), middlewares.Caller(c), p)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusCreated, link)
}

// GET /parent_students/:parent_id
func (h *ParentStudentHandler) List(c echo.Context) error {
	parentID, err := uintParam(c, "parent_id")
	if err != nil {
		return err
	}
	links, aerr := h.links.List(c.Request().Context(), middlewares.Caller(c), parentID)
	if aerr != nil {
		return respondErr(c, aerr)
	}
	return c.JSON(http.StatusOK, links)
}

// DELETE /parent_students/:parent_id/:student_id
func (h *ParentStudentHandler) Delete(c echo.Context) error {
	parentID, err := uintParam(c, "parent_id")
	if err != nil {
		return err
	}
	studentID, err := uintParam(c, "student_id")
	if err != nil {
		return err
	}
	if aerr := h.links.DeleteByPair(c.Request().Context(), middlewares.Caller(c), parentID, studentID); aerr != nil {
		return respondErr(c, aerr)
	}
	return c.NoContent(http.StatusNoContent)
}
