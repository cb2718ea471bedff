package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicportal/internal/middleware"
	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// ProjectHandler handles development project endpoints.
type ProjectHandler struct {
	repo repository.ProjectRepository
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(repo repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body model.ProjectInput true "Project payload"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var input model.ProjectInput
	if err := c.Bind(&input); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&input); err != nil {
		return validationError(c, err)
	}

	user := middleware.CurrentUser(c)
	created, err := h.repo.Create(c.Request().Context(), &input, user.ID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Partially update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body model.ProjectPatch true "Fields to change"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var patch model.ProjectPatch
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(c, err)
	}

	updated, err := h.repo.Update(c.Request().Context(), id, &patch)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Param id path int true "Project ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	existed, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	if !existed {
		return c.JSON(http.StatusNotFound, newNotFoundResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
