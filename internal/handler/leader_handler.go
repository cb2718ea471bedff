package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// LeaderHandler handles leadership profile endpoints. Leaders carry no
// ownership, so creation does not stamp the acting user.
type LeaderHandler struct {
	repo repository.LeaderRepository
}

// NewLeaderHandler creates a new leader handler.
func NewLeaderHandler(repo repository.LeaderRepository) *LeaderHandler {
	return &LeaderHandler{repo: repo}
}

// List godoc
// @Summary List leaders
// @Tags leaders
// @Produce json
// @Success 200 {array} model.Leader
// @Router /leaders [get]
func (h *LeaderHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a leader by id
// @Tags leaders
// @Produce json
// @Param id path int true "Leader ID"
// @Success 200 {object} model.Leader
// @Failure 404 {object} errors.ErrorResponse
// @Router /leaders/{id} [get]
func (h *LeaderHandler) Get(c echo.Context) error {
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
// @Summary Create a leader
// @Tags leaders
// @Accept json
// @Produce json
// @Param leader body model.LeaderInput true "Leader payload"
// @Success 201 {object} model.Leader
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /leaders [post]
func (h *LeaderHandler) Create(c echo.Context) error {
	var input model.LeaderInput
	if err := c.Bind(&input); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&input); err != nil {
		return validationError(c, err)
	}

	created, err := h.repo.Create(c.Request().Context(), &input)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Partially update a leader
// @Tags leaders
// @Accept json
// @Produce json
// @Param id path int true "Leader ID"
// @Param leader body model.LeaderPatch true "Fields to change"
// @Success 200 {object} model.Leader
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /leaders/{id} [put]
func (h *LeaderHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var patch model.LeaderPatch
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
// @Summary Delete a leader
// @Tags leaders
// @Param id path int true "Leader ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /leaders/{id} [delete]
func (h *LeaderHandler) Delete(c echo.Context) error {
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
