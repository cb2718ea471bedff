package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicportal/internal/middleware"
	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// EventHandler handles community event endpoints.
type EventHandler struct {
	repo repository.EventRepository
}

// NewEventHandler creates a new event handler.
func NewEventHandler(repo repository.EventRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

// List godoc
// @Summary List events, soonest first
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
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
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body model.EventInput true "Event payload"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var input model.EventInput
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
// @Summary Partially update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body model.EventPatch true "Fields to change"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var patch model.EventPatch
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
// @Summary Delete an event
// @Tags events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
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
