package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// FeedbackHandler handles resident feedback endpoints. Submission is public
// so residents can write in without an account; reading and resolving
// require a session.
type FeedbackHandler struct {
	repo repository.FeedbackRepository
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(repo repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{repo: repo}
}

// List godoc
// @Summary List feedback submissions, newest first
// @Tags feedback
// @Produce json
// @Success 200 {array} model.Feedback
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a feedback submission by id
// @Tags feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} model.Feedback
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) Get(c echo.Context) error {
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
// @Summary Submit feedback (no account required)
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body model.FeedbackInput true "Feedback payload"
// @Success 201 {object} model.Feedback
// @Failure 400 {object} errors.ValidationResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	var input model.FeedbackInput
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
// @Summary Partially update a feedback submission
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path int true "Feedback ID"
// @Param feedback body model.FeedbackPatch true "Fields to change"
// @Success 200 {object} model.Feedback
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/{id} [put]
func (h *FeedbackHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var patch model.FeedbackPatch
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

// Resolve godoc
// @Summary Mark a feedback submission as resolved
// @Tags feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} model.Feedback
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/{id}/resolve [put]
func (h *FeedbackHandler) Resolve(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	resolved, err := h.repo.Resolve(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, resolved)
}

// Delete godoc
// @Summary Delete a feedback submission
// @Tags feedback
// @Param id path int true "Feedback ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c echo.Context) error {
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
