package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicportal/internal/middleware"
	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// NewsHandler handles news article endpoints.
type NewsHandler struct {
	repo repository.NewsRepository
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(repo repository.NewsRepository) *NewsHandler {
	return &NewsHandler{repo: repo}
}

// List godoc
// @Summary List news articles, newest first
// @Tags news
// @Produce json
// @Success 200 {array} model.News
// @Router /news [get]
func (h *NewsHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a news article by id
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} model.News
// @Failure 404 {object} errors.ErrorResponse
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
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
// @Summary Create a news article
// @Tags news
// @Accept json
// @Produce json
// @Param news body model.NewsInput true "News payload"
// @Success 201 {object} model.News
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var input model.NewsInput
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
// @Summary Partially update a news article
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body model.NewsPatch true "Fields to change"
// @Success 200 {object} model.News
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var patch model.NewsPatch
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
// @Summary Delete a news article
// @Tags news
// @Param id path int true "News ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
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
