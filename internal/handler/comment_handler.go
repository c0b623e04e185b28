package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ankaragis/internal/auth"
	apperrors "ankaragis/internal/errors"
	"ankaragis/internal/model"
	"ankaragis/internal/service"
)

// CommentHandler handles comment endpoints. Create and Delete verify the
// bearer token themselves; Update relies on the JWT middleware.
type CommentHandler struct {
	commentService service.CommentService
	jwtService     *auth.JWTService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService, jwtService *auth.JWTService) *CommentHandler {
	return &CommentHandler{commentService: commentService, jwtService: jwtService}
}

// CreateCommentRequest represents a new comment.
type CreateCommentRequest struct {
	PlaceID     uint    `json:"place_id"`
	CommentText string  `json:"comment_text"`
	Score       float64 `json:"score"`
}

// UpdateCommentRequest carries the replacement text.
type UpdateCommentRequest struct {
	CommentText string `json:"comment_text"`
}

// ListByPlace godoc
// @Summary List a place's comments, newest first
// @Tags comments
// @Produce json
// @Param placeId path int true "Place ID"
// @Success 200 {array} model.CommentWithAuthor
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments/{placeId} [get]
func (h *CommentHandler) ListByPlace(c echo.Context) error {
	placeID, err := parseID(c, "placeId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid place id")
	}

	rows, err := h.commentService.ListByPlace(c.Request().Context(), placeID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if rows == nil {
		rows = []model.CommentWithAuthor{}
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add a comment to a place
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommentRequest true "Comment data"
// @Success 201 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	claims, err := bearerClaims(c, h.jwtService)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.commentService.Create(c.Request().Context(), claims, req.PlaceID, req.CommentText, req.Score); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "comment created",
	})
}

// Update godoc
// @Summary Edit a comment's text (author only)
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body UpdateCommentRequest true "Replacement text"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.commentService.Update(c.Request().Context(), claims, id, req.CommentText); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "comment updated",
	})
}

// Delete godoc
// @Summary Delete a comment (admin/moderator)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, err := bearerClaims(c, h.jwtService)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	if err := h.commentService.Delete(c.Request().Context(), claims, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "comment deleted",
	})
}
