package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ankaragis/internal/auth"
	apperrors "ankaragis/internal/errors"
	"ankaragis/internal/model"
	"ankaragis/internal/service"
)

// PlaceHandler handles place endpoints. Create and Delete verify the bearer
// token themselves; Update relies on the JWT middleware.
type PlaceHandler struct {
	placeService service.PlaceService
	jwtService   *auth.JWTService
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(placeService service.PlaceService, jwtService *auth.JWTService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService, jwtService: jwtService}
}

// List godoc
// @Summary List all places as a GeoJSON FeatureCollection
// @Tags places
// @Produce json
// @Success 200 {object} model.FeatureCollection
// @Failure 500 {object} errors.ErrorResponse
// @Router /places [get]
func (h *PlaceHandler) List(c echo.Context) error {
	collection, err := h.placeService.ListGeoJSON(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, collection)
}

// Create godoc
// @Summary Add a new place (admin/moderator)
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PlaceInput true "Place data"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	claims, err := bearerClaims(c, h.jwtService)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req model.PlaceInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ref, err := h.placeService.Create(c.Request().Context(), claims, req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "place created",
		"place":   ref,
	})
}

// Update godoc
// @Summary Replace a place's fields (admin/moderator)
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Param request body model.PlaceInput true "Place data"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places/{id} [put]
func (h *PlaceHandler) Update(c echo.Context) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid place id")
	}

	var req model.PlaceInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	row, err := h.placeService.Update(c.Request().Context(), claims, id, req)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "place updated",
		"place":   row,
	})
}

// Delete godoc
// @Summary Delete a place and its comments (admin/moderator)
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places/{id} [delete]
func (h *PlaceHandler) Delete(c echo.Context) error {
	claims, err := bearerClaims(c, h.jwtService)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid place id")
	}

	if err := h.placeService.Delete(c.Request().Context(), claims, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "place deleted",
	})
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
