package api

import (
	"errors"
	"net/http"

	resdto "tab-kiosk/internal/handler/dto/response"
	"tab-kiosk/internal/handler/httperr"
	"tab-kiosk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *usecase.CatalogStore
}

func NewCatalogHandler(catalog *usecase.CatalogStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary List catalog items
// @Description List active items, optionally filtered by a case-insensitive name substring
// @Tags catalog
// @Produce json
// @Param query query string false "Name filter"
// @Success 200 {array} resdto.ItemResponse
// @Failure 503 {object} map[string]string
// @Router /items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCatalogUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	filtered := items
	if query := c.Query("query"); query != "" {
		filtered, _ = h.catalog.Filter(query)
	}

	c.JSON(http.StatusOK, resdto.FromItems(filtered))
}
