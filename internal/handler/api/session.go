package api

import (
	"errors"
	"net/http"

	reqdto "tab-kiosk/internal/handler/dto/request"
	resdto "tab-kiosk/internal/handler/dto/response"
	"tab-kiosk/internal/handler/httperr"
	"tab-kiosk/internal/handler/middleware"
	"tab-kiosk/internal/pkg/errs"
	"tab-kiosk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	registry *usecase.SessionRegistry
	catalog  *usecase.CatalogStore
}

func NewSessionHandler(registry *usecase.SessionRegistry, catalog *usecase.CatalogStore) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		catalog:  catalog,
	}
}

// @Summary Get session snapshot
// @Description Current booking session state with derived totals
// @Tags session
// @Produce json
// @Param item query string false "Deep-link item preselect"
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	// Deep-link preselect: applied weakly, ignored if the id never resolves.
	if itemID := c.Query("item"); itemID != "" {
		ctrl.SeedSelection(itemID)
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(ctrl.Snapshot()))
}

// @Summary Update display ID
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateDisplayIDRequest true "Display ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /session/display-id [put]
func (h *SessionHandler) UpdateDisplayID(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDisplayIDRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	ctrl.SetDisplayID(c.Request.Context(), req.DisplayID)
	c.JSON(http.StatusOK, resdto.FromSessionView(ctrl.Snapshot()))
}

// @Summary Update remember-ID preference
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateRememberRequest true "Remember flag"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /session/remember [put]
func (h *SessionHandler) UpdateRemember(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRememberRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	ctrl.SetRememberID(c.Request.Context(), *req.Remember)
	c.JSON(http.StatusOK, resdto.FromSessionView(ctrl.Snapshot()))
}

// @Summary Update item selection
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateSelectionRequest true "Item ID, empty to clear"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /session/selection [put]
func (h *SessionHandler) UpdateSelection(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	var req reqdto.UpdateSelectionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	ctrl.SelectItem(req.ItemID)
	c.JSON(http.StatusOK, resdto.FromSessionView(ctrl.Snapshot()))
}

// @Summary Update quantity
// @Description Step by delta or set an absolute value; either way the result is clamped to [1,99]
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateQuantityRequest true "Delta or absolute quantity"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /session/quantity [put]
func (h *SessionHandler) UpdateQuantity(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	var req reqdto.UpdateQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	if !req.Valid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("exactly one of delta and quantity must be set"), "Invalid request format", nil)
		return
	}

	if req.Delta != nil {
		ctrl.StepQuantity(*req.Delta)
	} else {
		ctrl.SetQuantity(*req.Quantity)
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(ctrl.Snapshot()))
}

// @Summary Update catalog filter query
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateQueryRequest true "Filter query"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /session/query [put]
func (h *SessionHandler) UpdateQuery(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	var req reqdto.UpdateQueryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	ctrl.SetQuery(req.Query)
	c.JSON(http.StatusOK, resdto.FromSessionView(ctrl.Snapshot()))
}

// @Summary Commit booking
// @Description Submit the booking transaction to the ledger
// @Tags session
// @Produce json
// @Success 200 {object} resdto.CommitResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /session/commit [post]
func (h *SessionHandler) Commit(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}

	outcome, err := ctrl.Commit(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCommitInFlight):
			httperr.AbortWithError(c, http.StatusConflict, err, "A booking is already in progress", nil)
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please enter your ID and choose a product", nil)
		case errors.Is(err, usecase.ErrCommitFailed):
			// Ledger message passes through verbatim.
			httperr.AbortWithError(c, http.StatusBadGateway, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CommitResponse{
		NewBalanceCents: outcome.NewBalanceCents,
		Session:         resdto.FromSessionView(ctrl.Snapshot()),
	})
}

func (h *SessionHandler) session(c *gin.Context) (*usecase.SessionController, bool) {
	sessionID, ok := middleware.GetKioskSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("session id missing from context"), "Internal server error", nil)
		return nil, false
	}
	deviceKey, ok := middleware.GetKioskDeviceKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("device key missing from context"), "Internal server error", nil)
		return nil, false
	}

	return h.registry.Session(c.Request.Context(), sessionID, deviceKey), true
}
