//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"tab-kiosk/internal/handler/api"
	resdto "tab-kiosk/internal/handler/dto/response"
	"tab-kiosk/internal/handler/httperr"
	"tab-kiosk/internal/handler/middleware"
	"tab-kiosk/internal/infra/prefstore"
	"tab-kiosk/internal/pkg/clock"
	"tab-kiosk/internal/pkg/config"
	"tab-kiosk/internal/pkg/cookie"
	"tab-kiosk/internal/pkg/ptr"
	"tab-kiosk/internal/usecase"
	"tab-kiosk/tests/common/builder"
	"tab-kiosk/tests/common/httptest"
	usecasemock "tab-kiosk/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLedger *usecasemock.MockLedgerGateway
	registry   *usecase.SessionRegistry
	catalog    *usecase.CatalogStore

	jar []*http.Cookie
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jar = nil

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = usecasemock.NewMockLedgerGateway(s.mockCtrl)

	cfg := config.NewTestConfig()
	// An hour-long debounce keeps background lookups out of these tests;
	// the watcher's own behavior is covered at the usecase level.
	cfg.Session.Debounce = time.Hour

	s.catalog = usecase.NewCatalogStore(s.mockLedger)
	s.registry = usecase.NewSessionRegistry(s.catalog, s.mockLedger, prefstore.NewMemoryStore(), clock.NewRealClock(), cfg.Session)

	catalogHandler := api.NewCatalogHandler(s.catalog)
	sessionHandler := api.NewSessionHandler(s.registry, s.catalog)
	kiosk := middleware.NewKioskMiddleware(cfg)

	s.router.GET("/api/items", catalogHandler.ListItems)

	session := s.router.Group("/api/session")
	session.Use(kiosk.AttachIdentity())
	session.GET("", sessionHandler.GetSession)
	session.PUT("/display-id", sessionHandler.UpdateDisplayID)
	session.PUT("/remember", sessionHandler.UpdateRemember)
	session.PUT("/selection", sessionHandler.UpdateSelection)
	session.PUT("/quantity", sessionHandler.UpdateQuantity)
	session.PUT("/query", sessionHandler.UpdateQuery)
	session.POST("/commit", sessionHandler.Commit)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

// do performs a request, carrying the suite's cookie jar forward.
func (s *SessionHandlerTestSuite) do(method, path string, body any) *resdto.SessionResponse {
	w := httptest.PerformRequest(s.T(), s.router, method, path, body, s.jar)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.jar = httptest.MergeCookies(s.jar, w.Result().Cookies())

	var resp resdto.SessionResponse
	httptest.DecodeJSON(s.T(), w, &resp)
	return &resp
}

func (s *SessionHandlerTestSuite) loadCatalog() {
	s.mockLedger.EXPECT().ListActiveItems(gomock.Any()).Return(builder.Catalog(), nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *SessionHandlerTestSuite) TestGetSessionCreatesIdentity() {
	resp := s.do(http.MethodGet, "/api/session", nil)

	s.Equal(1, resp.Quantity)
	s.Equal("none", resp.Balance.Status)
	s.False(resp.BookingInFlight)

	names := make([]string, 0, len(s.jar))
	for _, c := range s.jar {
		names = append(names, c.Name)
	}
	s.Contains(names, cookie.SessionCookieName)
	s.Contains(names, cookie.DeviceCookieName)
}

func (s *SessionHandlerTestSuite) TestUpdateDisplayIDEntersPending() {
	resp := s.do(http.MethodPut, "/api/session/display-id", map[string]any{"displayId": "MAX23"})

	s.Equal("MAX23", resp.DisplayID)
	s.Equal("pending", resp.Balance.Status)
}

func (s *SessionHandlerTestSuite) TestUpdateQuantity() {
	// Applied in order against the same session.
	steps := []struct {
		name      string
		body      map[string]any
		expectQty int
	}{
		{name: "absolute value clamps high", body: map[string]any{"quantity": 500}, expectQty: 99},
		{name: "absolute value clamps low", body: map[string]any{"quantity": -3}, expectQty: 1},
		{name: "delta at lower bound stays put", body: map[string]any{"delta": -1}, expectQty: 1},
		{name: "delta steps up", body: map[string]any{"delta": 2}, expectQty: 3},
	}
	for _, tc := range steps {
		resp := s.do(http.MethodPut, "/api/session/quantity", tc.body)
		s.Equal(tc.expectQty, resp.Quantity, tc.name)
	}
}

func (s *SessionHandlerTestSuite) TestUpdateQuantityRejectsAmbiguousBody() {
	bodies := []map[string]any{
		{},
		{"delta": 1, "quantity": 5},
	}
	for _, body := range bodies {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/session/quantity", body, s.jar)
		s.Equal(http.StatusBadRequest, w.Code)
	}
}

func (s *SessionHandlerTestSuite) TestSelectionResolvesAgainstCatalog() {
	s.loadCatalog()

	resp := s.do(http.MethodPut, "/api/session/selection", map[string]any{"itemId": "p1"})
	s.Require().NotNil(resp.SelectedItem)
	s.Equal("Cola", resp.SelectedItem.Name)
	s.Equal(150, resp.TotalCents)

	resp = s.do(http.MethodPut, "/api/session/selection", map[string]any{"itemId": ""})
	s.Nil(resp.SelectedItem)
	s.Equal(0, resp.TotalCents)
}

func (s *SessionHandlerTestSuite) TestCommitValidation() {
	// Establish a session first so the commit hits an existing controller
	s.do(http.MethodGet, "/api/session", nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/commit", nil, s.jar)
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code)

	var errResp httperr.Response
	httptest.DecodeJSON(s.T(), w, &errResp)
	s.Equal("Please enter your ID and choose a product", errResp.Error.Message)
}

func (s *SessionHandlerTestSuite) TestCommitSuccess() {
	s.loadCatalog()
	s.do(http.MethodPut, "/api/session/display-id", map[string]any{"displayId": "MAX23"})
	s.do(http.MethodPut, "/api/session/selection", map[string]any{"itemId": "p1"})
	s.do(http.MethodPut, "/api/session/quantity", map[string]any{"quantity": 2})

	s.mockLedger.EXPECT().
		BookTransaction(gomock.Any(), "MAX23", "p1", 2, "web").
		Return(ptr.Int(700), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/commit", nil, s.jar)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp resdto.CommitResponse
	httptest.DecodeJSON(s.T(), w, &resp)

	s.Require().NotNil(resp.NewBalanceCents)
	s.Equal(700, *resp.NewBalanceCents)
	s.Equal("MAX23", resp.Session.DisplayID)
	s.Nil(resp.Session.SelectedItem)
	s.Equal(1, resp.Session.Quantity)
	s.Equal("found", resp.Session.Balance.Status)
	s.Require().NotNil(resp.Session.Balance.Cents)
	s.Equal(700, *resp.Session.Balance.Cents)
}

func (s *SessionHandlerTestSuite) TestCommitFailureSurfacesLedgerMessageVerbatim() {
	s.loadCatalog()
	s.do(http.MethodPut, "/api/session/display-id", map[string]any{"displayId": "MAX23"})
	s.do(http.MethodPut, "/api/session/selection", map[string]any{"itemId": "p1"})

	s.mockLedger.EXPECT().
		BookTransaction(gomock.Any(), "MAX23", "p1", 1, "web").
		Return(nil, errors.New("insufficient balance"))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/commit", nil, s.jar)
	s.Require().Equal(http.StatusBadGateway, w.Code)

	var errResp httperr.Response
	httptest.DecodeJSON(s.T(), w, &errResp)
	s.Equal("insufficient balance", errResp.Error.Message)

	// Selection and the failure message survive for a retry
	resp := s.do(http.MethodGet, "/api/session", nil)
	s.Require().NotNil(resp.SelectedItem)
	s.Equal("p1", resp.SelectedItem.ID)
	s.False(resp.BookingInFlight)
	s.Require().NotNil(resp.LastResult)
	s.Equal("insufficient balance", resp.LastResult.FailureMessage)
	s.Nil(resp.LastResult.NewBalanceCents)
}

func (s *SessionHandlerTestSuite) TestDeepLinkPreselect() {
	s.loadCatalog()

	resp := s.do(http.MethodGet, "/api/session?item=p2", nil)
	s.Require().NotNil(resp.SelectedItem)
	s.Equal("p2", resp.SelectedItem.ID)
}

func (s *SessionHandlerTestSuite) TestDeepLinkUnknownItemIsIgnored() {
	s.loadCatalog()

	resp := s.do(http.MethodGet, "/api/session?item=ghost", nil)
	s.Nil(resp.SelectedItem)
}

func (s *SessionHandlerTestSuite) TestListItemsUnavailable() {
	s.mockLedger.EXPECT().ListActiveItems(gomock.Any()).Return(nil, errors.New("connection refused"))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items", nil, nil)
	s.Require().Equal(http.StatusServiceUnavailable, w.Code)

	var errResp httperr.Response
	httptest.DecodeJSON(s.T(), w, &errResp)
	s.Equal("connection refused", errResp.Error.Message)
}

func (s *SessionHandlerTestSuite) TestListItemsFiltered() {
	s.loadCatalog()

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items?query=cola", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var items []resdto.ItemResponse
	httptest.DecodeJSON(s.T(), w, &items)
	s.Require().Len(items, 1)
	s.Equal("p1", items[0].ID)
}
