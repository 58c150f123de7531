package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tab-kiosk/internal/handler/api"
	"tab-kiosk/internal/handler/middleware"
	"tab-kiosk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, sessionHandler *api.SessionHandler, kioskMiddleware *middleware.KioskMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, sessionHandler, kioskMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, sessionHandler *api.SessionHandler, kioskMiddleware *middleware.KioskMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/items", Handler: catalogHandler.ListItems},
		})

		session := apiGroup.Group("/session")
		session.Use(kioskMiddleware.AttachIdentity())
		{
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "", Handler: sessionHandler.GetSession},
				{Method: http.MethodPut, Path: "/display-id", Handler: sessionHandler.UpdateDisplayID},
				{Method: http.MethodPut, Path: "/remember", Handler: sessionHandler.UpdateRemember},
				{Method: http.MethodPut, Path: "/selection", Handler: sessionHandler.UpdateSelection},
				{Method: http.MethodPut, Path: "/quantity", Handler: sessionHandler.UpdateQuantity},
				{Method: http.MethodPut, Path: "/query", Handler: sessionHandler.UpdateQuery},
				{Method: http.MethodPost, Path: "/commit", Handler: sessionHandler.Commit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
