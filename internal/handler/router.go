package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookswap-engine/internal/handler/api"
	"bookswap-engine/internal/handler/middleware"
	"bookswap-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, swapHandler *api.SwapHandler, extensionHandler *api.ExtensionHandler, locationHandler *api.LocationHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, swapHandler, extensionHandler, locationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, swapHandler *api.SwapHandler, extensionHandler *api.ExtensionHandler, locationHandler *api.LocationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		swaps := apiGroup.Group("/swaps")
		swaps.Use(authMiddleware.RequireAuth())
		{
			addRoutes(swaps, []route{
				{Method: http.MethodPost, Path: "", Handler: swapHandler.Propose},
				{Method: http.MethodGet, Path: "", Handler: swapHandler.List},
				{Method: http.MethodGet, Path: "/history", Handler: swapHandler.History},
				{Method: http.MethodGet, Path: "/:id", Handler: swapHandler.GetByID},
				{Method: http.MethodPatch, Path: "/:id/accept", Handler: swapHandler.Accept},
				{Method: http.MethodPatch, Path: "/:id/confirm", Handler: swapHandler.Confirm},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: swapHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/rate", Handler: swapHandler.Rate},
				{Method: http.MethodPost, Path: "/:id/token", Handler: swapHandler.Token},
				{Method: http.MethodGet, Path: "/:id/qr", Handler: swapHandler.QR},
				{Method: http.MethodPost, Path: "/:id/extensions", Handler: extensionHandler.Request},
			})
		}

		extensions := apiGroup.Group("/extensions")
		extensions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(extensions, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: extensionHandler.Respond},
			})
		}

		meetup := apiGroup.Group("/meetup")
		meetup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(meetup, []route{
				{Method: http.MethodGet, Path: "/spots", Handler: locationHandler.MeetingSpots},
			})
		}
	}
}

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
