package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api/v1", mw.Chain()...)

	api.GET("/state", h.sessionHTTP.GetState)

	places := api.Group("/places")
	places.PUT("/home", h.sessionHTTP.SetHome)
	places.DELETE("/home", h.sessionHTTP.ClearHome)
	places.PUT("/work", h.sessionHTTP.SetWork)
	places.DELETE("/work", h.sessionHTTP.ClearWork)
	places.POST("/frequent", h.sessionHTTP.AddFrequent)
	places.PUT("/frequent/order", h.sessionHTTP.ReorderFrequent)
	places.DELETE("/frequent/:id", h.sessionHTTP.RemoveFrequent)

	api.PUT("/mode", h.sessionHTTP.SetMode)
	api.PUT("/overlays", h.sessionHTTP.SetToggles)

	api.GET("/map", h.sessionHTTP.GetMap)
	api.POST("/map/center/:id", h.sessionHTTP.CenterOn)

	api.GET("/comparison", h.sessionHTTP.GetComparison)

	api.GET("/preferences", h.sessionHTTP.GetPreferences)
	api.PUT("/preferences", h.sessionHTTP.PutPreferences)

	if h.stream != nil {
		api.GET("/ws", h.stream.HandleConnection)
	}
}
