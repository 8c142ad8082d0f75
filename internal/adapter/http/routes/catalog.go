package routes

import (
	"homeez_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices  = "/services"
	PathTimeSlots = "/time-slots"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.ListServices)
		services.GET("/:service_id", h.GetService)
		services.GET("/:service_id/providers", h.ListProviders)
	}
	rg.GET(PathTimeSlots, h.ListTimeSlots)
}
