package handlers

import (
	"net/http"
	"strings"

	response "homeez_booking/internal/adapter/http/dto/response"
	"homeez_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only reference data: services, providers
// and time slots.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  List services
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.ServiceResponse
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(items))
}

// GetService godoc
// @Summary  Get a service with its options
// @Tags     catalog
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {object} response.ServiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{service_id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetService(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// ListProviders godoc
// @Summary  List providers offering a service
// @Description Busy providers are included with eligible=false.
// @Tags     catalog
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {array} response.ProviderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{service_id}/providers [get]
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	serviceID := strings.TrimSpace(c.Param("service_id"))
	items, err := h.usecase.ListProviders(c.Request.Context(), serviceID)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProviders(items, serviceID))
}

// ListTimeSlots godoc
// @Summary  List time slots
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.TimeSlotResponse
// @Router   /time-slots [get]
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	items, err := h.usecase.ListTimeSlots(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimeSlots(items))
}
