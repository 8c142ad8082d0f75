package routes

import (
	"homeez_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWizards = "/wizards"

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	wizards := rg.Group(PathWizards)
	{
		wizards.POST("", h.StartWizard)
		wizards.GET("/:session_id", h.GetWizard)
		wizards.DELETE("/:session_id", h.DiscardWizard)

		// Details
		wizards.PUT("/:session_id/option", h.SelectOption)
		wizards.PUT("/:session_id/provider", h.SelectProvider)
		// DateTime
		wizards.PUT("/:session_id/date", h.SelectDate)
		wizards.PUT("/:session_id/time-slot", h.SelectTimeSlot)
		// Address
		wizards.PATCH("/:session_id/address", h.UpdateAddress)
		// Payment
		wizards.PUT("/:session_id/payment-method", h.SelectPaymentMethod)

		wizards.POST("/:session_id/next", h.Next)
		wizards.POST("/:session_id/back", h.Back)
		wizards.POST("/:session_id/handoff/retry", h.RetryHandoff)
	}
}
