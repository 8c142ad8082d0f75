package handlers

import (
	"net/http"

	request "homeez_booking/internal/adapter/http/dto/request"
	response "homeez_booking/internal/adapter/http/dto/response"
	"homeez_booking/internal/adapter/http/middleware"
	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard. Every endpoint answers with the
// full wizard view; rejected input answers 422 with the notice in the view.

type WizardHandler struct {
	usecase usecase.IBookingWizardUseCase
	logger  *zap.Logger
}

func NewWizardHandler(uc usecase.IBookingWizardUseCase, logger *zap.Logger) *WizardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardHandler{usecase: uc, logger: logger}
}

// StartWizard godoc
// @Summary  Start a booking wizard
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    body body request.StartWizardRequest true "Service and option"
// @Success  201 {object} response.WizardResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /wizards [post]
func (h *WizardHandler) StartWizard(c *gin.Context) {
	var payload request.StartWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	view, err := h.usecase.Start(c.Request.Context(), middleware.UserFrom(c), payload.ServiceID, payload.OptionID)
	if err != nil {
		h.fail(c, view, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardView(view))
}

// GetWizard godoc
// @Summary  Get a booking wizard
// @Description Poll this endpoint after confirmation to follow the hand-off.
// @Tags     wizard
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Success  200 {object} response.WizardResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /wizards/{session_id} [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"))
	if err != nil {
		h.fail(c, view, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

// DiscardWizard godoc
// @Summary  Discard a booking wizard
// @Tags     wizard
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /wizards/{session_id} [delete]
func (h *WizardHandler) DiscardWizard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id")); err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectOption godoc
// @Summary  Change the service option (details step)
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Param    body body request.SelectOptionRequest true "Option"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/option [put]
func (h *WizardHandler) SelectOption(c *gin.Context) {
	var payload request.SelectOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	view, err := h.usecase.SelectOption(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"), payload.OptionID)
	h.respond(c, view, err)
}

// SelectProvider godoc
// @Summary  Select the provider (details step)
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Param    body body request.SelectProviderRequest true "Provider"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/provider [put]
func (h *WizardHandler) SelectProvider(c *gin.Context) {
	var payload request.SelectProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	view, err := h.usecase.SelectProvider(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"), payload.ProviderID)
	h.respond(c, view, err)
}

// SelectDate godoc
// @Summary  Select the booking date (date/time step)
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Param    body body request.SelectDateRequest true "Date"
// @Success  200 {object} response.WizardResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/date [put]
func (h *WizardHandler) SelectDate(c *gin.Context) {
	var payload request.SelectDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	date, err := payload.ResolveDate()
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return
	}
	view, err := h.usecase.SelectDate(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"), date)
	h.respond(c, view, err)
}

// SelectTimeSlot godoc
// @Summary  Select the time slot (date/time step)
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Param    body body request.SelectTimeSlotRequest true "Time slot"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/time-slot [put]
func (h *WizardHandler) SelectTimeSlot(c *gin.Context) {
	var payload request.SelectTimeSlotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	view, err := h.usecase.SelectTimeSlot(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"), payload.TimeSlotID)
	h.respond(c, view, err)
}

// UpdateAddress godoc
// @Summary  Update address fields (address step)
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Param    body body request.AddressPatchRequest true "Address fields"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/address [patch]
func (h *WizardHandler) UpdateAddress(c *gin.Context) {
	var payload request.AddressPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if payload.Empty() {
		c.JSON(errEmptyAddress.HTTPStatus, errEmptyAddress.ToHTTPError())
		return
	}
	view, err := h.usecase.SetAddress(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"), payload.ToPatch())
	h.respond(c, view, err)
}

// SelectPaymentMethod godoc
// @Summary  Select the payment method (payment step)
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Param    body body request.SelectPaymentMethodRequest true "cash, card or upi"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/payment-method [put]
func (h *WizardHandler) SelectPaymentMethod(c *gin.Context) {
	var payload request.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	view, err := h.usecase.SelectPaymentMethod(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"), payload.ResolvePaymentMethod())
	h.respond(c, view, err)
}

// Next godoc
// @Summary  Advance to the next step
// @Description From the payment step this confirms the booking.
// @Tags     wizard
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	view, err := h.usecase.Next(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"))
	h.respond(c, view, err)
}

// Back godoc
// @Summary  Return to the previous step
// @Tags     wizard
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Success  200 {object} response.WizardResponse
// @Failure  422 {object} response.WizardResponse
// @Router   /wizards/{session_id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	view, err := h.usecase.Back(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"))
	h.respond(c, view, err)
}

// RetryHandoff godoc
// @Summary  Retry a failed booking hand-off
// @Tags     wizard
// @Produce  json
// @Param    X-User-ID header string true "Caller id"
// @Param    session_id path string true "Session ID"
// @Success  202 {object} response.WizardResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /wizards/{session_id}/handoff/retry [post]
func (h *WizardHandler) RetryHandoff(c *gin.Context) {
	view, err := h.usecase.RetryHandoff(c.Request.Context(), middleware.UserFrom(c), c.Param("session_id"))
	if err != nil {
		h.fail(c, view, err)
		return
	}
	c.JSON(http.StatusAccepted, response.FromWizardView(view))
}

func (h *WizardHandler) respond(c *gin.Context, view usecase.WizardView, err error) {
	if err != nil {
		h.fail(c, view, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

func (h *WizardHandler) fail(c *gin.Context, view usecase.WizardView, err error) {
	if n, ok := wizard.AsNotice(err); ok && view.Session.ID != "" {
		h.logger.Debug("[wizard][handler] notice", zap.String("session_id", view.Session.ID), zap.String("code", string(n.Code)))
		c.JSON(http.StatusUnprocessableEntity, response.FromWizardView(view))
		return
	}
	appErr := mapWizardError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[wizard][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
