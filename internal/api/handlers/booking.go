package handlers

import (
	"github.com/osa911/astrobooking/internal/api/constants"
	"github.com/osa911/astrobooking/internal/api/dto/common"
	"github.com/osa911/astrobooking/internal/api/dto/v1/booking"
	"github.com/osa911/astrobooking/internal/api/validation"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osa911/astrobooking/internal/service"
	"github.com/osa911/astrobooking/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	mailer      Mailer
	guard       *service.AttachmentGuard
	diagnostics *service.DiagnosticsRecorder
}

func NewBookingHandler(mailer Mailer, guard *service.AttachmentGuard, diagnostics *service.DiagnosticsRecorder) *BookingHandler {
	return &BookingHandler{
		mailer:      mailer,
		guard:       guard,
		diagnostics: diagnostics,
	}
}

// Book handles POST /api/book-consultation. The payment screenshot is
// optional and only forwarded to the admin.
func (h *BookingHandler) Book(c *gin.Context) {
	var req booking.BookingRequest
	result, err := validation.Bind(c, &req)
	if err != nil {
		utils.HandleAPIError(c, bindError(err), h.guard.MaxBytes())
		return
	}
	if !result.Valid() {
		h.diagnostics.Record(constants.EndpointBooking, c.Request.PostForm, result.Errors)
		utils.HandleValidationErrors(c, result.Errors)
		return
	}

	upload, err := readUpload(c, h.guard, constants.FormFieldScreenshot, constants.DefaultScreenshotName)
	if err != nil {
		utils.HandleAPIError(c, err, h.guard.MaxBytes())
		return
	}

	sub := models.NewBookingSubmission(req.ToModel())
	if err := h.mailer.SendBooking(c.Request.Context(), sub, upload); err != nil {
		utils.HandleAPIError(c, err, h.guard.MaxBytes())
		return
	}

	utils.HandleMessage(c, common.MsgBookingProcessed)
}
