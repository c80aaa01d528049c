package handlers

import (
	"github.com/osa911/astrobooking/internal/api/constants"
	"github.com/osa911/astrobooking/internal/api/dto/common"
	"github.com/osa911/astrobooking/internal/api/dto/v1/contact"
	"github.com/osa911/astrobooking/internal/api/validation"
	"github.com/osa911/astrobooking/internal/models"
	"github.com/osa911/astrobooking/internal/service"
	"github.com/osa911/astrobooking/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	mailer      Mailer
	guard       *service.AttachmentGuard
	diagnostics *service.DiagnosticsRecorder
}

func NewContactHandler(mailer Mailer, guard *service.AttachmentGuard, diagnostics *service.DiagnosticsRecorder) *ContactHandler {
	return &ContactHandler{
		mailer:      mailer,
		guard:       guard,
		diagnostics: diagnostics,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	result, err := validation.Bind(c, &req)
	if err != nil {
		utils.HandleAPIError(c, bindError(err), h.guard.MaxBytes())
		return
	}
	if !result.Valid() {
		h.diagnostics.Record(constants.EndpointContact, c.Request.PostForm, result.Errors)
		utils.HandleValidationErrors(c, result.Errors)
		return
	}

	upload, err := readUpload(c, h.guard, constants.FormFieldImage, constants.DefaultImageName)
	if err != nil {
		utils.HandleAPIError(c, err, h.guard.MaxBytes())
		return
	}

	sub := models.NewContactSubmission(req.ToModel())
	if err := h.mailer.SendContact(c.Request.Context(), sub, upload); err != nil {
		utils.HandleAPIError(c, err, h.guard.MaxBytes())
		return
	}

	utils.HandleMessage(c, common.MsgMessageSent)
}
