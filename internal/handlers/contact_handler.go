package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront/internal/services"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	service  *services.ContactService
	logger   *zap.Logger
	validate *validator.Validate
}

func NewContactHandler(service *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service:  service,
		logger:   logger,
		validate: newValidator(),
	}
}

func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// ContactRequest represents the contact form body.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var req ContactRequest
	if problem := bindRequest(c, h.validate, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	if _, err := h.service.Submit(c.UserContext(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		h.logger.Error("saving contact message failed", zap.Error(err))
		return failInternal(c, "Error saving data", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Your message has been sent successfully!",
	})
}
