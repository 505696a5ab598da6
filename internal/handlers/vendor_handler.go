package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"
)

// VendorHandler handles vendor registration, login and catalog requests.
type VendorHandler struct {
	vendors  *services.VendorService
	catalog  *services.CatalogService
	auth     *services.AuthService
	logger   *zap.Logger
	validate *validator.Validate
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendors *services.VendorService, catalog *services.CatalogService, auth *services.AuthService, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{
		vendors:  vendors,
		catalog:  catalog,
		auth:     auth,
		logger:   logger,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the vendor routes. authRequired guards catalog
// mutations.
func (h *VendorHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	vendorRoutes := router.Group("/vendor")
	vendorRoutes.Post("/register", h.HandleRegister)
	vendorRoutes.Post("/login", h.HandleLogin)
	vendorRoutes.Post("/add-product", authRequired, h.HandleAddProduct)
	vendorRoutes.Get("/products", h.HandleListProducts)
}

// RegisterRequest represents the request body for vendor registration.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,max=72"`
	BusinessName string `json:"businessName" validate:"required"`
}

// HandleRegister handles new vendor registration.
func (h *VendorHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if problem := bindRequest(c, h.validate, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	_, err := h.vendors.Register(c.UserContext(), services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return fail(c, fiber.StatusBadRequest, "Vendor already exists")
		}
		h.logger.Error("vendor registration failed", zap.Error(err))
		return failInternal(c, "Error registering vendor", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Vendor registered successfully",
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles vendor login and issues a JWT token.
func (h *VendorHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if problem := bindRequest(c, h.validate, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	token, vendor, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return fail(c, fiber.StatusBadRequest, "Vendor not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			return fail(c, fiber.StatusBadRequest, "Invalid credentials")
		}
		h.logger.Error("vendor login failed", zap.Error(err))
		return failInternal(c, "Error logging in", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"vendor":  vendor,
	})
}

// AddProductRequest represents the request body for adding a product. The
// owning vendor comes from the session token; VendorID, when sent, must match it.
type AddProductRequest struct {
	VendorID string  `json:"vendorId"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Image    string  `json:"image"`
}

// HandleAddProduct appends a product to the authenticated vendor's catalog.
func (h *VendorHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if problem := bindRequest(c, h.validate, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	vendorID := middleware.VendorID(c)
	if req.VendorID != "" && req.VendorID != vendorID {
		h.logger.Warn("product add for another vendor rejected",
			zap.String("token_vendor_id", vendorID),
			zap.String("body_vendor_id", req.VendorID))
		return fail(c, fiber.StatusForbidden, "Cannot add products for another vendor")
	}

	vendor, err := h.catalog.AddProduct(c.UserContext(), vendorID, models.Product{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
		Image: req.Image,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Vendor not found")
		}
		h.logger.Error("adding product failed", zap.String("vendor_id", vendorID), zap.Error(err))
		return failInternal(c, "Error adding product", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product added successfully",
		"vendor":  vendor,
	})
}

// HandleListProducts lists every vendor's products.
func (h *VendorHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListAllProducts(c.UserContext())
	if err != nil {
		h.logger.Error("listing products failed", zap.Error(err))
		return failInternal(c, "Error fetching products", err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}
