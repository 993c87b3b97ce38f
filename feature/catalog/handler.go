package catalog

import (
	"errors"

	"product-catalog/core/logger"
	"product-catalog/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the product catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/", h.HandleListProducts)
	group.Post("/", h.HandleCreateProduct)
	group.Get("/:id", h.HandleGetProduct)
	group.Put("/:id", h.HandleReplaceProduct)
	group.Patch("/:id", h.HandlePatchProduct)
	group.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns every product with its options and tags.
// @Summary List Products
// @Description Get all products including their option and tag sets.
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {array} models.Product "Products"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Product list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(products)
}

// HandleGetProduct returns a single product.
// @Summary Get Product
// @Description Get one product by id including its option and tag sets.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product "Product"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	product, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.renderError(c, l, err, "Product fetch failed")
	}

	return c.JSON(product)
}

// HandleCreateProduct creates a product with nested options and tags.
// @Summary Create Product
// @Description Create a product. Submitted option pks are ignored; tags are resolved by name, creating missing ones.
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductPayload true "Product"
// @Success 201 {object} models.Product "Created Product"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products [post]
func (h *Handler) HandleCreateProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		l.Warn("Invalid product payload", zap.Error(err))
		return badRequest(c, "invalid request body")
	}
	if payload.Name == nil || *payload.Name == "" {
		return badRequest(c, "name is required")
	}

	product, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.renderError(c, l, err, "Product create failed")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleReplaceProduct applies a full product representation.
// @Summary Replace Product
// @Description Full update. A submitted option list is reconciled against the stored options; a submitted tag list replaces the membership set.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.ProductPayload true "Product"
// @Success 200 {object} models.Product "Updated Product"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [put]
func (h *Handler) HandleReplaceProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	var payload models.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		l.Warn("Invalid product payload", zap.Error(err))
		return badRequest(c, "invalid request body")
	}
	// PUT carries the full representation, so the name must be present
	if payload.Name == nil || *payload.Name == "" {
		return badRequest(c, "name is required")
	}

	product, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.renderError(c, l, err, "Product update failed")
	}

	return c.JSON(product)
}

// HandlePatchProduct applies a partial product representation.
// @Summary Patch Product
// @Description Partial update. Omitted keys are left unchanged; option_set and tag_set keep omitted-preserves, empty-clears semantics.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.ProductPayload true "Partial Product"
// @Success 200 {object} models.Product "Updated Product"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [patch]
func (h *Handler) HandlePatchProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	var payload models.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		l.Warn("Invalid product payload", zap.Error(err))
		return badRequest(c, "invalid request body")
	}

	product, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.renderError(c, l, err, "Product update failed")
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and its options.
// @Summary Delete Product
// @Description Delete a product. Its options are removed with it; tag rows survive.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [delete]
func (h *Handler) HandleDeleteProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.renderError(c, l, err, "Product delete failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) renderError(c *fiber.Ctx, l *zap.Logger, err error, msg string) error {
	if errors.Is(err, ErrProductNotFound) {
		return notFound(c)
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
}
