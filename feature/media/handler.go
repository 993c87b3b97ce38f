package media

import (
	"errors"

	"product-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product images.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products/:id/image")
	group.Put("/", h.HandleUploadImage)
	group.Get("/", h.HandleGetImage)
	group.Delete("/", h.HandleDeleteImage)
}

// HandleUploadImage stores the request body as the product's image.
// @Summary Upload Product Image
// @Description Store the raw request body as the product's image, replacing any previous one.
// @Tags media
// @Accept octet-stream
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id}/image [put]
func (h *Handler) HandleUploadImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c, "product not found")
	}

	err := h.service.UploadImage(c.Context(), id, c.Body(), c.Get(fiber.HeaderContentType))
	if err != nil {
		return h.renderError(c, l, err, "Image upload failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetImage streams the product's stored image.
// @Summary Get Product Image
// @Description Stream the stored image for a product.
// @Tags media
// @Produce octet-stream
// @Param id path int true "Product ID"
// @Success 200 {file} binary "Image"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id}/image [get]
func (h *Handler) HandleGetImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c, "product not found")
	}

	reader, contentType, err := h.service.GetImage(c.Context(), id)
	if err != nil {
		return h.renderError(c, l, err, "Image fetch failed")
	}

	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.SendStream(reader)
}

// HandleDeleteImage removes the product's stored image.
// @Summary Delete Product Image
// @Description Remove the stored image for a product.
// @Tags media
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id}/image [delete]
func (h *Handler) HandleDeleteImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := parseID(c)
	if !ok {
		return notFound(c, "product not found")
	}

	if err := h.service.DeleteImage(c.Context(), id); err != nil {
		return h.renderError(c, l, err, "Image delete failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) renderError(c *fiber.Ctx, l *zap.Logger, err error, msg string) error {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return notFound(c, "product not found")
	case errors.Is(err, ErrImageNotFound):
		return notFound(c, "image not found")
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

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}
