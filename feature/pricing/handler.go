package pricing

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-indexer/core/logger"
)

// Handler handles HTTP requests for pricing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pricing routes. /decks/expensive registers
// before the catalog's /decks/:uuid wildcard, so this feature loads first.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	pricing := app.Group("/pricing")
	pricing.Get("/card/:uuid", h.HandleGetCardPrice)
	pricing.Get("/sku/:sku_id", h.HandleGetSkuLatest)
	pricing.Get("/sku/:sku_id/history", h.HandleGetSkuHistory)

	app.Get("/decks/expensive", h.HandleGetExpensiveDecks)
}

// HandleGetCardPrice returns the latest price of a card in one condition.
// @Summary Get Card Price
// @Tags pricing
// @Produce json
// @Param uuid path string true "Card UUID"
// @Param condition query string false "SKU condition (default Near Mint)"
// @Success 200 {object} CardPrice "Price"
// @Failure 404 {object} map[string]string "No price"
// @Router /pricing/card/{uuid} [get]
func (h *Handler) HandleGetCardPrice(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	condition := c.Query("condition")
	l := logger.WithRequestID(h.service.logger, c)

	price, err := h.service.CardPrice(c.Context(), uuid, condition)
	if err != nil {
		l.Error("card price lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if price == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no price for card in that condition"})
	}
	return c.JSON(price)
}

// HandleGetSkuLatest returns the latest price snapshot of a SKU.
// @Summary Get SKU Price
// @Tags pricing
// @Produce json
// @Param sku_id path int true "SKU id"
// @Success 200 {object} LatestPrice "Price"
// @Failure 404 {object} map[string]string "No price"
// @Router /pricing/sku/{sku_id} [get]
func (h *Handler) HandleGetSkuLatest(c *fiber.Ctx) error {
	skuID, err := strconv.ParseUint(c.Params("sku_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sku id"})
	}
	l := logger.WithRequestID(h.service.logger, c)

	latest, err := h.service.SkuLatest(c.Context(), skuID)
	if err != nil {
		l.Error("sku price lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if latest == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no price for sku"})
	}
	return c.JSON(latest)
}

// HandleGetSkuHistory returns the market price history of a SKU.
// @Summary Get SKU Price History
// @Tags pricing
// @Produce json
// @Param sku_id path int true "SKU id"
// @Param days query int false "Window in days (default 30)"
// @Success 200 {array} PricePoint "History"
// @Router /pricing/sku/{sku_id}/history [get]
func (h *Handler) HandleGetSkuHistory(c *fiber.Ctx) error {
	skuID, err := strconv.ParseUint(c.Params("sku_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sku id"})
	}
	days := c.QueryInt("days", DefaultHistoryDays)
	l := logger.WithRequestID(h.service.logger, c)

	points, err := h.service.SkuHistory(c.Context(), skuID, days)
	if err != nil {
		l.Error("sku history lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if points == nil {
		points = []PricePoint{}
	}
	return c.JSON(points)
}

// HandleGetExpensiveDecks returns decks ranked by market value.
// @Summary Get Expensive Decks
// @Tags decks
// @Produce json
// @Param min_value query number false "Minimum market value"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} DeckValueEntry "Decks"
// @Router /decks/expensive [get]
func (h *Handler) HandleGetExpensiveDecks(c *fiber.Ctx) error {
	minValue := c.QueryFloat("min_value", 0)
	limit := c.QueryInt("limit", 20)
	l := logger.WithRequestID(h.service.logger, c)

	entries, err := h.service.ExpensiveDecks(c.Context(), minValue, limit)
	if err != nil {
		l.Error("expensive deck lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if entries == nil {
		entries = []DeckValueEntry{}
	}
	return c.JSON(entries)
}
