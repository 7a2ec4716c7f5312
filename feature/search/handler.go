package search

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-indexer/core/logger"
)

// Handler handles HTTP requests for search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes. These must be mounted before
// the catalog's /cards/:uuid and /decks/:uuid wildcards.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/cards/search/name", h.HandleSearchCards)
	app.Get("/cards/autocomplete", h.HandleAutocomplete)
	app.Get("/decks/search/name", h.HandleSearchDecks)
}

// HandleSearchCards answers fuzzy card name queries.
// @Summary Search Cards
// @Description Fuzzy card name search with optional set/rarity/color filters.
// @Tags search
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Max results (default 20)"
// @Param set query string false "Set code filter"
// @Param rarity query string false "Rarity filter"
// @Param color query string false "Color filter"
// @Success 200 {array} ScoredCard "Hits"
// @Failure 400 {object} map[string]string "Unknown filter"
// @Failure 503 {object} map[string]string "Index not built"
// @Router /cards/search/name [get]
func (h *Handler) HandleSearchCards(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	filters := make(map[string]string)
	for _, key := range []string{"set", "rarity", "color"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}

	hits, err := h.service.SearchCards(c.Context(), c.Query("q"), c.QueryInt("limit"), filters)
	if err != nil {
		return h.searchError(c, l, err)
	}
	return c.JSON(hits)
}

// HandleAutocomplete suggests card names for a prefix.
// @Summary Autocomplete Card Names
// @Tags search
// @Produce json
// @Param prefix query string true "Name prefix"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} string "Names"
// @Router /cards/autocomplete [get]
func (h *Handler) HandleAutocomplete(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	names, err := h.service.Autocomplete(c.Context(), c.Query("prefix"), c.QueryInt("limit"))
	if err != nil {
		l.Error("autocomplete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// HandleSearchDecks answers fuzzy deck name queries.
// @Summary Search Decks
// @Tags search
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} ScoredDeck "Hits"
// @Failure 503 {object} map[string]string "Index not built"
// @Router /decks/search/name [get]
func (h *Handler) HandleSearchDecks(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	hits, err := h.service.SearchDecks(c.Context(), c.Query("q"), c.QueryInt("limit"))
	if err != nil {
		return h.searchError(c, l, err)
	}
	return c.JSON(hits)
}

func (h *Handler) searchError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, ErrIndexNotBuilt):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnknownFilter):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
