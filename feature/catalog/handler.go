package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-indexer/core/logger"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes. The search feature registers
// its /cards/search and /cards/autocomplete routes before this one so the
// :uuid wildcard does not shadow them.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	cards := app.Group("/cards")
	cards.Get("/name/:name", h.HandleGetCardsByName)
	cards.Get("/oracle/:oracle_id", h.HandleGetPrintings)
	cards.Get("/:uuid", h.HandleGetCard)
	cards.Get("/:uuid/decks", h.HandleGetCardDecks)

	sets := app.Group("/sets")
	sets.Get("/", h.HandleGetSets)
	sets.Get("/:code", h.HandleGetSet)
	sets.Get("/:code/cards", h.HandleGetSetCards)

	decks := app.Group("/decks")
	decks.Get("/commanders", h.HandleGetCommanderDecks)
	decks.Get("/type/:type", h.HandleGetDecksByType)
	decks.Get("/slug/:slug", h.HandleGetDeckBySlug)
	decks.Get("/:uuid", h.HandleGetDeck)

	app.Get("/stats", h.HandleGetStats)
}

// HandleGetCard returns a single card record.
// @Summary Get Card
// @Description Get the full card record for a printing uuid.
// @Tags cards
// @Produce json
// @Param uuid path string true "Card UUID"
// @Success 200 {object} models.Card "Card"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cards/{uuid} [get]
func (h *Handler) HandleGetCard(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	l := logger.WithRequestID(h.service.logger, c)

	card, err := h.service.CardByUUID(c.Context(), uuid)
	if err != nil {
		l.Error("card lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if card == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "card not found"})
	}
	return c.JSON(card)
}

// HandleGetCardsByName returns every printing with the exact name.
// @Summary Get Cards by Name
// @Tags cards
// @Produce json
// @Param name path string true "Exact card name"
// @Success 200 {array} models.Card "Printings"
// @Router /cards/name/{name} [get]
func (h *Handler) HandleGetCardsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRequestID(h.service.logger, c)

	cards, err := h.service.CardsByName(c.Context(), name)
	if err != nil {
		l.Error("name lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cards)
}

// HandleGetPrintings returns every printing sharing an oracle identity.
// @Summary Get Printings by Oracle
// @Tags cards
// @Produce json
// @Param oracle_id path string true "Scryfall oracle id"
// @Success 200 {array} models.Card "Printings"
// @Router /cards/oracle/{oracle_id} [get]
func (h *Handler) HandleGetPrintings(c *fiber.Ctx) error {
	oracleID := c.Params("oracle_id")
	l := logger.WithRequestID(h.service.logger, c)

	cards, err := h.service.PrintingsByOracle(c.Context(), oracleID)
	if err != nil {
		l.Error("printings lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cards)
}

// HandleGetCardDecks returns the decks containing a card.
// @Summary Get Decks containing Card
// @Tags cards
// @Produce json
// @Param uuid path string true "Card UUID"
// @Success 200 {array} models.DeckMeta "Decks"
// @Router /cards/{uuid}/decks [get]
func (h *Handler) HandleGetCardDecks(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	l := logger.WithRequestID(h.service.logger, c)

	metas, err := h.service.DecksContainingCard(c.Context(), uuid)
	if err != nil {
		l.Error("deck membership lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(metas)
}

// HandleGetSets returns every indexed set.
// @Summary List Sets
// @Tags sets
// @Produce json
// @Success 200 {array} models.Set "Sets"
// @Router /sets [get]
func (h *Handler) HandleGetSets(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	sets, err := h.service.Sets(c.Context())
	if err != nil {
		l.Error("set listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sets)
}

// HandleGetSet returns a single set record.
// @Summary Get Set
// @Tags sets
// @Produce json
// @Param code path string true "Set code"
// @Success 200 {object} models.Set "Set"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sets/{code} [get]
func (h *Handler) HandleGetSet(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRequestID(h.service.logger, c)

	set, err := h.service.SetByCode(c.Context(), code)
	if err != nil {
		l.Error("set lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if set == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "set not found"})
	}
	return c.JSON(set)
}

// HandleGetSetCards returns the card uuids of a set.
// @Summary Get Set Cards
// @Tags sets
// @Produce json
// @Param code path string true "Set code"
// @Success 200 {array} string "Card UUIDs"
// @Router /sets/{code}/cards [get]
func (h *Handler) HandleGetSetCards(c *fiber.Ctx) error {
	code := c.Params("code")
	l := logger.WithRequestID(h.service.logger, c)

	uuids, err := h.service.CardsInSet(c.Context(), code)
	if err != nil {
		l.Error("set cards lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(uuids)
}

// HandleGetDeck returns a deck. Pass ?full=true for the complete board
// lists; the default response is the lightweight meta record.
// @Summary Get Deck
// @Tags decks
// @Produce json
// @Param uuid path string true "Deck UUID (with or without deck_ prefix)"
// @Param full query bool false "Return full board lists"
// @Success 200 {object} models.Deck "Deck"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /decks/{uuid} [get]
func (h *Handler) HandleGetDeck(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	l := logger.WithRequestID(h.service.logger, c)

	if c.QueryBool("full") {
		deck, err := h.service.DeckByUUID(c.Context(), uuid)
		if err != nil {
			l.Error("deck lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if deck == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "deck not found"})
		}
		return c.JSON(deck)
	}

	meta, err := h.service.DeckMetaByUUID(c.Context(), uuid)
	if err != nil {
		l.Error("deck meta lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if meta == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "deck not found"})
	}
	return c.JSON(meta)
}

// HandleGetDeckBySlug returns the full deck record for a slug.
// @Summary Get Deck by Slug
// @Tags decks
// @Produce json
// @Param slug path string true "Deck slug (e.g. cmr_arm_for_battle)"
// @Success 200 {object} models.Deck "Deck"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /decks/slug/{slug} [get]
func (h *Handler) HandleGetDeckBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	l := logger.WithRequestID(h.service.logger, c)

	deck, err := h.service.DeckBySlug(c.Context(), slug)
	if err != nil {
		l.Error("deck slug lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if deck == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "deck not found"})
	}
	return c.JSON(deck)
}

// HandleGetDecksByType returns the decks of a given type.
// @Summary Get Decks by Type
// @Tags decks
// @Produce json
// @Param type path string true "Deck type (e.g. Commander Deck)"
// @Success 200 {array} models.DeckMeta "Decks"
// @Router /decks/type/{type} [get]
func (h *Handler) HandleGetDecksByType(c *fiber.Ctx) error {
	deckType := c.Params("type")
	l := logger.WithRequestID(h.service.logger, c)

	metas, err := h.service.DecksByType(c.Context(), deckType)
	if err != nil {
		l.Error("deck type lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(metas)
}

// HandleGetCommanderDecks returns every commander deck.
// @Summary Get Commander Decks
// @Tags decks
// @Produce json
// @Success 200 {array} models.DeckMeta "Decks"
// @Router /decks/commanders [get]
func (h *Handler) HandleGetCommanderDecks(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	metas, err := h.service.CommanderDecks(c.Context())
	if err != nil {
		l.Error("commander deck lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(metas)
}

// HandleGetStats returns the outcome of the last indexing pass.
// @Summary Get Index Stats
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats "Stats"
// @Failure 404 {object} map[string]string "No pass completed"
// @Router /stats [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	stats, err := h.service.Stats(c.Context())
	if err != nil {
		l.Error("stats lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if stats == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no indexing pass has completed"})
	}
	return c.JSON(stats)
}
