package exclusion

import (
	"exclusion-screener/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for exclusion screening.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the exclusion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/exclusion")
	group.Post("/search", h.HandleSearch)
}

// HandleSearch screens a batch of names and businesses against the exclusion list.
// @Summary Search exclusion list
// @Description Screen individuals and businesses against the exclusion index. Every query gets a result with status CLEAR, MATCH, or POSSIBLE_MATCH; data unavailability degrades to CLEAR.
// @Tags exclusion
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Names and businesses to screen"
// @Success 200 {object} SearchResponse "Screening results"
// @Failure 400 {object} map[string]string "Malformed request body"
// @Router /exclusion/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed search request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	resp := h.service.Search(c.Context(), req)
	l.Info("Exclusion search completed",
		zap.Int("names", len(req.Names)),
		zap.Int("businesses", len(req.Businesses)),
	)
	return c.JSON(resp)
}
