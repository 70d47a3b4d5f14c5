package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-evaluator/internal/models"
	"alfredoptarigan/interview-evaluator/internal/services"
)

type HistoryHandler struct {
	evaluationService services.EvaluationService
}

func NewHistoryHandler(evaluationService services.EvaluationService) *HistoryHandler {
	return &HistoryHandler{
		evaluationService: evaluationService,
	}
}

// HandleGetHistory handles GET /history, most recent evaluation first.
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	records, err := h.evaluationService.History()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load feedback history",
		})
	}

	return c.JSON(models.HistoryResponse{
		Count:   len(records),
		Records: records,
	})
}
