package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-evaluator/internal/models"
	"alfredoptarigan/interview-evaluator/internal/services"
)

const transcriptPreviewLimit = 200

type EvaluateHandler struct {
	evaluationService services.EvaluationService
	storageService    services.StorageService
	transcriptParser  services.TranscriptParserService
	maxFileSize       int64
}

func NewEvaluateHandler(
	evaluationService services.EvaluationService,
	storageService services.StorageService,
	transcriptParser services.TranscriptParserService,
	maxFileSize int64,
) *EvaluateHandler {
	return &EvaluateHandler{
		evaluationService: evaluationService,
		storageService:    storageService,
		transcriptParser:  transcriptParser,
		maxFileSize:       maxFileSize,
	}
}

// HandleEvaluate handles POST /evaluate: multipart upload of a transcript
// (.txt or .pdf) plus optional "model" and "temperature" overrides. The
// evaluation runs synchronously and the new feedback record is returned.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	file, err := c.FormFile("transcript")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "transcript file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Transcript file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	opts := services.EvaluateOptions{
		Model: c.FormValue("model"),
	}
	if raw := c.FormValue("temperature"); raw != "" {
		value, err := strconv.ParseFloat(raw, 32)
		if err != nil || value < 0 || value > 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "temperature must be a number between 0 and 1",
			})
		}
		temperature := float32(value)
		opts.Temperature = &temperature
	}

	filename, filePath, err := h.storageService.SaveTranscript(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save transcript: %v", err),
		})
	}

	transcript, err := h.transcriptParser.ExtractText(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract transcript text: %v", err),
		})
	}

	record, err := h.evaluationService.Evaluate(c.Context(), transcript, file.Filename, opts)
	if err != nil {
		if errors.Is(err, services.ErrMissingAPIKey) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("evaluation failed: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.EvaluateResponse{
		Record:            *record,
		TranscriptPreview: previewOf(transcript),
	})
}

func previewOf(transcript string) string {
	if utf8.RuneCountInString(transcript) <= transcriptPreviewLimit {
		return transcript
	}
	runes := []rune(transcript)
	return string(runes[:transcriptPreviewLimit]) + "..."
}
