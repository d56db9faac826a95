package handler

import (
	"fmt"
	"strings"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/dto"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/detect"
	"github.com/gofiber/fiber/v2"
)

const minAudioPayload = 100

type DetectHandler struct {
	analyzer *detect.Analyzer
}

func NewDetectHandler(analyzer *detect.Analyzer) *DetectHandler {
	return &DetectHandler{analyzer: analyzer}
}

func (h *DetectHandler) Analyze(c *fiber.Ctx) error {
	if !c.Is("json") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content-Type must be application/json",
		})
	}

	var input dto.VoiceDetectInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if input.AudioBase64 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "audio_base64 is required",
		})
	}
	if input.Language == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "language is required",
		})
	}
	if !detect.ValidLanguage(input.Language) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid language. Must be one of: %s",
				strings.Join(detect.SupportedLanguages(), ", ")),
		})
	}
	if len(input.AudioBase64) < minAudioPayload {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Audio data appears invalid or too small",
		})
	}

	result := h.analyzer.Analyze(input.AudioBase64, input.Language)

	return c.Status(fiber.StatusOK).JSON(result)
}

// Describe documents the endpoint for API consumers.
func (h *DetectHandler) Describe(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"endpoint":    "/api/v1/voice-detect",
		"method":      "POST",
		"description": "Detect if voice is AI-generated or human",
		"request": fiber.Map{
			"audio_base64": "Base64-encoded MP3 audio",
			"language":     "Language code: " + strings.Join(detect.SupportedLanguages(), ", "),
		},
		"response": fiber.Map{
			"classification": "AI_GENERATED or HUMAN",
			"confidence":     "Confidence score 0-100",
			"language":       "Detected language",
			"explanation":    "Detailed analysis explanation",
		},
	})
}
