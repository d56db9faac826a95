package handler

import (
	"errors"
	"strings"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/dto"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/service"
	autherror "github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/errors"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/signinlog"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	credentials  *service.CredentialService
	tokenService service.TokenGenerator
	signInLog    *signinlog.Log
}

func NewAuthHandler(credentials *service.CredentialService, tokenService service.TokenGenerator, signInLog *signinlog.Log) *AuthHandler {
	return &AuthHandler{
		credentials:  credentials,
		tokenService: tokenService,
		signInLog:    signInLog,
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.credentials.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, autherror.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "registration failed"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"userId": user.ID,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.credentials.Verify(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	accessToken, refreshToken, _, err := h.tokenService.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	// audited after verification, same path federated sign-ins use
	h.signInLog.Record(user.Email, user.Name, constant.CredentialsProvider)

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserOutput(user),
	})
}

// OAuthCallback records a sign-in whose identity the federated layer has
// already verified. It never touches the credential service.
func (h *AuthHandler) OAuthCallback(c *fiber.Ctx) error {
	var input dto.OAuthSignInInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Provider) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and provider are required",
		})
	}

	h.signInLog.Record(strings.TrimSpace(input.Email), strings.TrimSpace(input.Name), input.Provider)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Signins(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", constant.DefaultSignInLimit)

	entries := h.signInLog.List(limit)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"signIns": entries,
		"count":   len(entries),
	})
}

// Me returns the profile behind the presented access token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	user, err := h.credentials.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

// RequireAuth guards admin endpoints with a bearer access token.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	claims, err := h.tokenService.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals("user_id", claims.UserID)

	return c.Next()
}
