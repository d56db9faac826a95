package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/dto"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/handler"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/hasher"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/repository/memory"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/service"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/detect"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/mocks"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/signinlog"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app       *fiber.App
	signInLog *signinlog.Log
}

func newTestEnv(t *testing.T, tokenService service.TokenGenerator) *testEnv {
	t.Helper()

	h, err := hasher.NewScrypt()
	require.NoError(t, err)

	credentials, err := service.NewCredentialService(memory.NewStore(), h)
	require.NoError(t, err)

	log := signinlog.NewLog(500)
	authHandler := handler.NewAuthHandler(credentials, tokenService, log)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, handler.NewDetectHandler(detect.NewInstantAnalyzer()))

	return &testEnv{app: app, signInLog: log}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (int, map[string]any) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	return resp.StatusCode, decoded
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t, service.NewTokenService("access", "refresh", 15, 10080))

	t.Run("success", func(t *testing.T) {
		status, body := doJSON(t, env.app, "POST", "/api/v1/signup", dto.SignupInput{
			Name:     "Jane Doe",
			Class:    "Class 5",
			RollNo:   "12",
			Email:    "Jane@Example.com",
			Password: "secret1",
		})

		assert.Equal(t, fiber.StatusCreated, status)
		assert.NotEmpty(t, body["userId"])
	})

	t.Run("duplicate email variant", func(t *testing.T) {
		status, body := doJSON(t, env.app, "POST", "/api/v1/signup", dto.SignupInput{
			Name:     "x",
			Class:    "Class 5",
			RollNo:   "13",
			Email:    "  JANE@EXAMPLE.COM ",
			Password: "secret2",
		})

		assert.Equal(t, fiber.StatusConflict, status)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("weak password", func(t *testing.T) {
		status, _ := doJSON(t, env.app, "POST", "/api/v1/signup", dto.SignupInput{
			Email:    "short@example.com",
			Password: "12345",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("bad body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/signup", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t, service.NewTokenService("access", "refresh", 15, 10080))

	status, _ := doJSON(t, env.app, "POST", "/api/v1/signup", dto.SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	t.Run("success issues tokens and records sign-in", func(t *testing.T) {
		status, body := doJSON(t, env.app, "POST", "/api/v1/login", dto.LoginInput{
			Email:    "jane@example.com",
			Password: "secret1",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.NotEmpty(t, body["access_token"])
		assert.NotEmpty(t, body["refresh_token"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "jane@example.com", user["email"])
		// hash and salt never appear in the response
		assert.NotContains(t, user, "passwordHash")
		assert.NotContains(t, user, "salt")

		entries := env.signInLog.List(10)
		require.Len(t, entries, 1)
		assert.Equal(t, "jane@example.com", entries[0].Email)
		assert.Equal(t, "credentials", entries[0].Provider)
	})

	t.Run("wrong password", func(t *testing.T) {
		status, body := doJSON(t, env.app, "POST", "/api/v1/login", dto.LoginInput{
			Email:    "jane@example.com",
			Password: "wrong",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "invalid credentials", body["error"])
	})

	t.Run("unknown email gets identical error", func(t *testing.T) {
		status, body := doJSON(t, env.app, "POST", "/api/v1/login", dto.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "invalid credentials", body["error"])
	})

	t.Run("failed login is not audited", func(t *testing.T) {
		before := env.signInLog.Len()
		doJSON(t, env.app, "POST", "/api/v1/login", dto.LoginInput{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.Equal(t, before, env.signInLog.Len())
	})
}

func TestLogin_TokenGenerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	env := newTestEnv(t, mockTokens)

	status, _ := doJSON(t, env.app, "POST", "/api/v1/signup", dto.SignupInput{
		Email:    "jane@example.com",
		Password: "secret1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	mockTokens.EXPECT().Generate(gomock.Any(), "jane@example.com", gomock.Any()).
		Return("", "", time.Time{}, errors.New("signing failure"))

	status, _ = doJSON(t, env.app, "POST", "/api/v1/login", dto.LoginInput{
		Email:    "jane@example.com",
		Password: "secret1",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	// nothing is audited when issuance fails
	assert.Equal(t, 0, env.signInLog.Len())
}

func TestMe(t *testing.T) {
	tokens := service.NewTokenService("access", "refresh", 15, 10080)
	env := newTestEnv(t, tokens)

	status, body := doJSON(t, env.app, "POST", "/api/v1/signup", dto.SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	userID, _ := body["userId"].(string)
	require.NotEmpty(t, userID)

	get := func(token string) (int, map[string]any) {
		req := httptest.NewRequest("GET", "/api/v1/me", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var decoded map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
		return resp.StatusCode, decoded
	}

	t.Run("success", func(t *testing.T) {
		access, _, _, err := tokens.Generate(userID, "jane@example.com", "Jane Doe")
		require.NoError(t, err)

		status, profile := get(access)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, userID, profile["id"])
		assert.Equal(t, "jane@example.com", profile["email"])
		assert.NotContains(t, profile, "passwordHash")
	})

	t.Run("unknown subject", func(t *testing.T) {
		access, _, _, err := tokens.Generate("gone-user", "gone@example.com", "")
		require.NoError(t, err)

		status, _ := get(access)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("no token", func(t *testing.T) {
		status, _ := get("")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestOAuthCallback(t *testing.T) {
	env := newTestEnv(t, service.NewTokenService("access", "refresh", 15, 10080))

	t.Run("records federated sign-in", func(t *testing.T) {
		status, _ := doJSON(t, env.app, "POST", "/api/v1/oauth/callback", dto.OAuthSignInInput{
			Email:    "jane@gmail.com",
			Name:     "Jane Doe",
			Provider: "google",
		})

		assert.Equal(t, fiber.StatusNoContent, status)

		entries := env.signInLog.List(10)
		require.Len(t, entries, 1)
		assert.Equal(t, "google", entries[0].Provider)
		assert.Equal(t, "jane@gmail.com", entries[0].Email)
	})

	t.Run("missing provider", func(t *testing.T) {
		status, _ := doJSON(t, env.app, "POST", "/api/v1/oauth/callback", dto.OAuthSignInInput{
			Email: "jane@gmail.com",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("missing email", func(t *testing.T) {
		status, _ := doJSON(t, env.app, "POST", "/api/v1/oauth/callback", dto.OAuthSignInInput{
			Provider: "google",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestSignins(t *testing.T) {
	tokens := service.NewTokenService("access", "refresh", 15, 10080)
	env := newTestEnv(t, tokens)

	for i := 0; i < 5; i++ {
		env.signInLog.Record("user@example.com", "User", "credentials")
	}

	access, _, _, err := tokens.Generate("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	authedGet := func(target, token string) (int, map[string]any) {
		req := httptest.NewRequest("GET", target, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var decoded map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
		return resp.StatusCode, decoded
	}

	t.Run("requires bearer token", func(t *testing.T) {
		status, _ := authedGet("/api/v1/admin/signins", "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("rejects bad token", func(t *testing.T) {
		status, _ := authedGet("/api/v1/admin/signins", "garbage")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("lists entries", func(t *testing.T) {
		status, body := authedGet("/api/v1/admin/signins", access)
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 5, body["count"])
	})

	t.Run("limit applies", func(t *testing.T) {
		status, body := authedGet("/api/v1/admin/signins?limit=2", access)
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 2, body["count"])
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		status, body := authedGet("/api/v1/admin/signins?limit=99999", access)
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 5, body["count"])
	})

	t.Run("negative limit yields empty list", func(t *testing.T) {
		status, body := authedGet("/api/v1/admin/signins?limit=-1", access)
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 0, body["count"])
	})
}
