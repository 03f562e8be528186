package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mindwork/internal/config"
	"mindwork/internal/logger"
	"mindwork/internal/middleware"
	"mindwork/internal/model"
	"mindwork/internal/repository"
	"mindwork/internal/service"
	"mindwork/internal/validator"
)

func TestMain(m *testing.M) {
	// Handlers log failures through slog; keep test output quiet.
	logger.SilenceLogger(io.Discard)
	os.Exit(m.Run())
}

// newTestApp wires the handler against a mock repository with the same
// routes the server registers.
func newTestApp(repo repository.Repository) (*fiber.App, *service.AuthService) {
	authService := service.NewAuthService(repo, config.AuthConfig{
		SigningKey: "test-signing-key",
		Issuer:     "mindwork.api",
		Audience:   "mindwork.client",
		TokenTTL:   time.Hour,
	})
	validationService := service.NewValidationService(repo)
	handler := NewHandler(repo, authService, validationService, validator.New())

	app := fiber.New()

	requireAuth := middleware.RequireAuth(authService)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	v1 := app.Group("/api/v1")

	v1.Get("/health", handler.Health)
	v1.Post("/auth/login", handler.Login)

	v1.Get("/organizations", requireAuth, handler.ListOrganizations)
	v1.Get("/organizations/:id", requireAuth, handler.GetOrganization)
	v1.Post("/organizations", requireAuth, requireAdmin, handler.CreateOrganization)
	v1.Put("/organizations/:id", requireAuth, requireAdmin, handler.UpdateOrganization)
	v1.Delete("/organizations/:id", requireAuth, requireAdmin, handler.DeleteOrganization)

	v1.Get("/users", requireAuth, handler.ListUsers)
	v1.Get("/users/by-organization/:organizationId", requireAuth, handler.ListUsersByOrganization)
	v1.Get("/users/:id", requireAuth, handler.GetUser)
	v1.Post("/users", handler.CreateUser)
	v1.Put("/users/:id", requireAuth, handler.UpdateUser)
	v1.Delete("/users/:id", requireAuth, handler.DeleteUser)

	v1.Get("/mood-entries", requireAuth, handler.ListMoodEntries)
	v1.Get("/mood-entries/by-user/:userId", requireAuth, handler.ListMoodEntriesByUser)
	v1.Get("/mood-entries/by-organization/:organizationId", requireAuth, handler.ListMoodEntriesByOrganization)
	v1.Get("/mood-entries/:id", requireAuth, handler.GetMoodEntry)
	v1.Post("/mood-entries", requireAuth, handler.CreateMoodEntry)

	return app, authService
}

func tokenFor(t *testing.T, auth *service.AuthService, role model.Role) string {
	t.Helper()

	token, err := auth.IssueToken(model.User{
		ID:             uuid.New(),
		Name:           "Test User",
		Email:          "test@example.com",
		Role:           role,
		OrganizationID: uuid.New(),
	})
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// validationErrors mirrors the 422 body shape.
type validationErrors struct {
	Errors map[string][]string `json:"errors"`
}
