package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jalveda/ops-api/internal/interfaces/http"
	pkgjwt "github.com/jalveda/ops-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "jalveda-ops-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with:
//   - AuthMiddleware to parse the JWT and load locals
//   - RequireRole to authorize access
//   - A dummy handler that returns 200 when both middlewares pass
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silence internal errors in tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Protected route: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole generates a JWT carrying the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "a valid JWT must be generated")
	return "Bearer " + tok
}

// doRequest sends a GET /protected request and returns the response.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole tests
// ──────────────────────────────────────────────────────────────────────────────

// Case 1: the user has the required role → must pass (HTTP 200).
func TestRequireRole_AdminAccessesAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin must be able to access an admin-only route")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "response must include ok:true")
	assert.Equal(t, "admin", body["role"], "role must be admin")
}

// Case 1b: the user has one of the allowed roles (multi-role) → HTTP 200.
func TestRequireRole_HRAccessesAdminOrHRRoute(t *testing.T) {
	app := buildTestApp("admin", "hr")
	resp := doRequest(t, app, tokenForRole(t, "hr"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"hr must be able to access a route that allows admin or hr")
}

// Case 2: the user has a different role → HTTP 403 Forbidden.
func TestRequireRole_SalesBlockedOnAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "sales"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sales must not be able to access an admin-only route")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"error response must include the FORBIDDEN code")
}

// Case 2b: ops role blocked on an hr-only route → HTTP 403.
func TestRequireRole_OpsBlockedOnHRRoute(t *testing.T) {
	app := buildTestApp("hr")
	resp := doRequest(t, app, tokenForRole(t, "ops"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Case 3: token without a role claim (emulated with an empty role) → HTTP 401.
func TestRequireRole_TokenWithoutRole_Returns401(t *testing.T) {
	// Generate a token with an empty role to simulate a legacy token
	// missing the claim.
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token without a role must return 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"response must indicate the MISSING_ROLE code")
}

// Case 4: no Authorization header → HTTP 401 MISSING_TOKEN.
func TestRequireRole_NoAuthHeader_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // no header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Case 5: invalid / malformed token → HTTP 401 INVALID_TOKEN.
func TestRequireRole_InvalidToken_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer bogus.token.here")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware tests — claim extraction from the token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg tests — generate/parse round-trip with role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_WithRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "hr", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "hr", role)
}

func TestJWT_ExpiredToken_ReturnsError(t *testing.T) {
	// Token with expiry -1 minute (already expired)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "expired token must return an error")
}

func TestJWT_WrongSecret_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "wrong secret must invalidate the token")
}
