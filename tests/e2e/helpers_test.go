//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/plateful/recipebox-backend/internal/adapter/postgres"
	noterepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/note"
	reciperepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/recipe"
	"github.com/plateful/recipebox-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/token"
	userrepo "github.com/plateful/recipebox-backend/internal/adapter/postgres/user"
	authpkg "github.com/plateful/recipebox-backend/internal/auth"
	"github.com/plateful/recipebox-backend/internal/config"
	authsvc "github.com/plateful/recipebox-backend/internal/service/auth"
	notesvc "github.com/plateful/recipebox-backend/internal/service/note"
	recipesvc "github.com/plateful/recipebox-backend/internal/service/recipe"
	usersvc "github.com/plateful/recipebox-backend/internal/service/user"
	gqlpkg "github.com/plateful/recipebox-backend/internal/transport/graphql"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/dataloader"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/generated"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/resolver"
	"github.com/plateful/recipebox-backend/internal/transport/middleware"
	"github.com/plateful/recipebox-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlPayload extracts a specific object field from the data map.
func gqlPayload(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	payload, ok := data[field].(map[string]any)
	require.True(t, ok, "expected %q in data", field)
	return payload
}

// gqlList extracts a specific list field from the data map.
func gqlList(t *testing.T, result map[string]any, field string) []any {
	t.Helper()
	data := gqlData(t, result)
	list, ok := data[field].([]any)
	require.True(t, ok, "expected %q list in data", field)
	return list
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	userRepo := userrepo.New(pool)
	recipeRepo := reciperepo.New(pool)
	noteRepo := noterepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4, // minimum bcrypt cost, keeps registration fast
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 5. Services.
	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtMgr, authCfg)
	recipeService := recipesvc.NewService(logger, recipeRepo, noteRepo, txm)
	noteService := notesvc.NewService(logger, noteRepo, recipeRepo)
	userService := usersvc.NewService(logger, userRepo)

	// 6. GraphQL resolver + handler.
	res := resolver.NewResolver(logger, authService, recipeService, noteService, userService)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	// 7. DataLoader repositories.
	dlRepos := &dataloader.Repos{User: userRepo, Recipe: recipeRepo}

	// 8. Middleware chain.
	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)(gqlSrv)

	// 9. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	// 10. httptest server.
	srv := httptest.NewServer(mux)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body := map[string]any{"query": query}
	if variables != nil {
		body["variables"] = variables
	}

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return resp.StatusCode, result
}

// jsonReader marshals v and returns a reader over the JSON bytes.
func jsonReader(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// ---------------------------------------------------------------------------
// User registration helpers.
// ---------------------------------------------------------------------------

var userSeq int

// registerUser registers a fresh user and returns (accessToken, refreshToken, userID).
func registerUser(t *testing.T, ts *testServer) (string, string, string) {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("e2e-user-%d-%d@example.com", userSeq, time.Now().UnixNano())

	query := `mutation($input: RegisterInput!) {
		register(input: $input) { token refreshToken user { id email } }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"name":     "E2E User",
			"email":    email,
			"password": "correct-horse-battery",
		},
	}

	status, result := ts.graphqlQuery(t, query, vars, "")
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "register")
	token, ok := payload["token"].(string)
	require.True(t, ok, "expected token string")
	refreshToken, ok := payload["refreshToken"].(string)
	require.True(t, ok, "expected refreshToken string")

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok, "expected user object")
	userID, ok := user["id"].(string)
	require.True(t, ok, "expected user id")

	return token, refreshToken, userID
}

// createRecipe creates a recipe as the given user and returns its ID.
func createRecipe(t *testing.T, ts *testServer, token, title string) string {
	t.Helper()

	query := `mutation($input: RecipeInput!) {
		createRecipe(input: $input) { id title }
	}`
	vars := map[string]any{
		"input": map[string]any{
			"title":       title,
			"ingredients": []any{"flour", "water"},
			"steps":       []any{"mix", "bake"},
			"category":    "DINNER",
		},
	}

	status, result := ts.graphqlQuery(t, query, vars, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "createRecipe")
	id, ok := payload["id"].(string)
	require.True(t, ok, "expected recipe id")
	return id
}
