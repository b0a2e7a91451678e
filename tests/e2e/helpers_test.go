//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	changelogrepo "github.com/heartmarshall/glossary-backend/internal/adapter/postgres/changelog"
	entryrepo "github.com/heartmarshall/glossary-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/service/changelog"
	"github.com/heartmarshall/glossary-backend/internal/service/glossary"
	"github.com/heartmarshall/glossary-backend/internal/transport/rest"
)

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

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	entryRepo := entryrepo.New(pool)
	changelogRepo := changelogrepo.New(pool)

	changelogSvc := changelog.NewService(logger, changelogRepo)
	glossarySvc := glossary.NewService(logger, config.GlossaryConfig{
		MaxEntries:       10000,
		MaxTitleLen:      200,
		MaxRulesPerEntry: 50,
	}, entryRepo, changelogSvc, txm)

	router := rest.NewRouter(rest.RouterDeps{
		Glossary:  rest.NewGlossaryHandler(glossarySvc, logger),
		Changelog: rest.NewChangelogHandler(changelogSvc, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
		Logger:    logger,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: false,
			MaxAge:           86400,
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// JSON request helpers.
// ---------------------------------------------------------------------------

// doJSON sends a request with an optional JSON body and returns the status
// code plus decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "decode response")
	return resp.StatusCode, result
}

// createEntry creates an entry over HTTP and returns its decoded body.
func (ts *testServer) createEntry(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	status, resp := ts.doJSON(t, http.MethodPost, "/entries", body)
	require.Equal(t, http.StatusCreated, status, "create entry: %v", resp)
	require.NotEmpty(t, resp["id"], "created entry must have an id")
	return resp
}

// historyFor fetches /changelog?entryId= and returns the history array.
func (ts *testServer) historyFor(t *testing.T, entryID string) []any {
	t.Helper()

	status, resp := ts.doJSON(t, http.MethodGet, "/changelog?entryId="+entryID, nil)
	require.Equal(t, http.StatusOK, status, "list changelog: %v", resp)

	history, ok := resp["history"].([]any)
	require.True(t, ok, "expected history array, got %v", resp)
	return history
}
