package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finwatch/internal/models"
	"finwatch/internal/random"
	"finwatch/internal/repositories"
	"finwatch/internal/routes"
	"finwatch/internal/services/analyzer"
	"finwatch/internal/services/generator"
)

func newTestApp() (*fiber.App, repositories.Store) {
	rng := random.NewSeeded(99)
	store := repositories.NewMemoryStore()
	app := fiber.New()
	routes.SetupRoutes(app, generator.NewService(rng), analyzer.NewService(rng), store)
	return app, store
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGenerateBatchEndpoint(t *testing.T) {
	app, store := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions?count=5&highRisk=0.4", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Transactions []*models.Transaction `json:"transactions"`
		Count        int                   `json:"count"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 5, body.Count)
	require.Len(t, body.Transactions, 5)

	// Generated transactions are stored under their ids.
	for _, tx := range body.Transactions {
		_, ok := store.Transaction(tx.ID)
		assert.True(t, ok)
	}

	t.Run("rejects bad count", func(t *testing.T) {
		for _, q := range []string{"count=abc", "count=0", "count=501", "highRisk=2"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions?"+q, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		}
	})
}

func TestGenerateSingleEndpoint(t *testing.T) {
	app, _ := newTestApp()

	payload := bytes.NewBufferString(`{"riskLevel":"High","transactionType":"payment","country":"Panama"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var tx models.Transaction
	decodeBody(t, resp, &tx)
	assert.Equal(t, models.RiskHigh, tx.RiskIndicator)
	assert.Equal(t, models.TypePayment, tx.TransactionType)
	assert.Equal(t, "Panama", tx.Country)
	require.NotNil(t, tx.MerchantInfo)

	t.Run("rejects unknown enum value", func(t *testing.T) {
		payload := bytes.NewBufferString(`{"riskLevel":"Extreme"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", payload)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "INVALID_RISK_LEVEL", body["code"])
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	app, store := newTestApp()

	t.Run("analyze stored transaction by id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions?count=1", nil))
		require.NoError(t, err)
		var batch struct {
			Transactions []*models.Transaction `json:"transactions"`
		}
		decodeBody(t, resp, &batch)
		require.Len(t, batch.Transactions, 1)
		id := batch.Transactions[0].ID

		payload := bytes.NewBufferString(`{"transactionId":"` + id + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", payload)
		req.Header.Set("Content-Type", "application/json")

		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res models.AnalysisResult
		decodeBody(t, resp, &res)
		assert.Equal(t, id, res.TransactionID)
		assert.GreaterOrEqual(t, res.RiskScore, 5)
		assert.LessOrEqual(t, res.RiskScore, 95)
		assert.NotEmpty(t, res.Factors)

		// The analysis is stored and retrievable.
		stored, ok := store.Analysis(id)
		require.True(t, ok)
		assert.Equal(t, res.RiskScore, stored.RiskScore)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/analysis/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		payload := bytes.NewBufferString(`{"transactionId":"TXN-FFFFFFFF"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", payload)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestClearEndpoint(t *testing.T) {
	app, _ := newTestApp()

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions?count=3", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/transactions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Cleared struct {
			Transactions int `json:"transactions"`
			Analyses     int `json:"analyses"`
		} `json:"cleared"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.Cleared.Transactions)
	assert.Equal(t, 0, body.Cleared.Analyses)

	// Lookup after clear is a 404.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions/TXN-00000000", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAgentsStatusEndpoint(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/agents/status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Coordinator map[string]string   `json:"coordinator"`
		SubAgents   []map[string]string `json:"sub_agents"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "financial_crime_coordinator", body.Coordinator["name"])
	assert.Len(t, body.SubAgents, 4)
}
