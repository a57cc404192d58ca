package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestAPIHandlers_HandleAnalyze(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAPIHandlers(deps.analyzer, deps.library, testLogger)

	w := httptest.NewRecorder()
	h.HandleAnalyze(w, uploadRequest(t, "/api/analyze", testSalesCSV, testItemsCSV))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)

	var data struct {
		Rating struct {
			Value  float64 `json:"value"`
			Scores struct {
				Sales float64 `json:"sales"`
			} `json:"scores"`
		} `json:"rating"`
		Stars struct {
			Full    int  `json:"full"`
			Partial bool `json:"partial"`
		} `json:"stars"`
		Categories []struct {
			Category string `json:"category"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, 3.26, data.Rating.Value)
	assert.Equal(t, 100.0, data.Rating.Scores.Sales)
	assert.Equal(t, 3, data.Stars.Full)
	assert.True(t, data.Stars.Partial)
	require.Len(t, data.Categories, 2)
	assert.Equal(t, "X", data.Categories[0].Category)
}

func TestAPIHandlers_HandleAnalyze_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		sales  string
		items  string
		status int
		code   string
	}{
		{"missing items upload", testSalesCSV, "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing column", "Date,Total Sales\n01-01-2024,5\n", testItemsCSV, http.StatusUnprocessableEntity, "UNPROCESSABLE_REPORT"},
		{"malformed number", testSalesCSV, "Item,Category,Qty.,Total (₹)\nA,X,1,\"12,34a\"\n", http.StatusUnprocessableEntity, "UNPROCESSABLE_REPORT"},
		{"zero bills", "Date,Total Sales,Total no. of bills,Cash,Card,Due Payment\n01-01-2024,0,0,0,0,0\n", testItemsCSV, http.StatusUnprocessableEntity, "UNPROCESSABLE_REPORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			h := NewAPIHandlers(deps.analyzer, deps.library, testLogger)

			w := httptest.NewRecorder()
			h.HandleAnalyze(w, uploadRequest(t, "/api/analyze", tt.sales, tt.items))

			assert.Equal(t, tt.status, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAPIHandlers_HandleAnalyze_NotMultipart(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAPIHandlers(deps.analyzer, deps.library, testLogger)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.HandleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIHandlers_HandleListReports(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAPIHandlers(deps.analyzer, deps.library, testLogger)

	w := httptest.NewRecorder()
	h.HandleListReports(w, httptest.NewRequest(http.MethodGet, "/api/reports", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Months []string `json:"months"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	assert.Equal(t, []string{"January", "March"}, data.Months)
}

func TestAPIHandlers_HandleMonthlyReport(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAPIHandlers(deps.analyzer, deps.library, testLogger)

	tests := []struct {
		month  string
		status int
	}{
		{"January", http.StatusOK},
		{"june", http.StatusNotFound},
		{"March", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/reports/"+tt.month, nil)
			req.SetPathValue("month", tt.month)
			w := httptest.NewRecorder()

			h.HandleMonthlyReport(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAPIHandlers_HandleHealthAndStats(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAPIHandlers(deps.analyzer, deps.library, testLogger)

	w := httptest.NewRecorder()
	h.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	w = httptest.NewRecorder()
	h.HandleStats(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"analyses_completed":0`)
	assert.Contains(t, w.Body.String(), `"monthly_reports":2`)
}
