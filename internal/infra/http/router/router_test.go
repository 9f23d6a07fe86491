package router

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lead-scoring/internal/entity"
	"github.com/xavierca1/lead-scoring/internal/infra/csvio"
	"github.com/xavierca1/lead-scoring/internal/infra/http/handlers"
	"github.com/xavierca1/lead-scoring/internal/infra/http/middleware"
	"github.com/xavierca1/lead-scoring/internal/infra/memory"
	"github.com/xavierca1/lead-scoring/internal/usecase"
)

const leadsCSV = "name,role,company,industry,location,linkedin_bio\n" +
	"Ana,Head of Growth,Acme,SaaS,NYC,Looking for a CRM\n" +
	",,,,,\n"

func newTestRouter(opts Options) http.Handler {
	store := memory.NewSession()
	engine := usecase.NewScoringEngine(usecase.NewIntentClassifier(nil, 0), 2)

	return New(Handlers{
		Offer:   handlers.NewOfferHandler(usecase.NewSetOfferUseCase(store)),
		Leads:   handlers.NewLeadHandler(usecase.NewUploadLeadsUseCase(store, csvio.LeadReader{}), 0),
		Score:   handlers.NewScoreHandler(usecase.NewScoreLeadsUseCase(store, engine, nil)),
		Results: handlers.NewResultsHandler(usecase.NewResultsUseCase(store)),
		Health:  handlers.NewHealthHandler(nil, nil, "test"),
	}, opts)
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postOffer(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, httptest.NewRequest(http.MethodPost, "/offer", strings.NewReader(body)))
}

func uploadLeads(t *testing.T, h http.Handler, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/leads/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do(t, h, req)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

const crmOffer = `{"name":"CRM Tool","value_props":["Automates follow-ups"],"ideal_use_cases":["SaaS"]}`

func TestScoringFlow(t *testing.T) {
	h := newTestRouter(Options{})

	require.Equal(t, http.StatusOK, postOffer(t, h, crmOffer).Code)
	require.Equal(t, http.StatusOK, uploadLeads(t, h, "leads.csv", leadsCSV).Code)

	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/score", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var scored usecase.ScoreLeadsOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scored))
	assert.Equal(t, "ok", scored.Status)
	assert.Equal(t, 2, scored.Count)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var results []entity.ScoreResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Ana", results[0].Name)
	assert.Equal(t, entity.IntentHigh, results[0].Intent)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, 10, results[1].Score)
	assert.Equal(t, scored.BatchID, rec.Header().Get(handlers.HeaderResultBatch))
	assert.Equal(t, "false", rec.Header().Get(handlers.HeaderResultsStale))

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/export_csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=results.csv", rec.Header().Get("Content-Disposition"))
	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvio.ExportHeader, rows[0])
	assert.Equal(t, []string{"Ana", "Head of Growth", "Acme", "SaaS", "High"}, rows[1][:5])
	assert.Equal(t, "100", rows[1][5])
}

func TestScoreBeforeOffer(t *testing.T) {
	h := newTestRouter(Options{})

	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/score", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.CodeNoOffer, errorCode(t, rec))
}

func TestScoreBeforeLeads(t *testing.T) {
	h := newTestRouter(Options{})
	require.Equal(t, http.StatusOK, postOffer(t, h, crmOffer).Code)

	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/score", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.CodeNoLeads, errorCode(t, rec))
}

func TestExportBeforeScore(t *testing.T) {
	h := newTestRouter(Options{})

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/export_csv", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, usecase.CodeNoResults, errorCode(t, rec))
}

func TestResultsBeforeScore(t *testing.T) {
	h := newTestRouter(Options{})

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/results", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.Empty(t, rec.Header().Get(handlers.HeaderResultBatch))
}

func TestUploadRejectsNonCSV(t *testing.T) {
	h := newTestRouter(Options{})

	rec := uploadLeads(t, h, "leads.xlsx", leadsCSV)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.CodeInvalidFileType, errorCode(t, rec))
}

func TestResultsMarkedStaleAfterNewOffer(t *testing.T) {
	h := newTestRouter(Options{})
	require.Equal(t, http.StatusOK, postOffer(t, h, crmOffer).Code)
	require.Equal(t, http.StatusOK, uploadLeads(t, h, "leads.csv", leadsCSV).Code)
	require.Equal(t, http.StatusOK, do(t, h, httptest.NewRequest(http.MethodPost, "/score", nil)).Code)

	require.Equal(t, http.StatusOK, postOffer(t, h, `{"name":"Other","value_props":[],"ideal_use_cases":["Retail"]}`).Code)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/results", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(handlers.HeaderResultsStale))

	var results []entity.ScoreResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Equal(t, 100, results[0].Score)
}

func TestOfferValidationAndInvalidJSON(t *testing.T) {
	h := newTestRouter(Options{})

	rec := postOffer(t, h, `{"name":"CRM Tool"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = postOffer(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_JSON", errorCode(t, rec))
}

func TestScoreRateLimited(t *testing.T) {
	h := newTestRouter(Options{ScoreLimiter: middleware.NewRateLimiter(1, 1)})

	first := do(t, h, httptest.NewRequest(http.MethodPost, "/score", nil))
	second := do(t, h, httptest.NewRequest(http.MethodPost, "/score", nil))

	assert.Equal(t, http.StatusBadRequest, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(Options{})

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestCORSExposesBatchHeaders(t *testing.T) {
	h := newTestRouter(Options{AllowedOrigins: []string{"https://app.example.com"}})
	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	req.Header.Set("Origin", "https://app.example.com")

	rec := do(t, h, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), handlers.HeaderResultsStale)
}
