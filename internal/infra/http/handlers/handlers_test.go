package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lead-scoring/internal/infra/csvio"
	"github.com/xavierca1/lead-scoring/internal/infra/memory"
	"github.com/xavierca1/lead-scoring/internal/usecase"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestWriteUseCaseErrorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&usecase.DomainError{Code: usecase.CodeNoOffer, Message: "x"}, http.StatusBadRequest, usecase.CodeNoOffer},
		{&usecase.DomainError{Code: usecase.CodeInvalidFileType, Message: "x"}, http.StatusBadRequest, usecase.CodeInvalidFileType},
		{&usecase.DomainError{Code: usecase.CodeValidation, Message: "x"}, http.StatusUnprocessableEntity, usecase.CodeValidation},
		{&usecase.DomainError{Code: usecase.CodeNoResults, Message: "x"}, http.StatusNotFound, usecase.CodeNoResults},
		{&usecase.TechnicalError{Code: usecase.CodeCancelled, Message: "x"}, http.StatusInternalServerError, usecase.CodeCancelled},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeUseCaseError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.code, decodeError(t, rec).Error)
		})
	}
}

func TestOfferHandlerInvalidJSON(t *testing.T) {
	h := NewOfferHandler(usecase.NewSetOfferUseCase(memory.NewSession()))
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/offer", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_JSON", decodeError(t, rec).Error)
}

func TestOfferHandlerValidation(t *testing.T) {
	h := NewOfferHandler(usecase.NewSetOfferUseCase(memory.NewSession()))
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/offer", strings.NewReader(`{"name":"CRM"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, usecase.CodeValidation, body.Error)
	assert.Contains(t, body.Message, "value_props")
}

func TestOfferHandlerSuccess(t *testing.T) {
	h := NewOfferHandler(usecase.NewSetOfferUseCase(memory.NewSession()))
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/offer",
		strings.NewReader(`{"name":"CRM Tool","value_props":["Automates follow-ups"],"ideal_use_cases":["SaaS"]}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.SetOfferOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "CRM Tool", out.Offer.Name)
}

func newLeadHandler(limit int64) *LeadHandler {
	return NewLeadHandler(usecase.NewUploadLeadsUseCase(memory.NewSession(), csvio.LeadReader{}), limit)
}

func TestLeadHandlerUpload(t *testing.T) {
	body, contentType := multipartBody(t, "file", "leads.csv", "name,role\nAna,CEO\nBo,Analyst\n")
	req := httptest.NewRequest(http.MethodPost, "/leads/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newLeadHandler(0).Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.UploadLeadsOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Count)
}

func TestLeadHandlerRejectsNonCSV(t *testing.T) {
	body, contentType := multipartBody(t, "file", "leads.txt", "name\nAna\n")
	req := httptest.NewRequest(http.MethodPost, "/leads/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newLeadHandler(0).Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body2 := decodeError(t, rec)
	assert.Equal(t, usecase.CodeInvalidFileType, body2.Error)
	assert.Equal(t, "Only CSV files accepted.", body2.Message)
}

func TestLeadHandlerMissingFile(t *testing.T) {
	body, contentType := multipartBody(t, "upload", "leads.csv", "name\nAna\n")
	req := httptest.NewRequest(http.MethodPost, "/leads/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newLeadHandler(0).Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_FILE", decodeError(t, rec).Error)
}

func TestLeadHandlerNotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/leads/upload", strings.NewReader("name\nAna\n"))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()

	newLeadHandler(0).Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_MULTIPART", decodeError(t, rec).Error)
}

func TestLeadHandlerTooLarge(t *testing.T) {
	body, contentType := multipartBody(t, "file", "leads.csv", "name\n"+strings.Repeat("Ana\n", 1000))
	req := httptest.NewRequest(http.MethodPost, "/leads/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newLeadHandler(256).Upload(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "FILE_TOO_LARGE", decodeError(t, rec).Error)
}

type fakeModel struct{ state string }

func (f fakeModel) Model() string        { return "gpt-4o-mini" }
func (f fakeModel) BreakerState() string { return f.state }

type fakeBroker struct{ closed bool }

func (f fakeBroker) IsClosed() bool { return f.closed }

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name   string
		model  ModelStatus
		broker BrokerStatus
		status string
	}{
		{"nothing configured", nil, nil, "healthy"},
		{"all healthy", fakeModel{gobreaker.StateClosed.String()}, fakeBroker{false}, "healthy"},
		{"breaker open", fakeModel{gobreaker.StateOpen.String()}, nil, "degraded"},
		{"broker closed", nil, fakeBroker{true}, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHealthHandler(tc.model, tc.broker, "test").Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var out HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, tc.status, out.Status)
			assert.Equal(t, "test", out.Version)
			assert.Contains(t, out.Dependencies, "intent_model")
			assert.Contains(t, out.Dependencies, "rabbitmq")
		})
	}
}
