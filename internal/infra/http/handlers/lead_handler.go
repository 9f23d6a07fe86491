package handlers

import (
	"errors"
	"net/http"

	"github.com/xavierca1/lead-scoring/internal/usecase"
)

const (
	uploadFormField       = "file"
	defaultMaxUploadBytes = 10 << 20
)

type LeadHandler struct {
	UploadLeadsUC  *usecase.UploadLeadsUseCase
	MaxUploadBytes int64
}

func NewLeadHandler(uc *usecase.UploadLeadsUseCase, maxUploadBytes int64) *LeadHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &LeadHandler{UploadLeadsUC: uc, MaxUploadBytes: maxUploadBytes}
}

// Upload serves POST /leads/upload with a multipart "file" field.
func (h *LeadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "upload exceeds size limit")
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_MULTIPART", "expected multipart/form-data body: "+err.Error())
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	output, err := h.UploadLeadsUC.Execute(r.Context(), usecase.UploadLeadsInput{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
