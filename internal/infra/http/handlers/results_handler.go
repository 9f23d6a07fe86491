package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/lead-scoring/internal/infra/csvio"
	"github.com/xavierca1/lead-scoring/internal/usecase"
)

const (
	HeaderResultBatch  = "X-Result-Batch"
	HeaderOfferVersion = "X-Offer-Version"
	HeaderLeadsVersion = "X-Leads-Version"
	HeaderResultsStale = "X-Results-Stale"

	exportFilename = "results.csv"
)

type ResultsHandler struct {
	ResultsUC *usecase.ResultsUseCase
}

func NewResultsHandler(uc *usecase.ResultsUseCase) *ResultsHandler {
	return &ResultsHandler{ResultsUC: uc}
}

// List serves GET /results. It answers an empty array before the first run.
func (h *ResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	out := h.ResultsUC.List(r.Context())
	if out.Found {
		setBatchHeaders(w, out)
	}
	writeJSON(w, http.StatusOK, out.Batch.Results)
}

// Export serves GET /export_csv.
func (h *ResultsHandler) Export(w http.ResponseWriter, r *http.Request) {
	out, err := h.ResultsUC.ForExport(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	setBatchHeaders(w, out)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+exportFilename)
	w.WriteHeader(http.StatusOK)

	if err := csvio.WriteResults(w, out.Batch.Results); err != nil {
		log.Error().Err(err).Str("batch", out.Batch.ID).Msg("failed to write csv export")
	}
}

func setBatchHeaders(w http.ResponseWriter, out *usecase.ResultsOutput) {
	w.Header().Set(HeaderResultBatch, out.Batch.ID)
	w.Header().Set(HeaderOfferVersion, out.Batch.OfferVersion)
	w.Header().Set(HeaderLeadsVersion, out.Batch.LeadsVersion)
	w.Header().Set(HeaderResultsStale, strconv.FormatBool(out.Stale))
}
