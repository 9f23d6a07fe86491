package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lead-scoring/internal/usecase"
)

type OfferHandler struct {
	SetOfferUC *usecase.SetOfferUseCase
}

func NewOfferHandler(uc *usecase.SetOfferUseCase) *OfferHandler {
	return &OfferHandler{SetOfferUC: uc}
}

// Handle serves POST /offer.
func (h *OfferHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SetOfferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body: "+err.Error())
		return
	}

	output, err := h.SetOfferUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
