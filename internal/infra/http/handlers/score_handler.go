package handlers

import (
	"net/http"

	"github.com/xavierca1/lead-scoring/internal/usecase"
)

type ScoreHandler struct {
	ScoreLeadsUC *usecase.ScoreLeadsUseCase
}

func NewScoreHandler(uc *usecase.ScoreLeadsUseCase) *ScoreHandler {
	return &ScoreHandler{ScoreLeadsUC: uc}
}

// Handle serves POST /score.
func (h *ScoreHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.ScoreLeadsUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
