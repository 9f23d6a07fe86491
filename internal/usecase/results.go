package usecase

import (
	"context"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

type ResultsUseCase struct {
	Store entity.SessionStore
}

func NewResultsUseCase(store entity.SessionStore) *ResultsUseCase {
	return &ResultsUseCase{Store: store}
}

// List returns the current batch. Found is false before the first run.
func (uc *ResultsUseCase) List(_ context.Context) *ResultsOutput {
	batch, ok := uc.Store.CurrentResults()
	if !ok {
		return &ResultsOutput{Batch: entity.ResultBatch{Results: []entity.ScoreResult{}}}
	}

	var offerVersion, leadsVersion string
	if offer, ok := uc.Store.CurrentOffer(); ok {
		offerVersion = offer.Version
	}
	if leads, ok := uc.Store.CurrentLeads(); ok {
		leadsVersion = leads.Version
	}

	if batch.Results == nil {
		batch.Results = []entity.ScoreResult{}
	}
	return &ResultsOutput{
		Batch: batch,
		Found: true,
		Stale: batch.IsStale(offerVersion, leadsVersion),
	}
}

// ForExport is List but fails when there is nothing to export.
func (uc *ResultsUseCase) ForExport(ctx context.Context) (*ResultsOutput, error) {
	out := uc.List(ctx)
	if !out.Found || len(out.Batch.Results) == 0 {
		return nil, &DomainError{
			Code:    CodeNoResults,
			Message: "No results available.",
		}
	}
	return out, nil
}
