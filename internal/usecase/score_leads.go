package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/lead-scoring/internal/entity"
	"github.com/xavierca1/lead-scoring/internal/metrics"
)

// ScoreLeadsUseCase scores the stored lead batch against the stored offer
// and replaces the stored result batch.
type ScoreLeadsUseCase struct {
	Store     entity.SessionStore
	Engine    *ScoringEngine
	Publisher entity.ResultPublisher
}

// NewScoreLeadsUseCase wires the use case. publisher may be nil.
func NewScoreLeadsUseCase(store entity.SessionStore, engine *ScoringEngine, publisher entity.ResultPublisher) *ScoreLeadsUseCase {
	return &ScoreLeadsUseCase{
		Store:     store,
		Engine:    engine,
		Publisher: publisher,
	}
}

func (uc *ScoreLeadsUseCase) Execute(ctx context.Context) (*ScoreLeadsOutput, error) {
	offer, ok := uc.Store.CurrentOffer()
	if !ok {
		return nil, &DomainError{
			Code:    CodeNoOffer,
			Message: "No offer provided. POST /offer first.",
		}
	}

	leads, ok := uc.Store.CurrentLeads()
	if !ok || len(leads.Leads) == 0 {
		return nil, &DomainError{
			Code:    CodeNoLeads,
			Message: "No leads uploaded. POST /leads/upload first.",
		}
	}

	start := time.Now()
	results, err := uc.Engine.ScoreAll(ctx, leads.Leads, offer.Offer)
	if err != nil {
		metrics.RecordScoringRun("cancelled", len(leads.Leads), time.Since(start))
		return nil, &TechnicalError{
			Code:    CodeCancelled,
			Message: "scoring run interrupted, partial results discarded",
			Err:     err,
		}
	}
	elapsed := time.Since(start)
	metrics.RecordScoringRun("ok", len(results), elapsed)

	batch := entity.ResultBatch{
		ID:           uuid.New().String(),
		OfferVersion: offer.Version,
		LeadsVersion: leads.Version,
		Results:      results,
		ScoredAt:     time.Now().UTC(),
	}
	uc.Store.SaveResults(batch)

	log.Info().
		Str("batch", batch.ID).
		Str("offer_version", offer.Version).
		Str("leads_version", leads.Version).
		Int("count", len(results)).
		Dur("elapsed", elapsed).
		Msg("lead batch scored")

	if uc.Publisher != nil {
		if err := uc.Publisher.PublishBatchScored(ctx, batch); err != nil {
			// results are already stored; a lost event must not fail the request
			metrics.RecordIntegrationError("rabbitmq")
			log.Error().Err(err).Str("batch", batch.ID).Msg("failed to publish batch scored event")
		}
	}

	return &ScoreLeadsOutput{
		Status:  "ok",
		Count:   len(results),
		BatchID: batch.ID,
	}, nil
}
