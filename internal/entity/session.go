package entity

import (
	"context"
	"time"
)

// OfferSnapshot is a stored Offer tagged with the version it was saved under.
type OfferSnapshot struct {
	Version  string    `json:"version"`
	Offer    Offer     `json:"offer"`
	StoredAt time.Time `json:"stored_at"`
}

// LeadBatch is an uploaded set of leads tagged with its version.
type LeadBatch struct {
	Version  string    `json:"version"`
	Leads    []Lead    `json:"leads"`
	StoredAt time.Time `json:"stored_at"`
}

// ResultBatch is one scoring run, tagged with the offer and lead versions it
// was computed from. Batches are replaced wholesale, never merged.
type ResultBatch struct {
	ID           string        `json:"id"`
	OfferVersion string        `json:"offer_version"`
	LeadsVersion string        `json:"leads_version"`
	Results      []ScoreResult `json:"results"`
	ScoredAt     time.Time     `json:"scored_at"`
}

// IsStale reports whether the batch was computed from a different offer or
// lead batch than the ones currently stored.
func (b ResultBatch) IsStale(offerVersion, leadsVersion string) bool {
	return b.OfferVersion != offerVersion || b.LeadsVersion != leadsVersion
}

// SessionStore holds the current offer, lead batch and result batch.
// Every save replaces the previous value (last write wins).
type SessionStore interface {
	SaveOffer(offer Offer) OfferSnapshot
	CurrentOffer() (OfferSnapshot, bool)
	SaveLeads(leads []Lead) LeadBatch
	CurrentLeads() (LeadBatch, bool)
	SaveResults(batch ResultBatch)
	CurrentResults() (ResultBatch, bool)
}

// ResultPublisher announces finished result batches to downstream consumers.
type ResultPublisher interface {
	PublishBatchScored(ctx context.Context, batch ResultBatch) error
}
