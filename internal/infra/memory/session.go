package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

// Session is the process-wide SessionStore. Each save replaces the previous
// value and stamps it with a fresh version id.
type Session struct {
	mu      sync.RWMutex
	offer   *entity.OfferSnapshot
	leads   *entity.LeadBatch
	results *entity.ResultBatch
	now     func() time.Time
}

var _ entity.SessionStore = (*Session)(nil)

func NewSession() *Session {
	return &Session{now: time.Now}
}

func (s *Session) SaveOffer(offer entity.Offer) entity.OfferSnapshot {
	snap := entity.OfferSnapshot{
		Version:  uuid.New().String(),
		Offer:    entity.NewOffer(offer.Name, offer.ValueProps, offer.IdealUseCases),
		StoredAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.offer = &snap
	return snap
}

func (s *Session) CurrentOffer() (entity.OfferSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.offer == nil {
		return entity.OfferSnapshot{}, false
	}
	return *s.offer, true
}

func (s *Session) SaveLeads(leads []entity.Lead) entity.LeadBatch {
	batch := entity.LeadBatch{
		Version:  uuid.New().String(),
		Leads:    append([]entity.Lead{}, leads...),
		StoredAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = &batch
	return batch
}

func (s *Session) CurrentLeads() (entity.LeadBatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.leads == nil {
		return entity.LeadBatch{}, false
	}
	return *s.leads, true
}

func (s *Session) SaveResults(batch entity.ResultBatch) {
	batch.Results = append([]entity.ScoreResult{}, batch.Results...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = &batch
}

func (s *Session) CurrentResults() (entity.ResultBatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.results == nil {
		return entity.ResultBatch{}, false
	}
	return *s.results, true
}
