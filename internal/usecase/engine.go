package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

const defaultWorkers = 4

// ScoringEngine combines rule points and intent points for each lead.
// Leads are scored independently; nothing is shared between them.
type ScoringEngine struct {
	rules      RuleScorer
	classifier Classifier
	workers    int
}

func NewScoringEngine(classifier Classifier, workers int) *ScoringEngine {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &ScoringEngine{classifier: classifier, workers: workers}
}

// ScoreLead scores one lead. It never rejects a lead, however sparse.
func (e *ScoringEngine) ScoreLead(ctx context.Context, lead entity.Lead, offer entity.Offer) entity.ScoreResult {
	icp, _ := offer.ICP()
	rule := e.rules.Score(lead, icp)
	classification := e.classifier.Classify(ctx, lead, offer)
	return entity.NewScoreResult(lead, rule, classification)
}

// ScoreAll scores leads on a bounded pool of workers. Output order matches
// input order. If ctx ends before every lead is scored the partial results
// are dropped and ctx's error is returned.
func (e *ScoringEngine) ScoreAll(ctx context.Context, leads []entity.Lead, offer entity.Offer) ([]entity.ScoreResult, error) {
	results := make([]entity.ScoreResult, len(leads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, lead := range leads {
		if gctx.Err() != nil {
			break
		}
		i, lead := i, lead
		g.Go(func() error {
			results[i] = e.ScoreLead(gctx, lead, offer)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
