package usecase

import (
	"context"
	"io"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

// IntentModel is the remote language model behind the classifier.
// Any error sends the classifier down the heuristic path.
type IntentModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Classifier interface {
	Classify(ctx context.Context, lead entity.Lead, offer entity.Offer) entity.Classification
}

type LeadParser interface {
	ParseLeads(r io.Reader) ([]entity.Lead, error)
}
