package usecase

import (
	"io"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

// SetOfferInput uses pointers so a missing field can be told apart from an
// empty one.
type SetOfferInput struct {
	Name          *string   `json:"name" yaml:"name"`
	ValueProps    *[]string `json:"value_props" yaml:"value_props"`
	IdealUseCases *[]string `json:"ideal_use_cases" yaml:"ideal_use_cases"`
}

type SetOfferOutput struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Offer   entity.Offer `json:"offer"`
}

type UploadLeadsInput struct {
	Filename string
	Content  io.Reader
}

type UploadLeadsOutput struct {
	Status  string `json:"status"`
	Count   int    `json:"count"`
	Version string `json:"version"`
}

type ScoreLeadsOutput struct {
	Status  string `json:"status"`
	Count   int    `json:"count"`
	BatchID string `json:"batch_id"`
}

// ResultsOutput is the current result batch plus whether it still matches
// the stored offer and leads.
type ResultsOutput struct {
	Batch entity.ResultBatch
	Found bool
	Stale bool
}
