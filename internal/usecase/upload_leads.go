package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

const csvSuffix = ".csv"

type UploadLeadsUseCase struct {
	Store  entity.SessionStore
	Parser LeadParser
}

func NewUploadLeadsUseCase(store entity.SessionStore, parser LeadParser) *UploadLeadsUseCase {
	return &UploadLeadsUseCase{Store: store, Parser: parser}
}

func (uc *UploadLeadsUseCase) Execute(_ context.Context, input UploadLeadsInput) (*UploadLeadsOutput, error) {
	if !strings.HasSuffix(input.Filename, csvSuffix) {
		return nil, &DomainError{
			Code:    CodeInvalidFileType,
			Message: "Only CSV files accepted.",
		}
	}

	leads, err := uc.Parser.ParseLeads(input.Content)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeInvalidCSV,
			Message: "could not parse CSV: " + err.Error(),
		}
	}

	batch := uc.Store.SaveLeads(leads)
	log.Info().Str("version", batch.Version).Str("file", input.Filename).Int("count", len(leads)).Msg("leads stored")

	return &UploadLeadsOutput{
		Status:  "ok",
		Count:   len(leads),
		Version: batch.Version,
	}, nil
}
