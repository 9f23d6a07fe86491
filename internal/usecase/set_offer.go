package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

type SetOfferUseCase struct {
	Store entity.SessionStore
}

func NewSetOfferUseCase(store entity.SessionStore) *SetOfferUseCase {
	return &SetOfferUseCase{Store: store}
}

func (uc *SetOfferUseCase) Execute(_ context.Context, input SetOfferInput) (*SetOfferOutput, error) {
	if errs := ValidateSetOfferInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	offer := entity.NewOffer(strings.TrimSpace(*input.Name), *input.ValueProps, *input.IdealUseCases)
	snapshot := uc.Store.SaveOffer(offer)

	icp, _ := offer.ICP()
	log.Info().Str("version", snapshot.Version).Str("offer", offer.Name).Str("icp", icp).Msg("offer stored")

	return &SetOfferOutput{
		Status:  "ok",
		Version: snapshot.Version,
		Offer:   snapshot.Offer,
	}, nil
}
