package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

// MockIntentModel
type MockIntentModel struct {
	mock.Mock
}

func (m *MockIntentModel) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBatchScored(ctx context.Context, batch entity.ResultBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// MockLeadParser
type MockLeadParser struct {
	mock.Mock
}

func (m *MockLeadParser) ParseLeads(r io.Reader) ([]entity.Lead, error) {
	args := m.Called(r)
	leads, _ := args.Get(0).([]entity.Lead)
	return leads, args.Error(1)
}

// fixedClassifier answers the same classification for every lead.
type fixedClassifier struct {
	result entity.Classification
}

func (f fixedClassifier) Classify(context.Context, entity.Lead, entity.Offer) entity.Classification {
	return f.result
}

// blockingModel waits for the caller's deadline.
type blockingModel struct{}

func (blockingModel) Complete(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func strPtr(s string) *string { return &s }

func slicePtr(s ...string) *[]string { return &s }

func crmOffer() entity.Offer {
	return entity.NewOffer("CRM Tool", []string{"Automates follow-ups"}, []string{"SaaS"})
}

func anaLead() entity.Lead {
	return entity.NewLead("Ana", "Head of Growth", "Acme", "SaaS", "NYC", "Looking for a CRM")
}
