package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

// BatchScoredEvent is published after every successful scoring run.
type BatchScoredEvent struct {
	BatchID      string               `json:"batch_id"`
	OfferVersion string               `json:"offer_version"`
	LeadsVersion string               `json:"leads_version"`
	Count        int                  `json:"count"`
	ScoredAt     time.Time            `json:"scored_at"`
	Results      []entity.ScoreResult `json:"results"`
}

func NewBatchScoredEvent(batch entity.ResultBatch) BatchScoredEvent {
	return BatchScoredEvent{
		BatchID:      batch.ID,
		OfferVersion: batch.OfferVersion,
		LeadsVersion: batch.LeadsVersion,
		Count:        len(batch.Results),
		ScoredAt:     batch.ScoredAt,
		Results:      batch.Results,
	}
}

// Publisher is the subset of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

var _ entity.ResultPublisher = (*RabbitMQProducer)(nil)

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishBatchScored(ctx context.Context, batch entity.ResultBatch) error {
	body, err := json.Marshal(NewBatchScoredEvent(batch))
	if err != nil {
		return fmt.Errorf("marshal batch scored event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    batch.ID,
			Timestamp:    batch.ScoredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish batch %s: %w", batch.ID, err)
	}
	return nil
}
