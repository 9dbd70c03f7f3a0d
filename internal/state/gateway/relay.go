package gateway

import (
	"context"

	"github.com/rs/zerolog/log"

	"tide/config"
	"tide/infras/kafka"
	"tide/internal/state/model"
)

// Publisher relays committed sync events to an external broker. Relaying is
// best-effort and never fails a commit.
type Publisher interface {
	Publish(ctx context.Context, entry model.SyncEntry)
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, model.SyncEntry) {}

// NewPublisher returns a kafka-backed relay, or a no-op when the relay is
// disabled.
func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, entry model.SyncEntry) {
	message := kafka.Message{
		Key:   string(entry.Level),
		Value: entry,
	}

	if err := p.client.SendMessages(ctx, p.topic, message); err != nil {
		log.Error().Err(err).Str("topic", p.topic).Msg("[Relay] Failed to publish sync event")
	}
}
