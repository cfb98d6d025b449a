package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"pointtrail/config"
	"pointtrail/internal/service"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds platform events from a Kafka topic into the recorder. It is
// the async sibling of the event webhook and shares its envelope format.
type Consumer struct {
	reader   *kafka.Reader
	recorder *service.Recorder
}

func NewConsumer(cfg config.KafkaConfig, recorder *service.Recorder) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
			GroupID: cfg.GroupID,
		}),
		recorder: recorder,
	}
}

// Run consumes until the context is cancelled. Malformed messages are logged
// and skipped; recording outcomes other than storage failures are routine.
func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			log.Printf("[kafka] read: %v", err)
			continue
		}
		env, err := decodeEnvelope(msg.Value)
		if err != nil {
			log.Printf("[kafka] envelope at offset %d: %v", msg.Offset, err)
			continue
		}
		outcome := c.recorder.Record(env.ToEvent())
		if outcome.Status == service.StatusFailedStorage {
			log.Printf("[kafka] record %s: %v", env.Event, outcome.Err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func decodeEnvelope(data []byte) (*service.EventEnvelope, error) {
	var env service.EventEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Event == "" {
		return nil, errors.New("missing event kind")
	}
	return &env, nil
}
