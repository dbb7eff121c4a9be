package facades

import (
	"context"
	"encoding/json"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ContactEventPublisher publishes contact submissions to Kafka.
type ContactEventPublisher struct {
	writer KafkaWriter
}

func NewContactEventPublisher(writer KafkaWriter) *ContactEventPublisher {
	return &ContactEventPublisher{writer: writer}
}

// PublishContactMessage writes msg as JSON keyed by its id.
func (p *ContactEventPublisher) PublishContactMessage(ctx context.Context, msg models.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("Failed to marshal contact message for Kafka", "message_id", msg.ID, "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.ID.String()),
		Value: data,
	})
	if err != nil {
		logger.Log.Errorw("Failed to publish contact message to Kafka", "message_id", msg.ID, "error", err)
		return err
	}

	logger.Log.Infow("Contact message published to Kafka", "message_id", msg.ID)
	return nil
}

func (p *ContactEventPublisher) Close() error {
	return p.writer.Close()
}
