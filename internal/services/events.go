package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishProfileEvent publishes a profile lifecycle event. Publishing is
// fire-and-forget: a nil writer or a broker failure never fails the request.
func publishProfileEvent(ctx context.Context, w KafkaWriter, eventType string, userID uuid.UUID, username, linkID string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.ProfileEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Username:  username,
		LinkID:    linkID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal profile event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish profile event", "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Profile event published", "type", eventType, "user_id", event.UserID)
	}
}
