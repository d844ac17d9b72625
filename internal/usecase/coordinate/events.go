package coordinate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/event"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
)

type ParsedEvent struct {
	RecordID  uuid.UUID `json:"record_id"`
	UserID    uuid.UUID `json:"user_id"`
	Input     string    `json:"input"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Precision float64   `json:"precision"`
	Globe     string    `json:"globe"`
	Notation  string    `json:"notation"`
	ParsedAt  time.Time `json:"parsed_at"`
}

type DeletedEvent struct {
	RecordID  uuid.UUID `json:"record_id"`
	UserID    uuid.UUID `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (s *Service) publishParsed(ctx context.Context, r *entity.ParseRecord) {
	s.publish(ctx, event.TypeCoordinateParsed, r.ID.String(), ParsedEvent{
		RecordID:  r.ID,
		UserID:    r.UserID,
		Input:     r.Input,
		Latitude:  r.Coordinate.Latitude,
		Longitude: r.Coordinate.Longitude,
		Precision: r.Coordinate.Precision,
		Globe:     r.Coordinate.Globe,
		Notation:  r.Notation,
		ParsedAt:  r.CreatedAt,
	})
}

// publish never fails the caller; the record is already stored.
func (s *Service) publish(ctx context.Context, eventType, key string, data any) {
	if err := s.publisher.Publish(ctx, eventType, key, data); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
