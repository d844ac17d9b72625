package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
)

// ParseRecord is one successfully parsed coordinate in a user's history.
type ParseRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Input      string
	Coordinate *valueobject.GlobeCoordinate
	Notation   string
	CreatedAt  time.Time
}

func NewParseRecord(userID uuid.UUID, input string, coord *valueobject.GlobeCoordinate, notation string) *ParseRecord {
	return &ParseRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Input:      input,
		Coordinate: coord,
		Notation:   notation,
		CreatedAt:  time.Now().UTC(),
	}
}

func (r *ParseRecord) OwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}
