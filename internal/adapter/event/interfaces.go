package event

import "context"

const (
	TypeCoordinateParsed  = "coordinate.parsed"
	TypeCoordinateDeleted = "coordinate.deleted"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/event_mocks.go -package=mocks

type Publisher interface {
	Publish(ctx context.Context, eventType, key string, data any) error
}
