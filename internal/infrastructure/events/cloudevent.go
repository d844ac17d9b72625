package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const specVersion = "1.0"

// CloudEvent is the structured-mode JSON envelope of a CloudEvents 1.0
// event.
type CloudEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

func NewCloudEvent(source, eventType string, data any) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("marshaling event data: %w", err)
	}
	return CloudEvent{
		SpecVersion:     specVersion,
		ID:              uuid.NewString(),
		Source:          source,
		Type:            eventType,
		Time:            time.Now().UTC(),
		DataContentType: "application/json",
		Data:            raw,
	}, nil
}

func (e CloudEvent) ParseData(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("unmarshaling event data: %w", err)
	}
	return nil
}
