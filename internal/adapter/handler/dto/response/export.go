package response

import (
	"time"

	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}

func ExportResultToResponse(result *export.Result) ExportResponse {
	return ExportResponse{
		Key:       result.Key,
		URL:       result.URL,
		Count:     result.Count,
		ExpiresAt: result.ExpiresAt,
	}
}
