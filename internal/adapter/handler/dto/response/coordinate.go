package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/pagination"
)

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision float64 `json:"precision"`
	Globe     string  `json:"globe"`
}

type ParseRecordResponse struct {
	ID         uuid.UUID          `json:"id"`
	Input      string             `json:"input"`
	Notation   string             `json:"notation"`
	Coordinate CoordinateResponse `json:"coordinate"`
	CreatedAt  time.Time          `json:"created_at"`
}

type BatchItemResponse struct {
	Input  string               `json:"input"`
	Record *ParseRecordResponse `json:"record,omitempty"`
	Error  string               `json:"error,omitempty"`
	Code   string               `json:"code,omitempty"`
}

type BatchParseResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

type FormatResponse struct {
	Text     string `json:"text"`
	Notation string `json:"notation"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type ParseRecordsListResponse struct {
	Records    []ParseRecordResponse `json:"records"`
	Pagination PaginationResponse    `json:"pagination"`
}

func ParseRecordFromEntity(r *entity.ParseRecord) ParseRecordResponse {
	return ParseRecordResponse{
		ID:       r.ID,
		Input:    r.Input,
		Notation: r.Notation,
		Coordinate: CoordinateResponse{
			Latitude:  r.Coordinate.Latitude,
			Longitude: r.Coordinate.Longitude,
			Precision: r.Coordinate.Precision,
			Globe:     r.Coordinate.Globe,
		},
		CreatedAt: r.CreatedAt,
	}
}

func ParseRecordsFromEntities(records []entity.ParseRecord) []ParseRecordResponse {
	result := make([]ParseRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ParseRecordFromEntity(&r))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
