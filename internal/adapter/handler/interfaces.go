package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/coordinate"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type CoordinateService interface {
	Parse(ctx context.Context, input coordinate.ParseInput) (*entity.ParseRecord, error)
	BatchParse(ctx context.Context, input coordinate.BatchParseInput) (*coordinate.BatchResult, error)
	Format(input coordinate.FormatInput) (string, error)
	List(ctx context.Context, input coordinate.ListInput) ([]entity.ParseRecord, *pagination.Info, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.ParseRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ExportService interface {
	Export(ctx context.Context, input export.Input) (*export.Result, error)
}
