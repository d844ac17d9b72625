package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type ParseRecordRepository interface {
	Create(ctx context.Context, record *entity.ParseRecord) error
	BatchCreate(ctx context.Context, records []entity.ParseRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseRecord, error)
	List(ctx context.Context, userID uuid.UUID, params ParseRecordListParams) ([]entity.ParseRecord, *pagination.Info, error)
	// ListAll returns every record of a user matching the filter, oldest first.
	ListAll(ctx context.Context, userID uuid.UUID, filter ParseRecordFilter) ([]entity.ParseRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParseRecordFilter struct {
	BoundingBox *valueobject.BoundingBox
	Notation    string
}

type ParseRecordListParams struct {
	Pagination pagination.Params
	ParseRecordFilter
}
