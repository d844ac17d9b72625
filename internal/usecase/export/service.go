package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/coordinate"
)

const contentType = "application/geo+json"

type Service struct {
	repo      repository.ParseRecordRepository
	storage   storage.ObjectStorage
	keyPrefix string
	urlExpiry time.Duration
}

func NewService(repo repository.ParseRecordRepository, storage storage.ObjectStorage, keyPrefix string, urlExpiry time.Duration) *Service {
	return &Service{
		repo:      repo,
		storage:   storage,
		keyPrefix: keyPrefix,
		urlExpiry: urlExpiry,
	}
}

type Input struct {
	UserID      uuid.UUID
	BoundingBox *valueobject.BoundingBox
	Notation    string
}

type Result struct {
	Key       string
	URL       string
	Count     int
	ExpiresAt time.Time
}

// Export writes the user's matching history as a GeoJSON FeatureCollection
// to object storage and returns a time-limited download link.
func (s *Service) Export(ctx context.Context, input Input) (*Result, error) {
	filter, err := coordinate.NewFilter(input.BoundingBox, input.Notation)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListAll(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("loading parse records: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyExport
	}

	body, err := FeatureCollection(records).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding geojson: %w", err)
	}

	key := path.Join(s.keyPrefix, input.UserID.String(), uuid.NewString()+".geojson")
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), contentType, int64(len(body))); err != nil {
		return nil, fmt.Errorf("uploading export: %w", err)
	}

	url, err := s.storage.GetSignedURL(ctx, key, s.urlExpiry)
	if err != nil {
		// Nobody can reach the object without a link.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("signing export url: %w", errors.Join(err, delErr))
		}
		return nil, fmt.Errorf("signing export url: %w", err)
	}

	return &Result{
		Key:       key,
		URL:       url,
		Count:     len(records),
		ExpiresAt: time.Now().UTC().Add(s.urlExpiry),
	}, nil
}

// FeatureCollection renders records as point features; the properties carry
// everything needed to rebuild the record.
func FeatureCollection(records []entity.ParseRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range records {
		f := geojson.NewFeature(r.Coordinate.Point())
		f.ID = r.ID.String()
		f.Properties["input"] = r.Input
		f.Properties["precision"] = r.Coordinate.Precision
		f.Properties["globe"] = r.Coordinate.Globe
		f.Properties["notation"] = r.Notation
		f.Properties["created_at"] = r.CreatedAt.Format(time.RFC3339)
		fc.Append(f)
	}
	return fc
}
