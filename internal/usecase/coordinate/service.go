package coordinate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/event"
	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/geoparse"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/pagination"
)

type Config struct {
	DefaultGlobe string
	CacheSize    int
	MaxBatchSize int
}

// cacheKey identifies a parse by everything that influences its result.
type cacheKey struct {
	text         string
	globe        string
	precision    float64
	hasPrecision bool
}

type Service struct {
	repo         repository.ParseRecordRepository
	publisher    event.Publisher
	parser       *geoparse.Parser
	cache        *lru.Cache[cacheKey, geoparse.Coordinate]
	defaultGlobe string
	maxBatchSize int
	logger       *zap.Logger
}

func NewService(
	repo repository.ParseRecordRepository,
	publisher event.Publisher,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 1
	}
	cache, err := lru.New[cacheKey, geoparse.Coordinate](size)
	if err != nil {
		return nil, fmt.Errorf("creating parse cache: %w", err)
	}

	globe := strings.TrimSpace(cfg.DefaultGlobe)
	if globe == "" {
		globe = geoparse.DefaultGlobe
	}

	return &Service{
		repo:         repo,
		publisher:    publisher,
		parser:       geoparse.NewParser(),
		cache:        cache,
		defaultGlobe: globe,
		maxBatchSize: cfg.MaxBatchSize,
		logger:       logger,
	}, nil
}

type ParseInput struct {
	UserID    uuid.UUID
	Text      string
	Globe     string
	Precision *float64
}

// Parse interprets the text, validates the result and stores it in the
// user's history.
func (s *Service) Parse(ctx context.Context, input ParseInput) (*entity.ParseRecord, error) {
	record, err := s.build(input.UserID, input.Text, input.Globe, input.Precision)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("saving parse record: %w", err)
	}

	s.publishParsed(ctx, record)
	return record, nil
}

type BatchParseInput struct {
	UserID    uuid.UUID
	Texts     []string
	Globe     string
	Precision *float64
}

type BatchItem struct {
	Input  string
	Record *entity.ParseRecord
	Err    error
}

type BatchResult struct {
	Items     []BatchItem
	Succeeded int
	Failed    int
}

// BatchParse parses every text independently. Failures are reported per
// item; the successes are stored together.
func (s *Service) BatchParse(ctx context.Context, input BatchParseInput) (*BatchResult, error) {
	if len(input.Texts) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if s.maxBatchSize > 0 && len(input.Texts) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d items, max %d", domain.ErrBatchTooLarge, len(input.Texts), s.maxBatchSize)
	}

	result := &BatchResult{Items: make([]BatchItem, 0, len(input.Texts))}
	records := make([]entity.ParseRecord, 0, len(input.Texts))

	for _, text := range input.Texts {
		record, err := s.build(input.UserID, text, input.Globe, input.Precision)
		if err != nil {
			result.Items = append(result.Items, BatchItem{Input: text, Err: err})
			result.Failed++
			continue
		}
		result.Items = append(result.Items, BatchItem{Input: text, Record: record})
		records = append(records, *record)
		result.Succeeded++
	}

	if err := s.repo.BatchCreate(ctx, records); err != nil {
		return nil, fmt.Errorf("saving parse records: %w", err)
	}

	for _, item := range result.Items {
		if item.Record != nil {
			s.publishParsed(ctx, item.Record)
		}
	}

	return result, nil
}

type FormatInput struct {
	Latitude  float64
	Longitude float64
	Precision float64
	Notation  string
}

func (s *Service) Format(input FormatInput) (string, error) {
	kind, err := geoparse.ParseKind(input.Notation)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedNotation, input.Notation)
	}

	coord, err := valueobject.NewGlobeCoordinate(input.Latitude, input.Longitude, input.Precision, s.defaultGlobe)
	if err != nil {
		return "", err
	}

	out, err := geoparse.Format(geoparse.LatLong{Latitude: coord.Latitude, Longitude: coord.Longitude}, coord.Precision, kind)
	if err != nil {
		return "", fmt.Errorf("formatting coordinate: %w", err)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.ParseRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !record.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return record, nil
}

type ListInput struct {
	UserID      uuid.UUID
	Page        int
	PerPage     int
	BoundingBox *valueobject.BoundingBox
	Notation    string
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.ParseRecord, *pagination.Info, error) {
	filter, err := NewFilter(input.BoundingBox, input.Notation)
	if err != nil {
		return nil, nil, err
	}

	params := repository.ParseRecordListParams{
		Pagination:        pagination.NewParams(input.Page, input.PerPage),
		ParseRecordFilter: filter,
	}

	records, pageInfo, err := s.repo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing parse records: %w", err)
	}
	return records, pageInfo, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting parse record: %w", err)
	}

	s.publish(ctx, event.TypeCoordinateDeleted, id.String(), DeletedEvent{
		RecordID:  id,
		UserID:    userID,
		DeletedAt: time.Now().UTC(),
	})
	return nil
}

// NewFilter validates the optional history filters shared by listing and
// export.
func NewFilter(bbox *valueobject.BoundingBox, notation string) (repository.ParseRecordFilter, error) {
	filter := repository.ParseRecordFilter{BoundingBox: bbox}

	if bbox != nil {
		if err := bbox.Validate(); err != nil {
			return filter, err
		}
	}

	if notation != "" {
		kind, err := geoparse.ParseKind(notation)
		if err != nil {
			return filter, fmt.Errorf("%w: %q", domain.ErrUnsupportedNotation, notation)
		}
		filter.Notation = kind.String()
	}

	return filter, nil
}

func (s *Service) build(userID uuid.UUID, text, globe string, precision *float64) (*entity.ParseRecord, error) {
	c, err := s.parse(text, globe, precision)
	if err != nil {
		return nil, err
	}

	coord, err := valueobject.NewGlobeCoordinate(c.LatLong.Latitude, c.LatLong.Longitude, c.Precision, c.Globe)
	if err != nil {
		return nil, err
	}

	return entity.NewParseRecord(userID, text, coord, c.Kind.String()), nil
}

func (s *Service) parse(text, globe string, precision *float64) (geoparse.Coordinate, error) {
	if strings.TrimSpace(globe) == "" {
		globe = s.defaultGlobe
	}

	key := cacheKey{text: text, globe: globe}
	if precision != nil {
		key.precision = *precision
		key.hasPrecision = true
	}

	if c, ok := s.cache.Get(key); ok {
		return c, nil
	}

	c, err := s.parser.Parse(text, geoparse.Options{Globe: globe, Precision: precision})
	if err != nil {
		return geoparse.Coordinate{}, err
	}

	s.cache.Add(key, *c)
	return *c, nil
}

