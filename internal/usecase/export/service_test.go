package export_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/mocks"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

func newRecord(t *testing.T, userID uuid.UUID, lat, lng float64) entity.ParseRecord {
	t.Helper()
	coord, err := valueobject.NewGlobeCoordinate(lat, lng, 0.01, "http://www.wikidata.org/entity/Q2")
	require.NoError(t, err)
	return *entity.NewParseRecord(userID, "input", coord, "dd")
}

func TestService_Export(t *testing.T) {
	t.Run("uploads geojson and returns signed url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockParseRecordRepository(ctrl)
		store := mocks.NewMockObjectStorage(ctrl)
		svc := export.NewService(repo, store, "exports", 15*time.Minute)

		ctx := context.Background()
		userID := uuid.New()
		records := []entity.ParseRecord{
			newRecord(t, userID, 51.5, -0.12),
			newRecord(t, userID, -33.86, 151.21),
		}

		repo.EXPECT().ListAll(ctx, userID, repository.ParseRecordFilter{Notation: "dd"}).Return(records, nil)

		var uploadedKey string
		var uploaded []byte
		store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "application/geo+json", gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, r io.Reader, _ string, size int64) error {
				uploadedKey = key
				body, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, int64(len(body)), size)
				uploaded = body
				return nil
			})
		store.EXPECT().GetSignedURL(ctx, gomock.Any(), 15*time.Minute).Return("https://signed.example/x", nil)

		result, err := svc.Export(ctx, export.Input{UserID: userID, Notation: "dd"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, "https://signed.example/x", result.URL)
		assert.Equal(t, uploadedKey, result.Key)
		assert.True(t, strings.HasPrefix(result.Key, "exports/"+userID.String()+"/"))
		assert.True(t, strings.HasSuffix(result.Key, ".geojson"))

		fc, err := geojson.UnmarshalFeatureCollection(uploaded)
		require.NoError(t, err)
		require.Len(t, fc.Features, 2)
		assert.Equal(t, orb.Point{-0.12, 51.5}, fc.Features[0].Geometry)
		assert.Equal(t, "dd", fc.Features[0].Properties.MustString("notation"))
		assert.Equal(t, 0.01, fc.Features[0].Properties.MustFloat64("precision"))
	})

	t.Run("returns empty export error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockParseRecordRepository(ctrl)
		store := mocks.NewMockObjectStorage(ctrl)
		svc := export.NewService(repo, store, "exports", time.Minute)

		ctx := context.Background()
		userID := uuid.New()
		repo.EXPECT().ListAll(ctx, userID, gomock.Any()).Return(nil, nil)

		_, err := svc.Export(ctx, export.Input{UserID: userID})

		assert.ErrorIs(t, err, domain.ErrEmptyExport)
	})

	t.Run("rejects invalid bounding box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := export.NewService(mocks.NewMockParseRecordRepository(ctrl), mocks.NewMockObjectStorage(ctrl), "exports", time.Minute)

		_, err := svc.Export(context.Background(), export.Input{
			UserID:      uuid.New(),
			BoundingBox: valueobject.NewBoundingBox(0, 10, 50, 10),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidBoundingBox)
	})

	t.Run("returns upload error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockParseRecordRepository(ctrl)
		store := mocks.NewMockObjectStorage(ctrl)
		svc := export.NewService(repo, store, "exports", time.Minute)

		ctx := context.Background()
		userID := uuid.New()
		uploadErr := errors.New("s3 unavailable")

		repo.EXPECT().ListAll(ctx, userID, gomock.Any()).Return([]entity.ParseRecord{newRecord(t, userID, 1, 1)}, nil)
		store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uploadErr)

		_, err := svc.Export(ctx, export.Input{UserID: userID})

		assert.ErrorIs(t, err, uploadErr)
	})

	t.Run("removes the object when signing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockParseRecordRepository(ctrl)
		store := mocks.NewMockObjectStorage(ctrl)
		svc := export.NewService(repo, store, "exports", time.Minute)

		ctx := context.Background()
		userID := uuid.New()
		signErr := errors.New("presign failed")

		var uploadedKey string
		repo.EXPECT().ListAll(ctx, userID, gomock.Any()).Return([]entity.ParseRecord{newRecord(t, userID, 1, 1)}, nil)
		store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ string, _ int64) error {
				uploadedKey = key
				return nil
			})
		store.EXPECT().GetSignedURL(ctx, gomock.Any(), time.Minute).Return("", signErr)
		store.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, uploadedKey, key)
			return nil
		})

		_, err := svc.Export(ctx, export.Input{UserID: userID})

		assert.ErrorIs(t, err, signErr)
	})
}
