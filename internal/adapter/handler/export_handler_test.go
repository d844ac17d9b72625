package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/mocks"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

func TestExportHandler_Export(t *testing.T) {
	t.Run("exports with filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockExportService(ctrl)
		h := handler.NewExportHandler(svc)
		router := setupRouter()
		userID := uuid.New()
		router.POST("/coordinates/export", withUser(userID, h.Export))

		svc.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input export.Input) (*export.Result, error) {
				assert.Equal(t, userID, input.UserID)
				assert.Equal(t, "dms", input.Notation)
				require.NotNil(t, input.BoundingBox)
				assert.Equal(t, 10.0, input.BoundingBox.MaxLat)
				return &export.Result{
					Key:       "exports/x.geojson",
					URL:       "https://signed.example/x",
					Count:     3,
					ExpiresAt: time.Now().Add(time.Minute),
				}, nil
			})

		w := doJSON(router, http.MethodPost, "/coordinates/export",
			`{"notation":"dms","min_lat":0,"max_lat":10,"min_lng":0,"max_lng":10}`)

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "https://signed.example/x", resp["url"])
		assert.Equal(t, float64(3), resp["count"])
	})

	t.Run("accepts empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockExportService(ctrl)
		h := handler.NewExportHandler(svc)
		router := setupRouter()
		router.POST("/coordinates/export", withUser(uuid.New(), h.Export))

		svc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEmptyExport)

		req := httptest.NewRequest(http.MethodPost, "/coordinates/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decode(t, w)["code"])
	})
}
