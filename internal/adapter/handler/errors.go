package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/geoparse"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
)

// toAppError maps use case errors onto HTTP errors. Unknown errors become
// internal errors.
func toAppError(err error) *apperror.AppError {
	var parseErr *geoparse.ParseError
	switch {
	case errors.As(err, &parseErr):
		return apperror.Unprocessable("UNRECOGNIZED_FORMAT",
			fmt.Sprintf("unrecognized coordinate format: %q", parseErr.Value)).
			WithDetail("input", parseErr.Value)
	case errors.Is(err, domain.ErrInvalidLocation):
		return apperror.New("INVALID_LOCATION", "coordinates out of range", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidPrecision):
		return apperror.New("INVALID_PRECISION", "precision must be a positive number", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidGlobe):
		return apperror.New("INVALID_GLOBE", "globe must not be empty", http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnsupportedNotation):
		return apperror.New("UNSUPPORTED_NOTATION", "notation must be one of float, dd, dm, dms", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidBoundingBox):
		return apperror.New("INVALID_BBOX", "invalid bounding box", http.StatusBadRequest)
	case errors.Is(err, domain.ErrEmptyBatch), errors.Is(err, domain.ErrBatchTooLarge):
		return apperror.BadRequest(err.Error())
	case errors.Is(err, domain.ErrParseRecordNotFound):
		return apperror.NotFound("parse record")
	case errors.Is(err, domain.ErrEmptyExport):
		return apperror.NotFound("parse records to export")
	case errors.Is(err, domain.ErrForbidden):
		return apperror.Forbidden("access denied")
	default:
		return apperror.Internal(err)
	}
}

func handleError(c *gin.Context, err error) {
	httputil.HandleError(c, toAppError(err))
}

func boundingBox(bb request.BoundingBox) *valueobject.BoundingBox {
	if bb.MinLat == nil || bb.MaxLat == nil || bb.MinLng == nil || bb.MaxLng == nil {
		return nil
	}
	return valueobject.NewBoundingBox(*bb.MinLat, *bb.MaxLat, *bb.MinLng, *bb.MaxLng)
}
