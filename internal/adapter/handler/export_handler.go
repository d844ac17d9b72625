package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

type ExportHandler struct {
	exportSvc ExportService
}

func NewExportHandler(exportSvc ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export accepts an empty body, meaning the whole history.
func (h *ExportHandler) Export(c *gin.Context) {
	var req request.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.exportSvc.Export(c.Request.Context(), export.Input{
		UserID:      httputil.GetUserID(c),
		BoundingBox: boundingBox(req.BoundingBox),
		Notation:    req.Notation,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.Created(c, response.ExportResultToResponse(result))
}
