package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/geoparse"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/coordinate"
)

type CoordinateHandler struct {
	coordinateSvc CoordinateService
}

func NewCoordinateHandler(coordinateSvc CoordinateService) *CoordinateHandler {
	return &CoordinateHandler{coordinateSvc: coordinateSvc}
}

// Parse godoc
//
//	@Summary		Parse a coordinate
//	@Description	Parse free text in float, decimal degree, degree-minute or degree-minute-second notation and record it
//	@Tags			coordinates
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.ParseCoordinateRequest	true	"Coordinate text"
//	@Success		201		{object}	response.ParseRecordResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		422		{object}	httputil.ErrorResponse	"Unrecognized format"
//	@Router			/coordinates/parse [post]
func (h *CoordinateHandler) Parse(c *gin.Context) {
	var req request.ParseCoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	record, err := h.coordinateSvc.Parse(c.Request.Context(), coordinate.ParseInput{
		UserID:    httputil.GetUserID(c),
		Text:      req.Text,
		Globe:     req.Globe,
		Precision: req.Precision,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.Created(c, response.ParseRecordFromEntity(record))
}

// BatchParse godoc
//
//	@Summary		Parse several coordinates
//	@Description	Parse each text independently; failures are reported per item
//	@Tags			coordinates
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.BatchParseRequest	true	"Coordinate texts"
//	@Success		200		{object}	response.BatchParseResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/coordinates/parse/batch [post]
func (h *CoordinateHandler) BatchParse(c *gin.Context) {
	var req request.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.coordinateSvc.BatchParse(c.Request.Context(), coordinate.BatchParseInput{
		UserID:    httputil.GetUserID(c),
		Texts:     req.Texts,
		Globe:     req.Globe,
		Precision: req.Precision,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	resp := response.BatchParseResponse{
		Results:   make([]response.BatchItemResponse, 0, len(result.Items)),
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	}
	for _, item := range result.Items {
		out := response.BatchItemResponse{Input: item.Input}
		if item.Err != nil {
			appErr := toAppError(item.Err)
			out.Code = appErr.Code
			out.Error = appErr.Message
		} else {
			rec := response.ParseRecordFromEntity(item.Record)
			out.Record = &rec
		}
		resp.Results = append(resp.Results, out)
	}

	httputil.OK(c, resp)
}

// Format godoc
//
//	@Summary		Format a coordinate
//	@Description	Render latitude and longitude in the given notation at the given precision
//	@Tags			coordinates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.FormatCoordinateRequest	true	"Coordinate"
//	@Success		200		{object}	response.FormatResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/coordinates/format [post]
func (h *CoordinateHandler) Format(c *gin.Context) {
	var req request.FormatCoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	text, err := h.coordinateSvc.Format(coordinate.FormatInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Precision: *req.Precision,
		Notation:  req.Notation,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	notation := req.Notation
	if kind, err := geoparse.ParseKind(req.Notation); err == nil {
		notation = kind.String()
	}

	httputil.OK(c, response.FormatResponse{Text: text, Notation: notation})
}

func (h *CoordinateHandler) List(c *gin.Context) {
	var req request.ListCoordinatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	records, pageInfo, err := h.coordinateSvc.List(c.Request.Context(), coordinate.ListInput{
		UserID:      httputil.GetUserID(c),
		Page:        req.Page,
		PerPage:     req.PerPage,
		BoundingBox: boundingBox(req.BoundingBox),
		Notation:    req.Notation,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.OK(c, response.ParseRecordsListResponse{
		Records:    response.ParseRecordsFromEntities(records),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *CoordinateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid record id")
		return
	}

	record, err := h.coordinateSvc.GetByID(c.Request.Context(), httputil.GetUserID(c), id)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.OK(c, response.ParseRecordFromEntity(record))
}

func (h *CoordinateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid record id")
		return
	}

	if err := h.coordinateSvc.Delete(c.Request.Context(), httputil.GetUserID(c), id); err != nil {
		handleError(c, err)
		return
	}

	httputil.NoContent(c)
}
