package httputil_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
)

func serve(t *testing.T, method, body string, h gin.HandlerFunc) (int, httputil.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-1")
		c.Next()
	})
	router.Handle(method, "/", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleError(t *testing.T) {
	t.Run("renders app error with details", func(t *testing.T) {
		status, resp := serve(t, http.MethodGet, "", func(c *gin.Context) {
			httputil.HandleError(c, apperror.Unprocessable("UNRECOGNIZED_FORMAT", "bad").WithDetail("input", "x"))
		})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "UNRECOGNIZED_FORMAT", resp.Code)
		assert.Equal(t, "bad", resp.Error)
		assert.Equal(t, map[string]any{"input": "x"}, resp.Details)
		assert.Equal(t, "req-1", resp.RequestID)
	})

	t.Run("hides plain errors", func(t *testing.T) {
		status, resp := serve(t, http.MethodGet, "", func(c *gin.Context) {
			httputil.HandleError(c, errors.New("connection refused"))
		})

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", resp.Code)
		assert.NotContains(t, resp.Error, "connection refused")
	})
}

func TestValidationError_ReportsFields(t *testing.T) {
	httputil.UseJSONFieldNames()

	type payload struct {
		Text     string `json:"text" binding:"required"`
		Notation string `json:"notation" binding:"required,oneof=float dd dm dms"`
	}

	status, resp := serve(t, http.MethodPost, `{"notation":"utm"}`, func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			httputil.ValidationError(c, err)
		}
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, map[string]any{
		"fields": map[string]any{"text": "required", "notation": "oneof"},
	}, resp.Details)
}

func TestValidationError_MalformedJSON(t *testing.T) {
	status, resp := serve(t, http.MethodPost, `{`, func(c *gin.Context) {
		var p struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&p); err != nil {
			httputil.ValidationError(c, err)
		}
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Nil(t, resp.Details)
}
