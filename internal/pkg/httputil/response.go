package httputil

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/apperror"
)

type ErrorResponse struct {
	Error     string         `json:"error"`
	Code      string         `json:"code,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

// ValidationError reports binding failures. Validator failures are listed
// per field under details.fields, keyed by the JSON or query name.
func ValidationError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Error:     err.Error(),
		Code:      "VALIDATION_ERROR",
		RequestID: GetRequestID(c),
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		resp.Error = "request validation failed"
		resp.Details = map[string]any{"fields": fields}
	}

	c.JSON(http.StatusBadRequest, resp)
}

func InternalError(c *gin.Context) {
	HandleError(c, apperror.Internal(nil))
}

func HandleError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}
	c.JSON(appErr.StatusCode, ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		Details:   appErr.Details,
		RequestID: GetRequestID(c),
	})
}

// AbortWithError writes err like HandleError and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	HandleError(c, err)
	c.Abort()
}

func GetUserID(c *gin.Context) uuid.UUID {
	if id, ok := c.Value("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func GetRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}

// UseJSONFieldNames makes gin's validator report fields by their json tag
// (falling back to the form tag) instead of the Go field name.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}
