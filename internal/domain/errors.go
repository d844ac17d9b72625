package domain

import "errors"

var (
	ErrForbidden           = errors.New("forbidden")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrParseRecordNotFound = errors.New("parse record not found")
	ErrInvalidBoundingBox  = errors.New("invalid bounding box")
	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidPrecision    = errors.New("invalid precision")
	ErrInvalidGlobe        = errors.New("invalid globe")
	ErrUnsupportedNotation = errors.New("unsupported notation")
	ErrEmptyExport         = errors.New("nothing to export")
	ErrEmptyBatch          = errors.New("empty batch")
	ErrBatchTooLarge       = errors.New("batch too large")
)
