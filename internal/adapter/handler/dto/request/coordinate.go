package request

type ParseCoordinateRequest struct {
	Text      string   `json:"text" binding:"required,max=256"`
	Globe     string   `json:"globe" binding:"omitempty,max=255"`
	Precision *float64 `json:"precision"`
}

type BatchParseRequest struct {
	Texts     []string `json:"texts" binding:"required,min=1,dive,max=256"`
	Globe     string   `json:"globe" binding:"omitempty,max=255"`
	Precision *float64 `json:"precision"`
}

type FormatCoordinateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Precision *float64 `json:"precision" binding:"required"`
	Notation  string   `json:"notation" binding:"required"`
}

// BoundingBox is applied only when all four edges are present.
type BoundingBox struct {
	MinLat *float64 `form:"min_lat" json:"min_lat"`
	MaxLat *float64 `form:"max_lat" json:"max_lat"`
	MinLng *float64 `form:"min_lng" json:"min_lng"`
	MaxLng *float64 `form:"max_lng" json:"max_lng"`
}

type ListCoordinatesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PerPage  int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Notation string `form:"notation"`
	BoundingBox
}

type ExportRequest struct {
	Notation string `json:"notation"`
	BoundingBox
}
