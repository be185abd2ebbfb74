package model

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request field names for POST /predict_home_price
const (
	FieldTotalSqft = "total_sqft"
	FieldBHK       = "bhk"
	FieldBath      = "bath"
	FieldLocation  = "location"
)

// RequiredPredictFields lists the body keys a prediction request must carry
var RequiredPredictFields = []string{FieldTotalSqft, FieldBHK, FieldBath, FieldLocation}

// PredictRequest is a validated, type-coerced prediction request
type PredictRequest struct {
	TotalSqft float64
	BHK       int
	Bath      int
	Location  string
}

// PredictResponse represents a successful price estimate
type PredictResponse struct {
	EstimatedPrice float64 `json:"estimated_price"`
	Status         string  `json:"status"`
}

// LocationsResponse represents the known location list
type LocationsResponse struct {
	Locations []string `json:"locations"`
	Status    string   `json:"status"`
}

// ErrorResponse is the envelope for every failed request
type ErrorResponse struct {
	Error   string            `json:"error"`
	Status  string            `json:"status"`
	Fields  []string          `json:"fields,omitempty"`  // missing fields
	Invalid map[string]string `json:"invalid,omitempty"` // field -> reason
}
