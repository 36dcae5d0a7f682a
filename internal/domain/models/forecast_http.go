package models

// Requests for forecasting HTTP endpoints. Defined in domain for consistency and reuse.

// CropData identifies the crop a forecast is requested for.
type CropData struct {
	Name         string                 `json:"name" validate:"required"`
	Category     string                 `json:"category"`
	CurrentPrice float64                `json:"current_price" validate:"required,gt=0"`
	Location     map[string]interface{} `json:"location"`
	HarvestDate  string                 `json:"harvest_date,omitempty"`
}

// PredictRequest is the body of POST /predict/price. PredictionDays above the
// configured maximum is clamped by the engine, not rejected here.
type PredictRequest struct {
	CropData       CropData         `json:"crop_data" validate:"required"`
	WeatherData    *WeatherSnapshot `json:"weather_data,omitempty"`
	PredictionDays int              `json:"prediction_days" default:"30"`
}
