package models

// DailyPrediction is a single forecast point. Date is formatted YYYY-MM-DD.
// Confidence is a heuristic of horizon distance, not a statistical interval.
type DailyPrediction struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
	DemandLevel    string  `json:"demand_level"`
}

// ForecastResult is the full forecast for one crop: a day-by-day price curve
// plus aggregate weather and trend commentary.
type ForecastResult struct {
	CropName      string            `json:"crop_name"`
	CurrentPrice  float64           `json:"current_price"`
	Predictions   []DailyPrediction `json:"predictions"`
	WeatherImpact string            `json:"weather_impact"`
	MarketTrend   string            `json:"market_trend"`
}
