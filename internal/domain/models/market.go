package models

import "time"

// HistoricalObservation is one simulated day of price and weather data.
// Observations are produced in chronological order and never mutated after
// generation.
type HistoricalObservation struct {
	Date          time.Time `json:"date"`
	Price         float64   `json:"price"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	Precipitation float64   `json:"precipitation"`
	WindSpeed     float64   `json:"wind_speed"`
}

// WeatherSnapshot is a point-in-time weather reading, either supplied by the
// caller or resolved by a weather provider.
type WeatherSnapshot struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed"`
}

// MarketSnapshot holds rolling market statistics for a crop over a short
// analysis window.
type MarketSnapshot struct {
	CropName        string  `json:"crop_name"`
	CurrentPrice    float64 `json:"current_price"`
	AvgPrice30d     float64 `json:"avg_price_30d"`
	PriceVolatility float64 `json:"price_volatility"`
	MarketSentiment string  `json:"market_sentiment"`
	SupplyLevel     string  `json:"supply_level"`
	DemandForecast  string  `json:"demand_forecast"`
}
