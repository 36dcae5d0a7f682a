package repository

// Metrics records operational metrics for forecasting work.
type Metrics interface {
	RecordForecast(crop string)
	RecordError(kind string)
	RecordLastPrice(crop string, price float64)
	RecordLatency(op string, seconds float64)
	RecordQueueDepth(n int)
}
