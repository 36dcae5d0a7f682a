package weather

import (
	"context"

	"CropCast/internal/domain/models"
	domsvc "CropCast/internal/domain/service"
)

// Static resolves every location to a fixed snapshot. It is the placeholder
// for a real forecast-API client; an API key is carried through config so a
// future client can slot in without touching callers.
type Static struct {
	snapshot models.WeatherSnapshot
}

func NewStatic(snapshot models.WeatherSnapshot) *Static {
	return &Static{snapshot: snapshot}
}

func (s *Static) Current(_ context.Context, _ map[string]interface{}) (models.WeatherSnapshot, error) {
	return s.snapshot, nil
}

var _ domsvc.WeatherProvider = (*Static)(nil)
