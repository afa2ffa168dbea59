package service

import (
	"context"

	"ulascansenturk/pets-service/internal/forecast"
)

type ForecastService interface {
	GetForecasts(ctx context.Context) []forecast.Forecast
}

type forecastService struct {
	generator *forecast.Generator
}

func NewForecastService(generator *forecast.Generator) ForecastService {
	return &forecastService{
		generator: generator,
	}
}

// GetForecasts never blocks and never fails; ctx is accepted for symmetry
// with the other services.
func (s *forecastService) GetForecasts(_ context.Context) []forecast.Forecast {
	return s.generator.Generate()
}
