package handlers

import (
	"time"

	"ulascansenturk/pets-service/internal/db/petstore"
	"ulascansenturk/pets-service/internal/forecast"
)

type ForecastResponse struct {
	Date         forecast.Date `json:"date"`
	TemperatureC int           `json:"temperatureC"`
	TemperatureF int           `json:"temperatureF"`
	Summary      *string       `json:"summary"`
}

type PetResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

func toForecastResponse(f forecast.Forecast) ForecastResponse {
	return ForecastResponse{
		Date:         f.Date(),
		TemperatureC: f.TemperatureC(),
		TemperatureF: f.TemperatureF(),
		Summary:      f.Summary(),
	}
}

func toPetResponse(p petstore.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
	}
}
