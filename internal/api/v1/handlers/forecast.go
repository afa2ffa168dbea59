package handlers

import (
	"net/http"

	"ulascansenturk/pets-service/internal/service"
)

type ForecastHandler struct {
	forecastService service.ForecastService
}

func NewForecastHandler(forecastService service.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
	}
}

func (h *ForecastHandler) GetForecasts(w http.ResponseWriter, r *http.Request) {
	forecasts := h.forecastService.GetForecasts(r.Context())

	response := make([]ForecastResponse, 0, len(forecasts))
	for _, f := range forecasts {
		response = append(response, toForecastResponse(f))
	}

	respondWithJSON(w, http.StatusOK, response)
}
