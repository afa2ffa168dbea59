package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"ulascansenturk/pets-service/internal/service"
)

type PetHandler struct {
	petService service.PetService
	timeout    time.Duration
}

func NewPetHandler(petService service.PetService, timeout time.Duration) *PetHandler {
	return &PetHandler{
		petService: petService,
		timeout:    timeout,
	}
}

func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	pets, err := h.petService.ListPets(ctx)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to list pets")
		respondWithError(w, http.StatusInternalServerError, "failed to list pets")
		return
	}

	response := make([]PetResponse, 0, len(pets))
	for _, p := range pets {
		response = append(response, toPetResponse(p))
	}

	respondWithJSON(w, http.StatusOK, response)
}
