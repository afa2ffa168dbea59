package service

import (
	"context"

	"github.com/rs/zerolog"
	"ulascansenturk/pets-service/internal/db/petstore"
)

type PetService interface {
	ListPets(ctx context.Context) ([]petstore.Pet, error)
}

type petService struct {
	repo petstore.Repository
}

func NewPetService(repo petstore.Repository) PetService {
	return &petService{
		repo: repo,
	}
}

// ListPets hands storage errors back unchanged for the caller to log. There
// is no retry and no partial result.
func (s *petService) ListPets(ctx context.Context) ([]petstore.Pet, error) {
	pets, err := s.repo.ListPets(ctx)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int("count", len(pets)).Msg("listed pets")
	return pets, nil
}
