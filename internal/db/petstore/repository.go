package petstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	ListPets(ctx context.Context) ([]Pet, error)
}

type PetSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &PetSQLRepository{db: db}
}

// ListPets issues a single full-table read. Row order is whatever the
// database returns.
func (r *PetSQLRepository) ListPets(ctx context.Context) ([]Pet, error) {
	pets := make([]Pet, 0)
	if err := r.db.WithContext(ctx).Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}
