package petstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrDuplicateID = errors.New("pet id already exists")

// InMemoryRepository is a Repository backed by a slice. The server falls back
// to it in development when no database is configured.
type InMemoryRepository struct {
	mu     sync.RWMutex
	pets   []Pet
	ids    map[int]struct{}
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		ids:    make(map[int]struct{}),
		nextID: 1,
	}
}

// Add stores p and returns it. A zero ID is replaced with the next free one;
// an explicit ID that is already taken is rejected with ErrDuplicateID.
func (r *InMemoryRepository) Add(p Pet) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		for {
			if _, taken := r.ids[r.nextID]; !taken {
				break
			}
			r.nextID++
		}
		p.ID = r.nextID
	}
	if _, taken := r.ids[p.ID]; taken {
		return Pet{}, fmt.Errorf("failed to add pet %d: %w", p.ID, ErrDuplicateID)
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}

	r.ids[p.ID] = struct{}{}
	r.pets = append(r.pets, p)

	return p, nil
}

func (r *InMemoryRepository) ListPets(ctx context.Context) ([]Pet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]Pet, len(r.pets))
	copy(pets, r.pets)

	return pets, nil
}
