// Package store provides a concurrency-safe, generic, in-memory entity
// store keyed by integer identity.
//
// Identities are assigned from a monotonically increasing counter, never
// from the current number of entities, so deleting entities can never
// cause an identity to be reused. An entity with id 0 is considered to
// have no identity yet; Save assigns one on insert.
package store

import (
	"fmt"
	"sync"
)

// Entity is implemented by value types storable in a Store. WithEntityID
// returns a copy carrying the given identity; stored values are never
// mutated in place.
type Entity[T any] interface {
	EntityID() int
	WithEntityID(id int) T
}

type Store[T Entity[T]] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int
}

func New[T Entity[T]]() *Store[T] {
	return &Store[T]{
		items: make(map[int]T),
	}
}

// FindAll returns a snapshot of all entities in unspecified order.
func (s *Store[T]) FindAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]T, 0, len(s.items))
	for _, item := range s.items {
		all = append(all, item)
	}
	return all
}

// FindByID returns the entity with the given id, or nil if absent.
func (s *Store[T]) FindByID(id int) (*T, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Save inserts the entity under a newly assigned identity when its id is
// 0, or replaces the existing entry wholesale when its id is set. Saving
// under an id the store does not contain fails with ErrUnknownID.
func (s *Store[T]) Save(entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if id == 0 {
		s.nextID++
		entity = entity.WithEntityID(s.nextID)
		s.items[entity.EntityID()] = entity
		return entity, nil
	}

	if _, ok := s.items[id]; !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	s.items[id] = entity
	return entity, nil
}

// DeleteByID removes the entity if present. Deleting an absent id is a
// no-op; existence policy belongs to the caller.
func (s *Store[T]) DeleteByID(id int) error {
	if id < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

func (s *Store[T]) ExistsByID(id int) (bool, error) {
	if id < 1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok, nil
}

// Len returns the current number of entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
