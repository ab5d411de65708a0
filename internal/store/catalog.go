package store

import (
	"sync"

	"shop-api/internal/models"
)

// ItemFilter is a caller-supplied predicate applied during listing.
// Deleted-visibility is the predicate's job: the store itself never
// filters on the soft-delete flag.
type ItemFilter func(models.Item) bool

// Catalog owns the item collection. IDs are dense and strictly
// increasing from 0; soft-deleted items keep their row and id forever.
//
// The lock is shared with the cart store (see NewCarts) so that a
// delete and its availability propagation form one atomic unit.
type Catalog struct {
	mu     *sync.RWMutex
	items  map[int]*models.Item
	nextID int
	carts  *Carts
}

func NewCatalog() *Catalog {
	return &Catalog{
		mu:    &sync.RWMutex{},
		items: make(map[int]*models.Item),
	}
}

// Create assigns the next id and stores the item. Always succeeds.
func (s *Catalog) Create(name string, price float64, deleted bool) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := &models.Item{
		ID:      s.nextID,
		Name:    name,
		Price:   price,
		Deleted: deleted,
	}
	s.items[item.ID] = item
	s.nextID++

	return *item
}

// Get returns the stored item regardless of its deleted state; callers
// wanting "visible" semantics check the flag themselves.
func (s *Catalog) Get(id int) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	return *item, nil
}

// Replace overwrites every mutable field, including the deleted flag.
// This is the only operation that can un-delete an item.
func (s *Catalog) Replace(id int, name string, price float64, deleted bool) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}

	item.Name = name
	item.Price = price
	item.Deleted = deleted

	return *item, nil
}

// Patch overwrites only the supplied fields. A patch against a deleted
// item is rejected with ErrItemDeleted before any field is touched.
func (s *Catalog) Patch(id int, patch models.ItemPatch) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	if item.Deleted {
		return models.Item{}, ErrItemDeleted
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}

	return *item, nil
}

// Delete marks the item deleted and flips availability on every cart
// line referencing it, under one critical section. Returns false only
// for unknown ids; deleting an already-deleted item reports true again.
func (s *Catalog) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return false
	}

	item.Deleted = true
	if s.carts != nil {
		s.carts.propagateDeletion(id)
	}
	return true
}

// List walks items in ascending id order, skips the first offset
// matches of the predicate and returns up to limit further matches.
// Ids are dense, so the walk is over the id range rather than map keys.
func (s *Catalog) List(offset, limit int, match ItemFilter) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Item, 0, limit)
	skipped := 0
	for id := 0; id < s.nextID; id++ {
		item := s.items[id]
		if match != nil && !match(*item) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		items = append(items, *item)
		if len(items) == limit {
			break
		}
	}

	return items
}
