package store

import (
	"sync"

	"shop-api/internal/models"
)

// CartFilter is a caller-supplied predicate applied during listing,
// typically over total price and aggregate quantity bounds.
type CartFilter func(models.Cart) bool

// Carts owns the cart collection. Line items are snapshots copied from
// the catalog at add time, not live references; the catalog is only
// consulted when a new line is created.
type Carts struct {
	mu      *sync.RWMutex
	catalog *Catalog
	carts   map[int]*models.Cart
	nextID  int
}

// NewCarts wires the cart store to the catalog it snapshots from. Both
// stores share the catalog's lock, so a catalog delete and its
// propagation into cart lines are indivisible to every reader.
func NewCarts(catalog *Catalog) *Carts {
	c := &Carts{
		mu:      catalog.mu,
		catalog: catalog,
		carts:   make(map[int]*models.Cart),
	}
	catalog.carts = c
	return c
}

// Create assigns the next id and stores an empty cart. Always succeeds.
func (s *Carts) Create() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &models.Cart{
		ID:    s.nextID,
		Items: []models.CartLineItem{},
	}
	s.carts[cart.ID] = cart
	s.nextID++

	return copyCart(cart)
}

func (s *Carts) Get(id int) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[id]
	if !ok {
		return models.Cart{}, ErrCartNotFound
	}
	return copyCart(cart), nil
}

// AddItem merges the item into the cart: an existing line gains
// quantity, otherwise a new snapshot line is appended. A deleted item
// is still addable and yields an unavailable line. The cart total
// grows by the line's copy-time unit price either way.
func (s *Carts) AddItem(cartID, itemID int) (models.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return models.CartLineItem{}, ErrCartNotFound
	}

	for i := range cart.Items {
		if cart.Items[i].ItemID == itemID {
			cart.Items[i].Quantity++
			cart.TotalPrice += cart.Items[i].UnitPrice
			return cart.Items[i], nil
		}
	}

	// Same lock as the catalog, so this read is safe here.
	item, ok := s.catalog.items[itemID]
	if !ok {
		return models.CartLineItem{}, ErrItemNotFound
	}

	line := models.CartLineItem{
		ItemID:    itemID,
		Name:      item.Name,
		Quantity:  1,
		Available: !item.Deleted,
		UnitPrice: item.Price,
	}
	cart.Items = append(cart.Items, line)
	cart.TotalPrice += line.UnitPrice

	return line, nil
}

// List walks carts in ascending id order with the same offset/limit
// contract as the catalog's List.
func (s *Carts) List(offset, limit int, match CartFilter) []models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	carts := make([]models.Cart, 0, limit)
	skipped := 0
	for id := 0; id < s.nextID; id++ {
		cart := s.carts[id]
		if match != nil && !match(*cart) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		carts = append(carts, copyCart(cart))
		if len(carts) == limit {
			break
		}
	}

	return carts
}

// propagateDeletion flips availability on every line referencing the
// item. Quantity and the line itself stay. The caller (Catalog.Delete)
// holds the shared write lock.
func (s *Carts) propagateDeletion(itemID int) {
	for _, cart := range s.carts {
		for i := range cart.Items {
			if cart.Items[i].ItemID == itemID {
				cart.Items[i].Available = false
			}
		}
	}
}

// copyCart returns a cart value with its own line slice, so callers
// never alias store-owned state.
func copyCart(cart *models.Cart) models.Cart {
	out := *cart
	out.Items = make([]models.CartLineItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}
