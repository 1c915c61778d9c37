// Package cart holds the client-persisted cart state: an ordered list of
// product+quantity pairs, unique by product id, written through a store
// adapter on every mutation. The engine performs no stock checks; callers
// reject quantities above stock before reaching it.
package cart

import (
	"context"
	"sync"

	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/store"
)

// Namespace prefixes every cart key in the store.
const Namespace = "cart:"

type Manager struct {
	mu    sync.Mutex
	store store.Store
	key   string
	items []models.CartItem
}

// NewManager loads the visitor's persisted cart, or starts empty when none
// exists yet.
func NewManager(ctx context.Context, s store.Store, visitorID string) (*Manager, error) {

	m := &Manager{
		store: s,
		key:   Namespace + visitorID,
	}

	var items []models.CartItem

	found, err := s.Load(ctx, m.key, &items)
	if err != nil {
		return nil, err
	}

	if found {
		m.items = items
	}

	return m, nil
}

// AddItem merges into an existing entry by incrementing its quantity, or
// appends a new one. Quantities below one count as one.
func (m *Manager) AddItem(ctx context.Context, product models.Product, quantity int) error {

	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	merged := false

	for i := range m.items {
		if m.items[i].Product.ID == product.ID {
			m.items[i].Quantity += quantity
			// refresh the snapshot so totals follow current prices
			m.items[i].Product = product
			merged = true

			break
		}
	}

	if !merged {
		m.items = append(m.items, models.CartItem{Product: product, Quantity: quantity})
	}

	return m.persist(ctx)
}

// RemoveItem deletes the entry; absent ids are a no-op.
func (m *Manager) RemoveItem(ctx context.Context, productID string) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(productID)

	return m.persist(ctx)
}

// UpdateQuantity sets the entry's quantity verbatim. Zero or negative
// removes the entry.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(productID)

		return m.persist(ctx)
	}

	for i := range m.items {
		if m.items[i].Product.ID == productID {
			m.items[i].Quantity = quantity

			break
		}
	}

	return m.persist(ctx)
}

func (m *Manager) ClearCart(ctx context.Context) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil

	return m.persist(ctx)
}

// GetTotal recomputes from the product snapshots held in the items; there is
// no cached total anywhere.
func (m *Manager) GetTotal() float64 {

	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64

	for i := range m.items {
		total += m.items[i].Product.EffectivePrice() * float64(m.items[i].Quantity)
	}

	return total
}

// GetItemCount is the sum of quantities, not the number of distinct
// products.
func (m *Manager) GetItemCount() int {

	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0

	for i := range m.items {
		count += m.items[i].Quantity
	}

	return count
}

func (m *Manager) GetItem(productID string) (models.CartItem, bool) {

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].Product.ID == productID {
			return m.items[i], true
		}
	}

	return models.CartItem{}, false
}

func (m *Manager) Items() []models.CartItem {

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]models.CartItem, len(m.items))
	copy(items, m.items)

	return items
}

// View assembles the cart projection the presentation layer renders.
func (m *Manager) View() models.Cart {

	m.mu.Lock()

	items := make([]models.CartItem, len(m.items))
	copy(items, m.items)

	var total float64

	count := 0

	for i := range m.items {
		total += m.items[i].Product.EffectivePrice() * float64(m.items[i].Quantity)
		count += m.items[i].Quantity
	}

	m.mu.Unlock()

	return models.Cart{Items: items, Total: total, ItemCount: count}
}

func (m *Manager) removeLocked(productID string) {
	for i := range m.items {
		if m.items[i].Product.ID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)

			return
		}
	}
}

// persist writes the full item list under the visitor's key. Callers hold
// the lock.
func (m *Manager) persist(ctx context.Context) error {
	return m.store.Save(ctx, m.key, m.items)
}
