// Package wishlist holds the client-persisted set of saved products, unique
// by product id, persisted through the same store discipline as the cart.
package wishlist

import (
	"context"
	"sync"
	"time"

	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/store"
)

const Namespace = "wishlist:"

type Manager struct {
	mu    sync.Mutex
	store store.Store
	key   string
	items []models.WishlistItem
}

func NewManager(ctx context.Context, s store.Store, visitorID string) (*Manager, error) {

	m := &Manager{
		store: s,
		key:   Namespace + visitorID,
	}

	var items []models.WishlistItem

	found, err := s.Load(ctx, m.key, &items)
	if err != nil {
		return nil, err
	}

	if found {
		m.items = items
	}

	return m, nil
}

// AddItem is idempotent: a product already saved keeps its original entry
// and timestamp.
func (m *Manager) AddItem(ctx context.Context, product models.Product) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].Product.ID == product.ID {
			return nil
		}
	}

	m.items = append(m.items, models.WishlistItem{Product: product, AddedAt: time.Now()})

	return m.store.Save(ctx, m.key, m.items)
}

func (m *Manager) RemoveItem(ctx context.Context, productID string) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].Product.ID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)

			break
		}
	}

	return m.store.Save(ctx, m.key, m.items)
}

func (m *Manager) IsInWishlist(productID string) bool {

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].Product.ID == productID {
			return true
		}
	}

	return false
}

func (m *Manager) ClearWishlist(ctx context.Context) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil

	return m.store.Save(ctx, m.key, m.items)
}

func (m *Manager) Items() []models.WishlistItem {

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]models.WishlistItem, len(m.items))
	copy(items, m.items)

	return items
}

func (m *Manager) View() models.Wishlist {
	return models.Wishlist{Items: m.Items()}
}
