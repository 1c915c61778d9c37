package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vamm99/moterplace/internal/cart"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/store"
)

func product(id string, price, discount float64, stock int) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Discount: discount,
		Stock:    stock,
		Status:   true,
	}
}

func newManager(t *testing.T) (*cart.Manager, store.Store) {
	t.Helper()

	s := store.NewMemoryStore()

	mgr, err := cart.NewManager(t.Context(), s, "visitor-1")
	require.NoError(t, err)

	return mgr, s
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New Item Appended", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)

		// Act
		err := mgr.AddItem(ctx, product("p1", 1000, 0, 10), 2)

		// Assert
		require.NoError(t, err)
		item, found := mgr.GetItem("p1")
		assert.True(t, found)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, 2, mgr.GetItemCount())
	})

	t.Run("Success - Existing Item Increments Quantity", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 2))

		// Act
		err := mgr.AddItem(ctx, product("p1", 1000, 0, 10), 3)

		// Assert
		require.NoError(t, err)
		assert.Len(t, mgr.Items(), 1, "cart must hold at most one entry per product")
		item, _ := mgr.GetItem("p1")
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("Success - Quantity Below One Counts As One", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)

		// Act
		err := mgr.AddItem(ctx, product("p1", 1000, 0, 10), 0)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, mgr.GetItemCount())
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Sets Quantity Verbatim", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 1))

		// Act
		err := mgr.UpdateQuantity(ctx, "p1", 7)

		// Assert
		require.NoError(t, err)
		item, _ := mgr.GetItem("p1")
		assert.Equal(t, 7, item.Quantity)
	})

	t.Run("Success - Zero Removes The Item", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 3))

		// Act
		err := mgr.UpdateQuantity(ctx, "p1", 0)

		// Assert
		require.NoError(t, err)
		_, found := mgr.GetItem("p1")
		assert.False(t, found, "item must be reported absent after updating to zero")
		assert.Equal(t, 0, mgr.GetItemCount())
	})

	t.Run("Success - Unknown Id Is A No-Op", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 3))

		// Act
		err := mgr.UpdateQuantity(ctx, "missing", 4)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, mgr.GetItemCount())
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Removes Existing Entry", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 1))
		require.NoError(t, mgr.AddItem(ctx, product("p2", 2000, 0, 10), 2))

		// Act
		err := mgr.RemoveItem(ctx, "p1")

		// Assert
		require.NoError(t, err)
		_, found := mgr.GetItem("p1")
		assert.False(t, found)
		assert.Equal(t, 2, mgr.GetItemCount())
	})

	t.Run("Success - Absent Id Is A No-Op", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 1))

		// Act
		err := mgr.RemoveItem(ctx, "missing")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, mgr.GetItemCount())
	})
}

func TestGetTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Discounted Unit Price", func(t *testing.T) {
		// Arrange: price 100000 with 20% off, quantity 3
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 100000, 20, 10), 3))

		// Act & Assert
		assert.InDelta(t, 240000, mgr.GetTotal(), 0.001)
	})

	t.Run("Success - No Discount Uses List Price", func(t *testing.T) {
		// Arrange
		mgr, _ := newManager(t)
		require.NoError(t, mgr.AddItem(ctx, product("p1", 1500, 0, 10), 2))

		// Act & Assert
		assert.InDelta(t, 3000, mgr.GetTotal(), 0.001)
	})

	t.Run("Success - Invariant Under Remove And Re-Add", func(t *testing.T) {
		// Arrange
		direct, _ := newManager(t)
		require.NoError(t, direct.AddItem(ctx, product("p1", 100000, 20, 10), 3))

		roundabout, _ := newManager(t)
		require.NoError(t, roundabout.AddItem(ctx, product("p1", 100000, 20, 10), 3))
		require.NoError(t, roundabout.RemoveItem(ctx, "p1"))
		require.NoError(t, roundabout.AddItem(ctx, product("p1", 100000, 20, 10), 3))

		// Act & Assert
		assert.InDelta(t, direct.GetTotal(), roundabout.GetTotal(), 0.001)
	})
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()

	// Arrange
	mgr, _ := newManager(t)
	require.NoError(t, mgr.AddItem(ctx, product("p1", 1000, 0, 10), 1))
	require.NoError(t, mgr.AddItem(ctx, product("p2", 2000, 0, 10), 2))

	// Act
	err := mgr.ClearCart(ctx)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, mgr.Items())
	assert.Equal(t, 0, mgr.GetItemCount())
	assert.Zero(t, mgr.GetTotal())
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - State Survives A Restart", func(t *testing.T) {
		// Arrange
		s := store.NewMemoryStore()
		first, err := cart.NewManager(ctx, s, "visitor-1")
		require.NoError(t, err)
		require.NoError(t, first.AddItem(ctx, product("p1", 100000, 20, 10), 3))

		// Act: a fresh manager over the same store, same visitor
		second, err := cart.NewManager(ctx, s, "visitor-1")
		require.NoError(t, err)

		// Assert
		item, found := second.GetItem("p1")
		assert.True(t, found)
		assert.Equal(t, 3, item.Quantity)
		assert.InDelta(t, 240000, second.GetTotal(), 0.001)
	})

	t.Run("Success - Visitors Are Isolated", func(t *testing.T) {
		// Arrange
		s := store.NewMemoryStore()
		first, err := cart.NewManager(ctx, s, "visitor-1")
		require.NoError(t, err)
		require.NoError(t, first.AddItem(ctx, product("p1", 1000, 0, 10), 1))

		// Act
		other, err := cart.NewManager(ctx, s, "visitor-2")
		require.NoError(t, err)

		// Assert
		assert.Empty(t, other.Items())
	})
}

func TestView(t *testing.T) {
	ctx := context.Background()

	// Arrange
	mgr, _ := newManager(t)
	require.NoError(t, mgr.AddItem(ctx, product("p1", 100000, 20, 10), 3))
	require.NoError(t, mgr.AddItem(ctx, product("p2", 500, 0, 10), 2))

	// Act
	view := mgr.View()

	// Assert
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 5, view.ItemCount)
	assert.InDelta(t, 241000, view.Total, 0.001)
}
