package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"stracing_back_end/internal/models"
)

func item(id int, price string, qty int, size string) models.LineItem {
	return models.LineItem{
		ProductID: id,
		Name:      "Test Majica",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
		Size:      size,
	}
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 2, "M"))
	s.AddItem(item(1, "35", 3, "M"))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddItemDifferentSizeDoesNotMerge(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 1, "M"))
	s.AddItem(item(1, "35", 1, "L"))

	require.Len(t, s.Items(), 2)
}

func TestTotalsFollowMutations(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 2, "M"))
	s.AddItem(item(2, "19.90", 1, "L"))

	totals := s.Totals()
	require.Equal(t, 3, totals.TotalItems)
	require.Equal(t, "89.90", totals.TotalPrice.StringFixed(2))

	s.UpdateQuantity(2, 4)
	totals = s.Totals()
	require.Equal(t, 6, totals.TotalItems)
	require.Equal(t, "149.60", totals.TotalPrice.StringFixed(2))

	s.RemoveItem(1)
	totals = s.Totals()
	require.Equal(t, 4, totals.TotalItems)
	require.Equal(t, "79.60", totals.TotalPrice.StringFixed(2))
}

func TestRemoveItemRemovesAllSizes(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 1, "M"))
	s.AddItem(item(1, "35", 1, "L"))
	s.AddItem(item(2, "40", 1, "M"))

	s.RemoveItem(1)

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].ProductID)
}

func TestRemoveMissingItemIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 2, "M"))

	s.RemoveItem(99)

	require.Len(t, s.Items(), 1)
	require.Equal(t, 2, s.Totals().TotalItems)
}

func TestUpdateQuantityAppliesToAllSizes(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 1, "M"))
	s.AddItem(item(1, "35", 5, "L"))

	s.UpdateQuantity(1, 2)

	for _, it := range s.Items() {
		require.Equal(t, 2, it.Quantity)
	}
}

func TestClearEmptiesStore(t *testing.T) {
	s := NewStore()
	s.AddItem(item(1, "35", 2, "M"))

	s.Clear()

	require.Empty(t, s.Items())
	require.Equal(t, 0, s.Totals().TotalItems)
	require.True(t, s.Totals().TotalPrice.IsZero())
}

func TestManagerScopesCartsPerSession(t *testing.T) {
	m := NewManager()
	m.Get("sesija-a").AddItem(item(1, "35", 1, "M"))

	require.Empty(t, m.Get("sesija-b").Items())
	require.Len(t, m.Get("sesija-a").Items(), 1)

	m.Drop("sesija-a")
	require.Empty(t, m.Get("sesija-a").Items())
}
