package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kasir/apperr"
	"kasir/model"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	cat := New()

	first, err := cat.Add(model.Product{Name: "Tea", Price: 8000, Cost: 3000})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	second, err := cat.Add(model.Product{Name: "Kopi", Price: 5000, Cost: 2000})
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	// A freed id is not reused: max existing + 1.
	require.True(t, cat.Delete(first.ID))
	third, err := cat.Add(model.Product{Name: "Susu", Price: 6000, Cost: 2500})
	require.NoError(t, err)
	require.Equal(t, int64(3), third.ID)
}

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name    string
		product model.Product
	}{
		{"empty name", model.Product{Price: 8000, Cost: 3000}},
		{"zero price", model.Product{Name: "Tea", Price: 0, Cost: 0}},
		{"negative price", model.Product{Name: "Tea", Price: -1, Cost: 0}},
		{"negative cost", model.Product{Name: "Tea", Price: 8000, Cost: -1}},
		{"price below cost", model.Product{Name: "Tea", Price: 2000, Cost: 3000}},
		{"unknown category", model.Product{Name: "Tea", Price: 8000, Cost: 3000, Category: "minuman"}},
		{"negative stock", model.Product{Name: "Tea", Price: 8000, Cost: 3000, Stock: model.IntPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := New()
			_, err := cat.Add(tc.product)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Empty(t, cat.List())
		})
	}
}

func TestUpdateMergesAndRevalidates(t *testing.T) {
	cat := New()
	p, err := cat.Add(model.Product{Name: "Tea", Price: 8000, Cost: 3000})
	require.NoError(t, err)

	updated, err := cat.Update(p.ID, model.ProductPatch{Price: model.IntPtr(9000)})
	require.NoError(t, err)
	require.Equal(t, int64(9000), updated.Price)
	require.Equal(t, "Tea", updated.Name)

	// A patch that breaks the combined invariant is rejected and the
	// stored product stays untouched.
	_, err = cat.Update(p.ID, model.ProductPatch{Price: model.IntPtr(1000)})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	current, _ := cat.Get(p.ID)
	require.Equal(t, int64(9000), current.Price)
}

func TestUpdateUnknownID(t *testing.T) {
	cat := New()
	_, err := cat.Update(42, model.ProductPatch{Price: model.IntPtr(1000)})
	var ne *apperr.NotFoundError
	require.ErrorAs(t, err, &ne)
}

func TestUpdateStockField(t *testing.T) {
	cat := New()
	p, err := cat.Add(model.Product{Name: "Tea", Price: 8000, Cost: 3000, Stock: model.IntPtr(10)})
	require.NoError(t, err)

	updated, err := cat.Update(p.ID, model.ProductPatch{Stock: model.IntPtr(25)})
	require.NoError(t, err)
	require.Equal(t, int64(25), *updated.Stock)

	unlimited, err := cat.Update(p.ID, model.ProductPatch{RemoveStock: true})
	require.NoError(t, err)
	require.Nil(t, unlimited.Stock)
}

func TestDelete(t *testing.T) {
	cat := New()
	p, err := cat.Add(model.Product{Name: "Tea", Price: 8000, Cost: 3000})
	require.NoError(t, err)

	require.True(t, cat.Delete(p.ID))
	require.False(t, cat.Delete(p.ID))
	_, found := cat.Get(p.ID)
	require.False(t, found)
}

func TestAdjustStock(t *testing.T) {
	cat := New()
	limited, err := cat.Add(model.Product{Name: "Tea", Price: 8000, Cost: 3000, Stock: model.IntPtr(10)})
	require.NoError(t, err)
	unlimited, err := cat.Add(model.Product{Name: "Kopi", Price: 5000, Cost: 2000})
	require.NoError(t, err)

	cat.AdjustStock(limited.ID, -3)
	stock, ok := cat.Available(limited.ID)
	require.True(t, ok)
	require.Equal(t, int64(7), stock)

	cat.AdjustStock(limited.ID, 3)
	stock, _ = cat.Available(limited.ID)
	require.Equal(t, int64(10), stock)

	// Unlimited-stock products and unknown ids are no-ops.
	cat.AdjustStock(unlimited.ID, -5)
	_, ok = cat.Available(unlimited.ID)
	require.False(t, ok)
	cat.AdjustStock(999, -5)
}

func TestGetReturnsCopy(t *testing.T) {
	cat := New()
	p, err := cat.Add(model.Product{Name: "Tea", Price: 8000, Cost: 3000, Stock: model.IntPtr(10)})
	require.NoError(t, err)

	got, _ := cat.Get(p.ID)
	got.Name = "Tampered"
	*got.Stock = 0

	fresh, _ := cat.Get(p.ID)
	require.Equal(t, "Tea", fresh.Name)
	require.Equal(t, int64(10), *fresh.Stock)
}
