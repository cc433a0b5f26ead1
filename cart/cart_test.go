package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kasir/apperr"
	"kasir/model"
)

func tea(stock *int64) *model.Product {
	return &model.Product{ID: 1, Name: "Tea", Price: 8000, Cost: 3000, Stock: stock}
}

func TestAddLineMergesByProduct(t *testing.T) {
	c := New()
	require.NoError(t, c.AddLine(tea(nil), 1))
	require.NoError(t, c.AddLine(tea(nil), 2))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(3), lines[0].Quantity)
	require.Equal(t, int64(3), c.ItemCount())
}

func TestAddLineSnapshotsProduct(t *testing.T) {
	c := New()
	p := tea(nil)
	require.NoError(t, c.AddLine(p, 1))

	// A later price change on the product must not leak into the line.
	p.Price = 9999
	p.Name = "Kopi"

	lines := c.Lines()
	require.Equal(t, "Tea", lines[0].Name)
	require.Equal(t, int64(8000), lines[0].Price)
	require.Equal(t, int64(3000), lines[0].Cost)
}

func TestAddLineRejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	err := c.AddLine(tea(nil), 0)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	require.True(t, c.Empty())
}

func TestAddLineBlocksOversell(t *testing.T) {
	c := New()
	p := tea(model.IntPtr(5))
	require.NoError(t, c.AddLine(p, 3))

	// The cumulative staged quantity counts against the stock.
	err := c.AddLine(p, 3)
	var se *apperr.InsufficientStockError
	require.ErrorAs(t, err, &se)
	require.Equal(t, int64(6), se.Requested)
	require.Equal(t, int64(5), se.Available)
	require.Equal(t, int64(3), c.ItemCount())

	require.NoError(t, c.AddLine(p, 2))
	require.Equal(t, int64(5), c.ItemCount())
}

func TestSetQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.AddLine(tea(nil), 2))

	require.NoError(t, c.SetQuantity(1, 7))
	require.Equal(t, int64(7), c.Lines()[0].Quantity)

	// Zero or negative removes the line.
	require.NoError(t, c.SetQuantity(1, 0))
	require.True(t, c.Empty())

	err := c.SetQuantity(1, 3)
	var ne *apperr.NotFoundError
	require.ErrorAs(t, err, &ne)
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddLine(tea(nil), 1))
	require.NoError(t, c.AddLine(&model.Product{ID: 2, Name: "Kopi", Price: 5000, Cost: 2000}, 1))

	require.True(t, c.RemoveLine(1))
	require.False(t, c.RemoveLine(1))
	require.Len(t, c.Lines(), 1)

	c.Clear()
	require.True(t, c.Empty())
}

func TestTotals(t *testing.T) {
	c := New()
	require.NoError(t, c.AddLine(tea(nil), 2))
	require.NoError(t, c.AddLine(&model.Product{ID: 2, Name: "Kopi", Price: 5000, Cost: 2000}, 3))

	require.Equal(t, int64(2*8000+3*5000), c.Subtotal())
	require.Equal(t, int64(2*5000+3*3000), c.EstimatedProfit())
}

func TestRestoreReplacesLines(t *testing.T) {
	c := New()
	require.NoError(t, c.AddLine(tea(nil), 1))

	c.Restore([]*model.CartLine{
		{ProductID: 9, Name: "Gyoza", Price: 2000, Cost: 1000, Quantity: 4},
	})
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(9), lines[0].ProductID)
	require.Equal(t, int64(4), lines[0].Quantity)
}
