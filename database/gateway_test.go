package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kasir/model"
)

func sampleState() *State {
	return &State{
		Products: []*model.Product{
			{ID: 1, Name: "Tea", Price: 8000, Cost: 3000, Category: model.CategorySatuan, Stock: model.IntPtr(10)},
			{ID: 2, Name: "Kopi", Price: 5000, Cost: 2000, Category: model.CategoryLainnya},
		},
		Transactions: []*model.Transaction{
			{
				ID: 1001, Date: "2026-08-30", Time: "14:30:05",
				Lines: []model.TransactionLine{
					{ProductID: 1, Name: "Tea", UnitPrice: 8000, UnitCost: 3000, Quantity: 2, Total: 16000, Profit: 10000},
				},
				Subtotal: 16000, Total: 16000, Profit: 10000,
			},
		},
		DailyStats: map[string]*model.DailyStats{
			"2026-08-30": {
				Revenue: 16000, Transactions: 1, ItemsSold: 2, Profit: 10000,
				Items: map[int64]*model.ProductStats{
					1: {Name: "Tea", Quantity: 2, Revenue: 16000, Profit: 10000},
				},
			},
		},
		Cart: []*model.CartLine{
			{ProductID: 2, Name: "Kopi", Price: 5000, Cost: 2000, Quantity: 1},
		},
		Settings:     model.DefaultSettings(),
		OrderCounter: 1002,
	}
}

func openTestGateway(t *testing.T) *SQLiteGateway {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "kasir_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gw, err := NewSQLiteGateway(db)
	require.NoError(t, err)
	return gw
}

func TestSQLiteLoadEmptyStore(t *testing.T) {
	gw := openTestGateway(t)

	state, err := gw.Load()
	require.NoError(t, err)
	require.Empty(t, state.Products)
	require.Empty(t, state.Transactions)
	require.NotNil(t, state.DailyStats)
	require.Empty(t, state.DailyStats)
	require.Nil(t, state.Settings)
	require.Zero(t, state.OrderCounter)
}

func TestSQLiteRoundTrip(t *testing.T) {
	gw := openTestGateway(t)
	want := sampleState()

	require.NoError(t, gw.Save(want))
	got, err := gw.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSQLiteSaveOverwritesPartitions(t *testing.T) {
	gw := openTestGateway(t)
	require.NoError(t, gw.Save(sampleState()))

	updated := sampleState()
	updated.Transactions = nil
	updated.DailyStats = map[string]*model.DailyStats{}
	updated.OrderCounter = 1002
	require.NoError(t, gw.Save(updated))

	got, err := gw.Load()
	require.NoError(t, err)
	require.Empty(t, got.Transactions)
	require.Empty(t, got.DailyStats)
	require.Equal(t, int64(1002), got.OrderCounter)
	require.Len(t, got.Products, 2)
}

func TestMemoryRoundTrip(t *testing.T) {
	gw := NewMemoryGateway()

	state, err := gw.Load()
	require.NoError(t, err)
	require.Empty(t, state.Products)

	want := sampleState()
	require.NoError(t, gw.Save(want))
	got, err := gw.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
