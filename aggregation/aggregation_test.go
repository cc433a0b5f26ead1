package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kasir/apperr"
	"kasir/model"
)

func makeTx(id int64, date string, lines ...model.TransactionLine) *model.Transaction {
	tx := &model.Transaction{ID: id, Date: date, Time: "10:00:00"}
	for i := range lines {
		lines[i].Total = lines[i].UnitPrice * lines[i].Quantity
		lines[i].Profit = (lines[i].UnitPrice - lines[i].UnitCost) * lines[i].Quantity
		tx.Lines = append(tx.Lines, lines[i])
		tx.Subtotal += lines[i].Total
		tx.Profit += lines[i].Profit
	}
	tx.Total = tx.Subtotal
	return tx
}

func teaLine(qty int64) model.TransactionLine {
	return model.TransactionLine{ProductID: 1, Name: "Tea", UnitPrice: 8000, UnitCost: 3000, Quantity: qty}
}

func TestApplyCreatesDayLazily(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-08-30", teaLine(2)))

	day := agg.DailyStats("2026-08-30")
	require.Equal(t, int64(16000), day.Revenue)
	require.Equal(t, int64(1), day.Transactions)
	require.Equal(t, int64(2), day.ItemsSold)
	require.Equal(t, int64(10000), day.Profit)
	require.Equal(t, int64(2), day.Items[1].Quantity)
	require.Equal(t, int64(16000), day.Items[1].Revenue)
	require.Equal(t, int64(10000), day.Items[1].Profit)
}

func TestApplyAccumulatesSameDay(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-08-30", model.TransactionLine{ProductID: 1, Name: "A", UnitPrice: 5000, UnitCost: 2000, Quantity: 1}))
	agg.Apply(makeTx(1002, "2026-08-30", model.TransactionLine{ProductID: 2, Name: "B", UnitPrice: 7000, UnitCost: 3000, Quantity: 1}))

	day := agg.DailyStats("2026-08-30")
	require.Equal(t, int64(12000), day.Revenue)
	require.Equal(t, int64(2), day.Transactions)
}

func TestReverseIsExactInverse(t *testing.T) {
	agg := New()
	keep := makeTx(1001, "2026-08-30", teaLine(3))
	victim := makeTx(1002, "2026-08-30", teaLine(2),
		model.TransactionLine{ProductID: 2, Name: "Gyoza", UnitPrice: 2000, UnitCost: 1000, Quantity: 5})

	agg.Apply(keep)
	before := agg.DailyStats("2026-08-30")

	agg.Apply(victim)
	require.NoError(t, agg.Reverse(victim))

	require.Equal(t, before, agg.DailyStats("2026-08-30"))
}

func TestReverseLastTransactionPrunesDay(t *testing.T) {
	agg := New()
	tx := makeTx(1001, "2026-08-30", teaLine(2))
	agg.Apply(tx)
	require.NoError(t, agg.Reverse(tx))

	require.Empty(t, agg.Snapshot())
	day := agg.DailyStats("2026-08-30")
	require.True(t, day.IsZero())
	require.NotNil(t, day.Items)
}

func TestDoubleReverseIsConsistencyError(t *testing.T) {
	agg := New()
	tx := makeTx(1001, "2026-08-30", teaLine(2))
	agg.Apply(tx)
	require.NoError(t, agg.Reverse(tx))

	err := agg.Reverse(tx)
	var ce *apperr.ConsistencyError
	require.ErrorAs(t, err, &ce)
}

func TestReverseFailureMutatesNothing(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-08-30", teaLine(1)))
	before := agg.Snapshot()

	// Reversing a larger transaction than was ever applied must fail
	// without touching the state.
	err := agg.Reverse(makeTx(1002, "2026-08-30", teaLine(5)))
	var ce *apperr.ConsistencyError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, before, agg.Snapshot())
}

func TestDailyStatsZeroValuedWhenAbsent(t *testing.T) {
	agg := New()
	day := agg.DailyStats("1999-01-01")
	require.NotNil(t, day)
	require.True(t, day.IsZero())
}

func TestRangeStatsFoldsClosedInterval(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-08-01", teaLine(1)))
	agg.Apply(makeTx(1002, "2026-08-15", teaLine(2)))
	agg.Apply(makeTx(1003, "2026-08-31", teaLine(3)))
	agg.Apply(makeTx(1004, "2026-09-01", teaLine(10)))

	got := agg.RangeStats("2026-08-01", "2026-08-31")
	require.Equal(t, int64(6*8000), got.Revenue)
	require.Equal(t, int64(3), got.Transactions)
	require.Equal(t, int64(6), got.ItemsSold)
	require.Equal(t, int64(6), got.Items[1].Quantity)
}

func TestBestSellersOrderingAndTies(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-08-30",
		model.TransactionLine{ProductID: 1, Name: "A", UnitPrice: 1000, UnitCost: 500, Quantity: 5},
		model.TransactionLine{ProductID: 2, Name: "B", UnitPrice: 1000, UnitCost: 500, Quantity: 3},
		// C ties with B on quantity but earns more revenue.
		model.TransactionLine{ProductID: 3, Name: "C", UnitPrice: 2000, UnitCost: 500, Quantity: 3},
		// D ties with B on everything; lower id wins.
		model.TransactionLine{ProductID: 4, Name: "D", UnitPrice: 1000, UnitCost: 500, Quantity: 3},
	))

	rows := agg.BestSellers(10, "", "")
	require.Len(t, rows, 4)
	require.Equal(t, int64(1), rows[0].ProductID)
	require.Equal(t, int64(3), rows[1].ProductID)
	require.Equal(t, int64(2), rows[2].ProductID)
	require.Equal(t, int64(4), rows[3].ProductID)

	top := agg.BestSellers(1, "", "")
	require.Len(t, top, 1)
	require.Equal(t, "A", top[0].Name)
}

func TestBestSellersRespectsRange(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-08-01",
		model.TransactionLine{ProductID: 1, Name: "A", UnitPrice: 1000, UnitCost: 500, Quantity: 5}))
	agg.Apply(makeTx(1002, "2026-08-20",
		model.TransactionLine{ProductID: 2, Name: "B", UnitPrice: 1000, UnitCost: 500, Quantity: 3}))

	rows := agg.BestSellers(5, "2026-08-10", "2026-08-31")
	require.Len(t, rows, 1)
	require.Equal(t, int64(2), rows[0].ProductID)
}

func TestRecomputeMatchesIncremental(t *testing.T) {
	agg := New()
	txs := []*model.Transaction{
		makeTx(1001, "2026-08-28", teaLine(2)),
		makeTx(1002, "2026-08-28",
			model.TransactionLine{ProductID: 2, Name: "Gyoza", UnitPrice: 2000, UnitCost: 1000, Quantity: 5}),
		makeTx(1003, "2026-08-29", teaLine(1)),
		makeTx(1004, "2026-08-30", teaLine(4)),
	}
	for _, tx := range txs {
		agg.Apply(tx)
	}
	// Delete one mid-sequence; recompute over the remaining three.
	require.NoError(t, agg.Reverse(txs[1]))
	remaining := []*model.Transaction{txs[0], txs[2], txs[3]}

	require.Equal(t, Recompute(remaining), agg.Snapshot())
	require.NoError(t, agg.Verify(remaining))
}

func TestVerifyDetectsDrift(t *testing.T) {
	agg := New()
	tx := makeTx(1001, "2026-08-30", teaLine(2))
	agg.Apply(tx)

	// Tamper with the incremental state behind the aggregator's back.
	tampered := agg.Snapshot()
	tampered["2026-08-30"].Revenue += 1
	agg.Restore(tampered)

	err := agg.Verify([]*model.Transaction{tx})
	var ce *apperr.ConsistencyError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Message, "2026-08-30")
}

func TestClearBefore(t *testing.T) {
	agg := New()
	agg.Apply(makeTx(1001, "2026-05-01", teaLine(1)))
	agg.Apply(makeTx(1002, "2026-08-30", teaLine(1)))

	removed := agg.ClearBefore("2026-06-01")
	require.Equal(t, 1, removed)
	require.True(t, agg.DailyStats("2026-05-01").IsZero())
	require.False(t, agg.DailyStats("2026-08-30").IsZero())
}
