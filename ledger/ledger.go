// Package ledger is the append-only (with explicit delete) store of
// finalized transactions. Commit and Delete are the only two mutation
// paths, and each one keeps the catalog's stock and the aggregation
// rollups in lockstep with the transaction list.
package ledger

import (
	"time"

	"kasir/aggregation"
	"kasir/apperr"
	"kasir/cart"
	"kasir/catalog"
	"kasir/model"
)

// Order ids start above this value so they read like receipt numbers.
// The counter is persisted and never reused, even after deletes.
const initialCounter = 1000

type Ledger struct {
	catalog      *catalog.Catalog
	stats        *aggregation.Aggregator
	transactions []*model.Transaction
	nextID       int64
}

func New(cat *catalog.Catalog, stats *aggregation.Aggregator) *Ledger {
	return &Ledger{
		catalog: cat,
		stats:   stats,
		nextID:  initialCounter,
	}
}

// Restore replaces the ledger contents with persisted state. A zero
// counter (fresh install) falls back to the initial value.
func (l *Ledger) Restore(transactions []*model.Transaction, counter int64) {
	l.transactions = l.transactions[:0]
	for _, tx := range transactions {
		l.transactions = append(l.transactions, tx.Clone())
	}
	if counter < initialCounter {
		counter = initialCounter
	}
	l.nextID = counter
}

// Counter exposes the next order id for persistence.
func (l *Ledger) Counter() int64 {
	return l.nextID
}

// Commit finalizes the cart into an immutable transaction: it validates
// every line, freezes the cart's price/cost/name snapshots, decrements
// stock, applies the aggregation rollup and clears the cart. Validation
// happens up front so a failed commit leaves no partial effects.
func (l *Ledger) Commit(c *cart.Cart, now time.Time) (*model.Transaction, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, &apperr.EmptyCartError{}
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, apperr.Validationf("jumlah %s harus lebih dari 0", line.Name)
		}
		if avail, limited := l.catalog.Available(line.ProductID); limited && line.Quantity > avail {
			return nil, &apperr.InsufficientStockError{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: avail,
			}
		}
	}

	tx := &model.Transaction{
		ID:   l.nextID,
		Date: now.Format("2006-01-02"),
		Time: now.Format("15:04:05"),
	}
	for _, line := range lines {
		frozen := model.TransactionLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.Price,
			UnitCost:  line.Cost,
			Quantity:  line.Quantity,
			Total:     line.Price * line.Quantity,
			Profit:    (line.Price - line.Cost) * line.Quantity,
		}
		tx.Lines = append(tx.Lines, frozen)
		tx.Subtotal += frozen.Total
		tx.Profit += frozen.Profit
	}
	// No tax or discount is modeled yet, so total equals subtotal.
	tx.Total = tx.Subtotal

	for _, line := range tx.Lines {
		l.catalog.AdjustStock(line.ProductID, -line.Quantity)
	}
	l.stats.Apply(tx)
	l.transactions = append(l.transactions, tx)
	l.nextID++
	c.Clear()
	return tx.Clone(), nil
}

// Delete reverses and removes a transaction. Unknown or already-deleted
// ids return (false, nil): a second delete must be a no-op, never a
// double reversal. The rollup is reversed before any other effect, so a
// ConsistencyError aborts the delete with nothing changed.
func (l *Ledger) Delete(id int64) (bool, error) {
	idx := -1
	for i, tx := range l.transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	tx := l.transactions[idx]
	if err := l.stats.Reverse(tx); err != nil {
		return false, err
	}
	for _, line := range tx.Lines {
		l.catalog.AdjustStock(line.ProductID, line.Quantity)
	}
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	return true, nil
}

func (l *Ledger) GetByID(id int64) (*model.Transaction, error) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx.Clone(), nil
		}
	}
	return nil, &apperr.NotFoundError{Entity: "transaksi", ID: id}
}

// ListAll returns all transactions in insertion order. Display ordering
// (newest first etc.) is the caller's concern.
func (l *Ledger) ListAll() []*model.Transaction {
	out := make([]*model.Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		out = append(out, tx.Clone())
	}
	return out
}

func (l *Ledger) ListByDate(date string) []*model.Transaction {
	return l.ListByRange(date, date)
}

// ListByRange returns transactions whose date falls in the closed
// interval [start, end], in insertion order.
func (l *Ledger) ListByRange(start, end string) []*model.Transaction {
	var out []*model.Transaction
	for _, tx := range l.transactions {
		if tx.Date >= start && tx.Date <= end {
			out = append(out, tx.Clone())
		}
	}
	return out
}

// ClearBefore drops transactions dated strictly before cutoff without
// reversing their rollups; the caller prunes the matching day entries.
// This is the retention path, not a correction path.
func (l *Ledger) ClearBefore(cutoff string) int {
	kept := l.transactions[:0]
	removed := 0
	for _, tx := range l.transactions {
		if tx.Date < cutoff {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	l.transactions = kept
	return removed
}
