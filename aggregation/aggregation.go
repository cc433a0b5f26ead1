// Package aggregation maintains the per-day sales rollups derived from
// the transaction ledger. Rollups are updated incrementally by symmetric
// Apply/Reverse calls; Recompute folds the full ledger and must always
// produce the identical state.
package aggregation

import (
	"sort"

	"kasir/apperr"
	"kasir/model"
)

type Aggregator struct {
	days map[string]*model.DailyStats
}

func New() *Aggregator {
	return &Aggregator{days: make(map[string]*model.DailyStats)}
}

// Restore replaces the incremental state with persisted rollups.
func (a *Aggregator) Restore(days map[string]*model.DailyStats) {
	a.days = make(map[string]*model.DailyStats, len(days))
	for date, d := range days {
		a.days[date] = d.Clone()
	}
}

// Snapshot returns deep copies of all day entries for persistence.
func (a *Aggregator) Snapshot() map[string]*model.DailyStats {
	out := make(map[string]*model.DailyStats, len(a.days))
	for date, d := range a.days {
		out[date] = d.Clone()
	}
	return out
}

// Apply adds a committed transaction's contribution to its date's
// rollup, creating the day entry and per-product entries lazily.
func (a *Aggregator) Apply(tx *model.Transaction) {
	day, ok := a.days[tx.Date]
	if !ok {
		day = model.NewDailyStats()
		a.days[tx.Date] = day
	}
	day.Revenue += tx.Total
	day.Transactions++
	day.Profit += tx.Profit
	for _, line := range tx.Lines {
		day.ItemsSold += line.Quantity
		ps, ok := day.Items[line.ProductID]
		if !ok {
			ps = &model.ProductStats{Name: line.Name}
			day.Items[line.ProductID] = ps
		}
		ps.Quantity += line.Quantity
		ps.Revenue += line.UnitPrice * line.Quantity
		ps.Profit += (line.UnitPrice - line.UnitCost) * line.Quantity
	}
}

// Reverse is the exact arithmetic inverse of Apply. It mutates nothing
// and returns a ConsistencyError if any aggregate would go negative;
// that signals a double reversal or corrupted state, never a user error.
// Entries that drop to zero are pruned so the incremental state stays
// identical to a fresh recompute.
func (a *Aggregator) Reverse(tx *model.Transaction) error {
	day, ok := a.days[tx.Date]
	if !ok {
		return apperr.Consistencyf("pembalikan transaksi %d: tidak ada statistik untuk tanggal %s", tx.ID, tx.Date)
	}
	if day.Revenue < tx.Total || day.Transactions < 1 || day.Profit < tx.Profit {
		return apperr.Consistencyf("pembalikan transaksi %d akan membuat statistik %s negatif", tx.ID, tx.Date)
	}
	for _, line := range tx.Lines {
		ps, ok := day.Items[line.ProductID]
		if !ok || day.ItemsSold < line.Quantity ||
			ps.Quantity < line.Quantity ||
			ps.Revenue < line.UnitPrice*line.Quantity ||
			ps.Profit < (line.UnitPrice-line.UnitCost)*line.Quantity {
			return apperr.Consistencyf("pembalikan transaksi %d akan membuat statistik produk %d negatif", tx.ID, line.ProductID)
		}
	}

	day.Revenue -= tx.Total
	day.Transactions--
	day.Profit -= tx.Profit
	for _, line := range tx.Lines {
		day.ItemsSold -= line.Quantity
		ps := day.Items[line.ProductID]
		ps.Quantity -= line.Quantity
		ps.Revenue -= line.UnitPrice * line.Quantity
		ps.Profit -= (line.UnitPrice - line.UnitCost) * line.Quantity
		if ps.Quantity == 0 && ps.Revenue == 0 && ps.Profit == 0 {
			delete(day.Items, line.ProductID)
		}
	}
	if day.IsZero() {
		delete(a.days, tx.Date)
	}
	return nil
}

// DailyStats returns a copy of the rollup for one date, or a zero-valued
// rollup when the date has no entry. Never nil.
func (a *Aggregator) DailyStats(date string) *model.DailyStats {
	if day, ok := a.days[date]; ok {
		return day.Clone()
	}
	return model.NewDailyStats()
}

// RangeStats folds the day entries in the closed interval [start, end]
// into a single rollup, merging per-product breakdowns by product id.
// Dates are ISO strings, so the comparison is lexicographic.
func (a *Aggregator) RangeStats(start, end string) *model.DailyStats {
	out := model.NewDailyStats()
	for date, day := range a.days {
		if date < start || date > end {
			continue
		}
		mergeInto(out, day)
	}
	return out
}

// BestSellers merges per-product breakdowns across [start, end] (empty
// strings mean all time) and returns the top limit rows sorted by
// quantity desc, revenue desc, then product id asc for determinism.
func (a *Aggregator) BestSellers(limit int, start, end string) []model.BestSeller {
	merged := make(map[int64]*model.ProductStats)
	for date, day := range a.days {
		if start != "" && date < start {
			continue
		}
		if end != "" && date > end {
			continue
		}
		for id, ps := range day.Items {
			m, ok := merged[id]
			if !ok {
				m = &model.ProductStats{Name: ps.Name}
				merged[id] = m
			}
			m.Quantity += ps.Quantity
			m.Revenue += ps.Revenue
			m.Profit += ps.Profit
		}
	}

	rows := make([]model.BestSeller, 0, len(merged))
	for id, ps := range merged {
		rows = append(rows, model.BestSeller{
			ProductID: id,
			Name:      ps.Name,
			Quantity:  ps.Quantity,
			Revenue:   ps.Revenue,
			Profit:    ps.Profit,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// ClearBefore drops all day entries strictly before cutoff (ISO date).
// Used by data retention cleanup together with the ledger's own pruning.
func (a *Aggregator) ClearBefore(cutoff string) int {
	removed := 0
	for date := range a.days {
		if date < cutoff {
			delete(a.days, date)
			removed++
		}
	}
	return removed
}

func mergeInto(dst, src *model.DailyStats) {
	dst.Revenue += src.Revenue
	dst.Transactions += src.Transactions
	dst.ItemsSold += src.ItemsSold
	dst.Profit += src.Profit
	for id, ps := range src.Items {
		d, ok := dst.Items[id]
		if !ok {
			d = &model.ProductStats{Name: ps.Name}
			dst.Items[id] = d
		}
		d.Quantity += ps.Quantity
		d.Revenue += ps.Revenue
		d.Profit += ps.Profit
	}
}
