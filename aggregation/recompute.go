package aggregation

import (
	"fmt"
	"sort"
	"strings"

	"kasir/apperr"
	"kasir/model"
)

// Recompute folds every transaction into a fresh set of daily rollups.
// This is the ground truth the incremental state is checked against, and
// the rebuild path for disaster recovery.
func Recompute(transactions []*model.Transaction) map[string]*model.DailyStats {
	agg := New()
	for _, tx := range transactions {
		agg.Apply(tx)
	}
	return agg.days
}

// Verify compares the incremental state against a full recompute of the
// ledger and returns a ConsistencyError describing the first difference.
func (a *Aggregator) Verify(transactions []*model.Transaction) error {
	want := Recompute(transactions)

	dates := make(map[string]bool, len(a.days)+len(want))
	for date := range a.days {
		dates[date] = true
	}
	for date := range want {
		dates[date] = true
	}
	sorted := make([]string, 0, len(dates))
	for date := range dates {
		sorted = append(sorted, date)
	}
	sort.Strings(sorted)

	for _, date := range sorted {
		got, ok := a.days[date]
		if !ok {
			return apperr.Consistencyf("statistik %s hilang dari rollup inkremental", date)
		}
		expected, ok := want[date]
		if !ok {
			return apperr.Consistencyf("statistik %s tidak didukung transaksi apa pun", date)
		}
		if diff := diffDay(got, expected); diff != "" {
			return apperr.Consistencyf("statistik %s tidak cocok dengan ledger: %s", date, diff)
		}
	}
	return nil
}

func diffDay(got, want *model.DailyStats) string {
	var diffs []string
	if got.Revenue != want.Revenue {
		diffs = append(diffs, fmt.Sprintf("revenue %d != %d", got.Revenue, want.Revenue))
	}
	if got.Transactions != want.Transactions {
		diffs = append(diffs, fmt.Sprintf("transactions %d != %d", got.Transactions, want.Transactions))
	}
	if got.ItemsSold != want.ItemsSold {
		diffs = append(diffs, fmt.Sprintf("itemsSold %d != %d", got.ItemsSold, want.ItemsSold))
	}
	if got.Profit != want.Profit {
		diffs = append(diffs, fmt.Sprintf("profit %d != %d", got.Profit, want.Profit))
	}
	for id, w := range want.Items {
		g, ok := got.Items[id]
		if !ok {
			diffs = append(diffs, fmt.Sprintf("produk %d hilang", id))
			continue
		}
		if *g != *w {
			diffs = append(diffs, fmt.Sprintf("produk %d %+v != %+v", id, *g, *w))
		}
	}
	for id := range got.Items {
		if _, ok := want.Items[id]; !ok {
			diffs = append(diffs, fmt.Sprintf("produk %d tidak didukung ledger", id))
		}
	}
	return strings.Join(diffs, "; ")
}
