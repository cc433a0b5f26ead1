package model

// ProductStats is the per-product slice of a day's rollup.
type ProductStats struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
	Profit   int64  `json:"profit"`
}

func (s *ProductStats) Clone() *ProductStats {
	cp := *s
	return &cp
}

// DailyStats is the rollup of all non-deleted transactions on one
// calendar date. Items is keyed by product id.
type DailyStats struct {
	Revenue      int64                   `json:"revenue"`
	Transactions int64                   `json:"transactions"`
	ItemsSold    int64                   `json:"itemsSold"`
	Profit       int64                   `json:"profit"`
	Items        map[int64]*ProductStats `json:"items"`
}

// NewDailyStats returns an empty rollup with a ready Items map.
func NewDailyStats() *DailyStats {
	return &DailyStats{Items: make(map[int64]*ProductStats)}
}

func (d *DailyStats) Clone() *DailyStats {
	cp := NewDailyStats()
	cp.Revenue = d.Revenue
	cp.Transactions = d.Transactions
	cp.ItemsSold = d.ItemsSold
	cp.Profit = d.Profit
	for id, ps := range d.Items {
		cp.Items[id] = ps.Clone()
	}
	return cp
}

// IsZero reports whether the rollup carries no remaining contribution.
func (d *DailyStats) IsZero() bool {
	return d.Revenue == 0 && d.Transactions == 0 && d.ItemsSold == 0 &&
		d.Profit == 0 && len(d.Items) == 0
}

// BestSeller is one row of a best-selling products ranking.
type BestSeller struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Revenue   int64  `json:"revenue"`
	Profit    int64  `json:"profit"`
}
