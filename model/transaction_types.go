package model

// CartLine is one staged order line. Name, Price and Cost are copied from
// the product at the moment it is added, so later catalog edits do not
// change what the customer was quoted.
type CartLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Cost      int64  `json:"cost"`
	Quantity  int64  `json:"quantity"`
}

func (l *CartLine) Clone() *CartLine {
	cp := *l
	return &cp
}

// TransactionLine is a frozen snapshot of a cart line at commit time.
type TransactionLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	UnitCost  int64  `json:"unitCost"`
	Quantity  int64  `json:"quantity"`
	Total     int64  `json:"total"`
	Profit    int64  `json:"profit"`
}

// Transaction is a finalized sale. Immutable once created; the only
// allowed mutation is full deletion through the ledger.
//
// Invariants: Total == sum(UnitPrice*Quantity) over Lines and
// Profit == sum((UnitPrice-UnitCost)*Quantity) over Lines.
type Transaction struct {
	ID       int64             `json:"id"`
	Date     string            `json:"date"` // "2006-01-02"
	Time     string            `json:"time"` // "15:04:05"
	Lines    []TransactionLine `json:"items"`
	Subtotal int64             `json:"subtotal"`
	Total    int64             `json:"total"`
	Profit   int64             `json:"profit"`
}

func (t *Transaction) Clone() *Transaction {
	cp := *t
	cp.Lines = make([]TransactionLine, len(t.Lines))
	copy(cp.Lines, t.Lines)
	return &cp
}
