// Package app wires the catalog, cart, ledger and aggregation rollups
// into one owned-state context with a single logical writer. Every
// mutating operation completes its in-memory change under the lock
// before the state is handed to the persistence gateway, so a crash
// between the two can only lose the latest write, never leave the
// in-memory state inconsistent.
package app

import (
	"log"
	"sync"
	"time"

	"kasir/aggregation"
	"kasir/cart"
	"kasir/catalog"
	"kasir/database"
	"kasir/ledger"
	"kasir/model"
)

type App struct {
	mu sync.Mutex
	gw database.Gateway

	catalog  *catalog.Catalog
	cart     *cart.Cart
	ledger   *ledger.Ledger
	stats    *aggregation.Aggregator
	settings *model.Settings
}

// New loads persisted state through the gateway and builds the
// application context. An empty store is seeded with the default menu
// and settings. The incremental rollups are verified against a full
// recompute of the ledger; on mismatch the rollups are rebuilt from the
// ledger, which is the authoritative record.
func New(gw database.Gateway) (*App, error) {
	state, err := gw.Load()
	if err != nil {
		return nil, err
	}

	a := &App{gw: gw}
	a.catalog = catalog.New()
	a.cart = cart.New()
	a.stats = aggregation.New()
	a.ledger = ledger.New(a.catalog, a.stats)

	a.catalog.Restore(state.Products)
	a.cart.Restore(state.Cart)
	a.stats.Restore(state.DailyStats)
	a.ledger.Restore(state.Transactions, state.OrderCounter)
	a.settings = state.Settings
	if a.settings == nil {
		a.settings = model.DefaultSettings()
	}
	if len(state.Products) == 0 {
		a.catalog.Restore(model.DefaultProducts())
		log.Println("Seeded default product catalog.")
	}

	if err := a.stats.Verify(state.Transactions); err != nil {
		log.Printf("WARN: daily stats inconsistent with ledger, rebuilding: %v", err)
		a.stats.Restore(aggregation.Recompute(state.Transactions))
	}

	a.mu.Lock()
	a.persistLocked()
	a.mu.Unlock()
	return a, nil
}

// persistLocked snapshots the full state and hands it to the gateway.
// Persistence failures are non-fatal: the in-memory state remains
// authoritative for the session.
func (a *App) persistLocked() {
	state := &database.State{
		Products:     a.catalog.Snapshot(),
		Transactions: a.ledger.ListAll(),
		DailyStats:   a.stats.Snapshot(),
		Cart:         a.cart.Lines(),
		Settings:     a.settings,
		OrderCounter: a.ledger.Counter(),
	}
	if err := a.gw.Save(state); err != nil {
		log.Printf("WARN: failed to persist state: %v", err)
	}
}

// ----- catalog -----

func (a *App) Products() []*model.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalog.List()
}

func (a *App) Product(id int64) (*model.Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalog.Get(id)
}

func (a *App) AddProduct(p model.Product) (*model.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	added, err := a.catalog.Add(p)
	if err != nil {
		return nil, err
	}
	a.persistLocked()
	return added, nil
}

func (a *App) UpdateProduct(id int64, patch model.ProductPatch) (*model.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	updated, err := a.catalog.Update(id, patch)
	if err != nil {
		return nil, err
	}
	a.persistLocked()
	return updated, nil
}

func (a *App) DeleteProduct(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	ok := a.catalog.Delete(id)
	if ok {
		a.persistLocked()
	}
	return ok
}

// ----- cart -----

// CartView is what the register screen renders: the staged lines plus
// their running totals.
type CartView struct {
	Lines           []*model.CartLine `json:"lines"`
	Subtotal        int64             `json:"subtotal"`
	Total           int64             `json:"total"`
	EstimatedProfit int64             `json:"estimatedProfit"`
	ItemCount       int64             `json:"itemCount"`
}

func (a *App) Cart() CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartViewLocked()
}

func (a *App) cartViewLocked() CartView {
	subtotal := a.cart.Subtotal()
	return CartView{
		Lines:           a.cart.Lines(),
		Subtotal:        subtotal,
		Total:           subtotal,
		EstimatedProfit: a.cart.EstimatedProfit(),
		ItemCount:       a.cart.ItemCount(),
	}
}

// AddToCart stages quantity units of a catalog product, snapshotting its
// current price and cost into the cart line.
func (a *App) AddToCart(productID, quantity int64) (*model.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.catalog.Get(productID)
	if !ok {
		return nil, notFoundProduct(productID)
	}
	if err := a.cart.AddLine(p, quantity); err != nil {
		return nil, err
	}
	a.persistLocked()
	return p, nil
}

func (a *App) SetCartQuantity(productID, quantity int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.cart.SetQuantity(productID, quantity); err != nil {
		return err
	}
	a.persistLocked()
	return nil
}

func (a *App) RemoveFromCart(productID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	ok := a.cart.RemoveLine(productID)
	if ok {
		a.persistLocked()
	}
	return ok
}

func (a *App) ClearCart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.Clear()
	a.persistLocked()
}

// ----- ledger -----

// Checkout commits the cart into a finalized transaction.
func (a *App) Checkout() (*model.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	tx, err := a.ledger.Commit(a.cart, time.Now())
	if err != nil {
		return nil, err
	}
	a.persistLocked()
	return tx, nil
}

func (a *App) Transactions() []*model.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.ListAll()
}

func (a *App) TransactionsByDate(date string) []*model.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.ListByDate(date)
}

func (a *App) TransactionsByRange(start, end string) []*model.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.ListByRange(start, end)
}

func (a *App) Transaction(id int64) (*model.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.GetByID(id)
}

// DeleteTransaction reverses and removes a past transaction. The second
// delete of the same id is a no-op.
func (a *App) DeleteTransaction(id int64) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ok, err := a.ledger.Delete(id)
	if err != nil {
		return false, err
	}
	if ok {
		a.persistLocked()
	}
	return ok, nil
}

// ----- statistics -----

func (a *App) DailyStats(date string) *model.DailyStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats.DailyStats(date)
}

func (a *App) RangeStats(start, end string) *model.DailyStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats.RangeStats(start, end)
}

func (a *App) BestSellers(limit int, start, end string) []model.BestSeller {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats.BestSellers(limit, start, end)
}

// VerifyStats rechecks the incremental rollups against a full recompute
// of the ledger.
func (a *App) VerifyStats() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats.Verify(a.ledger.ListAll())
}

// ----- settings -----

func (a *App) Settings() model.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return *a.settings
}

func (a *App) UpdateSettings(s model.Settings) model.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	*a.settings = s
	a.persistLocked()
	return s
}
