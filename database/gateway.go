// Package database persists the application state as named partitions in
// a local SQLite file. Each partition is serialized independently; the
// ledger, not the storage layer, is responsible for keeping them
// mutually consistent.
package database

import "kasir/model"

// Partition names. These mirror the logical stores of the app state.
const (
	PartitionProducts     = "products"
	PartitionTransactions = "transactions"
	PartitionDailyStats   = "dailyStats"
	PartitionCart         = "cart"
	PartitionSettings     = "settings"
	PartitionOrderCounter = "orderCounter"
)

// State is the full persisted application state.
type State struct {
	Products     []*model.Product             `json:"products"`
	Transactions []*model.Transaction         `json:"transactions"`
	DailyStats   map[string]*model.DailyStats `json:"dailyStats"`
	Cart         []*model.CartLine            `json:"cart"`
	Settings     *model.Settings              `json:"settings"`
	OrderCounter int64                        `json:"orderCounter"`
}

// NewState returns an empty state with non-nil collections.
func NewState() *State {
	return &State{
		DailyStats: make(map[string]*model.DailyStats),
	}
}

// Gateway loads and saves the application state. The in-memory state
// stays authoritative for the session: callers treat Save failures as
// non-fatal (log and continue).
type Gateway interface {
	Load() (*State, error)
	Save(*State) error
}
