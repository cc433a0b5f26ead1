package app

import (
	"time"

	"kasir/aggregation"
	"kasir/apperr"
	"kasir/database"
	"kasir/model"
)

func notFoundProduct(id int64) error {
	return &apperr.NotFoundError{Entity: "produk", ID: id}
}

// Backup is a full-state export. The same shape restores it.
type Backup struct {
	database.State
	BackupDate string `json:"backupDate"`
}

func (a *App) Backup() *Backup {
	a.mu.Lock()
	defer a.mu.Unlock()
	settings := *a.settings
	return &Backup{
		State: database.State{
			Products:     a.catalog.Snapshot(),
			Transactions: a.ledger.ListAll(),
			DailyStats:   a.stats.Snapshot(),
			Cart:         a.cart.Lines(),
			Settings:     &settings,
			OrderCounter: a.ledger.Counter(),
		},
		BackupDate: time.Now().Format(time.RFC3339),
	}
}

// RestoreBackup replaces the entire state with the backup's contents.
// The restored rollups are verified against the restored ledger and
// rebuilt when they disagree, same as at startup.
func (a *App) RestoreBackup(b *Backup) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.catalog.Restore(b.Products)
	a.cart.Restore(b.Cart)
	if b.DailyStats != nil {
		a.stats.Restore(b.DailyStats)
	} else {
		a.stats.Restore(aggregation.Recompute(b.Transactions))
	}
	a.ledger.Restore(b.Transactions, b.OrderCounter)
	if b.Settings != nil {
		a.settings = b.Settings
	} else {
		a.settings = model.DefaultSettings()
	}
	if err := a.stats.Verify(b.Transactions); err != nil {
		a.stats.Restore(aggregation.Recompute(b.Transactions))
	}
	a.persistLocked()
	return nil
}

// ClearAllData wipes transactions and rollups and resets the order
// counter. The catalog and settings are kept.
func (a *App) ClearAllData() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ledger.Restore(nil, 0)
	a.stats.Restore(nil)
	a.persistLocked()
}

// ClearOldData drops transactions and day rollups older than daysToKeep
// days. Stock is not restored: retention removes history, it does not
// reverse sales.
func (a *App) ClearOldData(daysToKeep int) (txRemoved, daysRemoved int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -daysToKeep).Format("2006-01-02")
	txRemoved = a.ledger.ClearBefore(cutoff)
	daysRemoved = a.stats.ClearBefore(cutoff)
	if txRemoved > 0 || daysRemoved > 0 {
		a.persistLocked()
	}
	return txRemoved, daysRemoved
}
