package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    partition TEXT PRIMARY KEY,
    payload   TEXT NOT NULL
);`

// Open connects to the SQLite file with WAL and a busy timeout suited to
// a single local writer.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

// SQLiteGateway stores each partition as a JSON payload in a single
// string-keyed table, mirroring the key-value shape of the data.
type SQLiteGateway struct {
	db *sqlx.DB
}

func NewSQLiteGateway(db *sqlx.DB) (*SQLiteGateway, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLiteGateway{db: db}, nil
}

// Load reads every partition. Missing partitions (fresh install) come
// back as their zero values; the app seeds defaults on top.
func (g *SQLiteGateway) Load() (*State, error) {
	state := NewState()
	if err := g.loadPartition(PartitionProducts, &state.Products); err != nil {
		return nil, err
	}
	if err := g.loadPartition(PartitionTransactions, &state.Transactions); err != nil {
		return nil, err
	}
	if err := g.loadPartition(PartitionDailyStats, &state.DailyStats); err != nil {
		return nil, err
	}
	if err := g.loadPartition(PartitionCart, &state.Cart); err != nil {
		return nil, err
	}
	if err := g.loadPartition(PartitionSettings, &state.Settings); err != nil {
		return nil, err
	}
	if err := g.loadPartition(PartitionOrderCounter, &state.OrderCounter); err != nil {
		return nil, err
	}
	if state.DailyStats == nil {
		state.DailyStats = NewState().DailyStats
	}
	return state, nil
}

// Save writes all partitions in one SQL transaction so a crash mid-save
// never leaves the stored partitions from two different states.
func (g *SQLiteGateway) Save(state *State) error {
	tx, err := g.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	partitions := map[string]interface{}{
		PartitionProducts:     state.Products,
		PartitionTransactions: state.Transactions,
		PartitionDailyStats:   state.DailyStats,
		PartitionCart:         state.Cart,
		PartitionSettings:     state.Settings,
		PartitionOrderCounter: state.OrderCounter,
	}
	for name, value := range partitions {
		payload, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal partition %s: %w", name, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO app_state (partition, payload) VALUES (?, ?)
			 ON CONFLICT(partition) DO UPDATE SET payload = excluded.payload`,
			name, string(payload)); err != nil {
			return fmt.Errorf("failed to save partition %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state save: %w", err)
	}
	return nil
}

func (g *SQLiteGateway) loadPartition(name string, dest interface{}) error {
	var payload string
	err := g.db.Get(&payload, "SELECT payload FROM app_state WHERE partition = ?", name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("failed to load partition %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return fmt.Errorf("failed to decode partition %s: %w", name, err)
	}
	return nil
}
