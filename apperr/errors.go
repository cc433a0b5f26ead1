// Package apperr defines the error taxonomy shared by the catalog, cart,
// ledger and aggregator, and its mapping onto HTTP responses.
package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// ValidationError reports rejected input (bad product fields,
// non-positive quantity). Expected during normal operation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// EmptyCartError reports a checkout attempt with no cart lines.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string { return "keranjang kosong" }

// NotFoundError reports an unknown product or transaction id.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d tidak ditemukan", e.Entity, e.ID)
}

// InsufficientStockError reports that a commit or cart add would
// oversell a finite-stock product. Oversell is hard-blocked.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s tidak mencukupi: diminta %d, tersisa %d",
		e.Name, e.Requested, e.Available)
}

// ConsistencyError reports internal state corruption: a reversal that
// would drive an aggregate negative, or an incremental rollup that no
// longer matches a recompute from the ledger. These indicate a latent
// bug and are surfaced loudly, never silently corrected.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string { return e.Message }

func Consistencyf(format string, args ...interface{}) *ConsistencyError {
	return &ConsistencyError{Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps a core error onto the HTTP status the API returns.
func StatusCode(err error) int {
	var (
		ve *ValidationError
		ee *EmptyCartError
		ne *NotFoundError
		se *InsufficientStockError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ee):
		return http.StatusBadRequest
	case errors.As(err, &ne):
		return http.StatusNotFound
	case errors.As(err, &se):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error response. Consistency and other
// unexpected errors are additionally logged.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
