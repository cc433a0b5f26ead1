// Package pos serves the register flow: cart staging, checkout and the
// transaction history endpoints.
package pos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"kasir/app"
	"kasir/apperr"
	"kasir/currency"
)

// CartHandler returns the staged cart with running totals.
func CartHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(a.Cart())
	}
}

// AddToCartHandler stages a product. Quantity defaults to 1.
func AddToCartHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID int64 `json:"productId"`
			Quantity  int64 `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if payload.Quantity == 0 {
			payload.Quantity = 1
		}
		p, err := a.AddToCart(payload.ProductID, payload.Quantity)
		if err != nil {
			apperr.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": fmt.Sprintf("%s ditambahkan ke keranjang", p.Name),
			"cart":    a.Cart(),
		})
	}
}

// SetQuantityHandler overwrites a line's quantity; zero or less removes
// the line.
func SetQuantityHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID int64 `json:"productId"`
			Quantity  int64 `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := a.SetCartQuantity(payload.ProductID, payload.Quantity); err != nil {
			apperr.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(a.Cart())
	}
}

// RemoveFromCartHandler drops one line by product id.
func RemoveFromCartHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.URL.Path, "/api/cart/remove/")
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		a.RemoveFromCart(productID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(a.Cart())
	}
}

// ClearCartHandler empties the cart.
func ClearCartHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.ClearCart()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Keranjang dikosongkan"})
	}
}

// CheckoutHandler finalizes the cart into a transaction.
func CheckoutHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := a.Checkout()
		if err != nil {
			apperr.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": fmt.Sprintf("Transaksi #%d berhasil! Total: %s",
				tx.ID, currency.FormatRupiah(tx.Total)),
			"transaction": tx,
		})
	}
}

// TransactionsHandler lists transactions: ?date= for one day,
// ?start=&end= for a closed range, neither for the full ledger.
func TransactionsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		date := q.Get("date")
		start, end := q.Get("start"), q.Get("end")

		w.Header().Set("Content-Type", "application/json")
		switch {
		case date != "":
			json.NewEncoder(w).Encode(a.TransactionsByDate(date))
		case start != "" && end != "":
			json.NewEncoder(w).Encode(a.TransactionsByRange(start, end))
		default:
			json.NewEncoder(w).Encode(a.Transactions())
		}
	}
}

// GetTransactionHandler returns one transaction by id.
func GetTransactionHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.URL.Path, "/api/transactions/get/")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid transaction id", http.StatusBadRequest)
			return
		}
		tx, err := a.Transaction(id)
		if err != nil {
			apperr.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tx)
	}
}

// DeleteTransactionHandler reverses and removes a transaction. Deleting
// an id that no longer exists reports not found; the aggregates are
// reversed exactly once.
func DeleteTransactionHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.URL.Path, "/api/transactions/delete/")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid transaction id", http.StatusBadRequest)
			return
		}
		ok, err := a.DeleteTransaction(id)
		if err != nil {
			apperr.WriteError(w, err)
			return
		}
		if !ok {
			apperr.WriteError(w, &apperr.NotFoundError{Entity: "transaksi", ID: id})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Transaksi dihapus"})
	}
}
