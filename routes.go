package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kasir/app"
	"kasir/config"
	"kasir/export"
	"kasir/pos"
	"kasir/product"
	"kasir/statistik"
)

func SetupRoutes(mux *http.ServeMux, a *app.App) {

	mux.HandleFunc("/api/products", product.ProductsHandler(a))
	mux.HandleFunc("/api/products/get/", product.GetProductHandler(a))
	mux.HandleFunc("/api/products/update", product.UpdateProductHandler(a))
	mux.HandleFunc("/api/products/delete/", product.DeleteProductHandler(a))

	mux.HandleFunc("/api/cart", pos.CartHandler(a))
	mux.HandleFunc("/api/cart/add", pos.AddToCartHandler(a))
	mux.HandleFunc("/api/cart/quantity", pos.SetQuantityHandler(a))
	mux.HandleFunc("/api/cart/remove/", pos.RemoveFromCartHandler(a))
	mux.HandleFunc("/api/cart/clear", pos.ClearCartHandler(a))
	mux.HandleFunc("/api/checkout", pos.CheckoutHandler(a))

	mux.HandleFunc("/api/transactions", pos.TransactionsHandler(a))
	mux.HandleFunc("/api/transactions/get/", pos.GetTransactionHandler(a))
	mux.HandleFunc("/api/transactions/delete/", pos.DeleteTransactionHandler(a))

	mux.HandleFunc("/api/stats/daily", statistik.DailyStatsHandler(a))
	mux.HandleFunc("/api/stats/range", statistik.RangeStatsHandler(a))
	mux.HandleFunc("/api/stats/bestsellers", statistik.BestSellersHandler(a))
	mux.HandleFunc("/api/stats/verify", statistik.VerifyHandler(a))

	mux.HandleFunc("/api/export/transactions", export.ExportTransactionsHandler(a))
	mux.HandleFunc("/api/export/products", export.ExportProductsHandler(a))
	mux.HandleFunc("/api/export/stats", export.ExportStatsHandler(a))

	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(a.Settings())
		case http.MethodPost:
			// Decoding over a copy of the current settings gives
			// partial-update semantics for free.
			current := a.Settings()
			if err := json.NewDecoder(r.Body).Decode(&current); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			saved := a.UpdateSettings(current)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message":  "Pengaturan disimpan",
				"settings": saved,
			})
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/backup/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="kasir_backup.json"`)
		json.NewEncoder(w).Encode(a.Backup())
	})

	mux.HandleFunc("/api/backup/import", func(w http.ResponseWriter, r *http.Request) {
		var backup app.Backup
		if err := json.NewDecoder(r.Body).Decode(&backup); err != nil {
			http.Error(w, "Invalid backup payload", http.StatusBadRequest)
			return
		}
		if err := a.RestoreBackup(&backup); err != nil {
			http.Error(w, "Failed to restore backup: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Backup dipulihkan"})
	})

	mux.HandleFunc("/api/data/clear_old", func(w http.ResponseWriter, r *http.Request) {
		days := config.GetConfig().RetentionDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "Invalid days parameter", http.StatusBadRequest)
				return
			}
			days = parsed
		}
		txRemoved, daysRemoved := a.ClearOldData(days)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":      "Data lama dibersihkan",
			"transactions": txRemoved,
			"days":         daysRemoved,
		})
	})

	mux.HandleFunc("/api/data/clear_all", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		a.ClearAllData()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Semua data transaksi dihapus"})
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
