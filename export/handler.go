// Package export renders the ledger's read-only views as downloadable
// CSV. It only formats: all data comes through the app's accessors.
package export

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kasir/app"
	"kasir/currency"
	"kasir/model"
)

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeCSV(w http.ResponseWriter, name string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(buf.Bytes())
}

func newCSVBuffer(header []string) *bytes.Buffer {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM
	buf.WriteString(strings.Join(header, ",") + "\r\n")
	return &buf
}

// ExportTransactionsHandler dumps the full transaction history,
// optionally limited by ?start=/?end=.
func ExportTransactionsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var transactions []*model.Transaction
		if q.Get("start") != "" && q.Get("end") != "" {
			transactions = a.TransactionsByRange(q.Get("start"), q.Get("end"))
		} else {
			transactions = a.Transactions()
		}

		buf := newCSVBuffer([]string{"ID", "Tanggal", "Waktu", "Items", "Subtotal", "Total", "Laba"})
		for _, tx := range transactions {
			items := make([]string, 0, len(tx.Lines))
			for _, line := range tx.Lines {
				items = append(items, fmt.Sprintf("%s (%d)", line.Name, line.Quantity))
			}
			row := []string{
				strconv.FormatInt(tx.ID, 10),
				tx.Date,
				tx.Time,
				quoteAll(strings.Join(items, "; ")),
				quoteAll(currency.FormatRupiah(tx.Subtotal)),
				quoteAll(currency.FormatRupiah(tx.Total)),
				quoteAll(currency.FormatRupiah(tx.Profit)),
			}
			buf.WriteString(strings.Join(row, ",") + "\r\n")
		}
		writeCSV(w, "transaksi", buf)
	}
}

// ExportProductsHandler dumps the catalog.
func ExportProductsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buf := newCSVBuffer([]string{"ID", "Nama", "Kategori", "Harga", "HPP", "Stok", "Deskripsi"})
		for _, p := range a.Products() {
			stock := ""
			if p.Stock != nil {
				stock = strconv.FormatInt(*p.Stock, 10)
			}
			row := []string{
				strconv.FormatInt(p.ID, 10),
				quoteAll(p.Name),
				string(p.Category),
				strconv.FormatInt(p.Price, 10),
				strconv.FormatInt(p.Cost, 10),
				stock,
				quoteAll(p.Description),
			}
			buf.WriteString(strings.Join(row, ",") + "\r\n")
		}
		writeCSV(w, "produk", buf)
	}
}

// ExportStatsHandler dumps one row per day over ?start=/?end= (both
// required), reading each day's rollup through the aggregator.
func ExportStatsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		start, end := q.Get("start"), q.Get("end")
		if start == "" || end == "" {
			http.Error(w, "start and end parameters are required", http.StatusBadRequest)
			return
		}
		startDay, err := time.Parse("2006-01-02", start)
		if err != nil {
			http.Error(w, "Invalid start date", http.StatusBadRequest)
			return
		}
		endDay, err := time.Parse("2006-01-02", end)
		if err != nil {
			http.Error(w, "Invalid end date", http.StatusBadRequest)
			return
		}

		buf := newCSVBuffer([]string{"Tanggal", "Pendapatan", "Transaksi", "Item Terjual", "Laba"})
		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			date := day.Format("2006-01-02")
			stats := a.DailyStats(date)
			if stats.IsZero() {
				continue
			}
			row := []string{
				date,
				strconv.FormatInt(stats.Revenue, 10),
				strconv.FormatInt(stats.Transactions, 10),
				strconv.FormatInt(stats.ItemsSold, 10),
				strconv.FormatInt(stats.Profit, 10),
			}
			buf.WriteString(strings.Join(row, ",") + "\r\n")
		}
		writeCSV(w, "statistik", buf)
	}
}
