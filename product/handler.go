package product

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"kasir/app"
	"kasir/apperr"
	"kasir/model"
)

// ProductsHandler serves the catalog: GET lists all products, POST adds
// a new one.
func ProductsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(a.Products())
		case http.MethodPost:
			var input model.Product
			if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			added, err := a.AddProduct(input)
			if err != nil {
				apperr.WriteError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": fmt.Sprintf("Produk %s ditambahkan", added.Name),
				"product": added,
			})
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}
}

// GetProductHandler returns one product by id from the request path.
func GetProductHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(w, r, "/api/products/get/")
		if !ok {
			return
		}
		p, found := a.Product(id)
		if !found {
			apperr.WriteError(w, &apperr.NotFoundError{Entity: "produk", ID: id})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

// UpdateProductHandler merges a partial update into a product.
func UpdateProductHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ID int64 `json:"id"`
			model.ProductPatch
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		updated, err := a.UpdateProduct(payload.ID, payload.ProductPatch)
		if err != nil {
			apperr.WriteError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": fmt.Sprintf("Produk %s diperbarui", updated.Name),
			"product": updated,
		})
	}
}

// DeleteProductHandler removes a product from the catalog. Historical
// transactions are unaffected.
func DeleteProductHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(w, r, "/api/products/delete/")
		if !ok {
			return
		}
		if !a.DeleteProduct(id) {
			apperr.WriteError(w, &apperr.NotFoundError{Entity: "produk", ID: id})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Produk dihapus"})
	}
}

func idFromPath(w http.ResponseWriter, r *http.Request, prefix string) (int64, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" {
		http.Error(w, "Product id is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
