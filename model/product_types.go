// Package model holds the shared domain types. Plain data with json
// tags; all behavior lives in the owning packages.
package model

// Category groups menu items on the register screen.
type Category string

const (
	CategoryPaket   Category = "paket"
	CategorySatuan  Category = "satuan"
	CategoryTopping Category = "topping"
	CategorySaus    Category = "saus"
	CategoryLainnya Category = "lainnya"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPaket, CategorySatuan, CategoryTopping, CategorySaus, CategoryLainnya:
		return true
	}
	return false
}

// Product is one sellable menu item. Price and Cost are whole rupiah.
// A nil Stock means the item is made to order and never runs out.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Cost        int64    `json:"cost"`
	Category    Category `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Stock       *int64   `json:"stock"`
}

func (p *Product) Clone() *Product {
	cp := *p
	if p.Stock != nil {
		s := *p.Stock
		cp.Stock = &s
	}
	return &cp
}

// ProductPatch is a partial product update. Nil fields are left alone;
// RemoveStock switches the product to unlimited stock and wins over
// Stock when both are set.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Price       *int64    `json:"price"`
	Cost        *int64    `json:"cost"`
	Category    *Category `json:"category"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Stock       *int64    `json:"stock"`
	RemoveStock bool      `json:"removeStock"`
}

// IntPtr is a convenience for literal stock values.
func IntPtr(v int64) *int64 {
	return &v
}
