// Package catalog owns the product definitions: CRUD, validation and the
// stock adjustments applied by the ledger on commit and delete.
package catalog

import (
	"sort"

	"kasir/apperr"
	"kasir/model"
)

type Catalog struct {
	products []*model.Product
}

func New() *Catalog {
	return &Catalog{}
}

// Restore replaces the catalog contents with persisted products.
func (c *Catalog) Restore(products []*model.Product) {
	c.products = c.products[:0]
	for _, p := range products {
		c.products = append(c.products, p.Clone())
	}
	c.sortByID()
}

// Snapshot returns deep copies of all products for persistence.
func (c *Catalog) Snapshot() []*model.Product {
	return c.List()
}

// Add assigns the next free id (max existing + 1, or 1 when empty),
// validates and stores the product.
func (c *Catalog) Add(p model.Product) (*model.Product, error) {
	if err := validate(&p); err != nil {
		return nil, err
	}
	p.ID = 1
	for _, existing := range c.products {
		if existing.ID >= p.ID {
			p.ID = existing.ID + 1
		}
	}
	stored := p.Clone()
	c.products = append(c.products, stored)
	return stored.Clone(), nil
}

// Update merges patch into the stored product and re-validates the
// combined result. The stored product is untouched on failure.
func (c *Catalog) Update(id int64, patch model.ProductPatch) (*model.Product, error) {
	stored := c.find(id)
	if stored == nil {
		return nil, &apperr.NotFoundError{Entity: "produk", ID: id}
	}
	merged := stored.Clone()
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Cost != nil {
		merged.Cost = *patch.Cost
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Icon != nil {
		merged.Icon = *patch.Icon
	}
	if patch.RemoveStock {
		merged.Stock = nil
	} else if patch.Stock != nil {
		s := *patch.Stock
		merged.Stock = &s
	}
	if err := validate(merged); err != nil {
		return nil, err
	}
	*stored = *merged
	return merged.Clone(), nil
}

// Delete removes the product. Historical transactions keep their frozen
// copies of name/price/cost, so nothing cascades.
func (c *Catalog) Delete(id int64) bool {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Catalog) Get(id int64) (*model.Product, bool) {
	p := c.find(id)
	if p == nil {
		return nil, false
	}
	return p.Clone(), true
}

func (c *Catalog) List() []*model.Product {
	out := make([]*model.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

// Available reports the remaining stock of a product. limited is false
// for unknown ids and for unlimited-stock products, in which case the
// returned count is meaningless.
func (c *Catalog) Available(id int64) (avail int64, limited bool) {
	p := c.find(id)
	if p == nil || p.Stock == nil {
		return 0, false
	}
	return *p.Stock, true
}

// AdjustStock applies a stock delta. The ledger calls this with a
// negative delta on commit and a positive delta on delete. Unknown ids
// and unlimited-stock products are no-ops.
func (c *Catalog) AdjustStock(id, delta int64) {
	p := c.find(id)
	if p == nil || p.Stock == nil {
		return
	}
	*p.Stock += delta
}

func (c *Catalog) find(id int64) *model.Product {
	for _, p := range c.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (c *Catalog) sortByID() {
	sort.Slice(c.products, func(i, j int) bool {
		return c.products[i].ID < c.products[j].ID
	})
}

func validate(p *model.Product) error {
	if p.Name == "" {
		return apperr.Validationf("nama produk harus diisi")
	}
	if p.Price <= 0 {
		return apperr.Validationf("harga produk harus lebih dari 0")
	}
	if p.Cost < 0 {
		return apperr.Validationf("HPP produk tidak boleh negatif")
	}
	if p.Price < p.Cost {
		return apperr.Validationf("harga jual harus lebih besar dari HPP")
	}
	if p.Category != "" && !p.Category.Valid() {
		return apperr.Validationf("kategori %q tidak dikenal", p.Category)
	}
	if p.Stock != nil && *p.Stock < 0 {
		return apperr.Validationf("stok produk tidak boleh negatif")
	}
	return nil
}
