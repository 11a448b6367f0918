// Package material holds the filament catalog. Each material carries the
// physical density used to derive print weight from model volume and the
// price per kilogram used for material cost.
package material

import (
	"sort"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// Material describes one filament offered by the shop.
type Material struct {
	name            string
	densityGPerCm3  float64
	pricePerKGCents int64
}

// Name returns the catalog name, e.g. "PLA Basic".
func (m Material) Name() string {
	return m.name
}

// DensityGPerCm3 returns the filament density in grams per cubic centimeter.
func (m Material) DensityGPerCm3() float64 {
	return m.densityGPerCm3
}

// PricePerKG returns the material price per kilogram.
func (m Material) PricePerKG() kernel.Money {
	price, _ := kernel.NewMoney(m.pricePerKGCents)
	return price
}

// Catalog is the closed set of materials the shop prints with. Lookups are
// by exact name; anything outside the catalog is a client input error.
type Catalog struct {
	items map[string]Material
}

// DefaultCatalog returns the current filament lineup.
func DefaultCatalog() Catalog {
	items := map[string]Material{}
	for _, m := range []Material{
		{name: "PLA Basic", densityGPerCm3: 1.24, pricePerKGCents: 1999},
		{name: "PLA Matte", densityGPerCm3: 1.24, pricePerKGCents: 1999},
		{name: "PETG HF", densityGPerCm3: 1.27, pricePerKGCents: 1999},
		{name: "PETG Basic", densityGPerCm3: 1.27, pricePerKGCents: 1999},
	} {
		items[m.name] = m
	}
	return Catalog{items: items}
}

// Get resolves a material by name. Unknown names return an
// ObjectNotFoundError, which callers surface as an invalid-input failure.
func (c Catalog) Get(name string) (Material, error) {
	m, ok := c.items[name]
	if !ok {
		return Material{}, errs.NewObjectNotFoundError("material", name)
	}
	return m, nil
}

// List returns all materials ordered by name.
func (c Catalog) List() []Material {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make([]Material, 0, len(names))
	for _, name := range names {
		materials = append(materials, c.items[name])
	}
	return materials
}
