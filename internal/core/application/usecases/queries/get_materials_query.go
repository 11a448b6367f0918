package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrGetMaterialsQueryIsNotConstructed = errors.New(
	"GetMaterialsQuery must be created via NewGetMaterialsQuery constructor",
)

// GetMaterialsQuery lists the filaments available for printing. This is a
// parameterless query backing the material picker on the quote form.
type GetMaterialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMaterialsQuery creates a query to list available materials.
func NewGetMaterialsQuery() GetMaterialsQuery {
	return GetMaterialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetMaterialsQueryIsNotConstructed)
}

// GetMaterialsQueryResponse describes one orderable filament.
type GetMaterialsQueryResponse struct {
	Name            string
	DensityGPerCm3  float64
	PricePerKGCents int64
}
