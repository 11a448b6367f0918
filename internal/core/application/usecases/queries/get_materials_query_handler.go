package queries

import (
	"context"

	"printshop/internal/core/domain/model/material"
)

// GetMaterialsQueryHandler lists the filament catalog.
type GetMaterialsQueryHandler struct {
	catalog material.Catalog
}

// NewGetMaterialsQueryHandler creates a handler over the given catalog.
func NewGetMaterialsQueryHandler(catalog material.Catalog) GetMaterialsQueryHandler {
	return GetMaterialsQueryHandler{catalog: catalog}
}

// Handle executes the materials query. Results follow the catalog order.
func (h GetMaterialsQueryHandler) Handle(
	_ context.Context,
	query GetMaterialsQuery,
) ([]GetMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listed := h.catalog.List()
	materials := make([]GetMaterialsQueryResponse, 0, len(listed))
	for _, mat := range listed {
		materials = append(materials, GetMaterialsQueryResponse{
			Name:            mat.Name(),
			DensityGPerCm3:  mat.DensityGPerCm3(),
			PricePerKGCents: mat.PricePerKG().Cents(),
		})
	}

	return materials, nil
}
