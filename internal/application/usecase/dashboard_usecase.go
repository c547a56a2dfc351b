package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

// DashboardUseCase resumen de la organización (conteos y totales derivados).
type DashboardUseCase struct {
	base
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.Store, views *view.Composer) *DashboardUseCase {
	return &DashboardUseCase{base: newBase(store, views)}
}

// Summary calcula el resumen de la organización a partir de las filas actuales.
func (uc *DashboardUseCase) Summary(ctx context.Context, orgID string) (*dto.DashboardSummaryResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople, entity.CollectionAssets,
		entity.CollectionLicenses, entity.CollectionInventory)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := &dto.DashboardSummaryResponse{
		OrganizationID: orgID,
		Assets:         dto.AssetSummary{TotalValue: decimal.Zero},
		Licenses:       dto.LicenseSummary{TotalCost: decimal.Zero},
		Inventory:      dto.InventorySummary{TotalValue: decimal.Zero},
	}

	for _, t := range ds.Teams {
		if t.OrganizationID == orgID {
			out.Teams++
		}
	}
	for _, p := range ds.People {
		if p.OrganizationID != orgID {
			continue
		}
		out.People.Total++
		if p.Status == entity.PersonActive {
			out.People.Active++
		}
		if p.TeamID != nil {
			out.People.WithTeam++
		} else {
			out.People.WithoutTeam++
		}
	}
	for _, a := range ds.Assets {
		if a.OrganizationID != orgID {
			continue
		}
		out.Assets.Total++
		out.Assets.TotalValue = out.Assets.TotalValue.Add(a.Value)
		switch a.Status {
		case entity.AssetAvailable:
			out.Assets.Available++
		case entity.AssetAllocated:
			out.Assets.Allocated++
		case entity.AssetMaintenance:
			out.Assets.Maintenance++
		}
	}
	for _, l := range ds.Licenses {
		if l.OrganizationID != orgID {
			continue
		}
		out.Licenses.Total++
		out.Licenses.TotalSeats += l.TotalQuantity
		out.Licenses.UsedSeats += l.UsedQuantity()
		if l.Cost.Valid {
			out.Licenses.TotalCost = out.Licenses.TotalCost.Add(l.Cost.Decimal)
		}
		switch status.License(l.ExpirationDate, now) {
		case status.LicenseActive:
			out.Licenses.Active++
		case status.LicenseExpiringSoon:
			out.Licenses.ExpiringSoon++
		case status.LicenseExpired:
			out.Licenses.Expired++
		}
	}
	for _, i := range ds.Inventory {
		if i.OrganizationID != orgID {
			continue
		}
		out.Inventory.Total++
		out.Inventory.TotalValue = out.Inventory.TotalValue.Add(i.CostPerUnit.Mul(decimal.NewFromInt(int64(i.Quantity))))
		switch status.Inventory(i.Quantity, i.MinQuantity) {
		case status.StockLow:
			out.Inventory.LowStock++
		case status.StockOutOfStock:
			out.Inventory.OutOfStock++
		}
	}
	return out, nil
}
