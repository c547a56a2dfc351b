package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

// InventoryUseCase casos de uso para ítems de stock.
type InventoryUseCase struct {
	base
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(store repository.Store, views *view.Composer) *InventoryUseCase {
	return &InventoryUseCase{base: newBase(store, views)}
}

// GetAll lista los ítems de la organización ordenados por nombre.
func (uc *InventoryUseCase) GetAll(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error) {
	return uc.list(ctx, func(i entity.InventoryItem) bool { return i.OrganizationID == orgID })
}

// GetLowStock ítems con estado derivado low_stock (no incluye los agotados).
func (uc *InventoryUseCase) GetLowStock(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error) {
	return uc.list(ctx, func(i entity.InventoryItem) bool {
		return i.OrganizationID == orgID && status.Inventory(i.Quantity, i.MinQuantity) == status.StockLow
	})
}

// GetNeedsRestock ítems que necesitan reposición: stock bajo o agotado.
func (uc *InventoryUseCase) GetNeedsRestock(ctx context.Context, orgID string) ([]dto.InventoryItemResponse, error) {
	return uc.list(ctx, func(i entity.InventoryItem) bool {
		return i.OrganizationID == orgID && status.NeedsRestock(i.Quantity, i.MinQuantity)
	})
}

func (uc *InventoryUseCase) list(ctx context.Context, keep func(entity.InventoryItem) bool) ([]dto.InventoryItemResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionInventory)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0)
	for _, it := range ds.Inventory {
		if keep(it) {
			out = append(out, uc.views.InventoryItem(it))
		}
	}
	sortByName(out, func(i dto.InventoryItemResponse) string { return i.Name })
	return out, nil
}

// GetByID obtiene un ítem por ID.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionInventory)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Inventory, id, itemKey)
	if i < 0 {
		return nil, nil
	}
	v := uc.views.InventoryItem(ds.Inventory[i])
	return &v, nil
}

// Create crea un ítem de inventario.
func (uc *InventoryUseCase) Create(ctx context.Context, orgID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	ds, err := uc.read(ctx, entity.CollectionOrganizations, entity.CollectionInventory)
	if err != nil {
		return nil, err
	}
	if err := requireOrganization(ds, orgID); err != nil {
		return nil, err
	}
	now := uc.now()
	item := entity.InventoryItem{
		ID:             newID(),
		Name:           strings.TrimSpace(in.Name),
		Category:       in.Category,
		Quantity:       in.Quantity,
		MinQuantity:    in.MinQuantity,
		Location:       in.Location,
		OrganizationID: orgID,
		CostPerUnit:    in.CostPerUnit,
		Supplier:       in.Supplier,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	ds.Inventory = append(ds.Inventory, item)
	if err := uc.replace(ctx, ds, entity.CollectionInventory); err != nil {
		return nil, err
	}
	v := uc.views.InventoryItem(item)
	return &v, nil
}

// Update actualiza un ítem de inventario.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionInventory)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Inventory, id, itemKey)
	if i < 0 {
		return nil, nil
	}
	item := ds.Inventory[i]
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.CostPerUnit != nil {
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.UpdatedAt = uc.now()
	ds.Inventory[i] = item
	if err := uc.replace(ctx, ds, entity.CollectionInventory); err != nil {
		return nil, err
	}
	v := uc.views.InventoryItem(item)
	return &v, nil
}

// UpdateQuantity fija la cantidad en stock. Negativa: ErrInvalidInput.
func (uc *InventoryUseCase) UpdateQuantity(ctx context.Context, id string, quantity int) (*dto.InventoryItemResponse, error) {
	return uc.Update(ctx, id, dto.UpdateInventoryItemRequest{Quantity: &quantity})
}

// Delete elimina un ítem. Un id inexistente no hace nada.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	ds, err := uc.read(ctx, entity.CollectionInventory)
	if err != nil {
		return err
	}
	if indexOf(ds.Inventory, id, itemKey) < 0 {
		return nil
	}
	ds.Inventory = filter(ds.Inventory, func(i entity.InventoryItem) bool { return i.ID != id })
	return uc.replace(ctx, ds, entity.CollectionInventory)
}

func validateItem(i entity.InventoryItem) error {
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if i.MinQuantity < 0 {
		return fmt.Errorf("%w: minQuantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if i.CostPerUnit.IsNegative() {
		return fmt.Errorf("%w: costPerUnit no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
