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

// AssetUseCase casos de uso para activos físicos.
// Mantiene la invariante allocated ⇔ assigned_to != nil en toda escritura.
type AssetUseCase struct {
	base
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(store repository.Store, views *view.Composer) *AssetUseCase {
	return &AssetUseCase{base: newBase(store, views)}
}

// GetAll lista los activos de la organización, del más reciente al más antiguo por fecha de compra.
func (uc *AssetUseCase) GetAll(ctx context.Context, orgID string) ([]dto.AssetResponse, error) {
	return uc.list(ctx, func(a entity.Asset) bool { return a.OrganizationID == orgID })
}

// GetAvailable activos disponibles (status available) de la organización.
func (uc *AssetUseCase) GetAvailable(ctx context.Context, orgID string) ([]dto.AssetResponse, error) {
	return uc.list(ctx, func(a entity.Asset) bool {
		return a.OrganizationID == orgID && a.Status == entity.AssetAvailable
	})
}

func (uc *AssetUseCase) list(ctx context.Context, keep func(entity.Asset) bool) ([]dto.AssetResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionAssets, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0)
	for _, a := range ds.Assets {
		if keep(a) {
			out = append(out, uc.views.Asset(a, ds.People))
		}
	}
	sortByDateDesc(out, func(a dto.AssetResponse) string { return a.PurchaseDate })
	return out, nil
}

// GetByID obtiene un activo por ID.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionAssets, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Assets, id, assetKey)
	if i < 0 {
		return nil, nil
	}
	v := uc.views.Asset(ds.Assets[i], ds.People)
	return &v, nil
}

// Create crea un activo. Sin status se deriva de la asignación; sin condición se asume "good";
// sin fecha de compra se usa la fecha actual.
func (uc *AssetUseCase) Create(ctx context.Context, orgID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	ds, err := uc.read(ctx, entity.CollectionOrganizations, entity.CollectionAssets, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	if err := requireOrganization(ds, orgID); err != nil {
		return nil, err
	}

	now := uc.now()
	asset := entity.Asset{
		ID:             newID(),
		Name:           strings.TrimSpace(in.Name),
		Type:           in.Type,
		SerialNumber:   strings.TrimSpace(in.SerialNumber),
		Status:         in.Status,
		Condition:      in.Condition,
		Value:          in.Value,
		PurchaseDate:   in.PurchaseDate,
		AssignedTo:     optionalID(in.AssignedTo),
		OrganizationID: orgID,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if asset.Type == "" {
		asset.Type = entity.AssetOther
	}
	if asset.Condition == "" {
		asset.Condition = entity.ConditionGood
	}
	if strings.TrimSpace(asset.PurchaseDate) == "" {
		asset.PurchaseDate = now.Format("2006-01-02")
	}
	statusGiven := asset.Status != ""
	if !statusGiven {
		asset.Status = entity.AssetAvailable
	}
	if err := uc.validate(ds, &asset); err != nil {
		return nil, err
	}
	if err := normalizeAssignment(&asset, statusGiven, asset.AssignedTo != nil); err != nil {
		return nil, err
	}

	ds.Assets = append(ds.Assets, asset)
	if err := uc.replace(ctx, ds, entity.CollectionAssets); err != nil {
		return nil, err
	}
	v := uc.views.Asset(asset, ds.People)
	return &v, nil
}

// Update actualiza un activo. AssignedTo "" lo libera.
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionAssets, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Assets, id, assetKey)
	if i < 0 {
		return nil, nil
	}
	asset := ds.Assets[i]
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		asset.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		asset.Type = *in.Type
	}
	if in.SerialNumber != nil {
		asset.SerialNumber = strings.TrimSpace(*in.SerialNumber)
	}
	if in.Status != nil {
		asset.Status = *in.Status
	}
	if in.Condition != nil {
		asset.Condition = *in.Condition
	}
	if in.Value != nil {
		asset.Value = *in.Value
	}
	if in.PurchaseDate != nil {
		asset.PurchaseDate = *in.PurchaseDate
	}
	if in.AssignedTo != nil {
		asset.AssignedTo = optionalID(in.AssignedTo)
	}
	if in.Notes != nil {
		asset.Notes = *in.Notes
	}
	if err := uc.validate(ds, &asset); err != nil {
		return nil, err
	}
	if err := normalizeAssignment(&asset, in.Status != nil, in.AssignedTo != nil); err != nil {
		return nil, err
	}
	asset.UpdatedAt = uc.now()
	ds.Assets[i] = asset

	if err := uc.replace(ctx, ds, entity.CollectionAssets); err != nil {
		return nil, err
	}
	v := uc.views.Asset(asset, ds.People)
	return &v, nil
}

// Delete elimina un activo. Un id inexistente no hace nada.
func (uc *AssetUseCase) Delete(ctx context.Context, id string) error {
	ds, err := uc.read(ctx, entity.CollectionAssets)
	if err != nil {
		return err
	}
	if indexOf(ds.Assets, id, assetKey) < 0 {
		return nil
	}
	ds.Assets = filter(ds.Assets, func(a entity.Asset) bool { return a.ID != id })
	return uc.replace(ctx, ds, entity.CollectionAssets)
}

// AssignToUser asigna el activo a la persona: assigned_to = personID y status = allocated.
// Activo inexistente: (nil, nil). Persona inexistente o de otra organización: ErrInvalidInput.
func (uc *AssetUseCase) AssignToUser(ctx context.Context, assetID, personID string) (*dto.AssetResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionAssets, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Assets, assetID, assetKey)
	if i < 0 {
		return nil, nil
	}
	a := &ds.Assets[i]
	if _, err := requirePersonInOrg(ds.People, personID, a.OrganizationID); err != nil {
		return nil, err
	}
	id := personID
	a.AssignedTo = &id
	a.Status = entity.AssetAllocated
	a.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionAssets); err != nil {
		return nil, err
	}
	v := uc.views.Asset(*a, ds.People)
	return &v, nil
}

// UnassignFromUser libera el activo: assigned_to = nil y status = available.
func (uc *AssetUseCase) UnassignFromUser(ctx context.Context, assetID string) (*dto.AssetResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionAssets, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Assets, assetID, assetKey)
	if i < 0 {
		return nil, nil
	}
	a := &ds.Assets[i]
	a.AssignedTo = nil
	a.Status = entity.AssetAvailable
	a.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionAssets); err != nil {
		return nil, err
	}
	v := uc.views.Asset(*a, ds.People)
	return &v, nil
}

func (uc *AssetUseCase) validate(ds *entity.Dataset, a *entity.Asset) error {
	if !entity.ValidAssetType(a.Type) {
		return fmt.Errorf("%w: type %q", domain.ErrInvalidInput, a.Type)
	}
	if !entity.ValidAssetStatus(a.Status) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, a.Status)
	}
	if !entity.ValidCondition(a.Condition) {
		return fmt.Errorf("%w: condition %q", domain.ErrInvalidInput, a.Condition)
	}
	if a.Value.IsNegative() {
		return fmt.Errorf("%w: value no puede ser negativo", domain.ErrInvalidInput)
	}
	if _, ok := status.ParseDate(a.PurchaseDate); !ok {
		return fmt.Errorf("%w: purchaseDate %q", domain.ErrInvalidInput, a.PurchaseDate)
	}
	a.PurchaseDate = status.NormalizeDate(a.PurchaseDate)
	if a.AssignedTo != nil {
		if _, err := requirePersonInOrg(ds.People, *a.AssignedTo, a.OrganizationID); err != nil {
			return err
		}
	}
	return nil
}

// normalizeAssignment sincroniza status y assigned_to. Cuando solo uno de los dos fue indicado,
// el otro se ajusta; si ambos se indicaron y se contradicen, es un error.
func normalizeAssignment(a *entity.Asset, statusGiven, assigneeGiven bool) error {
	switch {
	case a.AssignedTo != nil && a.Status != entity.AssetAllocated:
		switch {
		case statusGiven && assigneeGiven:
			return fmt.Errorf("%w: un activo asignado debe estar allocated", domain.ErrInvalidInput)
		case statusGiven:
			a.AssignedTo = nil
		default:
			a.Status = entity.AssetAllocated
		}
	case a.AssignedTo == nil && a.Status == entity.AssetAllocated:
		if statusGiven {
			return fmt.Errorf("%w: allocated requiere assignedTo", domain.ErrInvalidInput)
		}
		a.Status = entity.AssetAvailable
	}
	return nil
}
