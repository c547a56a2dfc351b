package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

// OrganizationUseCase casos de uso CRUD para organizaciones.
type OrganizationUseCase struct {
	base
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(store repository.Store, views *view.Composer) *OrganizationUseCase {
	return &OrganizationUseCase{base: newBase(store, views)}
}

// GetAll lista todas las organizaciones ordenadas por nombre.
func (uc *OrganizationUseCase) GetAll(ctx context.Context) ([]dto.OrganizationResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionOrganizations)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationResponse, 0, len(ds.Organizations))
	for _, o := range ds.Organizations {
		out = append(out, uc.views.Organization(o))
	}
	sortByName(out, func(o dto.OrganizationResponse) string { return o.Name })
	return out, nil
}

// GetByID obtiene una organización por ID.
func (uc *OrganizationUseCase) GetByID(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionOrganizations)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Organizations, id, orgKey)
	if i < 0 {
		return nil, nil
	}
	v := uc.views.Organization(ds.Organizations[i])
	return &v, nil
}

// Create crea una nueva organización.
func (uc *OrganizationUseCase) Create(ctx context.Context, in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	ds, err := uc.read(ctx, entity.CollectionOrganizations)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	org := entity.Organization{
		ID:          newID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ds.Organizations = append(ds.Organizations, org)
	if err := uc.replace(ctx, ds, entity.CollectionOrganizations); err != nil {
		return nil, err
	}
	v := uc.views.Organization(org)
	return &v, nil
}

// Update actualiza una organización.
func (uc *OrganizationUseCase) Update(ctx context.Context, id string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionOrganizations)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Organizations, id, orgKey)
	if i < 0 {
		return nil, nil
	}
	org := &ds.Organizations[i]
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		org.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		org.Description = *in.Description
	}
	org.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionOrganizations); err != nil {
		return nil, err
	}
	v := uc.views.Organization(*org)
	return &v, nil
}

// Delete elimina la organización y todo lo que depende de ella (equipos, personas, activos,
// licencias e inventario) en un único reemplazo. Un id inexistente no hace nada.
func (uc *OrganizationUseCase) Delete(ctx context.Context, id string) error {
	ds, err := uc.read(ctx)
	if err != nil {
		return err
	}
	if indexOf(ds.Organizations, id, orgKey) < 0 {
		return nil
	}
	ds.Organizations = filter(ds.Organizations, func(o entity.Organization) bool { return o.ID != id })
	ds.Teams = filter(ds.Teams, func(t entity.Team) bool { return t.OrganizationID != id })
	ds.People = filter(ds.People, func(p entity.Person) bool { return p.OrganizationID != id })
	ds.Assets = filter(ds.Assets, func(a entity.Asset) bool { return a.OrganizationID != id })
	ds.Licenses = filter(ds.Licenses, func(l entity.License) bool { return l.OrganizationID != id })
	ds.Inventory = filter(ds.Inventory, func(i entity.InventoryItem) bool { return i.OrganizationID != id })
	return uc.replace(ctx, ds)
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
