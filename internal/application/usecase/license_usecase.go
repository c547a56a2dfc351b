package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

// LicenseUseCase casos de uso para licencias de software.
// Invariante: len(assigned_to) <= total_quantity.
type LicenseUseCase struct {
	base
}

// NewLicenseUseCase construye el caso de uso.
func NewLicenseUseCase(store repository.Store, views *view.Composer) *LicenseUseCase {
	return &LicenseUseCase{base: newBase(store, views)}
}

// GetAll lista las licencias de la organización, de la que vence más tarde a la que vence antes.
func (uc *LicenseUseCase) GetAll(ctx context.Context, orgID string) ([]dto.LicenseResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LicenseResponse, 0)
	for _, l := range ds.Licenses {
		if l.OrganizationID == orgID {
			out = append(out, uc.views.License(l))
		}
	}
	sortByDateDesc(out, func(l dto.LicenseResponse) string { return l.ExpirationDate })
	return out, nil
}

// GetByID obtiene una licencia por ID.
func (uc *LicenseUseCase) GetByID(ctx context.Context, id string) (*dto.LicenseResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Licenses, id, licenseKey)
	if i < 0 {
		return nil, nil
	}
	v := uc.views.License(ds.Licenses[i])
	return &v, nil
}

// Create crea una licencia sin asignaciones.
func (uc *LicenseUseCase) Create(ctx context.Context, orgID string, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	ds, err := uc.read(ctx, entity.CollectionOrganizations, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	if err := requireOrganization(ds, orgID); err != nil {
		return nil, err
	}
	now := uc.now()
	license := entity.License{
		ID:              newID(),
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		ExpirationDate:  in.ExpirationDate,
		TotalQuantity:   in.TotalQuantity,
		Cost:            nullDecimal(in.Cost),
		Vendor:          in.Vendor,
		OrganizationID:  orgID,
		AssignedTo:      entity.IDList{},
		LicenseCode:     strings.TrimSpace(in.LicenseCode),
		IndividualCodes: entity.CodeMap{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := validateLicense(&license); err != nil {
		return nil, err
	}
	ds.Licenses = append(ds.Licenses, license)
	if err := uc.replace(ctx, ds, entity.CollectionLicenses); err != nil {
		return nil, err
	}
	v := uc.views.License(license)
	return &v, nil
}

// Update actualiza una licencia. Reducir total_quantity por debajo de los cupos usados es un error.
func (uc *LicenseUseCase) Update(ctx context.Context, id string, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Licenses, id, licenseKey)
	if i < 0 {
		return nil, nil
	}
	l := ds.Licenses[i]
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		l.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.ExpirationDate != nil {
		l.ExpirationDate = *in.ExpirationDate
	}
	if in.TotalQuantity != nil {
		l.TotalQuantity = *in.TotalQuantity
	}
	if in.Cost != nil {
		l.Cost = nullDecimal(in.Cost)
	}
	if in.Vendor != nil {
		l.Vendor = *in.Vendor
	}
	if in.LicenseCode != nil {
		l.LicenseCode = strings.TrimSpace(*in.LicenseCode)
	}
	if err := validateLicense(&l); err != nil {
		return nil, err
	}
	l.UpdatedAt = uc.now()
	ds.Licenses[i] = l
	if err := uc.replace(ctx, ds, entity.CollectionLicenses); err != nil {
		return nil, err
	}
	v := uc.views.License(l)
	return &v, nil
}

// Delete elimina una licencia. Un id inexistente no hace nada.
func (uc *LicenseUseCase) Delete(ctx context.Context, id string) error {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return err
	}
	if indexOf(ds.Licenses, id, licenseKey) < 0 {
		return nil
	}
	ds.Licenses = filter(ds.Licenses, func(l entity.License) bool { return l.ID != id })
	return uc.replace(ctx, ds, entity.CollectionLicenses)
}

// AssignToUser agrega la persona a assigned_to. Es idempotente; sin cupos libres no escribe nada
// y responde Assigned=false. Licencia inexistente: (nil, nil).
func (uc *LicenseUseCase) AssignToUser(ctx context.Context, licenseID, personID string) (*dto.LicenseAssignResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Licenses, licenseID, licenseKey)
	if i < 0 {
		return nil, nil
	}
	l := &ds.Licenses[i]
	if _, err := requirePersonInOrg(ds.People, personID, l.OrganizationID); err != nil {
		return nil, err
	}

	changed, err := assignSeat(l, personID)
	switch {
	case errors.Is(err, domain.ErrCapacityReached):
		return &dto.LicenseAssignResponse{Assigned: false, License: uc.views.License(*l)}, nil
	case err != nil:
		return nil, err
	}
	if changed {
		l.UpdatedAt = uc.now()
		if err := uc.replace(ctx, ds, entity.CollectionLicenses); err != nil {
			return nil, err
		}
	}
	return &dto.LicenseAssignResponse{Assigned: true, License: uc.views.License(*l)}, nil
}

// UnassignFromUser quita a la persona de assigned_to y elimina su código individual.
func (uc *LicenseUseCase) UnassignFromUser(ctx context.Context, licenseID, personID string) (*dto.LicenseResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Licenses, licenseID, licenseKey)
	if i < 0 {
		return nil, nil
	}
	l := &ds.Licenses[i]
	_, hasCode := l.IndividualCodes[personID]
	if l.AssignedTo.Contains(personID) || hasCode {
		l.AssignedTo = l.AssignedTo.Without(personID)
		delete(l.IndividualCodes, personID)
		l.UpdatedAt = uc.now()
		if err := uc.replace(ctx, ds, entity.CollectionLicenses); err != nil {
			return nil, err
		}
	}
	v := uc.views.License(*l)
	return &v, nil
}

// UpdateLicenseCode reemplaza el código general de la licencia.
func (uc *LicenseUseCase) UpdateLicenseCode(ctx context.Context, licenseID, code string) (*dto.LicenseResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Licenses, licenseID, licenseKey)
	if i < 0 {
		return nil, nil
	}
	l := &ds.Licenses[i]
	l.LicenseCode = strings.TrimSpace(code)
	l.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionLicenses); err != nil {
		return nil, err
	}
	v := uc.views.License(*l)
	return &v, nil
}

// UpdateIndividualCode guarda el código de la persona; un código vacío (tras trim) elimina la entrada.
// La persona debe tener un cupo asignado.
func (uc *LicenseUseCase) UpdateIndividualCode(ctx context.Context, licenseID, personID, code string) (*dto.LicenseResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Licenses, licenseID, licenseKey)
	if i < 0 {
		return nil, nil
	}
	l := &ds.Licenses[i]
	code = strings.TrimSpace(code)
	if code != "" && !l.AssignedTo.Contains(personID) {
		return nil, fmt.Errorf("%w: la persona %q no tiene cupo en la licencia", domain.ErrInvalidInput, personID)
	}
	if l.IndividualCodes == nil {
		l.IndividualCodes = entity.CodeMap{}
	}
	if code == "" {
		delete(l.IndividualCodes, personID)
	} else {
		l.IndividualCodes[personID] = code
	}
	l.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionLicenses); err != nil {
		return nil, err
	}
	v := uc.views.License(*l)
	return &v, nil
}

// assignSeat agrega personID si hay cupo. Devuelve false si ya estaba asignada.
func assignSeat(l *entity.License, personID string) (bool, error) {
	if l.AssignedTo.Contains(personID) {
		return false, nil
	}
	if l.UsedQuantity() >= l.TotalQuantity {
		return false, domain.ErrCapacityReached
	}
	l.AssignedTo = append(l.AssignedTo, personID)
	return true, nil
}

func validateLicense(l *entity.License) error {
	if _, ok := status.ParseDate(l.ExpirationDate); !ok {
		return fmt.Errorf("%w: expirationDate %q", domain.ErrInvalidInput, l.ExpirationDate)
	}
	l.ExpirationDate = status.NormalizeDate(l.ExpirationDate)
	if l.TotalQuantity < 0 {
		return fmt.Errorf("%w: totalQuantity no puede ser negativo", domain.ErrInvalidInput)
	}
	if l.TotalQuantity < l.UsedQuantity() {
		return fmt.Errorf("%w: totalQuantity (%d) menor que los cupos asignados (%d)",
			domain.ErrInvalidInput, l.TotalQuantity, l.UsedQuantity())
	}
	if l.Cost.Valid && l.Cost.Decimal.IsNegative() {
		return fmt.Errorf("%w: cost no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
