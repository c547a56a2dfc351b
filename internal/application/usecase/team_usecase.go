package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

// TeamUseCase casos de uso para equipos y su membresía.
type TeamUseCase struct {
	base
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(store repository.Store, views *view.Composer) *TeamUseCase {
	return &TeamUseCase{base: newBase(store, views)}
}

// GetAll lista los equipos de la organización ordenados por nombre.
func (uc *TeamUseCase) GetAll(ctx context.Context, orgID string) ([]dto.TeamResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamResponse, 0)
	for _, t := range ds.Teams {
		if t.OrganizationID == orgID {
			out = append(out, uc.views.Team(t, ds.People))
		}
	}
	sortByName(out, func(t dto.TeamResponse) string { return t.Name })
	return out, nil
}

// GetByID obtiene un equipo por ID.
func (uc *TeamUseCase) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Teams, id, teamKey)
	if i < 0 {
		return nil, nil
	}
	v := uc.views.Team(ds.Teams[i], ds.People)
	return &v, nil
}

// Create crea un equipo en la organización.
func (uc *TeamUseCase) Create(ctx context.Context, orgID string, in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	ds, err := uc.read(ctx, entity.CollectionOrganizations, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	if err := requireOrganization(ds, orgID); err != nil {
		return nil, err
	}
	now := uc.now()
	team := entity.Team{
		ID:             newID(),
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		OrganizationID: orgID,
		ManagerID:      optionalID(in.ManagerID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	ds.Teams = append(ds.Teams, team)
	if err := uc.replace(ctx, ds, entity.CollectionTeams); err != nil {
		return nil, err
	}
	v := uc.views.Team(team, ds.People)
	return &v, nil
}

// Update actualiza un equipo. ManagerID "" quita el gerente.
func (uc *TeamUseCase) Update(ctx context.Context, id string, in dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.Teams, id, teamKey)
	if i < 0 {
		return nil, nil
	}
	team := &ds.Teams[i]
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		team.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		team.Description = *in.Description
	}
	if in.ManagerID != nil {
		team.ManagerID = optionalID(in.ManagerID)
	}
	team.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionTeams); err != nil {
		return nil, err
	}
	v := uc.views.Team(*team, ds.People)
	return &v, nil
}

// Delete anula team_id de los miembros y luego elimina el equipo; las personas no se eliminan.
func (uc *TeamUseCase) Delete(ctx context.Context, id string) error {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return err
	}
	if indexOf(ds.Teams, id, teamKey) < 0 {
		return nil
	}
	now := uc.now()
	for i := range ds.People {
		if p := &ds.People[i]; p.TeamID != nil && *p.TeamID == id {
			p.TeamID = nil
			p.UpdatedAt = now
		}
	}
	ds.Teams = filter(ds.Teams, func(t entity.Team) bool { return t.ID != id })
	return uc.replace(ctx, ds, entity.CollectionTeams, entity.CollectionPeople)
}

// AddPerson mueve la persona al equipo. Equipo o persona inexistentes: (nil, nil).
func (uc *TeamUseCase) AddPerson(ctx context.Context, teamID, personID string) (*dto.TeamResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	ti := indexOf(ds.Teams, teamID, teamKey)
	pi := indexOf(ds.People, personID, personKey)
	if ti < 0 || pi < 0 {
		return nil, nil
	}
	team := ds.Teams[ti]
	if _, err := requirePersonInOrg(ds.People, personID, team.OrganizationID); err != nil {
		return nil, err
	}
	p := &ds.People[pi]
	if p.TeamID == nil || *p.TeamID != teamID {
		id := teamID
		p.TeamID = &id
		p.UpdatedAt = uc.now()
		if err := uc.replace(ctx, ds, entity.CollectionPeople); err != nil {
			return nil, err
		}
	}
	v := uc.views.Team(team, ds.People)
	return &v, nil
}

// RemovePerson saca a la persona del equipo si pertenece a él. Equipo inexistente: (nil, nil).
func (uc *TeamUseCase) RemovePerson(ctx context.Context, teamID, personID string) (*dto.TeamResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	if err != nil {
		return nil, err
	}
	ti := indexOf(ds.Teams, teamID, teamKey)
	if ti < 0 {
		return nil, nil
	}
	if pi := indexOf(ds.People, personID, personKey); pi >= 0 {
		p := &ds.People[pi]
		if p.TeamID != nil && *p.TeamID == teamID {
			p.TeamID = nil
			p.UpdatedAt = uc.now()
			if err := uc.replace(ctx, ds, entity.CollectionPeople); err != nil {
				return nil, err
			}
		}
	}
	v := uc.views.Team(ds.Teams[ti], ds.People)
	return &v, nil
}

// Members personas activas del equipo, ordenadas por nombre. Equipo inexistente: lista vacía.
func (uc *TeamUseCase) Members(ctx context.Context, teamID string) ([]dto.PersonResponse, error) {
	ds, err := uc.read(ctx, entity.CollectionTeams, entity.CollectionPeople, entity.CollectionAssets, entity.CollectionLicenses)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonResponse, 0)
	for _, p := range ds.People {
		if p.TeamID != nil && *p.TeamID == teamID && p.Status == entity.PersonActive {
			out = append(out, uc.views.Person(p, ds))
		}
	}
	sortByName(out, func(p dto.PersonResponse) string { return p.Name })
	return out, nil
}
