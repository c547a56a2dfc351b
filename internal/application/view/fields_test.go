package view

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

func jsonTags(v any) []string {
	t := reflect.TypeOf(v)
	var tags []string
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name != "" && name != "-" {
			tags = append(tags, name)
		}
	}
	return tags
}

// La tabla debe cubrir exactamente los campos de la fila y de la vista.
func TestFieldTable_ExhaustivaYSimetrica(t *testing.T) {
	pairs := map[entity.Collection][2]any{
		entity.CollectionOrganizations: {entity.Organization{}, dto.OrganizationResponse{}},
		entity.CollectionTeams:         {entity.Team{}, dto.TeamResponse{}},
		entity.CollectionPeople:        {entity.Person{}, dto.PersonResponse{}},
		entity.CollectionAssets:        {entity.Asset{}, dto.AssetResponse{}},
		entity.CollectionLicenses:      {entity.License{}, dto.LicenseResponse{}},
		entity.CollectionInventory:     {entity.InventoryItem{}, dto.InventoryItemResponse{}},
	}
	require.Len(t, pairs, len(entity.AllCollections))

	for c, pair := range pairs {
		stored := jsonTags(pair[0])
		assert.Len(t, storedToView[c], len(stored), string(c))
		for _, s := range stored {
			v, ok := ViewField(c, s)
			require.True(t, ok, "%s.%s sin nombre de vista", c, s)
			back, ok := StoredField(c, v)
			require.True(t, ok)
			assert.Equal(t, s, back)
		}

		viewTags := map[string]bool{}
		for _, v := range jsonTags(pair[1]) {
			viewTags[v] = true
			_, mapped := StoredField(c, v)
			assert.True(t, mapped || IsDerived(c, v), "%s: campo de vista %s sin origen", c, v)
		}
		for _, v := range storedToView[c] {
			assert.True(t, viewTags[v], "%s: %s falta en la vista", c, v)
		}
	}
}

func TestToStoredRecords(t *testing.T) {
	raw := `[{"id":"l1","name":"Figma","expirationDate":"2026-05-01","totalQuantity":2,"usedQuantity":1,
		"status":"active","assignedTo":["p1"],"organizationId":"o1","individualCodes":{"p1":"X"},"extra":1}]`

	out, err := ToStoredRecords(entity.CollectionLicenses, []byte(raw))
	require.NoError(t, err)

	var recs []map[string]any
	require.NoError(t, json.Unmarshal(out, &recs))
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "2026-05-01", rec["expiration_date"])
	assert.Equal(t, "o1", rec["organization_id"])
	assert.Contains(t, rec, "individual_codes")
	assert.NotContains(t, rec, "usedQuantity")
	assert.NotContains(t, rec, "status")
	assert.NotContains(t, rec, "extra")

	ds := entity.NewDataset()
	require.NoError(t, ds.Decode(entity.CollectionLicenses, out))
	assert.Equal(t, entity.IDList{"p1"}, ds.Licenses[0].AssignedTo)
}

func TestToStoredRecords_FormaAlmacenadaPrevalece(t *testing.T) {
	out, err := ToStoredRecords(entity.CollectionAssets,
		[]byte(`[{"id":"a1","status":"allocated","assigned_to":"p1","assignedTo":"p2"}]`))
	require.NoError(t, err)

	var recs []map[string]any
	require.NoError(t, json.Unmarshal(out, &recs))
	assert.Equal(t, "p1", recs[0]["assigned_to"])
	assert.Equal(t, "allocated", recs[0]["status"])
}

func TestToStoredRecords_NoArreglo(t *testing.T) {
	_, err := ToStoredRecords(entity.CollectionPeople, []byte(`{"id":"p1"}`))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = ToStoredRecords(entity.CollectionPeople, []byte(`[1]`))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = ToStoredRecords(entity.Collection("users"), []byte(`[]`))
	assert.True(t, errors.Is(err, domain.ErrUnknownCollection))
}
