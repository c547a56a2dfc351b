package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/pkg/config"
)

func newGlobals(t *testing.T) (*Globals, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Globals{
		DB:  config.DBConfig{File: filepath.Join(t.TempDir(), "app.sqlite")},
		Out: out,
	}, out
}

func TestSeedYExport(t *testing.T) {
	ctx := context.Background()
	g, out := newGlobals(t)

	require.NoError(t, (&SeedCmd{}).Run(ctx, g))
	require.NoError(t, (&SeedCmd{}).Run(ctx, g))
	require.NoError(t, (&ExportCmd{}).Run(ctx, g))

	var snap entity.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	require.Len(t, snap.Organizations, 1)
	assert.Equal(t, "Organização Principal", snap.Organizations[0].Name)
	assert.Len(t, snap.Teams, 1)
	assert.NotEmpty(t, snap.ExportDate)
}

func TestExport_AArchivo(t *testing.T) {
	ctx := context.Background()
	g, out := newGlobals(t)
	require.NoError(t, (&SeedCmd{}).Run(ctx, g))

	file := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, (&ExportCmd{Out: file}).Run(ctx, g))
	assert.Zero(t, out.Len())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"organizations"`)
}

func TestComandosDestructivos_RequierenYes(t *testing.T) {
	ctx := context.Background()
	g, _ := newGlobals(t)
	file := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))

	assert.ErrorIs(t, (&ClearCmd{}).Run(ctx, g), ErrNotConfirmed)
	assert.ErrorIs(t, (&RestoreCmd{}).Run(ctx, g), ErrNotConfirmed)
	assert.ErrorIs(t, (&ImportCmd{File: file}).Run(ctx, g), ErrNotConfirmed)
}

func TestClearRestoreYEstadoDelBackup(t *testing.T) {
	ctx := context.Background()
	g, out := newGlobals(t)
	require.NoError(t, (&SeedCmd{}).Run(ctx, g))

	require.NoError(t, (&BackupStatusCmd{}).Run(ctx, g))
	assert.Equal(t, "sin backup\n", out.String())
	assert.ErrorIs(t, (&RestoreCmd{Yes: true}).Run(ctx, g), domain.ErrNoBackup)

	require.NoError(t, (&ClearCmd{Yes: true}).Run(ctx, g))
	out.Reset()
	require.NoError(t, (&ExportCmd{}).Run(ctx, g))
	var empty entity.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &empty))
	assert.Empty(t, empty.Organizations)

	out.Reset()
	require.NoError(t, (&BackupStatusCmd{}).Run(ctx, g))
	assert.Equal(t, "backup disponible\n", out.String())

	require.NoError(t, (&RestoreCmd{Yes: true}).Run(ctx, g))
	out.Reset()
	require.NoError(t, (&ExportCmd{}).Run(ctx, g))
	var restored entity.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &restored))
	assert.Len(t, restored.Organizations, 1)
}

func TestImport_SnapshotInvalido(t *testing.T) {
	ctx := context.Background()
	g, _ := newGlobals(t)
	file := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"organizations": []}`), 0o600))

	err := (&ImportCmd{File: file, Yes: true}).Run(ctx, g)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
}
