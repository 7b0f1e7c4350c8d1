package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseek/poseek/pkg/types"
)

func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func saveMouseSchema(t *testing.T, b *Backend) types.Schema {
	t.Helper()
	schema, err := types.Define("mouse", []string{"head", "neck", "tail"},
		[]types.Connection{{0, 1}, {1, 2}})
	require.NoError(t, err)
	require.NoError(t, b.SaveSchema(schema))
	return schema
}

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(cfg))
	assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, b.Detach())
	// Detach is idempotent.
	require.NoError(t, b.Detach())

	// Operations after detach fail.
	_, err := b.Images()
	assert.ErrorIs(t, err, types.ErrProjectDetached)
	assert.ErrorIs(t, b.SaveSchema(types.Schema{}), types.ErrProjectDetached)
}

func TestBackendAttachValidatesConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
}

func TestSchemaSnapshotRoundTrip(t *testing.T) {
	b := attachedBackend(t)

	_, err := b.LoadSchema()
	assert.ErrorIs(t, err, types.ErrNoActiveSchema)

	want := saveMouseSchema(t, b)

	got, err := b.LoadSchema()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Replacing the snapshot keeps a single row.
	replacement, err := types.Define("fly", []string{"thorax", "wing"}, nil)
	require.NoError(t, err)
	require.NoError(t, b.SaveSchema(replacement))

	got, err = b.LoadSchema()
	require.NoError(t, err)
	assert.Equal(t, "fly", got.Name)
	assert.Equal(t, []string{"thorax", "wing"}, got.BodyParts)
}

func TestSchemaSwitchPurgesStalePoints(t *testing.T) {
	b := attachedBackend(t)
	saveMouseSchema(t, b)

	require.NoError(t, b.SetPoint("a.jpg", "head", types.Point{X: 1, Y: 2}))
	require.NoError(t, b.SetPoint("a.jpg", "tail", types.Point{X: 3, Y: 4}))

	// The replacement keeps tail but drops head and neck.
	replacement, err := types.Define("fly", []string{"wing", "tail"}, nil)
	require.NoError(t, err)
	require.NoError(t, b.SaveSchema(replacement))

	points, err := b.Points("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, map[string]types.Point{"tail": {X: 3, Y: 4}}, points)

	// The store accepts the new schema's parts straight away.
	require.NoError(t, b.SetPoint("a.jpg", "wing", types.Point{X: 5, Y: 6}))
	assert.ErrorIs(t, b.SetPoint("a.jpg", "head", types.Point{X: 7, Y: 8}),
		types.ErrUnknownBodyPart)
}

func TestSaveSchemaValidates(t *testing.T) {
	b := attachedBackend(t)
	bad := types.Schema{Name: "bad", BodyParts: []string{"a", "a"}}
	assert.ErrorIs(t, b.SaveSchema(bad), types.ErrDuplicateBodyPart)
}

func TestPointCRUD(t *testing.T) {
	b := attachedBackend(t)
	saveMouseSchema(t, b)

	require.NoError(t, b.SetPoint("a.jpg", "head", types.Point{X: 10, Y: 20}))
	require.NoError(t, b.SetPoint("a.jpg", "tail", types.Point{X: 30, Y: 40}))

	points, err := b.Points("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, map[string]types.Point{
		"head": {X: 10, Y: 20},
		"tail": {X: 30, Y: 40},
	}, points)

	// Upsert overwrites.
	require.NoError(t, b.SetPoint("a.jpg", "head", types.Point{X: 11, Y: 21}))
	points, err = b.Points("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, types.Point{X: 11, Y: 21}, points["head"])

	// Unknown body part rejected.
	assert.ErrorIs(t, b.SetPoint("a.jpg", "wing", types.Point{}), types.ErrUnknownBodyPart)

	require.NoError(t, b.DeletePoints("a.jpg", "head", "neck"))
	points, err = b.Points("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, map[string]types.Point{"tail": {X: 30, Y: 40}}, points)

	// Unknown body part fails the whole delete.
	assert.ErrorIs(t, b.DeletePoints("a.jpg", "tail", "wing"), types.ErrUnknownBodyPart)
	points, err = b.Points("a.jpg")
	require.NoError(t, err)
	assert.Len(t, points, 1)
}

func TestSetPointRequiresSchema(t *testing.T) {
	b := attachedBackend(t)
	err := b.SetPoint("a.jpg", "head", types.Point{X: 1, Y: 2})
	assert.ErrorIs(t, err, types.ErrNoActiveSchema)
}

func TestImageRegistration(t *testing.T) {
	b := attachedBackend(t)
	saveMouseSchema(t, b)

	require.NoError(t, b.AddImages("img1.jpg", "img2.jpg"))
	// Duplicates are ignored; SetPoint registers implicitly.
	require.NoError(t, b.AddImages("img1.jpg"))
	require.NoError(t, b.SetPoint("img3.jpg", "head", types.Point{X: 1, Y: 1}))

	images, err := b.Images()
	require.NoError(t, err)
	assert.Equal(t, []string{"img1.jpg", "img2.jpg", "img3.jpg"}, images)

	assert.ErrorIs(t, b.AddImages(""), types.ErrInvalidData)
}

func TestPointsUnknownImage(t *testing.T) {
	b := attachedBackend(t)
	saveMouseSchema(t, b)

	points, err := b.Points("ghost.jpg")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestPersistenceAcrossReattach(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	saveMouseSchema(t, b)
	require.NoError(t, b.SetPoint("a.jpg", "head", types.Point{X: 10, Y: 20}))
	require.NoError(t, b.Detach())

	// A fresh backend over the same data dir sees the saved state.
	fresh := NewBackend()
	require.NoError(t, fresh.Attach(cfg))
	defer fresh.Detach()

	schema, err := fresh.LoadSchema()
	require.NoError(t, err)
	assert.Equal(t, "mouse", schema.Name)

	points, err := fresh.Points("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, map[string]types.Point{"head": {X: 10, Y: 20}}, points)
}
