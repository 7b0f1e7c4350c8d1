package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) Schema {
	t.Helper()
	s, err := Define("mouse", []string{"head", "neck", "tail"}, []Connection{{0, 1}, {1, 2}})
	require.NoError(t, err)
	return s
}

func TestStoreSetPoint(t *testing.T) {
	st := NewStore(testSchema(t))

	require.NoError(t, st.SetPoint("head", 10, 20))
	p, ok := st.Point("head")
	assert.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 20}, p)

	// Overwrite is allowed.
	require.NoError(t, st.SetPoint("head", 15, 25))
	p, _ = st.Point("head")
	assert.Equal(t, Point{X: 15, Y: 25}, p)
	assert.Equal(t, 1, st.Len())

	// Out-of-image coordinates are accepted as-is.
	require.NoError(t, st.SetPoint("tail", -5, 1e6))

	assert.ErrorIs(t, st.SetPoint("wing", 1, 2), ErrUnknownBodyPart)
}

func TestStoreDeletePoint(t *testing.T) {
	st := NewStore(testSchema(t))
	require.NoError(t, st.SetPoint("head", 10, 20))

	require.NoError(t, st.DeletePoint("head"))
	_, ok := st.Point("head")
	assert.False(t, ok)

	// Deleting an absent point is a no-op.
	require.NoError(t, st.DeletePoint("head"))

	assert.ErrorIs(t, st.DeletePoint("wing"), ErrUnknownBodyPart)
}

func TestStoreDeleteSelected(t *testing.T) {
	st := NewStore(testSchema(t))
	require.NoError(t, st.SetPoint("head", 1, 2))
	require.NoError(t, st.SetPoint("neck", 3, 4))
	require.NoError(t, st.SetPoint("tail", 5, 6))

	require.NoError(t, st.DeleteSelected("head", "tail"))
	assert.Equal(t, 1, st.Len())
	_, ok := st.Point("neck")
	assert.True(t, ok)
}

func TestStoreDeleteSelectedAtomic(t *testing.T) {
	st := NewStore(testSchema(t))
	require.NoError(t, st.SetPoint("head", 1, 2))

	// One unknown name fails the whole call; nothing is deleted.
	err := st.DeleteSelected("head", "wing")
	assert.ErrorIs(t, err, ErrUnknownBodyPart)
	assert.Equal(t, 1, st.Len())
}

func TestStorePointsCopy(t *testing.T) {
	st := NewStore(testSchema(t))
	require.NoError(t, st.SetPoint("head", 1, 2))

	points := st.Points()
	points["head"] = Point{X: 99, Y: 99}

	p, _ := st.Point("head")
	assert.Equal(t, Point{X: 1, Y: 2}, p)
}
