package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseek/poseek/pkg/types"
)

func mouseSession(t *testing.T, images ...string) *types.Session {
	t.Helper()
	schema, err := types.Define("mouse", []string{"head", "neck", "tail"},
		[]types.Connection{{0, 1}, {1, 2}})
	require.NoError(t, err)
	return types.NewSession(schema, images)
}

func TestCSVScenario(t *testing.T) {
	sess := mouseSession(t, "a.jpg")
	st, err := sess.Store("a.jpg")
	require.NoError(t, err)
	require.NoError(t, st.SetPoint("head", 10, 20))
	require.NoError(t, st.SetPoint("tail", 30, 40))

	data, err := CSV(sess)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "filename,head_x,head_y,neck_x,neck_y,tail_x,tail_y", lines[0])
	assert.Equal(t, "a.jpg,10,20,,,30,40", lines[1])
}

func TestCSVRowAndColumnCounts(t *testing.T) {
	sess := mouseSession(t, "a.jpg", "b.jpg", "c.jpg")

	// Two visited stores, one with points and one empty; c.jpg never
	// visited and therefore not exported.
	st, err := sess.Store("a.jpg")
	require.NoError(t, err)
	require.NoError(t, st.SetPoint("neck", 1.5, 2.5))
	_, err = sess.Store("b.jpg")
	require.NoError(t, err)

	data, err := CSV(sess)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 1+2*3, len(strings.Split(line, ",")))
	}
	assert.Equal(t, "a.jpg,,,1.5,2.5,,", lines[1])
	assert.Equal(t, "b.jpg,,,,,,", lines[2])
}

func TestCSVRowOrderFollowsImageOrder(t *testing.T) {
	sess := mouseSession(t, "img1.jpg", "img2.jpg", "img10.jpg")
	for _, name := range []string{"img10.jpg", "img1.jpg", "img2.jpg"} {
		st, err := sess.Store(name)
		require.NoError(t, err)
		require.NoError(t, st.SetPoint("head", 1, 1))
	}

	data, err := CSV(sess)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "img1.jpg,"))
	assert.True(t, strings.HasPrefix(lines[2], "img2.jpg,"))
	assert.True(t, strings.HasPrefix(lines[3], "img10.jpg,"))
}

func TestWriteAndReadCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CSVFileName)

	sess := mouseSession(t, "a.jpg", "b.jpg")
	st, err := sess.Store("a.jpg")
	require.NoError(t, err)
	require.NoError(t, st.SetPoint("head", 10, 20))
	require.NoError(t, st.SetPoint("tail", 30.5, 40.25))

	require.NoError(t, WriteCSV(path, sess))

	fresh := mouseSession(t, "a.jpg", "b.jpg")
	imported, err := ReadCSV(path, fresh)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	loaded, err := fresh.Store("a.jpg")
	require.NoError(t, err)
	p, ok := loaded.Point("head")
	assert.True(t, ok)
	assert.Equal(t, types.Point{X: 10, Y: 20}, p)
	p, ok = loaded.Point("tail")
	assert.True(t, ok)
	assert.Equal(t, types.Point{X: 30.5, Y: 40.25}, p)
	_, ok = loaded.Point("neck")
	assert.False(t, ok)
}

func TestReadCSVHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CSVFileName)
	content := "filename,wing_x,wing_y\na.jpg,1,2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sess := mouseSession(t, "a.jpg")
	_, err := ReadCSV(path, sess)
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestReadCSVSkipsUnknownImagesAndBadCells(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CSVFileName)
	content := strings.Join([]string{
		"filename,head_x,head_y,neck_x,neck_y,tail_x,tail_y",
		"a.jpg,10,20,oops,5,,",
		"ghost.jpg,1,2,3,4,5,6",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sess := mouseSession(t, "a.jpg")
	imported, err := ReadCSV(path, sess)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	st, err := sess.Store("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())
	p, _ := st.Point("head")
	assert.Equal(t, types.Point{X: 10, Y: 20}, p)
}
