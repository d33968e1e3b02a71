package geolife

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pltPreamble = `Geolife trajectory
WGS 84
Altitude is in Feet
Reserved 3
0,2,255,My Track,0,0,2,8421376
0
`

func TestParsePLT_Basic(t *testing.T) {
	input := pltPreamble +
		"39.984702,116.318417,0,492,39744.1201851852,2008-10-23,02:53:04\r\n" +
		"39.984683,116.318450,0,492,39744.1202314815,2008-10-23,02:53:08\r\n"

	points, err := ParsePLT(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, 39.984702, points[0].Lat)
	assert.Equal(t, 116.318417, points[0].Lon)
	assert.Equal(t, 492.0, points[0].Alt)
	// 39744.1201851852 Excel days is 2008-10-23 02:53:04 UTC.
	assert.Equal(t, int64(1224730384), points[0].Timestamp)

	assert.Equal(t, int64(1224730388), points[1].Timestamp)
}

func TestParsePLT_AltitudeSentinel(t *testing.T) {
	input := pltPreamble +
		"1.5,2.5,0,-777,39744.0,2008-10-23,00:00:00\n"

	points, err := ParsePLT(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, -777.0, points[0].Alt, "the unknown-altitude sentinel must pass through unchanged")
}

func TestParsePLT_PreambleOnly(t *testing.T) {
	points, err := ParsePLT(strings.NewReader(pltPreamble))

	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestParsePLT_InvalidFieldCount(t *testing.T) {
	input := pltPreamble + "39.984702,116.318417,0\n"

	_, err := ParsePLT(strings.NewReader(input))

	require.ErrorIs(t, err, ErrInvalidFieldCount)
	assert.Contains(t, err.Error(), "line 7")
}

func TestParsePLT_InvalidNumbers(t *testing.T) {
	cases := map[string]string{
		"latitude":  "oops,116.3,0,492,39744.0,2008-10-23,00:00:00\n",
		"longitude": "39.9,oops,0,492,39744.0,2008-10-23,00:00:00\n",
		"altitude":  "39.9,116.3,0,oops,39744.0,2008-10-23,00:00:00\n",
		"date":      "39.9,116.3,0,492,oops,2008-10-23,00:00:00\n",
	}

	for field, line := range cases {
		_, err := ParsePLT(strings.NewReader(pltPreamble + line))

		require.Error(t, err, field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestReadDir_MergesAndSorts(t *testing.T) {
	dir := t.TempDir()

	later := pltPreamble + "40.0,116.4,0,100,39745.0,2008-10-24,00:00:00\n"
	earlier := pltPreamble + "39.9,116.3,0,100,39744.0,2008-10-23,00:00:00\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.plt"), []byte(later), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.plt"), []byte(earlier), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a trajectory"), 0o644))

	traj, totalSize, err := ReadDir(dir)

	require.NoError(t, err)
	require.Len(t, traj, 2)
	assert.Less(t, traj[0].Timestamp, traj[1].Timestamp, "points must be sorted by timestamp across files")
	assert.Equal(t, int64(len(later)+len(earlier)), totalSize, "only .plt files count toward the input size")
}

func TestReadDir_MissingDirectory(t *testing.T) {
	_, _, err := ReadDir(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
}
