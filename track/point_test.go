package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/trajo/errs"
)

func TestQuantizeCoord_RoundTrip(t *testing.T) {
	// Values constructed on the microdegree grid must survive exactly.
	cases := []int64{0, 1, -1, 39_984_702, 116_318_417, -90_000_000, 180_000_000}

	for _, fixed := range cases {
		deg := CoordFromFixed(fixed)
		q, err := QuantizeCoord(deg)

		require.NoError(t, err)
		assert.Equal(t, fixed, q)
	}
}

func TestQuantizeCoord_Rounding(t *testing.T) {
	q, err := QuantizeCoord(1.0000004)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), q)

	q, err = QuantizeCoord(1.0000006)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_001), q)
}

func TestQuantizeCoord_Overflow(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300, -1e300} {
		_, err := QuantizeCoord(v)
		require.ErrorIs(t, err, errs.ErrFieldOverflow)
	}
}

func TestQuantizeAlt_SentinelPassesThrough(t *testing.T) {
	// Geolife's "unknown altitude" marker is an ordinary number here.
	q, err := QuantizeAlt(-777)

	require.NoError(t, err)
	assert.Equal(t, int64(-77_700), q)
	assert.Equal(t, -777.0, AltFromFixed(q))
}

func TestTrajectory_SortByTimestamp(t *testing.T) {
	traj := Trajectory{
		{Timestamp: 30, Lat: 3},
		{Timestamp: 10, Lat: 1},
		{Timestamp: 20, Lat: 2},
		{Timestamp: 20, Lat: 2.5}, // duplicate timestamp, must keep order
	}

	traj.SortByTimestamp()

	require.Len(t, traj, 4)
	assert.Equal(t, []int64{10, 20, 20, 30}, []int64{traj[0].Timestamp, traj[1].Timestamp, traj[2].Timestamp, traj[3].Timestamp})
	assert.Equal(t, 2.0, traj[1].Lat, "stable sort must keep duplicate-timestamp order")
	assert.Equal(t, 2.5, traj[2].Lat)
}

func TestTrajectory_Clone(t *testing.T) {
	orig := Trajectory{{Timestamp: 1, Lat: 1.5, Lon: 2.5, Alt: 3.5}}
	cloned := orig.Clone()

	require.Equal(t, orig, cloned)

	cloned[0].Lat = 99
	assert.Equal(t, 1.5, orig[0].Lat, "clone must not share backing storage")

	assert.Nil(t, Trajectory(nil).Clone())
}
