// Package track defines the GPS trajectory data model shared by the trajo
// packages: the Point value type, the Trajectory sequence, and the
// fixed-point quantization used by the binary codec.
package track

import (
	"math"
	"sort"

	"github.com/arloliu/trajo/errs"
)

// Fixed-point scales used by the binary codec.
//
// Coordinates are stored as microdegrees (1e-6 degree, roughly 11cm at the
// equator, matching typical GPS receiver precision). Altitudes are stored in
// hundredths of the source unit.
const (
	CoordScale = 1_000_000
	AltScale   = 100
)

// Point is a single GPS fix. It is an immutable value object; all trajo
// operations copy points rather than mutating them.
//
// Altitude keeps whatever unit and sentinel convention the source data uses
// (Geolife uses feet with -777 meaning "unknown"); trajo passes the value
// through quantization and delta arithmetic like any other number and never
// interprets it.
type Point struct {
	// Timestamp is the fix time in Unix seconds.
	Timestamp int64
	// Lat is the latitude in signed degrees, range [-90, 90].
	Lat float64
	// Lon is the longitude in signed degrees, range [-180, 180].
	Lon float64
	// Alt is the altitude in source units.
	Alt float64
}

// Trajectory is an ordered sequence of GPS fixes for one moving entity,
// sorted by timestamp ascending. Duplicate timestamps are tolerated.
type Trajectory []Point

// SortByTimestamp sorts the trajectory by timestamp ascending, in place.
// The sort is stable so fixes sharing a timestamp keep their source order.
func (t Trajectory) SortByTimestamp() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Timestamp < t[j].Timestamp
	})
}

// Clone returns a new trajectory with the same points.
func (t Trajectory) Clone() Trajectory {
	if t == nil {
		return nil
	}

	out := make(Trajectory, len(t))
	copy(out, t)

	return out
}

// QuantizeCoord converts a coordinate in degrees to fixed-point microdegrees,
// rounding to the nearest unit.
//
// Returns errs.ErrFieldOverflow if the value is NaN, infinite, or its scaled
// magnitude exceeds the int64 range.
func QuantizeCoord(deg float64) (int64, error) {
	return quantize(deg, CoordScale)
}

// QuantizeAlt converts an altitude in source units to fixed-point hundredths,
// rounding to the nearest unit.
//
// Returns errs.ErrFieldOverflow if the value is NaN, infinite, or its scaled
// magnitude exceeds the int64 range.
func QuantizeAlt(alt float64) (int64, error) {
	return quantize(alt, AltScale)
}

// CoordFromFixed converts fixed-point microdegrees back to degrees.
func CoordFromFixed(v int64) float64 {
	return float64(v) / CoordScale
}

// AltFromFixed converts fixed-point hundredths back to source units.
func AltFromFixed(v int64) float64 {
	return float64(v) / AltScale
}

func quantize(v float64, scale int64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.ErrFieldOverflow
	}

	scaled := math.Round(v * float64(scale))
	// Compare in float space; MaxInt64 itself is not exactly representable,
	// so the bound below is the largest float64 not exceeding it.
	if scaled < math.MinInt64 || scaled >= math.MaxInt64 {
		return 0, errs.ErrFieldOverflow
	}

	return int64(scaled), nil
}
