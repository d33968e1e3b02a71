// Package geolife reads raw GPS trajectory logs in the Geolife PLT format
// and produces the in-memory point sequences consumed by the simplify and
// blob packages.
//
// A PLT file starts with a six-line preamble followed by one fix per line
// with seven comma-separated fields: latitude, longitude, a constant zero,
// altitude in feet (-777 when unknown), the date as an Excel day number, and
// the date and time as strings. The Excel day number is authoritative for
// the timestamp; the string fields are ignored.
package geolife

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arloliu/trajo/track"
)

// preambleLines is the number of header lines before the first fix.
const preambleLines = 6

// fieldCount is the number of comma-separated fields per fix line.
const fieldCount = 7

// excelEpochOffset converts Excel day numbers (days since 1899-12-30) to
// Unix timestamps: 25569 days separate the two epochs.
const excelEpochOffset = 25569.0

// ErrInvalidFieldCount is returned when a fix line does not have exactly
// seven comma-separated fields.
var ErrInvalidFieldCount = errors.New("invalid number of fields in line")

// ParsePLT parses one PLT file into a point sequence.
//
// The altitude field is passed through unchanged, including the -777
// "unknown" sentinel. Points are returned in file order; callers that merge
// multiple files should sort afterwards (see ReadDir).
func ParsePLT(r io.Reader) ([]track.Point, error) {
	scanner := bufio.NewScanner(r)

	points := make([]track.Point, 0, 256)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if lineNo <= preambleLines {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		point, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		points = append(points, point)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trajectory log: %w", err)
	}

	return points, nil
}

func parseLine(line string) (track.Point, error) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return track.Point{}, ErrInvalidFieldCount
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return track.Point{}, fmt.Errorf("parse latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return track.Point{}, fmt.Errorf("parse longitude: %w", err)
	}

	alt, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return track.Point{}, fmt.Errorf("parse altitude: %w", err)
	}

	days, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return track.Point{}, fmt.Errorf("parse date: %w", err)
	}

	return track.Point{
		// Excel dates are in days, Unix timestamps in seconds.
		Timestamp: int64((days - excelEpochOffset) * 86400.0),
		Lat:       lat,
		Lon:       lon,
		Alt:       alt,
	}, nil
}

// ReadDir parses every *.plt file in dir, merges the points into a single
// trajectory sorted by timestamp, and reports the total size in bytes of the
// source files (for compression-ratio statistics).
func ReadDir(dir string) (track.Trajectory, int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read trajectory directory: %w", err)
	}

	var all track.Trajectory
	var totalSize int64

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".plt") {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("stat %s: %w", path, err)
		}
		if info != nil {
			totalSize += info.Size()
		}

		points, err := parseFile(path)
		if err != nil {
			return nil, 0, err
		}

		all = append(all, points...)
	}

	all.SortByTimestamp()

	return all, totalSize, nil
}

func parseFile(path string) ([]track.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	points, err := ParsePLT(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return points, nil
}
