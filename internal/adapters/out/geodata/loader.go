// Package geodata loads the ZIP code centroid dataset the shipping rating
// service resolves distances against. The dataset ships as a CSV of
// zip,lat,lng rows.
package geodata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"printshop/internal/core/domain/services/rating"
)

// LoadZipIndex reads the ZIP centroid CSV at path and builds a rating
// ZipIndex from it.
func LoadZipIndex(path string) (*rating.ZipIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip data: %w", err)
	}
	defer file.Close()

	index, err := ReadZipIndex(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip data %s: %w", path, err)
	}
	return index, nil
}

// ReadZipIndex parses zip,lat,lng records from r. A header row is detected
// and skipped. ZIP codes shorter than five digits are padded with leading
// zeros, which source datasets commonly strip.
func ReadZipIndex(r io.Reader) (*rating.ZipIndex, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	coords := make(map[string]rating.Coordinates)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		zip := normalizeZip(record[0])
		if zip == "" {
			return nil, fmt.Errorf("line %d: invalid zip code %q", line, record[0])
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q", line, record[1])
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q", line, record[2])
		}

		coords[zip] = rating.Coordinates{Lat: lat, Lng: lng}
	}

	return rating.NewZipIndex(coords), nil
}

// isHeader reports whether the record looks like a column header.
func isHeader(record []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	return err != nil
}

// normalizeZip pads numeric ZIPs to five digits and rejects anything else.
func normalizeZip(raw string) string {
	zip := strings.TrimSpace(raw)
	if len(zip) == 0 || len(zip) > 5 {
		return ""
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return strings.Repeat("0", 5-len(zip)) + zip
}
