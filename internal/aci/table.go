package aci

import (
	"fmt"
	"strings"
)

// RawTable is the ingest contract: a header row plus positional data rows,
// as produced by the XLSX/CSV readers. Header names are matched loosely;
// see resolveColumns.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// SchemaError reports required columns that could not be resolved from the
// source header under any accepted name variant.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("aci: required columns unresolvable: %s", strings.Join(e.Missing, ", "))
}

// Accepted header variants per semantic field, tried in order; first match
// wins. Matching happens on normalized (lowercased, single-spaced) headers.
var (
	countryVariants   = []string{"country"}
	cityStateVariants = []string{"city/state", "citystate", "city, state", "city / state"}
	nameVariants      = []string{"airport name", "airport"}
	iataVariants      = []string{"airport code", "iata", "code"}
	totalVariants     = []string{"total passengers", "passengers total", "total pax"}
	growthVariants    = []string{"% chg 2024-2023", "% chg 2024 - 2023", "% chg 2023-2022", "yoy %", "% change"}
)

// columns holds resolved column indexes. -1 means unresolved; country and
// growth are allowed to stay unresolved, the rest are required.
type columns struct {
	country   int
	cityState int
	name      int
	iata      int
	total     int
	growth    int
}

// resolveColumns maps the raw header to fixed column indexes, trying each
// field's accepted name variants in order. All required fields are checked
// before returning so a SchemaError names every missing column at once.
func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}

	pick := func(variants []string) int {
		for _, v := range variants {
			if i, ok := idx[v]; ok {
				return i
			}
		}
		return -1
	}

	cols := columns{
		country:   pick(countryVariants),
		cityState: pick(cityStateVariants),
		name:      pick(nameVariants),
		iata:      pick(iataVariants),
		total:     pick(totalVariants),
		growth:    pick(growthVariants),
	}

	var missing []string
	if cols.cityState < 0 {
		missing = append(missing, "city/state")
	}
	if cols.name < 0 {
		missing = append(missing, "airport name")
	}
	if cols.iata < 0 {
		missing = append(missing, "airport code")
	}
	if cols.total < 0 {
		missing = append(missing, "total passengers")
	}
	if len(missing) > 0 {
		return columns{}, &SchemaError{Missing: missing}
	}

	return cols, nil
}

// cell returns the value at column i of the row, or "" when the row is
// ragged or the column unresolved.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
