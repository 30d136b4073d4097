package aci

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/aerometrics/comps-cli/internal/fetcher"
)

// LoadOptions configures dataset loading.
type LoadOptions struct {
	Sheet    string // XLSX sheet name; empty means first sheet
	SkipRows int    // banner rows above the header (XLSX only)
}

// Load reads a traffic-report file (.xlsx or .csv), splits off the header
// row, and normalizes the rest into a RecordSet.
func Load(path string, opts LoadOptions) (*RecordSet, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = fetcher.ReadXLSX(path, fetcher.XLSXOptions{
			SheetName: opts.Sheet,
			SkipRows:  opts.SkipRows,
		})
	case ".csv":
		rows, err = fetcher.ReadCSV(path)
	default:
		return nil, eris.Errorf("aci: unsupported dataset format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, eris.Wrap(err, "aci: read dataset")
	}

	if len(rows) == 0 {
		return nil, eris.New("aci: dataset has no header row")
	}

	return Normalize(RawTable{Header: rows[0], Rows: rows[1:]})
}
