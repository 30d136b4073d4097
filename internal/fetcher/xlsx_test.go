package fetcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Traffic": {
			{"ACI 2024 North America Traffic Report"},
			{""},
			{"Country", "City/State", "Airport Name", "Airport Code", "Total Passengers"},
			{"United States", "Atlanta GA", "Hartsfield-Jackson", "ATL", "104000000"},
		},
	})

	rows, err := ReadXLSX(path, XLSXOptions{SkipRows: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2, "banner rows skipped, header first")
	assert.Equal(t, "Country", rows[0][0])
	assert.Equal(t, "ATL", rows[1][3])
}

func TestReadXLSXSheetByName(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Notes":   {{"nothing here"}},
		"Traffic": {{"Airport Code"}, {"ATL"}},
	})

	rows, err := ReadXLSX(path, XLSXOptions{SheetName: "Traffic"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Airport Code", rows[0][0])

	_, err = ReadXLSX(path, XLSXOptions{SheetName: "Missing"})
	assert.Error(t, err)
}

func TestReadXLSXMissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{})
	assert.Error(t, err)
}
