package fetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.csv")
	content := "Country,City/State,Airport Name,Airport Code,Total Passengers\n" +
		"United States,Atlanta GA,Hartsfield-Jackson,ATL,104000000\n" +
		"United States,Austin TX,Austin-Bergstrom,AUS\n" // ragged row
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Country", "City/State", "Airport Name", "Airport Code", "Total Passengers"}, rows[0])
	assert.Len(t, rows[1], 5)
	assert.Len(t, rows[2], 4, "ragged rows are tolerated")
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
