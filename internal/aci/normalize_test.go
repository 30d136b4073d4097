package aci

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHeader() []string {
	return []string{"Country", "City/State", "Airport Name", "Airport Code", "Total Passengers", "% Chg 2024-2023"}
}

func sampleTable() RawTable {
	return RawTable{
		Header: sampleHeader(),
		Rows: [][]string{
			{"United States", "Atlanta GA", "Hartsfield-Jackson", "atl", "104000000", "3.2"},
			{"United States", "San Francisco CA", "San Francisco Intl", "SFO", "51000000", "5.1"},
			{"Canada", "Toronto ON", "Pearson", "YYZ", "45000000", "2.0"},
			{"United States", "Austin TX", "Austin-Bergstrom", "AUS", "22000000", ""},
			{"United States", "Anchorage AK", "Ted Stevens", "ANC", "5700000", "-1.4"},
		},
	}
}

func TestNormalizeBasics(t *testing.T) {
	rs, err := Normalize(sampleTable())
	require.NoError(t, err)
	require.Equal(t, 4, rs.Len(), "foreign row dropped")

	atl, ok := rs.Find("ATL")
	require.True(t, ok)
	assert.Equal(t, "ATL", atl.IATA, "iata upper-cased on ingest")
	assert.Equal(t, "GA", atl.State)
	assert.Equal(t, "Southern", atl.FAARegion)
	assert.Equal(t, 104000000.0, atl.TotalPassengers)
	require.NotNil(t, atl.YoYGrowthPct)
	assert.Equal(t, 3.2, *atl.YoYGrowthPct)

	aus, ok := rs.Find("AUS")
	require.True(t, ok)
	assert.Nil(t, aus.YoYGrowthPct, "empty growth cell stays missing, row kept")

	_, ok = rs.Find("YYZ")
	assert.False(t, ok)
}

func TestNormalizeSchemaErrorListsAllMissing(t *testing.T) {
	_, err := Normalize(RawTable{
		Header: []string{"Country", "City/State"},
		Rows:   nil,
	})
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.ElementsMatch(t,
		[]string{"airport name", "airport code", "total passengers"},
		schemaErr.Missing)
}

func TestNormalizeCountryColumnOptional(t *testing.T) {
	table := sampleTable()
	table.Header[0] = "Nation" // unresolvable under any variant
	rs, err := Normalize(table)
	require.NoError(t, err, "missing country column is not a schema error")
	assert.Equal(t, 5, rs.Len(), "domestic filter skipped, foreign row retained")
}

func TestNormalizeGrowthColumnOptional(t *testing.T) {
	table := sampleTable()
	table.Header[5] = "Something Else"
	rs, err := Normalize(table)
	require.NoError(t, err)
	for _, r := range rs.Records() {
		assert.Nil(t, r.YoYGrowthPct, "growth treated as entirely missing")
	}
}

func TestNormalizeHeaderVariants(t *testing.T) {
	table := sampleTable()
	table.Header = []string{"COUNTRY", "City,   State", "Airport", "IATA", "passengers  TOTAL", "YoY %"}
	// "City, State" normalizes to "city, state"; "passengers total" is a variant.
	rs, err := Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, 4, rs.Len())
}

func TestNormalizeDropsDefectiveRows(t *testing.T) {
	table := RawTable{
		Header: sampleHeader(),
		Rows: [][]string{
			{"United States", "Boston MA", "Logan", "BOS", "40000000", "1.0"},
			{"United States", "", "No State", "XXA", "1000", "1.0"},         // empty city/state
			{"United States", "Denver CO", "Denver Intl", "", "77000", ""},  // missing iata
			{"United States", "Miami FL", "Miami Intl", "MIA", "n/a", ""},   // non-numeric total
			{"United States", "Tampa FL", "Tampa Intl", "TPA", "24000000"},  // ragged row, growth absent
		},
	}
	rs, err := Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	_, ok := rs.Find("TPA")
	assert.True(t, ok, "ragged row with all required cells survives")
}

func TestNormalizeDuplicateIATAFirstWins(t *testing.T) {
	table := RawTable{
		Header: sampleHeader(),
		Rows: [][]string{
			{"United States", "Portland OR", "Portland Intl", "PDX", "16000000", "2.0"},
			{"United States", "Portland ME", "Portland Jetport", "PDX", "2000000", "4.0"},
		},
	}
	rs, err := Normalize(table)
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())

	pdx, _ := rs.Find("PDX")
	assert.Equal(t, "OR", pdx.State)
	assert.Equal(t, 16000000.0, pdx.TotalPassengers)
}

func TestRegionSharesSumTo100(t *testing.T) {
	rs, err := Normalize(sampleTable())
	require.NoError(t, err)

	sums := make(map[string]float64)
	for _, r := range rs.Records() {
		sums[r.FAARegion] += r.ShareOfRegionPct
	}
	for region, sum := range sums {
		assert.InDelta(t, 100.0, sum, 1e-6, "region: %s", region)
	}
}

func TestSingleMemberRegionShareIs100(t *testing.T) {
	rs, err := Normalize(sampleTable())
	require.NoError(t, err)

	anc, ok := rs.Find("ANC")
	require.True(t, ok)
	assert.Equal(t, "Alaskan", anc.FAARegion)
	assert.Equal(t, 100.0, anc.ShareOfRegionPct)
}

func TestZeroTrafficRegionShareIsZero(t *testing.T) {
	table := RawTable{
		Header: sampleHeader(),
		Rows: [][]string{
			{"United States", "Nome AK", "Nome", "OME", "0", ""},
			{"United States", "Kotzebue AK", "Ralph Wien", "OTZ", "0", ""},
		},
	}
	rs, err := Normalize(table)
	require.NoError(t, err)
	for _, r := range rs.Records() {
		assert.Equal(t, 0.0, r.ShareOfRegionPct)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first, err := Normalize(sampleTable())
	require.NoError(t, err)
	second, err := Normalize(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, first.Records(), second.Records())
}

func TestNormalizeEmptyAfterFilterIsValid(t *testing.T) {
	table := RawTable{
		Header: sampleHeader(),
		Rows: [][]string{
			{"Canada", "Toronto ON", "Pearson", "YYZ", "45000000", "2.0"},
		},
	}
	rs, err := Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())
}

func TestUnknownRegionAssignment(t *testing.T) {
	table := RawTable{
		Header: sampleHeader(),
		Rows: [][]string{
			{"United States", "Pago Pago AS", "Pago Pago Intl", "PPG", "80000", ""},
		},
	}
	rs, err := Normalize(table)
	require.NoError(t, err)

	ppg, ok := rs.Find("PPG")
	require.True(t, ok)
	assert.Equal(t, RegionUnknown, ppg.FAARegion)
	assert.Equal(t, 100.0, ppg.ShareOfRegionPct, "Unknown is grouped like any region")
}
