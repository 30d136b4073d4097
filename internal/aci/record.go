package aci

// AirportRecord is the canonical per-airport row every downstream consumer
// works from. Once a RecordSet is built it is treated as read-only.
type AirportRecord struct {
	IATA             string   `json:"iata" csv:"iata"`
	Name             string   `json:"name" csv:"name"`
	State            string   `json:"state" csv:"state"`
	FAARegion        string   `json:"faa_region" csv:"faa_region"`
	TotalPassengers  float64  `json:"total_passengers" csv:"total_passengers"`
	YoYGrowthPct     *float64 `json:"yoy_growth_pct" csv:"yoy_growth_pct"`
	ShareOfRegionPct float64  `json:"share_of_region_pct" csv:"share_of_region_pct"`
}

// RecordSet is an ordered, immutable snapshot of normalized airport records.
// Order is the source row order after filtering, which downstream rankings
// rely on for stable tie-breaking.
type RecordSet struct {
	records []AirportRecord
	byIATA  map[string]int
}

// NewRecordSet indexes records by IATA, preserving order. Callers guarantee
// IATA uniqueness; Normalize is the usual producer, this constructor exists
// for fixtures and embedded datasets.
func NewRecordSet(records []AirportRecord) *RecordSet {
	byIATA := make(map[string]int, len(records))
	for i, r := range records {
		byIATA[r.IATA] = i
	}
	return &RecordSet{records: records, byIATA: byIATA}
}

// Len returns the number of records.
func (rs *RecordSet) Len() int { return len(rs.records) }

// Records returns the records in source order. The slice is shared; callers
// must not mutate it.
func (rs *RecordSet) Records() []AirportRecord { return rs.records }

// Find returns the record with the given IATA code (matched upper-cased).
func (rs *RecordSet) Find(iata string) (AirportRecord, bool) {
	i, ok := rs.byIATA[upper(iata)]
	if !ok {
		return AirportRecord{}, false
	}
	return rs.records[i], true
}
