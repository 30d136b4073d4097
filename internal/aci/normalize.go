package aci

import (
	"strings"

	"go.uber.org/zap"
)

// Normalize builds the canonical RecordSet from a raw traffic-report table.
//
// The pipeline: resolve columns from header variants, keep U.S. rows (skipped
// when no country column resolved), derive the state from the city/state
// field's last token, coerce numerics, drop rows missing iata/state/total,
// keep the first occurrence of a duplicated IATA code, assign the FAA region,
// and compute each record's share of its region's total traffic.
//
// Missing required columns abort with a SchemaError. Defective rows are
// dropped, never fatal; an empty result is a valid output.
func Normalize(raw RawTable) (*RecordSet, error) {
	cols, err := resolveColumns(raw.Header)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(zap.String("component", "aci.normalize"))

	var records []AirportRecord
	seen := make(map[string]struct{})
	var dropped, duplicates int

	for _, row := range raw.Rows {
		if cols.country >= 0 &&
			!strings.Contains(strings.ToLower(cell(row, cols.country)), "united states") {
			continue
		}

		iata := upper(cell(row, cols.iata))
		state := lastToken(cell(row, cols.cityState))
		total, totalOK := parseFloat(cell(row, cols.total))

		if iata == "" || state == "" || !totalOK {
			dropped++
			continue
		}

		if _, dup := seen[iata]; dup {
			// Duplicate IATA: first occurrence wins.
			duplicates++
			log.Debug("dropping duplicate iata", zap.String("iata", iata))
			continue
		}
		seen[iata] = struct{}{}

		rec := AirportRecord{
			IATA:            iata,
			Name:            strings.TrimSpace(cell(row, cols.name)),
			State:           state,
			FAARegion:       AssignRegion(state),
			TotalPassengers: total,
		}
		if cols.growth >= 0 {
			if g, ok := parseFloat(cell(row, cols.growth)); ok {
				rec.YoYGrowthPct = &g
			}
		}

		records = append(records, rec)
	}

	computeRegionShares(records)

	log.Info("normalized dataset",
		zap.Int("records", len(records)),
		zap.Int("dropped", dropped),
		zap.Int("duplicates", duplicates),
	)

	return NewRecordSet(records), nil
}

// computeRegionShares fills ShareOfRegionPct in place: each record's traffic
// as a percentage of its FAA region's total, rounded to 3 decimals. A region
// whose members all report zero passengers gets shares of 0.0 rather than a
// division by zero.
func computeRegionShares(records []AirportRecord) {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.FAARegion] += r.TotalPassengers
	}
	for i := range records {
		t := totals[records[i].FAARegion]
		if t == 0 {
			records[i].ShareOfRegionPct = 0.0
			continue
		}
		records[i].ShareOfRegionPct = round3(records[i].TotalPassengers / t * 100)
	}
}
