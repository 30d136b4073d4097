package main

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/aerometrics/comps-cli/internal/aci"
)

// loadRecords loads and normalizes the dataset, preferring the --data flag
// over the configured path.
func loadRecords(flagPath string) (*aci.RecordSet, error) {
	path := flagPath
	if path == "" {
		path = cfg.Dataset.Path
	}
	if path == "" {
		return nil, eris.New("no dataset path: pass --data or set dataset.path in config")
	}

	rs, err := aci.Load(path, aci.LoadOptions{
		Sheet:    cfg.Dataset.Sheet,
		SkipRows: cfg.Dataset.SkipRows,
	})
	if err != nil {
		return nil, eris.Wrap(err, "load dataset")
	}

	zap.L().Info("dataset loaded", zap.String("path", path), zap.Int("records", rs.Len()))
	return rs, nil
}

// resolveWeights substitutes configured defaults for unset (negative) weight
// flags.
func resolveWeights(wSize, wGrowth, wShare float64) (float64, float64, float64) {
	if wSize < 0 {
		wSize = cfg.Comps.WSize
	}
	if wGrowth < 0 {
		wGrowth = cfg.Comps.WGrowth
	}
	if wShare < 0 {
		wShare = cfg.Comps.WShare
	}
	return wSize, wGrowth, wShare
}
