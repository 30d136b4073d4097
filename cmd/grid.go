package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aerometrics/comps-cli/internal/comps"
	"github.com/aerometrics/comps-cli/internal/grid"
)

var (
	gridData    string
	gridIATA    string
	gridWSize   float64
	gridWGrowth float64
	gridWShare  float64
	gridTopN    int
	gridOut     string
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Render the comparable-airport grid as HTML",
	Long: `Builds the four comparable lists and writes them as an aligned
10-column chip grid. When --w-share is omitted it defaults to whatever
weight the size and growth weights leave unclaimed out of 100.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if gridIATA == "" {
			return eris.New("--iata is required")
		}

		rs, err := loadRecords(gridData)
		if err != nil {
			return err
		}

		wSize, wGrowth := gridWSize, gridWGrowth
		if wSize < 0 {
			wSize = cfg.Comps.WSize
		}
		if wGrowth < 0 {
			wGrowth = cfg.Comps.WGrowth
		}
		wShare := gridWShare
		if wShare < 0 {
			wShare = 100 - wSize - wGrowth
			if wShare < 0 {
				wShare = 0
			}
		}

		topn := gridTopN
		if topn <= 0 {
			topn = cfg.Comps.TopN
		}

		set, err := comps.BuildSets(rs, strings.ToUpper(gridIATA), wSize, wGrowth, wShare, topn)
		if err != nil {
			return eris.Wrap(err, "build comparables")
		}

		html, err := grid.Render(set, wSize, wGrowth, wShare)
		if err != nil {
			return err
		}

		if dir := filepath.Dir(gridOut); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return eris.Wrap(err, "create output directory")
			}
		}
		if err := os.WriteFile(gridOut, []byte(html), 0o644); err != nil {
			return eris.Wrap(err, "write grid file")
		}

		zap.L().Info("grid written",
			zap.String("iata", set.Target.IATA),
			zap.String("out", gridOut),
		)
		return nil
	},
}

func init() {
	gridCmd.Flags().StringVar(&gridData, "data", "", "traffic report file (.xlsx or .csv)")
	gridCmd.Flags().StringVar(&gridIATA, "iata", "", "target airport IATA code (required)")
	gridCmd.Flags().Float64Var(&gridWSize, "w-size", -1, "composite weight: traffic size")
	gridCmd.Flags().Float64Var(&gridWGrowth, "w-growth", -1, "composite weight: YoY growth")
	gridCmd.Flags().Float64Var(&gridWShare, "w-share", -1, "composite weight: regional share (default: remainder to 100)")
	gridCmd.Flags().IntVar(&gridTopN, "topn", 0, "entries per list (default from config)")
	gridCmd.Flags().StringVar(&gridOut, "out", "grid.html", "output HTML file")
	rootCmd.AddCommand(gridCmd)
}
