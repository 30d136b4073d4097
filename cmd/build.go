package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aerometrics/comps-cli/internal/comps"
	"github.com/aerometrics/comps-cli/internal/report"
)

var (
	buildData    string
	buildIATA    string
	buildWSize   float64
	buildWGrowth float64
	buildWShare  float64
	buildTopN    int
	buildFormat  string
	buildOutput  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the four comparable-airport lists for a target",
	Long: `Ranks the closest peer airports to the target by total traffic, YoY
growth, share of FAA region, and a weighted composite of all three.

Examples:
  # Top 10 comparables for SFO, default weights, plain table
  comps build --data traffic.xlsx --iata SFO

  # Custom weights, CSV export
  comps build --data traffic.xlsx --iata AUS --w-size 50 --w-growth 25 --w-share 25 \
    --format csv --output aus_comps.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if buildIATA == "" {
			return eris.New("--iata is required")
		}

		rs, err := loadRecords(buildData)
		if err != nil {
			return err
		}

		wSize, wGrowth, wShare := resolveWeights(buildWSize, buildWGrowth, buildWShare)
		topn := buildTopN
		if topn <= 0 {
			topn = cfg.Comps.TopN
		}

		set, err := comps.BuildSets(rs, strings.ToUpper(buildIATA), wSize, wGrowth, wShare, topn)
		if err != nil {
			return eris.Wrap(err, "build comparables")
		}

		zap.L().Info("comparables built",
			zap.String("iata", set.Target.IATA),
			zap.Int("union_size", len(set.Union)),
		)

		out := os.Stdout
		if buildOutput != "" {
			f, err := os.Create(buildOutput)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		switch buildFormat {
		case "table":
			printTable(out, set)
			return nil
		case "json":
			return report.WriteJSON(out, set)
		case "csv":
			return report.WriteCSV(out, set)
		default:
			return eris.Errorf("unknown format %q (use table, json, or csv)", buildFormat)
		}
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildData, "data", "", "traffic report file (.xlsx or .csv)")
	buildCmd.Flags().StringVar(&buildIATA, "iata", "", "target airport IATA code (required)")
	buildCmd.Flags().Float64Var(&buildWSize, "w-size", -1, "composite weight: traffic size")
	buildCmd.Flags().Float64Var(&buildWGrowth, "w-growth", -1, "composite weight: YoY growth")
	buildCmd.Flags().Float64Var(&buildWShare, "w-share", -1, "composite weight: regional share")
	buildCmd.Flags().IntVar(&buildTopN, "topn", 0, "entries per list (default from config)")
	buildCmd.Flags().StringVar(&buildFormat, "format", "table", "output format: table, json, csv")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "write to file instead of stdout")
	rootCmd.AddCommand(buildCmd)
}

// printTable writes a human-readable view of the four lists.
func printTable(out *os.File, set *comps.ComparableSet) {
	t := set.Target
	fmt.Fprintf(out, "%s — %s (%s, %s)\n", t.IATA, t.Name, t.State, t.FAARegion)
	fmt.Fprintf(out, "passengers: %.0f   share of region: %.3f%%\n", t.TotalPassengers, t.ShareOfRegionPct)

	for _, list := range set.Lists() {
		fmt.Fprintf(out, "\n[%s] target value %.3f\n", list.Name, list.TargetValue)
		for i, e := range list.Entries {
			if list.Name == "composite" {
				fmt.Fprintf(out, "%3d. %-4s %-32s score %.4f\n", i+1, e.Record.IATA, e.Record.Name, e.Score)
				continue
			}
			fmt.Fprintf(out, "%3d. %-4s %-32s %.3f (Δ %.3f)\n", i+1, e.Record.IATA, e.Record.Name, e.Metric, e.Distance)
		}
	}

	fmt.Fprintf(out, "\nunion: %s\n", strings.Join(set.Union, " "))
}
