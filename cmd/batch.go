package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aerometrics/comps-cli/internal/comps"
	"github.com/aerometrics/comps-cli/internal/report"
)

var (
	batchData        string
	batchTargets     string
	batchConcurrency int
	batchTopN        int
	batchOutDir      string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build comparable sets for many targets concurrently",
	Long: `Runs the comparable-set query for each target against one shared
read-only dataset. Queries are independent pure functions of the normalized
records, so they parallelize safely. Each result is written as JSON to
<out-dir>/<iata>.json.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if batchTargets == "" {
			return eris.New("--targets is required (comma-separated IATA codes)")
		}

		rs, err := loadRecords(batchData)
		if err != nil {
			return err
		}

		var targets []string
		for _, t := range strings.Split(batchTargets, ",") {
			if t = strings.TrimSpace(t); t != "" {
				targets = append(targets, strings.ToUpper(t))
			}
		}

		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return eris.Wrap(err, "create output directory")
		}

		wSize, wGrowth, wShare := resolveWeights(-1, -1, -1)
		topn := batchTopN
		if topn <= 0 {
			topn = cfg.Comps.TopN
		}

		var done, failed atomic.Int64

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(batchConcurrency)

		for _, iata := range targets {
			g.Go(func() error {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				set, err := comps.BuildSets(rs, iata, wSize, wGrowth, wShare, topn)
				if err != nil {
					// A missing code shouldn't sink the rest of the batch.
					var nf *comps.NotFoundError
					if eris.As(err, &nf) {
						failed.Add(1)
						zap.L().Warn("target not in dataset", zap.String("iata", iata))
						return nil
					}
					return eris.Wrap(err, fmt.Sprintf("batch: %s", iata))
				}

				path := filepath.Join(batchOutDir, iata+".json")
				f, err := os.Create(path)
				if err != nil {
					return eris.Wrap(err, fmt.Sprintf("batch: create %s", path))
				}
				defer f.Close() //nolint:errcheck

				if err := report.WriteJSON(f, set); err != nil {
					return err
				}
				done.Add(1)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("batch complete",
			zap.Int64("written", done.Load()),
			zap.Int64("skipped", failed.Load()),
			zap.String("out_dir", batchOutDir),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchData, "data", "", "traffic report file (.xlsx or .csv)")
	batchCmd.Flags().StringVar(&batchTargets, "targets", "", "comma-separated IATA codes (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "max concurrent queries")
	batchCmd.Flags().IntVar(&batchTopN, "topn", 0, "entries per list (default from config)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "comps_out", "directory for per-target JSON results")
	rootCmd.AddCommand(batchCmd)
}
