package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerometrics/comps-cli/internal/aci"
)

var regionsData string

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Show per-FAA-region dataset totals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rs, err := loadRecords(regionsData)
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		totals := make(map[string]float64)
		for _, r := range rs.Records() {
			counts[r.FAARegion]++
			totals[r.FAARegion] += r.TotalPassengers
		}

		fmt.Printf("%-20s %8s %16s\n", "REGION", "AIRPORTS", "PASSENGERS")
		for _, name := range append(aci.RegionNames(), aci.RegionUnknown) {
			if counts[name] == 0 {
				continue
			}
			fmt.Printf("%-20s %8d %16.0f\n", name, counts[name], totals[name])
		}
		fmt.Printf("%-20s %8d\n", "TOTAL", rs.Len())
		return nil
	},
}

func init() {
	regionsCmd.Flags().StringVar(&regionsData, "data", "", "traffic report file (.xlsx or .csv)")
	rootCmd.AddCommand(regionsCmd)
}
