// Package report exports comparable-airport sets as CSV or JSON.
package report

import (
	"encoding/json"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/aerometrics/comps-cli/internal/comps"
)

// Row is one flattened ranked entry for tabular export.
type Row struct {
	List      string  `csv:"list" json:"list"`
	Rank      int     `csv:"rank" json:"rank"`
	IATA      string  `csv:"iata" json:"iata"`
	Name      string  `csv:"name" json:"name"`
	State     string  `csv:"state" json:"state"`
	FAARegion string  `csv:"faa_region" json:"faa_region"`
	Metric    float64 `csv:"metric" json:"metric"`
	Target    float64 `csv:"target_value" json:"target_value"`
	Score     float64 `csv:"score,omitempty" json:"score,omitempty"`
}

// Flatten turns the four ranked lists into export rows, in display order.
func Flatten(set *comps.ComparableSet) []Row {
	var rows []Row
	for _, list := range set.Lists() {
		for i, e := range list.Entries {
			rows = append(rows, Row{
				List:      list.Name,
				Rank:      i + 1,
				IATA:      e.Record.IATA,
				Name:      e.Record.Name,
				State:     e.Record.State,
				FAARegion: e.Record.FAARegion,
				Metric:    e.Metric,
				Target:    list.TargetValue,
				Score:     e.Score,
			})
		}
	}
	return rows
}

// WriteCSV writes the flattened set as CSV with a header row.
func WriteCSV(w io.Writer, set *comps.ComparableSet) error {
	b, err := csvutil.Marshal(Flatten(set))
	if err != nil {
		return eris.Wrap(err, "report: marshal csv")
	}
	if _, err := w.Write(b); err != nil {
		return eris.Wrap(err, "report: write csv")
	}
	return nil
}

// WriteJSON writes the full ComparableSet as indented JSON.
func WriteJSON(w io.Writer, set *comps.ComparableSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return eris.Wrap(err, "report: encode json")
	}
	return nil
}
