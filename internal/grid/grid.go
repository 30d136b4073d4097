// Package grid renders a comparable-airport set as an aligned 10-column
// HTML chip grid: one row per ranking, each chip an IATA code plus its
// deviation from the target.
package grid

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/aerometrics/comps-cli/internal/comps"
)

// Columns is the fixed chip count per row; shorter lists are padded with
// hidden placeholders so the rows stay aligned.
const Columns = 10

const pageTemplate = `<!doctype html><meta charset="utf-8"><title>Competitor Grid</title>
<style>
.container{max-width:1100px;margin:18px auto;font-family:Inter,system-ui,Arial}
.header .meta{color:#6b7280}
.row{display:grid;grid-template-columns:190px 1fr;column-gap:16px;align-items:start;margin:12px 0}
.cat{font-weight:800}
.grid{display:grid;grid-template-columns:repeat(10,minmax(84px,1fr));gap:10px}
.chip{display:flex;flex-direction:column;align-items:center;justify-content:center;min-height:56px;
      padding:8px 10px;border:1px solid #9aa2af;border-radius:14px;background:#f6f8fa;color:#111827;text-align:center}
.chip .code{font-weight:800;line-height:1.05}
.chip .dev{font-size:11px;color:#6b7280;line-height:1.05;margin-top:2px}
.chip.empty{visibility:hidden}
.chip.origin{border-color:#E74C3C;box-shadow:0 0 0 2px rgba(231,76,60,.2) inset}
</style>
<div class="container">
  <div class="header">
    <h3 style="margin:0">{{.Target.IATA}} &mdash; {{.Target.Name}}</h3>
    <div class="meta">State: {{.Target.State}} &middot; FAA: {{.Target.FAARegion}} &middot;
    Pax: {{.TargetPax}} &middot; Share: {{.Target.ShareOfRegionPct}}%</div>
  </div>
{{- range .Rows}}
  <div class="row"><div class="cat">{{.Label}}</div><div class="grid">
  {{- range .Chips}}
    <div class="{{.Class}}"><span class="code">{{.Code}}</span><span class="dev">{{.Dev}}</span></div>
  {{- end}}
  </div></div>
{{- end}}
</div>
`

var tmpl = template.Must(template.New("grid").Parse(pageTemplate))

type chip struct {
	Class string
	Code  string
	Dev   string
}

type row struct {
	Label string
	Chips []chip
}

// Render produces the full HTML document for one ComparableSet. The weight
// triple is echoed in the composite row's label.
func Render(set *comps.ComparableSet, wSize, wGrowth, wShare float64) (string, error) {
	data := struct {
		Target    any
		TargetPax string
		Rows      []row
	}{
		Target:    set.Target,
		TargetPax: formatThousands(set.Target.TotalPassengers),
		Rows: []row{
			{Label: "Total Passengers", Chips: buildChips(set.Total, false, set.Target.IATA)},
			{Label: "Growth (YoY %)", Chips: buildChips(set.Growth, true, set.Target.IATA)},
			{Label: "Share of Region", Chips: buildChips(set.Share, true, set.Target.IATA)},
			{
				Label: fmt.Sprintf("Composite (weights: %.0f/%.0f/%.0f)", wSize, wGrowth, wShare),
				Chips: buildChips(set.Composite, false, set.Target.IATA),
			},
		},
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", eris.Wrap(err, "grid: execute template")
	}
	return b.String(), nil
}

// buildChips renders one ranked list as exactly Columns chips, padding with
// hidden placeholders and flagging the origin airport if it appears.
func buildChips(list comps.RankedList, pctMetric bool, origin string) []chip {
	chips := make([]chip, 0, Columns)
	for _, e := range list.Entries {
		if len(chips) == Columns {
			break
		}
		class := "chip"
		if e.Record.IATA == origin {
			class = "chip origin"
		}
		chips = append(chips, chip{
			Class: class,
			Code:  e.Record.IATA,
			Dev:   Deviation(e.Metric, list.TargetValue, pctMetric),
		})
	}
	for len(chips) < Columns {
		chips = append(chips, chip{Class: "chip empty", Code: " ", Dev: " "})
	}
	return chips
}

// Deviation formats a chip's deviation from the target value: a signed
// relative percentage, or signed percentage points when the target of a
// percent metric is effectively zero. Size metrics with a zero target get no
// label.
func Deviation(val, target float64, pctMetric bool) string {
	diff := val - target
	if pctMetric {
		if math.Abs(target) < 1e-9 {
			return fmt.Sprintf("%+.1fpp", diff)
		}
		return fmt.Sprintf("%+.1f%%", diff/target*100)
	}
	if math.Abs(target) < 1e-9 {
		return ""
	}
	return fmt.Sprintf("%+.1f%%", diff/target*100)
}

// formatThousands renders a passenger count with comma separators.
func formatThousands(v float64) string {
	s := fmt.Sprintf("%.0f", math.Abs(v))
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
