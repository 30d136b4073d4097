// Package comps builds comparable-airport sets: ranked peer lists by traffic
// size, growth, regional share, and a weighted composite of all three.
package comps

import (
	"fmt"
	"math"
	"sort"

	"github.com/aerometrics/comps-cli/internal/aci"
)

// DefaultTopN is the ranked-list length used when the caller passes topn <= 0.
const DefaultTopN = 10

// epsilon guards denominators when every candidate is identical on a
// dimension.
const epsilon = 1e-9

// NotFoundError reports a target IATA code absent from the record set.
type NotFoundError struct {
	IATA string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("comps: airport %q not in dataset", e.IATA)
}

// Entry is one ranked candidate. Metric is the candidate's value on the
// list's metric (median-imputed for the growth list) so renderers can show
// deviation from the target. Distance is the absolute distance used by the
// nearest-by lists; Score is the composite similarity, set only on the
// composite list.
type Entry struct {
	Record   aci.AirportRecord `json:"record"`
	Metric   float64           `json:"metric"`
	Distance float64           `json:"distance,omitempty"`
	Score    float64           `json:"score,omitempty"`
}

// RankedList is an ordered list of up to topn entries for one metric.
// TargetValue is the target's value on the same metric (imputed for growth),
// the reference point for deviation display.
type RankedList struct {
	Name        string  `json:"name"`
	TargetValue float64 `json:"target_value"`
	Entries     []Entry `json:"entries"`
}

// ComparableSet is the result of one query: the target record, the four
// ranked lists, and the sorted union of every IATA code appearing in any
// list plus the target's own.
type ComparableSet struct {
	Target    aci.AirportRecord `json:"target"`
	Total     RankedList        `json:"total"`
	Growth    RankedList        `json:"growth"`
	Share     RankedList        `json:"share"`
	Composite RankedList        `json:"composite"`
	Union     []string          `json:"union"`
}

// Lists returns the four ranked lists in display order.
func (s *ComparableSet) Lists() []RankedList {
	return []RankedList{s.Total, s.Growth, s.Share, s.Composite}
}

// targetAndCandidates resolves the target record and returns the remaining
// records in source order.
func targetAndCandidates(rs *aci.RecordSet, iata string) (aci.AirportRecord, []aci.AirportRecord, error) {
	target, ok := rs.Find(iata)
	if !ok {
		return aci.AirportRecord{}, nil, &NotFoundError{IATA: iata}
	}
	candidates := make([]aci.AirportRecord, 0, rs.Len()-1)
	for _, r := range rs.Records() {
		if r.IATA != target.IATA {
			candidates = append(candidates, r)
		}
	}
	return target, candidates, nil
}

// NearestByTotal ranks candidates by absolute difference in total passengers.
func NearestByTotal(rs *aci.RecordSet, iata string, topn int) (aci.AirportRecord, RankedList, error) {
	target, candidates, err := targetAndCandidates(rs, iata)
	if err != nil {
		return aci.AirportRecord{}, RankedList{}, err
	}

	entries := make([]Entry, len(candidates))
	for i, c := range candidates {
		entries[i] = Entry{
			Record:   c,
			Metric:   c.TotalPassengers,
			Distance: math.Abs(c.TotalPassengers - target.TotalPassengers),
		}
	}

	return target, RankedList{
		Name:        "total",
		TargetValue: target.TotalPassengers,
		Entries:     takeNearest(entries, topn),
	}, nil
}

// NearestByGrowth ranks candidates by absolute difference in YoY growth.
// Missing growth values, the target's included, are imputed with the median
// growth across the candidate set, computed once for the whole pass.
func NearestByGrowth(rs *aci.RecordSet, iata string, topn int) (aci.AirportRecord, RankedList, error) {
	target, candidates, err := targetAndCandidates(rs, iata)
	if err != nil {
		return aci.AirportRecord{}, RankedList{}, err
	}

	med := medianGrowth(candidates)
	targetGrowth := growthOr(target, med)

	entries := make([]Entry, len(candidates))
	for i, c := range candidates {
		g := growthOr(c, med)
		entries[i] = Entry{
			Record:   c,
			Metric:   g,
			Distance: math.Abs(g - targetGrowth),
		}
	}

	return target, RankedList{
		Name:        "growth",
		TargetValue: targetGrowth,
		Entries:     takeNearest(entries, topn),
	}, nil
}

// NearestByShare ranks candidates by absolute difference in regional share.
// Shares are compared as-is across regions: each airport's percentage of its
// own FAA region, not a shared-region constraint.
func NearestByShare(rs *aci.RecordSet, iata string, topn int) (aci.AirportRecord, RankedList, error) {
	target, candidates, err := targetAndCandidates(rs, iata)
	if err != nil {
		return aci.AirportRecord{}, RankedList{}, err
	}

	entries := make([]Entry, len(candidates))
	for i, c := range candidates {
		entries[i] = Entry{
			Record:   c,
			Metric:   c.ShareOfRegionPct,
			Distance: math.Abs(c.ShareOfRegionPct - target.ShareOfRegionPct),
		}
	}

	return target, RankedList{
		Name:        "share",
		TargetValue: target.ShareOfRegionPct,
		Entries:     takeNearest(entries, topn),
	}, nil
}

// CompositeWeighted ranks candidates by a weighted blend of three similarity
// sub-scores (size on a log1p scale, median-imputed growth, regional share),
// each normalized by the candidate set's spread so 1.0 means identical to
// the target. Weights are normalized to sum to 1; a weight triple summing to
// ~0 falls back to equal thirds rather than producing NaN scores.
func CompositeWeighted(rs *aci.RecordSet, iata string, wSize, wGrowth, wShare float64, topn int) (aci.AirportRecord, RankedList, error) {
	target, candidates, err := targetAndCandidates(rs, iata)
	if err != nil {
		return aci.AirportRecord{}, RankedList{}, err
	}

	wSize, wGrowth, wShare = normalizeWeights(wSize, wGrowth, wShare)

	med := medianGrowth(candidates)
	targetGrowth := growthOr(target, med)
	targetLog := math.Log1p(target.TotalPassengers)

	var maxLog, maxGrowth, maxShareDiff float64
	for _, c := range candidates {
		maxLog = math.Max(maxLog, math.Abs(math.Log1p(c.TotalPassengers)))
		maxGrowth = math.Max(maxGrowth, math.Abs(growthOr(c, med)))
		maxShareDiff = math.Max(maxShareDiff, math.Abs(c.ShareOfRegionPct-target.ShareOfRegionPct))
	}

	entries := make([]Entry, len(candidates))
	for i, c := range candidates {
		sizeSim := 1 - math.Abs(math.Log1p(c.TotalPassengers)-targetLog)/(maxLog+epsilon)
		growthSim := 1 - math.Abs(growthOr(c, med)-targetGrowth)/(maxGrowth+epsilon)
		shareSim := 1 - math.Abs(c.ShareOfRegionPct-target.ShareOfRegionPct)/(maxShareDiff+epsilon)

		entries[i] = Entry{
			Record: c,
			Metric: c.TotalPassengers,
			Score:  wSize*sizeSim + wGrowth*growthSim + wShare*shareSim,
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return target, RankedList{
		Name:        "composite",
		TargetValue: target.TotalPassengers,
		Entries:     truncate(entries, topn),
	}, nil
}

// BuildSets runs all four rankings against the same target and weights and
// collects the union of every IATA code appearing in any list.
func BuildSets(rs *aci.RecordSet, iata string, wSize, wGrowth, wShare float64, topn int) (*ComparableSet, error) {
	target, total, err := NearestByTotal(rs, iata, topn)
	if err != nil {
		return nil, err
	}
	_, growth, err := NearestByGrowth(rs, iata, topn)
	if err != nil {
		return nil, err
	}
	_, share, err := NearestByShare(rs, iata, topn)
	if err != nil {
		return nil, err
	}
	_, composite, err := CompositeWeighted(rs, iata, wSize, wGrowth, wShare, topn)
	if err != nil {
		return nil, err
	}

	set := &ComparableSet{
		Target:    target,
		Total:     total,
		Growth:    growth,
		Share:     share,
		Composite: composite,
	}

	union := map[string]struct{}{target.IATA: {}}
	for _, list := range set.Lists() {
		for _, e := range list.Entries {
			union[e.Record.IATA] = struct{}{}
		}
	}
	set.Union = make([]string, 0, len(union))
	for code := range union {
		set.Union = append(set.Union, code)
	}
	sort.Strings(set.Union)

	return set, nil
}

// normalizeWeights scales the weight triple to sum to 1, falling back to
// equal thirds when the sum is effectively zero.
func normalizeWeights(wSize, wGrowth, wShare float64) (float64, float64, float64) {
	s := wSize + wGrowth + wShare
	if s <= epsilon {
		return 1.0 / 3, 1.0 / 3, 1.0 / 3
	}
	return wSize / s, wGrowth / s, wShare / s
}

// medianGrowth returns the median YoY growth across candidates that have
// one. An all-missing candidate set yields 0 so distances stay finite.
func medianGrowth(candidates []aci.AirportRecord) float64 {
	var vals []float64
	for _, c := range candidates {
		if c.YoYGrowthPct != nil {
			vals = append(vals, *c.YoYGrowthPct)
		}
	}
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}

// growthOr returns the record's growth, or the imputed fallback when missing.
func growthOr(r aci.AirportRecord, fallback float64) float64 {
	if r.YoYGrowthPct != nil {
		return *r.YoYGrowthPct
	}
	return fallback
}

// takeNearest stable-sorts entries by ascending distance (ties keep source
// order) and truncates to topn.
func takeNearest(entries []Entry, topn int) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Distance < entries[j].Distance
	})
	return truncate(entries, topn)
}

func truncate(entries []Entry, topn int) []Entry {
	if topn <= 0 {
		topn = DefaultTopN
	}
	if len(entries) > topn {
		entries = entries[:topn]
	}
	return entries
}
