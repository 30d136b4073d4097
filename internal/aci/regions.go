package aci

// RegionUnknown is assigned when a state maps to none of the nine FAA regions.
const RegionUnknown = "Unknown"

// faaRegions maps each of the nine FAA administrative regions to its state
// and territory postal codes. The sets are disjoint; every code appears in
// exactly one region. Source: FAA regional office boundaries.
var faaRegions = map[string][]string{
	"Alaskan":            {"AK"},
	"New England":        {"ME", "NH", "VT", "MA", "RI", "CT"},
	"Eastern":            {"NY", "NJ", "PA", "DE", "MD", "DC", "VA", "WV"},
	"Southern":           {"KY", "TN", "NC", "SC", "GA", "FL", "PR", "VI"},
	"Great Lakes":        {"OH", "MI", "IN", "IL", "WI"},
	"Central":            {"MN", "IA", "MO", "ND", "SD", "NE", "KS"},
	"Southwest":          {"NM", "TX", "OK", "AR", "LA"},
	"Northwest Mountain": {"WA", "OR", "ID", "MT", "WY", "UT", "CO"},
	"Western-Pacific":    {"CA", "NV", "AZ", "HI", "GU"},
}

// stateToRegion is the inverted lookup, built once at init.
var stateToRegion = func() map[string]string {
	m := make(map[string]string, 64)
	for region, states := range faaRegions {
		for _, st := range states {
			m[st] = region
		}
	}
	return m
}()

// RegionNames returns the nine FAA region names in a fixed display order.
func RegionNames() []string {
	return []string{
		"Alaskan",
		"New England",
		"Eastern",
		"Southern",
		"Great Lakes",
		"Central",
		"Southwest",
		"Northwest Mountain",
		"Western-Pacific",
	}
}

// RegionStates returns the state codes belonging to the named region,
// or nil if the region is unknown.
func RegionStates(region string) []string {
	return faaRegions[region]
}

// AssignRegion maps an upper-cased state code to its FAA region.
// States outside the nine fixed sets get RegionUnknown.
func AssignRegion(state string) string {
	if region, ok := stateToRegion[upper(state)]; ok {
		return region
	}
	return RegionUnknown
}
