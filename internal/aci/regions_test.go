package aci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionSetsAreDisjoint(t *testing.T) {
	seen := make(map[string]string)
	for region, states := range faaRegions {
		for _, st := range states {
			prev, dup := seen[st]
			assert.False(t, dup, "state %s in both %s and %s", st, prev, region)
			seen[st] = region
		}
	}
}

func TestEveryStateAssignsToItsRegion(t *testing.T) {
	for region, states := range faaRegions {
		for _, st := range states {
			assert.Equal(t, region, AssignRegion(st), "state: %s", st)
		}
	}
}

func TestAssignRegion(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{"AK", "Alaskan"},
		{"ak", "Alaskan"}, // case-insensitive
		{"NY", "Eastern"},
		{"TX", "Southwest"},
		{"CA", "Western-Pacific"},
		{"GU", "Western-Pacific"},
		{"PR", "Southern"},
		{"XX", RegionUnknown},
		{"", RegionUnknown},
		{"  hi  ", "Western-Pacific"}, // trimmed
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AssignRegion(tt.state), "state: %q", tt.state)
	}
}

func TestRegionNamesCoverTable(t *testing.T) {
	names := RegionNames()
	assert.Len(t, names, len(faaRegions))
	for _, name := range names {
		assert.NotNil(t, RegionStates(name), "region: %s", name)
	}
}
