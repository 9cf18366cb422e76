package tilemap_test

import (
	"testing"

	"github.com/go-theft-auto/tilemap"
)

func TestAtlasRegion(t *testing.T) {
	atlas := tilemap.Atlas{TileSizePx: 32, TilesPerRow: 4, Padding: 0.01}
	size := atlas.TileSize() // 0.25

	tests := []struct {
		name     string
		tile     uint32
		tx0, ty0 float32
	}{
		{"first tile", 0, 0.01, 0.01},
		{"end of first row", 3, 3*0.25 + 0.01, 0.01},
		{"wraps to second row", 4, 0.01, 0.25 + 0.01},
		{"middle of second row", 6, 2*0.25 + 0.01, 0.25 + 0.01},
	}

	for _, tt := range tests {
		tx0, ty0, sz := atlas.Region(tt.tile)
		if !closeTo(tx0, tt.tx0) || !closeTo(ty0, tt.ty0) {
			t.Errorf("%s: Region(%d) corner = (%v, %v), want (%v, %v)",
				tt.name, tt.tile, tx0, ty0, tt.tx0, tt.ty0)
		}
		if !closeTo(sz, size-2*0.01) {
			t.Errorf("%s: Region(%d) size = %v, want %v", tt.name, tt.tile, sz, size-2*0.01)
		}
	}
}

func TestAtlasRegionNoPadding(t *testing.T) {
	atlas := tilemap.Atlas{TileSizePx: 16, TilesPerRow: 8}

	tx0, ty0, sz := atlas.Region(9)
	if !closeTo(tx0, 0.125) || !closeTo(ty0, 0.125) || !closeTo(sz, 0.125) {
		t.Errorf("Region(9) = (%v, %v, %v), want (0.125, 0.125, 0.125)", tx0, ty0, sz)
	}
}
